// Code generated by ent, DO NOT EDIT.

package gamesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/methkalz/quizkit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldSessionID, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldUserID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldLessonID, v))
}

// CurrentIndex applies equality check predicate on the "current_index" field. It's identical to CurrentIndexEQ.
func CurrentIndex(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldCurrentIndex, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldScore, v))
}

// MistakeCount applies equality check predicate on the "mistake_count" field. It's identical to MistakeCountEQ.
func MistakeCount(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldMistakeCount, v))
}

// HintsUsed applies equality check predicate on the "hints_used" field. It's identical to HintsUsedEQ.
func HintsUsed(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldHintsUsed, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldStartedAt, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldEndedAt, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldCompleted, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContainsFold(FieldSessionID, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContainsFold(FieldUserID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContainsFold(FieldLessonID, v))
}

// CurrentIndexEQ applies the EQ predicate on the "current_index" field.
func CurrentIndexEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldCurrentIndex, v))
}

// CurrentIndexNEQ applies the NEQ predicate on the "current_index" field.
func CurrentIndexNEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldCurrentIndex, v))
}

// CurrentIndexIn applies the In predicate on the "current_index" field.
func CurrentIndexIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldCurrentIndex, vs...))
}

// CurrentIndexNotIn applies the NotIn predicate on the "current_index" field.
func CurrentIndexNotIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldCurrentIndex, vs...))
}

// CurrentIndexGT applies the GT predicate on the "current_index" field.
func CurrentIndexGT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldCurrentIndex, v))
}

// CurrentIndexGTE applies the GTE predicate on the "current_index" field.
func CurrentIndexGTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldCurrentIndex, v))
}

// CurrentIndexLT applies the LT predicate on the "current_index" field.
func CurrentIndexLT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldCurrentIndex, v))
}

// CurrentIndexLTE applies the LTE predicate on the "current_index" field.
func CurrentIndexLTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldCurrentIndex, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldScore, v))
}

// MistakeCountEQ applies the EQ predicate on the "mistake_count" field.
func MistakeCountEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldMistakeCount, v))
}

// MistakeCountNEQ applies the NEQ predicate on the "mistake_count" field.
func MistakeCountNEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldMistakeCount, v))
}

// MistakeCountIn applies the In predicate on the "mistake_count" field.
func MistakeCountIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldMistakeCount, vs...))
}

// MistakeCountNotIn applies the NotIn predicate on the "mistake_count" field.
func MistakeCountNotIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldMistakeCount, vs...))
}

// MistakeCountGT applies the GT predicate on the "mistake_count" field.
func MistakeCountGT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldMistakeCount, v))
}

// MistakeCountGTE applies the GTE predicate on the "mistake_count" field.
func MistakeCountGTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldMistakeCount, v))
}

// MistakeCountLT applies the LT predicate on the "mistake_count" field.
func MistakeCountLT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldMistakeCount, v))
}

// MistakeCountLTE applies the LTE predicate on the "mistake_count" field.
func MistakeCountLTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldMistakeCount, v))
}

// HintsUsedEQ applies the EQ predicate on the "hints_used" field.
func HintsUsedEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldHintsUsed, v))
}

// HintsUsedNEQ applies the NEQ predicate on the "hints_used" field.
func HintsUsedNEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldHintsUsed, v))
}

// HintsUsedIn applies the In predicate on the "hints_used" field.
func HintsUsedIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldHintsUsed, vs...))
}

// HintsUsedNotIn applies the NotIn predicate on the "hints_used" field.
func HintsUsedNotIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldHintsUsed, vs...))
}

// HintsUsedGT applies the GT predicate on the "hints_used" field.
func HintsUsedGT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldHintsUsed, v))
}

// HintsUsedGTE applies the GTE predicate on the "hints_used" field.
func HintsUsedGTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldHintsUsed, v))
}

// HintsUsedLT applies the LT predicate on the "hints_used" field.
func HintsUsedLT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldHintsUsed, v))
}

// HintsUsedLTE applies the LTE predicate on the "hints_used" field.
func HintsUsedLTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldHintsUsed, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldStartedAt, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.GameSession {
	return predicate.GameSession(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.GameSession {
	return predicate.GameSession(sql.FieldNotNull(FieldEndedAt))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldCompleted, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GameSession) predicate.GameSession {
	return predicate.GameSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GameSession) predicate.GameSession {
	return predicate.GameSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GameSession) predicate.GameSession {
	return predicate.GameSession(sql.NotPredicates(p))
}
