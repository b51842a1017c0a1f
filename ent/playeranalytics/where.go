// Code generated by ent, DO NOT EDIT.

package playeranalytics

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/methkalz/quizkit/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldEQ(FieldUserID, v))
}

// LessonID applies equality check predicate on the "lesson_id" field. It's identical to LessonIDEQ.
func LessonID(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldEQ(FieldLessonID, v))
}

// PreferredDirection applies equality check predicate on the "preferred_direction" field. It's identical to PreferredDirectionEQ.
func PreferredDirection(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldEQ(FieldPreferredDirection, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldContainsFold(FieldUserID, v))
}

// LessonIDEQ applies the EQ predicate on the "lesson_id" field.
func LessonIDEQ(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldEQ(FieldLessonID, v))
}

// LessonIDNEQ applies the NEQ predicate on the "lesson_id" field.
func LessonIDNEQ(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldNEQ(FieldLessonID, v))
}

// LessonIDIn applies the In predicate on the "lesson_id" field.
func LessonIDIn(vs ...string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldIn(FieldLessonID, vs...))
}

// LessonIDNotIn applies the NotIn predicate on the "lesson_id" field.
func LessonIDNotIn(vs ...string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldNotIn(FieldLessonID, vs...))
}

// LessonIDGT applies the GT predicate on the "lesson_id" field.
func LessonIDGT(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldGT(FieldLessonID, v))
}

// LessonIDGTE applies the GTE predicate on the "lesson_id" field.
func LessonIDGTE(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldGTE(FieldLessonID, v))
}

// LessonIDLT applies the LT predicate on the "lesson_id" field.
func LessonIDLT(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldLT(FieldLessonID, v))
}

// LessonIDLTE applies the LTE predicate on the "lesson_id" field.
func LessonIDLTE(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldLTE(FieldLessonID, v))
}

// LessonIDContains applies the Contains predicate on the "lesson_id" field.
func LessonIDContains(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldContains(FieldLessonID, v))
}

// LessonIDHasPrefix applies the HasPrefix predicate on the "lesson_id" field.
func LessonIDHasPrefix(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldHasPrefix(FieldLessonID, v))
}

// LessonIDHasSuffix applies the HasSuffix predicate on the "lesson_id" field.
func LessonIDHasSuffix(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldHasSuffix(FieldLessonID, v))
}

// LessonIDEqualFold applies the EqualFold predicate on the "lesson_id" field.
func LessonIDEqualFold(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldEqualFold(FieldLessonID, v))
}

// LessonIDContainsFold applies the ContainsFold predicate on the "lesson_id" field.
func LessonIDContainsFold(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldContainsFold(FieldLessonID, v))
}

// PreferredDirectionEQ applies the EQ predicate on the "preferred_direction" field.
func PreferredDirectionEQ(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldEQ(FieldPreferredDirection, v))
}

// PreferredDirectionNEQ applies the NEQ predicate on the "preferred_direction" field.
func PreferredDirectionNEQ(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldNEQ(FieldPreferredDirection, v))
}

// PreferredDirectionIn applies the In predicate on the "preferred_direction" field.
func PreferredDirectionIn(vs ...string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldIn(FieldPreferredDirection, vs...))
}

// PreferredDirectionNotIn applies the NotIn predicate on the "preferred_direction" field.
func PreferredDirectionNotIn(vs ...string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldNotIn(FieldPreferredDirection, vs...))
}

// PreferredDirectionGT applies the GT predicate on the "preferred_direction" field.
func PreferredDirectionGT(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldGT(FieldPreferredDirection, v))
}

// PreferredDirectionGTE applies the GTE predicate on the "preferred_direction" field.
func PreferredDirectionGTE(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldGTE(FieldPreferredDirection, v))
}

// PreferredDirectionLT applies the LT predicate on the "preferred_direction" field.
func PreferredDirectionLT(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldLT(FieldPreferredDirection, v))
}

// PreferredDirectionLTE applies the LTE predicate on the "preferred_direction" field.
func PreferredDirectionLTE(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldLTE(FieldPreferredDirection, v))
}

// PreferredDirectionContains applies the Contains predicate on the "preferred_direction" field.
func PreferredDirectionContains(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldContains(FieldPreferredDirection, v))
}

// PreferredDirectionHasPrefix applies the HasPrefix predicate on the "preferred_direction" field.
func PreferredDirectionHasPrefix(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldHasPrefix(FieldPreferredDirection, v))
}

// PreferredDirectionHasSuffix applies the HasSuffix predicate on the "preferred_direction" field.
func PreferredDirectionHasSuffix(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldHasSuffix(FieldPreferredDirection, v))
}

// PreferredDirectionEqualFold applies the EqualFold predicate on the "preferred_direction" field.
func PreferredDirectionEqualFold(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldEqualFold(FieldPreferredDirection, v))
}

// PreferredDirectionContainsFold applies the ContainsFold predicate on the "preferred_direction" field.
func PreferredDirectionContainsFold(v string) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldContainsFold(FieldPreferredDirection, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PlayerAnalytics) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PlayerAnalytics) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PlayerAnalytics) predicate.PlayerAnalytics {
	return predicate.PlayerAnalytics(sql.NotPredicates(p))
}
