// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Achievement is the predicate function for achievement builders.
type Achievement func(*sql.Selector)

// GameSession is the predicate function for gamesession builders.
type GameSession func(*sql.Selector)

// PlayerAnalytics is the predicate function for playeranalytics builders.
type PlayerAnalytics func(*sql.Selector)

// PlayerProgress is the predicate function for playerprogress builders.
type PlayerProgress func(*sql.Selector)
