// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Profile is the predicate function for profile builders.
type Profile func(*sql.Selector)

// QuizCategory is the predicate function for quizcategory builders.
type QuizCategory func(*sql.Selector)
