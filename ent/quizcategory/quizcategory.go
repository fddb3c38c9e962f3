// Code generated by ent, DO NOT EDIT.

package quizcategory

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the quizcategory type in the database.
	Label = "quiz_category"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldQuizUUID holds the string denoting the quiz_uuid field in the database.
	FieldQuizUUID = "quiz_uuid"
	// Table holds the table name of the quizcategory in the database.
	Table = "quiz_categories"
)

// Columns holds all SQL columns for quizcategory fields.
var Columns = []string{
	FieldID,
	FieldCategory,
	FieldQuizUUID,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// QuizUUIDValidator is a validator for the "quiz_uuid" field. It is called by the builders before save.
	QuizUUIDValidator func(string) error
)

// OrderOption defines the ordering options for the QuizCategory queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByQuizUUID orders the results by the quiz_uuid field.
func ByQuizUUID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizUUID, opts...).ToFunc()
}
