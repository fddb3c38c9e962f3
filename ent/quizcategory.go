// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/medscroll/onboarding/ent/quizcategory"
)

// QuizCategory is the model entity for the QuizCategory schema.
type QuizCategory struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Catalog name, e.g. General Trivia
	Category string `json:"category,omitempty"`
	// Routing key handed to the client
	QuizUUID     string `json:"quiz_uuid,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*QuizCategory) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case quizcategory.FieldID:
			values[i] = new(sql.NullInt64)
		case quizcategory.FieldCategory, quizcategory.FieldQuizUUID:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the QuizCategory fields.
func (_m *QuizCategory) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case quizcategory.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case quizcategory.FieldCategory:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field category", values[i])
			} else if value.Valid {
				_m.Category = value.String
			}
		case quizcategory.FieldQuizUUID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field quiz_uuid", values[i])
			} else if value.Valid {
				_m.QuizUUID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the QuizCategory.
// This includes values selected through modifiers, order, etc.
func (_m *QuizCategory) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this QuizCategory.
// Note that you need to call QuizCategory.Unwrap() before calling this method if this QuizCategory
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *QuizCategory) Update() *QuizCategoryUpdateOne {
	return NewQuizCategoryClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the QuizCategory entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *QuizCategory) Unwrap() *QuizCategory {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: QuizCategory is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *QuizCategory) String() string {
	var builder strings.Builder
	builder.WriteString("QuizCategory(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("category=")
	builder.WriteString(_m.Category)
	builder.WriteString(", ")
	builder.WriteString("quiz_uuid=")
	builder.WriteString(_m.QuizUUID)
	builder.WriteByte(')')
	return builder.String()
}

// QuizCategories is a parsable slice of QuizCategory.
type QuizCategories []*QuizCategory
