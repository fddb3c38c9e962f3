// Code generated by ent, DO NOT EDIT.

package quizcategory

import (
	"entgo.io/ent/dialect/sql"
	"github.com/medscroll/onboarding/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldLTE(FieldID, id))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldEQ(FieldCategory, v))
}

// QuizUUID applies equality check predicate on the "quiz_uuid" field. It's identical to QuizUUIDEQ.
func QuizUUID(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldEQ(FieldQuizUUID, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldContainsFold(FieldCategory, v))
}

// QuizUUIDEQ applies the EQ predicate on the "quiz_uuid" field.
func QuizUUIDEQ(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldEQ(FieldQuizUUID, v))
}

// QuizUUIDNEQ applies the NEQ predicate on the "quiz_uuid" field.
func QuizUUIDNEQ(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldNEQ(FieldQuizUUID, v))
}

// QuizUUIDIn applies the In predicate on the "quiz_uuid" field.
func QuizUUIDIn(vs ...string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldIn(FieldQuizUUID, vs...))
}

// QuizUUIDNotIn applies the NotIn predicate on the "quiz_uuid" field.
func QuizUUIDNotIn(vs ...string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldNotIn(FieldQuizUUID, vs...))
}

// QuizUUIDGT applies the GT predicate on the "quiz_uuid" field.
func QuizUUIDGT(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldGT(FieldQuizUUID, v))
}

// QuizUUIDGTE applies the GTE predicate on the "quiz_uuid" field.
func QuizUUIDGTE(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldGTE(FieldQuizUUID, v))
}

// QuizUUIDLT applies the LT predicate on the "quiz_uuid" field.
func QuizUUIDLT(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldLT(FieldQuizUUID, v))
}

// QuizUUIDLTE applies the LTE predicate on the "quiz_uuid" field.
func QuizUUIDLTE(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldLTE(FieldQuizUUID, v))
}

// QuizUUIDContains applies the Contains predicate on the "quiz_uuid" field.
func QuizUUIDContains(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldContains(FieldQuizUUID, v))
}

// QuizUUIDHasPrefix applies the HasPrefix predicate on the "quiz_uuid" field.
func QuizUUIDHasPrefix(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldHasPrefix(FieldQuizUUID, v))
}

// QuizUUIDHasSuffix applies the HasSuffix predicate on the "quiz_uuid" field.
func QuizUUIDHasSuffix(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldHasSuffix(FieldQuizUUID, v))
}

// QuizUUIDEqualFold applies the EqualFold predicate on the "quiz_uuid" field.
func QuizUUIDEqualFold(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldEqualFold(FieldQuizUUID, v))
}

// QuizUUIDContainsFold applies the ContainsFold predicate on the "quiz_uuid" field.
func QuizUUIDContainsFold(v string) predicate.QuizCategory {
	return predicate.QuizCategory(sql.FieldContainsFold(FieldQuizUUID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.QuizCategory) predicate.QuizCategory {
	return predicate.QuizCategory(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.QuizCategory) predicate.QuizCategory {
	return predicate.QuizCategory(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.QuizCategory) predicate.QuizCategory {
	return predicate.QuizCategory(sql.NotPredicates(p))
}
