// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/medscroll/onboarding/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUserID, v))
}

// HeardAboutUs applies equality check predicate on the "heard_about_us" field. It's identical to HeardAboutUsEQ.
func HeardAboutUs(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldHeardAboutUs, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldDisplayName, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldRole, v))
}

// Specialty applies equality check predicate on the "specialty" field. It's identical to SpecialtyEQ.
func Specialty(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldSpecialty, v))
}

// Subspecialty applies equality check predicate on the "subspecialty" field. It's identical to SubspecialtyEQ.
func Subspecialty(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldSubspecialty, v))
}

// Interest applies equality check predicate on the "interest" field. It's identical to InterestEQ.
func Interest(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldInterest, v))
}

// Personalized applies equality check predicate on the "personalized" field. It's identical to PersonalizedEQ.
func Personalized(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldPersonalized, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldUserID, v))
}

// HeardAboutUsEQ applies the EQ predicate on the "heard_about_us" field.
func HeardAboutUsEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldHeardAboutUs, v))
}

// HeardAboutUsNEQ applies the NEQ predicate on the "heard_about_us" field.
func HeardAboutUsNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldHeardAboutUs, v))
}

// HeardAboutUsIn applies the In predicate on the "heard_about_us" field.
func HeardAboutUsIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldHeardAboutUs, vs...))
}

// HeardAboutUsNotIn applies the NotIn predicate on the "heard_about_us" field.
func HeardAboutUsNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldHeardAboutUs, vs...))
}

// HeardAboutUsGT applies the GT predicate on the "heard_about_us" field.
func HeardAboutUsGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldHeardAboutUs, v))
}

// HeardAboutUsGTE applies the GTE predicate on the "heard_about_us" field.
func HeardAboutUsGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldHeardAboutUs, v))
}

// HeardAboutUsLT applies the LT predicate on the "heard_about_us" field.
func HeardAboutUsLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldHeardAboutUs, v))
}

// HeardAboutUsLTE applies the LTE predicate on the "heard_about_us" field.
func HeardAboutUsLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldHeardAboutUs, v))
}

// HeardAboutUsContains applies the Contains predicate on the "heard_about_us" field.
func HeardAboutUsContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldHeardAboutUs, v))
}

// HeardAboutUsHasPrefix applies the HasPrefix predicate on the "heard_about_us" field.
func HeardAboutUsHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldHeardAboutUs, v))
}

// HeardAboutUsHasSuffix applies the HasSuffix predicate on the "heard_about_us" field.
func HeardAboutUsHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldHeardAboutUs, v))
}

// HeardAboutUsIsNil applies the IsNil predicate on the "heard_about_us" field.
func HeardAboutUsIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldHeardAboutUs))
}

// HeardAboutUsNotNil applies the NotNil predicate on the "heard_about_us" field.
func HeardAboutUsNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldHeardAboutUs))
}

// HeardAboutUsEqualFold applies the EqualFold predicate on the "heard_about_us" field.
func HeardAboutUsEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldHeardAboutUs, v))
}

// HeardAboutUsContainsFold applies the ContainsFold predicate on the "heard_about_us" field.
func HeardAboutUsContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldHeardAboutUs, v))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameIsNil applies the IsNil predicate on the "display_name" field.
func DisplayNameIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldDisplayName))
}

// DisplayNameNotNil applies the NotNil predicate on the "display_name" field.
func DisplayNameNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldDisplayName))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldDisplayName, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldRole, v))
}

// RoleIsNil applies the IsNil predicate on the "role" field.
func RoleIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldRole))
}

// RoleNotNil applies the NotNil predicate on the "role" field.
func RoleNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldRole))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldRole, v))
}

// SpecialtyEQ applies the EQ predicate on the "specialty" field.
func SpecialtyEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldSpecialty, v))
}

// SpecialtyNEQ applies the NEQ predicate on the "specialty" field.
func SpecialtyNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldSpecialty, v))
}

// SpecialtyIn applies the In predicate on the "specialty" field.
func SpecialtyIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldSpecialty, vs...))
}

// SpecialtyNotIn applies the NotIn predicate on the "specialty" field.
func SpecialtyNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldSpecialty, vs...))
}

// SpecialtyGT applies the GT predicate on the "specialty" field.
func SpecialtyGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldSpecialty, v))
}

// SpecialtyGTE applies the GTE predicate on the "specialty" field.
func SpecialtyGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldSpecialty, v))
}

// SpecialtyLT applies the LT predicate on the "specialty" field.
func SpecialtyLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldSpecialty, v))
}

// SpecialtyLTE applies the LTE predicate on the "specialty" field.
func SpecialtyLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldSpecialty, v))
}

// SpecialtyContains applies the Contains predicate on the "specialty" field.
func SpecialtyContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldSpecialty, v))
}

// SpecialtyHasPrefix applies the HasPrefix predicate on the "specialty" field.
func SpecialtyHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldSpecialty, v))
}

// SpecialtyHasSuffix applies the HasSuffix predicate on the "specialty" field.
func SpecialtyHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldSpecialty, v))
}

// SpecialtyIsNil applies the IsNil predicate on the "specialty" field.
func SpecialtyIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldSpecialty))
}

// SpecialtyNotNil applies the NotNil predicate on the "specialty" field.
func SpecialtyNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldSpecialty))
}

// SpecialtyEqualFold applies the EqualFold predicate on the "specialty" field.
func SpecialtyEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldSpecialty, v))
}

// SpecialtyContainsFold applies the ContainsFold predicate on the "specialty" field.
func SpecialtyContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldSpecialty, v))
}

// SubspecialtyEQ applies the EQ predicate on the "subspecialty" field.
func SubspecialtyEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldSubspecialty, v))
}

// SubspecialtyNEQ applies the NEQ predicate on the "subspecialty" field.
func SubspecialtyNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldSubspecialty, v))
}

// SubspecialtyIn applies the In predicate on the "subspecialty" field.
func SubspecialtyIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldSubspecialty, vs...))
}

// SubspecialtyNotIn applies the NotIn predicate on the "subspecialty" field.
func SubspecialtyNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldSubspecialty, vs...))
}

// SubspecialtyGT applies the GT predicate on the "subspecialty" field.
func SubspecialtyGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldSubspecialty, v))
}

// SubspecialtyGTE applies the GTE predicate on the "subspecialty" field.
func SubspecialtyGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldSubspecialty, v))
}

// SubspecialtyLT applies the LT predicate on the "subspecialty" field.
func SubspecialtyLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldSubspecialty, v))
}

// SubspecialtyLTE applies the LTE predicate on the "subspecialty" field.
func SubspecialtyLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldSubspecialty, v))
}

// SubspecialtyContains applies the Contains predicate on the "subspecialty" field.
func SubspecialtyContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldSubspecialty, v))
}

// SubspecialtyHasPrefix applies the HasPrefix predicate on the "subspecialty" field.
func SubspecialtyHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldSubspecialty, v))
}

// SubspecialtyHasSuffix applies the HasSuffix predicate on the "subspecialty" field.
func SubspecialtyHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldSubspecialty, v))
}

// SubspecialtyIsNil applies the IsNil predicate on the "subspecialty" field.
func SubspecialtyIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldSubspecialty))
}

// SubspecialtyNotNil applies the NotNil predicate on the "subspecialty" field.
func SubspecialtyNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldSubspecialty))
}

// SubspecialtyEqualFold applies the EqualFold predicate on the "subspecialty" field.
func SubspecialtyEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldSubspecialty, v))
}

// SubspecialtyContainsFold applies the ContainsFold predicate on the "subspecialty" field.
func SubspecialtyContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldSubspecialty, v))
}

// InterestEQ applies the EQ predicate on the "interest" field.
func InterestEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldInterest, v))
}

// InterestNEQ applies the NEQ predicate on the "interest" field.
func InterestNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldInterest, v))
}

// InterestIn applies the In predicate on the "interest" field.
func InterestIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldInterest, vs...))
}

// InterestNotIn applies the NotIn predicate on the "interest" field.
func InterestNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldInterest, vs...))
}

// InterestGT applies the GT predicate on the "interest" field.
func InterestGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldInterest, v))
}

// InterestGTE applies the GTE predicate on the "interest" field.
func InterestGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldInterest, v))
}

// InterestLT applies the LT predicate on the "interest" field.
func InterestLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldInterest, v))
}

// InterestLTE applies the LTE predicate on the "interest" field.
func InterestLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldInterest, v))
}

// InterestContains applies the Contains predicate on the "interest" field.
func InterestContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldInterest, v))
}

// InterestHasPrefix applies the HasPrefix predicate on the "interest" field.
func InterestHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldInterest, v))
}

// InterestHasSuffix applies the HasSuffix predicate on the "interest" field.
func InterestHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldInterest, v))
}

// InterestIsNil applies the IsNil predicate on the "interest" field.
func InterestIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldInterest))
}

// InterestNotNil applies the NotNil predicate on the "interest" field.
func InterestNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldInterest))
}

// InterestEqualFold applies the EqualFold predicate on the "interest" field.
func InterestEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldInterest, v))
}

// InterestContainsFold applies the ContainsFold predicate on the "interest" field.
func InterestContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldInterest, v))
}

// PersonalizedEQ applies the EQ predicate on the "personalized" field.
func PersonalizedEQ(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldPersonalized, v))
}

// PersonalizedNEQ applies the NEQ predicate on the "personalized" field.
func PersonalizedNEQ(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldPersonalized, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.NotPredicates(p))
}
