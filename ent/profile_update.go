// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/medscroll/onboarding/ent/predicate"
	"github.com/medscroll/onboarding/ent/profile"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetHeardAboutUs sets the "heard_about_us" field.
func (_u *ProfileUpdate) SetHeardAboutUs(v string) *ProfileUpdate {
	_u.mutation.SetHeardAboutUs(v)
	return _u
}

// SetNillableHeardAboutUs sets the "heard_about_us" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableHeardAboutUs(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetHeardAboutUs(*v)
	}
	return _u
}

// ClearHeardAboutUs clears the value of the "heard_about_us" field.
func (_u *ProfileUpdate) ClearHeardAboutUs() *ProfileUpdate {
	_u.mutation.ClearHeardAboutUs()
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ProfileUpdate) SetDisplayName(v string) *ProfileUpdate {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableDisplayName(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *ProfileUpdate) ClearDisplayName() *ProfileUpdate {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetRole sets the "role" field.
func (_u *ProfileUpdate) SetRole(v string) *ProfileUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableRole(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *ProfileUpdate) ClearRole() *ProfileUpdate {
	_u.mutation.ClearRole()
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *ProfileUpdate) SetSpecialty(v string) *ProfileUpdate {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableSpecialty(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *ProfileUpdate) ClearSpecialty() *ProfileUpdate {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetSubspecialty sets the "subspecialty" field.
func (_u *ProfileUpdate) SetSubspecialty(v string) *ProfileUpdate {
	_u.mutation.SetSubspecialty(v)
	return _u
}

// SetNillableSubspecialty sets the "subspecialty" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableSubspecialty(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetSubspecialty(*v)
	}
	return _u
}

// ClearSubspecialty clears the value of the "subspecialty" field.
func (_u *ProfileUpdate) ClearSubspecialty() *ProfileUpdate {
	_u.mutation.ClearSubspecialty()
	return _u
}

// SetInterest sets the "interest" field.
func (_u *ProfileUpdate) SetInterest(v string) *ProfileUpdate {
	_u.mutation.SetInterest(v)
	return _u
}

// SetNillableInterest sets the "interest" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableInterest(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetInterest(*v)
	}
	return _u
}

// ClearInterest clears the value of the "interest" field.
func (_u *ProfileUpdate) ClearInterest() *ProfileUpdate {
	_u.mutation.ClearInterest()
	return _u
}

// SetPersonalized sets the "personalized" field.
func (_u *ProfileUpdate) SetPersonalized(v bool) *ProfileUpdate {
	_u.mutation.SetPersonalized(v)
	return _u
}

// SetNillablePersonalized sets the "personalized" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillablePersonalized(v *bool) *ProfileUpdate {
	if v != nil {
		_u.SetPersonalized(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdate) SetUpdatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.HeardAboutUs(); ok {
		_spec.SetField(profile.FieldHeardAboutUs, field.TypeString, value)
	}
	if _u.mutation.HeardAboutUsCleared() {
		_spec.ClearField(profile.FieldHeardAboutUs, field.TypeString)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(profile.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(profile.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(profile.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(profile.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(profile.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(profile.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.Subspecialty(); ok {
		_spec.SetField(profile.FieldSubspecialty, field.TypeString, value)
	}
	if _u.mutation.SubspecialtyCleared() {
		_spec.ClearField(profile.FieldSubspecialty, field.TypeString)
	}
	if value, ok := _u.mutation.Interest(); ok {
		_spec.SetField(profile.FieldInterest, field.TypeString, value)
	}
	if _u.mutation.InterestCleared() {
		_spec.ClearField(profile.FieldInterest, field.TypeString)
	}
	if value, ok := _u.mutation.Personalized(); ok {
		_spec.SetField(profile.FieldPersonalized, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetHeardAboutUs sets the "heard_about_us" field.
func (_u *ProfileUpdateOne) SetHeardAboutUs(v string) *ProfileUpdateOne {
	_u.mutation.SetHeardAboutUs(v)
	return _u
}

// SetNillableHeardAboutUs sets the "heard_about_us" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableHeardAboutUs(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetHeardAboutUs(*v)
	}
	return _u
}

// ClearHeardAboutUs clears the value of the "heard_about_us" field.
func (_u *ProfileUpdateOne) ClearHeardAboutUs() *ProfileUpdateOne {
	_u.mutation.ClearHeardAboutUs()
	return _u
}

// SetDisplayName sets the "display_name" field.
func (_u *ProfileUpdateOne) SetDisplayName(v string) *ProfileUpdateOne {
	_u.mutation.SetDisplayName(v)
	return _u
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableDisplayName(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetDisplayName(*v)
	}
	return _u
}

// ClearDisplayName clears the value of the "display_name" field.
func (_u *ProfileUpdateOne) ClearDisplayName() *ProfileUpdateOne {
	_u.mutation.ClearDisplayName()
	return _u
}

// SetRole sets the "role" field.
func (_u *ProfileUpdateOne) SetRole(v string) *ProfileUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableRole(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// ClearRole clears the value of the "role" field.
func (_u *ProfileUpdateOne) ClearRole() *ProfileUpdateOne {
	_u.mutation.ClearRole()
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *ProfileUpdateOne) SetSpecialty(v string) *ProfileUpdateOne {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableSpecialty(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// ClearSpecialty clears the value of the "specialty" field.
func (_u *ProfileUpdateOne) ClearSpecialty() *ProfileUpdateOne {
	_u.mutation.ClearSpecialty()
	return _u
}

// SetSubspecialty sets the "subspecialty" field.
func (_u *ProfileUpdateOne) SetSubspecialty(v string) *ProfileUpdateOne {
	_u.mutation.SetSubspecialty(v)
	return _u
}

// SetNillableSubspecialty sets the "subspecialty" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableSubspecialty(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetSubspecialty(*v)
	}
	return _u
}

// ClearSubspecialty clears the value of the "subspecialty" field.
func (_u *ProfileUpdateOne) ClearSubspecialty() *ProfileUpdateOne {
	_u.mutation.ClearSubspecialty()
	return _u
}

// SetInterest sets the "interest" field.
func (_u *ProfileUpdateOne) SetInterest(v string) *ProfileUpdateOne {
	_u.mutation.SetInterest(v)
	return _u
}

// SetNillableInterest sets the "interest" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableInterest(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetInterest(*v)
	}
	return _u
}

// ClearInterest clears the value of the "interest" field.
func (_u *ProfileUpdateOne) ClearInterest() *ProfileUpdateOne {
	_u.mutation.ClearInterest()
	return _u
}

// SetPersonalized sets the "personalized" field.
func (_u *ProfileUpdateOne) SetPersonalized(v bool) *ProfileUpdateOne {
	_u.mutation.SetPersonalized(v)
	return _u
}

// SetNillablePersonalized sets the "personalized" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillablePersonalized(v *bool) *ProfileUpdateOne {
	if v != nil {
		_u.SetPersonalized(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdateOne) SetUpdatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.HeardAboutUs(); ok {
		_spec.SetField(profile.FieldHeardAboutUs, field.TypeString, value)
	}
	if _u.mutation.HeardAboutUsCleared() {
		_spec.ClearField(profile.FieldHeardAboutUs, field.TypeString)
	}
	if value, ok := _u.mutation.DisplayName(); ok {
		_spec.SetField(profile.FieldDisplayName, field.TypeString, value)
	}
	if _u.mutation.DisplayNameCleared() {
		_spec.ClearField(profile.FieldDisplayName, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(profile.FieldRole, field.TypeString, value)
	}
	if _u.mutation.RoleCleared() {
		_spec.ClearField(profile.FieldRole, field.TypeString)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(profile.FieldSpecialty, field.TypeString, value)
	}
	if _u.mutation.SpecialtyCleared() {
		_spec.ClearField(profile.FieldSpecialty, field.TypeString)
	}
	if value, ok := _u.mutation.Subspecialty(); ok {
		_spec.SetField(profile.FieldSubspecialty, field.TypeString, value)
	}
	if _u.mutation.SubspecialtyCleared() {
		_spec.ClearField(profile.FieldSubspecialty, field.TypeString)
	}
	if value, ok := _u.mutation.Interest(); ok {
		_spec.SetField(profile.FieldInterest, field.TypeString, value)
	}
	if _u.mutation.InterestCleared() {
		_spec.ClearField(profile.FieldInterest, field.TypeString)
	}
	if value, ok := _u.mutation.Personalized(); ok {
		_spec.SetField(profile.FieldPersonalized, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
