// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/medscroll/onboarding/ent/profile"
)

// ProfileCreate is the builder for creating a Profile entity.
type ProfileCreate struct {
	config
	mutation *ProfileMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ProfileCreate) SetUserID(v string) *ProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetHeardAboutUs sets the "heard_about_us" field.
func (_c *ProfileCreate) SetHeardAboutUs(v string) *ProfileCreate {
	_c.mutation.SetHeardAboutUs(v)
	return _c
}

// SetNillableHeardAboutUs sets the "heard_about_us" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableHeardAboutUs(v *string) *ProfileCreate {
	if v != nil {
		_c.SetHeardAboutUs(*v)
	}
	return _c
}

// SetDisplayName sets the "display_name" field.
func (_c *ProfileCreate) SetDisplayName(v string) *ProfileCreate {
	_c.mutation.SetDisplayName(v)
	return _c
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableDisplayName(v *string) *ProfileCreate {
	if v != nil {
		_c.SetDisplayName(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *ProfileCreate) SetRole(v string) *ProfileCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableRole(v *string) *ProfileCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetSpecialty sets the "specialty" field.
func (_c *ProfileCreate) SetSpecialty(v string) *ProfileCreate {
	_c.mutation.SetSpecialty(v)
	return _c
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableSpecialty(v *string) *ProfileCreate {
	if v != nil {
		_c.SetSpecialty(*v)
	}
	return _c
}

// SetSubspecialty sets the "subspecialty" field.
func (_c *ProfileCreate) SetSubspecialty(v string) *ProfileCreate {
	_c.mutation.SetSubspecialty(v)
	return _c
}

// SetNillableSubspecialty sets the "subspecialty" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableSubspecialty(v *string) *ProfileCreate {
	if v != nil {
		_c.SetSubspecialty(*v)
	}
	return _c
}

// SetInterest sets the "interest" field.
func (_c *ProfileCreate) SetInterest(v string) *ProfileCreate {
	_c.mutation.SetInterest(v)
	return _c
}

// SetNillableInterest sets the "interest" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableInterest(v *string) *ProfileCreate {
	if v != nil {
		_c.SetInterest(*v)
	}
	return _c
}

// SetPersonalized sets the "personalized" field.
func (_c *ProfileCreate) SetPersonalized(v bool) *ProfileCreate {
	_c.mutation.SetPersonalized(v)
	return _c
}

// SetNillablePersonalized sets the "personalized" field if the given value is not nil.
func (_c *ProfileCreate) SetNillablePersonalized(v *bool) *ProfileCreate {
	if v != nil {
		_c.SetPersonalized(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProfileCreate) SetUpdatedAt(v time.Time) *ProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableUpdatedAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProfileMutation object of the builder.
func (_c *ProfileCreate) Mutation() *ProfileMutation {
	return _c.mutation
}

// Save creates the Profile in the database.
func (_c *ProfileCreate) Save(ctx context.Context) (*Profile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileCreate) SaveX(ctx context.Context) *Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileCreate) defaults() {
	if _, ok := _c.mutation.Personalized(); !ok {
		v := profile.DefaultPersonalized
		_c.mutation.SetPersonalized(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := profile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Profile.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := profile.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Profile.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Personalized(); !ok {
		return &ValidationError{Name: "personalized", err: errors.New(`ent: missing required field "Profile.personalized"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Profile.updated_at"`)}
	}
	return nil
}

func (_c *ProfileCreate) sqlSave(ctx context.Context) (*Profile, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProfileCreate) createSpec() (*Profile, *sqlgraph.CreateSpec) {
	var (
		_node = &Profile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profile.Table, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(profile.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.HeardAboutUs(); ok {
		_spec.SetField(profile.FieldHeardAboutUs, field.TypeString, value)
		_node.HeardAboutUs = value
	}
	if value, ok := _c.mutation.DisplayName(); ok {
		_spec.SetField(profile.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(profile.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Specialty(); ok {
		_spec.SetField(profile.FieldSpecialty, field.TypeString, value)
		_node.Specialty = value
	}
	if value, ok := _c.mutation.Subspecialty(); ok {
		_spec.SetField(profile.FieldSubspecialty, field.TypeString, value)
		_node.Subspecialty = value
	}
	if value, ok := _c.mutation.Interest(); ok {
		_spec.SetField(profile.FieldInterest, field.TypeString, value)
		_node.Interest = value
	}
	if value, ok := _c.mutation.Personalized(); ok {
		_spec.SetField(profile.FieldPersonalized, field.TypeBool, value)
		_node.Personalized = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ProfileCreateBulk is the builder for creating many Profile entities in bulk.
type ProfileCreateBulk struct {
	config
	err      error
	builders []*ProfileCreate
}

// Save creates the Profile entities in the database.
func (_c *ProfileCreateBulk) Save(ctx context.Context) ([]*Profile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Profile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProfileCreateBulk) SaveX(ctx context.Context) []*Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
