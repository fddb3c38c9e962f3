// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/medscroll/onboarding/ent/quizcategory"
)

// QuizCategoryCreate is the builder for creating a QuizCategory entity.
type QuizCategoryCreate struct {
	config
	mutation *QuizCategoryMutation
	hooks    []Hook
}

// SetCategory sets the "category" field.
func (_c *QuizCategoryCreate) SetCategory(v string) *QuizCategoryCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetQuizUUID sets the "quiz_uuid" field.
func (_c *QuizCategoryCreate) SetQuizUUID(v string) *QuizCategoryCreate {
	_c.mutation.SetQuizUUID(v)
	return _c
}

// Mutation returns the QuizCategoryMutation object of the builder.
func (_c *QuizCategoryCreate) Mutation() *QuizCategoryMutation {
	return _c.mutation
}

// Save creates the QuizCategory in the database.
func (_c *QuizCategoryCreate) Save(ctx context.Context) (*QuizCategory, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuizCategoryCreate) SaveX(ctx context.Context) *QuizCategory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizCategoryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizCategoryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuizCategoryCreate) check() error {
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "QuizCategory.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := quizcategory.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "QuizCategory.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuizUUID(); !ok {
		return &ValidationError{Name: "quiz_uuid", err: errors.New(`ent: missing required field "QuizCategory.quiz_uuid"`)}
	}
	if v, ok := _c.mutation.QuizUUID(); ok {
		if err := quizcategory.QuizUUIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_uuid", err: fmt.Errorf(`ent: validator failed for field "QuizCategory.quiz_uuid": %w`, err)}
		}
	}
	return nil
}

func (_c *QuizCategoryCreate) sqlSave(ctx context.Context) (*QuizCategory, error) {
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

func (_c *QuizCategoryCreate) createSpec() (*QuizCategory, *sqlgraph.CreateSpec) {
	var (
		_node = &QuizCategory{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(quizcategory.Table, sqlgraph.NewFieldSpec(quizcategory.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(quizcategory.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.QuizUUID(); ok {
		_spec.SetField(quizcategory.FieldQuizUUID, field.TypeString, value)
		_node.QuizUUID = value
	}
	return _node, _spec
}

// QuizCategoryCreateBulk is the builder for creating many QuizCategory entities in bulk.
type QuizCategoryCreateBulk struct {
	config
	err      error
	builders []*QuizCategoryCreate
}

// Save creates the QuizCategory entities in the database.
func (_c *QuizCategoryCreateBulk) Save(ctx context.Context) ([]*QuizCategory, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*QuizCategory, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuizCategoryMutation)
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
func (_c *QuizCategoryCreateBulk) SaveX(ctx context.Context) []*QuizCategory {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuizCategoryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuizCategoryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
