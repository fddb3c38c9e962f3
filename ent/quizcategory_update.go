// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/medscroll/onboarding/ent/predicate"
	"github.com/medscroll/onboarding/ent/quizcategory"
)

// QuizCategoryUpdate is the builder for updating QuizCategory entities.
type QuizCategoryUpdate struct {
	config
	hooks    []Hook
	mutation *QuizCategoryMutation
}

// Where appends a list predicates to the QuizCategoryUpdate builder.
func (_u *QuizCategoryUpdate) Where(ps ...predicate.QuizCategory) *QuizCategoryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCategory sets the "category" field.
func (_u *QuizCategoryUpdate) SetCategory(v string) *QuizCategoryUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *QuizCategoryUpdate) SetNillableCategory(v *string) *QuizCategoryUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetQuizUUID sets the "quiz_uuid" field.
func (_u *QuizCategoryUpdate) SetQuizUUID(v string) *QuizCategoryUpdate {
	_u.mutation.SetQuizUUID(v)
	return _u
}

// SetNillableQuizUUID sets the "quiz_uuid" field if the given value is not nil.
func (_u *QuizCategoryUpdate) SetNillableQuizUUID(v *string) *QuizCategoryUpdate {
	if v != nil {
		_u.SetQuizUUID(*v)
	}
	return _u
}

// Mutation returns the QuizCategoryMutation object of the builder.
func (_u *QuizCategoryUpdate) Mutation() *QuizCategoryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuizCategoryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizCategoryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuizCategoryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizCategoryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizCategoryUpdate) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := quizcategory.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "QuizCategory.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizUUID(); ok {
		if err := quizcategory.QuizUUIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_uuid", err: fmt.Errorf(`ent: validator failed for field "QuizCategory.quiz_uuid": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizCategoryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizcategory.Table, quizcategory.Columns, sqlgraph.NewFieldSpec(quizcategory.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(quizcategory.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizUUID(); ok {
		_spec.SetField(quizcategory.FieldQuizUUID, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizcategory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuizCategoryUpdateOne is the builder for updating a single QuizCategory entity.
type QuizCategoryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuizCategoryMutation
}

// SetCategory sets the "category" field.
func (_u *QuizCategoryUpdateOne) SetCategory(v string) *QuizCategoryUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *QuizCategoryUpdateOne) SetNillableCategory(v *string) *QuizCategoryUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetQuizUUID sets the "quiz_uuid" field.
func (_u *QuizCategoryUpdateOne) SetQuizUUID(v string) *QuizCategoryUpdateOne {
	_u.mutation.SetQuizUUID(v)
	return _u
}

// SetNillableQuizUUID sets the "quiz_uuid" field if the given value is not nil.
func (_u *QuizCategoryUpdateOne) SetNillableQuizUUID(v *string) *QuizCategoryUpdateOne {
	if v != nil {
		_u.SetQuizUUID(*v)
	}
	return _u
}

// Mutation returns the QuizCategoryMutation object of the builder.
func (_u *QuizCategoryUpdateOne) Mutation() *QuizCategoryMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuizCategoryUpdate builder.
func (_u *QuizCategoryUpdateOne) Where(ps ...predicate.QuizCategory) *QuizCategoryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuizCategoryUpdateOne) Select(field string, fields ...string) *QuizCategoryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated QuizCategory entity.
func (_u *QuizCategoryUpdateOne) Save(ctx context.Context) (*QuizCategory, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuizCategoryUpdateOne) SaveX(ctx context.Context) *QuizCategory {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuizCategoryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuizCategoryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuizCategoryUpdateOne) check() error {
	if v, ok := _u.mutation.Category(); ok {
		if err := quizcategory.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "QuizCategory.category": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuizUUID(); ok {
		if err := quizcategory.QuizUUIDValidator(v); err != nil {
			return &ValidationError{Name: "quiz_uuid", err: fmt.Errorf(`ent: validator failed for field "QuizCategory.quiz_uuid": %w`, err)}
		}
	}
	return nil
}

func (_u *QuizCategoryUpdateOne) sqlSave(ctx context.Context) (_node *QuizCategory, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(quizcategory.Table, quizcategory.Columns, sqlgraph.NewFieldSpec(quizcategory.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "QuizCategory.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, quizcategory.FieldID)
		for _, f := range fields {
			if !quizcategory.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != quizcategory.FieldID {
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
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(quizcategory.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuizUUID(); ok {
		_spec.SetField(quizcategory.FieldQuizUUID, field.TypeString, value)
	}
	_node = &QuizCategory{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{quizcategory.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
