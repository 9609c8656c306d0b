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
	"github.com/kizunaworks/backoffice/ent/predicate"
	"github.com/kizunaworks/backoffice/ent/syncrun"
)

// SyncRunUpdate is the builder for updating SyncRun entities.
type SyncRunUpdate struct {
	config
	hooks    []Hook
	mutation *SyncRunMutation
}

// Where appends a list predicates to the SyncRunUpdate builder.
func (_u *SyncRunUpdate) Where(ps ...predicate.SyncRun) *SyncRunUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTrigger sets the "trigger" field.
func (_u *SyncRunUpdate) SetTrigger(v syncrun.Trigger) *SyncRunUpdate {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *SyncRunUpdate) SetNillableTrigger(v *syncrun.Trigger) *SyncRunUpdate {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *SyncRunUpdate) SetStartDate(v string) *SyncRunUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *SyncRunUpdate) SetNillableStartDate(v *string) *SyncRunUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *SyncRunUpdate) SetEndDate(v string) *SyncRunUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *SyncRunUpdate) SetNillableEndDate(v *string) *SyncRunUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// SetInserted sets the "inserted" field.
func (_u *SyncRunUpdate) SetInserted(v int) *SyncRunUpdate {
	_u.mutation.ResetInserted()
	_u.mutation.SetInserted(v)
	return _u
}

// SetNillableInserted sets the "inserted" field if the given value is not nil.
func (_u *SyncRunUpdate) SetNillableInserted(v *int) *SyncRunUpdate {
	if v != nil {
		_u.SetInserted(*v)
	}
	return _u
}

// AddInserted adds value to the "inserted" field.
func (_u *SyncRunUpdate) AddInserted(v int) *SyncRunUpdate {
	_u.mutation.AddInserted(v)
	return _u
}

// SetUpdated sets the "updated" field.
func (_u *SyncRunUpdate) SetUpdated(v int) *SyncRunUpdate {
	_u.mutation.ResetUpdated()
	_u.mutation.SetUpdated(v)
	return _u
}

// SetNillableUpdated sets the "updated" field if the given value is not nil.
func (_u *SyncRunUpdate) SetNillableUpdated(v *int) *SyncRunUpdate {
	if v != nil {
		_u.SetUpdated(*v)
	}
	return _u
}

// AddUpdated adds value to the "updated" field.
func (_u *SyncRunUpdate) AddUpdated(v int) *SyncRunUpdate {
	_u.mutation.AddUpdated(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *SyncRunUpdate) SetSkipped(v int) *SyncRunUpdate {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *SyncRunUpdate) SetNillableSkipped(v *int) *SyncRunUpdate {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *SyncRunUpdate) AddSkipped(v int) *SyncRunUpdate {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetSkipReasons sets the "skip_reasons" field.
func (_u *SyncRunUpdate) SetSkipReasons(v map[string]int) *SyncRunUpdate {
	_u.mutation.SetSkipReasons(v)
	return _u
}

// ClearSkipReasons clears the value of the "skip_reasons" field.
func (_u *SyncRunUpdate) ClearSkipReasons() *SyncRunUpdate {
	_u.mutation.ClearSkipReasons()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SyncRunUpdate) SetStatus(v syncrun.Status) *SyncRunUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SyncRunUpdate) SetNillableStatus(v *syncrun.Status) *SyncRunUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *SyncRunUpdate) SetError(v string) *SyncRunUpdate {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *SyncRunUpdate) SetNillableError(v *string) *SyncRunUpdate {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *SyncRunUpdate) ClearError() *SyncRunUpdate {
	_u.mutation.ClearError()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *SyncRunUpdate) SetFinishedAt(v time.Time) *SyncRunUpdate {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *SyncRunUpdate) SetNillableFinishedAt(v *time.Time) *SyncRunUpdate {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// Mutation returns the SyncRunMutation object of the builder.
func (_u *SyncRunUpdate) Mutation() *SyncRunMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SyncRunUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncRunUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SyncRunUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncRunUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncRunUpdate) check() error {
	if v, ok := _u.mutation.Trigger(); ok {
		if err := syncrun.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "SyncRun.trigger": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartDate(); ok {
		if err := syncrun.StartDateValidator(v); err != nil {
			return &ValidationError{Name: "start_date", err: fmt.Errorf(`ent: validator failed for field "SyncRun.start_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndDate(); ok {
		if err := syncrun.EndDateValidator(v); err != nil {
			return &ValidationError{Name: "end_date", err: fmt.Errorf(`ent: validator failed for field "SyncRun.end_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Inserted(); ok {
		if err := syncrun.InsertedValidator(v); err != nil {
			return &ValidationError{Name: "inserted", err: fmt.Errorf(`ent: validator failed for field "SyncRun.inserted": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Updated(); ok {
		if err := syncrun.UpdatedValidator(v); err != nil {
			return &ValidationError{Name: "updated", err: fmt.Errorf(`ent: validator failed for field "SyncRun.updated": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skipped(); ok {
		if err := syncrun.SkippedValidator(v); err != nil {
			return &ValidationError{Name: "skipped", err: fmt.Errorf(`ent: validator failed for field "SyncRun.skipped": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := syncrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SyncRunUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncrun.Table, syncrun.Columns, sqlgraph.NewFieldSpec(syncrun.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(syncrun.FieldTrigger, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(syncrun.FieldStartDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(syncrun.FieldEndDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Inserted(); ok {
		_spec.SetField(syncrun.FieldInserted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInserted(); ok {
		_spec.AddField(syncrun.FieldInserted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Updated(); ok {
		_spec.SetField(syncrun.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpdated(); ok {
		_spec.AddField(syncrun.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(syncrun.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(syncrun.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkipReasons(); ok {
		_spec.SetField(syncrun.FieldSkipReasons, field.TypeJSON, value)
	}
	if _u.mutation.SkipReasonsCleared() {
		_spec.ClearField(syncrun.FieldSkipReasons, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(syncrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(syncrun.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(syncrun.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(syncrun.FieldFinishedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SyncRunUpdateOne is the builder for updating a single SyncRun entity.
type SyncRunUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SyncRunMutation
}

// SetTrigger sets the "trigger" field.
func (_u *SyncRunUpdateOne) SetTrigger(v syncrun.Trigger) *SyncRunUpdateOne {
	_u.mutation.SetTrigger(v)
	return _u
}

// SetNillableTrigger sets the "trigger" field if the given value is not nil.
func (_u *SyncRunUpdateOne) SetNillableTrigger(v *syncrun.Trigger) *SyncRunUpdateOne {
	if v != nil {
		_u.SetTrigger(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *SyncRunUpdateOne) SetStartDate(v string) *SyncRunUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *SyncRunUpdateOne) SetNillableStartDate(v *string) *SyncRunUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *SyncRunUpdateOne) SetEndDate(v string) *SyncRunUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *SyncRunUpdateOne) SetNillableEndDate(v *string) *SyncRunUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// SetInserted sets the "inserted" field.
func (_u *SyncRunUpdateOne) SetInserted(v int) *SyncRunUpdateOne {
	_u.mutation.ResetInserted()
	_u.mutation.SetInserted(v)
	return _u
}

// SetNillableInserted sets the "inserted" field if the given value is not nil.
func (_u *SyncRunUpdateOne) SetNillableInserted(v *int) *SyncRunUpdateOne {
	if v != nil {
		_u.SetInserted(*v)
	}
	return _u
}

// AddInserted adds value to the "inserted" field.
func (_u *SyncRunUpdateOne) AddInserted(v int) *SyncRunUpdateOne {
	_u.mutation.AddInserted(v)
	return _u
}

// SetUpdated sets the "updated" field.
func (_u *SyncRunUpdateOne) SetUpdated(v int) *SyncRunUpdateOne {
	_u.mutation.ResetUpdated()
	_u.mutation.SetUpdated(v)
	return _u
}

// SetNillableUpdated sets the "updated" field if the given value is not nil.
func (_u *SyncRunUpdateOne) SetNillableUpdated(v *int) *SyncRunUpdateOne {
	if v != nil {
		_u.SetUpdated(*v)
	}
	return _u
}

// AddUpdated adds value to the "updated" field.
func (_u *SyncRunUpdateOne) AddUpdated(v int) *SyncRunUpdateOne {
	_u.mutation.AddUpdated(v)
	return _u
}

// SetSkipped sets the "skipped" field.
func (_u *SyncRunUpdateOne) SetSkipped(v int) *SyncRunUpdateOne {
	_u.mutation.ResetSkipped()
	_u.mutation.SetSkipped(v)
	return _u
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_u *SyncRunUpdateOne) SetNillableSkipped(v *int) *SyncRunUpdateOne {
	if v != nil {
		_u.SetSkipped(*v)
	}
	return _u
}

// AddSkipped adds value to the "skipped" field.
func (_u *SyncRunUpdateOne) AddSkipped(v int) *SyncRunUpdateOne {
	_u.mutation.AddSkipped(v)
	return _u
}

// SetSkipReasons sets the "skip_reasons" field.
func (_u *SyncRunUpdateOne) SetSkipReasons(v map[string]int) *SyncRunUpdateOne {
	_u.mutation.SetSkipReasons(v)
	return _u
}

// ClearSkipReasons clears the value of the "skip_reasons" field.
func (_u *SyncRunUpdateOne) ClearSkipReasons() *SyncRunUpdateOne {
	_u.mutation.ClearSkipReasons()
	return _u
}

// SetStatus sets the "status" field.
func (_u *SyncRunUpdateOne) SetStatus(v syncrun.Status) *SyncRunUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SyncRunUpdateOne) SetNillableStatus(v *syncrun.Status) *SyncRunUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetError sets the "error" field.
func (_u *SyncRunUpdateOne) SetError(v string) *SyncRunUpdateOne {
	_u.mutation.SetError(v)
	return _u
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_u *SyncRunUpdateOne) SetNillableError(v *string) *SyncRunUpdateOne {
	if v != nil {
		_u.SetError(*v)
	}
	return _u
}

// ClearError clears the value of the "error" field.
func (_u *SyncRunUpdateOne) ClearError() *SyncRunUpdateOne {
	_u.mutation.ClearError()
	return _u
}

// SetFinishedAt sets the "finished_at" field.
func (_u *SyncRunUpdateOne) SetFinishedAt(v time.Time) *SyncRunUpdateOne {
	_u.mutation.SetFinishedAt(v)
	return _u
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_u *SyncRunUpdateOne) SetNillableFinishedAt(v *time.Time) *SyncRunUpdateOne {
	if v != nil {
		_u.SetFinishedAt(*v)
	}
	return _u
}

// Mutation returns the SyncRunMutation object of the builder.
func (_u *SyncRunUpdateOne) Mutation() *SyncRunMutation {
	return _u.mutation
}

// Where appends a list predicates to the SyncRunUpdate builder.
func (_u *SyncRunUpdateOne) Where(ps ...predicate.SyncRun) *SyncRunUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SyncRunUpdateOne) Select(field string, fields ...string) *SyncRunUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SyncRun entity.
func (_u *SyncRunUpdateOne) Save(ctx context.Context) (*SyncRun, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SyncRunUpdateOne) SaveX(ctx context.Context) *SyncRun {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SyncRunUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SyncRunUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SyncRunUpdateOne) check() error {
	if v, ok := _u.mutation.Trigger(); ok {
		if err := syncrun.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "SyncRun.trigger": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StartDate(); ok {
		if err := syncrun.StartDateValidator(v); err != nil {
			return &ValidationError{Name: "start_date", err: fmt.Errorf(`ent: validator failed for field "SyncRun.start_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EndDate(); ok {
		if err := syncrun.EndDateValidator(v); err != nil {
			return &ValidationError{Name: "end_date", err: fmt.Errorf(`ent: validator failed for field "SyncRun.end_date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Inserted(); ok {
		if err := syncrun.InsertedValidator(v); err != nil {
			return &ValidationError{Name: "inserted", err: fmt.Errorf(`ent: validator failed for field "SyncRun.inserted": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Updated(); ok {
		if err := syncrun.UpdatedValidator(v); err != nil {
			return &ValidationError{Name: "updated", err: fmt.Errorf(`ent: validator failed for field "SyncRun.updated": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skipped(); ok {
		if err := syncrun.SkippedValidator(v); err != nil {
			return &ValidationError{Name: "skipped", err: fmt.Errorf(`ent: validator failed for field "SyncRun.skipped": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := syncrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncRun.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SyncRunUpdateOne) sqlSave(ctx context.Context) (_node *SyncRun, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(syncrun.Table, syncrun.Columns, sqlgraph.NewFieldSpec(syncrun.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SyncRun.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, syncrun.FieldID)
		for _, f := range fields {
			if !syncrun.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != syncrun.FieldID {
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
	if value, ok := _u.mutation.Trigger(); ok {
		_spec.SetField(syncrun.FieldTrigger, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(syncrun.FieldStartDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(syncrun.FieldEndDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Inserted(); ok {
		_spec.SetField(syncrun.FieldInserted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInserted(); ok {
		_spec.AddField(syncrun.FieldInserted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Updated(); ok {
		_spec.SetField(syncrun.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUpdated(); ok {
		_spec.AddField(syncrun.FieldUpdated, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Skipped(); ok {
		_spec.SetField(syncrun.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSkipped(); ok {
		_spec.AddField(syncrun.FieldSkipped, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SkipReasons(); ok {
		_spec.SetField(syncrun.FieldSkipReasons, field.TypeJSON, value)
	}
	if _u.mutation.SkipReasonsCleared() {
		_spec.ClearField(syncrun.FieldSkipReasons, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(syncrun.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Error(); ok {
		_spec.SetField(syncrun.FieldError, field.TypeString, value)
	}
	if _u.mutation.ErrorCleared() {
		_spec.ClearField(syncrun.FieldError, field.TypeString)
	}
	if value, ok := _u.mutation.FinishedAt(); ok {
		_spec.SetField(syncrun.FieldFinishedAt, field.TypeTime, value)
	}
	_node = &SyncRun{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{syncrun.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
