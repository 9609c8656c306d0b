// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kizunaworks/backoffice/ent/syncrun"
)

// SyncRunCreate is the builder for creating a SyncRun entity.
type SyncRunCreate struct {
	config
	mutation *SyncRunMutation
	hooks    []Hook
}

// SetTrigger sets the "trigger" field.
func (_c *SyncRunCreate) SetTrigger(v syncrun.Trigger) *SyncRunCreate {
	_c.mutation.SetTrigger(v)
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *SyncRunCreate) SetStartDate(v string) *SyncRunCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetEndDate sets the "end_date" field.
func (_c *SyncRunCreate) SetEndDate(v string) *SyncRunCreate {
	_c.mutation.SetEndDate(v)
	return _c
}

// SetInserted sets the "inserted" field.
func (_c *SyncRunCreate) SetInserted(v int) *SyncRunCreate {
	_c.mutation.SetInserted(v)
	return _c
}

// SetNillableInserted sets the "inserted" field if the given value is not nil.
func (_c *SyncRunCreate) SetNillableInserted(v *int) *SyncRunCreate {
	if v != nil {
		_c.SetInserted(*v)
	}
	return _c
}

// SetUpdated sets the "updated" field.
func (_c *SyncRunCreate) SetUpdated(v int) *SyncRunCreate {
	_c.mutation.SetUpdated(v)
	return _c
}

// SetNillableUpdated sets the "updated" field if the given value is not nil.
func (_c *SyncRunCreate) SetNillableUpdated(v *int) *SyncRunCreate {
	if v != nil {
		_c.SetUpdated(*v)
	}
	return _c
}

// SetSkipped sets the "skipped" field.
func (_c *SyncRunCreate) SetSkipped(v int) *SyncRunCreate {
	_c.mutation.SetSkipped(v)
	return _c
}

// SetNillableSkipped sets the "skipped" field if the given value is not nil.
func (_c *SyncRunCreate) SetNillableSkipped(v *int) *SyncRunCreate {
	if v != nil {
		_c.SetSkipped(*v)
	}
	return _c
}

// SetSkipReasons sets the "skip_reasons" field.
func (_c *SyncRunCreate) SetSkipReasons(v map[string]int) *SyncRunCreate {
	_c.mutation.SetSkipReasons(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SyncRunCreate) SetStatus(v syncrun.Status) *SyncRunCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetError sets the "error" field.
func (_c *SyncRunCreate) SetError(v string) *SyncRunCreate {
	_c.mutation.SetError(v)
	return _c
}

// SetNillableError sets the "error" field if the given value is not nil.
func (_c *SyncRunCreate) SetNillableError(v *string) *SyncRunCreate {
	if v != nil {
		_c.SetError(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *SyncRunCreate) SetStartedAt(v time.Time) *SyncRunCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *SyncRunCreate) SetNillableStartedAt(v *time.Time) *SyncRunCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetFinishedAt sets the "finished_at" field.
func (_c *SyncRunCreate) SetFinishedAt(v time.Time) *SyncRunCreate {
	_c.mutation.SetFinishedAt(v)
	return _c
}

// SetNillableFinishedAt sets the "finished_at" field if the given value is not nil.
func (_c *SyncRunCreate) SetNillableFinishedAt(v *time.Time) *SyncRunCreate {
	if v != nil {
		_c.SetFinishedAt(*v)
	}
	return _c
}

// Mutation returns the SyncRunMutation object of the builder.
func (_c *SyncRunCreate) Mutation() *SyncRunMutation {
	return _c.mutation
}

// Save creates the SyncRun in the database.
func (_c *SyncRunCreate) Save(ctx context.Context) (*SyncRun, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SyncRunCreate) SaveX(ctx context.Context) *SyncRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncRunCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncRunCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SyncRunCreate) defaults() {
	if _, ok := _c.mutation.Inserted(); !ok {
		v := syncrun.DefaultInserted
		_c.mutation.SetInserted(v)
	}
	if _, ok := _c.mutation.Updated(); !ok {
		v := syncrun.DefaultUpdated
		_c.mutation.SetUpdated(v)
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		v := syncrun.DefaultSkipped
		_c.mutation.SetSkipped(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := syncrun.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
	if _, ok := _c.mutation.FinishedAt(); !ok {
		v := syncrun.DefaultFinishedAt()
		_c.mutation.SetFinishedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SyncRunCreate) check() error {
	if _, ok := _c.mutation.Trigger(); !ok {
		return &ValidationError{Name: "trigger", err: errors.New(`ent: missing required field "SyncRun.trigger"`)}
	}
	if v, ok := _c.mutation.Trigger(); ok {
		if err := syncrun.TriggerValidator(v); err != nil {
			return &ValidationError{Name: "trigger", err: fmt.Errorf(`ent: validator failed for field "SyncRun.trigger": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartDate(); !ok {
		return &ValidationError{Name: "start_date", err: errors.New(`ent: missing required field "SyncRun.start_date"`)}
	}
	if v, ok := _c.mutation.StartDate(); ok {
		if err := syncrun.StartDateValidator(v); err != nil {
			return &ValidationError{Name: "start_date", err: fmt.Errorf(`ent: validator failed for field "SyncRun.start_date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EndDate(); !ok {
		return &ValidationError{Name: "end_date", err: errors.New(`ent: missing required field "SyncRun.end_date"`)}
	}
	if v, ok := _c.mutation.EndDate(); ok {
		if err := syncrun.EndDateValidator(v); err != nil {
			return &ValidationError{Name: "end_date", err: fmt.Errorf(`ent: validator failed for field "SyncRun.end_date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Inserted(); !ok {
		return &ValidationError{Name: "inserted", err: errors.New(`ent: missing required field "SyncRun.inserted"`)}
	}
	if v, ok := _c.mutation.Inserted(); ok {
		if err := syncrun.InsertedValidator(v); err != nil {
			return &ValidationError{Name: "inserted", err: fmt.Errorf(`ent: validator failed for field "SyncRun.inserted": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Updated(); !ok {
		return &ValidationError{Name: "updated", err: errors.New(`ent: missing required field "SyncRun.updated"`)}
	}
	if v, ok := _c.mutation.Updated(); ok {
		if err := syncrun.UpdatedValidator(v); err != nil {
			return &ValidationError{Name: "updated", err: fmt.Errorf(`ent: validator failed for field "SyncRun.updated": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skipped(); !ok {
		return &ValidationError{Name: "skipped", err: errors.New(`ent: missing required field "SyncRun.skipped"`)}
	}
	if v, ok := _c.mutation.Skipped(); ok {
		if err := syncrun.SkippedValidator(v); err != nil {
			return &ValidationError{Name: "skipped", err: fmt.Errorf(`ent: validator failed for field "SyncRun.skipped": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SyncRun.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := syncrun.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "SyncRun.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "SyncRun.started_at"`)}
	}
	if _, ok := _c.mutation.FinishedAt(); !ok {
		return &ValidationError{Name: "finished_at", err: errors.New(`ent: missing required field "SyncRun.finished_at"`)}
	}
	return nil
}

func (_c *SyncRunCreate) sqlSave(ctx context.Context) (*SyncRun, error) {
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

func (_c *SyncRunCreate) createSpec() (*SyncRun, *sqlgraph.CreateSpec) {
	var (
		_node = &SyncRun{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(syncrun.Table, sqlgraph.NewFieldSpec(syncrun.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Trigger(); ok {
		_spec.SetField(syncrun.FieldTrigger, field.TypeEnum, value)
		_node.Trigger = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(syncrun.FieldStartDate, field.TypeString, value)
		_node.StartDate = value
	}
	if value, ok := _c.mutation.EndDate(); ok {
		_spec.SetField(syncrun.FieldEndDate, field.TypeString, value)
		_node.EndDate = value
	}
	if value, ok := _c.mutation.Inserted(); ok {
		_spec.SetField(syncrun.FieldInserted, field.TypeInt, value)
		_node.Inserted = value
	}
	if value, ok := _c.mutation.Updated(); ok {
		_spec.SetField(syncrun.FieldUpdated, field.TypeInt, value)
		_node.Updated = value
	}
	if value, ok := _c.mutation.Skipped(); ok {
		_spec.SetField(syncrun.FieldSkipped, field.TypeInt, value)
		_node.Skipped = value
	}
	if value, ok := _c.mutation.SkipReasons(); ok {
		_spec.SetField(syncrun.FieldSkipReasons, field.TypeJSON, value)
		_node.SkipReasons = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(syncrun.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Error(); ok {
		_spec.SetField(syncrun.FieldError, field.TypeString, value)
		_node.Error = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(syncrun.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.FinishedAt(); ok {
		_spec.SetField(syncrun.FieldFinishedAt, field.TypeTime, value)
		_node.FinishedAt = value
	}
	return _node, _spec
}

// SyncRunCreateBulk is the builder for creating many SyncRun entities in bulk.
type SyncRunCreateBulk struct {
	config
	err      error
	builders []*SyncRunCreate
}

// Save creates the SyncRun entities in the database.
func (_c *SyncRunCreateBulk) Save(ctx context.Context) ([]*SyncRun, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SyncRun, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SyncRunMutation)
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
func (_c *SyncRunCreateBulk) SaveX(ctx context.Context) []*SyncRun {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SyncRunCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SyncRunCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
