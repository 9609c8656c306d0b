// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/kizunaworks/backoffice/ent/salescontact"
	"github.com/kizunaworks/backoffice/ent/user"
)

// SalesContactCreate is the builder for creating a SalesContact entity.
type SalesContactCreate struct {
	config
	mutation *SalesContactMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *SalesContactCreate) SetUserID(v int) *SalesContactCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetDate sets the "date" field.
func (_c *SalesContactCreate) SetDate(v string) *SalesContactCreate {
	_c.mutation.SetDate(v)
	return _c
}

// SetOccurredAt sets the "occurred_at" field.
func (_c *SalesContactCreate) SetOccurredAt(v time.Time) *SalesContactCreate {
	_c.mutation.SetOccurredAt(v)
	return _c
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_c *SalesContactCreate) SetNillableOccurredAt(v *time.Time) *SalesContactCreate {
	if v != nil {
		_c.SetOccurredAt(*v)
	}
	return _c
}

// SetManagerName sets the "manager_name" field.
func (_c *SalesContactCreate) SetManagerName(v string) *SalesContactCreate {
	_c.mutation.SetManagerName(v)
	return _c
}

// SetCompanyName sets the "company_name" field.
func (_c *SalesContactCreate) SetCompanyName(v string) *SalesContactCreate {
	_c.mutation.SetCompanyName(v)
	return _c
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_c *SalesContactCreate) SetNillableCompanyName(v *string) *SalesContactCreate {
	if v != nil {
		_c.SetCompanyName(*v)
	}
	return _c
}

// SetPhone sets the "phone" field.
func (_c *SalesContactCreate) SetPhone(v string) *SalesContactCreate {
	_c.mutation.SetPhone(v)
	return _c
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_c *SalesContactCreate) SetNillablePhone(v *string) *SalesContactCreate {
	if v != nil {
		_c.SetPhone(*v)
	}
	return _c
}

// SetContactMethod sets the "contact_method" field.
func (_c *SalesContactCreate) SetContactMethod(v string) *SalesContactCreate {
	_c.mutation.SetContactMethod(v)
	return _c
}

// SetNillableContactMethod sets the "contact_method" field if the given value is not nil.
func (_c *SalesContactCreate) SetNillableContactMethod(v *string) *SalesContactCreate {
	if v != nil {
		_c.SetContactMethod(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *SalesContactCreate) SetStatus(v string) *SalesContactCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SalesContactCreate) SetNillableStatus(v *string) *SalesContactCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetExternalCallID sets the "external_call_id" field.
func (_c *SalesContactCreate) SetExternalCallID(v string) *SalesContactCreate {
	_c.mutation.SetExternalCallID(v)
	return _c
}

// SetNillableExternalCallID sets the "external_call_id" field if the given value is not nil.
func (_c *SalesContactCreate) SetNillableExternalCallID(v *string) *SalesContactCreate {
	if v != nil {
		_c.SetExternalCallID(*v)
	}
	return _c
}

// SetExternalSource sets the "external_source" field.
func (_c *SalesContactCreate) SetExternalSource(v string) *SalesContactCreate {
	_c.mutation.SetExternalSource(v)
	return _c
}

// SetNillableExternalSource sets the "external_source" field if the given value is not nil.
func (_c *SalesContactCreate) SetNillableExternalSource(v *string) *SalesContactCreate {
	if v != nil {
		_c.SetExternalSource(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SalesContactCreate) SetCreatedAt(v time.Time) *SalesContactCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SalesContactCreate) SetNillableCreatedAt(v *time.Time) *SalesContactCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SalesContactCreate) SetUpdatedAt(v time.Time) *SalesContactCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SalesContactCreate) SetNillableUpdatedAt(v *time.Time) *SalesContactCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_c *SalesContactCreate) SetOwnerID(id int) *SalesContactCreate {
	_c.mutation.SetOwnerID(id)
	return _c
}

// SetOwner sets the "owner" edge to the User entity.
func (_c *SalesContactCreate) SetOwner(v *User) *SalesContactCreate {
	return _c.SetOwnerID(v.ID)
}

// Mutation returns the SalesContactMutation object of the builder.
func (_c *SalesContactCreate) Mutation() *SalesContactMutation {
	return _c.mutation
}

// Save creates the SalesContact in the database.
func (_c *SalesContactCreate) Save(ctx context.Context) (*SalesContact, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SalesContactCreate) SaveX(ctx context.Context) *SalesContact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SalesContactCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SalesContactCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SalesContactCreate) defaults() {
	if _, ok := _c.mutation.OccurredAt(); !ok {
		v := salescontact.DefaultOccurredAt()
		_c.mutation.SetOccurredAt(v)
	}
	if _, ok := _c.mutation.ContactMethod(); !ok {
		v := salescontact.DefaultContactMethod
		_c.mutation.SetContactMethod(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := salescontact.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := salescontact.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := salescontact.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SalesContactCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SalesContact.user_id"`)}
	}
	if _, ok := _c.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`ent: missing required field "SalesContact.date"`)}
	}
	if v, ok := _c.mutation.Date(); ok {
		if err := salescontact.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "SalesContact.date": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OccurredAt(); !ok {
		return &ValidationError{Name: "occurred_at", err: errors.New(`ent: missing required field "SalesContact.occurred_at"`)}
	}
	if _, ok := _c.mutation.ManagerName(); !ok {
		return &ValidationError{Name: "manager_name", err: errors.New(`ent: missing required field "SalesContact.manager_name"`)}
	}
	if v, ok := _c.mutation.ManagerName(); ok {
		if err := salescontact.ManagerNameValidator(v); err != nil {
			return &ValidationError{Name: "manager_name", err: fmt.Errorf(`ent: validator failed for field "SalesContact.manager_name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Phone(); ok {
		if err := salescontact.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "SalesContact.phone": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ContactMethod(); !ok {
		return &ValidationError{Name: "contact_method", err: errors.New(`ent: missing required field "SalesContact.contact_method"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "SalesContact.status"`)}
	}
	if v, ok := _c.mutation.ExternalCallID(); ok {
		if err := salescontact.ExternalCallIDValidator(v); err != nil {
			return &ValidationError{Name: "external_call_id", err: fmt.Errorf(`ent: validator failed for field "SalesContact.external_call_id": %w`, err)}
		}
	}
	if v, ok := _c.mutation.ExternalSource(); ok {
		if err := salescontact.ExternalSourceValidator(v); err != nil {
			return &ValidationError{Name: "external_source", err: fmt.Errorf(`ent: validator failed for field "SalesContact.external_source": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SalesContact.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SalesContact.updated_at"`)}
	}
	if len(_c.mutation.OwnerIDs()) == 0 {
		return &ValidationError{Name: "owner", err: errors.New(`ent: missing required edge "SalesContact.owner"`)}
	}
	return nil
}

func (_c *SalesContactCreate) sqlSave(ctx context.Context) (*SalesContact, error) {
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

func (_c *SalesContactCreate) createSpec() (*SalesContact, *sqlgraph.CreateSpec) {
	var (
		_node = &SalesContact{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(salescontact.Table, sqlgraph.NewFieldSpec(salescontact.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Date(); ok {
		_spec.SetField(salescontact.FieldDate, field.TypeString, value)
		_node.Date = value
	}
	if value, ok := _c.mutation.OccurredAt(); ok {
		_spec.SetField(salescontact.FieldOccurredAt, field.TypeTime, value)
		_node.OccurredAt = value
	}
	if value, ok := _c.mutation.ManagerName(); ok {
		_spec.SetField(salescontact.FieldManagerName, field.TypeString, value)
		_node.ManagerName = value
	}
	if value, ok := _c.mutation.CompanyName(); ok {
		_spec.SetField(salescontact.FieldCompanyName, field.TypeString, value)
		_node.CompanyName = value
	}
	if value, ok := _c.mutation.Phone(); ok {
		_spec.SetField(salescontact.FieldPhone, field.TypeString, value)
		_node.Phone = value
	}
	if value, ok := _c.mutation.ContactMethod(); ok {
		_spec.SetField(salescontact.FieldContactMethod, field.TypeString, value)
		_node.ContactMethod = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(salescontact.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ExternalCallID(); ok {
		_spec.SetField(salescontact.FieldExternalCallID, field.TypeString, value)
		_node.ExternalCallID = &value
	}
	if value, ok := _c.mutation.ExternalSource(); ok {
		_spec.SetField(salescontact.FieldExternalSource, field.TypeString, value)
		_node.ExternalSource = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(salescontact.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(salescontact.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.OwnerIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   salescontact.OwnerTable,
			Columns: []string{salescontact.OwnerColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeInt),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// SalesContactCreateBulk is the builder for creating many SalesContact entities in bulk.
type SalesContactCreateBulk struct {
	config
	err      error
	builders []*SalesContactCreate
}

// Save creates the SalesContact entities in the database.
func (_c *SalesContactCreateBulk) Save(ctx context.Context) ([]*SalesContact, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SalesContact, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SalesContactMutation)
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
func (_c *SalesContactCreateBulk) SaveX(ctx context.Context) []*SalesContact {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SalesContactCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SalesContactCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
