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
	"github.com/kizunaworks/backoffice/ent/salescontact"
	"github.com/kizunaworks/backoffice/ent/user"
)

// SalesContactUpdate is the builder for updating SalesContact entities.
type SalesContactUpdate struct {
	config
	hooks    []Hook
	mutation *SalesContactMutation
}

// Where appends a list predicates to the SalesContactUpdate builder.
func (_u *SalesContactUpdate) Where(ps ...predicate.SalesContact) *SalesContactUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SalesContactUpdate) SetUserID(v int) *SalesContactUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SalesContactUpdate) SetNillableUserID(v *int) *SalesContactUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *SalesContactUpdate) SetDate(v string) *SalesContactUpdate {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *SalesContactUpdate) SetNillableDate(v *string) *SalesContactUpdate {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *SalesContactUpdate) SetOccurredAt(v time.Time) *SalesContactUpdate {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *SalesContactUpdate) SetNillableOccurredAt(v *time.Time) *SalesContactUpdate {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// SetManagerName sets the "manager_name" field.
func (_u *SalesContactUpdate) SetManagerName(v string) *SalesContactUpdate {
	_u.mutation.SetManagerName(v)
	return _u
}

// SetNillableManagerName sets the "manager_name" field if the given value is not nil.
func (_u *SalesContactUpdate) SetNillableManagerName(v *string) *SalesContactUpdate {
	if v != nil {
		_u.SetManagerName(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *SalesContactUpdate) SetCompanyName(v string) *SalesContactUpdate {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *SalesContactUpdate) SetNillableCompanyName(v *string) *SalesContactUpdate {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *SalesContactUpdate) ClearCompanyName() *SalesContactUpdate {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *SalesContactUpdate) SetPhone(v string) *SalesContactUpdate {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *SalesContactUpdate) SetNillablePhone(v *string) *SalesContactUpdate {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *SalesContactUpdate) ClearPhone() *SalesContactUpdate {
	_u.mutation.ClearPhone()
	return _u
}

// SetContactMethod sets the "contact_method" field.
func (_u *SalesContactUpdate) SetContactMethod(v string) *SalesContactUpdate {
	_u.mutation.SetContactMethod(v)
	return _u
}

// SetNillableContactMethod sets the "contact_method" field if the given value is not nil.
func (_u *SalesContactUpdate) SetNillableContactMethod(v *string) *SalesContactUpdate {
	if v != nil {
		_u.SetContactMethod(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SalesContactUpdate) SetStatus(v string) *SalesContactUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SalesContactUpdate) SetNillableStatus(v *string) *SalesContactUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExternalCallID sets the "external_call_id" field.
func (_u *SalesContactUpdate) SetExternalCallID(v string) *SalesContactUpdate {
	_u.mutation.SetExternalCallID(v)
	return _u
}

// SetNillableExternalCallID sets the "external_call_id" field if the given value is not nil.
func (_u *SalesContactUpdate) SetNillableExternalCallID(v *string) *SalesContactUpdate {
	if v != nil {
		_u.SetExternalCallID(*v)
	}
	return _u
}

// ClearExternalCallID clears the value of the "external_call_id" field.
func (_u *SalesContactUpdate) ClearExternalCallID() *SalesContactUpdate {
	_u.mutation.ClearExternalCallID()
	return _u
}

// SetExternalSource sets the "external_source" field.
func (_u *SalesContactUpdate) SetExternalSource(v string) *SalesContactUpdate {
	_u.mutation.SetExternalSource(v)
	return _u
}

// SetNillableExternalSource sets the "external_source" field if the given value is not nil.
func (_u *SalesContactUpdate) SetNillableExternalSource(v *string) *SalesContactUpdate {
	if v != nil {
		_u.SetExternalSource(*v)
	}
	return _u
}

// ClearExternalSource clears the value of the "external_source" field.
func (_u *SalesContactUpdate) ClearExternalSource() *SalesContactUpdate {
	_u.mutation.ClearExternalSource()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SalesContactUpdate) SetUpdatedAt(v time.Time) *SalesContactUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *SalesContactUpdate) SetOwnerID(id int) *SalesContactUpdate {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *SalesContactUpdate) SetOwner(v *User) *SalesContactUpdate {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the SalesContactMutation object of the builder.
func (_u *SalesContactUpdate) Mutation() *SalesContactMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *SalesContactUpdate) ClearOwner() *SalesContactUpdate {
	_u.mutation.ClearOwner()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SalesContactUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SalesContactUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SalesContactUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SalesContactUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SalesContactUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := salescontact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SalesContactUpdate) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := salescontact.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "SalesContact.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ManagerName(); ok {
		if err := salescontact.ManagerNameValidator(v); err != nil {
			return &ValidationError{Name: "manager_name", err: fmt.Errorf(`ent: validator failed for field "SalesContact.manager_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := salescontact.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "SalesContact.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExternalCallID(); ok {
		if err := salescontact.ExternalCallIDValidator(v); err != nil {
			return &ValidationError{Name: "external_call_id", err: fmt.Errorf(`ent: validator failed for field "SalesContact.external_call_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExternalSource(); ok {
		if err := salescontact.ExternalSourceValidator(v); err != nil {
			return &ValidationError{Name: "external_source", err: fmt.Errorf(`ent: validator failed for field "SalesContact.external_source": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SalesContact.owner"`)
	}
	return nil
}

func (_u *SalesContactUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(salescontact.Table, salescontact.Columns, sqlgraph.NewFieldSpec(salescontact.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(salescontact.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(salescontact.FieldOccurredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ManagerName(); ok {
		_spec.SetField(salescontact.FieldManagerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(salescontact.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(salescontact.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(salescontact.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(salescontact.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.ContactMethod(); ok {
		_spec.SetField(salescontact.FieldContactMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(salescontact.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalCallID(); ok {
		_spec.SetField(salescontact.FieldExternalCallID, field.TypeString, value)
	}
	if _u.mutation.ExternalCallIDCleared() {
		_spec.ClearField(salescontact.FieldExternalCallID, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalSource(); ok {
		_spec.SetField(salescontact.FieldExternalSource, field.TypeString, value)
	}
	if _u.mutation.ExternalSourceCleared() {
		_spec.ClearField(salescontact.FieldExternalSource, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(salescontact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{salescontact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SalesContactUpdateOne is the builder for updating a single SalesContact entity.
type SalesContactUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SalesContactMutation
}

// SetUserID sets the "user_id" field.
func (_u *SalesContactUpdateOne) SetUserID(v int) *SalesContactUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SalesContactUpdateOne) SetNillableUserID(v *int) *SalesContactUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDate sets the "date" field.
func (_u *SalesContactUpdateOne) SetDate(v string) *SalesContactUpdateOne {
	_u.mutation.SetDate(v)
	return _u
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (_u *SalesContactUpdateOne) SetNillableDate(v *string) *SalesContactUpdateOne {
	if v != nil {
		_u.SetDate(*v)
	}
	return _u
}

// SetOccurredAt sets the "occurred_at" field.
func (_u *SalesContactUpdateOne) SetOccurredAt(v time.Time) *SalesContactUpdateOne {
	_u.mutation.SetOccurredAt(v)
	return _u
}

// SetNillableOccurredAt sets the "occurred_at" field if the given value is not nil.
func (_u *SalesContactUpdateOne) SetNillableOccurredAt(v *time.Time) *SalesContactUpdateOne {
	if v != nil {
		_u.SetOccurredAt(*v)
	}
	return _u
}

// SetManagerName sets the "manager_name" field.
func (_u *SalesContactUpdateOne) SetManagerName(v string) *SalesContactUpdateOne {
	_u.mutation.SetManagerName(v)
	return _u
}

// SetNillableManagerName sets the "manager_name" field if the given value is not nil.
func (_u *SalesContactUpdateOne) SetNillableManagerName(v *string) *SalesContactUpdateOne {
	if v != nil {
		_u.SetManagerName(*v)
	}
	return _u
}

// SetCompanyName sets the "company_name" field.
func (_u *SalesContactUpdateOne) SetCompanyName(v string) *SalesContactUpdateOne {
	_u.mutation.SetCompanyName(v)
	return _u
}

// SetNillableCompanyName sets the "company_name" field if the given value is not nil.
func (_u *SalesContactUpdateOne) SetNillableCompanyName(v *string) *SalesContactUpdateOne {
	if v != nil {
		_u.SetCompanyName(*v)
	}
	return _u
}

// ClearCompanyName clears the value of the "company_name" field.
func (_u *SalesContactUpdateOne) ClearCompanyName() *SalesContactUpdateOne {
	_u.mutation.ClearCompanyName()
	return _u
}

// SetPhone sets the "phone" field.
func (_u *SalesContactUpdateOne) SetPhone(v string) *SalesContactUpdateOne {
	_u.mutation.SetPhone(v)
	return _u
}

// SetNillablePhone sets the "phone" field if the given value is not nil.
func (_u *SalesContactUpdateOne) SetNillablePhone(v *string) *SalesContactUpdateOne {
	if v != nil {
		_u.SetPhone(*v)
	}
	return _u
}

// ClearPhone clears the value of the "phone" field.
func (_u *SalesContactUpdateOne) ClearPhone() *SalesContactUpdateOne {
	_u.mutation.ClearPhone()
	return _u
}

// SetContactMethod sets the "contact_method" field.
func (_u *SalesContactUpdateOne) SetContactMethod(v string) *SalesContactUpdateOne {
	_u.mutation.SetContactMethod(v)
	return _u
}

// SetNillableContactMethod sets the "contact_method" field if the given value is not nil.
func (_u *SalesContactUpdateOne) SetNillableContactMethod(v *string) *SalesContactUpdateOne {
	if v != nil {
		_u.SetContactMethod(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SalesContactUpdateOne) SetStatus(v string) *SalesContactUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SalesContactUpdateOne) SetNillableStatus(v *string) *SalesContactUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetExternalCallID sets the "external_call_id" field.
func (_u *SalesContactUpdateOne) SetExternalCallID(v string) *SalesContactUpdateOne {
	_u.mutation.SetExternalCallID(v)
	return _u
}

// SetNillableExternalCallID sets the "external_call_id" field if the given value is not nil.
func (_u *SalesContactUpdateOne) SetNillableExternalCallID(v *string) *SalesContactUpdateOne {
	if v != nil {
		_u.SetExternalCallID(*v)
	}
	return _u
}

// ClearExternalCallID clears the value of the "external_call_id" field.
func (_u *SalesContactUpdateOne) ClearExternalCallID() *SalesContactUpdateOne {
	_u.mutation.ClearExternalCallID()
	return _u
}

// SetExternalSource sets the "external_source" field.
func (_u *SalesContactUpdateOne) SetExternalSource(v string) *SalesContactUpdateOne {
	_u.mutation.SetExternalSource(v)
	return _u
}

// SetNillableExternalSource sets the "external_source" field if the given value is not nil.
func (_u *SalesContactUpdateOne) SetNillableExternalSource(v *string) *SalesContactUpdateOne {
	if v != nil {
		_u.SetExternalSource(*v)
	}
	return _u
}

// ClearExternalSource clears the value of the "external_source" field.
func (_u *SalesContactUpdateOne) ClearExternalSource() *SalesContactUpdateOne {
	_u.mutation.ClearExternalSource()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SalesContactUpdateOne) SetUpdatedAt(v time.Time) *SalesContactUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetOwnerID sets the "owner" edge to the User entity by ID.
func (_u *SalesContactUpdateOne) SetOwnerID(id int) *SalesContactUpdateOne {
	_u.mutation.SetOwnerID(id)
	return _u
}

// SetOwner sets the "owner" edge to the User entity.
func (_u *SalesContactUpdateOne) SetOwner(v *User) *SalesContactUpdateOne {
	return _u.SetOwnerID(v.ID)
}

// Mutation returns the SalesContactMutation object of the builder.
func (_u *SalesContactUpdateOne) Mutation() *SalesContactMutation {
	return _u.mutation
}

// ClearOwner clears the "owner" edge to the User entity.
func (_u *SalesContactUpdateOne) ClearOwner() *SalesContactUpdateOne {
	_u.mutation.ClearOwner()
	return _u
}

// Where appends a list predicates to the SalesContactUpdate builder.
func (_u *SalesContactUpdateOne) Where(ps ...predicate.SalesContact) *SalesContactUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SalesContactUpdateOne) Select(field string, fields ...string) *SalesContactUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SalesContact entity.
func (_u *SalesContactUpdateOne) Save(ctx context.Context) (*SalesContact, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SalesContactUpdateOne) SaveX(ctx context.Context) *SalesContact {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SalesContactUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SalesContactUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SalesContactUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := salescontact.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SalesContactUpdateOne) check() error {
	if v, ok := _u.mutation.Date(); ok {
		if err := salescontact.DateValidator(v); err != nil {
			return &ValidationError{Name: "date", err: fmt.Errorf(`ent: validator failed for field "SalesContact.date": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ManagerName(); ok {
		if err := salescontact.ManagerNameValidator(v); err != nil {
			return &ValidationError{Name: "manager_name", err: fmt.Errorf(`ent: validator failed for field "SalesContact.manager_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Phone(); ok {
		if err := salescontact.PhoneValidator(v); err != nil {
			return &ValidationError{Name: "phone", err: fmt.Errorf(`ent: validator failed for field "SalesContact.phone": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExternalCallID(); ok {
		if err := salescontact.ExternalCallIDValidator(v); err != nil {
			return &ValidationError{Name: "external_call_id", err: fmt.Errorf(`ent: validator failed for field "SalesContact.external_call_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ExternalSource(); ok {
		if err := salescontact.ExternalSourceValidator(v); err != nil {
			return &ValidationError{Name: "external_source", err: fmt.Errorf(`ent: validator failed for field "SalesContact.external_source": %w`, err)}
		}
	}
	if _u.mutation.OwnerCleared() && len(_u.mutation.OwnerIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "SalesContact.owner"`)
	}
	return nil
}

func (_u *SalesContactUpdateOne) sqlSave(ctx context.Context) (_node *SalesContact, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(salescontact.Table, salescontact.Columns, sqlgraph.NewFieldSpec(salescontact.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SalesContact.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, salescontact.FieldID)
		for _, f := range fields {
			if !salescontact.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != salescontact.FieldID {
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
	if value, ok := _u.mutation.Date(); ok {
		_spec.SetField(salescontact.FieldDate, field.TypeString, value)
	}
	if value, ok := _u.mutation.OccurredAt(); ok {
		_spec.SetField(salescontact.FieldOccurredAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.ManagerName(); ok {
		_spec.SetField(salescontact.FieldManagerName, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompanyName(); ok {
		_spec.SetField(salescontact.FieldCompanyName, field.TypeString, value)
	}
	if _u.mutation.CompanyNameCleared() {
		_spec.ClearField(salescontact.FieldCompanyName, field.TypeString)
	}
	if value, ok := _u.mutation.Phone(); ok {
		_spec.SetField(salescontact.FieldPhone, field.TypeString, value)
	}
	if _u.mutation.PhoneCleared() {
		_spec.ClearField(salescontact.FieldPhone, field.TypeString)
	}
	if value, ok := _u.mutation.ContactMethod(); ok {
		_spec.SetField(salescontact.FieldContactMethod, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(salescontact.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExternalCallID(); ok {
		_spec.SetField(salescontact.FieldExternalCallID, field.TypeString, value)
	}
	if _u.mutation.ExternalCallIDCleared() {
		_spec.ClearField(salescontact.FieldExternalCallID, field.TypeString)
	}
	if value, ok := _u.mutation.ExternalSource(); ok {
		_spec.SetField(salescontact.FieldExternalSource, field.TypeString, value)
	}
	if _u.mutation.ExternalSourceCleared() {
		_spec.ClearField(salescontact.FieldExternalSource, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(salescontact.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.OwnerCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OwnerIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &SalesContact{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{salescontact.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
