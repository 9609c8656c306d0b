// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kizunaworks/backoffice/ent/predicate"
	"github.com/kizunaworks/backoffice/ent/salescontact"
	"github.com/kizunaworks/backoffice/ent/syncrun"
	"github.com/kizunaworks/backoffice/ent/user"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeSalesContact = "SalesContact"
	TypeSyncRun      = "SyncRun"
	TypeUser         = "User"
)

// SalesContactMutation represents an operation that mutates the SalesContact nodes in the graph.
type SalesContactMutation struct {
	config
	op               Op
	typ              string
	id               *int
	date             *string
	occurred_at      *time.Time
	manager_name     *string
	company_name     *string
	phone            *string
	contact_method   *string
	status           *string
	external_call_id *string
	external_source  *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	owner            *int
	clearedowner     bool
	done             bool
	oldValue         func(context.Context) (*SalesContact, error)
	predicates       []predicate.SalesContact
}

var _ ent.Mutation = (*SalesContactMutation)(nil)

// salescontactOption allows management of the mutation configuration using functional options.
type salescontactOption func(*SalesContactMutation)

// newSalesContactMutation creates new mutation for the SalesContact entity.
func newSalesContactMutation(c config, op Op, opts ...salescontactOption) *SalesContactMutation {
	m := &SalesContactMutation{
		config:        c,
		op:            op,
		typ:           TypeSalesContact,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSalesContactID sets the ID field of the mutation.
func withSalesContactID(id int) salescontactOption {
	return func(m *SalesContactMutation) {
		var (
			err   error
			once  sync.Once
			value *SalesContact
		)
		m.oldValue = func(ctx context.Context) (*SalesContact, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SalesContact.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSalesContact sets the old SalesContact of the mutation.
func withSalesContact(node *SalesContact) salescontactOption {
	return func(m *SalesContactMutation) {
		m.oldValue = func(context.Context) (*SalesContact, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SalesContactMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SalesContactMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SalesContactMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SalesContactMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SalesContact.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *SalesContactMutation) SetUserID(i int) {
	m.owner = &i
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *SalesContactMutation) UserID() (r int, exists bool) {
	v := m.owner
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the SalesContact entity.
// If the SalesContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesContactMutation) OldUserID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *SalesContactMutation) ResetUserID() {
	m.owner = nil
}

// SetDate sets the "date" field.
func (m *SalesContactMutation) SetDate(s string) {
	m.date = &s
}

// Date returns the value of the "date" field in the mutation.
func (m *SalesContactMutation) Date() (r string, exists bool) {
	v := m.date
	if v == nil {
		return
	}
	return *v, true
}

// OldDate returns the old "date" field's value of the SalesContact entity.
// If the SalesContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesContactMutation) OldDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDate: %w", err)
	}
	return oldValue.Date, nil
}

// ResetDate resets all changes to the "date" field.
func (m *SalesContactMutation) ResetDate() {
	m.date = nil
}

// SetOccurredAt sets the "occurred_at" field.
func (m *SalesContactMutation) SetOccurredAt(t time.Time) {
	m.occurred_at = &t
}

// OccurredAt returns the value of the "occurred_at" field in the mutation.
func (m *SalesContactMutation) OccurredAt() (r time.Time, exists bool) {
	v := m.occurred_at
	if v == nil {
		return
	}
	return *v, true
}

// OldOccurredAt returns the old "occurred_at" field's value of the SalesContact entity.
// If the SalesContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesContactMutation) OldOccurredAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccurredAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccurredAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccurredAt: %w", err)
	}
	return oldValue.OccurredAt, nil
}

// ResetOccurredAt resets all changes to the "occurred_at" field.
func (m *SalesContactMutation) ResetOccurredAt() {
	m.occurred_at = nil
}

// SetManagerName sets the "manager_name" field.
func (m *SalesContactMutation) SetManagerName(s string) {
	m.manager_name = &s
}

// ManagerName returns the value of the "manager_name" field in the mutation.
func (m *SalesContactMutation) ManagerName() (r string, exists bool) {
	v := m.manager_name
	if v == nil {
		return
	}
	return *v, true
}

// OldManagerName returns the old "manager_name" field's value of the SalesContact entity.
// If the SalesContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesContactMutation) OldManagerName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldManagerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldManagerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldManagerName: %w", err)
	}
	return oldValue.ManagerName, nil
}

// ResetManagerName resets all changes to the "manager_name" field.
func (m *SalesContactMutation) ResetManagerName() {
	m.manager_name = nil
}

// SetCompanyName sets the "company_name" field.
func (m *SalesContactMutation) SetCompanyName(s string) {
	m.company_name = &s
}

// CompanyName returns the value of the "company_name" field in the mutation.
func (m *SalesContactMutation) CompanyName() (r string, exists bool) {
	v := m.company_name
	if v == nil {
		return
	}
	return *v, true
}

// OldCompanyName returns the old "company_name" field's value of the SalesContact entity.
// If the SalesContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesContactMutation) OldCompanyName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompanyName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompanyName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompanyName: %w", err)
	}
	return oldValue.CompanyName, nil
}

// ClearCompanyName clears the value of the "company_name" field.
func (m *SalesContactMutation) ClearCompanyName() {
	m.company_name = nil
	m.clearedFields[salescontact.FieldCompanyName] = struct{}{}
}

// CompanyNameCleared returns if the "company_name" field was cleared in this mutation.
func (m *SalesContactMutation) CompanyNameCleared() bool {
	_, ok := m.clearedFields[salescontact.FieldCompanyName]
	return ok
}

// ResetCompanyName resets all changes to the "company_name" field.
func (m *SalesContactMutation) ResetCompanyName() {
	m.company_name = nil
	delete(m.clearedFields, salescontact.FieldCompanyName)
}

// SetPhone sets the "phone" field.
func (m *SalesContactMutation) SetPhone(s string) {
	m.phone = &s
}

// Phone returns the value of the "phone" field in the mutation.
func (m *SalesContactMutation) Phone() (r string, exists bool) {
	v := m.phone
	if v == nil {
		return
	}
	return *v, true
}

// OldPhone returns the old "phone" field's value of the SalesContact entity.
// If the SalesContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesContactMutation) OldPhone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhone: %w", err)
	}
	return oldValue.Phone, nil
}

// ClearPhone clears the value of the "phone" field.
func (m *SalesContactMutation) ClearPhone() {
	m.phone = nil
	m.clearedFields[salescontact.FieldPhone] = struct{}{}
}

// PhoneCleared returns if the "phone" field was cleared in this mutation.
func (m *SalesContactMutation) PhoneCleared() bool {
	_, ok := m.clearedFields[salescontact.FieldPhone]
	return ok
}

// ResetPhone resets all changes to the "phone" field.
func (m *SalesContactMutation) ResetPhone() {
	m.phone = nil
	delete(m.clearedFields, salescontact.FieldPhone)
}

// SetContactMethod sets the "contact_method" field.
func (m *SalesContactMutation) SetContactMethod(s string) {
	m.contact_method = &s
}

// ContactMethod returns the value of the "contact_method" field in the mutation.
func (m *SalesContactMutation) ContactMethod() (r string, exists bool) {
	v := m.contact_method
	if v == nil {
		return
	}
	return *v, true
}

// OldContactMethod returns the old "contact_method" field's value of the SalesContact entity.
// If the SalesContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesContactMutation) OldContactMethod(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContactMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContactMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContactMethod: %w", err)
	}
	return oldValue.ContactMethod, nil
}

// ResetContactMethod resets all changes to the "contact_method" field.
func (m *SalesContactMutation) ResetContactMethod() {
	m.contact_method = nil
}

// SetStatus sets the "status" field.
func (m *SalesContactMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SalesContactMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SalesContact entity.
// If the SalesContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesContactMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SalesContactMutation) ResetStatus() {
	m.status = nil
}

// SetExternalCallID sets the "external_call_id" field.
func (m *SalesContactMutation) SetExternalCallID(s string) {
	m.external_call_id = &s
}

// ExternalCallID returns the value of the "external_call_id" field in the mutation.
func (m *SalesContactMutation) ExternalCallID() (r string, exists bool) {
	v := m.external_call_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalCallID returns the old "external_call_id" field's value of the SalesContact entity.
// If the SalesContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesContactMutation) OldExternalCallID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalCallID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalCallID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalCallID: %w", err)
	}
	return oldValue.ExternalCallID, nil
}

// ClearExternalCallID clears the value of the "external_call_id" field.
func (m *SalesContactMutation) ClearExternalCallID() {
	m.external_call_id = nil
	m.clearedFields[salescontact.FieldExternalCallID] = struct{}{}
}

// ExternalCallIDCleared returns if the "external_call_id" field was cleared in this mutation.
func (m *SalesContactMutation) ExternalCallIDCleared() bool {
	_, ok := m.clearedFields[salescontact.FieldExternalCallID]
	return ok
}

// ResetExternalCallID resets all changes to the "external_call_id" field.
func (m *SalesContactMutation) ResetExternalCallID() {
	m.external_call_id = nil
	delete(m.clearedFields, salescontact.FieldExternalCallID)
}

// SetExternalSource sets the "external_source" field.
func (m *SalesContactMutation) SetExternalSource(s string) {
	m.external_source = &s
}

// ExternalSource returns the value of the "external_source" field in the mutation.
func (m *SalesContactMutation) ExternalSource() (r string, exists bool) {
	v := m.external_source
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalSource returns the old "external_source" field's value of the SalesContact entity.
// If the SalesContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesContactMutation) OldExternalSource(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalSource: %w", err)
	}
	return oldValue.ExternalSource, nil
}

// ClearExternalSource clears the value of the "external_source" field.
func (m *SalesContactMutation) ClearExternalSource() {
	m.external_source = nil
	m.clearedFields[salescontact.FieldExternalSource] = struct{}{}
}

// ExternalSourceCleared returns if the "external_source" field was cleared in this mutation.
func (m *SalesContactMutation) ExternalSourceCleared() bool {
	_, ok := m.clearedFields[salescontact.FieldExternalSource]
	return ok
}

// ResetExternalSource resets all changes to the "external_source" field.
func (m *SalesContactMutation) ResetExternalSource() {
	m.external_source = nil
	delete(m.clearedFields, salescontact.FieldExternalSource)
}

// SetCreatedAt sets the "created_at" field.
func (m *SalesContactMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SalesContactMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SalesContact entity.
// If the SalesContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesContactMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SalesContactMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SalesContactMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SalesContactMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the SalesContact entity.
// If the SalesContact object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SalesContactMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *SalesContactMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetOwnerID sets the "owner" edge to the User entity by id.
func (m *SalesContactMutation) SetOwnerID(id int) {
	m.owner = &id
}

// ClearOwner clears the "owner" edge to the User entity.
func (m *SalesContactMutation) ClearOwner() {
	m.clearedowner = true
	m.clearedFields[salescontact.FieldUserID] = struct{}{}
}

// OwnerCleared reports if the "owner" edge to the User entity was cleared.
func (m *SalesContactMutation) OwnerCleared() bool {
	return m.clearedowner
}

// OwnerID returns the "owner" edge ID in the mutation.
func (m *SalesContactMutation) OwnerID() (id int, exists bool) {
	if m.owner != nil {
		return *m.owner, true
	}
	return
}

// OwnerIDs returns the "owner" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// OwnerID instead. It exists only for internal usage by the builders.
func (m *SalesContactMutation) OwnerIDs() (ids []int) {
	if id := m.owner; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetOwner resets all changes to the "owner" edge.
func (m *SalesContactMutation) ResetOwner() {
	m.owner = nil
	m.clearedowner = false
}

// Where appends a list predicates to the SalesContactMutation builder.
func (m *SalesContactMutation) Where(ps ...predicate.SalesContact) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SalesContactMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SalesContactMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SalesContact, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SalesContactMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SalesContactMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SalesContact).
func (m *SalesContactMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SalesContactMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.owner != nil {
		fields = append(fields, salescontact.FieldUserID)
	}
	if m.date != nil {
		fields = append(fields, salescontact.FieldDate)
	}
	if m.occurred_at != nil {
		fields = append(fields, salescontact.FieldOccurredAt)
	}
	if m.manager_name != nil {
		fields = append(fields, salescontact.FieldManagerName)
	}
	if m.company_name != nil {
		fields = append(fields, salescontact.FieldCompanyName)
	}
	if m.phone != nil {
		fields = append(fields, salescontact.FieldPhone)
	}
	if m.contact_method != nil {
		fields = append(fields, salescontact.FieldContactMethod)
	}
	if m.status != nil {
		fields = append(fields, salescontact.FieldStatus)
	}
	if m.external_call_id != nil {
		fields = append(fields, salescontact.FieldExternalCallID)
	}
	if m.external_source != nil {
		fields = append(fields, salescontact.FieldExternalSource)
	}
	if m.created_at != nil {
		fields = append(fields, salescontact.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, salescontact.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SalesContactMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case salescontact.FieldUserID:
		return m.UserID()
	case salescontact.FieldDate:
		return m.Date()
	case salescontact.FieldOccurredAt:
		return m.OccurredAt()
	case salescontact.FieldManagerName:
		return m.ManagerName()
	case salescontact.FieldCompanyName:
		return m.CompanyName()
	case salescontact.FieldPhone:
		return m.Phone()
	case salescontact.FieldContactMethod:
		return m.ContactMethod()
	case salescontact.FieldStatus:
		return m.Status()
	case salescontact.FieldExternalCallID:
		return m.ExternalCallID()
	case salescontact.FieldExternalSource:
		return m.ExternalSource()
	case salescontact.FieldCreatedAt:
		return m.CreatedAt()
	case salescontact.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SalesContactMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case salescontact.FieldUserID:
		return m.OldUserID(ctx)
	case salescontact.FieldDate:
		return m.OldDate(ctx)
	case salescontact.FieldOccurredAt:
		return m.OldOccurredAt(ctx)
	case salescontact.FieldManagerName:
		return m.OldManagerName(ctx)
	case salescontact.FieldCompanyName:
		return m.OldCompanyName(ctx)
	case salescontact.FieldPhone:
		return m.OldPhone(ctx)
	case salescontact.FieldContactMethod:
		return m.OldContactMethod(ctx)
	case salescontact.FieldStatus:
		return m.OldStatus(ctx)
	case salescontact.FieldExternalCallID:
		return m.OldExternalCallID(ctx)
	case salescontact.FieldExternalSource:
		return m.OldExternalSource(ctx)
	case salescontact.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case salescontact.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SalesContact field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SalesContactMutation) SetField(name string, value ent.Value) error {
	switch name {
	case salescontact.FieldUserID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case salescontact.FieldDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDate(v)
		return nil
	case salescontact.FieldOccurredAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccurredAt(v)
		return nil
	case salescontact.FieldManagerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetManagerName(v)
		return nil
	case salescontact.FieldCompanyName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompanyName(v)
		return nil
	case salescontact.FieldPhone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhone(v)
		return nil
	case salescontact.FieldContactMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContactMethod(v)
		return nil
	case salescontact.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case salescontact.FieldExternalCallID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalCallID(v)
		return nil
	case salescontact.FieldExternalSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalSource(v)
		return nil
	case salescontact.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case salescontact.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SalesContact field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SalesContactMutation) AddedFields() []string {
	var fields []string
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SalesContactMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SalesContactMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown SalesContact numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SalesContactMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(salescontact.FieldCompanyName) {
		fields = append(fields, salescontact.FieldCompanyName)
	}
	if m.FieldCleared(salescontact.FieldPhone) {
		fields = append(fields, salescontact.FieldPhone)
	}
	if m.FieldCleared(salescontact.FieldExternalCallID) {
		fields = append(fields, salescontact.FieldExternalCallID)
	}
	if m.FieldCleared(salescontact.FieldExternalSource) {
		fields = append(fields, salescontact.FieldExternalSource)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SalesContactMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SalesContactMutation) ClearField(name string) error {
	switch name {
	case salescontact.FieldCompanyName:
		m.ClearCompanyName()
		return nil
	case salescontact.FieldPhone:
		m.ClearPhone()
		return nil
	case salescontact.FieldExternalCallID:
		m.ClearExternalCallID()
		return nil
	case salescontact.FieldExternalSource:
		m.ClearExternalSource()
		return nil
	}
	return fmt.Errorf("unknown SalesContact nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SalesContactMutation) ResetField(name string) error {
	switch name {
	case salescontact.FieldUserID:
		m.ResetUserID()
		return nil
	case salescontact.FieldDate:
		m.ResetDate()
		return nil
	case salescontact.FieldOccurredAt:
		m.ResetOccurredAt()
		return nil
	case salescontact.FieldManagerName:
		m.ResetManagerName()
		return nil
	case salescontact.FieldCompanyName:
		m.ResetCompanyName()
		return nil
	case salescontact.FieldPhone:
		m.ResetPhone()
		return nil
	case salescontact.FieldContactMethod:
		m.ResetContactMethod()
		return nil
	case salescontact.FieldStatus:
		m.ResetStatus()
		return nil
	case salescontact.FieldExternalCallID:
		m.ResetExternalCallID()
		return nil
	case salescontact.FieldExternalSource:
		m.ResetExternalSource()
		return nil
	case salescontact.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case salescontact.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown SalesContact field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SalesContactMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.owner != nil {
		edges = append(edges, salescontact.EdgeOwner)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SalesContactMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case salescontact.EdgeOwner:
		if id := m.owner; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SalesContactMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SalesContactMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SalesContactMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedowner {
		edges = append(edges, salescontact.EdgeOwner)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SalesContactMutation) EdgeCleared(name string) bool {
	switch name {
	case salescontact.EdgeOwner:
		return m.clearedowner
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SalesContactMutation) ClearEdge(name string) error {
	switch name {
	case salescontact.EdgeOwner:
		m.ClearOwner()
		return nil
	}
	return fmt.Errorf("unknown SalesContact unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SalesContactMutation) ResetEdge(name string) error {
	switch name {
	case salescontact.EdgeOwner:
		m.ResetOwner()
		return nil
	}
	return fmt.Errorf("unknown SalesContact edge %s", name)
}

// SyncRunMutation represents an operation that mutates the SyncRun nodes in the graph.
type SyncRunMutation struct {
	config
	op            Op
	typ           string
	id            *int
	trigger       *syncrun.Trigger
	start_date    *string
	end_date      *string
	inserted      *int
	addinserted   *int
	updated       *int
	addupdated    *int
	skipped       *int
	addskipped    *int
	skip_reasons  *map[string]int
	status        *syncrun.Status
	error         *string
	started_at    *time.Time
	finished_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*SyncRun, error)
	predicates    []predicate.SyncRun
}

var _ ent.Mutation = (*SyncRunMutation)(nil)

// syncrunOption allows management of the mutation configuration using functional options.
type syncrunOption func(*SyncRunMutation)

// newSyncRunMutation creates new mutation for the SyncRun entity.
func newSyncRunMutation(c config, op Op, opts ...syncrunOption) *SyncRunMutation {
	m := &SyncRunMutation{
		config:        c,
		op:            op,
		typ:           TypeSyncRun,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSyncRunID sets the ID field of the mutation.
func withSyncRunID(id int) syncrunOption {
	return func(m *SyncRunMutation) {
		var (
			err   error
			once  sync.Once
			value *SyncRun
		)
		m.oldValue = func(ctx context.Context) (*SyncRun, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SyncRun.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSyncRun sets the old SyncRun of the mutation.
func withSyncRun(node *SyncRun) syncrunOption {
	return func(m *SyncRunMutation) {
		m.oldValue = func(context.Context) (*SyncRun, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SyncRunMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SyncRunMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SyncRunMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SyncRunMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SyncRun.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTrigger sets the "trigger" field.
func (m *SyncRunMutation) SetTrigger(s syncrun.Trigger) {
	m.trigger = &s
}

// Trigger returns the value of the "trigger" field in the mutation.
func (m *SyncRunMutation) Trigger() (r syncrun.Trigger, exists bool) {
	v := m.trigger
	if v == nil {
		return
	}
	return *v, true
}

// OldTrigger returns the old "trigger" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldTrigger(ctx context.Context) (v syncrun.Trigger, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTrigger is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTrigger requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTrigger: %w", err)
	}
	return oldValue.Trigger, nil
}

// ResetTrigger resets all changes to the "trigger" field.
func (m *SyncRunMutation) ResetTrigger() {
	m.trigger = nil
}

// SetStartDate sets the "start_date" field.
func (m *SyncRunMutation) SetStartDate(s string) {
	m.start_date = &s
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *SyncRunMutation) StartDate() (r string, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldStartDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *SyncRunMutation) ResetStartDate() {
	m.start_date = nil
}

// SetEndDate sets the "end_date" field.
func (m *SyncRunMutation) SetEndDate(s string) {
	m.end_date = &s
}

// EndDate returns the value of the "end_date" field in the mutation.
func (m *SyncRunMutation) EndDate() (r string, exists bool) {
	v := m.end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldEndDate returns the old "end_date" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldEndDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndDate: %w", err)
	}
	return oldValue.EndDate, nil
}

// ResetEndDate resets all changes to the "end_date" field.
func (m *SyncRunMutation) ResetEndDate() {
	m.end_date = nil
}

// SetInserted sets the "inserted" field.
func (m *SyncRunMutation) SetInserted(i int) {
	m.inserted = &i
	m.addinserted = nil
}

// Inserted returns the value of the "inserted" field in the mutation.
func (m *SyncRunMutation) Inserted() (r int, exists bool) {
	v := m.inserted
	if v == nil {
		return
	}
	return *v, true
}

// OldInserted returns the old "inserted" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldInserted(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInserted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInserted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInserted: %w", err)
	}
	return oldValue.Inserted, nil
}

// AddInserted adds i to the "inserted" field.
func (m *SyncRunMutation) AddInserted(i int) {
	if m.addinserted != nil {
		*m.addinserted += i
	} else {
		m.addinserted = &i
	}
}

// AddedInserted returns the value that was added to the "inserted" field in this mutation.
func (m *SyncRunMutation) AddedInserted() (r int, exists bool) {
	v := m.addinserted
	if v == nil {
		return
	}
	return *v, true
}

// ResetInserted resets all changes to the "inserted" field.
func (m *SyncRunMutation) ResetInserted() {
	m.inserted = nil
	m.addinserted = nil
}

// SetUpdated sets the "updated" field.
func (m *SyncRunMutation) SetUpdated(i int) {
	m.updated = &i
	m.addupdated = nil
}

// Updated returns the value of the "updated" field in the mutation.
func (m *SyncRunMutation) Updated() (r int, exists bool) {
	v := m.updated
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdated returns the old "updated" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldUpdated(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdated: %w", err)
	}
	return oldValue.Updated, nil
}

// AddUpdated adds i to the "updated" field.
func (m *SyncRunMutation) AddUpdated(i int) {
	if m.addupdated != nil {
		*m.addupdated += i
	} else {
		m.addupdated = &i
	}
}

// AddedUpdated returns the value that was added to the "updated" field in this mutation.
func (m *SyncRunMutation) AddedUpdated() (r int, exists bool) {
	v := m.addupdated
	if v == nil {
		return
	}
	return *v, true
}

// ResetUpdated resets all changes to the "updated" field.
func (m *SyncRunMutation) ResetUpdated() {
	m.updated = nil
	m.addupdated = nil
}

// SetSkipped sets the "skipped" field.
func (m *SyncRunMutation) SetSkipped(i int) {
	m.skipped = &i
	m.addskipped = nil
}

// Skipped returns the value of the "skipped" field in the mutation.
func (m *SyncRunMutation) Skipped() (r int, exists bool) {
	v := m.skipped
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipped returns the old "skipped" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldSkipped(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipped is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipped requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipped: %w", err)
	}
	return oldValue.Skipped, nil
}

// AddSkipped adds i to the "skipped" field.
func (m *SyncRunMutation) AddSkipped(i int) {
	if m.addskipped != nil {
		*m.addskipped += i
	} else {
		m.addskipped = &i
	}
}

// AddedSkipped returns the value that was added to the "skipped" field in this mutation.
func (m *SyncRunMutation) AddedSkipped() (r int, exists bool) {
	v := m.addskipped
	if v == nil {
		return
	}
	return *v, true
}

// ResetSkipped resets all changes to the "skipped" field.
func (m *SyncRunMutation) ResetSkipped() {
	m.skipped = nil
	m.addskipped = nil
}

// SetSkipReasons sets the "skip_reasons" field.
func (m *SyncRunMutation) SetSkipReasons(value map[string]int) {
	m.skip_reasons = &value
}

// SkipReasons returns the value of the "skip_reasons" field in the mutation.
func (m *SyncRunMutation) SkipReasons() (r map[string]int, exists bool) {
	v := m.skip_reasons
	if v == nil {
		return
	}
	return *v, true
}

// OldSkipReasons returns the old "skip_reasons" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldSkipReasons(ctx context.Context) (v map[string]int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSkipReasons is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSkipReasons requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSkipReasons: %w", err)
	}
	return oldValue.SkipReasons, nil
}

// ClearSkipReasons clears the value of the "skip_reasons" field.
func (m *SyncRunMutation) ClearSkipReasons() {
	m.skip_reasons = nil
	m.clearedFields[syncrun.FieldSkipReasons] = struct{}{}
}

// SkipReasonsCleared returns if the "skip_reasons" field was cleared in this mutation.
func (m *SyncRunMutation) SkipReasonsCleared() bool {
	_, ok := m.clearedFields[syncrun.FieldSkipReasons]
	return ok
}

// ResetSkipReasons resets all changes to the "skip_reasons" field.
func (m *SyncRunMutation) ResetSkipReasons() {
	m.skip_reasons = nil
	delete(m.clearedFields, syncrun.FieldSkipReasons)
}

// SetStatus sets the "status" field.
func (m *SyncRunMutation) SetStatus(s syncrun.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SyncRunMutation) Status() (r syncrun.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldStatus(ctx context.Context) (v syncrun.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SyncRunMutation) ResetStatus() {
	m.status = nil
}

// SetError sets the "error" field.
func (m *SyncRunMutation) SetError(s string) {
	m.error = &s
}

// Error returns the value of the "error" field in the mutation.
func (m *SyncRunMutation) Error() (r string, exists bool) {
	v := m.error
	if v == nil {
		return
	}
	return *v, true
}

// OldError returns the old "error" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldError(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldError is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldError requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldError: %w", err)
	}
	return oldValue.Error, nil
}

// ClearError clears the value of the "error" field.
func (m *SyncRunMutation) ClearError() {
	m.error = nil
	m.clearedFields[syncrun.FieldError] = struct{}{}
}

// ErrorCleared returns if the "error" field was cleared in this mutation.
func (m *SyncRunMutation) ErrorCleared() bool {
	_, ok := m.clearedFields[syncrun.FieldError]
	return ok
}

// ResetError resets all changes to the "error" field.
func (m *SyncRunMutation) ResetError() {
	m.error = nil
	delete(m.clearedFields, syncrun.FieldError)
}

// SetStartedAt sets the "started_at" field.
func (m *SyncRunMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *SyncRunMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *SyncRunMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *SyncRunMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *SyncRunMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the SyncRun entity.
// If the SyncRun object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SyncRunMutation) OldFinishedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *SyncRunMutation) ResetFinishedAt() {
	m.finished_at = nil
}

// Where appends a list predicates to the SyncRunMutation builder.
func (m *SyncRunMutation) Where(ps ...predicate.SyncRun) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SyncRunMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SyncRunMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SyncRun, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SyncRunMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SyncRunMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SyncRun).
func (m *SyncRunMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SyncRunMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.trigger != nil {
		fields = append(fields, syncrun.FieldTrigger)
	}
	if m.start_date != nil {
		fields = append(fields, syncrun.FieldStartDate)
	}
	if m.end_date != nil {
		fields = append(fields, syncrun.FieldEndDate)
	}
	if m.inserted != nil {
		fields = append(fields, syncrun.FieldInserted)
	}
	if m.updated != nil {
		fields = append(fields, syncrun.FieldUpdated)
	}
	if m.skipped != nil {
		fields = append(fields, syncrun.FieldSkipped)
	}
	if m.skip_reasons != nil {
		fields = append(fields, syncrun.FieldSkipReasons)
	}
	if m.status != nil {
		fields = append(fields, syncrun.FieldStatus)
	}
	if m.error != nil {
		fields = append(fields, syncrun.FieldError)
	}
	if m.started_at != nil {
		fields = append(fields, syncrun.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, syncrun.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SyncRunMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case syncrun.FieldTrigger:
		return m.Trigger()
	case syncrun.FieldStartDate:
		return m.StartDate()
	case syncrun.FieldEndDate:
		return m.EndDate()
	case syncrun.FieldInserted:
		return m.Inserted()
	case syncrun.FieldUpdated:
		return m.Updated()
	case syncrun.FieldSkipped:
		return m.Skipped()
	case syncrun.FieldSkipReasons:
		return m.SkipReasons()
	case syncrun.FieldStatus:
		return m.Status()
	case syncrun.FieldError:
		return m.Error()
	case syncrun.FieldStartedAt:
		return m.StartedAt()
	case syncrun.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SyncRunMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case syncrun.FieldTrigger:
		return m.OldTrigger(ctx)
	case syncrun.FieldStartDate:
		return m.OldStartDate(ctx)
	case syncrun.FieldEndDate:
		return m.OldEndDate(ctx)
	case syncrun.FieldInserted:
		return m.OldInserted(ctx)
	case syncrun.FieldUpdated:
		return m.OldUpdated(ctx)
	case syncrun.FieldSkipped:
		return m.OldSkipped(ctx)
	case syncrun.FieldSkipReasons:
		return m.OldSkipReasons(ctx)
	case syncrun.FieldStatus:
		return m.OldStatus(ctx)
	case syncrun.FieldError:
		return m.OldError(ctx)
	case syncrun.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case syncrun.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SyncRun field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncRunMutation) SetField(name string, value ent.Value) error {
	switch name {
	case syncrun.FieldTrigger:
		v, ok := value.(syncrun.Trigger)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTrigger(v)
		return nil
	case syncrun.FieldStartDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case syncrun.FieldEndDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndDate(v)
		return nil
	case syncrun.FieldInserted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInserted(v)
		return nil
	case syncrun.FieldUpdated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdated(v)
		return nil
	case syncrun.FieldSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipped(v)
		return nil
	case syncrun.FieldSkipReasons:
		v, ok := value.(map[string]int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSkipReasons(v)
		return nil
	case syncrun.FieldStatus:
		v, ok := value.(syncrun.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case syncrun.FieldError:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetError(v)
		return nil
	case syncrun.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case syncrun.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SyncRun field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SyncRunMutation) AddedFields() []string {
	var fields []string
	if m.addinserted != nil {
		fields = append(fields, syncrun.FieldInserted)
	}
	if m.addupdated != nil {
		fields = append(fields, syncrun.FieldUpdated)
	}
	if m.addskipped != nil {
		fields = append(fields, syncrun.FieldSkipped)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SyncRunMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case syncrun.FieldInserted:
		return m.AddedInserted()
	case syncrun.FieldUpdated:
		return m.AddedUpdated()
	case syncrun.FieldSkipped:
		return m.AddedSkipped()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SyncRunMutation) AddField(name string, value ent.Value) error {
	switch name {
	case syncrun.FieldInserted:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddInserted(v)
		return nil
	case syncrun.FieldUpdated:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddUpdated(v)
		return nil
	case syncrun.FieldSkipped:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSkipped(v)
		return nil
	}
	return fmt.Errorf("unknown SyncRun numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SyncRunMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(syncrun.FieldSkipReasons) {
		fields = append(fields, syncrun.FieldSkipReasons)
	}
	if m.FieldCleared(syncrun.FieldError) {
		fields = append(fields, syncrun.FieldError)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SyncRunMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SyncRunMutation) ClearField(name string) error {
	switch name {
	case syncrun.FieldSkipReasons:
		m.ClearSkipReasons()
		return nil
	case syncrun.FieldError:
		m.ClearError()
		return nil
	}
	return fmt.Errorf("unknown SyncRun nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SyncRunMutation) ResetField(name string) error {
	switch name {
	case syncrun.FieldTrigger:
		m.ResetTrigger()
		return nil
	case syncrun.FieldStartDate:
		m.ResetStartDate()
		return nil
	case syncrun.FieldEndDate:
		m.ResetEndDate()
		return nil
	case syncrun.FieldInserted:
		m.ResetInserted()
		return nil
	case syncrun.FieldUpdated:
		m.ResetUpdated()
		return nil
	case syncrun.FieldSkipped:
		m.ResetSkipped()
		return nil
	case syncrun.FieldSkipReasons:
		m.ResetSkipReasons()
		return nil
	case syncrun.FieldStatus:
		m.ResetStatus()
		return nil
	case syncrun.FieldError:
		m.ResetError()
		return nil
	case syncrun.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case syncrun.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown SyncRun field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SyncRunMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SyncRunMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SyncRunMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SyncRunMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SyncRunMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SyncRunMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SyncRunMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown SyncRun unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SyncRunMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown SyncRun edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	name                  *string
	email                 *string
	password_hash         *string
	role                  *user.Role
	employment_status     *user.EmploymentStatus
	last_login_at         *time.Time
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	sales_contacts        map[int]struct{}
	removedsales_contacts map[int]struct{}
	clearedsales_contacts bool
	done                  bool
	oldValue              func(context.Context) (*User, error)
	predicates            []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id int) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetEmploymentStatus sets the "employment_status" field.
func (m *UserMutation) SetEmploymentStatus(us user.EmploymentStatus) {
	m.employment_status = &us
}

// EmploymentStatus returns the value of the "employment_status" field in the mutation.
func (m *UserMutation) EmploymentStatus() (r user.EmploymentStatus, exists bool) {
	v := m.employment_status
	if v == nil {
		return
	}
	return *v, true
}

// OldEmploymentStatus returns the old "employment_status" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmploymentStatus(ctx context.Context) (v user.EmploymentStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmploymentStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmploymentStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmploymentStatus: %w", err)
	}
	return oldValue.EmploymentStatus, nil
}

// ResetEmploymentStatus resets all changes to the "employment_status" field.
func (m *UserMutation) ResetEmploymentStatus() {
	m.employment_status = nil
}

// SetLastLoginAt sets the "last_login_at" field.
func (m *UserMutation) SetLastLoginAt(t time.Time) {
	m.last_login_at = &t
}

// LastLoginAt returns the value of the "last_login_at" field in the mutation.
func (m *UserMutation) LastLoginAt() (r time.Time, exists bool) {
	v := m.last_login_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastLoginAt returns the old "last_login_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldLastLoginAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastLoginAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastLoginAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastLoginAt: %w", err)
	}
	return oldValue.LastLoginAt, nil
}

// ClearLastLoginAt clears the value of the "last_login_at" field.
func (m *UserMutation) ClearLastLoginAt() {
	m.last_login_at = nil
	m.clearedFields[user.FieldLastLoginAt] = struct{}{}
}

// LastLoginAtCleared returns if the "last_login_at" field was cleared in this mutation.
func (m *UserMutation) LastLoginAtCleared() bool {
	_, ok := m.clearedFields[user.FieldLastLoginAt]
	return ok
}

// ResetLastLoginAt resets all changes to the "last_login_at" field.
func (m *UserMutation) ResetLastLoginAt() {
	m.last_login_at = nil
	delete(m.clearedFields, user.FieldLastLoginAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddSalesContactIDs adds the "sales_contacts" edge to the SalesContact entity by ids.
func (m *UserMutation) AddSalesContactIDs(ids ...int) {
	if m.sales_contacts == nil {
		m.sales_contacts = make(map[int]struct{})
	}
	for i := range ids {
		m.sales_contacts[ids[i]] = struct{}{}
	}
}

// ClearSalesContacts clears the "sales_contacts" edge to the SalesContact entity.
func (m *UserMutation) ClearSalesContacts() {
	m.clearedsales_contacts = true
}

// SalesContactsCleared reports if the "sales_contacts" edge to the SalesContact entity was cleared.
func (m *UserMutation) SalesContactsCleared() bool {
	return m.clearedsales_contacts
}

// RemoveSalesContactIDs removes the "sales_contacts" edge to the SalesContact entity by IDs.
func (m *UserMutation) RemoveSalesContactIDs(ids ...int) {
	if m.removedsales_contacts == nil {
		m.removedsales_contacts = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.sales_contacts, ids[i])
		m.removedsales_contacts[ids[i]] = struct{}{}
	}
}

// RemovedSalesContacts returns the removed IDs of the "sales_contacts" edge to the SalesContact entity.
func (m *UserMutation) RemovedSalesContactsIDs() (ids []int) {
	for id := range m.removedsales_contacts {
		ids = append(ids, id)
	}
	return
}

// SalesContactsIDs returns the "sales_contacts" edge IDs in the mutation.
func (m *UserMutation) SalesContactsIDs() (ids []int) {
	for id := range m.sales_contacts {
		ids = append(ids, id)
	}
	return
}

// ResetSalesContacts resets all changes to the "sales_contacts" edge.
func (m *UserMutation) ResetSalesContacts() {
	m.sales_contacts = nil
	m.clearedsales_contacts = false
	m.removedsales_contacts = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.employment_status != nil {
		fields = append(fields, user.FieldEmploymentStatus)
	}
	if m.last_login_at != nil {
		fields = append(fields, user.FieldLastLoginAt)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldName:
		return m.Name()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldEmploymentStatus:
		return m.EmploymentStatus()
	case user.FieldLastLoginAt:
		return m.LastLoginAt()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldEmploymentStatus:
		return m.OldEmploymentStatus(ctx)
	case user.FieldLastLoginAt:
		return m.OldLastLoginAt(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldEmploymentStatus:
		v, ok := value.(user.EmploymentStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmploymentStatus(v)
		return nil
	case user.FieldLastLoginAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastLoginAt(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldLastLoginAt) {
		fields = append(fields, user.FieldLastLoginAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldLastLoginAt:
		m.ClearLastLoginAt()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldEmploymentStatus:
		m.ResetEmploymentStatus()
		return nil
	case user.FieldLastLoginAt:
		m.ResetLastLoginAt()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.sales_contacts != nil {
		edges = append(edges, user.EdgeSalesContacts)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeSalesContacts:
		ids := make([]ent.Value, 0, len(m.sales_contacts))
		for id := range m.sales_contacts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedsales_contacts != nil {
		edges = append(edges, user.EdgeSalesContacts)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgeSalesContacts:
		ids := make([]ent.Value, 0, len(m.removedsales_contacts))
		for id := range m.removedsales_contacts {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsales_contacts {
		edges = append(edges, user.EdgeSalesContacts)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgeSalesContacts:
		return m.clearedsales_contacts
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgeSalesContacts:
		m.ResetSalesContacts()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}
