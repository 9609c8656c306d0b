// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kizunaworks/backoffice/ent/salescontact"
	"github.com/kizunaworks/backoffice/ent/user"
)

// SalesContact is the model entity for the SalesContact schema.
type SalesContact struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Internal user who owns this contact
	UserID int `json:"user_id,omitempty"`
	// Contact date (YYYY-MM-DD)
	Date string `json:"date,omitempty"`
	// Full timestamp of the contact occurrence
	OccurredAt time.Time `json:"occurred_at,omitempty"`
	// Canonical name of the owning manager
	ManagerName string `json:"manager_name,omitempty"`
	// Counterpart company name
	CompanyName string `json:"company_name,omitempty"`
	// Counterpart phone, normalized to digits only
	Phone string `json:"phone,omitempty"`
	// Contact channel (電話, メール, 訪問, ...)
	ContactMethod string `json:"contact_method,omitempty"`
	// Follow-up status (未返信, 返信あり, 成約, ...)
	Status string `json:"status,omitempty"`
	// Record id on the external call-log platform
	ExternalCallID *string `json:"external_call_id,omitempty"`
	// External platform tag (e.g. cpi)
	ExternalSource *string `json:"external_source,omitempty"`
	// Creation timestamp
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Last update timestamp
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the SalesContactQuery when eager-loading is set.
	Edges        SalesContactEdges `json:"edges"`
	selectValues sql.SelectValues
}

// SalesContactEdges holds the relations/edges for other nodes in the graph.
type SalesContactEdges struct {
	// User who owns this contact
	Owner *User `json:"owner,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// OwnerOrErr returns the Owner value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e SalesContactEdges) OwnerOrErr() (*User, error) {
	if e.Owner != nil {
		return e.Owner, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "owner"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SalesContact) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case salescontact.FieldID, salescontact.FieldUserID:
			values[i] = new(sql.NullInt64)
		case salescontact.FieldDate, salescontact.FieldManagerName, salescontact.FieldCompanyName, salescontact.FieldPhone, salescontact.FieldContactMethod, salescontact.FieldStatus, salescontact.FieldExternalCallID, salescontact.FieldExternalSource:
			values[i] = new(sql.NullString)
		case salescontact.FieldOccurredAt, salescontact.FieldCreatedAt, salescontact.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SalesContact fields.
func (_m *SalesContact) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case salescontact.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case salescontact.FieldUserID:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = int(value.Int64)
			}
		case salescontact.FieldDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				_m.Date = value.String
			}
		case salescontact.FieldOccurredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field occurred_at", values[i])
			} else if value.Valid {
				_m.OccurredAt = value.Time
			}
		case salescontact.FieldManagerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field manager_name", values[i])
			} else if value.Valid {
				_m.ManagerName = value.String
			}
		case salescontact.FieldCompanyName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field company_name", values[i])
			} else if value.Valid {
				_m.CompanyName = value.String
			}
		case salescontact.FieldPhone:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field phone", values[i])
			} else if value.Valid {
				_m.Phone = value.String
			}
		case salescontact.FieldContactMethod:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contact_method", values[i])
			} else if value.Valid {
				_m.ContactMethod = value.String
			}
		case salescontact.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case salescontact.FieldExternalCallID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_call_id", values[i])
			} else if value.Valid {
				_m.ExternalCallID = new(string)
				*_m.ExternalCallID = value.String
			}
		case salescontact.FieldExternalSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_source", values[i])
			} else if value.Valid {
				_m.ExternalSource = new(string)
				*_m.ExternalSource = value.String
			}
		case salescontact.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case salescontact.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SalesContact.
// This includes values selected through modifiers, order, etc.
func (_m *SalesContact) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOwner queries the "owner" edge of the SalesContact entity.
func (_m *SalesContact) QueryOwner() *UserQuery {
	return NewSalesContactClient(_m.config).QueryOwner(_m)
}

// Update returns a builder for updating this SalesContact.
// Note that you need to call SalesContact.Unwrap() before calling this method if this SalesContact
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SalesContact) Update() *SalesContactUpdateOne {
	return NewSalesContactClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SalesContact entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SalesContact) Unwrap() *SalesContact {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SalesContact is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SalesContact) String() string {
	var builder strings.Builder
	builder.WriteString("SalesContact(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(_m.Date)
	builder.WriteString(", ")
	builder.WriteString("occurred_at=")
	builder.WriteString(_m.OccurredAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("manager_name=")
	builder.WriteString(_m.ManagerName)
	builder.WriteString(", ")
	builder.WriteString("company_name=")
	builder.WriteString(_m.CompanyName)
	builder.WriteString(", ")
	builder.WriteString("phone=")
	builder.WriteString(_m.Phone)
	builder.WriteString(", ")
	builder.WriteString("contact_method=")
	builder.WriteString(_m.ContactMethod)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	if v := _m.ExternalCallID; v != nil {
		builder.WriteString("external_call_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.ExternalSource; v != nil {
		builder.WriteString("external_source=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SalesContacts is a parsable slice of SalesContact.
type SalesContacts []*SalesContact
