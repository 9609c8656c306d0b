// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/kizunaworks/backoffice/ent/syncrun"
)

// SyncRun is the model entity for the SyncRun schema.
type SyncRun struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// What started this run
	Trigger syncrun.Trigger `json:"trigger,omitempty"`
	// Window start (YYYY-MM-DD, whole-day granularity)
	StartDate string `json:"start_date,omitempty"`
	// Window end (YYYY-MM-DD, whole-day granularity)
	EndDate string `json:"end_date,omitempty"`
	// Rows inserted
	Inserted int `json:"inserted,omitempty"`
	// Rows updated
	Updated int `json:"updated,omitempty"`
	// Records skipped
	Skipped int `json:"skipped,omitempty"`
	// Skip counts broken down by reason
	SkipReasons map[string]int `json:"skip_reasons,omitempty"`
	// Run outcome; failed runs keep the counts accumulated before the failure
	Status syncrun.Status `json:"status,omitempty"`
	// Upstream or fatal error message for failed runs
	Error string `json:"error,omitempty"`
	// When the run started
	StartedAt time.Time `json:"started_at,omitempty"`
	// When the run finished
	FinishedAt   time.Time `json:"finished_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SyncRun) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case syncrun.FieldSkipReasons:
			values[i] = new([]byte)
		case syncrun.FieldID, syncrun.FieldInserted, syncrun.FieldUpdated, syncrun.FieldSkipped:
			values[i] = new(sql.NullInt64)
		case syncrun.FieldTrigger, syncrun.FieldStartDate, syncrun.FieldEndDate, syncrun.FieldStatus, syncrun.FieldError:
			values[i] = new(sql.NullString)
		case syncrun.FieldStartedAt, syncrun.FieldFinishedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SyncRun fields.
func (_m *SyncRun) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case syncrun.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case syncrun.FieldTrigger:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field trigger", values[i])
			} else if value.Valid {
				_m.Trigger = syncrun.Trigger(value.String)
			}
		case syncrun.FieldStartDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				_m.StartDate = value.String
			}
		case syncrun.FieldEndDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field end_date", values[i])
			} else if value.Valid {
				_m.EndDate = value.String
			}
		case syncrun.FieldInserted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field inserted", values[i])
			} else if value.Valid {
				_m.Inserted = int(value.Int64)
			}
		case syncrun.FieldUpdated:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field updated", values[i])
			} else if value.Valid {
				_m.Updated = int(value.Int64)
			}
		case syncrun.FieldSkipped:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field skipped", values[i])
			} else if value.Valid {
				_m.Skipped = int(value.Int64)
			}
		case syncrun.FieldSkipReasons:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skip_reasons", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SkipReasons); err != nil {
					return fmt.Errorf("unmarshal field skip_reasons: %w", err)
				}
			}
		case syncrun.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = syncrun.Status(value.String)
			}
		case syncrun.FieldError:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error", values[i])
			} else if value.Valid {
				_m.Error = value.String
			}
		case syncrun.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case syncrun.FieldFinishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field finished_at", values[i])
			} else if value.Valid {
				_m.FinishedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SyncRun.
// This includes values selected through modifiers, order, etc.
func (_m *SyncRun) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SyncRun.
// Note that you need to call SyncRun.Unwrap() before calling this method if this SyncRun
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SyncRun) Update() *SyncRunUpdateOne {
	return NewSyncRunClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SyncRun entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SyncRun) Unwrap() *SyncRun {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SyncRun is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SyncRun) String() string {
	var builder strings.Builder
	builder.WriteString("SyncRun(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("trigger=")
	builder.WriteString(fmt.Sprintf("%v", _m.Trigger))
	builder.WriteString(", ")
	builder.WriteString("start_date=")
	builder.WriteString(_m.StartDate)
	builder.WriteString(", ")
	builder.WriteString("end_date=")
	builder.WriteString(_m.EndDate)
	builder.WriteString(", ")
	builder.WriteString("inserted=")
	builder.WriteString(fmt.Sprintf("%v", _m.Inserted))
	builder.WriteString(", ")
	builder.WriteString("updated=")
	builder.WriteString(fmt.Sprintf("%v", _m.Updated))
	builder.WriteString(", ")
	builder.WriteString("skipped=")
	builder.WriteString(fmt.Sprintf("%v", _m.Skipped))
	builder.WriteString(", ")
	builder.WriteString("skip_reasons=")
	builder.WriteString(fmt.Sprintf("%v", _m.SkipReasons))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("error=")
	builder.WriteString(_m.Error)
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("finished_at=")
	builder.WriteString(_m.FinishedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SyncRuns is a parsable slice of SyncRun.
type SyncRuns []*SyncRun
