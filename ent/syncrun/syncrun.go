// Code generated by ent, DO NOT EDIT.

package syncrun

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the syncrun type in the database.
	Label = "sync_run"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTrigger holds the string denoting the trigger field in the database.
	FieldTrigger = "trigger"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldEndDate holds the string denoting the end_date field in the database.
	FieldEndDate = "end_date"
	// FieldInserted holds the string denoting the inserted field in the database.
	FieldInserted = "inserted"
	// FieldUpdated holds the string denoting the updated field in the database.
	FieldUpdated = "updated"
	// FieldSkipped holds the string denoting the skipped field in the database.
	FieldSkipped = "skipped"
	// FieldSkipReasons holds the string denoting the skip_reasons field in the database.
	FieldSkipReasons = "skip_reasons"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldError holds the string denoting the error field in the database.
	FieldError = "error"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// Table holds the table name of the syncrun in the database.
	Table = "sync_runs"
)

// Columns holds all SQL columns for syncrun fields.
var Columns = []string{
	FieldID,
	FieldTrigger,
	FieldStartDate,
	FieldEndDate,
	FieldInserted,
	FieldUpdated,
	FieldSkipped,
	FieldSkipReasons,
	FieldStatus,
	FieldError,
	FieldStartedAt,
	FieldFinishedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// StartDateValidator is a validator for the "start_date" field. It is called by the builders before save.
	StartDateValidator func(string) error
	// EndDateValidator is a validator for the "end_date" field. It is called by the builders before save.
	EndDateValidator func(string) error
	// DefaultInserted holds the default value on creation for the "inserted" field.
	DefaultInserted int
	// InsertedValidator is a validator for the "inserted" field. It is called by the builders before save.
	InsertedValidator func(int) error
	// DefaultUpdated holds the default value on creation for the "updated" field.
	DefaultUpdated int
	// UpdatedValidator is a validator for the "updated" field. It is called by the builders before save.
	UpdatedValidator func(int) error
	// DefaultSkipped holds the default value on creation for the "skipped" field.
	DefaultSkipped int
	// SkippedValidator is a validator for the "skipped" field. It is called by the builders before save.
	SkippedValidator func(int) error
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
	// DefaultFinishedAt holds the default value on creation for the "finished_at" field.
	DefaultFinishedAt func() time.Time
)

// Trigger defines the type for the "trigger" enum field.
type Trigger string

// Trigger values.
const (
	TriggerManual    Trigger = "manual"
	TriggerScheduled Trigger = "scheduled"
)

func (t Trigger) String() string {
	return string(t)
}

// TriggerValidator is a validator for the "trigger" field enum values. It is called by the builders before save.
func TriggerValidator(t Trigger) error {
	switch t {
	case TriggerManual, TriggerScheduled:
		return nil
	default:
		return fmt.Errorf("syncrun: invalid enum value for trigger field: %q", t)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// Status values.
const (
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusCompleted, StatusFailed:
		return nil
	default:
		return fmt.Errorf("syncrun: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the SyncRun queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTrigger orders the results by the trigger field.
func ByTrigger(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTrigger, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByEndDate orders the results by the end_date field.
func ByEndDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndDate, opts...).ToFunc()
}

// ByInserted orders the results by the inserted field.
func ByInserted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInserted, opts...).ToFunc()
}

// ByUpdated orders the results by the updated field.
func ByUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdated, opts...).ToFunc()
}

// BySkipped orders the results by the skipped field.
func BySkipped(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipped, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByError orders the results by the error field.
func ByError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldError, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}
