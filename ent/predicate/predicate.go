// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// SalesContact is the predicate function for salescontact builders.
type SalesContact func(*sql.Selector)

// SyncRun is the predicate function for syncrun builders.
type SyncRun func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
