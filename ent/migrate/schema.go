// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// SalesContactsColumns holds the columns for the "sales_contacts" table.
	SalesContactsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "date", Type: field.TypeString, Size: 10},
		{Name: "occurred_at", Type: field.TypeTime},
		{Name: "manager_name", Type: field.TypeString},
		{Name: "company_name", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "contact_method", Type: field.TypeString, Default: "電話"},
		{Name: "status", Type: field.TypeString, Default: "未返信"},
		{Name: "external_call_id", Type: field.TypeString, Nullable: true, Size: 64},
		{Name: "external_source", Type: field.TypeString, Nullable: true, Size: 32},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeInt},
	}
	// SalesContactsTable holds the schema information for the "sales_contacts" table.
	SalesContactsTable = &schema.Table{
		Name:       "sales_contacts",
		Columns:    SalesContactsColumns,
		PrimaryKey: []*schema.Column{SalesContactsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "sales_contacts_users_sales_contacts",
				Columns:    []*schema.Column{SalesContactsColumns[12]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "salescontact_user_id_date",
				Unique:  false,
				Columns: []*schema.Column{SalesContactsColumns[12], SalesContactsColumns[1]},
			},
			{
				Name:    "salescontact_phone_external_source",
				Unique:  false,
				Columns: []*schema.Column{SalesContactsColumns[5], SalesContactsColumns[9]},
			},
			{
				Name:    "salescontact_occurred_at",
				Unique:  false,
				Columns: []*schema.Column{SalesContactsColumns[2]},
			},
			{
				Name:    "salescontact_external_source_external_call_id",
				Unique:  true,
				Columns: []*schema.Column{SalesContactsColumns[9], SalesContactsColumns[8]},
			},
		},
	}
	// SyncRunsColumns holds the columns for the "sync_runs" table.
	SyncRunsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "trigger", Type: field.TypeEnum, Enums: []string{"manual", "scheduled"}},
		{Name: "start_date", Type: field.TypeString, Size: 10},
		{Name: "end_date", Type: field.TypeString, Size: 10},
		{Name: "inserted", Type: field.TypeInt, Default: 0},
		{Name: "updated", Type: field.TypeInt, Default: 0},
		{Name: "skipped", Type: field.TypeInt, Default: 0},
		{Name: "skip_reasons", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"completed", "failed"}},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime},
	}
	// SyncRunsTable holds the schema information for the "sync_runs" table.
	SyncRunsTable = &schema.Table{
		Name:       "sync_runs",
		Columns:    SyncRunsColumns,
		PrimaryKey: []*schema.Column{SyncRunsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "syncrun_status",
				Unique:  false,
				Columns: []*schema.Column{SyncRunsColumns[8]},
			},
			{
				Name:    "syncrun_started_at",
				Unique:  false,
				Columns: []*schema.Column{SyncRunsColumns[10]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "password_hash", Type: field.TypeString},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "admin"}, Default: "user"},
		{Name: "employment_status", Type: field.TypeEnum, Enums: []string{"active", "suspended", "terminated"}, Default: "active"},
		{Name: "last_login_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "user_employment_status",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[5]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		SalesContactsTable,
		SyncRunsTable,
		UsersTable,
	}
)

func init() {
	SalesContactsTable.ForeignKeys[0].RefTable = UsersTable
}
