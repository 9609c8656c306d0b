package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SalesContact holds the schema definition for the SalesContact entity.
// Rows originating from the call-center platform carry an external id and
// source tag; together they form the idempotency key for repeated syncs.
type SalesContact struct {
	ent.Schema
}

// Fields of the SalesContact.
func (SalesContact) Fields() []ent.Field {
	return []ent.Field{
		field.Int("user_id").
			Comment("Internal user who owns this contact"),
		field.String("date").
			NotEmpty().
			MaxLen(10).
			Comment("Contact date (YYYY-MM-DD)"),
		field.Time("occurred_at").
			Default(time.Now).
			Comment("Full timestamp of the contact occurrence"),
		field.String("manager_name").
			NotEmpty().
			Comment("Canonical name of the owning manager"),
		field.String("company_name").
			Optional().
			Comment("Counterpart company name"),
		field.String("phone").
			Optional().
			MaxLen(20).
			Comment("Counterpart phone, normalized to digits only"),
		field.String("contact_method").
			Default("電話").
			Comment("Contact channel (電話, メール, 訪問, ...)"),
		field.String("status").
			Default("未返信").
			Comment("Follow-up status (未返信, 返信あり, 成約, ...)"),
		field.String("external_call_id").
			Optional().
			Nillable().
			MaxLen(64).
			Comment("Record id on the external call-log platform"),
		field.String("external_source").
			Optional().
			Nillable().
			MaxLen(32).
			Comment("External platform tag (e.g. cpi)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("Creation timestamp"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last update timestamp"),
	}
}

// Edges of the SalesContact.
func (SalesContact) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("sales_contacts").
			Field("user_id").
			Unique().
			Required().
			Comment("User who owns this contact"),
	}
}

// Indexes of the SalesContact.
func (SalesContact) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "date"),
		index.Fields("phone", "external_source"),
		index.Fields("occurred_at"),
		// Idempotency key: at most one row per upstream record.
		index.Fields("external_source", "external_call_id").Unique(),
	}
}
