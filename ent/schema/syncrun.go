package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SyncRun holds the schema definition for the SyncRun entity.
// One row per call-log sync pass, manual or scheduled.
type SyncRun struct {
	ent.Schema
}

// Fields of the SyncRun.
func (SyncRun) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("trigger").
			Values("manual", "scheduled").
			Comment("What started this run"),
		field.String("start_date").
			NotEmpty().
			MaxLen(10).
			Comment("Window start (YYYY-MM-DD, whole-day granularity)"),
		field.String("end_date").
			NotEmpty().
			MaxLen(10).
			Comment("Window end (YYYY-MM-DD, whole-day granularity)"),
		field.Int("inserted").
			Default(0).
			NonNegative().
			Comment("Rows inserted"),
		field.Int("updated").
			Default(0).
			NonNegative().
			Comment("Rows updated"),
		field.Int("skipped").
			Default(0).
			NonNegative().
			Comment("Records skipped"),
		field.JSON("skip_reasons", map[string]int{}).
			Optional().
			Comment("Skip counts broken down by reason"),
		field.Enum("status").
			Values("completed", "failed").
			Comment("Run outcome; failed runs keep the counts accumulated before the failure"),
		field.String("error").
			Optional().
			Comment("Upstream or fatal error message for failed runs"),
		field.Time("started_at").
			Default(time.Now).
			Immutable().
			Comment("When the run started"),
		field.Time("finished_at").
			Default(time.Now).
			Comment("When the run finished"),
	}
}

// Indexes of the SyncRun.
func (SyncRun) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("started_at"),
	}
}
