package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// QuotaCounter is one (user, feature, period) usage counter. Daily counters
// key by IST calendar date, weekly by IST ISO week, monthly by IST
// year-month.
type QuotaCounter struct {
	ent.Schema
}

func (QuotaCounter) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id"),
		field.String("feature"),
		field.String("period_key"),
		field.Int("used").
			Default(0),
		field.Int("limit").
			Comment("-1 means unlimited"),
		field.Time("resets_at"),
	}
}

func (QuotaCounter) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "feature", "period_key").Unique(),
	}
}
