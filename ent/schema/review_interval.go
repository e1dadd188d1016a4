package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewInterval tracks the spaced-repetition schedule for one
// (user, question) pair. Intervals walk the {1, 3, 7, 14, 30} day ladder.
type ReviewInterval struct {
	ent.Schema
}

func (ReviewInterval) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id"),
		field.String("question_id"),
		field.Int("interval_days"),
		field.Time("next_review"),
		field.Int("times_reviewed").
			Default(0),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (ReviewInterval) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "question_id").Unique(),
		index.Fields("user_id", "next_review"),
	}
}
