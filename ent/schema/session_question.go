package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionQuestion is one ordered position inside a session, holding the
// answer record once submitted. The answering_at sentinel guards concurrent
// submissions; a sentinel older than 30 seconds is treated as unanswered.
type SessionQuestion struct {
	ent.Schema
}

func (SessionQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id"),
		field.String("user_id"),
		field.String("question_id"),
		field.Int("position").
			Comment("1-based position in the session"),
		field.String("chapter_key"),
		field.String("rationale").
			Optional().
			Comment("Selection tag: exploration, deliberate_practice or review"),
		field.Bool("answered").
			Default(false),
		field.Time("answering_at").
			Optional().
			Nillable().
			Comment("Set while a submission is in flight; expires after 30s"),
		field.String("student_answer").
			Optional(),
		field.Bool("is_correct").
			Default(false),
		field.Int("time_taken_seconds").
			Default(0),
		field.Float("theta_delta").
			Default(0),
		field.Time("answered_at").
			Optional().
			Nillable(),
	}
}

func (SessionQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "position").Unique(),
		index.Fields("session_id", "question_id").Unique(),
		index.Fields("user_id", "question_id"),
	}
}
