package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session is one answer-bearing work unit: daily quiz, chapter practice,
// unlock quiz, snap practice, mock test or initial assessment. Mutated only
// by the session coordinator.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty(),
		field.String("user_id"),
		field.String("kind"),
		field.String("status"),
		field.String("chapter_key").
			Optional().
			Comment("Set for chapter_practice, unlock_quiz and snap_practice"),
		field.String("template_id").
			Optional().
			Comment("Mock-test template"),
		field.String("learning_phase").
			Optional(),
		field.Bool("is_recovery_quiz").
			Default(false),
		field.Int("quiz_number").
			Default(0),
		field.Int("questions_total").
			Default(0),
		field.Int("questions_answered").
			Default(0),
		field.Int("correct_count").
			Default(0),
		field.Int("total_time_seconds").
			Default(0),
		field.String("invalid_reason").
			Optional(),
		field.Time("expires_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "kind", "status"),
		index.Fields("user_id", "created_at"),
	}
}
