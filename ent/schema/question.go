package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/jeevibe/engine/internal/model"
)

// Question is an immutable catalog entry. Content (text, solution rendering)
// lives elsewhere; the engine only needs identity, classification, the
// correct answer and the IRT parameters.
type Question struct {
	ent.Schema
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty(),
		field.String("subject"),
		field.String("chapter"),
		field.String("chapter_key").
			Comment("Canonical subject_chapter identifier"),
		field.JSON("sub_topics", []string{}).
			Optional(),
		field.String("question_type").
			Comment("mcq_single or numerical"),
		field.JSON("options", []string{}).
			Optional().
			Comment("MCQ option letters; sessions holding questions with fewer than 2 are invalidated"),
		field.String("correct_answer").
			Comment("MCQ letter, or the numerical value as text"),
		field.Float("answer_value").
			Optional().
			Nillable().
			Comment("Parsed numerical answer"),
		field.JSON("answer_range", &model.AnswerRange{}).
			Optional(),
		field.Float("irt_a"),
		field.Float("irt_b"),
		field.Float("irt_c"),
		field.Bool("is_assessment").
			Default(false).
			Comment("Member of the curated initial-assessment subset"),
		field.Int("attempts_count").
			Default(0).
			Comment("Refreshed by the question-stat job"),
		field.Int("correct_count").
			Default(0),
		field.JSON("payload", map[string]any{}).
			Optional().
			Comment("Unknown catalog fields passed through for forward compatibility"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("chapter_key", "irt_b"),
		index.Fields("subject"),
		index.Fields("is_assessment"),
	}
}
