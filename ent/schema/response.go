package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Response is the immutable record of one graded answer, written exactly
// once inside the answer-submission batch.
type Response struct {
	ent.Schema
}

func (Response) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id"),
		field.String("session_id"),
		field.String("question_id"),
		field.String("kind"),
		field.String("chapter_key"),
		field.JSON("sub_topics", []string{}).
			Optional(),
		field.String("student_answer"),
		field.String("correct_answer"),
		field.Bool("is_correct"),
		field.Int("time_taken_seconds"),
		field.Float("irt_a"),
		field.Float("irt_b"),
		field.Float("irt_c"),
		field.Float("theta_delta"),
		field.Time("answered_at").
			Default(time.Now),
	}
}

func (Response) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "question_id").Unique(),
		index.Fields("user_id", "answered_at"),
		index.Fields("user_id", "chapter_key"),
	}
}
