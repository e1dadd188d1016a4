package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/jeevibe/engine/internal/model"
)

// User is the student profile document. It exclusively owns the per-chapter
// proficiency map, the subject rollups, the subtopic accuracy map, the
// assessment baseline and the cumulative counters.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Comment("Stable external identity"),
		field.Float("overall_theta").
			Default(0).
			Comment("Attempt-weighted mean across subjects, clamped to [-3, 3]"),
		field.Int("overall_percentile").
			Default(50),
		field.JSON("theta_by_subject", map[string]model.SubjectState{}).
			Optional(),
		field.JSON("theta_by_chapter", map[string]model.ChapterState{}).
			Optional(),
		field.JSON("subtopic_accuracy", map[string]map[string]model.Tally{}).
			Optional().
			Comment("chapter_key -> subtopic -> tally"),
		field.JSON("subject_accuracy", map[string]model.Tally{}).
			Optional(),
		field.Int("total_questions_attempted").
			Default(0),
		field.Int("total_questions_correct").
			Default(0),
		field.Float("total_time_spent_minutes").
			Default(0),
		field.Int("completed_quiz_count").
			Default(0),
		field.String("learning_phase").
			Default(model.PhaseExploration),
		field.Int("current_day").
			Default(0).
			Comment("IST calendar days since assessment completion, analytics only"),
		field.String("assessment_status").
			Default(model.AssessmentNotStarted),
		field.JSON("assessment_baseline", map[string]model.ChapterState{}).
			Optional().
			Comment("theta_by_chapter snapshot at first assessment completion"),
		field.Time("assessment_completed_at").
			Optional().
			Nillable(),
		field.Int("low_accuracy_streak").
			Default(0).
			Comment("Consecutive completed quizzes with accuracy < 50%"),
		field.Int("recovery_cooldown").
			Default(0).
			Comment("Quizzes remaining before the recovery trigger re-arms"),
		field.JSON("chapter_practice_stats", map[string]model.Tally{}).
			Optional().
			Comment("chapter_key -> sessions completed / questions answered"),
		field.JSON("subscription", &model.Subscription{}).
			Optional(),
		field.JSON("trial", &model.Trial{}).
			Optional(),
		field.String("tier_override").
			Optional().
			Comment("Admin-set tier name; beats free, loses to paid and trial"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
