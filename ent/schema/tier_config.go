package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"

	"github.com/jeevibe/engine/internal/model"
)

// TierConfig is one tier's limits and feature switches. Admin updates
// invalidate the quota gate's resolution cache.
type TierConfig struct {
	ent.Schema
}

func (TierConfig) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			NotEmpty().
			Comment("Tier name: free, trial, pro, ..."),
		field.JSON("limits", model.TierLimits{}),
		field.JSON("features", []string{}).
			Optional(),
		field.Bool("chapter_practice_weekly").
			Default(false).
			Comment("When set, chapter practice quota is weekly per subject instead of daily"),
		field.Int("exploration_end_quiz").
			Default(14).
			Comment("Quiz count at which the learning phase flips to exploitation"),
		field.Int("recovery_trigger").
			Default(3).
			Comment("Consecutive sub-50% quizzes that trigger a recovery quiz"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
