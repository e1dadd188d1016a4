package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/jeevibe/engine/internal/model"
)

// ThetaSnapshot is an immutable post-completion capture of the rollup state,
// keyed by quiz id or by ISO week for the weekly sweep. The repo exposes
// create and read only; snapshots are never modified.
type ThetaSnapshot struct {
	ent.Schema
}

func (ThetaSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id"),
		field.String("quiz_id").
			Comment("Session id, or the ISO week key for weekly snapshots"),
		field.Int("quiz_number").
			Default(0),
		field.JSON("payload", &model.SnapshotPayload{}),
		field.Time("captured_at").
			Default(time.Now),
	}
}

func (ThetaSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "quiz_id").Unique(),
		index.Fields("user_id", "captured_at"),
	}
}
