// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "subject", Type: field.TypeString},
		{Name: "chapter", Type: field.TypeString},
		{Name: "chapter_key", Type: field.TypeString},
		{Name: "sub_topics", Type: field.TypeJSON, Nullable: true},
		{Name: "question_type", Type: field.TypeString},
		{Name: "options", Type: field.TypeJSON, Nullable: true},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "answer_value", Type: field.TypeFloat64, Nullable: true},
		{Name: "answer_range", Type: field.TypeJSON, Nullable: true},
		{Name: "irt_a", Type: field.TypeFloat64},
		{Name: "irt_b", Type: field.TypeFloat64},
		{Name: "irt_c", Type: field.TypeFloat64},
		{Name: "is_assessment", Type: field.TypeBool, Default: false},
		{Name: "attempts_count", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_chapter_key_irt_b",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[3], QuestionsColumns[11]},
			},
			{
				Name:    "question_subject",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1]},
			},
			{
				Name:    "question_is_assessment",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[13]},
			},
		},
	}
	// QuotaCountersColumns holds the columns for the "quota_counters" table.
	QuotaCountersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "feature", Type: field.TypeString},
		{Name: "period_key", Type: field.TypeString},
		{Name: "used", Type: field.TypeInt, Default: 0},
		{Name: "limit", Type: field.TypeInt},
		{Name: "resets_at", Type: field.TypeTime},
	}
	// QuotaCountersTable holds the schema information for the "quota_counters" table.
	QuotaCountersTable = &schema.Table{
		Name:       "quota_counters",
		Columns:    QuotaCountersColumns,
		PrimaryKey: []*schema.Column{QuotaCountersColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "quotacounter_user_id_feature_period_key",
				Unique:  true,
				Columns: []*schema.Column{QuotaCountersColumns[1], QuotaCountersColumns[2], QuotaCountersColumns[3]},
			},
		},
	}
	// ResponsesColumns holds the columns for the "responses" table.
	ResponsesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "chapter_key", Type: field.TypeString},
		{Name: "sub_topics", Type: field.TypeJSON, Nullable: true},
		{Name: "student_answer", Type: field.TypeString},
		{Name: "correct_answer", Type: field.TypeString},
		{Name: "is_correct", Type: field.TypeBool},
		{Name: "time_taken_seconds", Type: field.TypeInt},
		{Name: "irt_a", Type: field.TypeFloat64},
		{Name: "irt_b", Type: field.TypeFloat64},
		{Name: "irt_c", Type: field.TypeFloat64},
		{Name: "theta_delta", Type: field.TypeFloat64},
		{Name: "answered_at", Type: field.TypeTime},
	}
	// ResponsesTable holds the schema information for the "responses" table.
	ResponsesTable = &schema.Table{
		Name:       "responses",
		Columns:    ResponsesColumns,
		PrimaryKey: []*schema.Column{ResponsesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "response_session_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{ResponsesColumns[2], ResponsesColumns[3]},
			},
			{
				Name:    "response_user_id_answered_at",
				Unique:  false,
				Columns: []*schema.Column{ResponsesColumns[1], ResponsesColumns[15]},
			},
			{
				Name:    "response_user_id_chapter_key",
				Unique:  false,
				Columns: []*schema.Column{ResponsesColumns[1], ResponsesColumns[5]},
			},
		},
	}
	// ReviewIntervalsColumns holds the columns for the "review_intervals" table.
	ReviewIntervalsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "interval_days", Type: field.TypeInt},
		{Name: "next_review", Type: field.TypeTime},
		{Name: "times_reviewed", Type: field.TypeInt, Default: 0},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ReviewIntervalsTable holds the schema information for the "review_intervals" table.
	ReviewIntervalsTable = &schema.Table{
		Name:       "review_intervals",
		Columns:    ReviewIntervalsColumns,
		PrimaryKey: []*schema.Column{ReviewIntervalsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewinterval_user_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewIntervalsColumns[1], ReviewIntervalsColumns[2]},
			},
			{
				Name:    "reviewinterval_user_id_next_review",
				Unique:  false,
				Columns: []*schema.Column{ReviewIntervalsColumns[1], ReviewIntervalsColumns[4]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "chapter_key", Type: field.TypeString, Nullable: true},
		{Name: "template_id", Type: field.TypeString, Nullable: true},
		{Name: "learning_phase", Type: field.TypeString, Nullable: true},
		{Name: "is_recovery_quiz", Type: field.TypeBool, Default: false},
		{Name: "quiz_number", Type: field.TypeInt, Default: 0},
		{Name: "questions_total", Type: field.TypeInt, Default: 0},
		{Name: "questions_answered", Type: field.TypeInt, Default: 0},
		{Name: "correct_count", Type: field.TypeInt, Default: 0},
		{Name: "total_time_seconds", Type: field.TypeInt, Default: 0},
		{Name: "invalid_reason", Type: field.TypeString, Nullable: true},
		{Name: "expires_at", Type: field.TypeTime, Nullable: true},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_user_id_kind_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[2], SessionsColumns[3]},
			},
			{
				Name:    "session_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1], SessionsColumns[16]},
			},
		},
	}
	// SessionQuestionsColumns holds the columns for the "session_questions" table.
	SessionQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "chapter_key", Type: field.TypeString},
		{Name: "rationale", Type: field.TypeString, Nullable: true},
		{Name: "answered", Type: field.TypeBool, Default: false},
		{Name: "answering_at", Type: field.TypeTime, Nullable: true},
		{Name: "student_answer", Type: field.TypeString, Nullable: true},
		{Name: "is_correct", Type: field.TypeBool, Default: false},
		{Name: "time_taken_seconds", Type: field.TypeInt, Default: 0},
		{Name: "theta_delta", Type: field.TypeFloat64, Default: 0},
		{Name: "answered_at", Type: field.TypeTime, Nullable: true},
	}
	// SessionQuestionsTable holds the schema information for the "session_questions" table.
	SessionQuestionsTable = &schema.Table{
		Name:       "session_questions",
		Columns:    SessionQuestionsColumns,
		PrimaryKey: []*schema.Column{SessionQuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionquestion_session_id_position",
				Unique:  true,
				Columns: []*schema.Column{SessionQuestionsColumns[1], SessionQuestionsColumns[4]},
			},
			{
				Name:    "sessionquestion_session_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{SessionQuestionsColumns[1], SessionQuestionsColumns[3]},
			},
			{
				Name:    "sessionquestion_user_id_question_id",
				Unique:  false,
				Columns: []*schema.Column{SessionQuestionsColumns[2], SessionQuestionsColumns[3]},
			},
		},
	}
	// ThetaSnapshotsColumns holds the columns for the "theta_snapshots" table.
	ThetaSnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "quiz_id", Type: field.TypeString},
		{Name: "quiz_number", Type: field.TypeInt, Default: 0},
		{Name: "payload", Type: field.TypeJSON},
		{Name: "captured_at", Type: field.TypeTime},
	}
	// ThetaSnapshotsTable holds the schema information for the "theta_snapshots" table.
	ThetaSnapshotsTable = &schema.Table{
		Name:       "theta_snapshots",
		Columns:    ThetaSnapshotsColumns,
		PrimaryKey: []*schema.Column{ThetaSnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "thetasnapshot_user_id_quiz_id",
				Unique:  true,
				Columns: []*schema.Column{ThetaSnapshotsColumns[1], ThetaSnapshotsColumns[2]},
			},
			{
				Name:    "thetasnapshot_user_id_captured_at",
				Unique:  false,
				Columns: []*schema.Column{ThetaSnapshotsColumns[1], ThetaSnapshotsColumns[5]},
			},
		},
	}
	// TierConfigsColumns holds the columns for the "tier_configs" table.
	TierConfigsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "limits", Type: field.TypeJSON},
		{Name: "features", Type: field.TypeJSON, Nullable: true},
		{Name: "chapter_practice_weekly", Type: field.TypeBool, Default: false},
		{Name: "exploration_end_quiz", Type: field.TypeInt, Default: 14},
		{Name: "recovery_trigger", Type: field.TypeInt, Default: 3},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TierConfigsTable holds the schema information for the "tier_configs" table.
	TierConfigsTable = &schema.Table{
		Name:       "tier_configs",
		Columns:    TierConfigsColumns,
		PrimaryKey: []*schema.Column{TierConfigsColumns[0]},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "overall_theta", Type: field.TypeFloat64, Default: 0},
		{Name: "overall_percentile", Type: field.TypeInt, Default: 50},
		{Name: "theta_by_subject", Type: field.TypeJSON, Nullable: true},
		{Name: "theta_by_chapter", Type: field.TypeJSON, Nullable: true},
		{Name: "subtopic_accuracy", Type: field.TypeJSON, Nullable: true},
		{Name: "subject_accuracy", Type: field.TypeJSON, Nullable: true},
		{Name: "total_questions_attempted", Type: field.TypeInt, Default: 0},
		{Name: "total_questions_correct", Type: field.TypeInt, Default: 0},
		{Name: "total_time_spent_minutes", Type: field.TypeFloat64, Default: 0},
		{Name: "completed_quiz_count", Type: field.TypeInt, Default: 0},
		{Name: "learning_phase", Type: field.TypeString, Default: "exploration"},
		{Name: "current_day", Type: field.TypeInt, Default: 0},
		{Name: "assessment_status", Type: field.TypeString, Default: "not_started"},
		{Name: "assessment_baseline", Type: field.TypeJSON, Nullable: true},
		{Name: "assessment_completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "low_accuracy_streak", Type: field.TypeInt, Default: 0},
		{Name: "recovery_cooldown", Type: field.TypeInt, Default: 0},
		{Name: "chapter_practice_stats", Type: field.TypeJSON, Nullable: true},
		{Name: "subscription", Type: field.TypeJSON, Nullable: true},
		{Name: "trial", Type: field.TypeJSON, Nullable: true},
		{Name: "tier_override", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		QuestionsTable,
		QuotaCountersTable,
		ResponsesTable,
		ReviewIntervalsTable,
		SessionsTable,
		SessionQuestionsTable,
		ThetaSnapshotsTable,
		TierConfigsTable,
		UsersTable,
	}
)

func init() {
}
