package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jeevibe/engine/internal/model"
	"github.com/jeevibe/engine/internal/store"
)

// FollowupSchema defines the JSON schema for generated follow-up
// questions when the catalog cannot fill a snap-practice slate.
var FollowupSchema = &Schema{
	Name:        "followup-questions",
	Description: "JEE-style practice questions following up on a solved problem",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question_text": map[string]any{
							"type":        "string",
							"description": "The question statement in plain text",
						},
						"question_type": map[string]any{
							"type": "string",
							"enum": []any{"mcq_single", "numerical"},
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 options for mcq_single, empty for numerical",
						},
						"correct_answer": map[string]any{
							"type":        "string",
							"description": "The option letter (A-D) for MCQ, or the numerical value as text",
						},
						"difficulty": map[string]any{
							"type":        "number",
							"minimum":     -3,
							"maximum":     3,
							"description": "IRT difficulty on the theta scale",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Step-by-step worked solution",
						},
					},
					"required":             []any{"question_text", "question_type", "options", "correct_answer", "difficulty", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// SolutionSchema defines the JSON schema for snap-solve explanations.
var SolutionSchema = &Schema{
	Name:        "snap-solution",
	Description: "Worked solution to a JEE problem",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{
				"type":        "string",
				"description": "The final answer, as short as possible",
			},
			"steps": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Numbered solution steps",
			},
			"concepts": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "The concepts this problem exercises",
			},
		},
		"required":             []any{"answer", "steps", "concepts"},
		"additionalProperties": false,
	},
}

// Generated IRT defaults. A generated item has no calibration history, so
// it gets a neutral discrimination and the guessing floor of its format.
const (
	generatedDiscrimination = 1.0
	generatedMCQGuessing    = 0.25
)

// Solution is a parsed snap-solve response.
type Solution struct {
	Answer   string   `json:"answer"`
	Steps    []string `json:"steps"`
	Concepts []string `json:"concepts"`
}

// Assistant is the domain layer over the raw provider: follow-up question
// generation, snap solving and tutor chat.
type Assistant struct {
	provider Provider
}

func NewAssistant(p Provider) *Assistant {
	return &Assistant{provider: p}
}

const followupSystem = "You are a JEE question writer. Produce original, " +
	"well-posed questions at the requested difficulty. Keep the language " +
	"plain and the numbers clean."

// Followups generates n catalog-shaped questions near a solved snap. The
// returned questions carry generated ids and default calibration, ready
// for UpsertBatch.
func (a *Assistant) Followups(ctx context.Context, chapterKey, problem string, target float64, n int) ([]*store.Question, error) {
	subject := model.SubjectOfChapterKey(chapterKey)
	prompt := fmt.Sprintf(
		"A student just solved this %s problem:\n\n%s\n\nWrite %d new practice questions on the same concept at IRT difficulty %.1f.",
		subject, problem, n, target)

	ctx = WithPurpose(ctx, "snap_followups")
	resp, err := a.provider.Generate(ctx, Request{
		System:    followupSystem,
		Messages:  []Message{{Role: RoleUser, Content: prompt}},
		Schema:    FollowupSchema,
		MaxTokens: 4096,
	})
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Questions []struct {
			QuestionText  string   `json:"question_text"`
			QuestionType  string   `json:"question_type"`
			Options       []string `json:"options"`
			CorrectAnswer string   `json:"correct_answer"`
			Difficulty    float64  `json:"difficulty"`
			Explanation   string   `json:"explanation"`
		} `json:"questions"`
	}
	if err := json.Unmarshal(resp.Content, &parsed); err != nil {
		return nil, &ErrInvalidResponse{Content: resp.Content, Err: err}
	}

	out := make([]*store.Question, 0, len(parsed.Questions))
	for _, g := range parsed.Questions {
		if g.QuestionType == model.QuestionMCQSingle && len(g.Options) < 2 {
			continue
		}
		q := &store.Question{
			ID:            "gen_" + uuid.NewString(),
			Subject:       subject,
			Chapter:       chapterOf(chapterKey),
			ChapterKey:    chapterKey,
			QuestionType:  g.QuestionType,
			Options:       g.Options,
			CorrectAnswer: g.CorrectAnswer,
			Payload: map[string]any{
				"question_text": g.QuestionText,
				"explanation":   g.Explanation,
				"generated":     true,
			},
		}
		q.IRT.A = generatedDiscrimination
		q.IRT.B = g.Difficulty
		if g.QuestionType == model.QuestionMCQSingle {
			q.IRT.C = generatedMCQGuessing
		}
		if g.QuestionType == model.QuestionNumerical {
			if v, err := strconv.ParseFloat(strings.TrimSpace(g.CorrectAnswer), 64); err == nil {
				q.AnswerValue = &v
			}
		}
		out = append(out, q)
	}
	if len(out) == 0 {
		return nil, &ErrInvalidResponse{Content: resp.Content, Err: fmt.Errorf("no usable questions generated")}
	}
	return out, nil
}

const solveSystem = "You are a JEE tutor. Solve the problem exactly and " +
	"show the working a student could follow."

// Solve produces a worked solution for a snapped problem.
func (a *Assistant) Solve(ctx context.Context, problem string) (*Solution, error) {
	ctx = WithPurpose(ctx, "snap_solve")
	resp, err := a.provider.Generate(ctx, Request{
		System:    solveSystem,
		Messages:  []Message{{Role: RoleUser, Content: problem}},
		Schema:    SolutionSchema,
		MaxTokens: 2048,
	})
	if err != nil {
		return nil, err
	}
	var sol Solution
	if err := json.Unmarshal(resp.Content, &sol); err != nil {
		return nil, &ErrInvalidResponse{Content: resp.Content, Err: err}
	}
	return &sol, nil
}

const tutorSystem = "You are a patient JEE tutor. Answer the student's " +
	"question directly, then check their understanding with one short " +
	"follow-up question. Keep answers under 200 words."

// Tutor answers one student message given the conversation so far.
func (a *Assistant) Tutor(ctx context.Context, history []Message, question string) (string, error) {
	ctx = WithPurpose(ctx, "tutor")
	msgs := append(append([]Message{}, history...), Message{Role: RoleUser, Content: question})
	resp, err := a.provider.Generate(ctx, Request{
		System:    tutorSystem,
		Messages:  msgs,
		MaxTokens: 1024,
	})
	if err != nil {
		return "", err
	}
	return strings.Trim(string(resp.Content), "\" \n"), nil
}

// chapterOf derives a display chapter name from the canonical key.
func chapterOf(chapterKey string) string {
	_, rest, ok := strings.Cut(chapterKey, "_")
	if !ok {
		return chapterKey
	}
	words := strings.Split(rest, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
