package ai

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestRetry_TransientThenSuccess(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{}},
		MockResponse{Content: json.RawMessage(`"ok"`)},
	)
	p := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: time.Millisecond, Multiplier: 1})

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if string(resp.Content) != `"ok"` {
		t.Errorf("content = %s", resp.Content)
	}
	if len(mock.Calls) != 2 {
		t.Errorf("provider called %d times, want 2", len(mock.Calls))
	}
}

func TestRetry_InvalidResponseGetsOneRetry(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrInvalidResponse{}},
		MockResponse{Err: &ErrInvalidResponse{}},
		MockResponse{Content: json.RawMessage(`"never reached"`)},
	)
	p := WithRetry(mock, RetryConfig{MaxAttempts: 5, InitialWait: time.Millisecond, MaxWait: time.Millisecond, Multiplier: 1})

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("Generate succeeded, want error after second invalid response")
	}
	if len(mock.Calls) != 2 {
		t.Errorf("provider called %d times, want 2", len(mock.Calls))
	}
}

func TestRetry_MaxTokensNotRetried(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &ErrMaxTokensExceeded{}})
	p := WithRetry(mock, RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: time.Millisecond, Multiplier: 1})

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("Generate succeeded, want error")
	}
	if len(mock.Calls) != 1 {
		t.Errorf("provider called %d times, want 1", len(mock.Calls))
	}
}

func TestValidateResponse(t *testing.T) {
	schema := &Schema{
		Name: "test-answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"answer": map[string]any{"type": "string"},
			},
			"required": []any{"answer"},
		},
	}

	if err := validateResponse(schema, json.RawMessage(`{"answer": "42"}`)); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
	if err := validateResponse(schema, json.RawMessage(`{"other": 1}`)); err == nil {
		t.Error("missing required field accepted")
	}
	if err := validateResponse(schema, json.RawMessage(`not json`)); err == nil {
		t.Error("malformed JSON accepted")
	}
}

func TestFollowups_ParsesGeneratedQuestions(t *testing.T) {
	payload := `{
		"questions": [
			{
				"question_text": "A ball is dropped from 20 m. Find the time to reach the ground.",
				"question_type": "numerical",
				"options": [],
				"correct_answer": "2",
				"difficulty": -0.5,
				"explanation": "t = sqrt(2h/g) = sqrt(4) = 2 s"
			},
			{
				"question_text": "Which quantity is conserved in projectile motion?",
				"question_type": "mcq_single",
				"options": ["A", "B", "C", "D"],
				"correct_answer": "B",
				"difficulty": 0.0,
				"explanation": "Horizontal velocity is unchanged."
			}
		]
	}`
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(payload)})
	a := NewAssistant(mock)

	qs, err := a.Followups(context.Background(), "physics_kinematics", "original problem", -0.5, 2)
	if err != nil {
		t.Fatalf("Followups: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d questions, want 2", len(qs))
	}

	num := qs[0]
	if num.ChapterKey != "physics_kinematics" || num.Subject != "physics" {
		t.Errorf("classification = %s/%s", num.Subject, num.ChapterKey)
	}
	if num.AnswerValue == nil || *num.AnswerValue != 2 {
		t.Errorf("numerical answer value = %v, want 2", num.AnswerValue)
	}
	if num.IRT.A != generatedDiscrimination || num.IRT.B != -0.5 {
		t.Errorf("IRT = %+v", num.IRT)
	}
	if num.Payload["generated"] != true {
		t.Errorf("generated flag missing from payload")
	}

	mcq := qs[1]
	if mcq.IRT.C != generatedMCQGuessing {
		t.Errorf("mcq guessing floor = %v, want %v", mcq.IRT.C, generatedMCQGuessing)
	}
}

func TestFollowups_RejectsEmptyBatch(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{"questions": []}`)})
	a := NewAssistant(mock)
	if _, err := a.Followups(context.Background(), "physics_kinematics", "p", 0, 3); err == nil {
		t.Fatal("Followups succeeded on empty batch")
	}
}

func TestSolve(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(
		`{"answer": "4 m/s", "steps": ["v = u + at", "v = 0 + 2*2 = 4"], "concepts": ["kinematics"]}`,
	)})
	a := NewAssistant(mock)

	sol, err := a.Solve(context.Background(), "Find v after 2 s at a = 2 m/s^2 from rest.")
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if sol.Answer != "4 m/s" || len(sol.Steps) != 2 {
		t.Errorf("solution = %+v", sol)
	}
}

func TestChapterOf(t *testing.T) {
	cases := []struct{ key, want string }{
		{"physics_kinematics", "Kinematics"},
		{"chemistry_chemical_bonding", "Chemical Bonding"},
		{"malformed", "malformed"},
	}
	for _, tc := range cases {
		if got := chapterOf(tc.key); got != tc.want {
			t.Errorf("chapterOf(%q) = %q, want %q", tc.key, got, tc.want)
		}
	}
}
