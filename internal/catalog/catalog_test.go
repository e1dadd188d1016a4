package catalog

import (
	"context"
	"strings"
	"testing"

	"github.com/jeevibe/engine/internal/store"
)

func q(id string, b, a float64) *store.Question {
	out := &store.Question{ID: id, ChapterKey: "physics_kinematics"}
	out.IRT.A, out.IRT.B, out.IRT.C = a, b, 0.25
	return out
}

func TestFilterPrefersNarrowWindowAndSharpItems(t *testing.T) {
	pool := []*store.Question{
		q("near-sharp", 0.1, 1.6),
		q("near-dull", 0.2, 0.8),
		q("far-sharp", 1.8, 1.7),
	}
	got := Filter(pool, 0, 1, nil)
	if len(got) != 1 || got[0].ID != "near-sharp" {
		t.Fatalf("Filter = %v, want [near-sharp]", ids(got))
	}
}

func TestFilterRelaxesDiscriminationBeforeWidening(t *testing.T) {
	pool := []*store.Question{
		q("near-dull", 0.2, 0.8),
		q("far-sharp", 1.8, 1.7),
	}
	// One candidate is enough; the dull in-window item wins over widening
	// out to the sharp distant one.
	got := Filter(pool, 0, 1, nil)
	if len(got) != 1 || got[0].ID != "near-dull" {
		t.Fatalf("Filter = %v, want [near-dull]", ids(got))
	}
}

func TestFilterWidensToMax(t *testing.T) {
	pool := []*store.Question{q("far", 1.9, 1.5)}
	got := Filter(pool, 0, 1, nil)
	if len(got) != 1 || got[0].ID != "far" {
		t.Fatalf("Filter = %v, want [far]", ids(got))
	}
}

func TestFilterDropsExclusionsOnlyWhenEmpty(t *testing.T) {
	pool := []*store.Question{
		q("seen", 0.0, 1.5),
		q("fresh", 0.3, 1.5),
	}
	exclude := map[string]bool{"seen": true}
	got := Filter(pool, 0, 1, exclude)
	if len(got) != 1 || got[0].ID != "fresh" {
		t.Fatalf("Filter = %v, want [fresh]", ids(got))
	}

	// Everything excluded: repetition beats an empty slate.
	exclude["fresh"] = true
	got = Filter(pool, 0, 1, exclude)
	if len(got) == 0 {
		t.Fatal("Filter returned nothing with all candidates excluded")
	}
}

func TestFilterRespectsNeed(t *testing.T) {
	pool := []*store.Question{
		q("a", 0.0, 1.5),
		q("b", 0.4, 1.5),
		q("c", 1.2, 1.5),
	}
	got := Filter(pool, 0, 3, nil)
	if len(got) != 3 {
		t.Fatalf("Filter returned %d candidates, want 3", len(got))
	}
}

func ids(qs []*store.Question) []string {
	out := make([]string, len(qs))
	for i, q := range qs {
		out[i] = q.ID
	}
	return out
}

func TestTemplateLookup(t *testing.T) {
	tmpl, err := Template("jee_main_full")
	if err != nil {
		t.Fatalf("Template: %v", err)
	}
	if tmpl.Total != 90 || len(tmpl.Sections) != 3 {
		t.Errorf("jee_main_full = %d questions in %d sections, want 90 in 3", tmpl.Total, len(tmpl.Sections))
	}
	sum := 0
	for _, s := range tmpl.Sections {
		sum += s.Count
	}
	if sum != tmpl.Total {
		t.Errorf("section counts sum to %d, want %d", sum, tmpl.Total)
	}
	if _, err := Template("nope"); err == nil {
		t.Error("Template(nope) succeeded, want error")
	}
}

type fakeQuestionRepo struct {
	store.QuestionRepo
	upserted []*store.Question
}

func (f *fakeQuestionRepo) UpsertBatch(_ context.Context, qs []*store.Question) (int, error) {
	f.upserted = append(f.upserted, qs...)
	return len(qs), nil
}

func TestImportValidRecords(t *testing.T) {
	repo := &fakeQuestionRepo{}
	im, err := NewImporter(repo)
	if err != nil {
		t.Fatalf("NewImporter: %v", err)
	}
	src := `[{
		"id": "PHY_KIN_001",
		"subject": "physics",
		"chapter": "Kinematics",
		"chapter_key": "physics_kinematics",
		"question_type": "mcq_single",
		"options": ["A", "B", "C", "D"],
		"correct_answer": "B",
		"irt": {"a": 1.2, "b": -0.5, "c": 0.25},
		"source": "bank-v2"
	}]`
	n, err := im.Import(context.Background(), strings.NewReader(src))
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if n != 1 || len(repo.upserted) != 1 {
		t.Fatalf("Import wrote %d records, want 1", n)
	}
	got := repo.upserted[0]
	if got.IRT.B != -0.5 {
		t.Errorf("irt_b = %v, want -0.5", got.IRT.B)
	}
	// Unknown fields survive in the payload.
	if got.Payload["source"] != "bank-v2" {
		t.Errorf("payload = %v, want source passthrough", got.Payload)
	}
}

func TestImportRejectsBadRecords(t *testing.T) {
	im, err := NewImporter(&fakeQuestionRepo{})
	if err != nil {
		t.Fatalf("NewImporter: %v", err)
	}
	cases := []struct {
		name string
		src  string
	}{
		{"not an array", `{"id": "x"}`},
		{"missing irt", `[{"id": "x", "subject": "physics", "chapter": "K", "chapter_key": "physics_k", "question_type": "numerical", "correct_answer": "4"}]`},
		{"bad subject", `[{"id": "x", "subject": "biology", "chapter": "K", "chapter_key": "biology_k", "question_type": "numerical", "correct_answer": "4", "irt": {"a": 1, "b": 0, "c": 0.2}}]`},
		{"mcq without options", `[{"id": "x", "subject": "physics", "chapter": "K", "chapter_key": "physics_k", "question_type": "mcq_single", "correct_answer": "A", "irt": {"a": 1, "b": 0, "c": 0.2}}]`},
		{"duplicate ids", `[
			{"id": "x", "subject": "physics", "chapter": "K", "chapter_key": "physics_k", "question_type": "numerical", "correct_answer": "4", "irt": {"a": 1, "b": 0, "c": 0.2}},
			{"id": "x", "subject": "physics", "chapter": "K", "chapter_key": "physics_k", "question_type": "numerical", "correct_answer": "4", "irt": {"a": 1, "b": 0, "c": 0.2}}
		]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := im.Import(context.Background(), strings.NewReader(tc.src)); err == nil {
				t.Error("Import succeeded, want error")
			}
		})
	}
}
