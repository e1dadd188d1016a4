package selection

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/jeevibe/engine/internal/catalog"
	"github.com/jeevibe/engine/internal/clock"
	"github.com/jeevibe/engine/internal/errs"
	"github.com/jeevibe/engine/internal/model"
	"github.com/jeevibe/engine/internal/spacedrep"
	"github.com/jeevibe/engine/internal/store"
)

type fakeQuestions struct {
	store.QuestionRepo
	qs []*store.Question
}

func (f *fakeQuestions) ByChapter(_ context.Context, key string) ([]*store.Question, error) {
	var out []*store.Question
	for _, q := range f.qs {
		if q.ChapterKey == key {
			out = append(out, q)
		}
	}
	return out, nil
}

func (f *fakeQuestions) ChapterKeys(_ context.Context) ([]string, error) {
	seen := map[string]bool{}
	var out []string
	for _, q := range f.qs {
		if !seen[q.ChapterKey] {
			seen[q.ChapterKey] = true
			out = append(out, q.ChapterKey)
		}
	}
	return out, nil
}

func (f *fakeQuestions) Assessment(_ context.Context) ([]*store.Question, error) {
	var out []*store.Question
	for _, q := range f.qs {
		if q.IsAssessment {
			out = append(out, q)
		}
	}
	return out, nil
}

type fakeSessions struct {
	store.SessionRepo
	recent map[string]bool
}

func (f *fakeSessions) RecentQuestionIDs(_ context.Context, _ string, _ []string, _ int) (map[string]bool, error) {
	if f.recent == nil {
		return map[string]bool{}, nil
	}
	return f.recent, nil
}

type fakeReviews struct {
	due []store.ReviewInterval
}

func (f *fakeReviews) Get(_ context.Context, _, _ string) (*store.ReviewInterval, error) {
	return nil, errs.E(errs.NotFound, "REVIEW_NOT_FOUND", "missing")
}

func (f *fakeReviews) Upsert(_ context.Context, _ store.ReviewInterval) error { return nil }

func (f *fakeReviews) Due(_ context.Context, _ string, _ time.Time, limit int) ([]*store.ReviewInterval, error) {
	var out []*store.ReviewInterval
	for i := range f.due {
		if len(out) == limit {
			break
		}
		out = append(out, &f.due[i])
	}
	return out, nil
}

func mkQuestion(id, chapterKey string, b, a float64, assessment bool) *store.Question {
	q := &store.Question{
		ID:           id,
		Subject:      model.SubjectOfChapterKey(chapterKey),
		ChapterKey:   chapterKey,
		QuestionType: model.QuestionNumerical,
		IsAssessment: assessment,
	}
	q.IRT.A, q.IRT.B, q.IRT.C = a, b, 0.25
	return q
}

// bank builds a catalog with nPer questions per chapter spread over the
// difficulty range.
func bank(chapters []string, nPer int) []*store.Question {
	var out []*store.Question
	for _, key := range chapters {
		for i := range nPer {
			b := -2.0 + 4.0*float64(i)/float64(nPer-1)
			out = append(out, mkQuestion(fmt.Sprintf("%s_%03d", key, i), key, b, 1.5, false))
		}
	}
	return out
}

func newSelector(qs []*store.Question, reviews *fakeReviews, recent map[string]bool) *Selector {
	repo := &fakeQuestions{qs: qs}
	ix := catalog.NewIndex(repo, time.Hour, zap.NewNop())
	if reviews == nil {
		reviews = &fakeReviews{}
	}
	sched := spacedrep.NewScheduler(reviews, clock.System())
	return New(ix, sched, &fakeSessions{recent: recent}, zap.NewNop())
}

func TestExplorationRatio(t *testing.T) {
	cases := []struct {
		quizzes int
		want    float64
	}{
		{0, 0.60},
		{1, 0.56},
		{5, 0.40},
		{10, 0.30},
		{50, 0.30},
	}
	for _, tc := range cases {
		got := ExplorationRatio(tc.quizzes)
		if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("ExplorationRatio(%d) = %v, want %v", tc.quizzes, got, tc.want)
		}
	}
}

func TestNeedsRecovery(t *testing.T) {
	cases := []struct {
		name       string
		accuracies []float64
		cooldown   int
		want       bool
	}{
		{"three low quizzes", []float64{0.4, 0.3, 0.45}, 0, true},
		{"streak broken", []float64{0.4, 0.6, 0.3}, 0, false},
		{"too short", []float64{0.4, 0.3}, 0, false},
		{"cooldown active", []float64{0.4, 0.3, 0.45}, 2, false},
		{"exactly fifty percent", []float64{0.5, 0.4, 0.4}, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := NeedsRecovery(tc.accuracies, 3, tc.cooldown); got != tc.want {
				t.Errorf("NeedsRecovery = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAssessment_StratifiedAndDeterministic(t *testing.T) {
	var pool []*store.Question
	for _, subject := range model.Subjects {
		for i := range 15 {
			b := -2.0 + 4.0*float64(i)/14
			pool = append(pool, mkQuestion(fmt.Sprintf("%s_a%02d", subject, i), subject+"_general", b, 1.3, true))
		}
	}
	s := newSelector(pool, nil, nil)
	ctx := context.Background()

	slate, err := s.Assessment(ctx, "user-1")
	if err != nil {
		t.Fatalf("Assessment: %v", err)
	}
	if len(slate) != AssessmentSize {
		t.Fatalf("slate has %d questions, want %d", len(slate), AssessmentSize)
	}
	perSubject := map[string]int{}
	for _, p := range slate {
		perSubject[p.Question.Subject]++
		if p.Rationale != RationaleAssessment {
			t.Errorf("rationale = %q, want %q", p.Rationale, RationaleAssessment)
		}
	}
	for _, subject := range model.Subjects {
		if perSubject[subject] != 10 {
			t.Errorf("%s count = %d, want 10", subject, perSubject[subject])
		}
	}

	// Same user, same slate.
	again, err := s.Assessment(ctx, "user-1")
	if err != nil {
		t.Fatalf("Assessment again: %v", err)
	}
	for i := range slate {
		if slate[i].Question.ID != again[i].Question.ID {
			t.Fatalf("slate not deterministic at position %d: %s vs %s", i, slate[i].Question.ID, again[i].Question.ID)
		}
	}

	// Different user, different shuffle (with overwhelming likelihood).
	other, err := s.Assessment(ctx, "user-2")
	if err != nil {
		t.Fatalf("Assessment other user: %v", err)
	}
	same := true
	for i := range slate {
		if slate[i].Question.ID != other[i].Question.ID {
			same = false
			break
		}
	}
	if same {
		t.Error("two users received identical assessment slates")
	}
}

func TestBestByInformation_TieBreaksOnID(t *testing.T) {
	// Identical parameters: information ties, the lower id wins.
	a := mkQuestion("q_b", "physics_kinematics", 0, 1.5, false)
	b := mkQuestion("q_a", "physics_kinematics", 0, 1.5, false)
	got := bestByInformation([]*store.Question{a, b}, 0, 1)
	if len(got) != 1 || got[0].ID != "q_a" {
		t.Fatalf("bestByInformation picked %v, want q_a", got)
	}
}

func TestUnlockQuiz(t *testing.T) {
	s := newSelector(bank([]string{"physics_waves"}, 12), nil, nil)
	u := &store.User{ID: "u1"}

	slate, err := s.UnlockQuiz(context.Background(), u, "physics_waves")
	if err != nil {
		t.Fatalf("UnlockQuiz: %v", err)
	}
	if len(slate) != UnlockQuizSize {
		t.Fatalf("slate has %d questions, want %d", len(slate), UnlockQuizSize)
	}
	for _, p := range slate {
		if p.Question.IRT.B < -1 || p.Question.IRT.B > 1 {
			t.Errorf("unlock question %s at b=%v, want near standard difficulty", p.Question.ID, p.Question.IRT.B)
		}
	}
}

func TestDailyQuiz_ExplorationSpreadsChapters(t *testing.T) {
	chapters := []string{
		"physics_kinematics", "physics_optics", "chemistry_bonding",
		"chemistry_kinetics", "mathematics_calculus", "mathematics_algebra",
		"physics_waves", "chemistry_organic", "mathematics_vectors",
		"physics_thermo", "chemistry_ionic", "mathematics_matrices",
	}
	s := newSelector(bank(chapters, 8), nil, nil)
	u := &store.User{ID: "u1", LearningPhase: model.PhaseExploration}

	slate, err := s.DailyQuiz(context.Background(), u, false, 3)
	if err != nil {
		t.Fatalf("DailyQuiz: %v", err)
	}
	if len(slate) != DailyQuizSize {
		t.Fatalf("slate has %d questions, want %d", len(slate), DailyQuizSize)
	}
	seen := map[string]int{}
	for _, p := range slate {
		seen[p.Question.ChapterKey]++
	}
	if len(seen) != DailyQuizSize {
		t.Errorf("exploration reused chapters: %v", seen)
	}
}

func TestDailyQuiz_ExploitationMixesRationales(t *testing.T) {
	chapters := []string{
		"physics_kinematics", "physics_optics", "chemistry_bonding",
		"chemistry_kinetics", "mathematics_calculus", "mathematics_algebra",
	}
	qs := bank(chapters, 12)
	reviews := &fakeReviews{due: []store.ReviewInterval{
		{UserID: "u1", QuestionID: "physics_optics_003"},
		{UserID: "u1", QuestionID: "chemistry_bonding_004"},
	}}
	s := newSelector(qs, reviews, nil)

	u := &store.User{
		ID:                 "u1",
		LearningPhase:      model.PhaseExploitation,
		CompletedQuizCount: 20,
		ThetaByChapter: map[string]model.ChapterState{
			"physics_kinematics":   {Theta: -1.2, ConfidenceSE: 0.3, Attempts: 25, Correct: 8},
			"chemistry_kinetics":   {Theta: -0.5, ConfidenceSE: 0.3, Attempts: 20, Correct: 9},
			"mathematics_calculus": {Theta: 0.8, ConfidenceSE: 0.3, Attempts: 30, Correct: 22},
		},
	}

	slate, err := s.DailyQuiz(context.Background(), u, false, 3)
	if err != nil {
		t.Fatalf("DailyQuiz: %v", err)
	}
	if len(slate) != DailyQuizSize {
		t.Fatalf("slate has %d questions, want %d", len(slate), DailyQuizSize)
	}
	counts := map[string]int{}
	for _, p := range slate {
		counts[p.Rationale]++
	}
	if counts[RationaleReview] != 2 {
		t.Errorf("review picks = %d, want 2", counts[RationaleReview])
	}
	if counts[RationaleDeliberate] < 6 {
		t.Errorf("deliberate picks = %d, want at least 6", counts[RationaleDeliberate])
	}
}

func TestDailyQuiz_RecoverySitsBelowLevel(t *testing.T) {
	chapters := []string{"physics_kinematics", "chemistry_bonding"}
	s := newSelector(bank(chapters, 20), nil, nil)

	u := &store.User{
		ID:            "u1",
		LearningPhase: model.PhaseExploitation,
		ThetaByChapter: map[string]model.ChapterState{
			"physics_kinematics": {Theta: 0.5, ConfidenceSE: 0.3, Attempts: 30, Correct: 10},
			"chemistry_bonding":  {Theta: 0.2, ConfidenceSE: 0.3, Attempts: 25, Correct: 8},
		},
	}

	slate, err := s.DailyQuiz(context.Background(), u, true, 3)
	if err != nil {
		t.Fatalf("DailyQuiz recovery: %v", err)
	}
	for _, p := range slate {
		if p.Rationale != RationaleRecovery && p.Rationale != RationaleReview {
			t.Fatalf("rationale = %q in recovery slate", p.Rationale)
		}
		level := u.ThetaByChapter[p.Question.ChapterKey].Theta
		if p.Question.IRT.B > level+recoveryHalfWindow {
			t.Errorf("question %s at b=%v above recovery band for theta %v", p.Question.ID, p.Question.IRT.B, level)
		}
	}
}

func TestDailyQuiz_ExcludesRecentQuestions(t *testing.T) {
	chapters := []string{"physics_kinematics", "chemistry_bonding", "mathematics_algebra"}
	qs := bank(chapters, 10)
	recent := map[string]bool{}
	for _, q := range qs {
		if q.ChapterKey == "physics_kinematics" {
			recent[q.ID] = true
		}
	}
	s := newSelector(qs, nil, recent)
	u := &store.User{ID: "u1", LearningPhase: model.PhaseExploration}

	slate, err := s.DailyQuiz(context.Background(), u, false, 3)
	if err != nil {
		t.Fatalf("DailyQuiz: %v", err)
	}
	for _, p := range slate {
		if recent[p.Question.ID] {
			t.Errorf("recently served question %s selected again", p.Question.ID)
		}
	}
}

func TestMockTest_FillsSections(t *testing.T) {
	chapters := []string{
		"physics_kinematics", "physics_optics",
		"chemistry_bonding", "chemistry_kinetics",
		"mathematics_calculus", "mathematics_algebra",
	}
	s := newSelector(bank(chapters, 30), nil, nil)
	u := &store.User{ID: "u1"}
	tmpl := model.MockTemplate{
		ID:    "jee_main_mini",
		Total: 30,
		Sections: []model.MockSection{
			{Subject: model.SubjectPhysics, Count: 10},
			{Subject: model.SubjectChemistry, Count: 10},
			{Subject: model.SubjectMathematics, Count: 10},
		},
	}

	slate, err := s.MockTest(context.Background(), u, tmpl)
	if err != nil {
		t.Fatalf("MockTest: %v", err)
	}
	if len(slate) != 30 {
		t.Fatalf("slate has %d questions, want 30", len(slate))
	}
	perSubject := map[string]int{}
	seen := map[string]bool{}
	for _, p := range slate {
		perSubject[p.Question.Subject]++
		if seen[p.Question.ID] {
			t.Errorf("question %s appears twice", p.Question.ID)
		}
		seen[p.Question.ID] = true
	}
	for _, section := range tmpl.Sections {
		if perSubject[section.Subject] != section.Count {
			t.Errorf("%s section = %d questions, want %d", section.Subject, perSubject[section.Subject], section.Count)
		}
	}
}

func TestInterleave_NoAdjacentChapters(t *testing.T) {
	var slate []Picked
	for i := range 5 {
		slate = append(slate, Picked{Question: mkQuestion(fmt.Sprintf("a%d", i), "physics_kinematics", 0, 1, false)})
	}
	for i := range 5 {
		slate = append(slate, Picked{Question: mkQuestion(fmt.Sprintf("b%d", i), "chemistry_bonding", 0, 1, false)})
	}

	got := Interleave(slate, seededRand("u1"))
	if len(got) != 10 {
		t.Fatalf("Interleave changed slate size to %d", len(got))
	}
	for i := 1; i < len(got); i++ {
		if got[i].Question.ChapterKey == got[i-1].Question.ChapterKey {
			t.Errorf("positions %d and %d share chapter %s", i-1, i, got[i].Question.ChapterKey)
		}
	}
}

func TestInterleave_SingleChapterUnchanged(t *testing.T) {
	var slate []Picked
	for i := range 4 {
		slate = append(slate, Picked{Question: mkQuestion(fmt.Sprintf("a%d", i), "physics_kinematics", 0, 1, false)})
	}
	got := Interleave(slate, seededRand("u1"))
	for i := range slate {
		if got[i].Question.ID != slate[i].Question.ID {
			t.Fatalf("single-chapter slate reordered at %d", i)
		}
	}
}
