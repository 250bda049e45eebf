package progress

import (
	"fmt"
	"strings"
	"testing"
)

// skillSession builds one session with total questions on a single skill,
// the first correct of them answered correctly.
func skillSession(skill string, correct, total int) PracticeSession {
	s := PracticeSession{
		Section:        "math",
		TotalQuestions: total,
		CorrectAnswers: correct,
		Questions:      make([]Question, 0, total),
		Answers:        make(map[int]Answer, total),
	}
	for i := 1; i <= total; i++ {
		s.Questions = append(s.Questions, Question{
			ID:      i,
			Text:    fmt.Sprintf("%s question %d", skill, i),
			Options: []string{"a", "b", "c", "d"},
			Correct: 0,
			Skill:   skill,
		})
		ok := i <= correct
		sel := 0
		if !ok {
			sel = 1
		}
		s.Answers[i] = Answer{Selected: sel, IsCorrect: ok}
	}
	return s
}

func TestRecommendationThresholds(t *testing.T) {
	tr := newTestTracker(t)

	mustRecord(t, tr, skillSession("boundary", 60, 100))  // exactly 60%
	mustRecord(t, tr, skillSession("weak-medium", 59, 100)) // 59% -> weak, medium
	mustRecord(t, tr, skillSession("weak-easy", 39, 100))   // 39% -> weak, easy
	mustRecord(t, tr, skillSession("strong", 90, 100))      // 90% -> strong
	mustRecord(t, tr, skillSession("moderate", 80, 100))    // exactly 80% -> neither

	rec := tr.Recommendations()

	weak := make(map[string]WeakSkill)
	for _, w := range rec.WeakSkills {
		weak[w.Skill] = w
	}
	strong := make(map[string]bool)
	for _, s := range rec.StrongSkills {
		strong[s.Skill] = true
	}

	if _, ok := weak["boundary"]; ok {
		t.Error("60% skill must not be weak")
	}
	if strong["boundary"] {
		t.Error("60% skill must not be strong")
	}
	if _, ok := weak["moderate"]; ok {
		t.Error("80% skill must not be weak")
	}
	if strong["moderate"] {
		t.Error("80% skill must not be strong")
	}
	if _, ok := weak["weak-medium"]; !ok {
		t.Error("59% skill missing from weak list")
	}
	if _, ok := weak["weak-easy"]; !ok {
		t.Error("39% skill missing from weak list")
	}
	if !strong["strong"] {
		t.Error("90% skill missing from strong list")
	}

	difficulty := make(map[string]string)
	for _, p := range rec.SuggestedPractice {
		difficulty[p.Skill] = p.Difficulty
		if p.Questions != suggestedQuestionCount {
			t.Errorf("suggested questions = %d, want %d", p.Questions, suggestedQuestionCount)
		}
	}
	if difficulty["weak-medium"] != "medium" {
		t.Errorf("59%% difficulty = %q, want medium", difficulty["weak-medium"])
	}
	if difficulty["weak-easy"] != "easy" {
		t.Errorf("39%% difficulty = %q, want easy", difficulty["weak-easy"])
	}
}

func TestWeakSkillsSortedByAscendingAccuracy(t *testing.T) {
	tr := newTestTracker(t)

	mustRecord(t, tr, skillSession("half", 1, 2))
	mustRecord(t, tr, skillSession("quarter", 1, 4))
	mustRecord(t, tr, skillSession("tenth", 1, 10))

	rec := tr.Recommendations()
	if len(rec.WeakSkills) != 3 {
		t.Fatalf("weak skills = %d, want 3", len(rec.WeakSkills))
	}
	wantOrder := []string{"tenth", "quarter", "half"}
	for i, w := range rec.WeakSkills {
		if w.Skill != wantOrder[i] {
			t.Errorf("weakSkills[%d] = %q, want %q", i, w.Skill, wantOrder[i])
		}
	}
	// Suggested practice mirrors the weak ordering.
	for i, p := range rec.SuggestedPractice {
		if p.Skill != wantOrder[i] {
			t.Errorf("suggestedPractice[%d] = %q, want %q", i, p.Skill, wantOrder[i])
		}
	}
}

func TestWeakSkillMessage(t *testing.T) {
	tr := newTestTracker(t)

	mustRecord(t, tr, skillSession("wordiness", 1, 3)) // 33.33%

	rec := tr.Recommendations()
	if len(rec.WeakSkills) != 1 {
		t.Fatalf("weak skills = %d, want 1", len(rec.WeakSkills))
	}
	msg := rec.WeakSkills[0].Message
	if !strings.Contains(msg, "wordiness") || !strings.Contains(msg, "33%") {
		t.Errorf("message = %q", msg)
	}
}

func TestMistakePatternsRequireTwoOccurrences(t *testing.T) {
	tr := newTestTracker(t)

	mustRecord(t, tr, incorrectSession("algebra", "Solve 3x = 12"))
	rec := tr.Recommendations()
	if len(rec.MistakePatterns) != 0 {
		t.Fatalf("patterns after 1 occurrence = %d, want 0", len(rec.MistakePatterns))
	}

	mustRecord(t, tr, incorrectSession("algebra", "Solve 3x = 12"))
	rec = tr.Recommendations()
	if len(rec.MistakePatterns) != 1 {
		t.Fatalf("patterns after 2 occurrences = %d, want 1", len(rec.MistakePatterns))
	}

	p := rec.MistakePatterns[0]
	if p.Skill != "algebra" || p.Frequency != 2 {
		t.Errorf("pattern = %+v", p)
	}
	if !strings.Contains(p.Message, "algebra") || !strings.Contains(p.Message, "2 times") {
		t.Errorf("message = %q", p.Message)
	}
}

func TestRecommendationsPureFunction(t *testing.T) {
	tr := newTestTracker(t)

	mustRecord(t, tr, skillSession("grammar", 1, 4))

	first := tr.Recommendations()
	second := tr.Recommendations()
	if len(first.WeakSkills) != len(second.WeakSkills) ||
		first.WeakSkills[0] != second.WeakSkills[0] {
		t.Errorf("repeated recommendations differ: %+v vs %+v", first, second)
	}
}
