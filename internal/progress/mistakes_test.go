package progress

import (
	"strings"
	"testing"
)

func incorrectSession(skill, text string) PracticeSession {
	return PracticeSession{
		Section:        "math",
		TotalQuestions: 1,
		CorrectAnswers: 0,
		Questions: []Question{
			{ID: 1, Text: text, Options: []string{"a", "b", "c", "d"}, Correct: 2, Explanation: "worked solution", Skill: skill},
		},
		Answers: map[int]Answer{
			1: {Selected: 0, IsCorrect: false},
		},
	}
}

func TestMistakeDedupBySharedPrefix(t *testing.T) {
	tr := newTestTracker(t)

	// Two different questions sharing skill and first 50 characters.
	prefix := strings.Repeat("x", MistakePatternLen)
	mustRecord(t, tr, incorrectSession("algebra", prefix+" solve for a"))
	mustRecord(t, tr, incorrectSession("algebra", prefix+" solve for b"))

	mistakes := tr.Mistakes()
	if len(mistakes) != 1 {
		t.Fatalf("mistakes length = %d, want 1", len(mistakes))
	}
	for _, m := range mistakes {
		if m.Occurrences != 2 {
			t.Errorf("occurrences = %d, want 2", m.Occurrences)
		}
	}
}

func TestDistinctPrefixesDistinctRecords(t *testing.T) {
	tr := newTestTracker(t)

	mustRecord(t, tr, incorrectSession("algebra", "Solve the linear equation 2x + 1 = 7"))
	mustRecord(t, tr, incorrectSession("algebra", "Factor the quadratic x^2 - 5x + 6"))

	if got := len(tr.Mistakes()); got != 2 {
		t.Errorf("mistakes length = %d, want 2", got)
	}
}

func TestExampleCap(t *testing.T) {
	tr := newTestTracker(t)

	for i := 0; i < 5; i++ {
		mustRecord(t, tr, incorrectSession("geometry", "Find the area of the shaded region"))
	}

	mistakes := tr.Mistakes()
	if len(mistakes) != 1 {
		t.Fatalf("mistakes length = %d, want 1", len(mistakes))
	}
	for _, m := range mistakes {
		if m.Occurrences != 5 {
			t.Errorf("occurrences = %d, want 5", m.Occurrences)
		}
		if len(m.Examples) != MaxMistakeExamples {
			t.Errorf("examples length = %d, want %d", len(m.Examples), MaxMistakeExamples)
		}
	}
}

func TestUnansweredCountsAsMistake(t *testing.T) {
	tr := newTestTracker(t)

	s := incorrectSession("statistics", "What is the median of the data set?")
	s.Answers = map[int]Answer{} // question left unanswered
	mustRecord(t, tr, s)

	mistakes := tr.Mistakes()
	if len(mistakes) != 1 {
		t.Fatalf("mistakes length = %d, want 1", len(mistakes))
	}
	for _, m := range mistakes {
		if len(m.Examples) != 1 {
			t.Fatalf("examples length = %d, want 1", len(m.Examples))
		}
		if m.Examples[0].UserAnswer != -1 {
			t.Errorf("userAnswer = %d, want -1 for unanswered", m.Examples[0].UserAnswer)
		}
	}
}

func TestEmptySkillTagNotTracked(t *testing.T) {
	tr := newTestTracker(t)

	mustRecord(t, tr, incorrectSession("", "Which transition best links the paragraphs?"))

	if got := len(tr.Mistakes()); got != 0 {
		t.Errorf("mistakes length = %d, want 0", got)
	}
}

func TestCorrectAnswersNotTracked(t *testing.T) {
	tr := newTestTracker(t)

	mustRecord(t, tr, singleSkillSession("grammar", true))

	if got := len(tr.Mistakes()); got != 0 {
		t.Errorf("mistakes length = %d, want 0", got)
	}
}

func TestMistakeRecordFields(t *testing.T) {
	tr := newTestTracker(t)

	text := "Identify the independent variable in the experiment"
	mustRecord(t, tr, incorrectSession("experimental-design", text))

	m, ok := tr.Mistakes()[MistakeKey("experimental-design", text)]
	if !ok {
		t.Fatal("expected record under composite key")
	}
	if m.Skill != "experimental-design" {
		t.Errorf("skill = %q", m.Skill)
	}
	if m.QuestionPattern != text {
		t.Errorf("pattern = %q, want full question text", m.QuestionPattern)
	}
	ex := m.Examples[0]
	if ex.UserAnswer != 0 || ex.CorrectAnswer != 2 || ex.Explanation != "worked solution" {
		t.Errorf("example = %+v", ex)
	}
}
