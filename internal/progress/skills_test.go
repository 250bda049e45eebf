package progress

import (
	"testing"
	"time"
)

func TestSkillAccuracy(t *testing.T) {
	tr := newTestTracker(t)

	// 7 correct, 3 incorrect across several sessions.
	outcomes := []bool{true, true, false, true, true, false, true, true, false, true}
	for _, correct := range outcomes {
		mustRecord(t, tr, singleSkillSession("punctuation", correct))
	}

	stat := tr.Skills()["punctuation"]
	if stat == nil {
		t.Fatal("expected skill stat")
	}
	if stat.TotalAttempts != 10 {
		t.Errorf("totalAttempts = %d, want 10", stat.TotalAttempts)
	}
	if stat.CorrectAttempts != 7 {
		t.Errorf("correctAttempts = %d, want 7", stat.CorrectAttempts)
	}
	if stat.Accuracy != 70 {
		t.Errorf("accuracy = %v, want 70", stat.Accuracy)
	}
}

func TestRecentWindowCap(t *testing.T) {
	tr := newTestTracker(t)

	// 15 attempts: first 5 incorrect, last 10 correct. Only the last 10
	// outcomes survive in the window, in order.
	for i := 0; i < 15; i++ {
		mustRecord(t, tr, singleSkillSession("algebra", i >= 5))
	}

	stat := tr.Skills()["algebra"]
	if len(stat.RecentOutcomes) != RecentWindowCap {
		t.Fatalf("window length = %d, want %d", len(stat.RecentOutcomes), RecentWindowCap)
	}
	for i, correct := range stat.RecentOutcomes {
		if !correct {
			t.Errorf("window[%d] = false, want true", i)
		}
	}
}

func TestTrendRequiresFiveSamples(t *testing.T) {
	tr := newTestTracker(t)

	for i := 0; i < 4; i++ {
		mustRecord(t, tr, singleSkillSession("geometry", true))
	}
	if trend := tr.Skills()["geometry"].Trend; trend != "" {
		t.Errorf("trend with 4 samples = %q, want undefined", trend)
	}

	mustRecord(t, tr, singleSkillSession("geometry", true))
	trend := tr.Skills()["geometry"].Trend
	switch trend {
	case TrendImproving, TrendDeclining, TrendStable:
	default:
		t.Errorf("trend with 5 samples = %q, want a defined classification", trend)
	}
}

func TestTrendClassification(t *testing.T) {
	tests := []struct {
		name     string
		outcomes []bool
		want     Trend
	}{
		{
			// Lifetime 5/10 = 50%; last 5 all correct = 100%.
			name:     "improving",
			outcomes: []bool{false, false, false, false, false, true, true, true, true, true},
			want:     TrendImproving,
		},
		{
			// Lifetime 5/10 = 50%; last 5 all incorrect = 0%.
			name:     "declining",
			outcomes: []bool{true, true, true, true, true, false, false, false, false, false},
			want:     TrendDeclining,
		},
		{
			// All correct: recent 100% equals lifetime 100%.
			name:     "stable",
			outcomes: []bool{true, true, true, true, true},
			want:     TrendStable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTracker(t)
			for _, correct := range tt.outcomes {
				mustRecord(t, tr, singleSkillSession("inference", correct))
			}
			if got := tr.Skills()["inference"].Trend; got != tt.want {
				t.Errorf("trend = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSkillLastPracticed(t *testing.T) {
	tr := newTestTracker(t)
	at := time.Date(2026, 3, 2, 15, 30, 0, 0, time.UTC)
	setClock(tr, at)

	mustRecord(t, tr, singleSkillSession("vocabulary", true))

	if got := tr.Skills()["vocabulary"].LastPracticed; !got.Equal(at) {
		t.Errorf("lastPracticed = %v, want %v", got, at)
	}
}

func TestEmptySkillTagSkipped(t *testing.T) {
	tr := newTestTracker(t)

	s := singleSkillSession("", true)
	mustRecord(t, tr, s)

	if got := len(tr.Skills()); got != 0 {
		t.Errorf("skills length = %d, want 0 for empty tag", got)
	}
}

func TestMultiSkillSessionSingleWrite(t *testing.T) {
	tr := newTestTracker(t)

	// Two skills in one session both land in the one persisted mapping.
	s := PracticeSession{
		Section:        "math",
		TotalQuestions: 2,
		CorrectAnswers: 1,
		Questions: []Question{
			{ID: 1, Text: "q1", Options: []string{"a", "b"}, Correct: 0, Skill: "algebra"},
			{ID: 2, Text: "q2", Options: []string{"a", "b"}, Correct: 0, Skill: "statistics"},
		},
		Answers: map[int]Answer{
			1: {Selected: 0, IsCorrect: true},
			2: {Selected: 1, IsCorrect: false},
		},
	}
	mustRecord(t, tr, s)

	skills := tr.Skills()
	if len(skills) != 2 {
		t.Fatalf("skills length = %d, want 2", len(skills))
	}
	if skills["algebra"].Accuracy != 100 {
		t.Errorf("algebra accuracy = %v, want 100", skills["algebra"].Accuracy)
	}
	if skills["statistics"].Accuracy != 0 {
		t.Errorf("statistics accuracy = %v, want 0", skills["statistics"].Accuracy)
	}
}
