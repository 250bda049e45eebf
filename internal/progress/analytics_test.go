package progress

import (
	"math"
	"reflect"
	"testing"
	"time"
)

func TestAnalyticsTotals(t *testing.T) {
	tr := newTestTracker(t)
	advance := setClock(tr, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	sessions := []struct {
		total, correct, seconds int
	}{
		{10, 8, 300},
		{10, 6, 400},
		{5, 5, 100},
	}
	for _, s := range sessions {
		mustRecord(t, tr, PracticeSession{
			Section:        "math",
			TotalQuestions: s.total,
			CorrectAnswers: s.correct,
			TimeTaken:      s.seconds,
		})
		advance(time.Hour)
	}

	r := tr.ComputeAnalytics()
	if r == nil {
		t.Fatal("expected report")
	}
	if r.TotalSessions != 3 {
		t.Errorf("totalSessions = %d, want 3", r.TotalSessions)
	}
	if r.TotalQuestions != 25 || r.TotalCorrect != 19 {
		t.Errorf("totals = %d/%d, want 25/19", r.TotalQuestions, r.TotalCorrect)
	}
	if want := 19.0 / 25.0 * 100; r.OverallAccuracy != want {
		t.Errorf("overallAccuracy = %v, want %v", r.OverallAccuracy, want)
	}
	if r.TotalTime != 800 {
		t.Errorf("totalTime = %d, want 800", r.TotalTime)
	}
	if want := 800.0 / 25.0; r.AverageTime != want {
		t.Errorf("averageTime = %v, want %v", r.AverageTime, want)
	}
}

func TestRecentAccuracyLastSevenSessions(t *testing.T) {
	tr := newTestTracker(t)
	advance := setClock(tr, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	// Three old sessions at 0%, then seven at 100%. Only the last seven count.
	for i := 0; i < 3; i++ {
		mustRecord(t, tr, PracticeSession{TotalQuestions: 10, CorrectAnswers: 0})
		advance(time.Minute)
	}
	for i := 0; i < 7; i++ {
		mustRecord(t, tr, PracticeSession{TotalQuestions: 10, CorrectAnswers: 10})
		advance(time.Minute)
	}

	r := tr.ComputeAnalytics()
	if r.RecentAccuracy != 100 {
		t.Errorf("recentAccuracy = %v, want 100", r.RecentAccuracy)
	}
}

func TestRecentAccuracyShortHistory(t *testing.T) {
	tr := newTestTracker(t)

	mustRecord(t, tr, PracticeSession{TotalQuestions: 10, CorrectAnswers: 5})
	mustRecord(t, tr, PracticeSession{TotalQuestions: 10, CorrectAnswers: 10})

	r := tr.ComputeAnalytics()
	if want := 75.0; math.Abs(r.RecentAccuracy-want) > 1e-9 {
		t.Errorf("recentAccuracy = %v, want %v", r.RecentAccuracy, want)
	}
}

func TestStreaks(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 3, d, 12, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name        string
		days        []int
		wantCurrent int
		wantMax     int
	}{
		{"single day", []int{5}, 1, 1},
		{"two consecutive days", []int{5, 6}, 2, 2},
		{"same day twice", []int{5, 5}, 1, 1},
		{"gap breaks current", []int{1, 2, 3, 7}, 1, 3},
		{"current run is latest", []int{1, 4, 5, 6}, 3, 3},
		{"max in the past", []int{1, 2, 3, 4, 9, 10}, 2, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTracker(t)
			for _, d := range tt.days {
				setClock(tr, day(d))
				mustRecord(t, tr, PracticeSession{TotalQuestions: 1, CorrectAnswers: 1})
			}

			r := tr.ComputeAnalytics()
			if r.CurrentStreak != tt.wantCurrent {
				t.Errorf("currentStreak = %d, want %d", r.CurrentStreak, tt.wantCurrent)
			}
			if r.MaxStreak != tt.wantMax {
				t.Errorf("maxStreak = %d, want %d", r.MaxStreak, tt.wantMax)
			}
		})
	}
}

func TestAnalyticsIdempotent(t *testing.T) {
	tr := newTestTracker(t)
	advance := setClock(tr, time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))

	for i := 0; i < 5; i++ {
		mustRecord(t, tr, singleSkillSession("grammar", i%2 == 0))
		advance(time.Hour)
	}

	first := tr.ComputeAnalytics()
	second := tr.ComputeAnalytics()
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated analytics differ:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestLastPracticeIsMostRecentSession(t *testing.T) {
	tr := newTestTracker(t)
	last := time.Date(2026, 3, 4, 18, 0, 0, 0, time.UTC)

	setClock(tr, last.Add(-48*time.Hour))
	mustRecord(t, tr, PracticeSession{TotalQuestions: 1, CorrectAnswers: 1})
	setClock(tr, last)
	mustRecord(t, tr, PracticeSession{TotalQuestions: 1, CorrectAnswers: 0})

	r := tr.ComputeAnalytics()
	if !r.LastPractice.Equal(last) {
		t.Errorf("lastPractice = %v, want %v", r.LastPractice, last)
	}
}

func TestSkillBreakdownPassThrough(t *testing.T) {
	tr := newTestTracker(t)

	mustRecord(t, tr, singleSkillSession("tone-purpose", true))

	r := tr.ComputeAnalytics()
	stat, ok := r.SkillBreakdown["tone-purpose"]
	if !ok {
		t.Fatal("expected skill in breakdown")
	}
	if stat.Accuracy != 100 {
		t.Errorf("breakdown accuracy = %v, want 100", stat.Accuracy)
	}
}
