package progress

import (
	"sort"
	"time"
)

// Report holds whole-history derived metrics. SkillBreakdown is the current
// skill mapping passed through unchanged.
type Report struct {
	TotalSessions   int                   `json:"totalSessions"`
	TotalQuestions  int                   `json:"totalQuestions"`
	TotalCorrect    int                   `json:"totalCorrect"`
	OverallAccuracy float64               `json:"overallAccuracy"`
	TotalTime       int                   `json:"totalTime"`   // seconds
	AverageTime     float64               `json:"averageTime"` // seconds per question
	RecentAccuracy  float64               `json:"recentAccuracy"`
	CurrentStreak   int                   `json:"currentStreak"`
	MaxStreak       int                   `json:"maxStreak"`
	SkillBreakdown  map[string]*SkillStat `json:"skillBreakdown"`
	LastPractice    time.Time             `json:"lastPractice"`
}

// ComputeAnalytics derives a Report from the full history. It returns nil
// when no sessions have been recorded; that is a valid "no data" state, not
// an error. The computation only reads, never writes, so repeated calls
// with no intervening writes return equal reports.
func (t *Tracker) ComputeAnalytics() *Report {
	history := t.History()
	if len(history) == 0 {
		return nil
	}

	r := &Report{
		TotalSessions:  len(history),
		SkillBreakdown: t.Skills(),
		LastPractice:   history[len(history)-1].Timestamp,
	}

	for _, s := range history {
		r.TotalQuestions += s.TotalQuestions
		r.TotalCorrect += s.CorrectAnswers
		r.TotalTime += s.TimeTaken
	}
	r.OverallAccuracy = accuracyPct(r.TotalCorrect, r.TotalQuestions)
	if r.TotalQuestions > 0 {
		r.AverageTime = float64(r.TotalTime) / float64(r.TotalQuestions)
	}

	recent := history
	if len(recent) > RecentSessionWindow {
		recent = recent[len(recent)-RecentSessionWindow:]
	}
	var sum float64
	for _, s := range recent {
		sum += accuracyPct(s.CorrectAnswers, s.TotalQuestions)
	}
	r.RecentAccuracy = sum / float64(len(recent))

	r.CurrentStreak, r.MaxStreak = computeStreaks(history)

	return r
}

// computeStreaks derives the daily practice streaks. Sessions are grouped
// by local calendar day; a run is consecutive when each day is exactly one
// day after the previous. The current streak counts days backward from the
// most recent session's day until the first gap; the max streak is the
// longest run anywhere in history.
func computeStreaks(history []PracticeSession) (current, max int) {
	if len(history) == 0 {
		return 0, 0
	}

	seen := make(map[int64]bool)
	var days []int64
	for _, s := range history {
		d := epochDay(s.Timestamp)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	run := 1
	for i := 1; i < len(days); i++ {
		if days[i] == days[i-1]+1 {
			run++
		} else {
			run = 1
		}
		if run > max {
			max = run
		}
	}
	if max == 0 {
		max = run
	}
	current = run

	return current, max
}

// epochDay maps a timestamp to a calendar-day ordinal in local time.
func epochDay(t time.Time) int64 {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}
