package progress

import (
	"fmt"

	"github.com/abhisek/actprep/internal/store"
)

// updateSkills folds one session into the per-skill aggregates. Questions
// are processed in sequence order; the full mapping is persisted once after
// the whole session, not per question.
func (t *Tracker) updateSkills(session PracticeSession) error {
	skills := t.Skills()
	now := t.now()

	for _, q := range session.Questions {
		if q.Skill == "" {
			continue
		}

		stat, ok := skills[q.Skill]
		if !ok {
			stat = &SkillStat{}
			skills[q.Skill] = stat
		}

		answer, answered := session.Answers[q.ID]
		correct := answered && answer.IsCorrect

		stat.TotalAttempts++
		if correct {
			stat.CorrectAttempts++
		}

		stat.RecentOutcomes = append(stat.RecentOutcomes, correct)
		if len(stat.RecentOutcomes) > RecentWindowCap {
			stat.RecentOutcomes = stat.RecentOutcomes[len(stat.RecentOutcomes)-RecentWindowCap:]
		}

		stat.LastPracticed = now
		stat.Accuracy = accuracyPct(stat.CorrectAttempts, stat.TotalAttempts)
		stat.Trend = computeTrend(stat)
	}

	if err := t.kv.Set(store.KeySkills, skills); err != nil {
		return fmt.Errorf("persist skills: %w", err)
	}
	return nil
}

// computeTrend compares the mean of the last TrendMinSamples outcomes
// against the lifetime accuracy. Undefined (empty) until the window holds
// TrendMinSamples.
func computeTrend(stat *SkillStat) Trend {
	if len(stat.RecentOutcomes) < TrendMinSamples {
		return ""
	}

	recent := stat.RecentOutcomes[len(stat.RecentOutcomes)-TrendMinSamples:]
	var sum float64
	for _, correct := range recent {
		if correct {
			sum++
		}
	}
	recentAvg := sum / float64(TrendMinSamples)
	overallAvg := stat.Accuracy / 100

	switch {
	case recentAvg > overallAvg:
		return TrendImproving
	case recentAvg < overallAvg:
		return TrendDeclining
	default:
		return TrendStable
	}
}
