package progress

import (
	"fmt"

	"github.com/abhisek/actprep/internal/store"
)

// MistakeKey builds the composite identity for a recurring error: skill tag
// plus the question-text prefix.
func MistakeKey(skill, questionText string) string {
	return skill + "_" + patternPrefix(questionText)
}

// trackMistakes records every incorrectly answered question in the session.
// An unanswered question counts as incorrect; questions without a skill tag
// are skipped, as in updateSkills. The full mapping is persisted
// once after the whole session.
func (t *Tracker) trackMistakes(session PracticeSession) error {
	mistakes := t.Mistakes()
	now := t.now()

	for _, q := range session.Questions {
		if q.Skill == "" {
			continue
		}
		answer, answered := session.Answers[q.ID]
		if answered && answer.IsCorrect {
			continue
		}

		key := MistakeKey(q.Skill, q.Text)
		rec, ok := mistakes[key]
		if !ok {
			rec = &MistakeRecord{
				Skill:           q.Skill,
				QuestionPattern: q.Text,
			}
			mistakes[key] = rec
		}

		rec.Occurrences++
		rec.LastSeen = now

		selected := answer.Selected
		if !answered {
			selected = -1
		}

		if len(rec.Examples) < MaxMistakeExamples {
			rec.Examples = append(rec.Examples, MistakeExample{
				Question:      q.Text,
				UserAnswer:    selected,
				CorrectAnswer: q.Correct,
				Explanation:   q.Explanation,
			})
		}
	}

	if err := t.kv.Set(store.KeyMistakes, mistakes); err != nil {
		return fmt.Errorf("persist mistakes: %w", err)
	}
	return nil
}
