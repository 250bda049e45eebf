package progress

import (
	"fmt"
	"math"
	"sort"
)

// Accuracy thresholds for recommendation banding. Skills in [60, 80] fall
// in neither list; consuming surfaces treat that as the moderate band.
const (
	weakThreshold   = 60
	strongThreshold = 80
	easyThreshold   = 40

	// minPatternOccurrences is how often a mistake must recur before it
	// is surfaced as a pattern.
	minPatternOccurrences = 2

	// suggestedQuestionCount is the fixed size of a suggested practice set.
	suggestedQuestionCount = 10
)

// WeakSkill is a skill below the weak threshold.
type WeakSkill struct {
	Skill    string  `json:"skill"`
	Accuracy float64 `json:"accuracy"`
	Trend    Trend   `json:"trend,omitempty"`
	Message  string  `json:"message"`
}

// StrongSkill is a skill above the strong threshold.
type StrongSkill struct {
	Skill    string  `json:"skill"`
	Accuracy float64 `json:"accuracy"`
}

// MistakePattern is a recurring error surfaced for review.
type MistakePattern struct {
	Skill     string `json:"skill"`
	Pattern   string `json:"pattern"`
	Frequency int    `json:"frequency"`
	Message   string `json:"message"`
}

// PracticeSuggestion is one suggested practice block for a weak skill.
type PracticeSuggestion struct {
	Skill      string `json:"skill"`
	Difficulty string `json:"difficulty"`
	Questions  int    `json:"questions"`
}

// Recommendations is prioritized guidance derived from the current skill
// and mistake aggregates.
type Recommendations struct {
	WeakSkills        []WeakSkill          `json:"weakSkills"`
	StrongSkills      []StrongSkill        `json:"strongSkills"`
	MistakePatterns   []MistakePattern     `json:"mistakePatterns"`
	SuggestedPractice []PracticeSuggestion `json:"suggestedPractice"`
}

// Recommendations derives guidance purely from the current skill and
// mistake mappings; no history read, no writes. Weak skills are sorted by
// ascending accuracy and strong skills by descending accuracy, with the
// skill tag as tiebreaker, so reports are deterministic.
func (t *Tracker) Recommendations() *Recommendations {
	skills := t.Skills()
	mistakes := t.Mistakes()

	rec := &Recommendations{
		WeakSkills:        []WeakSkill{},
		StrongSkills:      []StrongSkill{},
		MistakePatterns:   []MistakePattern{},
		SuggestedPractice: []PracticeSuggestion{},
	}

	for skill, stat := range skills {
		switch {
		case stat.Accuracy < weakThreshold:
			rec.WeakSkills = append(rec.WeakSkills, WeakSkill{
				Skill:    skill,
				Accuracy: stat.Accuracy,
				Trend:    stat.Trend,
				Message: fmt.Sprintf("Focus on %s - Currently at %d%% accuracy",
					skill, int(math.Round(stat.Accuracy))),
			})
		case stat.Accuracy > strongThreshold:
			rec.StrongSkills = append(rec.StrongSkills, StrongSkill{
				Skill:    skill,
				Accuracy: stat.Accuracy,
			})
		}
	}

	sort.Slice(rec.WeakSkills, func(i, j int) bool {
		a, b := rec.WeakSkills[i], rec.WeakSkills[j]
		if a.Accuracy != b.Accuracy {
			return a.Accuracy < b.Accuracy
		}
		return a.Skill < b.Skill
	})
	sort.Slice(rec.StrongSkills, func(i, j int) bool {
		a, b := rec.StrongSkills[i], rec.StrongSkills[j]
		if a.Accuracy != b.Accuracy {
			return a.Accuracy > b.Accuracy
		}
		return a.Skill < b.Skill
	})

	var patternKeys []string
	for key, m := range mistakes {
		if m.Occurrences >= minPatternOccurrences {
			patternKeys = append(patternKeys, key)
		}
	}
	sort.Strings(patternKeys)
	for _, key := range patternKeys {
		m := mistakes[key]
		rec.MistakePatterns = append(rec.MistakePatterns, MistakePattern{
			Skill:     m.Skill,
			Pattern:   m.QuestionPattern,
			Frequency: m.Occurrences,
			Message: fmt.Sprintf("You've made this %s mistake %d times",
				m.Skill, m.Occurrences),
		})
	}

	for _, weak := range rec.WeakSkills {
		difficulty := "medium"
		if weak.Accuracy < easyThreshold {
			difficulty = "easy"
		}
		rec.SuggestedPractice = append(rec.SuggestedPractice, PracticeSuggestion{
			Skill:      weak.Skill,
			Difficulty: difficulty,
			Questions:  suggestedQuestionCount,
		})
	}

	return rec
}
