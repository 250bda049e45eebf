package questiongen

import (
	"time"

	"github.com/abhisek/actprep/internal/progress"
)

// Sections of the ACT.
const (
	SectionEnglish = "english"
	SectionMath    = "math"
	SectionReading = "reading"
	SectionScience = "science"
)

// OptionsPerQuestion is the fixed choice count for generated questions.
const OptionsPerQuestion = 4

// GenerateRequest describes one practice set to generate.
type GenerateRequest struct {
	Section      string   `json:"section"`
	Skills       []string `json:"skills"`
	Difficulty   string   `json:"difficulty"` // easy/medium/hard
	NumQuestions int      `json:"numQuestions"`
}

// DefaultSkills returns the full skill list for a section, used when the
// caller has no weak skills to target.
func DefaultSkills(section string) []string {
	switch section {
	case SectionMath:
		return []string{"algebra", "geometry", "trigonometry", "statistics"}
	case SectionReading:
		return []string{"main-idea", "inference", "vocabulary", "detail-comprehension", "tone-purpose"}
	case SectionScience:
		return []string{"data-interpretation", "scientific-method", "hypothesis-testing", "experimental-design", "graph-analysis"}
	default:
		return []string{"punctuation", "verb-tense", "sentence-flow", "wordiness", "grammar", "style"}
	}
}

// QuestionSet is a generated practice set. Passage is empty for math; the
// other sections carry a passage the questions refer to.
type QuestionSet struct {
	Passage     string              `json:"passage,omitempty"`
	Topic       string              `json:"topic"`
	GeneratedAt time.Time           `json:"generatedAt"`
	Questions   []progress.Question `json:"questions"`
}
