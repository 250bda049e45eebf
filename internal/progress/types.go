package progress

import "time"

// Caps and thresholds for the progress engine.
const (
	// HistoryCap bounds the practice history log; oldest sessions evict first.
	HistoryCap = 100

	// RecentWindowCap bounds the per-skill recent-outcomes window.
	RecentWindowCap = 10

	// TrendMinSamples is the minimum recent-window size before a trend
	// is computed.
	TrendMinSamples = 5

	// MaxMistakeExamples caps stored examples per mistake record; the
	// first examples seen are retained.
	MaxMistakeExamples = 3

	// MistakePatternLen is the question-text prefix length used as a
	// heuristic identity for "the same kind of question".
	MistakePatternLen = 50

	// RecentSessionWindow is the number of trailing sessions used for
	// the recent-accuracy metric.
	RecentSessionWindow = 7
)

// Trend classifies a skill's momentum against its lifetime accuracy.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// Question is a single item within a practice session. Skill tags are an
// open vocabulary, not a fixed enum.
type Question struct {
	ID          int      `json:"id"` // 1-based, unique within its session
	Text        string   `json:"text"`
	Options     []string `json:"options"`
	Correct     int      `json:"correct"` // zero-based index into Options
	Explanation string   `json:"explanation"`
	Skill       string   `json:"skill"`
}

// Answer is the user's response to one Question.
type Answer struct {
	Selected  int  `json:"selected"`
	IsCorrect bool `json:"isCorrect"`
}

// PracticeSession is one completed test attempt. SessionID and Timestamp
// are assigned at record time; Accuracy is always recomputed from
// CorrectAnswers/TotalQuestions, never trusted from the caller.
type PracticeSession struct {
	SessionID      int64          `json:"sessionId"`
	Section        string         `json:"section"` // english/math/reading/science
	TotalQuestions int            `json:"totalQuestions"`
	CorrectAnswers int            `json:"correctAnswers"`
	TimeTaken      int            `json:"timeTaken"` // seconds
	Accuracy       float64        `json:"accuracy"`  // 0-100
	Questions      []Question     `json:"questions"`
	Answers        map[int]Answer `json:"answers"` // question ID -> answer
	Difficulty     string         `json:"difficulty"`
	Topic          string         `json:"topic"`
	Timestamp      time.Time      `json:"timestamp"`
}

// SkillStat is the running aggregate for one skill tag. Created lazily the
// first time a tag is seen; never deleted except by a full data wipe.
type SkillStat struct {
	TotalAttempts   int       `json:"totalAttempts"`
	CorrectAttempts int       `json:"correctAttempts"`
	Accuracy        float64   `json:"accuracy"` // 0-100, recomputed on every update
	RecentOutcomes  []bool    `json:"recentOutcomes"`
	LastPracticed   time.Time `json:"lastPracticed"`
	Trend           Trend     `json:"trend,omitempty"` // unset until the window holds TrendMinSamples
}

// MistakeExample is one stored mis-answer.
type MistakeExample struct {
	Question    string `json:"question"`
	UserAnswer  int    `json:"userAnswer"`
	CorrectAnswer int  `json:"correctAnswer"`
	Explanation string `json:"explanation"`
}

// MistakeRecord tracks a recurring error pattern, keyed by skill tag plus
// question-text prefix.
type MistakeRecord struct {
	Skill           string           `json:"skill"`
	QuestionPattern string           `json:"questionPattern"`
	Occurrences     int              `json:"occurrences"`
	LastSeen        time.Time        `json:"lastSeen"`
	Examples        []MistakeExample `json:"examples"`
}

// UserProfile is the local user's profile.
type UserProfile struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Level      int       `json:"level"`
	Experience int       `json:"experience"`
	StartedAt  time.Time `json:"startedAt"`
}

// accuracyPct computes correct/total as a 0-100 percentage with a zero guard.
func accuracyPct(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

// patternPrefix returns the first MistakePatternLen runes of text.
func patternPrefix(text string) string {
	runes := []rune(text)
	if len(runes) <= MistakePatternLen {
		return text
	}
	return string(runes[:MistakePatternLen])
}
