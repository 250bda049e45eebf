package quiz

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/actprep/internal/progress"
	"github.com/abhisek/actprep/internal/questiongen"
	"github.com/abhisek/actprep/internal/router"
	"github.com/abhisek/actprep/internal/screen"
	"github.com/abhisek/actprep/internal/screens/summary"
	"github.com/abhisek/actprep/internal/ui/components"
	"github.com/abhisek/actprep/internal/ui/layout"
)

// QuizScreen runs one practice set for a section: generate, answer each
// question with feedback, then record the session and show the summary.
type QuizScreen struct {
	tracker *progress.Tracker
	gen     *questiongen.Generator
	section string

	skills     []string
	difficulty string

	set     *questiongen.QuestionSet
	sampled bool

	idx             int
	mc              components.MultiChoice
	answers         map[int]progress.Answer
	showingFeedback bool
	showingQuit     bool
	startTime       time.Time
	errMsg          string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the section. gen may be nil; the built-in
// sample set is used instead.
func New(tracker *progress.Tracker, gen *questiongen.Generator, section string) *QuizScreen {
	skills, difficulty := planPractice(tracker, section)
	return &QuizScreen{
		tracker:    tracker,
		gen:        gen,
		section:    section,
		skills:     skills,
		difficulty: difficulty,
		answers:    make(map[int]progress.Answer),
	}
}

// planPractice targets recommended weak skills for the section when there
// are any, at the suggested difficulty; otherwise the full section skill
// list at medium.
func planPractice(tracker *progress.Tracker, section string) ([]string, string) {
	sectionSkills := questiongen.DefaultSkills(section)
	inSection := make(map[string]bool, len(sectionSkills))
	for _, s := range sectionSkills {
		inSection[s] = true
	}

	recs := tracker.Recommendations()
	difficulty := "medium"
	var weak []string
	for _, ws := range recs.SuggestedPractice {
		if !inSection[ws.Skill] {
			continue
		}
		weak = append(weak, ws.Skill)
		if len(weak) == 1 {
			difficulty = ws.Difficulty
		}
	}

	if len(weak) == 0 {
		return sectionSkills, "medium"
	}
	return weak, difficulty
}

func (q *QuizScreen) Init() tea.Cmd {
	q.startTime = time.Now()
	return q.generateSet()
}

func (q *QuizScreen) Title() string {
	return "Practice: " + q.section
}

func (q *QuizScreen) KeyHints() []layout.KeyHint {
	switch {
	case q.errMsg != "":
		return []layout.KeyHint{{Key: "any key", Description: "Back"}}
	case q.showingQuit:
		return []layout.KeyHint{
			{Key: "Y", Description: "End practice"},
			{Key: "N", Description: "Keep going"},
		}
	case q.showingFeedback:
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	case q.set == nil:
		return nil
	default:
		return []layout.KeyHint{
			{Key: "↑↓/1-4", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Quit"},
		}
	}
}

func (q *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case setReadyMsg:
		return q.handleSetReady(msg)
	case recordedMsg:
		return q.handleRecorded(msg)
	case tea.KeyMsg:
		return q.handleKey(msg)
	}
	return q, nil
}

// generateSet asks the LLM for a fresh set, falling back to the built-in
// sample set when no provider is configured or generation fails.
func (q *QuizScreen) generateSet() tea.Cmd {
	gen := q.gen
	req := questiongen.GenerateRequest{
		Section:    q.section,
		Skills:     q.skills,
		Difficulty: q.difficulty,
	}
	return func() tea.Msg {
		if gen == nil {
			return setReadyMsg{Set: questiongen.SampleSet(req.Section), Sampled: true}
		}

		ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
		defer cancel()

		set, err := gen.Generate(ctx, req)
		if err != nil {
			return setReadyMsg{Set: questiongen.SampleSet(req.Section), Sampled: true}
		}
		return setReadyMsg{Set: set}
	}
}

func (q *QuizScreen) handleSetReady(msg setReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		q.errMsg = msg.Err.Error()
		return q, nil
	}

	q.set = msg.Set
	q.sampled = msg.Sampled
	q.idx = 0
	q.startTime = time.Now()
	q.loadQuestion()
	return q, nil
}

func (q *QuizScreen) loadQuestion() {
	question := q.set.Questions[q.idx]
	q.mc = components.NewMultiChoice(question.Text, question.Options, question.Correct)
}

func (q *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if q.errMsg != "" {
		return q, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if q.set == nil {
		return q, nil
	}

	if q.showingQuit {
		switch key {
		case "y", "Y":
			return q, q.recordSession()
		case "n", "N", "esc":
			q.showingQuit = false
		}
		return q, nil
	}

	if q.showingFeedback {
		q.showingFeedback = false
		if q.idx+1 >= len(q.set.Questions) {
			return q, q.recordSession()
		}
		q.idx++
		q.loadQuestion()
		return q, nil
	}

	if key == "esc" {
		q.showingQuit = true
		return q, nil
	}

	var cmd tea.Cmd
	q.mc, cmd = q.mc.Update(msg)
	if q.mc.Submitted {
		q.answers[q.set.Questions[q.idx].ID] = progress.Answer{
			Selected:  q.mc.ChosenIndex,
			IsCorrect: q.mc.IsCorrect(),
		}
		q.showingFeedback = true
	}
	return q, cmd
}

// recordSession persists whatever was answered so far.
func (q *QuizScreen) recordSession() tea.Cmd {
	correct := 0
	for _, a := range q.answers {
		if a.IsCorrect {
			correct++
		}
	}

	session := progress.PracticeSession{
		Section:        q.section,
		TotalQuestions: len(q.set.Questions),
		CorrectAnswers: correct,
		TimeTaken:      int(time.Since(q.startTime).Seconds()),
		Questions:      q.set.Questions,
		Answers:        q.answers,
		Difficulty:     q.difficulty,
		Topic:          q.set.Topic,
	}

	tracker := q.tracker
	return func() tea.Msg {
		stored, err := tracker.RecordSession(session)
		return recordedMsg{Session: stored, Err: err}
	}
}

func (q *QuizScreen) handleRecorded(msg recordedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		q.errMsg = "Could not save your session: " + msg.Err.Error()
		return q, nil
	}

	report := q.tracker.ComputeAnalytics()
	next := summary.New(msg.Session, report)
	return q, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}
