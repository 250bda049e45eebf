package quiz

import (
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/actprep/internal/progress"
	"github.com/abhisek/actprep/internal/questiongen"
	"github.com/abhisek/actprep/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuizScreen(t *testing.T) (*QuizScreen, *progress.Tracker) {
	t.Helper()

	st, err := store.Open(filepath.Join(t.TempDir(), "quiz.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	tracker := progress.NewTracker(st)
	return New(tracker, nil, "english"), tracker
}

func grammarSet() *questiongen.QuestionSet {
	return &questiongen.QuestionSet{
		Topic:       "a school trip",
		GeneratedAt: time.Now(),
		Questions: []progress.Question{
			{
				ID:      1,
				Text:    "Choose the correct verb form.",
				Options: []string{"is", "are", "were", "be"},
				Correct: 0,
				Skill:   "grammar",
			},
			{
				ID:      2,
				Text:    "Pick the option that fixes the comma splice.",
				Options: []string{"a", "b", "c", "d"},
				Correct: 2,
				Skill:   "grammar",
			},
		},
	}
}

// answerCurrent selects the correct option for the current question and
// submits it, then dismisses the feedback. Returns the command produced by
// the dismiss key, which is non-nil after the last question.
func answerCurrent(t *testing.T, q *QuizScreen) tea.Cmd {
	t.Helper()

	correct := q.set.Questions[q.idx].Correct
	q.Update(keyPress(rune('1' + correct)))
	q.Update(specialKey(tea.KeyEnter))
	if !q.showingFeedback {
		t.Fatal("expected feedback after submitting an answer")
	}

	_, cmd := q.Update(keyPress(' '))
	return cmd
}

func TestQuizScreen_AnswersKeyedByQuestionID(t *testing.T) {
	q, tracker := testQuizScreen(t)
	q.Update(setReadyMsg{Set: grammarSet()})

	if cmd := answerCurrent(t, q); cmd != nil {
		t.Fatal("expected no record command before the last question")
	}
	cmd := answerCurrent(t, q)
	if cmd == nil {
		t.Fatal("expected a record command after the last question")
	}

	raw := cmd()
	msg, ok := raw.(recordedMsg)
	if !ok {
		t.Fatalf("expected recordedMsg, got %T", raw)
	}
	if msg.Err != nil {
		t.Fatalf("record session: %v", msg.Err)
	}

	for _, id := range []int{1, 2} {
		a, ok := msg.Session.Answers[id]
		if !ok {
			t.Fatalf("no answer stored for question id %d", id)
		}
		if !a.IsCorrect {
			t.Errorf("answer for question id %d marked incorrect", id)
		}
	}
	if msg.Session.CorrectAnswers != 2 {
		t.Errorf("CorrectAnswers = %d, want 2", msg.Session.CorrectAnswers)
	}

	stat := tracker.Skills()["grammar"]
	if stat == nil {
		t.Fatal("no skill stat recorded for grammar")
	}
	if stat.Accuracy != 100 {
		t.Errorf("grammar accuracy = %v, want 100", stat.Accuracy)
	}
	if n := len(tracker.Mistakes()); n != 0 {
		t.Errorf("expected no mistake records, got %d", n)
	}
}

func TestQuizScreen_EarlyQuitRecordsAnswered(t *testing.T) {
	q, tracker := testQuizScreen(t)
	q.Update(setReadyMsg{Set: grammarSet()})

	// Answer the first question, then quit from the second.
	answerCurrent(t, q)
	q.Update(specialKey(tea.KeyEscape))
	if !q.showingQuit {
		t.Fatal("expected quit confirmation")
	}
	_, cmd := q.Update(keyPress('y'))
	if cmd == nil {
		t.Fatal("expected a record command after confirming quit")
	}

	msg := cmd().(recordedMsg)
	if msg.Err != nil {
		t.Fatalf("record session: %v", msg.Err)
	}
	if _, ok := msg.Session.Answers[1]; !ok {
		t.Error("expected the answered question to be stored under its id")
	}
	if _, ok := msg.Session.Answers[2]; ok {
		t.Error("unanswered question should have no entry")
	}

	// The skipped question counts as incorrect.
	stat := tracker.Skills()["grammar"]
	if stat == nil {
		t.Fatal("no skill stat recorded for grammar")
	}
	if stat.TotalAttempts != 2 || stat.CorrectAttempts != 1 {
		t.Errorf("attempts = %d/%d, want 1/2", stat.CorrectAttempts, stat.TotalAttempts)
	}
}
