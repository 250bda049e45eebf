package quiz

import (
	"github.com/abhisek/actprep/internal/progress"
	"github.com/abhisek/actprep/internal/questiongen"
)

// setReadyMsg carries a generated practice set. Sampled is true when the
// set came from the built-in fallback instead of an LLM.
type setReadyMsg struct {
	Set     *questiongen.QuestionSet
	Sampled bool
	Err     error
}

// recordedMsg carries the session after it was written to the store.
type recordedMsg struct {
	Session progress.PracticeSession
	Err     error
}
