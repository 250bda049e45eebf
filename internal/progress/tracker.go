package progress

import (
	"fmt"
	"time"

	"github.com/abhisek/actprep/internal/store"
)

// Tracker is the progress engine. It loads state from the key-value store
// on demand, mutates in-memory copies, and writes whole blobs back. All
// operations are single atomic read-modify-write cycles; there is no
// concurrent writer in the single-profile model.
type Tracker struct {
	kv  *store.Store
	now func() time.Time
}

// NewTracker creates a Tracker backed by the given store.
func NewTracker(kv *store.Store) *Tracker {
	return &Tracker{kv: kv, now: time.Now}
}

// RecordSession appends a completed session to the bounded history log and
// updates the skill and mistake aggregates against the same session state.
// The session's accuracy, timestamp, and identifier are assigned here.
// Returns the session as stored.
func (t *Tracker) RecordSession(session PracticeSession) (PracticeSession, error) {
	now := t.now()
	session.Timestamp = now
	session.SessionID = now.UnixMilli()
	session.Accuracy = accuracyPct(session.CorrectAnswers, session.TotalQuestions)

	history := t.History()
	history = append(history, session)
	if len(history) > HistoryCap {
		history = history[len(history)-HistoryCap:]
	}
	if err := t.kv.Set(store.KeyHistory, history); err != nil {
		return PracticeSession{}, fmt.Errorf("persist history: %w", err)
	}

	if err := t.updateSkills(session); err != nil {
		return PracticeSession{}, err
	}
	if err := t.trackMistakes(session); err != nil {
		return PracticeSession{}, err
	}

	return session, nil
}

// History returns the practice history log, oldest first. An absent or
// corrupted history reads as empty.
func (t *Tracker) History() []PracticeSession {
	var history []PracticeSession
	t.kv.Get(store.KeyHistory, &history)
	return history
}

// Skills returns the per-skill aggregate mapping.
func (t *Tracker) Skills() map[string]*SkillStat {
	skills := make(map[string]*SkillStat)
	t.kv.Get(store.KeySkills, &skills)
	return skills
}

// Mistakes returns the recurring-error mapping.
func (t *Tracker) Mistakes() map[string]*MistakeRecord {
	mistakes := make(map[string]*MistakeRecord)
	t.kv.Get(store.KeyMistakes, &mistakes)
	return mistakes
}

// User returns the stored profile, or nil when none exists.
func (t *Tracker) User() *UserProfile {
	var u UserProfile
	ok, _ := t.kv.Get(store.KeyUser, &u)
	if !ok {
		return nil
	}
	return &u
}

// SaveUser stores the profile, stamping StartedAt on first save.
func (t *Tracker) SaveUser(u UserProfile) error {
	if u.StartedAt.IsZero() {
		u.StartedAt = t.now()
	}
	if err := t.kv.Set(store.KeyUser, u); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	return nil
}

// ClearAll removes every persisted key. Each removal is independent; order
// does not matter since all keys end up absent.
func (t *Tracker) ClearAll() error {
	keys := []string{
		store.KeyUser,
		store.KeyHistory,
		store.KeySkills,
		store.KeyMistakes,
		store.KeyGenLog,
	}
	for _, k := range keys {
		if err := t.kv.Remove(k); err != nil {
			return fmt.Errorf("clear %q: %w", k, err)
		}
	}
	return nil
}
