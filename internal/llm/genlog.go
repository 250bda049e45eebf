package llm

import (
	"context"
	"time"

	"github.com/abhisek/actprep/internal/store"
)

// GenLogCap bounds the persisted generation log; oldest entries evict first.
const GenLogCap = 50

// LogEntry records one generation call.
type LogEntry struct {
	Timestamp    time.Time `json:"timestamp"`
	Provider     string    `json:"provider"`
	Model        string    `json:"model"`
	Purpose      string    `json:"purpose"`
	InputTokens  int       `json:"inputTokens"`
	OutputTokens int       `json:"outputTokens"`
	LatencyMs    int64     `json:"latencyMs"`
	Success      bool      `json:"success"`
	Error        string    `json:"error,omitempty"`
}

// GenLog persists a bounded FIFO log of generation calls in the kv store.
type GenLog struct {
	kv *store.Store
}

// NewGenLog creates a GenLog backed by the given store.
func NewGenLog(kv *store.Store) *GenLog {
	return &GenLog{kv: kv}
}

// Entries returns the logged calls, oldest first.
func (g *GenLog) Entries() []LogEntry {
	var entries []LogEntry
	g.kv.Get(store.KeyGenLog, &entries)
	return entries
}

// Record appends an entry, evicting the oldest past GenLogCap. Logging is
// best effort: a write failure never fails the generation call.
func (g *GenLog) Record(e LogEntry) {
	entries := g.Entries()
	entries = append(entries, e)
	if len(entries) > GenLogCap {
		entries = entries[len(entries)-GenLogCap:]
	}
	g.kv.Set(store.KeyGenLog, entries)
}

// loggedProvider records every call to a GenLog.
type loggedProvider struct {
	inner    Provider
	provider string
	log      *GenLog
}

// WithRequestLog wraps a Provider so every call lands in the generation log.
func WithRequestLog(p Provider, providerName string, log *GenLog) Provider {
	return &loggedProvider{inner: p, provider: providerName, log: log}
}

func (l *loggedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	entry := LogEntry{
		Timestamp: start,
		Provider:  l.provider,
		Model:     l.inner.ModelID(),
		Purpose:   PurposeFrom(ctx),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if err != nil {
		entry.Error = err.Error()
	}
	if resp != nil {
		entry.Model = resp.Model
		entry.InputTokens = resp.Usage.InputTokens
		entry.OutputTokens = resp.Usage.OutputTokens
	}
	l.log.Record(entry)

	return resp, err
}

func (l *loggedProvider) ModelID() string {
	return l.inner.ModelID()
}
