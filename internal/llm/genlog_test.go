package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/abhisek/actprep/internal/store"
)

func newTestGenLog(t *testing.T) *GenLog {
	t.Helper()
	kv, err := store.Open(filepath.Join(t.TempDir(), "genlog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return NewGenLog(kv)
}

func TestGenLogCap(t *testing.T) {
	log := newTestGenLog(t)

	for i := 0; i < 60; i++ {
		log.Record(LogEntry{
			Timestamp: time.Now(),
			Provider:  "mock",
			Purpose:   fmt.Sprintf("call-%d", i),
			Success:   true,
		})
	}

	entries := log.Entries()
	if len(entries) != GenLogCap {
		t.Fatalf("entries = %d, want %d", len(entries), GenLogCap)
	}
	if entries[0].Purpose != "call-10" {
		t.Errorf("oldest entry = %q, want call-10", entries[0].Purpose)
	}
	if entries[len(entries)-1].Purpose != "call-59" {
		t.Errorf("newest entry = %q, want call-59", entries[len(entries)-1].Purpose)
	}
}

func TestRequestLogDecoratorRecordsCalls(t *testing.T) {
	log := newTestGenLog(t)
	mock := NewMockProvider(
		MockResponse{
			Content: json.RawMessage(`{}`),
			Usage:   Usage{InputTokens: 10, OutputTokens: 20, TotalTokens: 30},
		},
		MockResponse{Err: &ErrProviderUnavailable{}},
	)
	p := WithRequestLog(mock, "mock", log)

	ctx := WithPurpose(context.Background(), "question-gen")
	if _, err := p.Generate(ctx, Request{Prompt: "a"}); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := p.Generate(ctx, Request{Prompt: "b"}); err == nil {
		t.Fatal("expected failure")
	}

	entries := log.Entries()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}

	first := entries[0]
	if !first.Success || first.Purpose != "question-gen" || first.Provider != "mock" {
		t.Errorf("first entry = %+v", first)
	}
	if first.InputTokens != 10 || first.OutputTokens != 20 {
		t.Errorf("tokens = %d/%d, want 10/20", first.InputTokens, first.OutputTokens)
	}

	second := entries[1]
	if second.Success {
		t.Error("failed call logged as success")
	}
	if second.Error == "" {
		t.Error("failed call missing error message")
	}
}
