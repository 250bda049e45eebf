package store

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestGetAbsent(t *testing.T) {
	s := openTestStore(t)

	var v map[string]int
	ok, err := s.Get("missing", &v)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected absent key")
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	s := openTestStore(t)

	type profile struct {
		Name  string `json:"name"`
		Level int    `json:"level"`
	}

	if err := s.Set(KeyUser, profile{Name: "Avery", Level: 3}); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got profile
	ok, err := s.Get(KeyUser, &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected present key")
	}
	if got.Name != "Avery" || got.Level != 3 {
		t.Errorf("got %+v, want {Avery 3}", got)
	}
}

func TestSetOverwrites(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("k", []int{1, 2}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Set("k", []int{3}); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got []int
	ok, _ := s.Get("k", &got)
	if !ok {
		t.Fatal("expected present key")
	}
	if len(got) != 1 || got[0] != 3 {
		t.Errorf("got %v, want [3]", got)
	}
}

func TestRemove(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("k", "v"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := s.Remove("k"); err != nil {
		t.Fatalf("remove: %v", err)
	}

	var got string
	ok, _ := s.Get("k", &got)
	if ok {
		t.Fatal("expected absent key after remove")
	}

	// Removing again is a no-op.
	if err := s.Remove("k"); err != nil {
		t.Fatalf("remove absent: %v", err)
	}
}

func TestCorruptedValueReadsAsAbsent(t *testing.T) {
	s := openTestStore(t)

	_, err := s.DB().Exec(
		"INSERT INTO kv (key, value) VALUES (?, ?)", "broken", "{not json",
	)
	if err != nil {
		t.Fatalf("seed corrupt row: %v", err)
	}

	var got map[string]any
	ok, err := s.Get("broken", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("corrupted value must read as absent")
	}
}

func TestTypeMismatchReadsAsAbsent(t *testing.T) {
	s := openTestStore(t)

	if err := s.Set("k", "a string"); err != nil {
		t.Fatalf("set: %v", err)
	}

	var got []int
	ok, err := s.Get("k", &got)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("shape-mismatched value must read as absent")
	}
}
