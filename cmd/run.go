package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/actprep/internal/app"
	"github.com/abhisek/actprep/internal/llm"
	"github.com/abhisek/actprep/internal/progress"
	"github.com/abhisek/actprep/internal/questiongen"
	"github.com/abhisek/actprep/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	tracker := progress.NewTracker(st)
	gen := buildGenerator(cmd.Context(), st)

	return app.Run(tracker, gen)
}

// openStore resolves the DB path and opens the kv store.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// buildGenerator wires an LLM-backed question generator, or nil when no
// provider is configured. The app falls back to built-in sample sets.
func buildGenerator(ctx context.Context, st *store.Store) *questiongen.Generator {
	if ctx == nil {
		ctx = context.Background()
	}
	provider, err := llm.NewProviderFromEnv(ctx, llm.NewGenLog(st))
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Question generation will use the built-in sample sets.")
		return nil
	}
	return questiongen.New(provider, questiongen.DefaultConfig())
}
