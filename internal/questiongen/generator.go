package questiongen

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/abhisek/actprep/internal/llm"
	"github.com/abhisek/actprep/internal/progress"
)

// Config controls the Generator.
type Config struct {
	// MaxTokens is the token budget for one set.
	MaxTokens int

	// Temperature controls output randomness.
	Temperature float64

	// DefaultNumQuestions is used when a request leaves the count unset.
	DefaultNumQuestions int

	// MaxNumQuestions caps a single set.
	MaxNumQuestions int
}

// DefaultConfig returns recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:           2500,
		Temperature:         0.7,
		DefaultNumQuestions: 5,
		MaxNumQuestions:     20,
	}
}

// Generator produces practice sets through an LLM provider.
type Generator struct {
	provider  llm.Provider
	config    Config
	pickTopic func() string
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{
		provider:  provider,
		config:    cfg,
		pickTopic: func() string { return topics[rand.IntN(len(topics))] },
	}
}

// questionSetOutput is the raw LLM response before validation.
type questionSetOutput struct {
	Passage   string `json:"passage"`
	Questions []struct {
		ID          int      `json:"id"`
		Text        string   `json:"text"`
		Options     []string `json:"options"`
		Correct     int      `json:"correct"`
		Explanation string   `json:"explanation"`
		Skill       string   `json:"skill"`
	} `json:"questions"`
}

// Generate produces one practice set for the request.
func (g *Generator) Generate(ctx context.Context, req GenerateRequest) (*QuestionSet, error) {
	if err := normalizeRequest(&req, g.config); err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "question-gen")
	topic := g.pickTopic()

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      systemPrompt,
		Prompt:      buildPrompt(req, topic),
		Schema:      QuestionSetSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionSetOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("parse LLM response: %w", err)
	}

	set := &QuestionSet{
		Passage:     raw.Passage,
		Topic:       topic,
		GeneratedAt: time.Now(),
		Questions:   make([]progress.Question, 0, len(raw.Questions)),
	}
	for _, q := range raw.Questions {
		set.Questions = append(set.Questions, progress.Question{
			ID:          q.ID,
			Text:        q.Text,
			Options:     q.Options,
			Correct:     q.Correct,
			Explanation: q.Explanation,
			Skill:       q.Skill,
		})
	}

	if err := validateSet(set, req); err != nil {
		return nil, err
	}
	return set, nil
}

// normalizeRequest fills defaults and rejects unusable requests.
func normalizeRequest(req *GenerateRequest, cfg Config) error {
	if req.Section == "" {
		req.Section = SectionEnglish
	}
	switch req.Section {
	case SectionEnglish, SectionMath, SectionReading, SectionScience:
	default:
		return fmt.Errorf("unknown section %q", req.Section)
	}

	if len(req.Skills) == 0 {
		return fmt.Errorf("at least one skill is required")
	}
	for _, s := range req.Skills {
		if s == "" {
			return fmt.Errorf("empty skill tag")
		}
	}

	if req.Difficulty == "" {
		req.Difficulty = "medium"
	}
	if req.NumQuestions <= 0 {
		req.NumQuestions = cfg.DefaultNumQuestions
	}
	if req.NumQuestions > cfg.MaxNumQuestions {
		req.NumQuestions = cfg.MaxNumQuestions
	}
	return nil
}

// validateSet enforces the structural invariants the schema cannot express:
// ids must be exactly 1..N in order, correct indices in option range, and
// every question must carry a skill tag.
func validateSet(set *QuestionSet, req GenerateRequest) error {
	if len(set.Questions) == 0 {
		return fmt.Errorf("generated set has no questions")
	}

	for i, q := range set.Questions {
		if q.ID != i+1 {
			return fmt.Errorf("question %d has id %d, want %d", i, q.ID, i+1)
		}
		if q.Text == "" {
			return fmt.Errorf("question %d has empty text", q.ID)
		}
		if len(q.Options) != OptionsPerQuestion {
			return fmt.Errorf("question %d has %d options, want %d", q.ID, len(q.Options), OptionsPerQuestion)
		}
		if q.Correct < 0 || q.Correct >= len(q.Options) {
			return fmt.Errorf("question %d correct index %d out of range", q.ID, q.Correct)
		}
		if q.Skill == "" {
			return fmt.Errorf("question %d has empty skill tag", q.ID)
		}
	}

	if req.Section != SectionMath && set.Passage == "" {
		return fmt.Errorf("%s set is missing its passage", req.Section)
	}
	return nil
}
