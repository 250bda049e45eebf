package questiongen

import "github.com/abhisek/actprep/internal/llm"

// QuestionSetSchema is the JSON schema for generated practice sets.
var QuestionSetSchema = &llm.Schema{
	Name:        "act-question-set",
	Description: "An ACT practice set: an optional passage and its questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"passage": map[string]any{
				"type":        "string",
				"description": "The reading passage. Empty string for math sets.",
			},
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type":        "integer",
							"minimum":     1,
							"description": "1-based position within the set",
						},
						"text": map[string]any{
							"type":        "string",
							"description": "The question prompt",
						},
						"options": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": OptionsPerQuestion,
							"maxItems": OptionsPerQuestion,
						},
						"correct": map[string]any{
							"type":        "integer",
							"minimum":     0,
							"maximum":     OptionsPerQuestion - 1,
							"description": "0-based index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct option is correct",
						},
						"skill": map[string]any{
							"type":        "string",
							"description": "The skill tag this question tests",
						},
					},
					"required":             []any{"id", "text", "options", "correct", "explanation", "skill"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"passage", "questions"},
		"additionalProperties": false,
	},
}
