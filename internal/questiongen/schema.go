package questiongen

import "github.com/abhisek/quizforge/internal/llm"

// MCQDraftSchema is the structured-output schema for MCQ and MCQ_REASONING
// drafts.
var MCQDraftSchema = &llm.Schema{
	Name:        "mcq-question",
	Description: "A four-option multiple choice assessment question",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question text shown to the learner",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "Exactly 4 options, each prefixed with its label: \"A) ...\", \"B) ...\", \"C) ...\", \"D) ...\"",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"enum":        []any{"A", "B", "C", "D"},
				"description": "The label of the single correct option",
			},
			"topic": map[string]any{
				"type":        "string",
				"description": "The concept this question tests",
			},
		},
		"required":             []any{"question", "options", "correct_answer", "topic"},
		"additionalProperties": false,
	},
}

// AssertionReasonDraftSchema is the structured-output schema for
// ASSERTION_REASON drafts. Assertion and reason arrive as separate fields
// and are joined into the prompt text by the drafter.
var AssertionReasonDraftSchema = &llm.Schema{
	Name:        "assertion-reason-question",
	Description: "An assertion-reasoning question with the four standard A-R options",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"assertion": map[string]any{
				"type":        "string",
				"description": "Assertion (A): a statement about the concept",
			},
			"reason": map[string]any{
				"type":        "string",
				"description": "Reason (R): a reasoning or explanation statement",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"description": "The 4 standard assertion-reasoning options, labeled A-D",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"enum":        []any{"A", "B", "C", "D"},
				"description": "The label of the correct option",
			},
			"topic": map[string]any{
				"type":        "string",
				"description": "The concept this question tests",
			},
		},
		"required":             []any{"assertion", "reason", "options", "correct_answer", "topic"},
		"additionalProperties": false,
	},
}

// draftSchemaFor returns the structured-output schema for a segment.
func draftSchemaFor(segment string) *llm.Schema {
	if segment == "ASSERTION_REASON" {
		return AssertionReasonDraftSchema
	}
	return MCQDraftSchema
}
