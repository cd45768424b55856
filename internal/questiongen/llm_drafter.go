package questiongen

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/question"
)

// LLMDrafter implements Drafter using the LLM provider.
type LLMDrafter struct {
	provider llm.Provider
	config   Config
}

// NewLLMDrafter creates a Drafter backed by the given provider.
func NewLLMDrafter(provider llm.Provider, cfg Config) *LLMDrafter {
	return &LLMDrafter{provider: provider, config: cfg}
}

// mcqDraft is the raw LLM response for MCQ and MCQ_REASONING drafts.
type mcqDraft struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Topic         string   `json:"topic"`
}

// assertionReasonDraft is the raw LLM response for ASSERTION_REASON drafts.
type assertionReasonDraft struct {
	Assertion     string   `json:"assertion"`
	Reason        string   `json:"reason"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Topic         string   `json:"topic"`
}

// Draft requests one unvalidated draft question from the LLM.
func (d *LLMDrafter) Draft(ctx context.Context, input DraftInput) (*question.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-draft")

	req := llm.Request{
		System:      systemPrompt,
		User:        buildUserMessage(input),
		Schema:      draftSchemaFor(string(input.Segment)),
		MaxTokens:   d.config.MaxTokens,
		Temperature: d.config.Temperature,
	}

	resp, err := d.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM draft failed: %w", err)
	}

	if input.Segment == question.SegmentAssertionReason {
		return parseAssertionReason(resp.Content, input)
	}
	return parseMCQ(resp.Content, input)
}

func parseMCQ(raw json.RawMessage, input DraftInput) (*question.Question, error) {
	var draft mcqDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("parse MCQ draft: %w", err)
	}

	topic := draft.Topic
	if topic == "" {
		topic = input.Topic
	}

	return &question.Question{
		ID:                uuid.NewString(),
		Prompt:            draft.Question,
		Options:           draft.Options,
		CorrectAnswer:     draft.CorrectAnswer,
		Topic:             topic,
		Tier:              input.Tier,
		Segment:           input.Segment,
		ReasoningRequired: input.Segment == question.SegmentMCQReasoning,
	}, nil
}

func parseAssertionReason(raw json.RawMessage, input DraftInput) (*question.Question, error) {
	var draft assertionReasonDraft
	if err := json.Unmarshal(raw, &draft); err != nil {
		return nil, fmt.Errorf("parse assertion-reason draft: %w", err)
	}
	if draft.Assertion == "" || draft.Reason == "" {
		return nil, fmt.Errorf("assertion-reason draft missing assertion or reason")
	}

	topic := draft.Topic
	if topic == "" {
		topic = input.Topic
	}

	// The two statements stay distinguishable parts of one prompt: the
	// validator checks for both.
	prompt := ensureARLabel(draft.Assertion, "Assertion (A)") + "\n\n" +
		ensureARLabel(draft.Reason, "Reason (R)")

	return &question.Question{
		ID:                uuid.NewString(),
		Prompt:            prompt,
		Options:           draft.Options,
		CorrectAnswer:     draft.CorrectAnswer,
		Topic:             topic,
		Tier:              input.Tier,
		Segment:           question.SegmentAssertionReason,
		ReasoningRequired: false,
	}, nil
}

// ensureARLabel prefixes a statement with its label unless the generator
// already included one.
func ensureARLabel(statement, label string) string {
	if len(statement) >= len(label) && statement[:len(label)] == label {
		return statement
	}
	return label + ": " + statement
}
