package questiongen

import (
	"context"

	"github.com/abhisek/quizforge/internal/question"
)

// DraftInput holds all context needed to draft one question.
type DraftInput struct {
	// Domain is the assessed subject area, e.g. "computer-networks".
	Domain string

	// Topic is the concept this draft should test.
	Topic string

	// Tier is the target difficulty tier.
	Tier question.Tier

	// Segment is the required structural format for the slot the draft is
	// destined for. The drafter is told the segment up front; the
	// validator enforces it after.
	Segment question.Segment

	// Context is optional source-material context from content ingestion.
	Context string
}

// Drafter produces unvalidated draft questions. The production
// implementation calls the LLM; tests substitute deterministic drafters.
// Drafts are raw generator output: the orchestrator owns validation,
// repair, and retries.
type Drafter interface {
	Draft(ctx context.Context, input DraftInput) (*question.Question, error)
}
