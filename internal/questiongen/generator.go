package questiongen

import (
	"context"
	"fmt"

	"github.com/abhisek/quizforge/internal/content"
	"github.com/abhisek/quizforge/internal/question"
)

// Config controls the behavior of the Generator.
type Config struct {
	// MaxAttempts is how many independent drafts are requested per slot
	// before the static fallback is substituted. Each attempt is a fresh
	// generator call, never a repair of the previous draft.
	MaxAttempts int

	// MaxTokens is the token budget per draft.
	MaxTokens int

	// Temperature controls draft randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended generation settings.
func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		MaxTokens:   768,
		Temperature: 0.8,
	}
}

// BatchInput describes one batch generation request.
type BatchInput struct {
	// Domain is the assessed subject area.
	Domain string

	// Topics optionally pins the topic pool, e.g. topics extracted from
	// ingested content. Empty means the built-in pool for Domain.
	Topics []string

	// Tier is the difficulty tier for every slot. Ignored when Mixed is set.
	Tier question.Tier

	// Mixed selects the skewed easy/moderate/hard distribution instead of
	// a single tier.
	Mixed bool

	// Count is the exact number of questions to produce.
	Count int

	// Content is optional source-material context from ingestion.
	Content *content.Summary
}

// Generator produces validated question batches from unvalidated drafts.
// It is stateless per call; failures degrade to fallback substitution and
// are never surfaced to the caller.
type Generator struct {
	drafter Drafter
	config  Config
}

// New creates a Generator with the given drafter and config.
func New(drafter Drafter, cfg Config) *Generator {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultConfig().MaxAttempts
	}
	return &Generator{drafter: drafter, config: cfg}
}

// GenerateBatch produces an ordered batch of exactly in.Count valid
// questions. The only error conditions are malformed input; draft failures
// never shrink the batch.
func (g *Generator) GenerateBatch(ctx context.Context, in BatchInput) ([]question.Question, error) {
	if in.Count <= 0 {
		return nil, fmt.Errorf("batch count must be positive, got %d", in.Count)
	}
	if !in.Mixed && !in.Tier.Valid() {
		return nil, fmt.Errorf("unknown difficulty tier %q", in.Tier)
	}

	plan := make([]question.Tier, in.Count)
	if in.Mixed {
		plan = MixedPlan(in.Count)
	} else {
		for i := range plan {
			plan[i] = in.Tier
		}
	}

	topics := PlanTopics(in.Domain, mergedTopics(in), in.Count)
	contextText := in.Content.ContextText()

	batch := make([]question.Question, in.Count)
	for slot := 0; slot < in.Count; slot++ {
		batch[slot] = g.fillSlot(ctx, slotRequest{
			domain:  in.Domain,
			topic:   topics[slot],
			tier:    plan[slot],
			slot:    slot,
			context: contextText,
		})
	}

	return batch, nil
}

// slotRequest carries everything needed to resolve one batch slot.
type slotRequest struct {
	domain  string
	topic   string
	tier    question.Tier
	slot    int
	context string
}

// slotState tracks the validate-fix-revalidate machine for auditability.
type slotState int

const (
	stateDraft slotState = iota
	stateValid
	stateInvalid
	stateRepaired
	stateStillInvalid
)

// fillSlot resolves one slot: Draft → Validate → AutoFix → Revalidate,
// retried up to MaxAttempts with fresh drafts, then fallback. The required
// segment is a pure function of (tier, slot) so the hard-tier alternation
// holds regardless of what the drafter returns.
func (g *Generator) fillSlot(ctx context.Context, req slotRequest) question.Question {
	segment := question.SegmentFor(req.tier, req.slot)

	for attempt := 0; attempt < g.config.MaxAttempts; attempt++ {
		draft, err := g.drafter.Draft(ctx, DraftInput{
			Domain:  req.domain,
			Topic:   req.topic,
			Tier:    req.tier,
			Segment: segment,
			Context: req.context,
		})
		if err != nil {
			// Generation error: next attempt drafts fresh.
			continue
		}

		state := stateDraft
		q := *draft

		if len(question.Validate(q, req.tier, req.slot)) == 0 {
			state = stateValid
		} else {
			state = stateInvalid
		}

		if state == stateInvalid {
			fixed, residual := question.AutoFix(q, req.tier, req.slot)
			if len(residual) == 0 {
				q = fixed
				state = stateRepaired
			} else {
				state = stateStillInvalid
			}
		}

		if state == stateValid || state == stateRepaired {
			return q
		}
	}

	return Fallback(req.domain, req.topic, req.tier, req.slot)
}

// mergedTopics combines explicitly pinned topics with topic names from the
// content summary, explicit topics first.
func mergedTopics(in BatchInput) []string {
	names := in.Content.TopicNames()
	if len(in.Topics) == 0 {
		return names
	}
	if len(names) == 0 {
		return in.Topics
	}
	merged := make([]string, 0, len(in.Topics)+len(names))
	merged = append(merged, in.Topics...)
	merged = append(merged, names...)
	return merged
}
