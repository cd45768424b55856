package questiongen

import (
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/abhisek/quizforge/internal/question"
)

// Static fallback material. Substituted when all draft attempts for a slot
// are exhausted so a batch always reaches its requested size. Every
// combination constructed here passes validation for its (tier, segment)
// pair by construction; TestFallback_AlwaysValid pins that.

var fallbackMCQPrompts = []string{
	"How does %s improve system behavior in %s?",
	"Which scenario best demonstrates the application of %s in %s?",
	"In %[2]s, when would you choose %[1]s over alternative approaches?",
	"Which factor is most critical when implementing %s in %s?",
	"Identify the key characteristic that defines %s in %s.",
	"What trade-off is associated with applying %s in %s systems?",
}

var fallbackMCQOptions = [][]string{
	{
		"A) It optimizes resource allocation",
		"B) It enhances system modularity",
		"C) It improves maintainability",
		"D) It reduces computational complexity",
	},
	{
		"A) When scalability is the primary concern",
		"B) When performance optimization is needed",
		"C) When maintainability outweighs efficiency",
		"D) When security is the top priority",
	},
	{
		"A) It provides a structured approach to problem decomposition",
		"B) It enables parallel processing capabilities",
		"C) It simplifies error handling mechanisms",
		"D) It facilitates rapid prototyping",
	},
}

var fallbackHardPrompts = []string{
	"Analyze the trade-offs involved when implementing %s in %s. Which factor is most critical?",
	"In a resource-constrained %[2]s environment, how would %[1]s impact system design decisions?",
	"Evaluate the implications of choosing %s over alternative approaches in %s. What is the primary consideration?",
	"When optimizing for both performance and maintainability in %[2]s, how does %[1]s influence the balance?",
}

var fallbackAssertions = []string{
	"%s is essential for achieving optimal results in %s.",
	"Implementing %s requires understanding of underlying system constraints in %s.",
	"The effectiveness of %s depends on proper context evaluation in %s.",
	"Mastery of %s directly correlates with system reliability in %s.",
}

var fallbackReasons = []string{
	"It provides a systematic framework for addressing complex challenges.",
	"It enables predictable behavior under varying conditions.",
	"It establishes clear boundaries for system operation.",
	"It facilitates efficient resource management and allocation.",
}

// Fallback builds a static substitute question for a batch slot. The
// returned question is flagged as a fallback in its identity so analytics
// can exclude it from concept attribution.
func Fallback(domain, topic string, tier question.Tier, slot int) question.Question {
	segment := question.SegmentFor(tier, slot)

	q := question.Question{
		ID:                "fallback-" + uuid.NewString(),
		Topic:             topic,
		Tier:              tier,
		Segment:           segment,
		ReasoningRequired: segment == question.SegmentMCQReasoning,
		Fallback:          true,
	}

	switch segment {
	case question.SegmentAssertionReason:
		q.Prompt = fmt.Sprintf("Assertion (A): %s\n\nReason (R): %s",
			fmt.Sprintf(pick(fallbackAssertions), topic, domain),
			pick(fallbackReasons))
		q.Options = question.AssertionReasonOptions[:]
		// Only A and B keep the statements internally consistent with an
		// arbitrary assertion/reason pairing.
		q.CorrectAnswer = pick([]string{"A", "B"})

	case question.SegmentMCQReasoning:
		q.Prompt = fmt.Sprintf(pick(fallbackHardPrompts), topic, domain)
		q.Options = pick(fallbackMCQOptions)
		q.CorrectAnswer = pick(question.OptionLabels[:])

	default:
		q.Prompt = fmt.Sprintf(pick(fallbackMCQPrompts), topic, domain)
		q.Options = pick(fallbackMCQOptions)
		q.CorrectAnswer = pick(question.OptionLabels[:])
	}

	return q
}

func pick[T any](items []T) T {
	return items[rand.IntN(len(items))]
}
