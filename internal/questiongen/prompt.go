package questiongen

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/quizforge/internal/question"
)

const systemPrompt = `You are an expert educational assessment designer. You create difficulty-tiered multiple choice questions for professional skill assessment.

Rules:
- Generate exactly one question per request, matching the tier and format you are given.
- Provide exactly 4 options labeled A, B, C, D, with a single correct answer.
- Distractors must be plausible and reflect common misconceptions, never filler.
- Questions must be unique: do not repeat or rephrase previously generated questions, even for the same topic.
- Output only the requested JSON. No markdown, no code fences, no extra text.`

// perspectives rotate the angle a draft takes on a topic so repeated
// requests for the same topic produce different questions.
var perspectives = []string{
	"practical application perspective",
	"theoretical understanding angle",
	"real-world scenario context",
	"industry best practices focus",
	"edge case and limitations view",
	"comparative analysis approach",
	"problem-solving methodology",
	"design trade-offs consideration",
}

// styleVariations rotate the question's emphasis.
var styleVariations = []string{
	"Focus on WHY and HOW aspects",
	"Emphasize WHEN and WHERE scenarios",
	"Explore trade-offs and comparisons",
	"Test critical thinking and analysis",
	"Challenge common misconceptions",
	"Evaluate decision-making criteria",
}

// buildUserMessage constructs the user prompt for one draft request.
func buildUserMessage(input DraftInput) string {
	var b strings.Builder

	// Uniqueness block: fresh identifiers per request keep a stochastic
	// generator from recycling earlier questions.
	fmt.Fprintf(&b, "Assessment draft %s (t=%d).\n", uuid.NewString()[:8], time.Now().UnixMilli())
	fmt.Fprintf(&b, "Generate a completely new question. Use a %s on the topic. %s.\n\n",
		perspectives[rand.IntN(len(perspectives))],
		styleVariations[rand.IntN(len(styleVariations))])

	fmt.Fprintf(&b, "Domain: %s\n", input.Domain)
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Tier)

	b.WriteString("\n")
	b.WriteString(segmentInstructions(input.Tier, input.Segment))

	if input.Context != "" {
		b.WriteString("\n\nGround the question in this source material:\n")
		b.WriteString(input.Context)
	}

	return b.String()
}

// segmentInstructions returns the strict per-tier format requirements.
func segmentInstructions(tier question.Tier, segment question.Segment) string {
	switch {
	case segment == question.SegmentAssertionReason:
		return `Format: ASSERTION-REASONING.
- Provide an Assertion (A): a statement about the concept.
- Provide a Reason (R): a reasoning or explanation statement.
- Test the logical relationship between the two, using case-based or hypothetical scenarios.
- The 4 options must be exactly the standard assertion-reasoning set:
  A) Both A and R are true, and R is the correct explanation of A
  B) Both A and R are true, but R is NOT the correct explanation of A
  C) A is true, but R is false
  D) A is false, but R is true`

	case segment == question.SegmentMCQReasoning:
		return `Format: HARD MCQ with mandatory reasoning.
- Test complex objective reasoning requiring multi-step logical deduction.
- Interview-level difficulty; the learner must justify their choice in writing.
- No pure recall: the answer should only be reachable through deduction.`

	case tier == question.TierModerate:
		return `Format: MODERATE MCQ.
- Test application and understanding, with real-world context or practical scenarios.
- Question style: "How would...", "Why does...", "When would you...".
- Requires logical elimination and domain application, not definition recall.`

	default:
		return `Format: EASY MCQ.
- Test surface-level understanding: definitions, basic concepts, terminology.
- Question style: "What is...", "Which of the following...", "Define...".
- No application scenarios, no complex analysis.`
	}
}
