package question

// Tier is the difficulty tier a question is generated and validated for.
type Tier string

const (
	TierEasy     Tier = "easy"
	TierModerate Tier = "moderate"
	TierHard     Tier = "hard"
)

// Valid reports whether t is one of the three known tiers.
func (t Tier) Valid() bool {
	return t == TierEasy || t == TierModerate || t == TierHard
}

// Segment is the structural sub-format of a question.
type Segment string

const (
	// SegmentMCQ is a plain four-option multiple choice question.
	// The only segment allowed for easy and moderate tiers.
	SegmentMCQ Segment = "MCQ"

	// SegmentMCQReasoning is a four-option MCQ where the learner must also
	// supply a written reasoning explanation. Hard tier, even slots.
	SegmentMCQReasoning Segment = "MCQ_REASONING"

	// SegmentAssertionReason is the assertion-reasoning format with the four
	// fixed-meaning options. Hard tier, odd slots.
	SegmentAssertionReason Segment = "ASSERTION_REASON"
)

// OptionLabels are the canonical option labels in presentation order.
var OptionLabels = [4]string{"A", "B", "C", "D"}

// AssertionReasonOptions are the four fixed-meaning options every
// ASSERTION_REASON question must present, in canonical order.
var AssertionReasonOptions = [4]string{
	"A) Both A and R are true, and R is the correct explanation of A",
	"B) Both A and R are true, but R is NOT the correct explanation of A",
	"C) A is true, but R is false",
	"D) A is false, but R is true",
}

// SegmentFor returns the required segment for a slot in a batch.
// Hard-tier batches alternate MCQ_REASONING and ASSERTION_REASON by the
// zero-based slot index; this is a pure function of position so the
// alternation cannot drift across retries or fallback substitution.
func SegmentFor(tier Tier, slot int) Segment {
	if tier != TierHard {
		return SegmentMCQ
	}
	if slot%2 == 0 {
		return SegmentMCQReasoning
	}
	return SegmentAssertionReason
}

// Question is a single assessment question. Immutable once validated;
// downstream aggregation reads it but never mutates it.
type Question struct {
	// ID uniquely identifies the question within a session.
	// Fallback questions carry a "fallback-" prefix.
	ID string `json:"question_id"`

	// Prompt is the question text shown to the learner. For
	// ASSERTION_REASON questions it contains both the Assertion (A) and
	// Reason (R) statements as two distinguishable parts.
	Prompt string `json:"question"`

	// Options holds exactly 4 entries, each prefixed with its label,
	// e.g. "A) The OSI model has seven layers".
	Options []string `json:"options"`

	// CorrectAnswer is the label of the correct option: "A".."D".
	CorrectAnswer string `json:"correct_answer"`

	// Topic is the free-text concept tag this question tests.
	Topic string `json:"topic"`

	// Tier is the difficulty tier the question was generated for.
	Tier Tier `json:"difficulty"`

	// Segment is fully determined by Tier and, for hard, slot parity.
	Segment Segment `json:"segment"`

	// ReasoningRequired is true only for MCQ_REASONING questions.
	ReasoningRequired bool `json:"reasoning_required"`

	// Fallback marks a statically substituted question used when
	// generation retries were exhausted. Analytics may exclude these
	// from concept attribution.
	Fallback bool `json:"fallback,omitempty"`
}
