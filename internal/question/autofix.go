package question

import (
	"regexp"
	"strings"
)

// labelPrefix matches an existing option label like "A)", "b.", "C :" at the
// start of an option so it can be stripped before re-lettering.
var labelPrefix = regexp.MustCompile(`^[A-Da-d][).:\-]\s*`)

// answerLetter extracts a leading option letter from a correct-answer value
// like "C", "c)", or "C) 42".
var answerLetter = regexp.MustCompile(`^([A-Da-d])\b`)

// AutoFix attempts mechanical repairs of a draft question and re-validates
// the result. It normalizes option labels, coerces the answer key to a bare
// label, and aligns segment and reasoning_required with the tier contract.
// It never invents option text and never fabricates assertion/reason
// structure; anything it cannot repair comes back in the residual
// violation list.
func AutoFix(q Question, tier Tier, slot int) (Question, []Violation) {
	fixed := q
	fixed.Options = relabelOptions(q.Options)
	fixed.CorrectAnswer = coerceAnswer(q.CorrectAnswer, q.Options)

	// Segment and reasoning flag are fully determined by tier and slot
	// parity, so forcing them is a repair, not a semantic change. The one
	// exception is an assertion-reason draft landing in a multiple-choice
	// slot: relabeling it would hide the mismatch, so it is left for the
	// validator to reject.
	if tier.Valid() {
		want := SegmentFor(tier, slot)
		if want == SegmentAssertionReason || !looksAssertionReason(fixed) {
			fixed.Segment = want
			fixed.ReasoningRequired = want == SegmentMCQReasoning
		}
		fixed.Tier = tier
	}

	return fixed, Validate(fixed, tier, slot)
}

// looksAssertionReason reports whether the draft carries assertion-reason
// structure in its prompt.
func looksAssertionReason(q Question) bool {
	prompt := strings.ToLower(q.Prompt)
	return strings.Contains(prompt, "assertion") && strings.Contains(prompt, "reason")
}

// relabelOptions re-letters options into canonical "A) ..." form. Extra
// options beyond four are dropped; missing options are not invented.
func relabelOptions(options []string) []string {
	n := len(options)
	if n > 4 {
		n = 4
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		text := strings.TrimSpace(labelPrefix.ReplaceAllString(strings.TrimSpace(options[i]), ""))
		out[i] = OptionLabels[i] + ") " + text
	}
	return out
}

// coerceAnswer normalizes the answer key to a bare uppercase label. A value
// expressed as the full text of an option is mapped back to that option's
// position label.
func coerceAnswer(answer string, options []string) string {
	trimmed := strings.TrimSpace(answer)

	// Full option text first: an assertion-reasoning option like
	// "A is false, but R is true" starts with a letter, so text matching
	// must win over letter extraction.
	lowered := strings.ToLower(labelPrefix.ReplaceAllString(trimmed, ""))
	for i, opt := range options {
		if i >= len(OptionLabels) {
			break
		}
		text := strings.ToLower(strings.TrimSpace(labelPrefix.ReplaceAllString(strings.TrimSpace(opt), "")))
		if text != "" && text == lowered {
			return OptionLabels[i]
		}
	}

	if m := answerLetter.FindStringSubmatch(trimmed); m != nil {
		return strings.ToUpper(m[1])
	}

	return strings.ToUpper(trimmed)
}
