package question

import (
	"fmt"
	"strings"
)

// Violation describes one way a draft question fails its tier contract.
// Violations are data, not errors: the orchestrator inspects them to decide
// between auto-fix, regeneration, and fallback.
type Violation struct {
	Field    string `json:"field"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: expected %s, got %s", v.Field, v.Expected, v.Actual)
}

// minPromptLen guards against degenerate one-word prompts the LLM
// occasionally emits when it truncates.
const minPromptLen = 10

// Validate checks a draft question against the rules for its intended tier
// and batch slot. An empty result means the question is valid. It never
// mutates q.
func Validate(q Question, tier Tier, slot int) []Violation {
	var vs []Violation

	if !tier.Valid() {
		return append(vs, Violation{
			Field:    "difficulty",
			Expected: "easy, moderate or hard",
			Actual:   string(tier),
		})
	}

	if len(strings.TrimSpace(q.Prompt)) < minPromptLen {
		vs = append(vs, Violation{
			Field:    "question",
			Expected: fmt.Sprintf("prompt of at least %d characters", minPromptLen),
			Actual:   fmt.Sprintf("%d characters", len(strings.TrimSpace(q.Prompt))),
		})
	}

	vs = append(vs, validateOptions(q)...)
	vs = append(vs, validateCorrectAnswer(q)...)

	want := SegmentFor(tier, slot)
	if q.Segment != want {
		vs = append(vs, Violation{
			Field:    "segment",
			Expected: string(want),
			Actual:   string(q.Segment),
		})
	}

	wantReasoning := want == SegmentMCQReasoning
	if q.ReasoningRequired != wantReasoning {
		vs = append(vs, Violation{
			Field:    "reasoning_required",
			Expected: fmt.Sprintf("%t", wantReasoning),
			Actual:   fmt.Sprintf("%t", q.ReasoningRequired),
		})
	}

	if want == SegmentAssertionReason {
		vs = append(vs, validateAssertionReason(q)...)
	}

	return vs
}

// validateOptions checks the four-option shape and canonical A-D labeling.
func validateOptions(q Question) []Violation {
	if len(q.Options) != 4 {
		return []Violation{{
			Field:    "options",
			Expected: "exactly 4 options",
			Actual:   fmt.Sprintf("%d options", len(q.Options)),
		}}
	}

	var vs []Violation
	for i, opt := range q.Options {
		prefix := OptionLabels[i] + ")"
		if !strings.HasPrefix(strings.TrimSpace(opt), prefix) {
			vs = append(vs, Violation{
				Field:    fmt.Sprintf("options[%d]", i),
				Expected: fmt.Sprintf("label prefix %q", prefix),
				Actual:   truncate(opt, 40),
			})
		}
	}
	return vs
}

// validateCorrectAnswer checks that the answer key is a bare label naming
// one of the presented options.
func validateCorrectAnswer(q Question) []Violation {
	answer := strings.ToUpper(strings.TrimSpace(q.CorrectAnswer))
	for i, label := range OptionLabels {
		if answer != label {
			continue
		}
		// The label must match a presented option when the shape allows it.
		if i < len(q.Options) {
			return nil
		}
		break
	}
	return []Violation{{
		Field:    "correct_answer",
		Expected: "one of A, B, C, D matching a presented option",
		Actual:   truncate(q.CorrectAnswer, 40),
	}}
}

// arOptionKeywords identify each fixed-meaning assertion-reasoning option
// by position. Matching is keyword-based so harmless rewording by the
// generator ("R is NOT the correct explanation" vs "R does not explain A")
// still passes.
var arOptionKeywords = [4][]string{
	{"both a and r are true", "correct explanation"},
	{"both a and r are true", "not"},
	{"a is true", "r is false"},
	{"a is false", "r is true"},
}

func validateAssertionReason(q Question) []Violation {
	var vs []Violation

	prompt := strings.ToLower(q.Prompt)
	if !strings.Contains(prompt, "assertion") || !strings.Contains(prompt, "reason") {
		vs = append(vs, Violation{
			Field:    "question",
			Expected: "distinct Assertion (A) and Reason (R) statements",
			Actual:   truncate(q.Prompt, 60),
		})
	}

	if len(q.Options) != 4 {
		return vs // option shape already reported by validateOptions
	}
	for i, opt := range q.Options {
		lower := strings.ToLower(opt)
		for _, kw := range arOptionKeywords[i] {
			if !strings.Contains(lower, kw) {
				vs = append(vs, Violation{
					Field:    fmt.Sprintf("options[%d]", i),
					Expected: AssertionReasonOptions[i],
					Actual:   truncate(opt, 60),
				})
				break
			}
		}
	}
	return vs
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
