package question

import "testing"

func TestAutoFix_RelettersOptions(t *testing.T) {
	q := validMCQ()
	q.Options = []string{
		"Transport",
		"b. Network",
		"C) Data Link",
		"d: Session",
	}
	fixed, residual := AutoFix(q, TierEasy, 0)
	if len(residual) != 0 {
		t.Fatalf("expected clean fix, got %v", residual)
	}
	want := []string{"A) Transport", "B) Network", "C) Data Link", "D) Session"}
	for i, opt := range fixed.Options {
		if opt != want[i] {
			t.Errorf("option %d: got %q, want %q", i, opt, want[i])
		}
	}
}

func TestAutoFix_DropsExtraOptions(t *testing.T) {
	q := validMCQ()
	q.Options = append(q.Options, "E) None of the above")
	fixed, residual := AutoFix(q, TierEasy, 0)
	if len(residual) != 0 {
		t.Fatalf("expected clean fix, got %v", residual)
	}
	if len(fixed.Options) != 4 {
		t.Errorf("expected 4 options, got %d", len(fixed.Options))
	}
}

func TestAutoFix_CannotInventOptions(t *testing.T) {
	q := validMCQ()
	q.Options = q.Options[:2]
	_, residual := AutoFix(q, TierEasy, 0)
	if !hasField(residual, "options") {
		t.Errorf("expected residual options violation, got %v", residual)
	}
}

func TestAutoFix_CoercesAnswerLetter(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"b", "B"},
		{"B)", "B"},
		{"B) Network", "B"},
		{" c ", "C"},
	}
	for _, tt := range tests {
		q := validMCQ()
		q.CorrectAnswer = tt.in
		fixed, residual := AutoFix(q, TierEasy, 0)
		if fixed.CorrectAnswer != tt.want {
			t.Errorf("coerce %q: got %q, want %q", tt.in, fixed.CorrectAnswer, tt.want)
		}
		if len(residual) != 0 {
			t.Errorf("coerce %q: unexpected residual %v", tt.in, residual)
		}
	}
}

func TestAutoFix_CoercesFullOptionText(t *testing.T) {
	q := validMCQ()
	q.CorrectAnswer = "Network"
	fixed, residual := AutoFix(q, TierEasy, 0)
	if fixed.CorrectAnswer != "B" {
		t.Errorf("expected B, got %q", fixed.CorrectAnswer)
	}
	if len(residual) != 0 {
		t.Errorf("unexpected residual %v", residual)
	}
}

func TestAutoFix_AssertionReasonFullTextAnswer(t *testing.T) {
	// "A is false, but R is true" starts with a letter; the fixer must map
	// it to option D, not misread the leading "A".
	q := validAssertionReason()
	q.CorrectAnswer = "A is false, but R is true"
	fixed, residual := AutoFix(q, TierHard, 1)
	if fixed.CorrectAnswer != "D" {
		t.Errorf("expected D, got %q", fixed.CorrectAnswer)
	}
	if len(residual) != 0 {
		t.Errorf("unexpected residual %v", residual)
	}
}

func TestAutoFix_AlignsSegmentWithSlot(t *testing.T) {
	q := validMCQ()
	q.Tier = TierHard
	q.Segment = SegmentMCQ
	q.ReasoningRequired = false

	fixed, residual := AutoFix(q, TierHard, 2)
	if fixed.Segment != SegmentMCQReasoning {
		t.Errorf("expected MCQ_REASONING, got %s", fixed.Segment)
	}
	if !fixed.ReasoningRequired {
		t.Error("expected reasoning_required to be forced true")
	}
	if len(residual) != 0 {
		t.Errorf("unexpected residual %v", residual)
	}
}

func TestAutoFix_DoesNotRelabelAssertionIntoMCQSlot(t *testing.T) {
	// An assertion-reason draft in a multiple-choice slot is a content
	// mismatch, not a labeling problem; the fixer must leave the segment
	// alone so the validator rejects it.
	q := validAssertionReason()
	fixed, residual := AutoFix(q, TierHard, 0)
	if fixed.Segment != SegmentAssertionReason {
		t.Errorf("segment was relabeled to %s", fixed.Segment)
	}
	if !hasField(residual, "segment") {
		t.Errorf("expected residual segment violation, got %v", residual)
	}
}

func TestAutoFix_CannotFabricateAssertionStructure(t *testing.T) {
	q := validMCQ()
	q.Tier = TierHard
	fixed, residual := AutoFix(q, TierHard, 1)
	if fixed.Segment != SegmentAssertionReason {
		t.Errorf("expected segment forced to ASSERTION_REASON, got %s", fixed.Segment)
	}
	// The prompt has no Assertion/Reason parts and the options are plain
	// MCQ distractors; both must remain as residual violations.
	if !hasField(residual, "question") {
		t.Errorf("expected residual question violation, got %v", residual)
	}
	if !hasField(residual, "options[0]") {
		t.Errorf("expected residual option violations, got %v", residual)
	}
}

func TestAutoFix_DoesNotMutateInput(t *testing.T) {
	q := validMCQ()
	q.Options = []string{"Transport", "Network", "Data Link", "Session"}
	orig := make([]string, len(q.Options))
	copy(orig, q.Options)

	AutoFix(q, TierEasy, 0)
	for i, opt := range q.Options {
		if opt != orig[i] {
			t.Errorf("input option %d mutated: %q", i, opt)
		}
	}
}
