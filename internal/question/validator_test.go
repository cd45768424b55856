package question

import "testing"

func validMCQ() Question {
	return Question{
		ID:     "q-1",
		Prompt: "Which layer of the OSI model handles routing?",
		Options: []string{
			"A) Transport",
			"B) Network",
			"C) Data Link",
			"D) Session",
		},
		CorrectAnswer:     "B",
		Topic:             "OSI Model",
		Tier:              TierEasy,
		Segment:           SegmentMCQ,
		ReasoningRequired: false,
	}
}

func validAssertionReason() Question {
	return Question{
		ID: "q-2",
		Prompt: "Assertion (A): TCP guarantees in-order delivery.\n\n" +
			"Reason (R): TCP sequences segments and buffers out-of-order arrivals.",
		Options:           AssertionReasonOptions[:],
		CorrectAnswer:     "A",
		Topic:             "TCP/IP Protocol",
		Tier:              TierHard,
		Segment:           SegmentAssertionReason,
		ReasoningRequired: false,
	}
}

func TestSegmentFor(t *testing.T) {
	tests := []struct {
		tier Tier
		slot int
		want Segment
	}{
		{TierEasy, 0, SegmentMCQ},
		{TierEasy, 7, SegmentMCQ},
		{TierModerate, 0, SegmentMCQ},
		{TierModerate, 3, SegmentMCQ},
		{TierHard, 0, SegmentMCQReasoning},
		{TierHard, 1, SegmentAssertionReason},
		{TierHard, 2, SegmentMCQReasoning},
		{TierHard, 3, SegmentAssertionReason},
		{TierHard, 10, SegmentMCQReasoning},
	}
	for _, tt := range tests {
		if got := SegmentFor(tt.tier, tt.slot); got != tt.want {
			t.Errorf("SegmentFor(%s, %d) = %s, want %s", tt.tier, tt.slot, got, tt.want)
		}
	}
}

func TestValidate_ValidEasyMCQ(t *testing.T) {
	if vs := Validate(validMCQ(), TierEasy, 0); len(vs) != 0 {
		t.Errorf("expected no violations, got %v", vs)
	}
}

func TestValidate_ValidModerateMCQ(t *testing.T) {
	q := validMCQ()
	q.Tier = TierModerate
	if vs := Validate(q, TierModerate, 5); len(vs) != 0 {
		t.Errorf("expected no violations, got %v", vs)
	}
}

func TestValidate_UnknownTier(t *testing.T) {
	vs := Validate(validMCQ(), Tier("expert"), 0)
	if len(vs) != 1 {
		t.Fatalf("expected exactly 1 violation, got %v", vs)
	}
	if vs[0].Field != "difficulty" {
		t.Errorf("expected difficulty violation, got %q", vs[0].Field)
	}
}

func TestValidate_EasyRejectsReasoning(t *testing.T) {
	q := validMCQ()
	q.ReasoningRequired = true
	vs := Validate(q, TierEasy, 0)
	if !hasField(vs, "reasoning_required") {
		t.Errorf("expected reasoning_required violation, got %v", vs)
	}
}

func TestValidate_EasyRejectsHardSegment(t *testing.T) {
	q := validMCQ()
	q.Segment = SegmentMCQReasoning
	vs := Validate(q, TierEasy, 0)
	if !hasField(vs, "segment") {
		t.Errorf("expected segment violation, got %v", vs)
	}
}

func TestValidate_OptionCount(t *testing.T) {
	q := validMCQ()
	q.Options = q.Options[:3]
	vs := Validate(q, TierEasy, 0)
	if !hasField(vs, "options") {
		t.Errorf("expected options violation, got %v", vs)
	}
}

func TestValidate_OptionLabelOrder(t *testing.T) {
	q := validMCQ()
	q.Options[2] = "3) Data Link"
	vs := Validate(q, TierEasy, 0)
	if !hasField(vs, "options[2]") {
		t.Errorf("expected options[2] violation, got %v", vs)
	}
}

func TestValidate_CorrectAnswerLabel(t *testing.T) {
	q := validMCQ()
	q.CorrectAnswer = "E"
	vs := Validate(q, TierEasy, 0)
	if !hasField(vs, "correct_answer") {
		t.Errorf("expected correct_answer violation, got %v", vs)
	}
}

func TestValidate_ShortPrompt(t *testing.T) {
	q := validMCQ()
	q.Prompt = "Why?"
	vs := Validate(q, TierEasy, 0)
	if !hasField(vs, "question") {
		t.Errorf("expected question violation, got %v", vs)
	}
}

func TestValidate_HardEvenSlot(t *testing.T) {
	q := validMCQ()
	q.Tier = TierHard
	q.Segment = SegmentMCQReasoning
	q.ReasoningRequired = true
	if vs := Validate(q, TierHard, 0); len(vs) != 0 {
		t.Errorf("expected no violations, got %v", vs)
	}
}

// An assertion-reasoning draft delivered for an even slot must be rejected,
// not silently accepted: the alternation is positional, not stochastic.
func TestValidate_HardEvenSlotRejectsAssertionReason(t *testing.T) {
	q := validAssertionReason()
	vs := Validate(q, TierHard, 0)
	if !hasField(vs, "segment") {
		t.Errorf("expected segment violation, got %v", vs)
	}
	if !hasField(vs, "reasoning_required") {
		t.Errorf("expected reasoning_required violation, got %v", vs)
	}
}

func TestValidate_HardOddSlot(t *testing.T) {
	if vs := Validate(validAssertionReason(), TierHard, 1); len(vs) != 0 {
		t.Errorf("expected no violations, got %v", vs)
	}
}

func TestValidate_AssertionReasonPromptStructure(t *testing.T) {
	q := validAssertionReason()
	q.Prompt = "TCP guarantees in-order delivery because it sequences segments."
	vs := Validate(q, TierHard, 1)
	if !hasField(vs, "question") {
		t.Errorf("expected question violation, got %v", vs)
	}
}

func TestValidate_AssertionReasonFixedOptions(t *testing.T) {
	q := validAssertionReason()
	q.Options = []string{
		"A) TCP is faster",
		"B) UDP is faster",
		"C) Both are equal",
		"D) Neither",
	}
	vs := Validate(q, TierHard, 1)
	if !hasField(vs, "options[0]") {
		t.Errorf("expected options[0] violation, got %v", vs)
	}
}

func TestValidate_AssertionReasonReworded(t *testing.T) {
	// Reworded but meaning-preserving options still pass the keyword check.
	q := validAssertionReason()
	q.Options = []string{
		"A) Both A and R are true and R is the correct explanation of A",
		"B) Both A and R are true but R is not the correct explanation of A",
		"C) A is true, but R is false",
		"D) A is false, but R is true",
	}
	if vs := Validate(q, TierHard, 3); len(vs) != 0 {
		t.Errorf("expected no violations, got %v", vs)
	}
}

func hasField(vs []Violation, field string) bool {
	for _, v := range vs {
		if v.Field == field {
			return true
		}
	}
	return false
}
