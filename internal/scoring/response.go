package scoring

import (
	"strings"

	"github.com/abhisek/quizforge/internal/question"
)

// Response is one learner answer to one question. Responses are immutable
// once built; the ordered collection for a session is the sole input to
// scoring.
type Response struct {
	QuestionID string `json:"question_id"`

	// Selected is the chosen option label (A-D).
	Selected string `json:"selected_answer"`

	// Reasoning is the learner's written justification, required for
	// MCQ_REASONING questions and empty otherwise.
	Reasoning string `json:"reasoning,omitempty"`

	// Correct is derived once at submission by comparing Selected with the
	// question's answer label.
	Correct bool `json:"correct"`

	// Confidence is the learner's self-reported confidence, 0-100.
	Confidence float64 `json:"confidence"`

	// TimeSeconds is the total elapsed time on the question.
	TimeSeconds float64 `json:"time_seconds"`

	// Revisions counts answer changes before submission.
	Revisions int `json:"revisions"`

	// Topic is copied from the question for aggregation.
	Topic string `json:"topic"`
}

// BuildResponse grades a submission against its question and returns the
// immutable Response record.
func BuildResponse(q question.Question, selected, reasoning string, confidence, timeSeconds float64, revisions int) Response {
	label := strings.ToUpper(strings.TrimSpace(selected))
	return Response{
		QuestionID:  q.ID,
		Selected:    label,
		Reasoning:   reasoning,
		Correct:     label == q.CorrectAnswer,
		Confidence:  confidence,
		TimeSeconds: timeSeconds,
		Revisions:   revisions,
		Topic:       q.Topic,
	}
}
