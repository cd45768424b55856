package scoring

import (
	"fmt"

	"github.com/abhisek/quizforge/internal/question"
)

// Options tune a scoring call.
type Options struct {
	// ExcludeFallbacks drops fallback-substituted questions from concept
	// mastery attribution; they carry no real content signal. Tier scores
	// and the overall profile always include every response.
	ExcludeFallbacks bool

	// Weights overrides the tier weighting policy for concept mastery.
	// Nil means DefaultTierWeights.
	Weights TierWeights
}

// Score derives the full session Analytics from pairwise-aligned questions
// and responses. A length mismatch or a response referencing a question ID
// other than the one at its position fails the whole call; silently
// skipping would corrupt per-tier denominators.
func Score(questions []question.Question, responses []Response, opts Options) (*Analytics, error) {
	if len(questions) != len(responses) {
		return nil, fmt.Errorf("scoring input mismatch: %d questions, %d responses", len(questions), len(responses))
	}
	for i, r := range responses {
		if r.QuestionID != questions[i].ID {
			return nil, fmt.Errorf("response %d references question %q, expected %q", i, r.QuestionID, questions[i].ID)
		}
	}

	difficulty := DifficultyScores(questions, responses)
	concepts := ConceptMasteries(questions, responses, opts)

	var accuracy, meanConfidence, meanTime float64
	if n := len(responses); n > 0 {
		correct := 0
		for _, r := range responses {
			if r.Correct {
				correct++
			}
			meanConfidence += r.Confidence
			meanTime += r.TimeSeconds
		}
		accuracy = float64(correct) / float64(n) * 100
		meanConfidence /= float64(n)
		meanTime /= float64(n)
	}

	consistency := consistencyScore(responses)
	speed := 0.0
	if len(responses) > 0 {
		speed = speedScore(meanTime)
	}

	return &Analytics{
		Difficulty:      difficulty,
		Concepts:        concepts,
		ConfidenceScore: confidenceScore(accuracy, consistency, speed),
		Accuracy:        accuracy,
		Consistency:     consistency,
		Speed:           speed,
		MeanConfidence:  meanConfidence,
		Level:           understandingLevel(difficulty),
		Interpretation:  interpret(difficulty),
		Recommendations: recommend(difficulty, concepts, meanConfidence, accuracy),
	}, nil
}
