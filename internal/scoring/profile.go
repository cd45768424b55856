package scoring

import (
	"fmt"
	"math"
	"strings"

	"github.com/abhisek/quizforge/internal/question"
)

// UnderstandingLevel is the session-wide classification derived from the
// three tier accuracies.
type UnderstandingLevel string

const (
	LevelJobReady  UnderstandingLevel = "job_ready"
	LevelImproving UnderstandingLevel = "improving"
	LevelBeginner  UnderstandingLevel = "beginner"
)

const (
	// speedBaseline is the neutral per-question time in seconds; a mean
	// time at the baseline scores 0 on the speed component.
	speedBaseline = 120.0

	// calibrationGap is the confidence/accuracy spread beyond which a
	// calibration recommendation fires.
	calibrationGap = 20.0
)

// Analytics is the terminal artifact of a scoring call, handed to the
// presentation layer.
type Analytics struct {
	Difficulty map[question.Tier]DifficultyScore `json:"difficulty_scores"`
	Concepts   []ConceptMastery                  `json:"concept_mastery"`

	// ConfidenceScore is the weighted blend of the three sub-metrics,
	// rounded to the nearest integer.
	ConfidenceScore int `json:"confidence_score"`

	// Accuracy, Consistency and Speed are the 0-100 sub-metrics behind
	// the confidence score.
	Accuracy    float64 `json:"accuracy"`
	Consistency float64 `json:"consistency"`
	Speed       float64 `json:"speed"`

	// MeanConfidence is the learner's average self-reported confidence,
	// used for calibration feedback.
	MeanConfidence float64 `json:"mean_confidence"`

	Level           UnderstandingLevel `json:"understanding_level"`
	Interpretation  string             `json:"interpretation"`
	Recommendations []string           `json:"recommendations"`
}

// confidenceScore blends accuracy, answer consistency and speed into one
// 0-100 integer. Each component is clamped before weighting, not only the
// final sum.
func confidenceScore(accuracy, consistency, speed float64) int {
	score := clamp(accuracy, 0, 100)*0.6 +
		clamp(consistency, 0, 100)*0.25 +
		clamp(speed, 0, 100)*0.15
	return int(math.Round(clamp(score, 0, 100)))
}

// consistencyScore is 100 minus the population standard deviation of the
// 0/1 correctness sequence, scaled to 0-100. A learner who is uniformly
// right (or uniformly wrong) scores 100; maximal alternation scores 50.
func consistencyScore(responses []Response) float64 {
	n := len(responses)
	if n == 0 {
		return 0
	}
	correct := 0
	for _, r := range responses {
		if r.Correct {
			correct++
		}
	}
	p := float64(correct) / float64(n)
	stddev := math.Sqrt(p * (1 - p))
	return clamp(100-100*stddev, 0, 100)
}

// speedScore rates mean response time against the neutral baseline.
func speedScore(meanTime float64) float64 {
	return clamp(100-(meanTime/speedBaseline)*100, 0, 100)
}

// understandingLevel applies the fixed-priority tier-accuracy gates.
func understandingLevel(d map[question.Tier]DifficultyScore) UnderstandingLevel {
	easy := d[question.TierEasy].Accuracy
	moderate := d[question.TierModerate].Accuracy
	hard := d[question.TierHard].Accuracy

	if easy >= 80 && moderate >= 70 && hard >= 60 {
		return LevelJobReady
	}
	if easy >= 70 && moderate >= 60 {
		return LevelImproving
	}
	return LevelBeginner
}

// interpret picks the single first-matching narrative for the session.
func interpret(d map[question.Tier]DifficultyScore) string {
	const (
		high     = 75.0
		low      = 50.0
		balanced = 55.0
	)
	easy := d[question.TierEasy].Accuracy
	moderate := d[question.TierModerate].Accuracy
	hard := d[question.TierHard].Accuracy

	switch {
	case easy >= high && moderate >= high && hard >= high:
		return "Excellent performance across all difficulty levels. Your understanding is industry-ready."
	case easy >= high && moderate < low:
		return "Your basics are clear, but applied concepts need work. Focus on moderate-difficulty practice."
	case moderate >= high && hard < low:
		return "You are conceptually strong but lack application depth. Work through harder multi-step problems."
	case easy >= balanced && moderate >= balanced && hard >= balanced:
		return "You have a solid foundation with balanced performance. Keep practicing to sharpen every tier."
	case easy < low || moderate < low:
		return "Your foundation needs strengthening. Revisit the fundamentals before moving to harder material."
	default:
		return "Your understanding is still developing. Consistent practice across difficulty levels will help."
	}
}

// recommend builds the ordered recommendation list: tier gaps first, then
// weak topics, then calibration. Truncated to three entries; never empty.
func recommend(d map[question.Tier]DifficultyScore, concepts []ConceptMastery, meanConfidence, accuracy float64) []string {
	var recs []string

	if d[question.TierHard].Accuracy < 60 {
		recs = append(recs, "Practice hard-level reasoning questions to build multi-step problem-solving depth.")
	}
	if d[question.TierModerate].Accuracy < 60 {
		recs = append(recs, "Strengthen applied understanding with moderate-difficulty scenario questions.")
	}
	if d[question.TierEasy].Accuracy < 70 {
		recs = append(recs, "Review core definitions and terminology; the fundamentals are not yet reliable.")
	}

	if weak := weakTopics(concepts, 2); len(weak) > 0 {
		recs = append(recs, fmt.Sprintf("Revisit these topics before moving on: %s.", strings.Join(weak, ", ")))
	}

	switch gap := meanConfidence - accuracy; {
	case gap > calibrationGap:
		recs = append(recs, "Your confidence runs ahead of your accuracy. Slow down and verify answers before committing.")
	case gap < -calibrationGap:
		recs = append(recs, "You score better than you think. Trust your reasoning and commit to answers more decisively.")
	}

	if len(recs) > 3 {
		recs = recs[:3]
	}
	if len(recs) == 0 {
		recs = []string{"Strong session. Keep up the regular practice to maintain your edge."}
	}
	return recs
}

// weakTopics returns up to limit topic names in needs-revision status, in
// the list's existing order.
func weakTopics(concepts []ConceptMastery, limit int) []string {
	var out []string
	for _, c := range concepts {
		if c.Status != StatusNeedsRevision {
			continue
		}
		out = append(out, c.Topic)
		if len(out) == limit {
			break
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
