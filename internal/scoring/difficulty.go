package scoring

import "github.com/abhisek/quizforge/internal/question"

// DifficultyScore summarizes performance within one difficulty tier.
// A tier with no questions reports all-zero values, never NaN.
type DifficultyScore struct {
	Tier           question.Tier `json:"tier"`
	Count          int           `json:"count"`
	Correct        int           `json:"correct"`
	Accuracy       float64       `json:"accuracy"`
	MeanConfidence float64       `json:"mean_confidence"`
	MeanTime       float64       `json:"mean_time_seconds"`
}

// DifficultyScores buckets paired questions and responses by tier. All
// three tiers are always present in the result. Inputs must be pairwise
// aligned; Score enforces that before calling.
func DifficultyScores(questions []question.Question, responses []Response) map[question.Tier]DifficultyScore {
	type bucket struct {
		count      int
		correct    int
		confidence float64
		time       float64
	}
	buckets := map[question.Tier]*bucket{
		question.TierEasy:     {},
		question.TierModerate: {},
		question.TierHard:     {},
	}

	for i, q := range questions {
		b, ok := buckets[q.Tier]
		if !ok {
			continue
		}
		r := responses[i]
		b.count++
		if r.Correct {
			b.correct++
		}
		b.confidence += r.Confidence
		b.time += r.TimeSeconds
	}

	out := make(map[question.Tier]DifficultyScore, len(buckets))
	for tier, b := range buckets {
		score := DifficultyScore{Tier: tier, Count: b.count, Correct: b.correct}
		if b.count > 0 {
			n := float64(b.count)
			score.Accuracy = float64(b.correct) / n * 100
			score.MeanConfidence = b.confidence / n
			score.MeanTime = b.time / n
		}
		out[tier] = score
	}
	return out
}
