package scoring

import (
	"sort"

	"github.com/abhisek/quizforge/internal/question"
)

// MasteryStatus classifies a topic's weighted overall score.
type MasteryStatus string

const (
	StatusMastered            MasteryStatus = "mastered"
	StatusPartiallyUnderstood MasteryStatus = "partially_understood"
	StatusNeedsRevision       MasteryStatus = "needs_revision"
)

// ConceptMastery is the per-topic mastery summary.
type ConceptMastery struct {
	Topic         string                    `json:"topic"`
	TierScores    map[question.Tier]float64 `json:"tier_scores"`
	Overall       float64                   `json:"overall"`
	Status        MasteryStatus             `json:"status"`
	QuestionCount int                       `json:"question_count"`
}

// TierWeights combines per-tier accuracies into one overall score. Missing
// tiers must already be zero-filled in the input map. The policy is a
// function value so it can be swapped without touching the aggregation.
type TierWeights func(scores map[question.Tier]float64) float64

// DefaultTierWeights weights moderate performance highest and does not
// renormalize when a tier is absent; a topic tested at only one tier is
// scored as if the untested tiers scored zero.
func DefaultTierWeights(scores map[question.Tier]float64) float64 {
	return scores[question.TierEasy]*0.3 +
		scores[question.TierModerate]*0.4 +
		scores[question.TierHard]*0.3
}

// statusFor maps an overall score to its mastery status.
func statusFor(overall float64) MasteryStatus {
	switch {
	case overall >= 80:
		return StatusMastered
	case overall >= 50:
		return StatusPartiallyUnderstood
	default:
		return StatusNeedsRevision
	}
}

// ConceptMasteries buckets paired questions and responses by (topic, tier)
// and derives one ConceptMastery per distinct topic, sorted descending by
// overall score with encounter order breaking ties.
func ConceptMasteries(questions []question.Question, responses []Response, opts Options) []ConceptMastery {
	weights := opts.Weights
	if weights == nil {
		weights = DefaultTierWeights
	}

	type tierBucket struct {
		count   int
		correct int
	}
	type topicBucket struct {
		tiers map[question.Tier]*tierBucket
		total int
	}

	order := []string{}
	topics := map[string]*topicBucket{}

	for i, q := range questions {
		if opts.ExcludeFallbacks && q.Fallback {
			continue
		}
		tb, ok := topics[q.Topic]
		if !ok {
			tb = &topicBucket{tiers: map[question.Tier]*tierBucket{}}
			topics[q.Topic] = tb
			order = append(order, q.Topic)
		}
		b, ok := tb.tiers[q.Tier]
		if !ok {
			b = &tierBucket{}
			tb.tiers[q.Tier] = b
		}
		b.count++
		if responses[i].Correct {
			b.correct++
		}
		tb.total++
	}

	out := make([]ConceptMastery, 0, len(order))
	for _, topic := range order {
		tb := topics[topic]
		scores := map[question.Tier]float64{
			question.TierEasy:     0,
			question.TierModerate: 0,
			question.TierHard:     0,
		}
		for tier, b := range tb.tiers {
			if b.count > 0 {
				scores[tier] = float64(b.correct) / float64(b.count) * 100
			}
		}
		overall := weights(scores)
		out = append(out, ConceptMastery{
			Topic:         topic,
			TierScores:    scores,
			Overall:       overall,
			Status:        statusFor(overall),
			QuestionCount: tb.total,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Overall > out[j].Overall
	})
	return out
}
