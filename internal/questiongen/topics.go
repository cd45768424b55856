package questiongen

import (
	"fmt"
	"math/rand/v2"

	"github.com/abhisek/quizforge/internal/question"
)

// domainTopics are the built-in topic pools for well-known domains.
var domainTopics = map[string][]string{
	"machine-learning": {
		"Supervised Learning", "Unsupervised Learning", "Neural Networks",
		"Model Evaluation", "Overfitting & Regularization", "Feature Engineering",
		"Ensemble Methods", "Deep Learning", "Transfer Learning", "Model Deployment",
	},
	"data-science": {
		"Data Preprocessing", "Statistical Analysis", "Data Visualization",
		"Hypothesis Testing", "Regression Analysis", "Classification",
		"Clustering", "Time Series Analysis", "A/B Testing", "ETL Pipelines",
	},
	"operating-systems": {
		"Process Management", "Memory Management", "File Systems",
		"Concurrency", "Deadlocks", "Scheduling Algorithms",
		"Virtual Memory", "I/O Management", "System Calls", "Synchronization",
	},
	"web-development": {
		"HTTP Protocol", "RESTful APIs", "Frontend Frameworks",
		"Backend Architecture", "Database Design", "Authentication",
		"State Management", "Responsive Design", "Performance Optimization", "Security",
	},
	"computer-networks": {
		"OSI Model", "TCP/IP Protocol", "Routing Algorithms",
		"Network Security", "DNS", "Load Balancing",
		"Network Topologies", "Firewalls", "VPN", "Quality of Service",
	},
}

// customAngles generates varied subtopic angles for domains without a
// built-in pool.
func customAngles(domain string) []string {
	aspects := []string{
		"Fundamentals", "Architecture & Design", "Implementation Strategies",
		"Best Practices", "Common Challenges", "Performance & Optimization",
		"Security Considerations", "Real-World Applications",
		"Advanced Concepts", "Industry Standards",
	}
	angles := make([]string, len(aspects))
	for i, a := range aspects {
		angles[i] = fmt.Sprintf("%s - %s", domain, a)
	}
	return angles
}

// PlanTopics assigns one topic per batch slot. Explicit topics (from
// content ingestion) take precedence over the built-in pools; the pool is
// shuffled then cycled so repeated sessions cover different subtopics in
// different orders.
func PlanTopics(domain string, topics []string, count int) []string {
	pool := topics
	if len(pool) == 0 {
		if dp, ok := domainTopics[domain]; ok {
			pool = dp
		} else {
			pool = customAngles(domain)
		}
	}

	shuffled := make([]string, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	out := make([]string, count)
	for i := 0; i < count; i++ {
		out[i] = shuffled[i%len(shuffled)]
	}
	return out
}

// mixedBase is the skewed difficulty distribution for mixed batches,
// applied positionally and padded with moderate beyond ten slots.
var mixedBase = []question.Tier{
	question.TierEasy, question.TierModerate, question.TierModerate,
	question.TierModerate, question.TierHard, question.TierModerate,
	question.TierModerate, question.TierHard, question.TierModerate,
	question.TierModerate,
}

// MixedPlan returns the per-slot tiers for a mixed-difficulty batch.
func MixedPlan(count int) []question.Tier {
	plan := make([]question.Tier, count)
	for i := 0; i < count; i++ {
		if i < len(mixedBase) {
			plan[i] = mixedBase[i]
		} else {
			plan[i] = question.TierModerate
		}
	}
	return plan
}
