// Package content defines the shapes returned by the external
// content-ingestion service (PDF parsing, concept extraction). The
// extraction itself happens elsewhere; this package only carries its output
// into question generation as prompt context.
package content

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Concept is a single extracted concept with optional summary.
type Concept struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Summary string `json:"summary,omitempty"`
}

// Topic is a named topic from the richer structured summary.
type Topic struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	KeyPoints   []string `json:"key_points,omitempty"`
}

// Summary is the ingestion service's output. Either the flat
// topics/concepts form or the richer structured form may be populated;
// consumers treat both uniformly through TopicNames and ContextText.
type Summary struct {
	Topics   []string  `json:"topics,omitempty"`
	Concepts []Concept `json:"concepts,omitempty"`

	Title                string   `json:"title,omitempty"`
	Overview             string   `json:"overview,omitempty"`
	KeyConcepts          []string `json:"key_concepts,omitempty"`
	MainTopics           []Topic  `json:"main_topics,omitempty"`
	DifficultyLevel      string   `json:"difficulty_level,omitempty"`
	EstimatedReadMinutes int      `json:"estimated_read_time_minutes,omitempty"`
}

// TopicNames returns all topic names the summary carries, flat and
// structured forms merged, original order preserved.
func (s *Summary) TopicNames() []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.Topics)+len(s.MainTopics))
	names = append(names, s.Topics...)
	for _, t := range s.MainTopics {
		if t.Name != "" {
			names = append(names, t.Name)
		}
	}
	return names
}

// ContextText renders the summary as prompt context for the draft
// generator. Empty when there is nothing useful to say.
func (s *Summary) ContextText() string {
	if s == nil {
		return ""
	}

	var b strings.Builder
	if s.Title != "" {
		fmt.Fprintf(&b, "Source material: %s\n", s.Title)
	}
	if s.Overview != "" {
		fmt.Fprintf(&b, "Overview: %s\n", s.Overview)
	}
	if len(s.KeyConcepts) > 0 {
		fmt.Fprintf(&b, "Key concepts: %s\n", strings.Join(s.KeyConcepts, ", "))
	}
	for _, c := range s.Concepts {
		if c.Summary != "" {
			fmt.Fprintf(&b, "- %s: %s\n", c.Title, c.Summary)
		} else if c.Title != "" {
			fmt.Fprintf(&b, "- %s\n", c.Title)
		}
	}
	for _, t := range s.MainTopics {
		if t.Description != "" {
			fmt.Fprintf(&b, "- %s: %s\n", t.Name, t.Description)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Load reads a Summary from a JSON file produced by the ingestion service.
func Load(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content summary: %w", err)
	}
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse content summary: %w", err)
	}
	return &s, nil
}
