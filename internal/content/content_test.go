package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTopicNames_MergesBothForms(t *testing.T) {
	s := &Summary{
		Topics: []string{"DNS", "Routing"},
		MainTopics: []Topic{
			{Name: "Load Balancing"},
			{Name: ""},
		},
	}
	got := s.TopicNames()
	want := []string{"DNS", "Routing", "Load Balancing"}
	if len(got) != len(want) {
		t.Fatalf("got %d names, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("name %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTopicNames_NilReceiver(t *testing.T) {
	var s *Summary
	if got := s.TopicNames(); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	if got := s.ContextText(); got != "" {
		t.Errorf("expected empty context, got %q", got)
	}
}

func TestContextText(t *testing.T) {
	s := &Summary{
		Title:       "Networking Basics",
		Overview:    "Core protocols and addressing.",
		KeyConcepts: []string{"TCP", "UDP"},
		Concepts: []Concept{
			{Title: "DNS", Summary: "Resolves names to addresses."},
			{Title: "ARP"},
		},
		MainTopics: []Topic{
			{Name: "Routing", Description: "Path selection between networks."},
		},
	}
	got := s.ContextText()
	for _, want := range []string{
		"Source material: Networking Basics",
		"Key concepts: TCP, UDP",
		"- DNS: Resolves names to addresses.",
		"- ARP",
		"- Routing: Path selection between networks.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("context missing %q:\n%s", want, got)
		}
	}
	if strings.HasSuffix(got, "\n") {
		t.Error("trailing newline not trimmed")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.json")
	data := `{
		"title": "OS Concepts",
		"topics": ["Scheduling"],
		"main_topics": [{"name": "Virtual Memory", "description": "Paging and swapping."}],
		"difficulty_level": "moderate",
		"estimated_read_time_minutes": 12
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Title != "OS Concepts" {
		t.Errorf("title = %q", s.Title)
	}
	if s.EstimatedReadMinutes != 12 {
		t.Errorf("read time = %d", s.EstimatedReadMinutes)
	}
	if names := s.TopicNames(); len(names) != 2 {
		t.Errorf("topic names = %v", names)
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed JSON")
	}
}
