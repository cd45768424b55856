package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type memorySink struct {
	events []Event
	err    error
}

func (m *memorySink) AppendLLMEvent(_ context.Context, ev Event) error {
	if m.err != nil {
		return m.err
	}
	m.events = append(m.events, ev)
	return nil
}

func TestWithLogging_RecordsSuccess(t *testing.T) {
	sink := &memorySink{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"ok":true}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7},
	})
	p := WithLogging(mock, "mock", sink)

	ctx := WithPurpose(context.Background(), "question-draft")
	_, err := p.Generate(ctx, Request{System: "sys", User: "draft one"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sink.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(sink.events))
	}
	ev := sink.events[0]
	if ev.Provider != "mock" {
		t.Errorf("provider = %q", ev.Provider)
	}
	if ev.Purpose != "question-draft" {
		t.Errorf("purpose = %q", ev.Purpose)
	}
	if !ev.Success {
		t.Error("expected success event")
	}
	if ev.InputTokens != 12 || ev.OutputTokens != 7 {
		t.Errorf("tokens = %d/%d", ev.InputTokens, ev.OutputTokens)
	}
	if !strings.Contains(ev.RequestBody, "draft one") {
		t.Errorf("request body missing prompt: %q", ev.RequestBody)
	}
	if ev.ResponseBody != `{"ok":true}` {
		t.Errorf("response body = %q", ev.ResponseBody)
	}
}

func TestWithLogging_RecordsFailure(t *testing.T) {
	sink := &memorySink{}
	mock := NewMockProvider(MockResponse{Err: &ErrRateLimit{}})
	p := WithLogging(mock, "mock", sink)

	_, err := p.Generate(context.Background(), Request{User: "draft"})
	if err == nil {
		t.Fatal("expected error")
	}

	if len(sink.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(sink.events))
	}
	ev := sink.events[0]
	if ev.Success {
		t.Error("expected failure event")
	}
	if ev.ErrorMessage == "" {
		t.Error("expected error message recorded")
	}
	if ev.Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown", ev.Purpose)
	}
}

func TestWithLogging_SinkErrorDoesNotFailRequest(t *testing.T) {
	sink := &memorySink{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "mock", sink)

	if _, err := p.Generate(context.Background(), Request{User: "draft"}); err != nil {
		t.Fatalf("sink error leaked into request: %v", err)
	}
}

func TestWithLogging_NilSinkPassthrough(t *testing.T) {
	mock := NewMockProvider()
	if p := WithLogging(mock, "mock", nil); p != mock {
		t.Error("nil sink should return the provider unwrapped")
	}
}
