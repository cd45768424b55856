package llm

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"
)

// Event is the record of a single LLM call, appended to the event log by
// the logging decorator.
type Event struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// EventSink receives LLM call events. The store package provides the
// SQLite-backed implementation; tests use in-memory sinks.
type EventSink interface {
	AppendLLMEvent(ctx context.Context, ev Event) error
}

// LoggingProvider is a decorator that records every LLM call as an event.
type LoggingProvider struct {
	inner    Provider
	provider string
	sink     EventSink
}

// WithLogging wraps a Provider with event logging under the given provider
// name. A nil sink disables logging without changing behavior.
func WithLogging(p Provider, provider string, sink EventSink) Provider {
	if sink == nil {
		return p
	}
	return &LoggingProvider{inner: p, provider: provider, sink: sink}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	ev := Event{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		ev.InputTokens = resp.Usage.InputTokens
		ev.OutputTokens = resp.Usage.OutputTokens
		ev.Model = resp.Model
		ev.ResponseBody = string(resp.Content)
	}
	if err != nil {
		ev.ErrorMessage = err.Error()
	}

	// Event logging must never fail the request itself.
	if logErr := l.sink.AppendLLMEvent(ctx, ev); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM event: %v\n", logErr)
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// serializeRequest builds a readable representation of the request for the
// event log.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	b.WriteString("[user]\n")
	b.WriteString(req.User)
	b.WriteString("\n")

	if req.Schema != nil {
		fmt.Fprintf(&b, "\n[schema: %s]\n", req.Schema.Name)
	}

	return b.String()
}
