package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/quizforge/internal/llm"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// LLMEvent is one recorded LLM call.
type LLMEvent struct {
	ID           int64
	Timestamp    time.Time
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

// QueryOpts filters and paginates LLM event queries.
type QueryOpts struct {
	Limit      int       // max results (0 = unlimited)
	Before     int64     // id < Before
	Purpose    string    // exact purpose match
	FailedOnly bool      // only events where success = false
	From       time.Time // timestamp >= From
	To         time.Time // timestamp <= To
}

// AppendLLMEvent records one LLM call. Store satisfies llm.EventSink so the
// logging middleware can write here directly.
func (s *Store) AppendLLMEvent(ctx context.Context, ev llm.Event) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO llm_events
			(created_at, provider, model, purpose, input_tokens, output_tokens,
			 latency_ms, success, error_message, request_body, response_body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().Unix(), ev.Provider, ev.Model, ev.Purpose,
		ev.InputTokens, ev.OutputTokens, ev.LatencyMs,
		ev.Success, ev.ErrorMessage, ev.RequestBody, ev.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("append LLM event: %w", err)
	}
	return nil
}

// QueryLLMEvents returns events matching opts, newest first.
func (s *Store) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error) {
	var conds []string
	var args []any

	if opts.Before > 0 {
		conds = append(conds, "id < ?")
		args = append(args, opts.Before)
	}
	if opts.Purpose != "" {
		conds = append(conds, "purpose = ?")
		args = append(args, opts.Purpose)
	}
	if opts.FailedOnly {
		conds = append(conds, "success = 0")
	}
	if !opts.From.IsZero() {
		conds = append(conds, "created_at >= ?")
		args = append(args, opts.From.Unix())
	}
	if !opts.To.IsZero() {
		conds = append(conds, "created_at <= ?")
		args = append(args, opts.To.Unix())
	}

	query := "SELECT id, created_at, provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message, request_body, response_body FROM llm_events"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}
	defer rows.Close()

	var events []LLMEvent
	for rows.Next() {
		ev, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, rows.Err()
}

// GetLLMEvent returns one event by id, or ErrNotFound.
func (s *Store) GetLLMEvent(ctx context.Context, id int64) (*LLMEvent, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, provider, model, purpose, input_tokens, output_tokens,
		       latency_ms, success, error_message, request_body, response_body
		FROM llm_events WHERE id = ?`, id)

	ev, err := scanLLMEvent(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("LLM event %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

// LLMStats aggregates the event log for the stats command.
type LLMStats struct {
	TotalCalls   int
	Failures     int
	InputTokens  int64
	OutputTokens int64
	MeanLatency  time.Duration
	ByPurpose    map[string]int
}

// LLMStatsTotals computes aggregate statistics over the whole event log.
func (s *Store) LLMStatsTotals(ctx context.Context) (*LLMStats, error) {
	stats := &LLMStats{ByPurpose: map[string]int{}}

	var meanMs sql.NullFloat64
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*),
		       COALESCE(SUM(CASE WHEN success = 0 THEN 1 ELSE 0 END), 0),
		       COALESCE(SUM(input_tokens), 0),
		       COALESCE(SUM(output_tokens), 0),
		       AVG(latency_ms)
		FROM llm_events`).Scan(
		&stats.TotalCalls, &stats.Failures,
		&stats.InputTokens, &stats.OutputTokens, &meanMs,
	)
	if err != nil {
		return nil, fmt.Errorf("aggregate LLM events: %w", err)
	}
	if meanMs.Valid {
		stats.MeanLatency = time.Duration(meanMs.Float64) * time.Millisecond
	}

	rows, err := s.db.QueryContext(ctx, `SELECT purpose, COUNT(*) FROM llm_events GROUP BY purpose`)
	if err != nil {
		return nil, fmt.Errorf("group LLM events: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var purpose string
		var count int
		if err := rows.Scan(&purpose, &count); err != nil {
			return nil, err
		}
		stats.ByPurpose[purpose] = count
	}
	return stats, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLLMEvent(row rowScanner) (LLMEvent, error) {
	var ev LLMEvent
	var createdAt int64
	err := row.Scan(
		&ev.ID, &createdAt, &ev.Provider, &ev.Model, &ev.Purpose,
		&ev.InputTokens, &ev.OutputTokens, &ev.LatencyMs,
		&ev.Success, &ev.ErrorMessage, &ev.RequestBody, &ev.ResponseBody,
	)
	if err != nil {
		return LLMEvent{}, err
	}
	ev.Timestamp = time.Unix(createdAt, 0)
	return ev, nil
}
