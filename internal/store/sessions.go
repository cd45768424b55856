package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/quizforge/internal/question"
	"github.com/abhisek/quizforge/internal/scoring"
)

// Session is one assessment round: the generated batch, the learner's
// responses once submitted, and the derived analytics.
type Session struct {
	ID        string
	CreatedAt time.Time
	Domain    string
	Tier      question.Tier
	Mixed     bool
	Questions []question.Question
	Responses []scoring.Response
	Analytics *scoring.Analytics
}

// SessionSummary is the listing row for a session.
type SessionSummary struct {
	ID            string
	CreatedAt     time.Time
	Domain        string
	Tier          question.Tier
	Mixed         bool
	QuestionCount int
	Scored        bool
}

// SaveSession inserts a new session with its question batch. Responses and
// analytics are attached later by SaveResults.
func (s *Store) SaveSession(ctx context.Context, sess *Session) error {
	questions, err := json.Marshal(sess.Questions)
	if err != nil {
		return fmt.Errorf("marshal questions: %w", err)
	}

	createdAt := sess.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, created_at, domain, tier, mixed, questions)
		VALUES (?, ?, ?, ?, ?, ?)`,
		sess.ID, createdAt.Unix(), sess.Domain, string(sess.Tier), sess.Mixed, string(questions),
	)
	if err != nil {
		return fmt.Errorf("save session %s: %w", sess.ID, err)
	}
	return nil
}

// SaveResults attaches the learner's responses and the computed analytics
// to an existing session.
func (s *Store) SaveResults(ctx context.Context, id string, responses []scoring.Response, analytics *scoring.Analytics) error {
	respJSON, err := json.Marshal(responses)
	if err != nil {
		return fmt.Errorf("marshal responses: %w", err)
	}
	analyticsJSON, err := json.Marshal(analytics)
	if err != nil {
		return fmt.Errorf("marshal analytics: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET responses = ?, analytics = ? WHERE id = ?`,
		string(respJSON), string(analyticsJSON), id,
	)
	if err != nil {
		return fmt.Errorf("save results for %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return nil
}

// GetSession loads one session by id, or ErrNotFound.
func (s *Store) GetSession(ctx context.Context, id string) (*Session, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, created_at, domain, tier, mixed, questions, responses, analytics
		FROM sessions WHERE id = ?`, id)

	var sess Session
	var createdAt int64
	var tier, questions, responses, analytics string
	err := row.Scan(&sess.ID, &createdAt, &sess.Domain, &tier, &sess.Mixed, &questions, &responses, &analytics)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}

	sess.CreatedAt = time.Unix(createdAt, 0)
	sess.Tier = question.Tier(tier)
	if err := json.Unmarshal([]byte(questions), &sess.Questions); err != nil {
		return nil, fmt.Errorf("unmarshal questions for %s: %w", id, err)
	}
	if responses != "" {
		if err := json.Unmarshal([]byte(responses), &sess.Responses); err != nil {
			return nil, fmt.Errorf("unmarshal responses for %s: %w", id, err)
		}
	}
	if analytics != "" {
		if err := json.Unmarshal([]byte(analytics), &sess.Analytics); err != nil {
			return nil, fmt.Errorf("unmarshal analytics for %s: %w", id, err)
		}
	}
	return &sess, nil
}

// ListSessions returns session summaries, newest first.
func (s *Store) ListSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	query := `
		SELECT id, created_at, domain, tier, mixed,
		       json_array_length(questions), analytics != ''
		FROM sessions ORDER BY created_at DESC, id DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var sum SessionSummary
		var createdAt int64
		var tier string
		if err := rows.Scan(&sum.ID, &createdAt, &sum.Domain, &tier, &sum.Mixed, &sum.QuestionCount, &sum.Scored); err != nil {
			return nil, err
		}
		sum.CreatedAt = time.Unix(createdAt, 0)
		sum.Tier = question.Tier(tier)
		out = append(out, sum)
	}
	return out, rows.Err()
}
