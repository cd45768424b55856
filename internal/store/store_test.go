package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizforge/internal/llm"
	"github.com/abhisek/quizforge/internal/question"
	"github.com/abhisek/quizforge/internal/scoring"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenMigrates(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"llm_events", "sessions"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
		assert.Equal(t, table, name)
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}
	for _, tt := range tests {
		var got string
		require.NoError(t, s.DB().QueryRow("PRAGMA "+tt.pragma).Scan(&got))
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	events := []llm.Event{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "question-draft", InputTokens: 100, OutputTokens: 50, LatencyMs: 300, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "question-draft", LatencyMs: 100, Success: false, ErrorMessage: "rate limited"},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "summary", InputTokens: 40, OutputTokens: 20, LatencyMs: 200, Success: true},
	}
	for _, ev := range events {
		require.NoError(t, s.AppendLLMEvent(ctx, ev))
	}

	all, err := s.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Newest first.
	assert.Equal(t, "summary", all[0].Purpose)

	failed, err := s.QueryLLMEvents(ctx, QueryOpts{FailedOnly: true})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "rate limited", failed[0].ErrorMessage)

	drafts, err := s.QueryLLMEvents(ctx, QueryOpts{Purpose: "question-draft", Limit: 1})
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	paged, err := s.QueryLLMEvents(ctx, QueryOpts{Before: all[0].ID})
	require.NoError(t, err)
	assert.Len(t, paged, 2)
}

func TestLLMEventGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendLLMEvent(ctx, llm.Event{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "question-draft",
		Success: true, RequestBody: "[user]\nprompt", ResponseBody: `{"ok":true}`,
	}))

	all, err := s.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, all, 1)

	ev, err := s.GetLLMEvent(ctx, all[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "[user]\nprompt", ev.RequestBody)
	assert.Equal(t, `{"ok":true}`, ev.ResponseBody)

	_, err = s.GetLLMEvent(ctx, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLLMStatsTotals(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.AppendLLMEvent(ctx, llm.Event{Provider: "gemini", Purpose: "question-draft", InputTokens: 100, OutputTokens: 60, LatencyMs: 200, Success: true}))
	require.NoError(t, s.AppendLLMEvent(ctx, llm.Event{Provider: "gemini", Purpose: "question-draft", InputTokens: 120, OutputTokens: 40, LatencyMs: 400, Success: false}))

	stats, err := s.LLMStatsTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalCalls)
	assert.Equal(t, 1, stats.Failures)
	assert.Equal(t, int64(220), stats.InputTokens)
	assert.Equal(t, int64(100), stats.OutputTokens)
	assert.Equal(t, 2, stats.ByPurpose["question-draft"])
}

func sessionFixture() *Session {
	return &Session{
		ID:     "sess-1",
		Domain: "computer-networks",
		Tier:   question.TierModerate,
		Questions: []question.Question{
			{
				ID:            "q1",
				Prompt:        "Which record maps a hostname to an IPv4 address?",
				Options:       []string{"A) A", "B) CNAME", "C) MX", "D) TXT"},
				CorrectAnswer: "A",
				Topic:         "DNS",
				Tier:          question.TierModerate,
				Segment:       question.SegmentMCQ,
			},
		},
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, sessionFixture()))

	got, err := s.GetSession(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, "computer-networks", got.Domain)
	require.Len(t, got.Questions, 1)
	assert.Equal(t, "DNS", got.Questions[0].Topic)
	assert.Nil(t, got.Analytics)
	assert.Empty(t, got.Responses)
}

func TestSessionSaveResults(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sess := sessionFixture()
	require.NoError(t, s.SaveSession(ctx, sess))

	responses := []scoring.Response{
		scoring.BuildResponse(sess.Questions[0], "A", "", 80, 12, 0),
	}
	analytics, err := scoring.Score(sess.Questions, responses, scoring.Options{})
	require.NoError(t, err)

	require.NoError(t, s.SaveResults(ctx, sess.ID, responses, analytics))

	got, err := s.GetSession(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, got.Responses, 1)
	assert.True(t, got.Responses[0].Correct)
	require.NotNil(t, got.Analytics)
	assert.InDelta(t, 100, got.Analytics.Accuracy, 0.001)

	err = s.SaveResults(ctx, "missing", responses, analytics)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListSessions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := sessionFixture()
	require.NoError(t, s.SaveSession(ctx, first))

	second := sessionFixture()
	second.ID = "sess-2"
	second.Mixed = true
	require.NoError(t, s.SaveSession(ctx, second))

	responses := []scoring.Response{scoring.BuildResponse(first.Questions[0], "A", "", 80, 12, 0)}
	analytics, err := scoring.Score(first.Questions, responses, scoring.Options{})
	require.NoError(t, err)
	require.NoError(t, s.SaveResults(ctx, first.ID, responses, analytics))

	sums, err := s.ListSessions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, sums, 2)

	byID := map[string]SessionSummary{}
	for _, sum := range sums {
		byID[sum.ID] = sum
	}
	assert.True(t, byID["sess-1"].Scored)
	assert.False(t, byID["sess-2"].Scored)
	assert.True(t, byID["sess-2"].Mixed)
	assert.Equal(t, 1, byID["sess-1"].QuestionCount)
}
