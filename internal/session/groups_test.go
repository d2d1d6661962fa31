package session_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse-ai/backend/internal/model"
	"pulse-ai/backend/internal/session"
	"pulse-ai/backend/internal/storage"
)

// seedStore writes the given sessions straight into storage and loads a
// store over them, so tests control updatedAt values exactly.
func seedStore(t *testing.T, sessions []model.ChatSession) *session.Store {
	t.Helper()
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	raw, err := json.Marshal(sessions)
	require.NoError(t, err)
	require.NoError(t, mem.Put(ctx, "pulse-chat-sessions", raw))
	return session.NewStore(ctx, mem)
}

func TestGroupByRecency(t *testing.T) {
	now := time.Date(2026, time.August, 28, 15, 0, 0, 0, time.UTC)
	startOfToday := time.Date(2026, time.August, 28, 0, 0, 0, 0, time.UTC)

	ms := func(t time.Time) int64 { return t.UnixMilli() }

	sessions := []model.ChatSession{
		{ID: "today-am", Title: "a", UpdatedAt: ms(now.Add(-6 * time.Hour))},
		{ID: "today-start", Title: "b", UpdatedAt: ms(startOfToday)},
		{ID: "yesterday-late", Title: "c", UpdatedAt: ms(startOfToday.Add(-time.Minute))},
		{ID: "three-days", Title: "d", UpdatedAt: ms(startOfToday.AddDate(0, 0, -3))},
		{ID: "week-boundary", Title: "e", UpdatedAt: ms(startOfToday.AddDate(0, 0, -7).Add(time.Millisecond))},
		{ID: "old", Title: "f", UpdatedAt: ms(startOfToday.AddDate(0, 0, -7))},
		{ID: "ancient", Title: "g", UpdatedAt: ms(startOfToday.AddDate(0, 0, -30))},
		// No updatedAt: createdAt decides the bucket.
		{ID: "created-only", Title: "h", CreatedAt: ms(now.Add(-time.Hour))},
	}

	store := seedStore(t, sessions)
	groups := store.GroupByRecency(now)

	byLabel := map[string][]string{}
	total := 0
	for _, group := range groups {
		var ids []string
		for _, sess := range group.Sessions {
			ids = append(ids, sess.ID)
		}
		byLabel[group.Label] = ids
		total += len(ids)
	}

	// Exhaustive and disjoint: every session lands in exactly one bucket.
	assert.Equal(t, len(sessions), total)

	assert.Equal(t, []string{"today-am", "today-start", "created-only"}, byLabel[session.GroupToday],
		"today bucket preserves collection order")
	assert.Equal(t, []string{"yesterday-late"}, byLabel[session.GroupYesterday])
	assert.Equal(t, []string{"three-days", "week-boundary"}, byLabel[session.GroupWeek])
	assert.Equal(t, []string{"old", "ancient"}, byLabel[session.GroupOlder],
		"exactly seven days ago falls out of the week bucket")
}

func TestGroupByRecency_OmitsEmptyBuckets(t *testing.T) {
	now := time.Date(2026, time.August, 28, 15, 0, 0, 0, time.UTC)

	store := seedStore(t, []model.ChatSession{
		{ID: "only", Title: "x", UpdatedAt: now.Add(-time.Hour).UnixMilli()},
	})

	groups := store.GroupByRecency(now)
	require.Len(t, groups, 1)
	assert.Equal(t, session.GroupToday, groups[0].Label)
}

func TestGroupByRecency_EmptyCollection(t *testing.T) {
	store := seedStore(t, []model.ChatSession{})
	assert.Empty(t, store.GroupByRecency(time.Now()))
}
