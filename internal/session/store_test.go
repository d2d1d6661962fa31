package session_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse-ai/backend/internal/model"
	"pulse-ai/backend/internal/session"
	"pulse-ai/backend/internal/storage"
)

func newStore(t *testing.T) (*session.Store, storage.Store) {
	t.Helper()
	mem := storage.NewMemoryStore()
	return session.NewStore(context.Background(), mem), mem
}

func TestStore_Create(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	first := store.Create(ctx)
	second := store.Create(ctx)

	assert.NotEqual(t, first, second, "session ids must be unique")
	assert.Equal(t, second, store.ActiveID(), "a new session becomes active")

	sessions := store.Sessions()
	require.Len(t, sessions, 2)
	assert.Equal(t, second, sessions[0].ID, "new sessions are inserted at the head")
	assert.Equal(t, "New chat", sessions[0].Title)
	assert.Empty(t, sessions[0].Messages)
	assert.Equal(t, sessions[0].CreatedAt, sessions[0].UpdatedAt)
}

func TestStore_UniqueIDsAcrossCreateDelete(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		id := store.Create(ctx)
		assert.False(t, seen[id], "id %s was reused", id)
		seen[id] = true
		if i%3 == 0 {
			store.Delete(ctx, id)
		}
	}

	ids := map[string]bool{}
	for _, sess := range store.Sessions() {
		assert.False(t, ids[sess.ID], "collection contains duplicate id %s", sess.ID)
		ids[sess.ID] = true
	}
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deleting the active session clears the pointer", func(t *testing.T) {
		store, _ := newStore(t)
		id := store.Create(ctx)

		store.Delete(ctx, id)

		assert.Empty(t, store.ActiveID())
		assert.Nil(t, store.Active())
		assert.Empty(t, store.Sessions())
	})

	t.Run("deleting another session keeps the pointer", func(t *testing.T) {
		store, _ := newStore(t)
		other := store.Create(ctx)
		active := store.Create(ctx)

		store.Delete(ctx, other)

		assert.Equal(t, active, store.ActiveID())
		assert.Len(t, store.Sessions(), 1)
	})

	t.Run("deleting an unknown id is a no-op", func(t *testing.T) {
		store, _ := newStore(t)
		id := store.Create(ctx)

		store.Delete(ctx, "no-such-id")

		assert.Equal(t, id, store.ActiveID())
		assert.Len(t, store.Sessions(), 1)
	})
}

func TestStore_AddMessage_TitleDerivation(t *testing.T) {
	ctx := context.Background()

	t.Run("short user message becomes the title verbatim", func(t *testing.T) {
		store, _ := newStore(t)
		id := store.Create(ctx)

		content := "Explain recursion in one sentence"
		require.LessOrEqual(t, len(content), 40)
		store.AddMessage(ctx, model.ChatMessage{Role: "user", Content: content, Timestamp: 1}, id)

		assert.Equal(t, content, store.Get(id).Title)
	})

	t.Run("long user message is truncated with a marker", func(t *testing.T) {
		store, _ := newStore(t)
		id := store.Create(ctx)

		content := strings.Repeat("a", 50)
		store.AddMessage(ctx, model.ChatMessage{Role: "user", Content: content, Timestamp: 1}, id)

		assert.Equal(t, strings.Repeat("a", 40)+"...", store.Get(id).Title)
	})

	t.Run("exactly forty characters carries no marker", func(t *testing.T) {
		store, _ := newStore(t)
		id := store.Create(ctx)

		content := strings.Repeat("b", 40)
		store.AddMessage(ctx, model.ChatMessage{Role: "user", Content: content, Timestamp: 1}, id)

		assert.Equal(t, content, store.Get(id).Title)
	})

	t.Run("first assistant message never sets the title", func(t *testing.T) {
		store, _ := newStore(t)
		id := store.Create(ctx)

		store.AddMessage(ctx, model.ChatMessage{Role: "assistant", Content: "hello there", Timestamp: 1}, id)

		assert.Equal(t, "New chat", store.Get(id).Title)
	})

	t.Run("second user message does not overwrite the title", func(t *testing.T) {
		store, _ := newStore(t)
		id := store.Create(ctx)

		store.AddMessage(ctx, model.ChatMessage{Role: "user", Content: "first", Timestamp: 1}, id)
		store.AddMessage(ctx, model.ChatMessage{Role: "user", Content: "second", Timestamp: 2}, id)

		assert.Equal(t, "first", store.Get(id).Title)
	})
}

func TestStore_AddMessage_TargetResolution(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit target wins over the active session", func(t *testing.T) {
		store, _ := newStore(t)
		target := store.Create(ctx)
		active := store.Create(ctx)

		ok := store.AddMessage(ctx, model.ChatMessage{Role: "user", Content: "hi", Timestamp: 1}, target)

		require.True(t, ok)
		assert.Len(t, store.Get(target).Messages, 1)
		assert.Empty(t, store.Get(active).Messages)
	})

	t.Run("falls back to the active session", func(t *testing.T) {
		store, _ := newStore(t)
		id := store.Create(ctx)

		ok := store.AddMessage(ctx, model.ChatMessage{Role: "user", Content: "hi", Timestamp: 1}, "")

		require.True(t, ok)
		assert.Len(t, store.Get(id).Messages, 1)
	})

	t.Run("no destination resolves to a no-op", func(t *testing.T) {
		store, _ := newStore(t)
		id := store.Create(ctx)
		store.SetActive(ctx, "")

		ok := store.AddMessage(ctx, model.ChatMessage{Role: "user", Content: "hi", Timestamp: 1}, "unknown")

		assert.False(t, ok)
		assert.Empty(t, store.Get(id).Messages)
	})
}

func TestStore_MessagesKeepInsertionOrder(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	id := store.Create(ctx)

	for _, content := range []string{"one", "two", "three"} {
		store.AddMessage(ctx, model.ChatMessage{Role: "user", Content: content, Timestamp: 1}, id)
	}

	messages := store.Get(id).Messages
	require.Len(t, messages, 3)
	assert.Equal(t, "one", messages[0].Content)
	assert.Equal(t, "two", messages[1].Content)
	assert.Equal(t, "three", messages[2].Content)
}

func TestStore_Rename(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	id := store.Create(ctx)

	store.Rename(ctx, id, "My research thread")
	assert.Equal(t, "My research thread", store.Get(id).Title)

	// Unknown ids are ignored.
	store.Rename(ctx, "no-such-id", "whatever")
	assert.Len(t, store.Sessions(), 1)
}

func TestStore_SetActive(t *testing.T) {
	ctx := context.Background()
	store, _ := newStore(t)
	first := store.Create(ctx)
	store.Create(ctx)

	store.SetActive(ctx, first)
	assert.Equal(t, first, store.ActiveID())

	// An id that does not resolve clears the pointer instead of dangling.
	store.SetActive(ctx, "no-such-id")
	assert.Empty(t, store.ActiveID())
}

func TestStore_PersistenceRoundTrip(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()

	store := session.NewStore(ctx, mem)
	id := store.Create(ctx)
	store.AddMessage(ctx, model.ChatMessage{Role: "user", Content: "hello", Timestamp: 10}, id)
	store.AddMessage(ctx, model.ChatMessage{Role: "assistant", Content: "hi!", Timestamp: 20}, id)
	store.Rename(ctx, id, "Greetings")

	reloaded := session.NewStore(ctx, mem)

	assert.Equal(t, store.Sessions(), reloaded.Sessions())
	assert.Equal(t, id, reloaded.ActiveID(), "active pointer survives a reload")
}

func TestStore_LoadFiltersLegacyMockReplies(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()

	raw := `[{
		"id": "legacy",
		"title": "Old chat",
		"messages": [
			{"role": "user", "content": "hello", "timestamp": 1},
			{"role": "assistant", "content": "This is a mock response. Connect your API endpoint to get real completions.", "timestamp": 2},
			{"role": "assistant", "content": "a real reply", "timestamp": 3}
		],
		"createdAt": 1,
		"updatedAt": 3
	}]`
	require.NoError(t, mem.Put(ctx, "pulse-chat-sessions", []byte(raw)))

	store := session.NewStore(ctx, mem)

	sess := store.Get("legacy")
	require.NotNil(t, sess)
	require.Len(t, sess.Messages, 2)
	assert.Equal(t, "hello", sess.Messages[0].Content)
	assert.Equal(t, "a real reply", sess.Messages[1].Content)
}

func TestStore_LoadTreatsCorruptDataAsEmpty(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	require.NoError(t, mem.Put(ctx, "pulse-chat-sessions", []byte("{not json")))

	store := session.NewStore(ctx, mem)

	assert.Empty(t, store.Sessions())
	assert.Empty(t, store.ActiveID())
}

func TestStore_LoadDropsDanglingActivePointer(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	require.NoError(t, mem.Put(ctx, "pulse-chat-sessions", []byte("[]")))
	require.NoError(t, mem.Put(ctx, "pulse-active-chat", []byte("ghost")))

	store := session.NewStore(ctx, mem)

	assert.Empty(t, store.ActiveID())
}
