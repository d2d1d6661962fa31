// Package session owns the canonical list of chat sessions and the active
// session pointer. Every mutation re-serializes the whole collection to the
// underlying key-value store, so a process restart reconstructs exactly the
// state the UI last saw.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"pulse-ai/backend/internal/model"
	"pulse-ai/backend/internal/storage"
)

const (
	// Storage keys match the ones earlier builds of the web client wrote
	// to browser storage, so exported payloads round-trip.
	sessionsKey = "pulse-chat-sessions"
	activeKey   = "pulse-active-chat"

	defaultTitle = "New chat"

	// titleMaxLen is the number of leading characters of the first user
	// message used as the auto-derived session title.
	titleMaxLen = 40
	titleMarker = "..."
)

// Store holds the session collection in memory and mirrors it to durable
// storage. It is safe for concurrent use by HTTP handlers.
type Store struct {
	mu       sync.Mutex
	storage  storage.Store
	now      func() time.Time
	sessions []*model.ChatSession
	activeID string
}

// NewStore builds a Store and loads any previously persisted collection.
// Stored data that fails to parse is treated as an empty collection rather
// than an error; losing a corrupt history beats refusing to start.
func NewStore(ctx context.Context, st storage.Store) *Store {
	s := &Store{storage: st, now: time.Now}
	s.load(ctx)
	return s
}

func (s *Store) load(ctx context.Context) {
	raw, err := s.storage.Get(ctx, sessionsKey)
	if err == nil {
		var sessions []*model.ChatSession
		if jsonErr := json.Unmarshal(raw, &sessions); jsonErr != nil {
			slog.Warn("Discarding unparseable session collection", "error", jsonErr)
			sessions = nil
		}
		applyLoadMigrations(sessions)
		s.sessions = sessions
	} else if !errors.Is(err, storage.ErrNotFound) {
		slog.Warn("Could not read session collection, starting empty", "error", err)
	}

	if raw, err := s.storage.Get(ctx, activeKey); err == nil {
		id := string(raw)
		if s.find(id) != nil {
			s.activeID = id
		}
	}
}

// Create builds a new empty session, inserts it at the head of the
// collection, makes it active and returns its id. It always succeeds.
func (s *Store) Create(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UnixMilli()
	sess := &model.ChatSession{
		ID:        uuid.NewString(),
		Title:     defaultTitle,
		Messages:  []model.ChatMessage{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.sessions = append([]*model.ChatSession{sess}, s.sessions...)
	s.activeID = sess.ID
	s.persist(ctx)
	s.persistActive(ctx)
	return sess.ID
}

// Delete removes the session with the given id. Deleting an unknown id is a
// no-op. If the deleted session was active, the active pointer is cleared.
func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.sessions[:0]
	removed := false
	for _, sess := range s.sessions {
		if sess.ID == id {
			removed = true
			continue
		}
		kept = append(kept, sess)
	}
	if !removed {
		return
	}
	s.sessions = kept
	s.persist(ctx)
	if s.activeID == id {
		s.activeID = ""
		s.persistActive(ctx)
	}
}

// Rename overwrites the title of the session with the given id and refreshes
// its updatedAt. Unknown ids are a no-op. Validation of the title (notably
// rejecting empty strings) is the caller's responsibility.
func (s *Store) Rename(ctx context.Context, id, title string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.find(id)
	if sess == nil {
		return
	}
	sess.Title = title
	sess.UpdatedAt = s.now().UnixMilli()
	s.persist(ctx)
}

// AddMessage appends a message to the session with targetID, or to the active
// session when targetID is empty. When neither resolves the call is a no-op
// and returns false. The first user message of a session also sets its title.
func (s *Store) AddMessage(ctx context.Context, msg model.ChatMessage, targetID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.find(targetID)
	if sess == nil {
		sess = s.find(s.activeID)
	}
	if sess == nil {
		return false
	}

	if len(sess.Messages) == 0 && msg.Role == "user" {
		sess.Title = deriveTitle(msg.Content)
	}
	sess.Messages = append(sess.Messages, msg)
	sess.UpdatedAt = s.now().UnixMilli()
	s.persist(ctx)
	return true
}

// SetActive points the store at the session with the given id. An empty id,
// or an id that does not resolve to an existing session, clears the pointer.
func (s *Store) SetActive(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" && s.find(id) == nil {
		id = ""
	}
	if s.activeID == id {
		return
	}
	s.activeID = id
	s.persistActive(ctx)
}

// Get returns a copy of the session with the given id, or nil.
func (s *Store) Get(id string) *model.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSession(s.find(id))
}

// Active returns a copy of the active session, or nil when none is selected.
func (s *Store) Active() *model.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSession(s.find(s.activeID))
}

// ActiveID returns the id of the active session, or "".
func (s *Store) ActiveID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeID
}

// Sessions returns a copy of the collection in its canonical order
// (head-first, most recently created first).
func (s *Store) Sessions() []*model.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*model.ChatSession, len(s.sessions))
	for i, sess := range s.sessions {
		out[i] = cloneSession(sess)
	}
	return out
}

// find must be called with the lock held. An empty id never matches.
func (s *Store) find(id string) *model.ChatSession {
	if id == "" {
		return nil
	}
	for _, sess := range s.sessions {
		if sess.ID == id {
			return sess
		}
	}
	return nil
}

// persist writes the whole collection. Must be called with the lock held.
// Write failures are logged, never surfaced: the in-memory state is already
// consistent and the next mutation retries the full write anyway.
func (s *Store) persist(ctx context.Context) {
	raw, err := json.Marshal(s.sessions)
	if err != nil {
		slog.Error("Failed to marshal session collection", "error", err)
		return
	}
	if err := s.storage.Put(ctx, sessionsKey, raw); err != nil {
		slog.Warn("Failed to persist session collection", "error", err)
	}
}

func (s *Store) persistActive(ctx context.Context) {
	var err error
	if s.activeID == "" {
		err = s.storage.Delete(ctx, activeKey)
	} else {
		err = s.storage.Put(ctx, activeKey, []byte(s.activeID))
	}
	if err != nil {
		slog.Warn("Failed to persist active session id", "error", err)
	}
}

// deriveTitle takes the first titleMaxLen characters of the content, with a
// truncation marker when the content is longer.
func deriveTitle(content string) string {
	runes := []rune(content)
	if len(runes) <= titleMaxLen {
		return content
	}
	return string(runes[:titleMaxLen]) + titleMarker
}

func cloneSession(sess *model.ChatSession) *model.ChatSession {
	if sess == nil {
		return nil
	}
	out := *sess
	out.Messages = make([]model.ChatMessage, len(sess.Messages))
	copy(out.Messages, sess.Messages)
	return &out
}
