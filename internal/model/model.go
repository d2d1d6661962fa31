package model

// ChatMessage is a single turn in a conversation. Timestamps are epoch
// milliseconds so the persisted JSON stays compatible with payloads written
// by earlier versions of the playground.
type ChatMessage struct {
	Role      string `json:"role"` // "user" or "assistant"
	Content   string `json:"content"`
	Timestamp int64  `json:"timestamp"`
}

// ChatSession is one saved conversation thread.
type ChatSession struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Messages  []ChatMessage `json:"messages"`
	CreatedAt int64         `json:"createdAt"`
	UpdatedAt int64         `json:"updatedAt"`
}

// SessionGroup is a recency bucket of sessions for sidebar display.
// Buckets with no members are omitted from API responses entirely.
type SessionGroup struct {
	Label    string         `json:"label"`
	Sessions []*ChatSession `json:"sessions"`
}

// Model describes one entry from the upstream model catalogue.
type Model struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Vision bool   `json:"vision"`
}

// Settings holds the UI preferences persisted alongside the sessions.
type Settings struct {
	Theme  string `json:"theme"`
	Accent string `json:"accent"`
}
