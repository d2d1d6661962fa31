package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	app_errors "pulse-ai/backend/internal/errors"
	"pulse-ai/backend/internal/inference"
	"pulse-ai/backend/internal/model"
	"pulse-ai/backend/internal/session"
)

// ChatService orchestrates a conversation turn: it appends the user message
// to the session store, sends the full history upstream and appends the
// assistant's reply (or an inline error turn) back into the store.
type ChatService struct {
	store *session.Store
	llm   inference.Provider
}

// SendMessageRequest is the payload for sending one message. An empty ChatID
// means "start a new session".
type SendMessageRequest struct {
	ChatID    string `json:"chat_id"`
	Content   string `json:"content" validate:"required"`
	Model     string `json:"model" validate:"required"`
	MaxTokens int    `json:"max_tokens,omitempty"`
}

// SendMessageResult carries the appended assistant turn. UpstreamError is
// set when the turn is an inline failure notice rather than a real reply;
// the session itself is always left in a consistent, persisted state.
type SendMessageResult struct {
	ChatID        string            `json:"chat_id"`
	Reply         model.ChatMessage `json:"reply"`
	UpstreamError string            `json:"upstream_error,omitempty"`
}

func NewChatService(store *session.Store, llm inference.Provider) *ChatService {
	return &ChatService{store: store, llm: llm}
}

// SendMessage processes one conversation turn. Upstream failures never
// corrupt the store: the user turn stays appended and the failure is
// recorded as an assistant turn, the way the playground displays it.
func (s *ChatService) SendMessage(ctx context.Context, req *SendMessageRequest) (*SendMessageResult, error) {
	chatID := req.ChatID
	if chatID == "" {
		chatID = s.store.Create(ctx)
	} else if s.store.Get(chatID) == nil {
		return nil, fmt.Errorf("%w: chat %s", app_errors.ErrNotFound, chatID)
	}

	userMsg := model.ChatMessage{Role: "user", Content: req.Content, Timestamp: time.Now().UnixMilli()}
	s.store.AddMessage(ctx, userMsg, chatID)

	sess := s.store.Get(chatID)
	history := make([]inference.Message, 0, len(sess.Messages))
	for _, msg := range sess.Messages {
		history = append(history, inference.Message{Role: msg.Role, Content: msg.Content})
	}

	reply, err := s.llm.ChatCompletion(ctx, &inference.ChatRequest{
		Model:     req.Model,
		Messages:  history,
		MaxTokens: req.MaxTokens,
	})

	assistantMsg := model.ChatMessage{Role: "assistant", Timestamp: time.Now().UnixMilli()}
	result := &SendMessageResult{ChatID: chatID}
	if err != nil {
		slog.Warn("Chat completion failed", "chat_id", chatID, "error", err)
		assistantMsg.Content = "Error: " + err.Error()
		result.UpstreamError = err.Error()
	} else {
		assistantMsg.Content = reply
	}
	s.store.AddMessage(ctx, assistantMsg, chatID)
	result.Reply = assistantMsg
	return result, nil
}

// Create starts a new empty session and returns its id.
func (s *ChatService) Create(ctx context.Context) string {
	return s.store.Create(ctx)
}

// Get returns one session with its messages.
func (s *ChatService) Get(_ context.Context, chatID string) (*model.ChatSession, error) {
	sess := s.store.Get(chatID)
	if sess == nil {
		return nil, fmt.Errorf("%w: chat %s", app_errors.ErrNotFound, chatID)
	}
	return sess, nil
}

// ListGrouped returns the collection partitioned into recency buckets.
func (s *ChatService) ListGrouped(_ context.Context) []model.SessionGroup {
	return s.store.GroupByRecency(time.Now())
}

// Rename validates and applies a manual title change. Empty titles are
// rejected here, before they can reach the store.
func (s *ChatService) Rename(ctx context.Context, chatID, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("%w: title cannot be empty", app_errors.ErrValidation)
	}
	if s.store.Get(chatID) == nil {
		return fmt.Errorf("%w: chat %s", app_errors.ErrNotFound, chatID)
	}
	s.store.Rename(ctx, chatID, title)
	return nil
}

// Delete removes a session. Unknown ids are not an error.
func (s *ChatService) Delete(ctx context.Context, chatID string) {
	s.store.Delete(ctx, chatID)
}

// SetActive selects the session new messages default to, or clears the
// selection when chatID is empty.
func (s *ChatService) SetActive(ctx context.Context, chatID string) {
	s.store.SetActive(ctx, chatID)
}

// ActiveID returns the id of the selected session, or "".
func (s *ChatService) ActiveID(_ context.Context) string {
	return s.store.ActiveID()
}
