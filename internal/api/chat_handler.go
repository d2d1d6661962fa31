package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	app_errors "pulse-ai/backend/internal/errors"
	"pulse-ai/backend/internal/interfaces"
	"pulse-ai/backend/internal/model"
	"pulse-ai/backend/internal/service"
)

// ChatHandler serves the session CRUD and message endpoints, plus the UI
// settings endpoints.
type ChatHandler struct {
	chats    interfaces.ChatService
	settings interfaces.SettingsService
}

func NewChatHandler(chats interfaces.ChatService, settings interfaces.SettingsService) *ChatHandler {
	return &ChatHandler{chats: chats, settings: settings}
}

// GetChats returns the session collection grouped by recency.
// @Summary List chat sessions grouped by recency
// @Tags chats
// @Produce json
// @Success 200 {array} model.SessionGroup
// @Router /api/v1/chats [get]
func (h *ChatHandler) GetChats(w http.ResponseWriter, r *http.Request) {
	groups := h.chats.ListGrouped(r.Context())
	if groups == nil {
		groups = []model.SessionGroup{}
	}
	respondWithJSON(w, http.StatusOK, groups)
}

// CreateChat starts a new empty session and makes it active.
// @Summary Create a chat session
// @Tags chats
// @Produce json
// @Success 201 {object} model.ChatSession
// @Router /api/v1/chats [post]
func (h *ChatHandler) CreateChat(w http.ResponseWriter, r *http.Request) {
	id := h.chats.Create(r.Context())
	sess, err := h.chats.Get(r.Context(), id)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, sess)
}

// GetChat returns one session with its full message history.
// @Summary Get a chat session
// @Tags chats
// @Produce json
// @Param chatID path string true "Chat ID"
// @Success 200 {object} model.ChatSession
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/chats/{chatID} [get]
func (h *ChatHandler) GetChat(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")
	sess, err := h.chats.Get(r.Context(), chatID)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, sess)
}

// UpdateChatTitle renames a session.
// @Summary Rename a chat session
// @Tags chats
// @Accept json
// @Produce json
// @Param chatID path string true "Chat ID"
// @Param request body UpdateTitleRequest true "New title"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/chats/{chatID}/title [put]
func (h *ChatHandler) UpdateChatTitle(w http.ResponseWriter, r *http.Request) {
	chatID := chi.URLParam(r, "chatID")

	var req UpdateTitleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	if err := h.chats.Rename(r.Context(), chatID, req.Title); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// DeleteChat removes a session. Deleting an unknown id still reports success,
// matching the store's no-op semantics.
// @Summary Delete a chat session
// @Tags chats
// @Produce json
// @Param chatID path string true "Chat ID"
// @Success 200 {object} StatusResponse
// @Router /api/v1/chats/{chatID} [delete]
func (h *ChatHandler) DeleteChat(w http.ResponseWriter, r *http.Request) {
	h.chats.Delete(r.Context(), chi.URLParam(r, "chatID"))
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// SetActiveChat selects the session new messages default to.
// @Summary Select the active chat session
// @Tags chats
// @Accept json
// @Produce json
// @Param request body SetActiveRequest true "Chat to select; empty id clears the selection"
// @Success 200 {object} StatusResponse
// @Router /api/v1/chats/active [put]
func (h *ChatHandler) SetActiveChat(w http.ResponseWriter, r *http.Request) {
	var req SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	h.chats.SetActive(r.Context(), req.ChatID)
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}

// SendMessage appends a user message and returns the assistant's turn. With
// no chat_id a new session is created first. Upstream failures come back as
// an inline error turn, not as a request failure.
// @Summary Send a message
// @Tags chats
// @Accept json
// @Produce json
// @Param request body service.SendMessageRequest true "Message to send"
// @Success 200 {object} service.SendMessageResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/chats/messages [post]
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req service.SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := validateRequest(&req); err != nil {
		respondWithError(w, err)
		return
	}

	result, err := h.chats.SendMessage(r.Context(), &req)
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, result)
}

// GetSettings returns the stored UI preferences.
// @Summary Get UI settings
// @Tags settings
// @Produce json
// @Success 200 {object} model.Settings
// @Router /api/v1/settings [get]
func (h *ChatHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.settings.Get(r.Context())
	if err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, settings)
}

// UpdateSettings persists the UI preferences.
// @Summary Update UI settings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body model.Settings true "Settings"
// @Success 200 {object} StatusResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/settings [post]
func (h *ChatHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var settings model.Settings
	if err := json.NewDecoder(r.Body).Decode(&settings); err != nil {
		respondWithError(w, fmt.Errorf("%w: invalid request body", app_errors.ErrValidation))
		return
	}
	if err := h.settings.Save(r.Context(), &settings); err != nil {
		respondWithError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, StatusResponse{Status: "ok"})
}
