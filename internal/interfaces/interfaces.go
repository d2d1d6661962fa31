package interfaces

import (
	"context"

	"pulse-ai/backend/internal/inference"
	"pulse-ai/backend/internal/model"
	"pulse-ai/backend/internal/service"
)

// This file defines the contracts the API layer depends on. Handlers take
// these interfaces instead of concrete services so they can be tested with
// mocks.

// ChatService is the contract for session and conversation logic.
type ChatService interface {
	SendMessage(ctx context.Context, req *service.SendMessageRequest) (*service.SendMessageResult, error)
	Create(ctx context.Context) string
	Get(ctx context.Context, chatID string) (*model.ChatSession, error)
	ListGrouped(ctx context.Context) []model.SessionGroup
	Rename(ctx context.Context, chatID, title string) error
	Delete(ctx context.Context, chatID string)
	SetActive(ctx context.Context, chatID string)
	ActiveID(ctx context.Context) string
}

// ModelService is the contract for the model catalogue.
type ModelService interface {
	List(ctx context.Context) ([]model.Model, error)
}

// SettingsService is the contract for UI preference persistence.
type SettingsService interface {
	Get(ctx context.Context) (*model.Settings, error)
	Save(ctx context.Context, settings *model.Settings) error
}

// PlaygroundService is the contract for the vision, file and voice
// pass-through endpoints.
type PlaygroundService interface {
	AnalyzeImageBase64(ctx context.Context, req *inference.VisionBase64Request) (string, error)
	AnalyzeImageURL(ctx context.Context, req *inference.VisionURLRequest) (string, error)
	ProcessFile(ctx context.Context, upload *inference.FileUpload) (*inference.FileResult, error)
	Transcribe(ctx context.Context, upload *inference.AudioUpload) (*inference.VoiceResult, error)
}
