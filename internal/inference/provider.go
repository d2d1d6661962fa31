// Package inference is the HTTP client for the upstream multi-modal API
// (chat completions, vision analysis, file processing, voice transcription).
// The upstream is treated as opaque: this package only knows the request and
// response shapes of its endpoints.
package inference

import (
	"context"
	"encoding/json"
	"io"

	"pulse-ai/backend/internal/model"
)

// Message is one turn in the conversation payload sent upstream.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is the body for POST /v1/chat/completions.
type ChatRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

// VisionBase64Request is the body for POST /vision/base64.
type VisionBase64Request struct {
	Base64Image string `json:"base64Image"`
	Query       string `json:"query"`
	Model       string `json:"model"`
}

// VisionURLRequest is the body for POST /vision/url.
type VisionURLRequest struct {
	ImageURL string `json:"imageUrl"`
	Query    string `json:"query"`
	Model    string `json:"model"`
}

// FileUpload describes a document sent to POST /process/file as multipart.
type FileUpload struct {
	Filename string
	Content  io.Reader
	Query    string
	Model    string
}

// FileResult is the response of POST /process/file.
type FileResult struct {
	Content          string          `json:"content"`
	ReasoningContent string          `json:"reasoningContent,omitempty"`
	Stats            json.RawMessage `json:"stats,omitempty"`
	Error            string          `json:"error,omitempty"`
}

// AudioUpload describes a recording sent to POST /voice as multipart.
type AudioUpload struct {
	Filename string
	Content  io.Reader
	Query    string
}

// VoiceResult is the response of POST /voice. The upstream answers with
// either `text` or `content` depending on whether a query was given.
type VoiceResult struct {
	Text    string          `json:"text,omitempty"`
	Content string          `json:"content,omitempty"`
	Stats   json.RawMessage `json:"stats,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Provider defines the operations the playground needs from the upstream API.
type Provider interface {
	ListModels(ctx context.Context) ([]model.Model, error)
	ChatCompletion(ctx context.Context, req *ChatRequest) (string, error)
	VisionBase64(ctx context.Context, req *VisionBase64Request) (string, error)
	VisionURL(ctx context.Context, req *VisionURLRequest) (string, error)
	ProcessFile(ctx context.Context, upload *FileUpload) (*FileResult, error)
	Transcribe(ctx context.Context, upload *AudioUpload) (*VoiceResult, error)
}
