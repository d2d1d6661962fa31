package service

import (
	"context"
	"fmt"

	app_errors "pulse-ai/backend/internal/errors"
	"pulse-ai/backend/internal/inference"
)

// PlaygroundService fronts the non-chat upstream endpoints (vision, file,
// voice). It translates transport failures into the application's upstream
// sentinel so the API layer maps them to a gateway error instead of a 500.
type PlaygroundService struct {
	llm inference.Provider
}

func NewPlaygroundService(llm inference.Provider) *PlaygroundService {
	return &PlaygroundService{llm: llm}
}

// AnalyzeImageBase64 runs a vision query over an inline base64 image.
func (s *PlaygroundService) AnalyzeImageBase64(ctx context.Context, req *inference.VisionBase64Request) (string, error) {
	reply, err := s.llm.VisionBase64(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", app_errors.ErrUpstream, err)
	}
	return reply, nil
}

// AnalyzeImageURL runs a vision query over a remote image URL.
func (s *PlaygroundService) AnalyzeImageURL(ctx context.Context, req *inference.VisionURLRequest) (string, error) {
	reply, err := s.llm.VisionURL(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", app_errors.ErrUpstream, err)
	}
	return reply, nil
}

// ProcessFile sends a document and its query upstream.
func (s *PlaygroundService) ProcessFile(ctx context.Context, upload *inference.FileUpload) (*inference.FileResult, error) {
	result, err := s.llm.ProcessFile(ctx, upload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app_errors.ErrUpstream, err)
	}
	return result, nil
}

// Transcribe sends an audio recording upstream, optionally with a query to
// answer about its content.
func (s *PlaygroundService) Transcribe(ctx context.Context, upload *inference.AudioUpload) (*inference.VoiceResult, error) {
	result, err := s.llm.Transcribe(ctx, upload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", app_errors.ErrUpstream, err)
	}
	return result, nil
}
