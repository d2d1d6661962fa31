package service

import (
	"context"
	"log/slog"

	"pulse-ai/backend/internal/inference"
	"pulse-ai/backend/internal/model"
)

// fallbackModels is served when the upstream catalogue is unreachable,
// typically because the host has not allow-listed this deployment's IP yet.
var fallbackModels = []model.Model{
	{ID: "google/gemma-3-27b", Name: "Gemma 3 27B", Vision: true},
	{ID: "qwen/qwen3-vl-30b", Name: "Qwen3 VL 30B", Vision: true},
	{ID: "openai/gpt-oss-120b", Name: "GPT-OSS 120B", Vision: false},
}

// ModelService exposes the upstream model catalogue.
type ModelService struct {
	llm inference.Provider
}

func NewModelService(llm inference.Provider) *ModelService {
	return &ModelService{llm: llm}
}

// List returns the upstream catalogue, or the fallback catalogue when the
// upstream fails or reports no models. Listing never errors out; the
// playground always has something to select.
func (s *ModelService) List(ctx context.Context) ([]model.Model, error) {
	models, err := s.llm.ListModels(ctx)
	if err != nil {
		slog.Warn("Could not list upstream models, serving fallback catalogue", "error", err)
		return fallbackModels, nil
	}
	if len(models) == 0 {
		slog.Warn("Upstream returned no models, serving fallback catalogue")
		return fallbackModels, nil
	}
	return models, nil
}
