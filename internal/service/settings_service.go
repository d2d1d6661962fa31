package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	app_errors "pulse-ai/backend/internal/errors"
	"pulse-ai/backend/internal/model"
	"pulse-ai/backend/internal/storage"
)

// settingsKey is the storage key for the UI preferences namespace.
const settingsKey = "pulse-settings"

func defaultSettings() *model.Settings {
	return &model.Settings{Theme: "dark", Accent: "default"}
}

// SettingsService persists the playground's theme and accent preferences.
type SettingsService struct {
	storage storage.Store
}

func NewSettingsService(st storage.Store) *SettingsService {
	return &SettingsService{storage: st}
}

// Get returns the stored settings. Missing or unparseable settings fall back
// to the defaults, matching the load behavior of the session collection.
func (s *SettingsService) Get(ctx context.Context) (*model.Settings, error) {
	raw, err := s.storage.Get(ctx, settingsKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return defaultSettings(), nil
		}
		return nil, fmt.Errorf("could not read settings: %w", err)
	}

	var settings model.Settings
	if err := json.Unmarshal(raw, &settings); err != nil {
		slog.Warn("Discarding unparseable settings", "error", err)
		return defaultSettings(), nil
	}
	return &settings, nil
}

// Save validates and persists the settings.
func (s *SettingsService) Save(ctx context.Context, settings *model.Settings) error {
	if settings.Theme != "dark" && settings.Theme != "light" {
		return fmt.Errorf("%w: unknown theme %q", app_errors.ErrValidation, settings.Theme)
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("could not marshal settings: %w", err)
	}
	return s.storage.Put(ctx, settingsKey, raw)
}
