package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	app_errors "pulse-ai/backend/internal/errors"
	"pulse-ai/backend/internal/model"
	"pulse-ai/backend/internal/service"
	"pulse-ai/backend/internal/storage"
)

func TestSettingsService(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults when nothing is stored", func(t *testing.T) {
		settingsService := service.NewSettingsService(storage.NewMemoryStore())

		settings, err := settingsService.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "dark", settings.Theme)
		assert.Equal(t, "default", settings.Accent)
	})

	t.Run("save and reload", func(t *testing.T) {
		settingsService := service.NewSettingsService(storage.NewMemoryStore())

		require.NoError(t, settingsService.Save(ctx, &model.Settings{Theme: "light", Accent: "emerald"}))

		settings, err := settingsService.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "light", settings.Theme)
		assert.Equal(t, "emerald", settings.Accent)
	})

	t.Run("unknown theme is rejected", func(t *testing.T) {
		settingsService := service.NewSettingsService(storage.NewMemoryStore())

		err := settingsService.Save(ctx, &model.Settings{Theme: "solarized"})
		assert.ErrorIs(t, err, app_errors.ErrValidation)
	})

	t.Run("corrupt stored settings fall back to defaults", func(t *testing.T) {
		mem := storage.NewMemoryStore()
		require.NoError(t, mem.Put(ctx, "pulse-settings", []byte("{broken")))
		settingsService := service.NewSettingsService(mem)

		settings, err := settingsService.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "dark", settings.Theme)
	})
}
