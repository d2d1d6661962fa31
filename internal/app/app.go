package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"pulse-ai/backend/internal/api"
	"pulse-ai/backend/internal/config"
	"pulse-ai/backend/internal/database"
	"pulse-ai/backend/internal/inference"
	"pulse-ai/backend/internal/proxy"
	"pulse-ai/backend/internal/service"
	"pulse-ai/backend/internal/session"
	"pulse-ai/backend/internal/storage"
)

// App bundles the wired application for startup and tests.
type App struct {
	DB     *sql.DB
	Server *http.Server
}

// NewApp builds the dependency graph: database, key-value storage, session
// store, upstream client, services, relay and router.
func NewApp(cfg *config.Config) (*App, error) {
	setupLogger(cfg.LogLevel)

	db, err := database.InitDB(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	slog.Info("Successfully connected to SQLite database.")

	kv := storage.NewSQLiteStore(db)
	sessions := session.NewStore(context.Background(), kv)
	slog.Info("Loaded session collection", "sessions", len(sessions.Sessions()))

	provider := inference.NewHTTPProvider(cfg.UpstreamURL, cfg.UpstreamToken)

	chatService := service.NewChatService(sessions, provider)
	modelService := service.NewModelService(provider)
	settingsService := service.NewSettingsService(kv)
	playgroundService := service.NewPlaygroundService(provider)

	relay, err := proxy.NewRelay(cfg.UpstreamURL, cfg.ProxyPrefix, nil)
	if err != nil {
		if closeErr := db.Close(); closeErr != nil {
			slog.Error("Failed to close database connection", "error", closeErr)
		}
		return nil, fmt.Errorf("failed to build upstream relay: %w", err)
	}

	chatHandler := api.NewChatHandler(chatService, settingsService)
	modelHandler := api.NewModelHandler(modelService)
	playgroundHandler := api.NewPlaygroundHandler(playgroundService)
	router := api.NewRouter(chatHandler, modelHandler, playgroundHandler, relay, cfg.ProxyPrefix)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.AppPort),
		Handler:           router,
		ReadHeaderTimeout: 20 * time.Second,
		WriteTimeout:      0, // Disabled: the relay and upload routes can be slow.
		IdleTimeout:       120 * time.Second,
	}

	return &App{DB: db, Server: server}, nil
}

// Run loads the configuration, builds the app and serves until failure.
// It returns the process exit code.
func Run() int {
	cfg, err := config.LoadConfig()
	if err != nil {
		// slog is not yet configured, so use the default logger for this critical error.
		slog.Error("Failed to load configuration", "error", err)
		return 1
	}

	app, err := NewApp(cfg)
	if err != nil {
		slog.Error("Failed to build application", "error", err)
		return 1
	}
	defer func() {
		if err := app.DB.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	logConfigSource()

	slog.Info("Starting server", "addr", app.Server.Addr, "upstream", cfg.UpstreamURL)
	if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func logConfigSource() {
	configFileUsed := viper.ConfigFileUsed()
	if configFileUsed != "" {
		slog.Info("Successfully loaded configuration from file.", "file", configFileUsed)
	} else {
		slog.Info("Configuration file not found. Using environment variables and defaults.")
	}
}

func setupLogger(logLevel string) {
	var level slog.Level
	switch strings.ToUpper(logLevel) {
	case "DEBUG":
		level = slog.LevelDebug
	case "WARN":
		level = slog.LevelWarn
	case "ERROR":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
