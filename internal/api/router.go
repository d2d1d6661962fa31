package api

import (
	"net/http"
	"time"

	// This blank import is required by swaggo to find the API definitions.
	_ "pulse-ai/backend/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// NewRouter creates and configures a chi router with all the application's
// routes. The relay handler, when non-nil, is mounted under proxyPrefix so
// the frontend can reach the upstream API through this server.
func NewRouter(chatHandler *ChatHandler, modelHandler *ModelHandler, playgroundHandler *PlaygroundHandler, relay http.Handler, proxyPrefix string) *chi.Mux {
	r := chi.NewRouter()

	// --- Global Middleware ---
	r.Use(middleware.RequestID) // Injects a unique request ID into the context.
	r.Use(middleware.RealIP)    // Sets the remote address to the real IP from proxy headers.
	r.Use(middleware.Logger)    // Logs the start and end of each request.
	r.Use(middleware.Recoverer) // Recovers from panics and returns a 500 error.

	// Serves the auto-generated Swagger UI for API documentation.
	r.Get("/api/swagger/*", httpSwagger.WrapHandler)

	// Health check endpoint for container orchestration probes.
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Standard JSON routes get a request timeout so client connections
		// cannot hang indefinitely.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Timeout(60 * time.Second))

			// --- Settings ---
			r.Get("/settings", chatHandler.GetSettings)
			r.Post("/settings", chatHandler.UpdateSettings)

			// --- Chats ---
			r.Get("/chats", chatHandler.GetChats)
			r.Post("/chats", chatHandler.CreateChat)
			r.Put("/chats/active", chatHandler.SetActiveChat)
			r.Get("/chats/{chatID}", chatHandler.GetChat)
			r.Put("/chats/{chatID}/title", chatHandler.UpdateChatTitle)
			r.Delete("/chats/{chatID}", chatHandler.DeleteChat)

			// --- Models ---
			r.Get("/models", modelHandler.HandleListModels)
		})

		// Inference round-trips and uploads can outlive a 60 second budget,
		// so these routes carry no timeout middleware.
		r.Group(func(r chi.Router) {
			r.Post("/chats/messages", chatHandler.SendMessage)
			r.Post("/vision/base64", playgroundHandler.HandleVisionBase64)
			r.Post("/vision/url", playgroundHandler.HandleVisionURL)
			r.Post("/files", playgroundHandler.HandleProcessFile)
			r.Post("/voice", playgroundHandler.HandleVoice)
		})
	})

	// --- Upstream Relay ---
	// Mounted outside /api/v1 and without a timeout: it streams whatever the
	// upstream streams.
	if relay != nil {
		r.Handle(proxyPrefix+"/*", relay)
		r.Handle(proxyPrefix, relay)
	}

	// --- Frontend File Server ---
	// Serves the static frontend build; useful for simplified local
	// development where no reverse proxy sits in front.
	fileServer := http.FileServer(http.Dir("./frontend/dist"))
	r.Handle("/*", http.StripPrefix("/", fileServer))

	return r
}
