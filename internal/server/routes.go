package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/swaggest/swgui/v5emb"

	"github.com/termfolio/termfolio/internal/handler/health"
)

func addRoutes(r chi.Router, logger *slog.Logger, sessions *Sessions, broker *Broker, checks map[string]health.Checker, spaDir string) {
	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("termfolio API", "/openapi.json", "/docs"))
	r.Mount("/healthz", health.NewHandler(logger, checks).Routes())

	r.Post("/api/sessions", handleCreateSession(sessions))

	// Session routes; {id} is resolved by sessionMiddleware.
	r.Route("/api/sessions/{id}", func(r chi.Router) {
		r.Use(sessionMiddleware(sessions))
		r.Post("/input", handleInput())
		r.Post("/interrupt", handleInterrupt())
		r.Get("/log", handleLog())
		r.Get("/history", handleHistory())
		r.Get("/events", handleEvents(broker))
		r.Delete("/", handleDeleteSession(sessions))
	})

	r.With(sessionMiddleware(sessions)).Get("/ws/terminal/{id}", handleTerminal(logger, broker))

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
