package httpapi

import (
	"log/slog"

	"github.com/go-chi/chi/v5"

	"playtrack/internal/adapters/presence"
	"playtrack/internal/ports"
	"playtrack/internal/services"
)

// NewRouter creates the Chi router with all routes and middleware.
func NewRouter(
	stats *services.StatsService,
	board *presence.Board,
	directory ports.PlayerDirectory,
	logger *slog.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (runs on ALL routes including /healthz)
	r.Use(CORS)
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recovery(logger))

	// Handlers
	healthH := NewHealthHandler()
	playersH := NewPlayersHandler(directory)
	statsH := NewStatsHandler(stats)
	presenceH := NewPresenceHandler(board, directory)

	r.Get("/healthz", healthH.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/players", playersH.List)

		r.Route("/sessions", func(r chi.Router) {
			r.Get("/active", statsH.Active)
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/leaderboard", statsH.ActivityLeaderboard)
			r.Get("/players", statsH.PlayerLeaderboard)
			r.Get("/distribution", statsH.Distribution)
			r.Get("/concurrency", statsH.Concurrency)
			r.Get("/timeline", statsH.Timeline)
		})

		r.Route("/presence", func(r chi.Router) {
			r.Post("/events", presenceH.Events)
		})
	})

	return r
}
