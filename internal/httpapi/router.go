package httpapi

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"kpi-hook/internal/config"
	"kpi-hook/internal/store"
)

// DB is what the router needs from the pgx pool.
type DB interface {
	store.Querier
	Ping(ctx context.Context) error
}

func NewRouter(cfg *config.Config, db DB) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(RecoverMiddleware)

	r.Get("/health", HealthHandler(db))
	r.Get("/version", VersionHandler(cfg.Version))
	r.Handle("/metrics", promhttp.Handler())

	hooks := &store.HookStore{DB: db}
	submissions := &store.SubmissionStore{DB: db}

	r.Route("/api/v2/assets/{asset_uid}/hooks/{hook_uid}", func(api chi.Router) {
		api.Get("/payload/{submission_id}", HookPayloadHandler(cfg, hooks, submissions))
	})

	return r
}
