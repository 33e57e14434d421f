package httpapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"kpi-hook/internal/config"
	"kpi-hook/internal/hook"
	"kpi-hook/internal/models"
	"kpi-hook/internal/store"
	"kpi-hook/internal/submission"
)

type hookFinder interface {
	Hook(ctx context.Context, assetUID, hookUID string) (models.Hook, error)
}

// HookPayloadHandler returns the exact body the hook would send for one
// submission.
func HookPayloadHandler(cfg *config.Config, hooks hookFinder, subs hook.SubmissionSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assetUID := chi.URLParam(r, "asset_uid")
		hookUID := chi.URLParam(r, "hook_uid")
		submissionID := chi.URLParam(r, "submission_id")

		h, err := hooks.Hook(r.Context(), assetUID, hookUID)
		if err != nil {
			if errors.Is(err, store.ErrHookNotFound) {
				http.Error(w, "hook not found", http.StatusNotFound)
				return
			}
			slog.Error("failed to load hook", "asset_uid", assetUID, "hook_uid", hookUID, "error", err)
			http.Error(w, "query error", http.StatusInternalServerError)
			return
		}

		sd, err := hook.NewServiceDefinition(h, submissionID, subs, hook.WithInstanceIDField(cfg.InstanceIDField))
		if err != nil {
			slog.Error("failed to build service definition", "hook_uid", hookUID, "error", err)
			http.Error(w, "invalid hook", http.StatusInternalServerError)
			return
		}

		body, contentType, err := sd.Payload(r.Context())
		if err != nil {
			switch {
			case errors.Is(err, submission.ErrSubmissionNotFound):
				http.Error(w, "submission not found", http.StatusNotFound)
			case errors.Is(err, submission.ErrMalformedDocument):
				http.Error(w, "malformed submission", http.StatusUnprocessableEntity)
			default:
				slog.Error("failed to build payload", "hook_uid", hookUID, "submission_id", submissionID, "error", err)
				http.Error(w, "payload error", http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", contentType+"; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}
