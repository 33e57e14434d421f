package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"kpi-hook/internal/models"
)

const selectHook = `
    SELECT id, uid, asset_uid, name, endpoint, format_type, subset_fields, active, created_at
    FROM kpi.hooks
    WHERE asset_uid=$1
      AND uid=$2
    LIMIT 1
`

type HookStore struct {
	DB Querier
}

func (s *HookStore) Hook(ctx context.Context, assetUID, hookUID string) (models.Hook, error) {
	if s.DB == nil {
		return models.Hook{}, errNilQuerier
	}

	var (
		h      models.Hook
		format string
		fields []string
	)
	err := s.DB.QueryRow(ctx, selectHook, assetUID, hookUID).Scan(
		&h.ID, &h.UID, &h.AssetUID, &h.Name, &h.Endpoint,
		&format, &fields, &h.Active, &h.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.Hook{}, fmt.Errorf("%w: %s/%s", ErrHookNotFound, assetUID, hookUID)
		}
		return models.Hook{}, fmt.Errorf("lookup hook: %w", err)
	}

	h.FormatType, err = models.ParseFormatType(format)
	if err != nil {
		slog.Warn("hook has invalid format type", "hook_uid", hookUID, "format_type", format)
		return models.Hook{}, err
	}
	h.SubsetFields = fields

	return h, nil
}
