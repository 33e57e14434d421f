package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"kpi-hook/internal/models"
	"kpi-hook/internal/submission"
)

const (
	selectSubmissionJSON = `
        SELECT json_data::text
        FROM kpi.submissions
        WHERE asset_uid=$1
          AND submission_id=$2
        LIMIT 1
    `
	selectSubmissionXML = `
        SELECT xml_data
        FROM kpi.submissions
        WHERE asset_uid=$1
          AND submission_id=$2
        LIMIT 1
    `
)

// SubmissionStore reads raw submissions. It never writes.
type SubmissionStore struct {
	DB Querier
}

// Submission returns the submission's raw JSON or XML. A row without the
// requested representation counts as not found.
func (s *SubmissionStore) Submission(ctx context.Context, assetUID, submissionID string, format models.FormatType) ([]byte, error) {
	if s.DB == nil {
		return nil, errNilQuerier
	}

	var query string
	switch format {
	case models.FormatJSON:
		query = selectSubmissionJSON
	case models.FormatXML:
		query = selectSubmissionXML
	default:
		return nil, fmt.Errorf("unknown format type %q", format)
	}

	var raw *string
	err := s.DB.QueryRow(ctx, query, assetUID, submissionID).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			slog.Info("submission not found", "asset_uid", assetUID, "submission_id", submissionID)
			return nil, fmt.Errorf("%w: %s/%s", submission.ErrSubmissionNotFound, assetUID, submissionID)
		}
		return nil, fmt.Errorf("lookup submission: %w", err)
	}
	if raw == nil {
		slog.Info("submission has no representation", "asset_uid", assetUID, "submission_id", submissionID, "format", format)
		return nil, fmt.Errorf("%w: %s/%s has no %s data", submission.ErrSubmissionNotFound, assetUID, submissionID, format)
	}

	return []byte(*raw), nil
}
