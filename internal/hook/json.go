package hook

import (
	"context"
	"fmt"
	"time"

	"kpi-hook/internal/models"
	"kpi-hook/internal/submission"
)

type jsonService struct {
	base
}

func (s *jsonService) data(ctx context.Context) (m map[string]any, err error) {
	defer func(started time.Time) { s.observe(started, err) }(time.Now())

	n, err := s.extract(ctx, submission.ParseJSON)
	if err != nil {
		return nil, err
	}
	return submission.EncodeJSON(n), nil
}

func (s *jsonService) Data(ctx context.Context) (any, error) {
	m, err := s.data(ctx)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *jsonService) Payload(ctx context.Context) ([]byte, string, error) {
	m, err := s.data(ctx)
	if err != nil {
		return nil, "", err
	}
	body, err := submission.MarshalJSON(m)
	if err != nil {
		return nil, "", fmt.Errorf("marshal payload: %w", err)
	}
	return body, models.FormatJSON.ContentType(), nil
}
