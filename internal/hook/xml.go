package hook

import (
	"context"
	"time"

	"kpi-hook/internal/models"
	"kpi-hook/internal/submission"
)

// xmlService re-roots the extracted tree under the asset uid.
type xmlService struct {
	base
}

func (s *xmlService) document(ctx context.Context) (doc []byte, err error) {
	defer func(started time.Time) { s.observe(started, err) }(time.Now())

	n, err := s.extract(ctx, submission.ParseXML)
	if err != nil {
		return nil, err
	}
	return submission.EncodeXML(n, s.hook.AssetUID)
}

func (s *xmlService) Data(ctx context.Context) (any, error) {
	doc, err := s.document(ctx)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *xmlService) Payload(ctx context.Context) ([]byte, string, error) {
	doc, err := s.document(ctx)
	if err != nil {
		return nil, "", err
	}
	return doc, models.FormatXML.ContentType(), nil
}
