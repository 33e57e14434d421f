package hook

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"kpi-hook/internal/metrics"
	"kpi-hook/internal/models"
	"kpi-hook/internal/submission"
)

// ErrUnsupportedFormat is returned for hooks whose format type has no service.
var ErrUnsupportedFormat = errors.New("unsupported format type")

// SubmissionSource fetches the raw bytes of one submission in the requested
// representation. Missing submissions are reported as
// submission.ErrSubmissionNotFound.
type SubmissionSource interface {
	Submission(ctx context.Context, assetUID, submissionID string, format models.FormatType) ([]byte, error)
}

// ServiceDefinition computes a hook's outbound payload for one submission.
// Nothing is cached; every call fetches and extracts again.
type ServiceDefinition interface {
	// Data returns map[string]any for JSON hooks and the XML document bytes
	// for XML hooks.
	Data(ctx context.Context) (any, error)
	// Payload returns the request body and its content type.
	Payload(ctx context.Context) ([]byte, string, error)
}

type Option func(*base)

// WithInstanceIDField overrides the identifier field kept in every payload.
func WithInstanceIDField(name string) Option {
	return func(b *base) {
		if name != "" {
			b.idField = name
		}
	}
}

type base struct {
	hook         models.Hook
	submissionID string
	src          SubmissionSource
	idField      string
}

// NewServiceDefinition binds a hook to one submission.
func NewServiceDefinition(h models.Hook, submissionID string, src SubmissionSource, opts ...Option) (ServiceDefinition, error) {
	if src == nil {
		return nil, errors.New("submission source is nil")
	}

	b := base{hook: h, submissionID: submissionID, src: src, idField: submission.DefaultIDField}
	for _, opt := range opts {
		opt(&b)
	}

	switch h.FormatType {
	case models.FormatJSON:
		return &jsonService{base: b}, nil
	case models.FormatXML:
		return &xmlService{base: b}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, h.FormatType)
}

// extract fetches the submission and applies the hook's subset fields.
func (b *base) extract(ctx context.Context, parse func([]byte) (submission.TreeView, error)) (*submission.Node, error) {
	raw, err := b.src.Submission(ctx, b.hook.AssetUID, b.submissionID, b.hook.FormatType)
	if err != nil {
		return nil, err
	}

	view, err := parse(raw)
	if err != nil {
		slog.Warn("failed to parse submission",
			"hook_uid", b.hook.UID, "submission_id", b.submissionID, "format", b.hook.FormatType, "error", err)
		return nil, err
	}

	sel, err := submission.NewSelector(b.hook.SubsetFields, b.idField)
	if err != nil {
		n := invalidFieldCount(err)
		metrics.InvalidFieldSpecs.Add(float64(n))
		slog.Warn("ignoring invalid subset fields", "hook_uid", b.hook.UID, "count", n, "error", err)
	}

	return submission.Extract(view, sel), nil
}

// invalidFieldCount counts the fields joined into a NewSelector error.
func invalidFieldCount(err error) int {
	if err == nil {
		return 0
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return len(joined.Unwrap())
	}
	return 1
}

func (b *base) observe(started time.Time, err error) {
	outcome := "ok"
	switch {
	case errors.Is(err, submission.ErrSubmissionNotFound):
		outcome = "not_found"
	case errors.Is(err, submission.ErrMalformedDocument):
		outcome = "malformed"
	case err != nil:
		outcome = "error"
	}
	metrics.ObserveExtraction(string(b.hook.FormatType), outcome, started)
}
