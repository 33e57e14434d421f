package submission

import "errors"

var (
	// ErrSubmissionNotFound is returned when no submission matches the requested id.
	ErrSubmissionNotFound = errors.New("submission not found")
	// ErrMalformedDocument is returned when the raw submission cannot be parsed.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrInvalidFieldSpec marks a configured subset field that cannot be resolved
	// to a path. It is reported but never fails an extraction.
	ErrInvalidFieldSpec = errors.New("invalid field spec")
)
