package services

import "net/http"

type ErrorKind string

const (
	// Caller-input problems, reported as 400.
	KindValidation        ErrorKind = "validation_error"
	KindUnsupportedFormat ErrorKind = "unsupported_format"
	KindEmptyOrCorrupt    ErrorKind = "empty_or_corrupt"

	// Processing and upstream problems, reported as 500.
	KindExtractionFailure         ErrorKind = "extraction_failure"
	KindUpstreamEmptyResponse     ErrorKind = "upstream_empty_response"
	KindUpstreamMalformedResponse ErrorKind = "upstream_malformed_response"
	KindUpstreamInvalidSchema     ErrorKind = "upstream_invalid_schema"
	KindUpstreamCallFailure       ErrorKind = "upstream_call_failure"
)

// Error is the single failure type crossing service boundaries. Details
// carries diagnostic payload (raw model output, parser error) and ends up
// in the HTTP error body.
type Error struct {
	Kind    ErrorKind
	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindUnsupportedFormat, KindEmptyOrCorrupt:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func newError(kind ErrorKind, message, details string) *Error {
	return &Error{Kind: kind, Message: message, Details: details}
}
