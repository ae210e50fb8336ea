package extract

import "errors"

var (
	// ErrExtractionFailed wraps upstream language-model call failures
	// (network, auth, quota, empty response).
	ErrExtractionFailed = errors.New("task extraction failed")

	// ErrMalformedPayload means the model responded, but the structured
	// payload is neither an object with a task list nor a bare list.
	ErrMalformedPayload = errors.New("malformed extraction payload")
)
