package llm

import "errors"

var (
	// ErrDisabled indicates no API key is configured.
	ErrDisabled = errors.New("assistant is not configured")

	// ErrUnavailable indicates the generation endpoint is unreachable.
	ErrUnavailable = errors.New("generation endpoint unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("generation request timed out")

	// ErrInvalidOutput indicates the response carried no usable text.
	ErrInvalidOutput = errors.New("invalid generation output")

	// ErrRetryExhausted indicates all retry attempts have been exhausted.
	ErrRetryExhausted = errors.New("generation retry attempts exhausted")
)
