package services

import "errors"

var (
	// ErrEmptyInput is returned when the input is blank. Nothing is extracted;
	// callers should prompt for input rather than report a failure.
	ErrEmptyInput = errors.New("input is empty")

	// ErrFormatFailed is returned when a run hits an unexpected fault. No
	// partial results accompany it.
	ErrFormatFailed = errors.New("an error occurred while processing the messages")
)
