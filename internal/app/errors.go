package service

import "errors"

// Sentinel kinds for service errors.
var (
	// ErrInputTooLarge is returned for payloads above the configured limit.
	ErrInputTooLarge = errors.New("input too large")
	// ErrWrongFormat is returned when a format cannot serve the requested
	// ingest, e.g. a lite payload sent as a feed.
	ErrWrongFormat = errors.New("format does not carry this data")
	// ErrNotStarted is returned by operations called before Start.
	ErrNotStarted = errors.New("service not started")
)
