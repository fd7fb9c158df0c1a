package convert

import (
	"errors"
	"fmt"
)

// Sentinel kinds for conversion failures. Every failure is terminal: no
// partial result accompanies an error.
var (
	// ErrMalformedInput means the payload does not match the decoder's schema.
	ErrMalformedInput = errors.New("malformed input")
	// ErrEmptyResult means a well-formed payload produced no usable entries.
	ErrEmptyResult = errors.New("empty result")
	// ErrRemoteError means the upstream API reported an error, typically an
	// unknown or private player.
	ErrRemoteError = errors.New("remote error")
	// ErrUnknownFormat is returned for format names the converter does not know.
	ErrUnknownFormat = errors.New("unknown format")
)

// ConversionError is the typed error returned by every decoder. It matches
// its Kind and its cause with errors.Is.
type ConversionError struct {
	Format Format
	Kind   error
	Reason string
	Err    error
}

func (e *ConversionError) Error() string {
	msg := fmt.Sprintf("convert %s: %v: %s", e.Format, e.Kind, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func failure(format Format, kind, cause error, reason string, args ...any) error {
	return &ConversionError{
		Format: format,
		Kind:   kind,
		Reason: fmt.Sprintf(reason, args...),
		Err:    cause,
	}
}

// KindOf returns the failure kind of err, or nil when err is not a conversion
// failure.
func KindOf(err error) error {
	var ce *ConversionError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return nil
}
