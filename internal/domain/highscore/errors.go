package highscore

import "errors"

// Sentinel kinds for highscore errors.
var (
	// ErrIncompleteSnapshot is returned when a derived metric needs a skill the
	// snapshot does not contain.
	ErrIncompleteSnapshot = errors.New("incomplete snapshot")
	// ErrDuplicateEntry is returned when two entries share an ordinal.
	ErrDuplicateEntry = errors.New("duplicate highscore entry")
)
