package repository

import "errors"

// Sentinel kinds for store errors.
var (
	ErrNotFound        = errors.New("player not found")
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)
