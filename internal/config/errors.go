package config

import "errors"

// Configuration errors, matched with errors.Is.
var (
	ErrInvalidConfig = errors.New("invalid config")
	ErrLoadConfig    = errors.New("load config")
)
