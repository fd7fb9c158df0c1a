package catalog

import "errors"

// Sentinel kinds for catalog errors.
var (
	ErrUnknownRuleset = errors.New("unknown ruleset")
)
