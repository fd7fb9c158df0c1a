// Package model contains domain models passed between layers.
package model

import (
	"errors"
	"fmt"
	"strings"
)

const maxNameLength = 12

// ErrInvalidName is returned for display names the upstream APIs would reject.
var ErrInvalidName = errors.New("invalid player name")

// Player identifies the owner of a snapshot or feed.
type Player struct {
	Name string // display name as reported upstream
}

// NewPlayer validates a display name: 1-12 letters, digits, spaces, hyphens
// or underscores.
func NewPlayer(name string) (Player, error) {
	name = strings.TrimSpace(name)
	if name == "" || len(name) > maxNameLength {
		return Player{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == ' ', r == '-', r == '_':
		default:
			return Player{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
		}
	}
	return Player{Name: name}, nil
}

// Key returns the normalized lookup key. Names are case-insensitive upstream
// and spaces, hyphens and underscores are interchangeable.
func (p Player) Key() string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return ' '
		}
		return r
	}, strings.ToLower(p.Name))
}

// Same reports whether p and o refer to the same account.
func (p Player) Same(o Player) bool { return p.Key() == o.Key() }

func (p Player) String() string { return p.Name }
