package highscore

import (
	"time"

	"github.com/okian/playerdata/internal/domain/model"
)

// Option applies a configuration option to a Snapshot under construction.
type Option func(*Snapshot)

// WithPlayer associates the snapshot with its owner.
func WithPlayer(p model.Player) Option {
	return func(s *Snapshot) {
		s.player = &p
	}
}

// WithCapturedAt sets the capture time. The zero time is ignored.
func WithCapturedAt(t time.Time) Option {
	return func(s *Snapshot) {
		if !t.IsZero() {
			s.capturedAt = t.UTC()
		}
	}
}
