package repository

// DefaultSnapshotHistory is the number of snapshots kept per player.
const DefaultSnapshotHistory = 10

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithSnapshotHistory bounds the snapshots kept per player.
func WithSnapshotHistory(n int) Option {
	return func(s *MemoryStore) {
		if n > 0 {
			s.history = n
		}
	}
}

// WithPlayerGauge sets the callback told the number of tracked players
// whenever it changes.
func WithPlayerGauge(fn func(int)) Option {
	return func(s *MemoryStore) {
		if fn != nil {
			s.gauge = fn
		}
	}
}
