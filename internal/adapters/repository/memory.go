package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/okian/playerdata/internal/domain/feed"
	"github.com/okian/playerdata/internal/domain/highscore"
	"github.com/okian/playerdata/internal/domain/model"
	"github.com/okian/playerdata/pkg/metrics"
)

// record holds everything stored for one player.
type record struct {
	player    model.Player
	feed      feed.Feed
	hasFeed   bool
	snapshots []*highscore.Snapshot // oldest first
}

// MemoryStore is an in-process Store guarded by a single RWMutex.
type MemoryStore struct {
	mu      sync.RWMutex
	players map[string]*record
	history int
	gauge   func(int)
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore constructs an empty store with configuration options.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		players: make(map[string]*record),
		history: DefaultSnapshotHistory,
		gauge:   metrics.UpdateTrackedPlayers,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// recordFor returns the player's record, creating it when missing.
// Caller must hold the write lock.
func (s *MemoryStore) recordFor(player model.Player) *record {
	key := player.Key()
	rec, ok := s.players[key]
	if !ok {
		rec = &record{player: player}
		s.players[key] = rec
		s.gauge(len(s.players))
	}
	return rec
}

// UpdateFeed implements Store.UpdateFeed. The write lock is held while fn
// runs, so concurrent updates for any player are serialized.
func (s *MemoryStore) UpdateFeed(ctx context.Context, player model.Player, fn FeedUpdate) (feed.Feed, error) {
	if err := ctx.Err(); err != nil {
		return feed.Feed{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		current feed.Feed
		exists  bool
	)
	if rec, ok := s.players[player.Key()]; ok && rec.hasFeed {
		current, exists = rec.feed, true
	}

	next, err := fn(current, exists)
	if err != nil {
		return feed.Feed{}, err
	}

	rec := s.recordFor(player)
	rec.feed = next
	rec.hasFeed = true
	return next, nil
}

// Feed implements Store.Feed.
func (s *MemoryStore) Feed(ctx context.Context, player model.Player) (feed.Feed, error) {
	if err := ctx.Err(); err != nil {
		return feed.Feed{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.players[player.Key()]
	if !ok || !rec.hasFeed {
		return feed.Feed{}, fmt.Errorf("feed for %q: %w", player.Name, ErrNotFound)
	}
	return rec.feed, nil
}

// SaveSnapshot implements Store.SaveSnapshot.
func (s *MemoryStore) SaveSnapshot(ctx context.Context, player model.Player, snapshot *highscore.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if snapshot == nil {
		return ErrInvalidSnapshot
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	rec := s.recordFor(player)
	rec.snapshots = append(rec.snapshots, snapshot)
	if over := len(rec.snapshots) - s.history; over > 0 {
		rec.snapshots = slices.Delete(rec.snapshots, 0, over)
	}
	return nil
}

// LatestSnapshot implements Store.LatestSnapshot.
func (s *MemoryStore) LatestSnapshot(ctx context.Context, player model.Player) (*highscore.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.players[player.Key()]
	if !ok || len(rec.snapshots) == 0 {
		return nil, fmt.Errorf("highscore for %q: %w", player.Name, ErrNotFound)
	}
	return rec.snapshots[len(rec.snapshots)-1], nil
}

// Snapshots implements Store.Snapshots.
func (s *MemoryStore) Snapshots(ctx context.Context, player model.Player) ([]*highscore.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.players[player.Key()]
	if !ok || len(rec.snapshots) == 0 {
		return nil, fmt.Errorf("highscore for %q: %w", player.Name, ErrNotFound)
	}
	out := slices.Clone(rec.snapshots)
	slices.Reverse(out)
	return out, nil
}

// Count implements Store.Count.
func (s *MemoryStore) Count(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}
