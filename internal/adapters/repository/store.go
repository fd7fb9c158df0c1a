// Package repository stores merged activity feeds and highscore history per
// player.
package repository

import (
	"context"

	"github.com/okian/playerdata/internal/domain/feed"
	"github.com/okian/playerdata/internal/domain/highscore"
	"github.com/okian/playerdata/internal/domain/model"
)

// FeedUpdate computes the feed to store from the current one. exists is false
// when nothing is stored for the player yet. Returning an error leaves the
// stored feed untouched.
type FeedUpdate func(current feed.Feed, exists bool) (feed.Feed, error)

// Store provides read/write access to player data. Players are matched by
// model.Player.Key, so display-name variants share one record.
type Store interface {
	// UpdateFeed applies fn to the stored feed and saves its result as one
	// atomic read-merge-write.
	UpdateFeed(ctx context.Context, player model.Player, fn FeedUpdate) (feed.Feed, error)

	// Feed returns the stored feed. Returns ErrNotFound if none is stored.
	Feed(ctx context.Context, player model.Player) (feed.Feed, error)

	// SaveSnapshot appends a snapshot to the player's history, evicting the
	// oldest beyond the history limit.
	SaveSnapshot(ctx context.Context, player model.Player, snapshot *highscore.Snapshot) error

	// LatestSnapshot returns the most recently saved snapshot.
	// Returns ErrNotFound if none is stored.
	LatestSnapshot(ctx context.Context, player model.Player) (*highscore.Snapshot, error)

	// Snapshots returns the stored history, newest first.
	Snapshots(ctx context.Context, player model.Player) ([]*highscore.Snapshot, error)

	// Count returns the number of players with any stored data.
	Count(ctx context.Context) int
}
