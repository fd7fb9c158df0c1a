package repository_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/okian/playerdata/internal/adapters/repository"
	"github.com/okian/playerdata/internal/domain/feed"
	"github.com/okian/playerdata/internal/domain/highscore"
	"github.com/okian/playerdata/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func mustPlayer(name string) model.Player {
	p, err := model.NewPlayer(name)
	if err != nil {
		panic(err)
	}
	return p
}

func mustItem(day int, title string) feed.Item {
	it, err := feed.NewItem(time.Date(2026, 10, day, 12, 0, 0, 0, time.UTC), title, title+" details")
	if err != nil {
		panic(err)
	}
	return it
}

func snapshot(raw string) *highscore.Snapshot {
	s, err := highscore.New(raw, nil, nil)
	if err != nil {
		panic(err)
	}
	return s
}

func TestMemoryStore_Feeds(t *testing.T) {
	ctx := context.Background()

	Convey("Given an empty store", t, func() {
		gauge := 0
		store := repository.NewMemoryStore(repository.WithPlayerGauge(func(n int) { gauge = n }))
		zezima := mustPlayer("Zezima")

		Convey("When reading a feed that was never stored", func() {
			_, err := store.Feed(ctx, zezima)

			Convey("Then it is not found", func() {
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
				So(store.Count(ctx), ShouldEqual, 0)
			})
		})

		Convey("When updating a feed for the first time", func() {
			var sawExisting bool
			stored, err := store.UpdateFeed(ctx, zezima, func(cur feed.Feed, exists bool) (feed.Feed, error) {
				sawExisting = exists
				return feed.Merge(cur, feed.New(mustItem(2, "b"), mustItem(1, "a"))), nil
			})

			Convey("Then the update sees no stored feed and saves the result", func() {
				So(err, ShouldBeNil)
				So(sawExisting, ShouldBeFalse)
				So(stored.Len(), ShouldEqual, 2)

				got, err := store.Feed(ctx, mustPlayer("zezima"))
				So(err, ShouldBeNil)
				So(got.Equal(stored), ShouldBeTrue)
				So(store.Count(ctx), ShouldEqual, 1)
				So(gauge, ShouldEqual, 1)
			})

			Convey("Then a second update receives the stored feed", func() {
				_, err := store.UpdateFeed(ctx, zezima, func(cur feed.Feed, exists bool) (feed.Feed, error) {
					So(exists, ShouldBeTrue)
					So(cur.Len(), ShouldEqual, 2)
					return feed.Merge(cur, feed.New(mustItem(3, "c"), mustItem(2, "b"))), nil
				})
				So(err, ShouldBeNil)

				got, _ := store.Feed(ctx, zezima)
				So(got.Len(), ShouldEqual, 3)
				first, _ := got.First()
				So(first.Title, ShouldEqual, "c")
			})
		})

		Convey("When an update fails", func() {
			boom := errors.New("boom")
			_, err := store.UpdateFeed(ctx, zezima, func(feed.Feed, bool) (feed.Feed, error) {
				return feed.Feed{}, boom
			})

			Convey("Then nothing is stored", func() {
				So(errors.Is(err, boom), ShouldBeTrue)
				_, err := store.Feed(ctx, zezima)
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
				So(store.Count(ctx), ShouldEqual, 0)
			})
		})

		Convey("When the context is already cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := store.UpdateFeed(cctx, zezima, func(cur feed.Feed, _ bool) (feed.Feed, error) { return cur, nil })

			Convey("Then the update is refused", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})
	})
}

func TestMemoryStore_Snapshots(t *testing.T) {
	ctx := context.Background()

	Convey("Given a store keeping three snapshots", t, func() {
		store := repository.NewMemoryStore(repository.WithSnapshotHistory(3), repository.WithPlayerGauge(func(int) {}))
		player := mustPlayer("Lord Ruby")

		Convey("When no snapshot was saved", func() {
			_, err := store.LatestSnapshot(ctx, player)
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
			_, err = store.Snapshots(ctx, player)
			So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
		})

		Convey("When saving a nil snapshot", func() {
			err := store.SaveSnapshot(ctx, player, nil)
			So(errors.Is(err, repository.ErrInvalidSnapshot), ShouldBeTrue)
		})

		Convey("When saving five snapshots", func() {
			for i := 1; i <= 5; i++ {
				So(store.SaveSnapshot(ctx, player, snapshot(fmt.Sprintf("s%d", i))), ShouldBeNil)
			}

			Convey("Then the latest is returned", func() {
				latest, err := store.LatestSnapshot(ctx, mustPlayer("lord_ruby"))
				So(err, ShouldBeNil)
				So(latest.Raw(), ShouldEqual, "s5")
			})

			Convey("Then history is bounded and newest first", func() {
				history, err := store.Snapshots(ctx, player)
				So(err, ShouldBeNil)
				So(len(history), ShouldEqual, 3)
				So(history[0].Raw(), ShouldEqual, "s5")
				So(history[2].Raw(), ShouldEqual, "s3")
			})

			Convey("Then the player has no feed yet", func() {
				_, err := store.Feed(ctx, player)
				So(errors.Is(err, repository.ErrNotFound), ShouldBeTrue)
				So(store.Count(ctx), ShouldEqual, 1)
			})
		})
	})

	Convey("Given the default history", t, func() {
		store := repository.NewMemoryStore(repository.WithSnapshotHistory(0), repository.WithPlayerGauge(nil))
		player := mustPlayer("Zezima")
		for i := 0; i < repository.DefaultSnapshotHistory+4; i++ {
			So(store.SaveSnapshot(ctx, player, snapshot("x")), ShouldBeNil)
		}

		history, err := store.Snapshots(ctx, player)
		So(err, ShouldBeNil)
		So(len(history), ShouldEqual, repository.DefaultSnapshotHistory)
	})
}

func TestMemoryStore_Concurrency(t *testing.T) {
	Convey("Given concurrent feed updates", t, func() {
		ctx := context.Background()
		store := repository.NewMemoryStore(repository.WithPlayerGauge(func(int) {}))
		player := mustPlayer("Zezima")

		const writers = 20
		var wg sync.WaitGroup
		for i := 0; i < writers; i++ {
			wg.Add(1)
			go func(day int) {
				defer wg.Done()
				_, _ = store.UpdateFeed(ctx, player, func(cur feed.Feed, _ bool) (feed.Feed, error) {
					items := append([]feed.Item{mustItem(day, fmt.Sprintf("item %d", day))}, cur.Items()...)
					return feed.New(items...), nil
				})
			}(i + 1)
		}
		wg.Wait()

		Convey("Then no update is lost", func() {
			got, err := store.Feed(ctx, player)
			So(err, ShouldBeNil)
			So(got.Len(), ShouldEqual, writers)
		})
	})
}
