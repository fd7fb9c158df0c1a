// Package feed models a player's activity feed and reconciles successive
// fetches of it.
package feed

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// ErrInvalidItem is returned for items missing a title or description.
var ErrInvalidItem = errors.New("invalid feed item")

// Item is a single feed event. Items have no identity of their own: two items
// are the same when time, title and description match.
type Item struct {
	Time        time.Time
	Title       string
	Description string
}

// NewItem trims title and description, normalizes t to UTC and rejects items
// left with an empty title or description.
func NewItem(t time.Time, title, description string) (Item, error) {
	it := Item{
		Time:        t.UTC(),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
	}
	if it.Title == "" || it.Description == "" {
		return Item{}, fmt.Errorf("%w: time %s, title %q, description %q",
			ErrInvalidItem, it.Time.Format("2-1-2006"), it.Title, it.Description)
	}
	return it, nil
}

// Equal reports structural equality.
func (i Item) Equal(o Item) bool {
	return i.Time.Equal(o.Time) && i.Title == o.Title && i.Description == o.Description
}

// Feed is an ordered, newest-first list of items. The order is the order the
// feed was built in; it is never re-sorted.
type Feed struct {
	items []Item
}

// New builds a feed from items in the given order.
func New(items ...Item) Feed {
	return Feed{items: slices.Clone(items)}
}

// Items returns a copy of the feed's items.
func (f Feed) Items() []Item { return slices.Clone(f.items) }

// Len returns the number of items.
func (f Feed) Len() int { return len(f.items) }

// Empty reports whether the feed has no items.
func (f Feed) Empty() bool { return len(f.items) == 0 }

// First returns the most recent item.
func (f Feed) First() (Item, bool) {
	if len(f.items) == 0 {
		return Item{}, false
	}
	return f.items[0], true
}

// Equal reports whether both feeds hold structurally equal items in the same
// order.
func (f Feed) Equal(o Feed) bool {
	return slices.EqualFunc(f.items, o.items, Item.Equal)
}

// ItemsBefore returns the items preceding the first item equal to target.
// found is false when no item matches, in which case all items are returned.
func (f Feed) ItemsBefore(target Item) (items []Item, found bool) {
	for i, it := range f.items {
		if it.Equal(target) {
			return slices.Clone(f.items[:i]), true
		}
	}
	return slices.Clone(f.items), false
}
