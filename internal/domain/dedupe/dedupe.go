// Package dedupe remembers recently ingested payloads so repeats can be
// recognized without storing them twice.
package dedupe

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
)

// DefaultMaxSize is the number of fingerprints kept when no size is configured.
const DefaultMaxSize = 10_000

// Deduper records payload fingerprints.
type Deduper interface {
	// SeenAndRecord atomically checks if key was seen and records it if not.
	// Returns true if key was already seen, false if it was newly recorded.
	SeenAndRecord(ctx context.Context, key string) bool

	// Unrecord forgets key, used when the payload it stands for was not stored.
	Unrecord(ctx context.Context, key string)

	Size() int64
}

// Fingerprint identifies a payload ingested for a player in a format.
func Fingerprint(playerKey, format string, data []byte) string {
	return playerKey + "/" + format + "/" + strconv.FormatUint(xxhash.Sum64(data), 16)
}

// inMemoryDeduper keeps fingerprints in a map. In bounded mode a ring of
// insertion order evicts the oldest entry once maxSize is reached.
type inMemoryDeduper struct {
	mu      sync.Mutex
	seen    map[string]int // key -> ring slot, -1 in unbounded mode
	ring    []string
	next    int
	maxSize int // 0 or negative = unbounded
	size    atomic.Int64
}

// NewInMemoryDeduper creates a new in-memory deduper with configuration options.
func NewInMemoryDeduper(opts ...Option) Deduper {
	d := &inMemoryDeduper{
		maxSize: DefaultMaxSize,
	}

	for _, opt := range opts {
		opt(d)
	}

	d.seen = make(map[string]int)
	if d.maxSize > 0 {
		d.ring = make([]string, d.maxSize)
	}

	return d
}

func (d *inMemoryDeduper) SeenAndRecord(_ context.Context, key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.seen[key]; ok {
		return true
	}

	if d.maxSize <= 0 {
		d.seen[key] = -1
		d.size.Add(1)
		return false
	}

	// Slot d.next holds the oldest key once the ring has wrapped.
	if old := d.ring[d.next]; old != "" {
		delete(d.seen, old)
		d.size.Add(-1)
	}
	d.ring[d.next] = key
	d.seen[key] = d.next
	d.next = (d.next + 1) % d.maxSize
	d.size.Add(1)

	return false
}

func (d *inMemoryDeduper) Unrecord(_ context.Context, key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	slot, ok := d.seen[key]
	if !ok {
		return
	}
	delete(d.seen, key)
	if slot >= 0 {
		d.ring[slot] = ""
	}
	d.size.Add(-1)
}

// Size returns the current number of entries in the deduper.
func (d *inMemoryDeduper) Size() int64 {
	return d.size.Load()
}
