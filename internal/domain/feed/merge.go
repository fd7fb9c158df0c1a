package feed

// Reconciliation describes the outcome of merging a fresh feed into a stored
// one.
type Reconciliation struct {
	Merged Feed
	// Prepended counts the items of the newer feed placed ahead of the older one.
	Prepended int
	// BoundaryFound is false when the older feed's newest item did not occur in
	// the newer feed, meaning items may be missing between the two.
	BoundaryFound bool
}

// Merge returns the items of newer that are more recent than older's newest
// item, followed by all of older. Neither input is modified.
//
// The boundary is the first item of older; scanning newer stops at the first
// structurally equal item. If the boundary repeats verbatim (two identical
// events) the first match wins.
func Merge(older, newer Feed) Feed {
	return Reconcile(older, newer).Merged
}

// Reconcile merges like Merge and reports how the feeds overlapped.
func Reconcile(older, newer Feed) Reconciliation {
	boundary, ok := older.First()
	if !ok {
		return Reconciliation{Merged: New(newer.items...), Prepended: newer.Len()}
	}

	prepend, found := newer.ItemsBefore(boundary)
	merged := make([]Item, 0, len(prepend)+older.Len())
	merged = append(merged, prepend...)
	merged = append(merged, older.items...)

	return Reconciliation{
		Merged:        Feed{items: merged},
		Prepended:     len(prepend),
		BoundaryFound: found,
	}
}
