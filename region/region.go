// Package region defines the capability surface of an externally-owned cache
// region and the closed family of region-native failures.
//
// A Region is borrowed, never owned: its real lifecycle belongs to whatever
// client/connection manager created it. Close tears the handle down for every
// holder, which is exactly why regionkit.Template hands callbacks a
// close-suppressing view by default.
//
// Implementations MUST be safe for concurrent use by multiple callers. That
// is an inherited precondition from the native client, not something this
// package enforces.
package region

import (
	"context"
)

// Region is the capability set of a live cache region with string keys and
// values of type V. Every addition to this interface needs a matching
// forwarding method on the close-suppressing view in the root package.
type Region[V any] interface {
	// Name returns the region's name as known to the native client.
	Name() string

	// Get returns (value, true, nil) on hit; (zero, false, nil) on miss.
	Get(ctx context.Context, key string) (V, bool, error)

	// Put stores value under key, overwriting any previous entry.
	Put(ctx context.Context, key string, value V) error

	// PutIfAbsent stores value only when key has no entry.
	// Returns true when the write happened.
	PutIfAbsent(ctx context.Context, key string, value V) (bool, error)

	// Remove deletes key. Returns true when an entry existed.
	Remove(ctx context.Context, key string) (bool, error)

	// ContainsKey reports whether key currently has an entry.
	ContainsKey(ctx context.Context, key string) (bool, error)

	// Keys returns a snapshot of the keys currently in the region.
	Keys(ctx context.Context) ([]string, error)

	// Size returns the current entry count.
	Size(ctx context.Context) (int, error)

	// Clear removes every entry from the region.
	Clear(ctx context.Context) error

	// Query evaluates q against the region and returns a fresh result set.
	// The built-in adapters evaluate key-glob queries (see internal/match);
	// richer engines may accept their own dialect. Invalid query text is
	// reported as *QueryInvalidError.
	Query(ctx context.Context, q string) (*Results[V], error)

	// Close releases the region handle for ALL holders. Callbacks running
	// under a Template never see this method do anything unless the native
	// view was explicitly exposed.
	Close(ctx context.Context) error
}

// Entry is one key/value pair in a result set.
type Entry[V any] struct {
	Key   string
	Value V
}

// Results is an independent, immutable result set returned by Query.
// Every Query call materializes its own Results; traversing one never
// affects another.
type Results[V any] struct {
	entries []Entry[V]
}

// NewResults builds a result set. The slice is taken over by the Results;
// callers must not retain it.
func NewResults[V any](entries []Entry[V]) *Results[V] {
	return &Results[V]{entries: entries}
}

func (r *Results[V]) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// Entries returns a copy of the underlying entries.
func (r *Results[V]) Entries() []Entry[V] {
	if r == nil {
		return nil
	}
	out := make([]Entry[V], len(r.entries))
	copy(out, r.entries)
	return out
}

// Values returns the values in entry order.
func (r *Results[V]) Values() []V {
	if r == nil {
		return nil
	}
	out := make([]V, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Value)
	}
	return out
}
