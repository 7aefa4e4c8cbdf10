package regionkit

import (
	"context"

	"github.com/unkn0wn-root/regionkit/region"
)

// suppressedRegion is the close-suppressing view handed to callbacks. Every
// capability is a one-line forward to the borrowed handle; Close alone is a
// no-op, any number of times, so callback code can never invalidate a handle
// shared with other holders. Forwarded calls return the delegate's results
// and errors verbatim.
//
// Each instance has its own identity: comparing the view against the raw
// handle, or against a view over a different template, is never equal. The
// delegate reference is set at construction and never reassigned.
//
// Any method added to region.Region needs a forwarding method here; the
// interface assertion below keeps that honest at compile time.
type suppressedRegion[V any] struct {
	r     region.Region[V]
	log   Logger
	hooks Hooks
}

var _ region.Region[any] = (*suppressedRegion[any])(nil)

func newSuppressedRegion[V any](r region.Region[V], log Logger, hooks Hooks) *suppressedRegion[V] {
	return &suppressedRegion[V]{r: r, log: log, hooks: hooks}
}

func (s *suppressedRegion[V]) Name() string { return s.r.Name() }

func (s *suppressedRegion[V]) Get(ctx context.Context, key string) (V, bool, error) {
	return s.r.Get(ctx, key)
}

func (s *suppressedRegion[V]) Put(ctx context.Context, key string, value V) error {
	return s.r.Put(ctx, key, value)
}

func (s *suppressedRegion[V]) PutIfAbsent(ctx context.Context, key string, value V) (bool, error) {
	return s.r.PutIfAbsent(ctx, key, value)
}

func (s *suppressedRegion[V]) Remove(ctx context.Context, key string) (bool, error) {
	return s.r.Remove(ctx, key)
}

func (s *suppressedRegion[V]) ContainsKey(ctx context.Context, key string) (bool, error) {
	return s.r.ContainsKey(ctx, key)
}

func (s *suppressedRegion[V]) Keys(ctx context.Context) ([]string, error) {
	return s.r.Keys(ctx)
}

func (s *suppressedRegion[V]) Size(ctx context.Context) (int, error) {
	return s.r.Size(ctx)
}

func (s *suppressedRegion[V]) Clear(ctx context.Context) error {
	return s.r.Clear(ctx)
}

func (s *suppressedRegion[V]) Query(ctx context.Context, q string) (*region.Results[V], error) {
	return s.r.Query(ctx, q)
}

// Close is suppressed: the handle is shared and its real teardown belongs to
// whoever opened it.
func (s *suppressedRegion[V]) Close(context.Context) error {
	s.hooks.CloseSuppressed(s.r.Name())
	s.log.Debug("suppressed close on region view", Fields{"region": s.r.Name()})
	return nil
}
