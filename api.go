package regionkit

import (
	"context"
	"fmt"

	"github.com/unkn0wn-root/regionkit/region"
)

// Callback is a unit of caller logic executed against a region view. The
// view is the close-suppressing wrapper unless the template (or the call)
// asked for the raw native handle. Callbacks are invoked synchronously and
// must not retain the view past their return.
type Callback[V, T any] func(ctx context.Context, r region.Region[V]) (T, error)

// Options configure a Template. Only Region is required.
type Options[V any] struct {
	// Required. The live, externally-owned region handle. The template
	// borrows it: it never calls the handle's Close.
	Region region.Region[V]

	// ExposeNative hands callbacks the raw handle instead of the
	// close-suppressing view. Default false. Set before concurrent use
	// begins; the template reads it per call without locking.
	ExposeNative bool

	Logger Logger // nil => NopLogger
	Hooks  Hooks  // nil => NopHooks
}

// New binds a template to a region. Binding happens exactly once: the
// close-suppressing view is built here and cached for the template's
// lifetime. A nil region is a configuration error, reported immediately.
func New[V any](opts Options[V]) (*Template[V], error) {
	if opts.Region == nil {
		return nil, fmt.Errorf("regionkit: region is required")
	}

	t := &Template[V]{
		raw:          opts.Region,
		exposeNative: opts.ExposeNative,
	}
	t.log = coalesce[Logger](opts.Logger, NopLogger{})
	t.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})
	t.facade = newSuppressedRegion(opts.Region, t.log, t.hooks)
	return t, nil
}
