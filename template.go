package regionkit

import (
	"context"

	"github.com/unkn0wn-root/regionkit/region"
)

// Template is the single sanctioned entry point for running callbacks
// against a region. It selects which view the callback sees (raw handle or
// close-suppressing wrapper) and owns error normalization: region-native
// failures leave as *AccessError, everything else leaves untouched.
//
// A Template is safe for concurrent use once constructed, on the inherited
// precondition that the underlying region is. SetExposeNative follows a
// single-writer-before-concurrent-readers discipline: call it during setup,
// not while Execute calls are in flight.
type Template[V any] struct {
	raw          region.Region[V]
	facade       region.Region[V]
	exposeNative bool
	log          Logger
	hooks        Hooks
}

// SetExposeNative switches callbacks to the raw native handle. Default
// false: callbacks get a view whose Close is a no-op. Setup-time only.
func (t *Template[V]) SetExposeNative(expose bool) { t.exposeNative = expose }

// ExposeNative reports which view callbacks currently get.
func (t *Template[V]) ExposeNative() bool { return t.exposeNative }

// Region returns the raw bound handle. Intended for wiring, not for
// bypassing Execute.
func (t *Template[V]) Region() region.Region[V] { return t.raw }

// Execute runs fn against the view selected by the template's expose-native
// flag. Typed results without the any hop are available through the
// package-level Execute function.
func (t *Template[V]) Execute(ctx context.Context, fn Callback[V, any]) (any, error) {
	return ExecuteExposed(ctx, t, fn, t.exposeNative)
}

// ExecuteExposed is Execute with a per-call override of the expose-native
// flag.
func (t *Template[V]) ExecuteExposed(ctx context.Context, fn Callback[V, any], exposeNative bool) (any, error) {
	return ExecuteExposed(ctx, t, fn, exposeNative)
}

// Query evaluates q through the same path as Execute: the region's own
// Query runs against the selected view and native failures are translated.
// Each call returns an independent result set.
func (t *Template[V]) Query(ctx context.Context, q string) (*region.Results[V], error) {
	return Execute(ctx, t, func(ctx context.Context, r region.Region[V]) (*region.Results[V], error) {
		return r.Query(ctx, q)
	})
}

// Execute runs fn against tpl's selected view and returns its result
// unchanged - a zero result with a nil error is a valid outcome. A nil fn
// fails with ErrNilCallback before touching the region. Region-native
// failures come back as *AccessError wrapping the original; failures from
// the callback's own logic come back as-is.
func Execute[V, T any](ctx context.Context, tpl *Template[V], fn Callback[V, T]) (T, error) {
	return ExecuteExposed(ctx, tpl, fn, tpl != nil && tpl.exposeNative)
}

// ExecuteExposed is Execute with an explicit view choice: exposeNative true
// hands fn the raw handle, false the close-suppressing wrapper.
func ExecuteExposed[V, T any](ctx context.Context, tpl *Template[V], fn Callback[V, T], exposeNative bool) (T, error) {
	var zero T
	if fn == nil {
		return zero, ErrNilCallback
	}
	if tpl == nil || tpl.raw == nil {
		return zero, ErrNotBound
	}

	view := tpl.facade
	if exposeNative {
		view = tpl.raw
		tpl.hooks.NativeExposed(tpl.raw.Name())
	}

	out, err := fn(ctx, view)
	if err != nil {
		if region.IsNativeError(err) {
			tpl.hooks.ErrorTranslated(tpl.raw.Name(), err)
			tpl.log.Debug("translated region-native failure", Fields{
				"region": tpl.raw.Name(),
				"err":    err,
			})
			return zero, &AccessError{Err: err}
		}
		// callback's own failure: pass through unclassified
		return zero, err
	}
	return out, nil
}
