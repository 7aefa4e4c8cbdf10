package regionkit

import "errors"

// ErrNilCallback is returned by Execute before any region interaction when
// the callback is nil.
var ErrNilCallback = errors.New("regionkit: callback must not be nil")

// ErrNotBound is returned when a Template is used before a region was bound
// to it. A zero Template is unusable; construct with New.
var ErrNotBound = errors.New("regionkit: no region bound; construct the template with New")

// AccessError is the single host-facing failure category for region-native
// errors. Template wraps every failure classified by region.IsNativeError
// into one of these; the original failure is retained as the cause, so
// errors.Is/As against the native kinds keep working through it.
type AccessError struct {
	Err error
}

func (e *AccessError) Error() string {
	return "regionkit: region access failed: " + e.Err.Error()
}

func (e *AccessError) Unwrap() error { return e.Err }
