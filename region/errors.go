package region

import (
	"errors"
	"fmt"
)

// The region-native failure family is a closed set: the generic *Error plus
// three specialized query-side kinds. regionkit.Template classifies against
// exactly this set when deciding whether to translate a callback failure into
// its host-facing access error.

// Error is the generic region-native failure: a native client call against a
// region failed (transport, server, serialization on the native side).
type Error struct {
	Region string // region name
	Op     string // native operation, e.g. "get", "put", "scan"
	Err    error  // underlying native client error
}

func (e *Error) Error() string {
	return fmt.Sprintf("region %q: %s: %v", e.Region, e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// QueryInvalidError reports query text the region rejected before (or while)
// evaluating it.
type QueryInvalidError struct {
	Query string
	Err   error
}

func (e *QueryInvalidError) Error() string {
	return fmt.Sprintf("invalid query %q: %v", e.Query, e.Err)
}

func (e *QueryInvalidError) Unwrap() error { return e.Err }

// IndexInvalidError reports a malformed or unusable index definition.
type IndexInvalidError struct {
	Index string
	Err   error
}

func (e *IndexInvalidError) Error() string {
	return fmt.Sprintf("invalid index %q: %v", e.Index, e.Err)
}

func (e *IndexInvalidError) Unwrap() error { return e.Err }

// CQInvalidError reports a malformed continuous query registration.
type CQInvalidError struct {
	Name string
	Err  error
}

func (e *CQInvalidError) Error() string {
	return fmt.Sprintf("invalid continuous query %q: %v", e.Name, e.Err)
}

func (e *CQInvalidError) Unwrap() error { return e.Err }

// IsNativeError reports whether err belongs to the region-native failure
// family, anywhere in its chain. Adding a new native kind means adding one
// case here; callers never enumerate the kinds themselves.
func IsNativeError(err error) bool {
	if err == nil {
		return false
	}
	var (
		re *Error
		qe *QueryInvalidError
		ie *IndexInvalidError
		ce *CQInvalidError
	)
	return errors.As(err, &re) ||
		errors.As(err, &qe) ||
		errors.As(err, &ie) ||
		errors.As(err, &ce)
}
