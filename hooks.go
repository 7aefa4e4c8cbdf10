package regionkit

// Hooks are lightweight callbacks for high-signal template events.
// Implementations MUST be cheap and non-blocking; the template calls them on
// hot paths. Wrap with hooks/async to decouple slow sinks.
type Hooks interface {
	// A callback invoked Close on the suppressing view; the call was a no-op.
	CloseSuppressed(regionName string)

	// A region-native failure was wrapped into *AccessError.
	ErrorTranslated(regionName string, err error)

	// A callback ran against the raw native handle (expose-native path).
	NativeExposed(regionName string)
}

// NopHooks is the default no-op.
type NopHooks struct{}

func (NopHooks) CloseSuppressed(string)        {}
func (NopHooks) ErrorTranslated(string, error) {}
func (NopHooks) NativeExposed(string)          {}
