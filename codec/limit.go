package codec

import "fmt"

// Limit wraps another codec and rejects oversized payloads before Decode
// runs. Encode is forwarded untouched. MaxDecode <= 0 disables the check.
//
// Use it when region values come from a shared store that other writers can
// reach: a poisoned oversized entry then fails loudly instead of allocating.
type Limit[V any] struct {
	Inner     Codec[V]
	MaxDecode int
}

func (c Limit[V]) Encode(v V) ([]byte, error) { return c.Inner.Encode(v) }

func (c Limit[V]) Decode(b []byte) (V, error) {
	if c.MaxDecode > 0 && len(b) > c.MaxDecode {
		var zero V
		return zero, fmt.Errorf("codec: payload %d bytes exceeds limit %d", len(b), c.MaxDecode)
	}
	return c.Inner.Decode(b)
}
