// Package codec bridges typed region values and the byte-oriented native
// clients underneath the region adapters: redis, bigcache and ristretto all
// store []byte, so every byte-backed adapter takes a Codec for its value type.
package codec

// Codec converts values of type V to and from their stored byte form.
// Implementations must be safe for concurrent use.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
