// Package ristretto adapts dgraph-io/ristretto to region.Region. The native
// client cannot enumerate its contents, so the region keeps its own key
// index for Keys/Size/Query; index entries for evicted values are pruned
// lazily when a Get misses.
package ristretto

import (
	"context"
	"errors"
	"sync"

	rc "github.com/dgraph-io/ristretto"

	"github.com/unkn0wn-root/regionkit/codec"
	"github.com/unkn0wn-root/regionkit/internal/match"
	"github.com/unkn0wn-root/regionkit/region"
)

var (
	ErrNoName        = errors.New("ristretto region: name is required")
	ErrNilCodec      = errors.New("ristretto region: nil codec")
	ErrInvalidConfig = errors.New("ristretto region: invalid config")

	// ErrAdmissionRejected reports a write the native admission policy
	// refused to keep (e.g. cost above MaxCost, or dropped under pressure).
	ErrAdmissionRejected = errors.New("ristretto region: write rejected by admission policy")
)

type Region[V any] struct {
	name  string
	c     *rc.Cache
	codec codec.Codec[V]

	mu   sync.RWMutex
	keys map[string]struct{}
}

var _ region.Region[any] = (*Region[any])(nil)

type Config[V any] struct {
	Name  string
	Codec codec.Codec[V]

	NumCounters int64
	MaxCost     int64
	BufferItems int64
	Metrics     bool
}

func New[V any](cfg Config[V]) (*Region[V], error) {
	if cfg.Name == "" {
		return nil, ErrNoName
	}
	if cfg.Codec == nil {
		return nil, ErrNilCodec
	}
	if cfg.NumCounters <= 0 || cfg.MaxCost <= 0 || cfg.BufferItems <= 0 {
		return nil, ErrInvalidConfig
	}
	c, err := rc.NewCache(&rc.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
		Metrics:     cfg.Metrics,
	})
	if err != nil {
		return nil, err
	}
	return &Region[V]{
		name:  cfg.Name,
		c:     c,
		codec: cfg.Codec,
		keys:  make(map[string]struct{}),
	}, nil
}

func (r *Region[V]) Name() string { return r.name }

func (r *Region[V]) nativeErr(op string, err error) error {
	return &region.Error{Region: r.name, Op: op, Err: err}
}

func (r *Region[V]) dropKey(key string) {
	r.mu.Lock()
	delete(r.keys, key)
	r.mu.Unlock()
}

func (r *Region[V]) Get(_ context.Context, key string) (V, bool, error) {
	var zero V
	raw, ok := r.c.Get(key)
	if !ok {
		r.dropKey(key) // evicted or never written; keep the index honest
		return zero, false, nil
	}
	b, _ := raw.([]byte)
	if b == nil {
		// self-heal: drop unexpected entry shape
		r.c.Del(key)
		r.dropKey(key)
		return zero, false, nil
	}
	v, err := r.codec.Decode(b)
	if err != nil {
		r.c.Del(key)
		r.dropKey(key)
		return zero, false, nil
	}
	return v, true, nil
}

// Put writes synchronously: ristretto buffers admissions, so the write is
// flushed before returning to keep read-your-write semantics.
//
// The native Set result only reports buffer drops; cost-based rejection
// (e.g. cost above MaxCost) happens asynchronously in the policy with Set
// still returning true. Presence is therefore re-checked after the flush,
// and either refusal surfaces as ErrAdmissionRejected without indexing the
// key.
func (r *Region[V]) Put(_ context.Context, key string, value V) error {
	b, err := r.codec.Encode(value)
	if err != nil {
		return r.nativeErr("encode", err)
	}
	if !r.c.Set(key, b, int64(len(b))) {
		return r.nativeErr("put", ErrAdmissionRejected)
	}
	r.c.Wait()
	if _, ok := r.c.Get(key); !ok {
		return r.nativeErr("put", ErrAdmissionRejected)
	}
	r.mu.Lock()
	r.keys[key] = struct{}{}
	r.mu.Unlock()
	return nil
}

// PutIfAbsent is check-then-set; ristretto has no native conditional write.
func (r *Region[V]) PutIfAbsent(ctx context.Context, key string, value V) (bool, error) {
	if _, ok := r.c.Get(key); ok {
		return false, nil
	}
	if err := r.Put(ctx, key, value); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Region[V]) Remove(_ context.Context, key string) (bool, error) {
	_, existed := r.c.Get(key)
	r.c.Del(key)
	r.dropKey(key)
	return existed, nil
}

func (r *Region[V]) ContainsKey(_ context.Context, key string) (bool, error) {
	_, ok := r.c.Get(key)
	return ok, nil
}

func (r *Region[V]) Keys(_ context.Context) ([]string, error) {
	r.mu.RLock()
	out := make([]string, 0, len(r.keys))
	for k := range r.keys {
		out = append(out, k)
	}
	r.mu.RUnlock()
	return out, nil
}

func (r *Region[V]) Size(_ context.Context) (int, error) {
	r.mu.RLock()
	n := len(r.keys)
	r.mu.RUnlock()
	return n, nil
}

func (r *Region[V]) Clear(_ context.Context) error {
	r.c.Clear()
	r.mu.Lock()
	r.keys = make(map[string]struct{})
	r.mu.Unlock()
	return nil
}

func (r *Region[V]) Query(ctx context.Context, q string) (*region.Results[V], error) {
	p, err := match.Compile(q)
	if err != nil {
		return nil, &region.QueryInvalidError{Query: q, Err: err}
	}
	keys, _ := r.Keys(ctx)
	var entries []region.Entry[V]
	for _, k := range keys {
		if !p.Match(k) {
			continue
		}
		v, ok, err := r.Get(ctx, k)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		entries = append(entries, region.Entry[V]{Key: k, Value: v})
	}
	return region.NewResults(entries), nil
}

func (r *Region[V]) Close(_ context.Context) error {
	r.c.Wait()
	r.c.Close()
	return nil
}

// Metrics exposes the native metrics handle when Config.Metrics was set.
// Not part of region.Region.
func (r *Region[V]) Metrics() *rc.Metrics { return r.c.Metrics }
