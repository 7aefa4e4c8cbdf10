// Package bigcache adapts allegro/bigcache to region.Region. Entries share
// the cache's global LifeWindow; there is no per-entry TTL in the native
// client. Enumeration (Keys, Query) uses the native iterator.
package bigcache

import (
	"context"
	"errors"
	"time"

	bc "github.com/allegro/bigcache/v3"

	"github.com/unkn0wn-root/regionkit/codec"
	"github.com/unkn0wn-root/regionkit/internal/match"
	"github.com/unkn0wn-root/regionkit/region"
)

var (
	ErrNoName   = errors.New("bigcache region: name is required")
	ErrNilCodec = errors.New("bigcache region: nil codec")
)

type Region[V any] struct {
	name  string
	c     *bc.BigCache
	codec codec.Codec[V]
}

var _ region.Region[any] = (*Region[any])(nil)

type Config[V any] struct {
	Name  string
	Codec codec.Codec[V]

	LifeWindow         time.Duration
	CleanWindow        time.Duration
	MaxEntriesInWindow int
	MaxEntrySize       int
	HardMaxCacheSizeMB int // ~ memory limit; 0 = unlimited
}

func New[V any](cfg Config[V]) (*Region[V], error) {
	if cfg.Name == "" {
		return nil, ErrNoName
	}
	if cfg.Codec == nil {
		return nil, ErrNilCodec
	}
	conf := bc.DefaultConfig(cfg.LifeWindow)
	if cfg.CleanWindow > 0 {
		conf.CleanWindow = cfg.CleanWindow
	}
	if cfg.MaxEntriesInWindow > 0 {
		conf.MaxEntriesInWindow = cfg.MaxEntriesInWindow
	}
	if cfg.MaxEntrySize > 0 {
		conf.MaxEntrySize = cfg.MaxEntrySize
	}
	if cfg.HardMaxCacheSizeMB > 0 {
		conf.HardMaxCacheSize = cfg.HardMaxCacheSizeMB
	}
	c, err := bc.NewBigCache(conf)
	if err != nil {
		return nil, err
	}
	return &Region[V]{name: cfg.Name, c: c, codec: cfg.Codec}, nil
}

func (r *Region[V]) Name() string { return r.name }

func (r *Region[V]) nativeErr(op string, err error) error {
	return &region.Error{Region: r.name, Op: op, Err: err}
}

func (r *Region[V]) Get(_ context.Context, key string) (V, bool, error) {
	var zero V
	b, err := r.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, r.nativeErr("get", err)
	}
	v, err := r.codec.Decode(b)
	if err != nil {
		_ = r.c.Delete(key) // self-heal undecodable entry
		return zero, false, nil
	}
	return v, true, nil
}

func (r *Region[V]) Put(_ context.Context, key string, value V) error {
	b, err := r.codec.Encode(value)
	if err != nil {
		return r.nativeErr("encode", err)
	}
	if err := r.c.Set(key, b); err != nil {
		return r.nativeErr("put", err)
	}
	return nil
}

func (r *Region[V]) PutIfAbsent(ctx context.Context, key string, value V) (bool, error) {
	// not atomic: bigcache has no native conditional write
	if _, err := r.c.Get(key); err == nil {
		return false, nil
	} else if !errors.Is(err, bc.ErrEntryNotFound) {
		return false, r.nativeErr("putIfAbsent", err)
	}
	if err := r.Put(ctx, key, value); err != nil {
		return false, err
	}
	return true, nil
}

func (r *Region[V]) Remove(_ context.Context, key string) (bool, error) {
	err := r.c.Delete(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return false, nil
	}
	if err != nil {
		return false, r.nativeErr("remove", err)
	}
	return true, nil
}

func (r *Region[V]) ContainsKey(_ context.Context, key string) (bool, error) {
	_, err := r.c.Get(key)
	if errors.Is(err, bc.ErrEntryNotFound) {
		return false, nil
	}
	if err != nil {
		return false, r.nativeErr("containsKey", err)
	}
	return true, nil
}

func (r *Region[V]) Keys(_ context.Context) ([]string, error) {
	var keys []string
	it := r.c.Iterator()
	for it.SetNext() {
		e, err := it.Value()
		if err != nil {
			return nil, r.nativeErr("iterate", err)
		}
		keys = append(keys, e.Key())
	}
	return keys, nil
}

func (r *Region[V]) Size(_ context.Context) (int, error) {
	return r.c.Len(), nil
}

func (r *Region[V]) Clear(_ context.Context) error {
	if err := r.c.Reset(); err != nil {
		return r.nativeErr("clear", err)
	}
	return nil
}

func (r *Region[V]) Query(_ context.Context, q string) (*region.Results[V], error) {
	p, err := match.Compile(q)
	if err != nil {
		return nil, &region.QueryInvalidError{Query: q, Err: err}
	}
	var entries []region.Entry[V]
	it := r.c.Iterator()
	for it.SetNext() {
		e, err := it.Value()
		if err != nil {
			return nil, r.nativeErr("iterate", err)
		}
		if !p.Match(e.Key()) {
			continue
		}
		v, err := r.codec.Decode(e.Value())
		if err != nil {
			_ = r.c.Delete(e.Key())
			continue
		}
		entries = append(entries, region.Entry[V]{Key: e.Key(), Value: v})
	}
	return region.NewResults(entries), nil
}

func (r *Region[V]) Close(_ context.Context) error {
	if err := r.c.Close(); err != nil {
		return r.nativeErr("close", err)
	}
	return nil
}
