// Package redis adapts a go-redis client to region.Region. The region's
// entries live under the "<name>:" keyspace of the client's database; values
// pass through a codec on the way in and out.
package redis

import (
	"context"
	"errors"
	"strings"

	goredis "github.com/redis/go-redis/v9"

	"github.com/unkn0wn-root/regionkit/codec"
	"github.com/unkn0wn-root/regionkit/internal/match"
	"github.com/unkn0wn-root/regionkit/region"
)

var (
	ErrNilClient = errors.New("redis region: nil client")
	ErrNoName    = errors.New("redis region: name is required")
	ErrNilCodec  = errors.New("redis region: nil codec")
)

type Region[V any] struct {
	name        string
	rdb         goredis.UniversalClient
	codec       codec.Codec[V]
	closeClient bool
}

var _ region.Region[any] = (*Region[any])(nil)

type Config[V any] struct {
	Name   string
	Client goredis.UniversalClient
	Codec  codec.Codec[V]

	// CloseClient releases the client on Close. Set true only if this
	// region exclusively owns the client.
	CloseClient bool
}

func New[V any](cfg Config[V]) (*Region[V], error) {
	if cfg.Client == nil {
		return nil, ErrNilClient
	}
	if cfg.Name == "" {
		return nil, ErrNoName
	}
	if cfg.Codec == nil {
		return nil, ErrNilCodec
	}
	return &Region[V]{
		name:        cfg.Name,
		rdb:         cfg.Client,
		codec:       cfg.Codec,
		closeClient: cfg.CloseClient,
	}, nil
}

func (r *Region[V]) Name() string { return r.name }

func (r *Region[V]) storageKey(key string) string { return r.name + ":" + key }

func (r *Region[V]) nativeErr(op string, err error) error {
	return &region.Error{Region: r.name, Op: op, Err: err}
}

func (r *Region[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V
	b, err := r.rdb.Get(ctx, r.storageKey(key)).Bytes()
	if err == goredis.Nil {
		return zero, false, nil // miss
	}
	if err != nil {
		return zero, false, r.nativeErr("get", err)
	}
	v, err := r.codec.Decode(b)
	if err != nil {
		// self-heal: drop the undecodable entry and miss
		_ = r.rdb.Del(ctx, r.storageKey(key)).Err()
		return zero, false, nil
	}
	return v, true, nil
}

func (r *Region[V]) Put(ctx context.Context, key string, value V) error {
	b, err := r.codec.Encode(value)
	if err != nil {
		return r.nativeErr("encode", err)
	}
	if err := r.rdb.Set(ctx, r.storageKey(key), b, 0).Err(); err != nil {
		return r.nativeErr("put", err)
	}
	return nil
}

func (r *Region[V]) PutIfAbsent(ctx context.Context, key string, value V) (bool, error) {
	b, err := r.codec.Encode(value)
	if err != nil {
		return false, r.nativeErr("encode", err)
	}
	ok, err := r.rdb.SetNX(ctx, r.storageKey(key), b, 0).Result()
	if err != nil {
		return false, r.nativeErr("putIfAbsent", err)
	}
	return ok, nil
}

func (r *Region[V]) Remove(ctx context.Context, key string) (bool, error) {
	n, err := r.rdb.Del(ctx, r.storageKey(key)).Result()
	if err != nil {
		return false, r.nativeErr("remove", err)
	}
	return n > 0, nil
}

func (r *Region[V]) ContainsKey(ctx context.Context, key string) (bool, error) {
	n, err := r.rdb.Exists(ctx, r.storageKey(key)).Result()
	if err != nil {
		return false, r.nativeErr("containsKey", err)
	}
	return n > 0, nil
}

func (r *Region[V]) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := r.rdb.Scan(ctx, 0, r.name+":*", 0).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, strings.TrimPrefix(iter.Val(), r.name+":"))
	}
	if err := iter.Err(); err != nil {
		return nil, r.nativeErr("scan", err)
	}
	return keys, nil
}

func (r *Region[V]) Size(ctx context.Context) (int, error) {
	keys, err := r.Keys(ctx)
	if err != nil {
		return 0, err
	}
	return len(keys), nil
}

func (r *Region[V]) Clear(ctx context.Context) error {
	keys, err := r.Keys(ctx)
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := r.rdb.Del(ctx, r.storageKey(k)).Err(); err != nil {
			return r.nativeErr("clear", err)
		}
	}
	return nil
}

func (r *Region[V]) Query(ctx context.Context, q string) (*region.Results[V], error) {
	p, err := match.Compile(q)
	if err != nil {
		return nil, &region.QueryInvalidError{Query: q, Err: err}
	}
	keys, err := r.Keys(ctx)
	if err != nil {
		return nil, err
	}
	var entries []region.Entry[V]
	for _, k := range keys {
		if !p.Match(k) {
			continue
		}
		v, ok, err := r.Get(ctx, k)
		if err != nil {
			return nil, err
		}
		if !ok { // deleted between scan and get
			continue
		}
		entries = append(entries, region.Entry[V]{Key: k, Value: v})
	}
	return region.NewResults(entries), nil
}

// Close releases the underlying client only when this region owns it.
// Repeated calls become no-ops.
func (r *Region[V]) Close(context.Context) error {
	if r.closeClient {
		if err := r.rdb.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			return r.nativeErr("close", err)
		}
	}
	return nil
}
