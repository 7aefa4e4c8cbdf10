package bigcache

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/unkn0wn-root/regionkit/codec"
	"github.com/unkn0wn-root/regionkit/region"
)

func newTestRegion(t *testing.T) *Region[string] {
	t.Helper()
	r, err := New[string](Config[string]{
		Name:       "users",
		Codec:      codec.String{},
		LifeWindow: 10 * time.Minute,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = r.Close(context.Background()) })
	return r
}

func TestConfigValidation(t *testing.T) {
	if _, err := New[string](Config[string]{Codec: codec.String{}}); !errors.Is(err, ErrNoName) {
		t.Fatalf("expected ErrNoName, got %v", err)
	}
	if _, err := New[string](Config[string]{Name: "r"}); !errors.Is(err, ErrNilCodec) {
		t.Fatalf("expected ErrNilCodec, got %v", err)
	}
}

func TestPutGetRemove(t *testing.T) {
	ctx := context.Background()
	r := newTestRegion(t)

	if _, ok, err := r.Get(ctx, "u:1"); err != nil || ok {
		t.Fatalf("Get miss expected, ok=%v err=%v", ok, err)
	}
	if err := r.Put(ctx, "u:1", "ada"); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if v, ok, err := r.Get(ctx, "u:1"); err != nil || !ok || v != "ada" {
		t.Fatalf("Get: v=%q ok=%v err=%v", v, ok, err)
	}
	if ok, err := r.ContainsKey(ctx, "u:1"); err != nil || !ok {
		t.Fatalf("ContainsKey: ok=%v err=%v", ok, err)
	}
	if existed, err := r.Remove(ctx, "u:1"); err != nil || !existed {
		t.Fatalf("Remove: existed=%v err=%v", existed, err)
	}
	if existed, err := r.Remove(ctx, "u:1"); err != nil || existed {
		t.Fatalf("Remove of missing key: existed=%v err=%v", existed, err)
	}
}

func TestPutIfAbsent(t *testing.T) {
	ctx := context.Background()
	r := newTestRegion(t)

	if ok, err := r.PutIfAbsent(ctx, "k", "first"); err != nil || !ok {
		t.Fatalf("PutIfAbsent fresh: ok=%v err=%v", ok, err)
	}
	if ok, err := r.PutIfAbsent(ctx, "k", "second"); err != nil || ok {
		t.Fatalf("PutIfAbsent existing: ok=%v err=%v", ok, err)
	}
	if v, _, _ := r.Get(ctx, "k"); v != "first" {
		t.Fatalf("PutIfAbsent overwrote: %q", v)
	}
}

func TestKeysSizeClear(t *testing.T) {
	ctx := context.Background()
	r := newTestRegion(t)

	for _, k := range []string{"u:1", "u:2", "o:1"} {
		if err := r.Put(ctx, k, "v"); err != nil {
			t.Fatalf("Put %s: %v", k, err)
		}
	}
	keys, err := r.Keys(ctx)
	if err != nil {
		t.Fatalf("Keys: %v", err)
	}
	sort.Strings(keys)
	want := []string{"o:1", "u:1", "u:2"}
	if len(keys) != len(want) {
		t.Fatalf("Keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("Keys = %v, want %v", keys, want)
		}
	}
	if n, err := r.Size(ctx); err != nil || n != 3 {
		t.Fatalf("Size = %d err=%v, want 3", n, err)
	}
	if err := r.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n, _ := r.Size(ctx); n != 0 {
		t.Fatalf("Size after Clear = %d, want 0", n)
	}
}

func TestQueryGlob(t *testing.T) {
	ctx := context.Background()
	r := newTestRegion(t)

	for _, k := range []string{"u:1", "u:2", "o:1"} {
		if err := r.Put(ctx, k, "v-"+k); err != nil {
			t.Fatalf("Put %s: %v", k, err)
		}
	}

	res, err := r.Query(ctx, "u:*")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if res.Len() != 2 {
		t.Fatalf("Query matched %d entries, want 2", res.Len())
	}
	for _, e := range res.Entries() {
		if e.Value != "v-"+e.Key {
			t.Fatalf("entry mismatch: %+v", e)
		}
	}

	// invalid pattern surfaces the query-invalid native kind
	_, err = r.Query(ctx, "u:[")
	var qe *region.QueryInvalidError
	if !errors.As(err, &qe) {
		t.Fatalf("expected *QueryInvalidError, got %v", err)
	}
}
