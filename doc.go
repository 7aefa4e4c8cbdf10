// Package regionkit is a thin shim between a distributed cache's native
// region API and application data-access code. It does two things:
//
//   - Template runs caller-supplied callbacks against a region and converts
//     region-native failures (generic region errors plus the invalid-query,
//     invalid-index and invalid-continuous-query kinds) into a single
//     *AccessError. Failures raised by the callback's own logic pass through
//     untouched.
//   - By default a callback never sees the raw region handle. It gets a
//     close-suppressing view that forwards every capability except Close,
//     so callback code cannot tear down a handle shared with other holders.
//
// Components:
//   - region.Region[V]: the borrowed native handle's capability set.
//   - region/{redis,bigcache,ristretto}: adapters over real native clients.
//   - codec.Codec[V]: (de)serializes V <-> []byte for byte-backed adapters.
//
// Typical use:
//
//	tpl, _ := regionkit.New[User](regionkit.Options[User]{Region: users})
//	u, err := regionkit.Execute(ctx, tpl,
//	    func(ctx context.Context, r region.Region[User]) (User, error) {
//	        u, _, err := r.Get(ctx, "u:1")
//	        return u, err
//	    })
//
// The region handle itself stays owned by whoever opened it; regionkit never
// closes it.
package regionkit
