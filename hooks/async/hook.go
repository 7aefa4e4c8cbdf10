// Package asynchook decouples hook sinks from the template's hot path:
// events are queued to a bounded channel and delivered by worker goroutines.
// When the queue is full, events are dropped rather than blocking Execute.
//
// usage:
//
//	raw := sloghook.New(slog.Default(), sloghook.Options{TranslatedEvery: 10})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	tpl, _ := regionkit.New[User](regionkit.Options[User]{
//	    Region: users,
//	    Hooks:  hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"

	"github.com/unkn0wn-root/regionkit"
)

type Hooks struct {
	inner regionkit.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once

	// mu orders emitters against Close: try sends under the read lock, so
	// Close cannot close the channel between the closed check and the send.
	mu     sync.RWMutex
	closed bool
}

var _ regionkit.Hooks = (*Hooks)(nil)

func New(inner regionkit.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

// Close drains the queue and stops the workers. Events emitted after Close
// are dropped.
func (h *Hooks) Close() {
	h.once.Do(func() {
		h.mu.Lock()
		h.closed = true
		close(h.q)
		h.mu.Unlock()
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.closed {
		return
	}
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) CloseSuppressed(name string) { h.try(func() { h.inner.CloseSuppressed(name) }) }
func (h *Hooks) NativeExposed(name string)   { h.try(func() { h.inner.NativeExposed(name) }) }
func (h *Hooks) ErrorTranslated(name string, err error) {
	h.try(func() { h.inner.ErrorTranslated(name, err) })
}
