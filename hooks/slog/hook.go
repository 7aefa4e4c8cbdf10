//go:build go1.21

// Package sloghook logs template events through log/slog, with sampling so
// a misbehaving callback that closes its view in a tight loop cannot flood
// the log.
package sloghook

import (
	"log/slog"
	"sync/atomic"

	"github.com/unkn0wn-root/regionkit"
)

type Options struct {
	// Sampling to avoid floods; 0/1 = log all.
	SuppressedEvery uint64
	TranslatedEvery uint64
}

type Hooks struct {
	l    *slog.Logger
	opts Options

	suppressedCtr atomic.Uint64
	translatedCtr atomic.Uint64
}

var _ regionkit.Hooks = (*Hooks)(nil)

func New(l *slog.Logger, opts Options) *Hooks {
	return &Hooks{l: l, opts: opts}
}

func sample(n uint64, ctr *atomic.Uint64) bool {
	if n == 0 || n == 1 {
		return true
	}
	return ctr.Add(1)%n == 0
}

func (h *Hooks) CloseSuppressed(name string) {
	if h.l == nil || !sample(h.opts.SuppressedEvery, &h.suppressedCtr) {
		return
	}
	h.l.Debug("regionkit.close_suppressed", "region", name)
}

func (h *Hooks) ErrorTranslated(name string, err error) {
	if h.l == nil || !sample(h.opts.TranslatedEvery, &h.translatedCtr) {
		return
	}
	h.l.Warn("regionkit.error_translated", "region", name, "err", err)
}

func (h *Hooks) NativeExposed(name string) {
	if h.l == nil {
		return
	}
	h.l.Debug("regionkit.native_exposed", "region", name)
}
