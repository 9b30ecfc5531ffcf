package debounce

import (
	"sync"
	"time"
)

// Group keeps one independent Debouncer per key, so calls for different
// keys never cancel each other.
type Group[K comparable] struct {
	delay time.Duration
	opts  []Option

	mu    sync.Mutex
	byKey map[K]*Debouncer
}

// NewGroup creates a Group whose debouncers share delay and opts.
func NewGroup[K comparable](delay time.Duration, opts ...Option) *Group[K] {
	return &Group[K]{
		delay: delay,
		opts:  opts,
		byKey: make(map[K]*Debouncer),
	}
}

// Schedule debounces fn on the debouncer for key.
func (g *Group[K]) Schedule(key K, fn func()) {
	g.get(key).Schedule(fn)
}

// Debouncer returns the debouncer for key, creating it on first use.
func (g *Group[K]) Debouncer(key K) *Debouncer {
	return g.get(key)
}

// FlushAll runs every pending call immediately. Returns how many ran.
func (g *Group[K]) FlushAll() int {
	n := 0
	for _, d := range g.snapshot() {
		if d.Flush() {
			n++
		}
	}
	return n
}

// CancelAll drops every pending call. Returns how many were dropped.
func (g *Group[K]) CancelAll() int {
	n := 0
	for _, d := range g.snapshot() {
		if d.Cancel() {
			n++
		}
	}
	return n
}

// Pending reports whether any key has a pending call.
func (g *Group[K]) Pending() bool {
	for _, d := range g.snapshot() {
		if d.Pending() {
			return true
		}
	}
	return false
}

func (g *Group[K]) get(key K) *Debouncer {
	g.mu.Lock()
	defer g.mu.Unlock()

	d, ok := g.byKey[key]
	if !ok {
		d = New(g.delay, g.opts...)
		g.byKey[key] = d
	}
	return d
}

func (g *Group[K]) snapshot() []*Debouncer {
	g.mu.Lock()
	defer g.mu.Unlock()

	out := make([]*Debouncer, 0, len(g.byKey))
	for _, d := range g.byKey {
		out = append(out, d)
	}
	return out
}
