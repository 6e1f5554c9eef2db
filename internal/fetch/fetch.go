// Package fetch holds the small primitives the screens use to run read-only
// loads: a lifecycle state, a generation guard that discards stale responses,
// and a debouncer that coalesces bursts of input into one settled event.
package fetch

import (
	"sync"
	"time"
)

// State is the lifecycle of one fetcher.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateErrored
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// Guard hands out a fresh generation for every issued request. A response
// tagged with an older generation is stale and must not touch screen state,
// however late or early it lands.
type Guard struct {
	mu  sync.Mutex
	gen uint64
}

// Next marks the start of a new request and returns its generation.
func (g *Guard) Next() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.gen++
	return g.gen
}

// Current returns the most recently issued generation.
func (g *Guard) Current() uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.gen
}

// Stale reports whether a response tagged with gen has been superseded by a
// newer request.
func (g *Guard) Stale(gen uint64) bool {
	return gen != g.Current()
}

// DefaultDebounce is the quiescence window for text input driving a filter.
const DefaultDebounce = 300 * time.Millisecond

// Debouncer coalesces a burst of touches: only the sequence returned by the
// latest Touch settles once the delay elapses without another touch.
type Debouncer struct {
	mu    sync.Mutex
	seq   uint64
	delay time.Duration
}

func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Touch registers an input event and returns its sequence number. The caller
// schedules a timer for Delay and checks Settled with the same sequence when
// it fires.
func (d *Debouncer) Touch() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	return d.seq
}

// Settled reports whether seq is still the latest touch, i.e. the input has
// been quiescent since it.
func (d *Debouncer) Settled(seq uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return seq == d.seq
}

// Delay returns the configured quiescence window.
func (d *Debouncer) Delay() time.Duration {
	return d.delay
}
