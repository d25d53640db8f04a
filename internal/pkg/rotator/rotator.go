package rotator

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"
)

const (
	DefaultMinDelay = 3 * time.Second
	DefaultMaxDelay = 6 * time.Second
)

// Rotator advances an index over a pool of n items at jittered intervals.
// When n > 1 the next index never equals the current one.
type Rotator struct {
	mu       sync.Mutex
	n        int
	current  int
	minDelay time.Duration
	maxDelay time.Duration
	intn     func(int) int
	after    func(time.Duration) <-chan time.Time
	onRotate func(int)
	resetC   chan struct{}
}

type Option func(*Rotator)

// WithRand replaces the random source. intn must return a value in [0, n).
func WithRand(intn func(int) int) Option {
	return func(r *Rotator) { r.intn = intn }
}

// WithTimer replaces time.After.
func WithTimer(after func(time.Duration) <-chan time.Time) Option {
	return func(r *Rotator) { r.after = after }
}

// WithDelay overrides the [min, max] delay bounds.
func WithDelay(lo, hi time.Duration) Option {
	return func(r *Rotator) {
		if lo > 0 && hi >= lo {
			r.minDelay, r.maxDelay = lo, hi
		}
	}
}

// OnRotate registers a callback invoked from Run after every rotation.
func OnRotate(fn func(index int)) Option {
	return func(r *Rotator) { r.onRotate = fn }
}

func New(n int, opts ...Option) *Rotator {
	r := &Rotator{
		n:        max(n, 0),
		minDelay: DefaultMinDelay,
		maxDelay: DefaultMaxDelay,
		intn:     rand.IntN,
		after:    time.After,
		resetC:   make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Current returns the current index.
func (r *Rotator) Current() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Size returns the pool size.
func (r *Rotator) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.n
}

// Next moves to a new random index and returns it.
func (r *Rotator) Next() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.n <= 1 {
		r.current = 0
		return 0
	}
	k := r.intn(r.n - 1)
	if k >= r.current {
		k++
	}
	r.current = k
	return k
}

// Delay returns a random wait in [minDelay, maxDelay] at millisecond resolution.
func (r *Rotator) Delay() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := int((r.maxDelay - r.minDelay) / time.Millisecond)
	if span <= 0 {
		return r.minDelay
	}
	return r.minDelay + time.Duration(r.intn(span+1))*time.Millisecond
}

// Reset changes the pool size, clamps the current index, and re-arms the
// timer of a running loop.
func (r *Rotator) Reset(n int) {
	r.mu.Lock()
	r.n = max(n, 0)
	if r.current >= r.n {
		r.current = 0
	}
	r.mu.Unlock()

	select {
	case r.resetC <- struct{}{}:
	default:
	}
}

// Run rotates until ctx is cancelled. The timer is re-armed after every
// rotation with a fresh random delay. Pools of size 0 or 1 idle.
func (r *Rotator) Run(ctx context.Context) {
	for {
		wait := r.after(r.Delay())
		select {
		case <-ctx.Done():
			return
		case <-r.resetC:
			continue
		case <-wait:
		}

		if r.Size() < 2 {
			continue
		}
		idx := r.Next()
		if r.onRotate != nil {
			r.onRotate(idx)
		}
	}
}
