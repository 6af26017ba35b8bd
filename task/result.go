package task

import (
	"context"
	"sync"
	"sync/atomic"
)

// Result is a polling handle for a value computed on the pool.
// Readiness is monotonic: once IsReady reports true it stays true. The
// value can be observed any number of times but taken at most once.
// Abandoning a handle discards the value without cancelling the task.
type Result[T any] struct {
	ready atomic.Bool

	mu    sync.Mutex
	val   T
	taken bool
}

// complete stores the value and publishes readiness. The value is
// written before the flag so a reader that sees ready also sees the
// value.
func (r *Result[T]) complete(v T) {
	r.mu.Lock()
	r.val = v
	r.mu.Unlock()
	r.ready.Store(true)
}

// IsReady reports whether the value has been computed. Non-blocking.
func (r *Result[T]) IsReady() bool {
	return r.ready.Load()
}

// GetResultIfReady returns the value when it is ready and has not been
// taken. It never blocks on the computation; the lock it takes guards
// only the result slot.
func (r *Result[T]) GetResultIfReady() (T, bool) {
	var zero T
	if !r.ready.Load() {
		return zero, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken {
		return zero, false
	}
	return r.val, true
}

// TakeResultIfReady consumes the value. It returns ok exactly once
// across any number of calls, and only after the value is ready.
func (r *Result[T]) TakeResultIfReady() (T, bool) {
	var zero T
	if !r.ready.Load() {
		return zero, false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.taken {
		return zero, false
	}
	r.taken = true
	v := r.val
	r.val = zero
	return v, true
}

// Go schedules fn on the pool and returns its result handle.
func Go[T any](ctx context.Context, p *Pool, fn func() T) (*Result[T], error) {
	r := &Result[T]{}
	if err := p.Submit(ctx, func() {
		r.complete(fn())
	}); err != nil {
		return nil, err
	}
	return r, nil
}
