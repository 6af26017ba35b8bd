// Package task runs background graph queries on a fixed pool of
// goroutines and hands their values back through polling result
// handles.
package task

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// ErrClosed is returned when submitting to a closed pool.
var ErrClosed = errors.New("task: pool closed")

// Pool manages a fixed set of goroutines for background queries. A
// fixed pool avoids spawning a goroutine per query under interactive
// load.
type Pool struct {
	numWorkers int
	workCh     chan func()
	stopCh     chan struct{}
	wg         sync.WaitGroup
	closed     atomic.Bool
	submitMu   sync.RWMutex

	// inflight bounds queued plus running tasks; limiter optionally
	// throttles submission rate.
	inflight *semaphore.Weighted
	limiter  *rate.Limiter
}

// PoolOption configures a Pool.
type PoolOption func(*poolOptions)

type poolOptions struct {
	numWorkers  int
	maxInflight int64
	rateLimit   rate.Limit
	rateBurst   int
}

// WithWorkers sets the number of pool goroutines. Values at or below
// zero fall back to GOMAXPROCS.
func WithWorkers(n int) PoolOption {
	return func(o *poolOptions) { o.numWorkers = n }
}

// WithMaxInflight bounds the number of queued plus running tasks.
// Submission blocks when the bound is reached.
func WithMaxInflight(n int64) PoolOption {
	return func(o *poolOptions) { o.maxInflight = n }
}

// WithRateLimit throttles task submission to limit tasks per second
// with the given burst.
func WithRateLimit(limit rate.Limit, burst int) PoolOption {
	return func(o *poolOptions) {
		o.rateLimit = limit
		o.rateBurst = burst
	}
}

// NewPool starts a pool.
func NewPool(optFns ...PoolOption) *Pool {
	opts := poolOptions{}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.numWorkers <= 0 {
		opts.numWorkers = runtime.GOMAXPROCS(0)
	}
	if opts.maxInflight <= 0 {
		opts.maxInflight = int64(opts.numWorkers) * 4
	}

	p := &Pool{
		numWorkers: opts.numWorkers,
		workCh:     make(chan func(), opts.numWorkers*2),
		stopCh:     make(chan struct{}),
		inflight:   semaphore.NewWeighted(opts.maxInflight),
	}
	if opts.rateLimit > 0 {
		p.limiter = rate.NewLimiter(opts.rateLimit, opts.rateBurst)
	}

	p.wg.Add(opts.numWorkers)
	for range opts.numWorkers {
		go p.worker()
	}

	return p
}

// NumWorkers returns the pool size.
func (p *Pool) NumWorkers() int { return p.numWorkers }

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopCh:
			// Drain remaining work before exiting.
			for {
				select {
				case fn, ok := <-p.workCh:
					if !ok {
						return
					}
					fn()
				default:
					return
				}
			}
		case fn, ok := <-p.workCh:
			if !ok {
				return
			}
			fn()
		}
	}
}

// Submit enqueues a task and returns once it is queued. It blocks on
// the inflight bound and the rate limit.
func (p *Pool) Submit(ctx context.Context, fn func()) error {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return err
		}
	}
	if err := p.inflight.Acquire(ctx, 1); err != nil {
		return err
	}

	p.submitMu.RLock()
	defer p.submitMu.RUnlock()

	if p.closed.Load() {
		p.inflight.Release(1)
		return ErrClosed
	}

	wrapped := func() {
		defer p.inflight.Release(1)
		fn()
	}

	select {
	case p.workCh <- wrapped:
		return nil
	case <-p.stopCh:
		p.inflight.Release(1)
		return ErrClosed
	case <-ctx.Done():
		p.inflight.Release(1)
		return ctx.Err()
	}
}

// Close shuts the pool down, running any already queued tasks.
// Idempotent.
func (p *Pool) Close() {
	if !p.closed.CompareAndSwap(false, true) {
		return
	}

	p.submitMu.Lock()
	close(p.stopCh)
	close(p.workCh)
	p.submitMu.Unlock()

	p.wg.Wait()
}
