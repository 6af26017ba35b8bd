package task

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultLifecycle(t *testing.T) {
	p := NewPool(WithWorkers(2))
	defer p.Close()

	release := make(chan struct{})
	res, err := Go(context.Background(), p, func() int {
		<-release
		return 42
	})
	require.NoError(t, err)

	assert.False(t, res.IsReady())
	_, ok := res.GetResultIfReady()
	assert.False(t, ok)
	_, ok = res.TakeResultIfReady()
	assert.False(t, ok)

	close(release)
	require.Eventually(t, res.IsReady, time.Second, time.Millisecond)

	v, ok := res.GetResultIfReady()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	// Observing does not consume.
	v, ok = res.GetResultIfReady()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	v, ok = res.TakeResultIfReady()
	require.True(t, ok)
	assert.Equal(t, 42, v)

	_, ok = res.TakeResultIfReady()
	assert.False(t, ok, "take succeeds at most once")
	_, ok = res.GetResultIfReady()
	assert.False(t, ok, "taken value is gone")
}

// IsReady never flips back to false, and concurrent takers see exactly
// one success.
func TestTakeOnceUnderContention(t *testing.T) {
	p := NewPool(WithWorkers(4))
	defer p.Close()

	res, err := Go(context.Background(), p, func() int { return 7 })
	require.NoError(t, err)
	require.Eventually(t, res.IsReady, time.Second, time.Millisecond)

	var (
		wg    sync.WaitGroup
		takes atomic.Int64
	)
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok := res.TakeResultIfReady(); ok {
				takes.Add(1)
			}
			assert.True(t, res.IsReady())
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), takes.Load())
}

func TestPoolRunsAllTasks(t *testing.T) {
	p := NewPool(WithWorkers(3))
	defer p.Close()

	var done atomic.Int64
	for range 50 {
		require.NoError(t, p.Submit(context.Background(), func() {
			done.Add(1)
		}))
	}

	assert.Eventually(t, func() bool { return done.Load() == 50 }, time.Second, time.Millisecond)
}

func TestSubmitAfterClose(t *testing.T) {
	p := NewPool(WithWorkers(1))
	p.Close()

	err := p.Submit(context.Background(), func() {})
	assert.ErrorIs(t, err, ErrClosed)

	_, err = Go(context.Background(), p, func() int { return 0 })
	assert.ErrorIs(t, err, ErrClosed)
}

func TestCloseIdempotent(t *testing.T) {
	p := NewPool(WithWorkers(1))
	p.Close()
	p.Close()
}

func TestSubmitHonorsContext(t *testing.T) {
	p := NewPool(WithWorkers(1), WithMaxInflight(1))
	defer p.Close()

	release := make(chan struct{})
	defer close(release)

	require.NoError(t, p.Submit(context.Background(), func() { <-release }))

	// The single inflight slot is held; a cancelled context unblocks
	// the waiting submit.
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := p.Submit(ctx, func() {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPoolDefaults(t *testing.T) {
	p := NewPool()
	defer p.Close()
	assert.Greater(t, p.NumWorkers(), 0)
}
