package host

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailable(t *testing.T) {
	av := Available(42)

	select {
	case <-av.Done():
	default:
		t.Fatal("Available should resolve immediately")
	}

	v, err := av.Value()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestError(t *testing.T) {
	sentinel := errors.New("boom")
	av := Error[int](sentinel)

	v, err := av.Value()
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 0, v)
}

func TestEmplaceResolvesPending(t *testing.T) {
	av := NewAsyncValue[string]()

	select {
	case <-av.Done():
		t.Fatal("fresh async value should be pending")
	default:
	}

	av.Emplace("ready")

	v, err := av.Value()
	require.NoError(t, err)
	assert.Equal(t, "ready", v)
}

func TestDoubleResolvePanics(t *testing.T) {
	av := NewAsyncValue[int]()
	av.Emplace(1)

	assert.Panics(t, func() { av.Emplace(2) })
	assert.Panics(t, func() { av.SetError(errors.New("late")) })
}

func TestValueBeforeResolvePanics(t *testing.T) {
	av := NewAsyncValue[int]()
	assert.Panics(t, func() { _, _ = av.Value() })
}

func TestAwaitBlocksUntilResolve(t *testing.T) {
	av := NewAsyncValue[int]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		av.Emplace(7)
	}()

	v, err := av.Await(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestAwaitHonorsCancellation(t *testing.T) {
	av := NewAsyncValue[int]()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := av.Await(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// Many goroutines observing one publish must all see the resolved value.
func TestConcurrentObservers(t *testing.T) {
	av := NewAsyncValue[[]int]()
	payload := []int{1, 2, 3}

	const observers = 16
	var wg sync.WaitGroup
	results := make([][]int, observers)

	for i := 0; i < observers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := av.Await(context.Background())
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	av.Emplace(payload)
	wg.Wait()

	for i, r := range results {
		assert.Equal(t, payload, r, "observer %d", i)
	}
}
