package reactive_test

import (
	"testing"

	"github.com/delaneyj/vueparty/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// should not evaluate until read, then cache until a dependency changes
func TestComputedIsLazyAndCached(t *testing.T) {
	rt := reactive.NewRuntime(reactive.WithSynchronous())
	m := reactive.NewMap(rt, map[string]any{"n": 1})

	evals := 0
	double := reactive.NewComputed(rt, func() any {
		evals++
		return m.Get("n").(int) * 2
	})
	assert.Equal(t, 0, evals)

	assert.Equal(t, 2, double.Value())
	assert.Equal(t, 1, evals)
	assert.Equal(t, 2, double.Value())
	assert.Equal(t, 1, evals, "a clean computed serves the cache")

	m.Set("n", 3)
	assert.Equal(t, 1, evals, "a write only marks it dirty")
	assert.Equal(t, 6, double.Value())
	assert.Equal(t, 2, evals)
}

// should link its dependencies onto the collecting watcher
func TestComputedLinksToOuterWatcher(t *testing.T) {
	rt := reactive.NewRuntime(reactive.WithSynchronous())
	m := reactive.NewMap(rt, map[string]any{"n": 2})
	double := reactive.NewComputed(rt, func() any {
		return m.Get("n").(int) * 2
	})

	var seen []int
	reactive.NewWatcher(rt, nil, func() any {
		seen = append(seen, double.Value().(int))
		return nil
	}, nil, reactive.WatcherOptions{})
	require.Equal(t, []int{4}, seen)

	m.Set("n", 5)
	assert.Equal(t, []int{4, 10}, seen)
}

// should propagate through a chain of computeds
func TestComputedChain(t *testing.T) {
	rt := reactive.NewRuntime(reactive.WithSynchronous())
	m := reactive.NewMap(rt, map[string]any{"base": 1})

	plusOne := reactive.NewComputed(rt, func() any {
		return m.Get("base").(int) + 1
	})
	squared := reactive.NewComputed(rt, func() any {
		v := plusOne.Value().(int)
		return v * v
	})

	var seen []int
	reactive.NewWatcher(rt, nil, func() any {
		seen = append(seen, squared.Value().(int))
		return nil
	}, nil, reactive.WatcherOptions{})
	require.Equal(t, []int{4}, seen)

	m.Set("base", 3)
	assert.Equal(t, []int{4, 16}, seen)
}

// should stop updating after teardown
func TestComputedTeardown(t *testing.T) {
	rt := reactive.NewRuntime(reactive.WithSynchronous())
	m := reactive.NewMap(rt, map[string]any{"n": 1})

	evals := 0
	c := reactive.NewComputed(rt, func() any {
		evals++
		return m.Get("n")
	})
	require.Equal(t, 1, c.Value())
	require.Equal(t, 1, evals)

	c.Teardown()
	m.Set("n", 2)
	assert.Equal(t, 1, evals)
}
