package reactive_test

import (
	"testing"

	"github.com/delaneyj/vueparty/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func watchLen(rt *reactive.Runtime, a *reactive.Array) *int {
	runs := 0
	reactive.NewWatcher(rt, nil, func() any {
		runs++
		return a.Len()
	}, nil, reactive.WatcherOptions{})
	return &runs
}

// should notify readers on push and expose the appended elements
func TestArrayPushNotifies(t *testing.T) {
	rt := reactive.NewRuntime(reactive.WithSynchronous())
	a := reactive.NewArray(rt, "a", "b")

	runs := watchLen(rt, a)
	require.Equal(t, 1, *runs)

	n := a.Push("c", "d")
	assert.Equal(t, 4, n)
	assert.Equal(t, 2, *runs)
	assert.Equal(t, "d", a.Get(3))
}

// should keep Put silent and SetIndex reactive
func TestArrayPutVersusSetIndex(t *testing.T) {
	rt := reactive.NewRuntime(reactive.WithSynchronous())
	a := reactive.NewArray(rt, 1, 2, 3)

	runs := 0
	reactive.NewWatcher(rt, nil, func() any {
		runs++
		return a.Get(0)
	}, nil, reactive.WatcherOptions{})
	require.Equal(t, 1, runs)

	a.Put(0, 10)
	assert.Equal(t, 1, runs)
	assert.Equal(t, 10, a.Get(0))

	a.SetIndex(0, 20)
	assert.Equal(t, 2, runs)
	assert.Equal(t, 20, a.Get(0))
}

// should grow with nils when SetIndex writes past the end
func TestArraySetIndexGrows(t *testing.T) {
	rt := reactive.NewRuntime(reactive.WithSynchronous())
	a := reactive.NewArray(rt, "a")

	runs := watchLen(rt, a)
	require.Equal(t, 1, *runs)

	a.SetIndex(3, "d")
	assert.Equal(t, 4, a.Len())
	assert.Nil(t, a.Get(1))
	assert.Nil(t, a.Get(2))
	assert.Equal(t, "d", a.Get(3))
	assert.Equal(t, 2, *runs)
}

// should warn and ignore negative indexes
func TestArrayNegativeIndexIgnored(t *testing.T) {
	var warnings []string
	rt := reactive.NewRuntime(
		reactive.WithSynchronous(),
		reactive.WithWarnHandler(func(msg string, owner any) {
			warnings = append(warnings, msg)
		}))
	a := reactive.NewArray(rt, "a")

	a.SetIndex(-1, "x")
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "negative array index")
	assert.Equal(t, 1, a.Len())
}

// should clamp splice bounds and return the removed elements
func TestArraySpliceClampsAndReturnsRemoved(t *testing.T) {
	rt := reactive.NewRuntime(reactive.WithSynchronous())
	a := reactive.NewArray(rt, "a", "b", "c", "d")

	removed := a.Splice(1, 2, "x")
	assert.Equal(t, []any{"b", "c"}, removed)
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, "x", a.Get(1))
	assert.Equal(t, "d", a.Get(2))

	// start beyond the end clamps to an append
	removed = a.Splice(99, 5, "tail")
	assert.Empty(t, removed)
	assert.Equal(t, 4, a.Len())
	assert.Equal(t, "tail", a.Get(3))

	// negative start counts from the end
	removed = a.Splice(-3, 1)
	assert.Equal(t, []any{"x"}, removed)
	assert.Equal(t, []any{"a", "d", "tail"}, []any{a.Get(0), a.Get(1), a.Get(2)})
}

// should notify on shift, unshift and pop
func TestArrayEndMutators(t *testing.T) {
	rt := reactive.NewRuntime(reactive.WithSynchronous())
	a := reactive.NewArray(rt, "b", "c")

	runs := watchLen(rt, a)
	require.Equal(t, 1, *runs)

	assert.Equal(t, 3, a.Unshift("a"))
	assert.Equal(t, 2, *runs)
	assert.Equal(t, "a", a.Get(0))

	assert.Equal(t, "a", a.Shift())
	assert.Equal(t, 3, *runs)

	assert.Equal(t, "c", a.Pop())
	assert.Equal(t, 4, *runs)
	assert.Equal(t, 1, a.Len())

	a.Pop()
	assert.Nil(t, a.Pop(), "popping an empty array yields nil")
}

// should notify on sort and reverse
func TestArraySortAndReverse(t *testing.T) {
	rt := reactive.NewRuntime(reactive.WithSynchronous())
	a := reactive.NewArray(rt, 3, 1, 2)

	runs := watchLen(rt, a)
	require.Equal(t, 1, *runs)

	a.Sort(func(x, y any) bool { return x.(int) < y.(int) })
	assert.Equal(t, 2, *runs)
	assert.Equal(t, []any{1, 2, 3}, []any{a.Get(0), a.Get(1), a.Get(2)})

	a.Reverse()
	assert.Equal(t, 3, *runs)
	assert.Equal(t, []any{3, 2, 1}, []any{a.Get(0), a.Get(1), a.Get(2)})
}

// should observe container elements pushed after construction
func TestArrayObservesInsertedContainers(t *testing.T) {
	rt := reactive.NewRuntime(reactive.WithSynchronous())
	a := reactive.NewArray(rt)

	a.Push(map[string]any{"done": false})
	item, ok := a.Get(0).(*reactive.Map)
	require.True(t, ok, "pushed literals convert like declared ones")

	fires := 0
	reactive.NewWatcher(rt, nil, func() any {
		return a.Get(0)
	}, func(newVal, oldVal any) {
		fires++
	}, reactive.WatcherOptions{Deep: true})

	item.Set("done", true)
	assert.Equal(t, 1, fires)
}
