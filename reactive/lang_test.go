package reactive_test

import (
	"testing"

	"github.com/delaneyj/vueparty/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// should walk dotted paths through maps and arrays
func TestParsePathWalksContainers(t *testing.T) {
	rt := reactive.NewRuntime(reactive.WithSynchronous())
	root := reactive.NewMap(rt, map[string]any{
		"user": map[string]any{
			"address": map[string]any{"city": "oslo"},
			"pets":    []any{"cat", "dog"},
		},
	})

	getter, ok := reactive.ParsePath("user.address.city")
	require.True(t, ok)
	assert.Equal(t, "oslo", getter(root))

	byIndex, ok := reactive.ParsePath("user.pets.1")
	require.True(t, ok)
	assert.Equal(t, "dog", byIndex(root))

	missing, ok := reactive.ParsePath("user.address.zip")
	require.True(t, ok)
	assert.Nil(t, missing(root))

	outOfRange, ok := reactive.ParsePath("user.pets.9")
	require.True(t, ok)
	assert.Nil(t, outOfRange(root))
}

// should reject anything that is not a simple path
func TestParsePathRejectsExpressions(t *testing.T) {
	for _, bad := range []string{"a + b", "items[0]", "fn()", "a b"} {
		_, ok := reactive.ParsePath(bad)
		assert.False(t, ok, bad)
	}
	_, ok := reactive.ParsePath("$root._private.value9")
	assert.True(t, ok, "identifier charset includes $ and _")
}

// should resolve the first segment through a custom scope
func TestParsePathUsesScope(t *testing.T) {
	rt := reactive.NewRuntime(reactive.WithSynchronous())
	inner := reactive.NewMap(rt, map[string]any{"total": 42})

	scope := scopeFunc(func(key string) (any, bool) {
		if key == "cart" {
			return inner, true
		}
		return nil, false
	})

	getter, ok := reactive.ParsePath("cart.total")
	require.True(t, ok)
	assert.Equal(t, 42, getter(scope))

	elsewhere, ok := reactive.ParsePath("nothing.total")
	require.True(t, ok)
	assert.Nil(t, elsewhere(scope))
}

type scopeFunc func(key string) (any, bool)

func (f scopeFunc) Lookup(key string) (any, bool) { return f(key) }

// should register deps for every container read along the path
func TestParsePathReadsAreTracked(t *testing.T) {
	rt := reactive.NewRuntime(reactive.WithSynchronous())
	root := reactive.NewMap(rt, map[string]any{
		"user": map[string]any{"name": "ada"},
	})
	getter, ok := reactive.ParsePath("user.name")
	require.True(t, ok)

	var seen []any
	reactive.NewWatcher(rt, nil, func() any {
		v := getter(root)
		seen = append(seen, v)
		return v
	}, nil, reactive.WatcherOptions{})
	require.Equal(t, []any{"ada"}, seen)

	user := root.Get("user").(*reactive.Map)
	user.Set("name", "grace")
	assert.Equal(t, []any{"ada", "grace"}, seen)

	// replacing the whole branch re-fires through the outer key
	root.Set("user", map[string]any{"name": "alan"})
	assert.Equal(t, []any{"ada", "grace", "alan"}, seen)
}
