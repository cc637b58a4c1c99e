package cascade_test

import (
	"testing"

	"github.com/cascadelabs/cascade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAutoTrackingCollectsReads(t *testing.T) {
	g := cascade.New()

	first := cascade.Source(g, "John")
	last := cascade.Source(g, "Smith")
	count := 0
	full, err := cascade.Computed(g, func() string {
		count++
		return first.Value() + " " + last.Value()
	})
	require.NoError(t, err)

	assert.Equal(t, "John Smith", full.Value())
	assert.Equal(t, 1, count)

	require.NoError(t, last.Set("Doe"))
	assert.Equal(t, "John Doe", full.Value())
	assert.Equal(t, 2, count)
}

// The tracked edge set follows the branch actually taken, so writes to the
// untaken branch stop triggering recomputes.
func TestAutoTrackingConditionalDependencies(t *testing.T) {
	g := cascade.New()

	useX := cascade.Source(g, true)
	x := cascade.Source(g, "x1")
	y := cascade.Source(g, "y1")
	count := 0
	picked, err := cascade.Computed(g, func() string {
		count++
		if useX.Value() {
			return x.Value()
		}
		return y.Value()
	})
	require.NoError(t, err)
	assert.Equal(t, "x1", picked.Value())
	assert.Equal(t, 1, count)

	require.NoError(t, y.Set("y2"))
	assert.Equal(t, 1, count)

	require.NoError(t, useX.Set(false))
	assert.Equal(t, "y2", picked.Value())
	assert.Equal(t, 2, count)

	require.NoError(t, x.Set("x2"))
	assert.Equal(t, 2, count)

	require.NoError(t, y.Set("y3"))
	assert.Equal(t, "y3", picked.Value())
	assert.Equal(t, 3, count)
}

func TestObserveTracksReads(t *testing.T) {
	g := cascade.New()

	a := cascade.Source(g, 1)
	var seen []int
	_, err := cascade.Observe(g, func() {
		seen = append(seen, a.Value())
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1}, seen)

	require.NoError(t, a.Set(2))
	assert.Equal(t, []int{1, 2}, seen)
}

func TestRebindFuncRetracks(t *testing.T) {
	g := cascade.New()

	a := cascade.Source(g, 1)
	b := cascade.Source(g, 100)
	ds, err := cascade.Computed(g, func() int { return a.Value() * 2 })
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Value())

	require.NoError(t, ds.RebindFunc(func() int { return b.Value() + 1 }))
	assert.Equal(t, 101, ds.Value())

	require.NoError(t, a.Set(50))
	assert.Equal(t, 101, ds.Value())

	require.NoError(t, b.Set(200))
	assert.Equal(t, 201, ds.Value())
}

func TestRebindTypeMismatch(t *testing.T) {
	g := cascade.New()

	a := cascade.Source(g, 1)
	ds, err := cascade.ComputedWith(g, nil, func() any { return a.Value() * 2 })
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Value())

	err = ds.RebindFunc(func() any { return "nope" })
	require.ErrorIs(t, err, cascade.ErrTypeMismatch)

	// the node keeps its last value but is edge-less
	assert.Equal(t, 2, ds.Value())
	require.NoError(t, a.Set(10))
	assert.Equal(t, 2, ds.Value())
}

func TestExplicitArgumentOrder(t *testing.T) {
	g := cascade.New()

	a := cascade.Source(g, "a")
	b := cascade.Source(g, "b")
	ds, err := cascade.Calc(g, cascade.Deps(a, b), func(args ...any) string {
		return args[0].(string) + args[1].(string)
	})
	require.NoError(t, err)
	assert.Equal(t, "ab", ds.Value())

	require.NoError(t, b.Set("B"))
	assert.Equal(t, "aB", ds.Value())
}

// A dependency listed twice adds a single edge.
func TestDuplicateDependencyCollapses(t *testing.T) {
	g := cascade.New()

	a := cascade.Source(g, 2)
	count := 0
	ds, err := cascade.Calc(g, cascade.Deps(a, a), func(args ...any) int {
		count++
		return args[0].(int) * args[1].(int)
	})
	require.NoError(t, err)
	assert.Equal(t, 4, ds.Value())
	assert.Equal(t, 1, count)

	require.NoError(t, a.Set(3))
	assert.Equal(t, 9, ds.Value())
	assert.Equal(t, 2, count)
}
