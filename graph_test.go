package cascade_test

import (
	"testing"

	"github.com/cascadelabs/cascade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelfDependencyRejected(t *testing.T) {
	g := cascade.New()

	a := cascade.Source(g, 1)
	dsA, err := cascade.Computed1(g, a, func(a int) int { return a * 2 })
	require.NoError(t, err)
	assert.Equal(t, 2, dsA.Value())

	err = dsA.Rebind(cascade.Deps(dsA), func(args ...any) int {
		return args[0].(int) * 2
	})
	require.ErrorIs(t, err, cascade.ErrSelfDependency)

	// the failed rebind left dsA edge-less: writes no longer reach it
	require.NoError(t, a.Set(5))
	assert.Equal(t, 2, dsA.Value())
}

//  a -> b -> c, then try c as a dependency of b
func TestCycleRejected(t *testing.T) {
	g := cascade.New()

	a := cascade.Source(g, 1)
	b, err := cascade.Computed1(g, a, func(a int) int { return a + 1 })
	require.NoError(t, err)
	c, err := cascade.Computed1(g, b, func(b int) int { return b + 1 })
	require.NoError(t, err)
	assert.Equal(t, 3, c.Value())

	err = b.Rebind(cascade.Deps(a, c), func(args ...any) int {
		return args[0].(int) + args[1].(int)
	})
	require.ErrorIs(t, err, cascade.ErrCycleDependency)

	// b keeps its last value but no longer recomputes
	require.NoError(t, a.Set(10))
	assert.Equal(t, 2, b.Value())
	assert.Equal(t, 3, c.Value())
}

func TestEffectCannotBeObserved(t *testing.T) {
	g := cascade.New()

	a := cascade.Source(g, 1)
	eff, err := cascade.Effect1(g, a, func(int) {})
	require.NoError(t, err)

	_, err = cascade.Calc(g, cascade.Deps(eff), func(args ...any) int {
		return 0
	})
	require.ErrorIs(t, err, cascade.ErrEffectObserved)
}

// Closing the chain head takes every transitive observer with it, the
// convergent dsG included; only the independently sourced dsF survives.
//  a -> dsA -> dsB -> dsC -> dsD -> dsE
//              \___________/
//                   dsG
//  b -> dsF
func TestCloseCascadesThroughObservers(t *testing.T) {
	g := cascade.New()

	a := cascade.Source(g, 1)
	b := cascade.Source(g, 100)
	inc := func(v int) int { return v + 1 }
	dsA, err := cascade.Computed1(g, a, inc)
	require.NoError(t, err)
	dsB, err := cascade.Computed1(g, dsA, inc)
	require.NoError(t, err)
	dsC, err := cascade.Computed1(g, dsB, inc)
	require.NoError(t, err)
	dsD, err := cascade.Computed1(g, dsC, inc)
	require.NoError(t, err)
	dsE, err := cascade.Computed1(g, dsD, inc)
	require.NoError(t, err)
	dsF, err := cascade.Computed1(g, b, inc)
	require.NoError(t, err)
	dsG, err := cascade.Computed2(g, dsB, dsD, func(dsB, dsD int) int {
		return dsB + dsD
	})
	require.NoError(t, err)

	require.NoError(t, dsA.Close())

	assert.True(t, a.Alive())
	assert.False(t, dsA.Alive())
	assert.False(t, dsB.Alive())
	assert.False(t, dsC.Alive())
	assert.False(t, dsD.Alive())
	assert.False(t, dsE.Alive())
	assert.True(t, dsF.Alive())
	assert.False(t, dsG.Alive())

	_, err = dsC.Get()
	require.ErrorIs(t, err, cascade.ErrDanglingHandle)
	require.ErrorIs(t, dsE.Close(), cascade.ErrDanglingHandle)

	// the survivors still react
	require.NoError(t, b.Set(200))
	assert.Equal(t, 201, dsF.Value())
}

func TestCloseDiamondVisitsOnce(t *testing.T) {
	g := cascade.New()

	s := cascade.Source(g, 1)
	a, err := cascade.Computed1(g, s, identity[int])
	require.NoError(t, err)
	b, err := cascade.Computed1(g, s, identity[int])
	require.NoError(t, err)
	c, err := cascade.Computed2(g, a, b, func(a, b int) int { return a + b })
	require.NoError(t, err)

	require.NoError(t, s.Close())
	assert.False(t, a.Alive())
	assert.False(t, b.Alive())
	assert.False(t, c.Alive())
	assert.Equal(t, 0, g.Len())
}

func TestRebindSwitchesDependencies(t *testing.T) {
	g := cascade.New()

	a := cascade.Source(g, 1)
	b := cascade.Source(g, 100)
	ds, err := cascade.Computed1(g, a, func(a int) int { return a * 2 })
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Value())

	require.NoError(t, ds.Rebind(cascade.Deps(b), func(args ...any) int {
		return args[0].(int) + 1
	}))
	// rebinding evaluates eagerly against the new dependency
	assert.Equal(t, 101, ds.Value())

	require.NoError(t, a.Set(7))
	assert.Equal(t, 101, ds.Value())

	require.NoError(t, b.Set(200))
	assert.Equal(t, 201, ds.Value())
}

func TestSetOnBoundNodeRejected(t *testing.T) {
	g := cascade.New()

	a := cascade.Source(g, 1)
	ds, err := cascade.Computed1(g, a, identity[int])
	require.NoError(t, err)

	require.ErrorIs(t, ds.Set(5), cascade.ErrNotSource)
}

func TestGetUpdatedEvaluatesWithoutCommit(t *testing.T) {
	g := cascade.New()

	a := cascade.Source(g, 1)
	count := 0
	ds, err := cascade.Computed1(g, a, func(a int) int {
		count++
		return a * 2
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	fresh, err := ds.GetUpdated()
	require.NoError(t, err)
	assert.Equal(t, 2, fresh)
	assert.Equal(t, 2, count)

	// the committed cell was not touched
	assert.Equal(t, 2, ds.Value())
	assert.Equal(t, 2, count)
}
