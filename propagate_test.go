package cascade_test

import (
	"testing"

	"github.com/cascadelabs/cascade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity[T any](a T) T {
	return a
}

func doubleCount(c int) int {
	return c * 2
}

// a -> dsA -> dsB -> dsC -> dsD -> dsE where each node also reads the two
// levels above it; every node must recompute exactly once per write.
func TestComplexCalculationChain(t *testing.T) {
	g := cascade.New()

	a := cascade.Source(g, 1)
	dsA, err := cascade.Computed1(g, a, identity[int])
	require.NoError(t, err)
	dsB, err := cascade.Computed2(g, a, dsA, func(a, dsA int) int {
		return a + dsA
	})
	require.NoError(t, err)
	dsC, err := cascade.Computed3(g, a, dsA, dsB, func(a, dsA, dsB int) int {
		return a + dsA + dsB
	})
	require.NoError(t, err)
	dsD, err := cascade.Computed3(g, dsA, dsB, dsC, func(dsA, dsB, dsC int) int {
		return dsA + dsB + dsC
	})
	require.NoError(t, err)
	dsE, err := cascade.Computed3(g, dsB, dsC, dsD, func(dsB, dsC, dsD int) int {
		return dsB*dsC + dsD
	})
	require.NoError(t, err)

	assert.Equal(t, 1, dsA.Value())
	assert.Equal(t, 2, dsB.Value())
	assert.Equal(t, 4, dsC.Value())
	assert.Equal(t, 7, dsD.Value())
	assert.Equal(t, 15, dsE.Value())

	require.NoError(t, a.Set(10))

	assert.Equal(t, 10, dsA.Value())
	assert.Equal(t, 20, dsB.Value())
	assert.Equal(t, 40, dsC.Value())
	assert.Equal(t, 70, dsD.Value())
	assert.Equal(t, 870, dsE.Value())
}

// a reaches dsB both directly and through dsA; dsB must fire once per write,
// after dsA.
//    a
//   / \
// dsA  |
//   \  |
//    dsB
func TestRepeatDependencyFiresOnce(t *testing.T) {
	g := cascade.New()

	a := cascade.Source(g, 1)
	countA, countB := 0, 0
	dsA, err := cascade.Computed1(g, a, func(a int) int {
		countA++
		return a + 1
	})
	require.NoError(t, err)
	dsB, err := cascade.Computed2(g, a, dsA, func(a, dsA int) int {
		countB++
		return a + dsA
	})
	require.NoError(t, err)

	assert.Equal(t, 1, countA)
	assert.Equal(t, 1, countB)
	assert.Equal(t, 3, dsB.Value())

	require.NoError(t, a.Set(2))
	assert.Equal(t, 2, countA)
	assert.Equal(t, 2, countB)
	assert.Equal(t, 5, dsB.Value())

	require.NoError(t, a.Set(5))
	assert.Equal(t, 3, countA)
	assert.Equal(t, 3, countB)
	assert.Equal(t, 11, dsB.Value())
}

//     s
//    / \
//   a   b
//    \ /
//     c
func TestDiamondFiresOnce(t *testing.T) {
	g := cascade.New()

	s := cascade.Source(g, 1)
	a, err := cascade.Computed1(g, s, identity[int])
	require.NoError(t, err)
	b, err := cascade.Computed1(g, s, func(s int) int { return s * 2 })
	require.NoError(t, err)

	cCount := 0
	c, err := cascade.Computed2(g, a, b, func(a, b int) int {
		cCount++
		return a + b
	})
	require.NoError(t, err)

	assert.Equal(t, 3, c.Value())
	assert.Equal(t, 1, cCount)

	require.NoError(t, s.Set(2))
	assert.Equal(t, 6, c.Value())
	assert.Equal(t, 2, cCount)
}

//     s
//    / \
//   a   b
//    \ /
//     c
//     |
//     d
func TestDiamondTailFiresOnce(t *testing.T) {
	g := cascade.New()

	s := cascade.Source(g, 1)
	a, err := cascade.Computed1(g, s, identity[int])
	require.NoError(t, err)
	b, err := cascade.Computed1(g, s, func(s int) int { return s * 2 })
	require.NoError(t, err)
	c, err := cascade.Computed2(g, a, b, func(a, b int) int { return a + b })
	require.NoError(t, err)

	dCount := 0
	d, err := cascade.Computed1(g, c, func(c int) int {
		dCount++
		return c * 10
	})
	require.NoError(t, err)

	assert.Equal(t, 30, d.Value())
	assert.Equal(t, 1, dCount)

	require.NoError(t, s.Set(2))
	assert.Equal(t, 60, d.Value())
	assert.Equal(t, 2, dCount)
}

// Two stacked diamonds sharing a flank; the lowest node still fires once.
//      s
//     / \
//    a   b
//    \  / \
//     c    |
//      \   |
//       \ /
//        d
func TestNestedDiamondsFireOnce(t *testing.T) {
	g := cascade.New()

	s := cascade.Source(g, 1)
	a, err := cascade.Computed1(g, s, identity[int])
	require.NoError(t, err)
	b, err := cascade.Computed1(g, s, func(s int) int { return s + 10 })
	require.NoError(t, err)
	c, err := cascade.Computed2(g, a, b, func(a, b int) int { return a + b })
	require.NoError(t, err)

	dCount := 0
	d, err := cascade.Computed2(g, c, b, func(c, b int) int {
		dCount++
		return c + b
	})
	require.NoError(t, err)

	assert.Equal(t, 23, d.Value())
	assert.Equal(t, 1, dCount)

	require.NoError(t, s.Set(2))
	assert.Equal(t, 26, d.Value())
	assert.Equal(t, 2, dCount)
}

// Triple-depth convergence: d sits under three distinct paths from s and
// must wait for all of them.
//         s
//      /  |  \
//     a   b   |
//     |  / \  |
//     c |   | |
//      \|   | |
//       e   | |
//        \  | |
//         \ | /
//           d
func TestTripleConvergenceFiresOnce(t *testing.T) {
	g := cascade.New()

	s := cascade.Source(g, 1)
	a, err := cascade.Computed1(g, s, identity[int])
	require.NoError(t, err)
	b, err := cascade.Computed1(g, s, func(s int) int { return s * 3 })
	require.NoError(t, err)
	c, err := cascade.Computed1(g, a, func(a int) int { return a + 1 })
	require.NoError(t, err)
	e, err := cascade.Computed2(g, c, b, func(c, b int) int { return c + b })
	require.NoError(t, err)

	dCount := 0
	d, err := cascade.Computed3(g, e, b, s, func(e, b, s int) int {
		dCount++
		return e + b + s
	})
	require.NoError(t, err)

	assert.Equal(t, 1, dCount)
	assert.Equal(t, 9, d.Value())

	require.NoError(t, s.Set(2))
	assert.Equal(t, 2, dCount)
	assert.Equal(t, 17, d.Value())
}

// Both flanks of the diamond absorb the change, so the tail must not run.
//     s
//    / \
//   a   b  (both always produce the same value)
//    \ /
//     c
func TestTailSkippedWhenAllPathsUnchanged(t *testing.T) {
	g := cascade.New()

	s := cascade.Source(g, 1)
	a, err := cascade.Computed1(g, s, func(int) int { return 7 },
		cascade.WithTrigger(cascade.OnChange))
	require.NoError(t, err)
	b, err := cascade.Computed1(g, s, func(int) int { return 11 },
		cascade.WithTrigger(cascade.OnChange))
	require.NoError(t, err)

	cCount := 0
	c, err := cascade.Computed2(g, a, b, func(a, b int) int {
		cCount++
		return a + b
	})
	require.NoError(t, err)

	assert.Equal(t, 18, c.Value())
	assert.Equal(t, 1, cCount)

	require.NoError(t, s.Set(2))
	assert.Equal(t, 1, cCount)
	assert.Equal(t, 18, c.Value())
}

// One flank absorbs the change, the other does not; the tail fires once.
//     s
//    / \
//   a   b  (a constant, b live)
//    \ /
//     c
func TestTailFiresWhenOnePathChanged(t *testing.T) {
	g := cascade.New()

	s := cascade.Source(g, 1)
	a, err := cascade.Computed1(g, s, func(int) int { return 7 },
		cascade.WithTrigger(cascade.OnChange))
	require.NoError(t, err)
	b, err := cascade.Computed1(g, s, doubleCount,
		cascade.WithTrigger(cascade.OnChange))
	require.NoError(t, err)

	cCount := 0
	c, err := cascade.Computed2(g, a, b, func(a, b int) int {
		cCount++
		return a + b
	})
	require.NoError(t, err)

	assert.Equal(t, 9, c.Value())
	assert.Equal(t, 1, cCount)

	require.NoError(t, s.Set(2))
	assert.Equal(t, 2, cCount)
	assert.Equal(t, 11, c.Value())
}

// Effects observing a mid-chain node run after it, once per cascade.
func TestEffectRunsOncePerCascade(t *testing.T) {
	g := cascade.New()

	s := cascade.Source(g, 1)
	a, err := cascade.Computed1(g, s, identity[int])
	require.NoError(t, err)
	b, err := cascade.Computed2(g, s, a, func(s, a int) int { return s + a })
	require.NoError(t, err)

	var seen []int
	_, err = cascade.Effect1(g, b, func(b int) {
		seen = append(seen, b)
	})
	require.NoError(t, err)

	// eager run at bind, then once per write
	assert.Equal(t, []int{2}, seen)

	require.NoError(t, s.Set(2))
	assert.Equal(t, []int{2, 4}, seen)

	require.NoError(t, s.Set(3))
	assert.Equal(t, []int{2, 4, 6}, seen)
}

// A panicking expression must release the node's reentrancy guard, so the
// node keeps recomputing once the caller has recovered.
func TestPanickingComputeDoesNotWedgeNode(t *testing.T) {
	g := cascade.New()

	a := cascade.Source(g, 1)
	boom := true
	ds, err := cascade.Computed1(g, a, func(a int) int {
		if boom && a == 2 {
			panic("bad input")
		}
		return a * 10
	})
	require.NoError(t, err)
	assert.Equal(t, 10, ds.Value())

	assert.Panics(t, func() { _ = a.Set(2) })
	boom = false

	require.NoError(t, a.Set(3))
	assert.Equal(t, 30, ds.Value())
}

// A write that does not change the value still cascades; Always nodes
// recompute, OnChange nodes swallow it.
func TestUnchangedWriteStillNotifies(t *testing.T) {
	g := cascade.New()

	a := cascade.Source(g, 1)
	alwaysCount, belowCount := 0, 0
	_, err := cascade.Computed1(g, a, func(a int) int {
		alwaysCount++
		return a
	})
	require.NoError(t, err)
	onChange, err := cascade.Computed1(g, a, identity[int],
		cascade.WithTrigger(cascade.OnChange))
	require.NoError(t, err)
	_, err = cascade.Computed1(g, onChange, func(v int) int {
		belowCount++
		return v
	})
	require.NoError(t, err)

	assert.Equal(t, 1, alwaysCount)
	assert.Equal(t, 1, belowCount)

	require.NoError(t, a.Set(1))
	assert.Equal(t, 2, alwaysCount)
	// onChange produced the same value, so nothing below it ran
	assert.Equal(t, 1, belowCount)

	require.NoError(t, a.Set(2))
	assert.Equal(t, 3, alwaysCount)
	assert.Equal(t, 2, belowCount)
}
