package seriesgo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/seriesgo"
)

func TestBakeIdempotent(t *testing.T) {
	s := seriesgo.FromSlice([]int{1, 2, 3})

	b1, err := s.Bake()
	require.NoError(t, err)
	assert.True(t, b1.IsBaked())

	b2, err := b1.Bake()
	require.NoError(t, err)
	assert.Same(t, b1, b2)

	p1, err := b1.ToPairs()
	require.NoError(t, err)
	p2, err := b2.ToPairs()
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestBakeDoesNotReinvokeSelector(t *testing.T) {
	metrics := &seriesgo.BasicMetricsCollector{}
	s, err := seriesgo.New(
		seriesgo.Values[int, int]([]int{1, 2, 3}),
		seriesgo.Index[int, int]([]int{0, 1, 2}),
		seriesgo.WithMetrics[int, int](metrics),
	)
	require.NoError(t, err)

	sel := seriesgo.Select(s, func(v, _ int) int { return v * 2 })

	baked, err := sel.Bake()
	require.NoError(t, err)
	assert.Equal(t, int64(3), metrics.GetStats().SelectorCalls)

	// Consuming the baked series repeatedly reads the cache; the selector
	// must not run again.
	for range 3 {
		vs, err := baked.ToArray()
		require.NoError(t, err)
		assert.Equal(t, []int{2, 4, 6}, vs)
	}
	_, err = baked.Bake()
	require.NoError(t, err)
	assert.Equal(t, int64(3), metrics.GetStats().SelectorCalls)
}

func TestBakeConsumesSourceExactlyOnce(t *testing.T) {
	produced := 0
	s := seriesgo.FromSeq(func(yield func(int) bool) {
		for _, v := range []int{7, 8} {
			produced++
			if !yield(v) {
				return
			}
		}
	})

	baked, err := s.Bake()
	require.NoError(t, err)
	assert.Equal(t, 2, produced)

	for range 3 {
		vs, err := baked.ToArray()
		require.NoError(t, err)
		assert.Equal(t, []int{7, 8}, vs)
	}
	assert.Equal(t, 2, produced)
}

func TestTerminalOpBakesReceiverAsSideEffect(t *testing.T) {
	// The first terminal call on an unbaked series fills the write-once
	// cache, so later calls on the same instance succeed even though the
	// upstream iterable is single-pass.
	s := seriesgo.FromSeq(seqOf("a", "b", "c"))

	vs, err := s.ToArray()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, vs)
	assert.True(t, s.IsBaked())

	pairs, err := s.ToPairs()
	require.NoError(t, err)
	assert.Len(t, pairs, 3)
}

func TestBakeAfterSourceConsumed(t *testing.T) {
	s := seriesgo.FromSeq(seqOf(1, 2))

	// Claim the traversal without the cache fill.
	for range s.Values() {
	}

	_, err := s.Bake()
	assert.ErrorIs(t, err, seriesgo.ErrSourceConsumed)
}

func TestSharedUpstreamConsumedByDerivedSeries(t *testing.T) {
	// Two derived series share one single-pass upstream. Consuming the
	// first claims it; the second reports the caller error.
	s := seriesgo.FromSeq(seqOf(1, 2, 3))
	a := s.Skip(1)
	b := s.Skip(2)

	vs, err := a.ToArray()
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, vs)

	_, err = b.ToArray()
	assert.ErrorIs(t, err, seriesgo.ErrSourceConsumed)
}

func TestBakeMetrics(t *testing.T) {
	metrics := &seriesgo.BasicMetricsCollector{}
	s, err := seriesgo.New(
		seriesgo.Values[int, int]([]int{1, 2, 3}),
		seriesgo.Index[int, int]([]int{10, 20, 30}),
		seriesgo.WithMetrics[int, int](metrics),
	)
	require.NoError(t, err)

	_, err = s.Bake()
	require.NoError(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.BakeCount)
	assert.Equal(t, int64(3), stats.BakePairs)
	assert.Zero(t, stats.BakeErrors)
}

func TestBakeErrorMetrics(t *testing.T) {
	metrics := &seriesgo.BasicMetricsCollector{}
	s, err := seriesgo.New(
		seriesgo.ValueSeq[int, int](seqOf(1, 2, 3)),
		seriesgo.IndexSeq[int, int](seqOf(10)),
		seriesgo.WithMetrics[int, int](metrics),
	)
	require.NoError(t, err)

	_, err = s.Bake()
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.BakeCount)
	assert.Equal(t, int64(1), stats.BakeErrors)
}

func TestToPairsReturnsIndependentCopies(t *testing.T) {
	s := seriesgo.FromSlice([]string{"a", "b"})

	p1, err := s.ToPairs()
	require.NoError(t, err)
	p1[0].Value = "mutated"

	p2, err := s.ToPairs()
	require.NoError(t, err)
	assert.Equal(t, "a", p2[0].Value)
}
