package seriesgo_test

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/seriesgo"
)

func seqOf[T any](vs ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range vs {
			if !yield(v) {
				return
			}
		}
	}
}

func TestFromSliceDefaultIndex(t *testing.T) {
	tests := []struct {
		name string
		vs   []string
	}{
		{"Empty", nil},
		{"Single", []string{"a"}},
		{"Many", []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := seriesgo.FromSlice(tt.vs)

			vs, err := s.ToArray()
			require.NoError(t, err)
			assert.Equal(t, len(tt.vs), len(vs))
			for i := range tt.vs {
				assert.Equal(t, tt.vs[i], vs[i])
			}

			pairs, err := s.ToPairs()
			require.NoError(t, err)
			for i, p := range pairs {
				assert.Equal(t, i, p.Key)
				assert.Equal(t, tt.vs[i], p.Value)
			}
		})
	}
}

func TestFromSliceLenKnownWithoutIteration(t *testing.T) {
	s := seriesgo.FromSlice([]int{1, 2, 3})

	n, ok := s.Len()
	assert.Equal(t, 3, n)
	assert.True(t, ok)
	assert.False(t, s.IsBaked())
}

func TestNewValuesWithIndex(t *testing.T) {
	s, err := seriesgo.New(
		seriesgo.Values[string, int]([]int{1, 2, 3}),
		seriesgo.Index[string, int]([]string{"a", "b", "c"}),
	)
	require.NoError(t, err)

	pairs, err := s.ToPairs()
	require.NoError(t, err)
	assert.Equal(t, []seriesgo.Pair[string, int]{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
		{Key: "c", Value: 3},
	}, pairs)
}

func TestNewPairs(t *testing.T) {
	s, err := seriesgo.New(
		seriesgo.Pairs([]seriesgo.Pair[string, float64]{
			{Key: "x", Value: 1.5},
			{Key: "y", Value: 2.5},
		}),
	)
	require.NoError(t, err)

	vs, err := s.ToArray()
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5, 2.5}, vs)

	keys, err := s.Index().ToSlice()
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, keys)
}

func TestNewEmpty(t *testing.T) {
	s, err := seriesgo.New[int, string]()
	require.NoError(t, err)
	assert.True(t, s.IsBaked())

	vs, err := s.ToArray()
	require.NoError(t, err)
	assert.Empty(t, vs)

	keys, err := s.Index().ToSlice()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestNewConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		opts []seriesgo.Option[string, int]
		want error
	}{
		{
			"ValuesAndPairs",
			[]seriesgo.Option[string, int]{
				seriesgo.Values[string, int]([]int{1}),
				seriesgo.Pairs([]seriesgo.Pair[string, int]{{Key: "a", Value: 1}}),
			},
			seriesgo.ErrConflictingConfig,
		},
		{
			"PairsAndIndex",
			[]seriesgo.Option[string, int]{
				seriesgo.Pairs([]seriesgo.Pair[string, int]{{Key: "a", Value: 1}}),
				seriesgo.Index[string, int]([]string{"a"}),
			},
			seriesgo.ErrConflictingConfig,
		},
		{
			"IndexAlone",
			[]seriesgo.Option[string, int]{
				seriesgo.Index[string, int]([]string{"a"}),
			},
			seriesgo.ErrUnknownConfig,
		},
		{
			"ValuesWithoutIndexNonIntKeys",
			[]seriesgo.Option[string, int]{
				seriesgo.Values[string, int]([]int{1, 2}),
			},
			seriesgo.ErrDefaultIndexType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := seriesgo.New(tt.opts...)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNewValuesWithoutIndexIntKeys(t *testing.T) {
	s, err := seriesgo.New(
		seriesgo.Values[int, string]([]string{"a", "b"}),
	)
	require.NoError(t, err)

	pairs, err := s.ToPairs()
	require.NoError(t, err)
	assert.Equal(t, []seriesgo.Pair[int, string]{
		{Key: 0, Value: "a"},
		{Key: 1, Value: "b"},
	}, pairs)
}

func TestNewStaticLengthMismatch(t *testing.T) {
	// Both sides are slices with known lengths, so the mismatch is
	// statically detectable and must fail at construction.
	_, err := seriesgo.New(
		seriesgo.Values[int, int]([]int{1, 2}),
		seriesgo.Index[int, int]([]int{1}),
	)
	require.Error(t, err)

	var lme *seriesgo.LengthMismatchError
	require.ErrorAs(t, err, &lme)
	assert.Equal(t, 1, lme.Keys)
	assert.Equal(t, 2, lme.Values)
}

func TestNewLazyLengthMismatch(t *testing.T) {
	// Iterable-backed sides have unknown lengths, so construction must
	// succeed and the mismatch must surface at the first full traversal,
	// reporting exact counts.
	s, err := seriesgo.New(
		seriesgo.ValueSeq[int, int](seqOf(1, 2)),
		seriesgo.IndexSeq[int, int](seqOf(1)),
	)
	require.NoError(t, err)

	_, err = s.ToArray()
	require.Error(t, err)

	var lme *seriesgo.LengthMismatchError
	require.ErrorAs(t, err, &lme)
	assert.Equal(t, 1, lme.Keys)
	assert.Equal(t, 2, lme.Values)
	assert.False(t, s.IsBaked())
}

func TestNewBakedOption(t *testing.T) {
	invoked := 0
	s, err := seriesgo.New(
		seriesgo.ValueSeq[int, int](func(yield func(int) bool) {
			for _, v := range []int{1, 2, 3} {
				invoked++
				if !yield(v) {
					return
				}
			}
		}),
	)
	require.NoError(t, err)
	assert.Zero(t, invoked, "construction must not consume the iterable")

	s, err = seriesgo.New(
		seriesgo.ValueSeq[int, int](seqOf(4, 5, 6)),
		seriesgo.Baked[int, int](),
	)
	require.NoError(t, err)
	assert.True(t, s.IsBaked())

	vs, err := s.ToArray()
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5, 6}, vs)
}

func TestFromSeqLazyConstruction(t *testing.T) {
	produced := 0
	s := seriesgo.FromSeq(func(yield func(string) bool) {
		for _, v := range []string{"a", "b"} {
			produced++
			if !yield(v) {
				return
			}
		}
	})
	assert.Zero(t, produced)

	pairs, err := s.ToPairs()
	require.NoError(t, err)
	assert.Equal(t, []seriesgo.Pair[int, string]{
		{Key: 0, Value: "a"},
		{Key: 1, Value: "b"},
	}, pairs)
	assert.Equal(t, 2, produced)
}

func TestFromPairsRoundTrip(t *testing.T) {
	s, err := seriesgo.New(
		seriesgo.Values[string, int]([]int{1, 2, 3}),
		seriesgo.Index[string, int]([]string{"a", "b", "c"}),
	)
	require.NoError(t, err)

	pairs, err := s.ToPairs()
	require.NoError(t, err)

	rt := seriesgo.FromPairs(pairs)

	wantValues, err := s.ToArray()
	require.NoError(t, err)
	gotValues, err := rt.ToArray()
	require.NoError(t, err)
	assert.Equal(t, wantValues, gotValues)

	wantKeys, err := s.Index().ToSlice()
	require.NoError(t, err)
	gotKeys, err := rt.Index().ToSlice()
	require.NoError(t, err)
	assert.Equal(t, wantKeys, gotKeys)
}

func TestEmptySeries(t *testing.T) {
	s := seriesgo.Empty[string, int]()
	assert.True(t, s.IsBaked())

	n, ok := s.Len()
	assert.Zero(t, n)
	assert.True(t, ok)

	vs, err := s.ToArray()
	require.NoError(t, err)
	assert.Empty(t, vs)
}

func TestPairsIteration(t *testing.T) {
	s := seriesgo.FromSlice([]int{10, 20, 30})

	var keys []int
	var vals []int
	for k, v := range s.Pairs() {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	assert.Equal(t, []int{0, 1, 2}, keys)
	assert.Equal(t, []int{10, 20, 30}, vals)
}

func TestValuesEarlyTermination(t *testing.T) {
	produced := 0
	s := seriesgo.FromSeq(func(yield func(int) bool) {
		for i := 0; i < 100; i++ {
			produced++
			if !yield(i) {
				return
			}
		}
	})

	var got []int
	for v := range s.Values() {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []int{0, 1, 2}, got)
	assert.LessOrEqual(t, produced, 4)
}

func TestValuesReuseAfterFullTraversal(t *testing.T) {
	s := seriesgo.FromSeq(seqOf(1, 2, 3))

	var first []int
	for v := range s.Values() {
		first = append(first, v)
	}
	assert.Equal(t, []int{1, 2, 3}, first)

	// The single-pass source is gone; a terminal operation reports it.
	_, err := s.ToArray()
	assert.ErrorIs(t, err, seriesgo.ErrSourceConsumed)

	// Pure iteration stays silent and yields nothing.
	count := 0
	for range s.Values() {
		count++
	}
	assert.Zero(t, count)
}
