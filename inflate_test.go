package seriesgo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/seriesgo"
	"github.com/hupe1980/seriesgo/frame"
)

type reading struct {
	Sensor string
	Value  float64
}

func TestInflate(t *testing.T) {
	s, err := seriesgo.New(
		seriesgo.Values[string, reading]([]reading{
			{Sensor: "temp", Value: 21.5},
			{Sensor: "hum", Value: 40.0},
		}),
		seriesgo.Index[string, reading]([]string{"r1", "r2"}),
	)
	require.NoError(t, err)

	df, err := s.Inflate(func(r reading) frame.Row {
		return frame.Row{"sensor": r.Sensor, "value": r.Value}
	})
	require.NoError(t, err)

	assert.Equal(t, 2, df.Len())
	assert.Equal(t, []string{"sensor", "value"}, df.Columns())
	assert.Equal(t, []any{"r1", "r2"}, df.Keys())
	assert.Equal(t, []any{"temp", "hum"}, df.Column("sensor"))
	assert.Equal(t, []any{21.5, 40.0}, df.Column("value"))
}

func TestInflateEmpty(t *testing.T) {
	s := seriesgo.Empty[int, reading]()

	df, err := s.Inflate(func(r reading) frame.Row {
		return frame.Row{"sensor": r.Sensor}
	})
	require.NoError(t, err)
	assert.Zero(t, df.Len())
	assert.Empty(t, df.Columns())
}

func TestInflatePropagatesEvaluationErrors(t *testing.T) {
	s, err := seriesgo.New(
		seriesgo.ValueSeq[int, reading](seqOf(reading{Sensor: "a"}, reading{Sensor: "b"})),
		seriesgo.IndexSeq[int, reading](seqOf(1)),
	)
	require.NoError(t, err)

	_, err = s.Inflate(func(r reading) frame.Row {
		return frame.Row{"sensor": r.Sensor}
	})
	var lme *seriesgo.LengthMismatchError
	assert.ErrorAs(t, err, &lme)
}

func TestInflateAfterTransformChain(t *testing.T) {
	s := seriesgo.FromSlice([]float64{1, 2, 3, 4})

	scaled := seriesgo.Select(s.Skip(2), func(v float64, i int) reading {
		return reading{Sensor: "s", Value: v * 10}
	})

	df, err := scaled.Inflate(func(r reading) frame.Row {
		return frame.Row{"sensor": r.Sensor, "value": r.Value}
	})
	require.NoError(t, err)
	assert.Equal(t, 2, df.Len())
	assert.Equal(t, []any{2, 3}, df.Keys())
	assert.Equal(t, []any{30.0, 40.0}, df.Column("value"))
}
