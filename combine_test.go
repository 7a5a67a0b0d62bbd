package binvec

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/binvec/bitvec"
	"github.com/hupe1980/binvec/testutil"
)

func TestWeightedCombine_FullWeightOnA(t *testing.T) {
	rng := testutil.NewRNG(1)
	a := rng.BitVector(5000)
	b := rng.BitVector(5000)

	out, err := WeightedCombine(a, 1.0, b, 0.0)
	require.NoError(t, err)
	assert.True(t, out.Equal(a))
}

func TestWeightedCombine_EqualWeights(t *testing.T) {
	const dim = 10000
	rng := testutil.NewRNG(2)
	a := rng.BitVector(dim)
	b := rng.BitVector(dim)

	out, err := WeightedCombine(a, 2.5, b, 2.5)
	require.NoError(t, err)

	single, set := 0, 0
	for i := 0; i < dim; i++ {
		switch {
		case a.Get(i) && b.Get(i):
			assert.True(t, out.Get(i), "position %d set in both", i)
		case !a.Get(i) && !b.Get(i):
			assert.False(t, out.Get(i), "position %d set in neither", i)
		default:
			single++
			if out.Get(i) {
				set++
			}
		}
	}
	assert.InDelta(t, 0.5, float64(set)/float64(single), 0.05)
}

func TestWeightedCombine_SkewedWeights(t *testing.T) {
	const dim = 20000
	rng := testutil.NewRNG(3)
	a := rng.BitVector(dim)
	b := bitvec.New(dim)

	out, err := WeightedCombine(a, 3, b, 1)
	require.NoError(t, err)

	kept := 0
	for i := 0; i < dim; i++ {
		if out.Get(i) {
			require.True(t, a.Get(i))
			kept++
		}
	}
	assert.InDelta(t, 0.75, float64(kept)/float64(a.Count()), 0.03)
}

func TestWeightedCombine_SeedDependsOnlyOnA(t *testing.T) {
	const dim = 4096
	rng := testutil.NewRNG(4)
	a := rng.BitVector(dim)
	b1 := rng.BitVector(dim)
	b2 := rng.BitVector(dim)

	out1, err := WeightedCombine(a, 1, b1, 1)
	require.NoError(t, err)
	out2, err := WeightedCombine(a.Clone(), 1, b2, 1)
	require.NoError(t, err)

	compared := 0
	for i := 0; i < dim; i++ {
		// Where exactly one operand is set in both calls, p = 0.5 and the draw is shared.
		if a.Get(i) != b1.Get(i) && a.Get(i) != b2.Get(i) {
			compared++
			assert.Equal(t, out1.Get(i), out2.Get(i), "position %d", i)
		}
	}
	assert.Greater(t, compared, dim/8)
}

func TestWeightedCombine_Deterministic(t *testing.T) {
	rng := testutil.NewRNG(5)
	a := rng.BitVector(1000)
	b := rng.BitVector(1000)

	x, err := WeightedCombine(a, 0.3, b, 0.7)
	require.NoError(t, err)
	y, err := WeightedCombine(a, 0.3, b, 0.7)
	require.NoError(t, err)
	assert.True(t, x.Equal(y))
}

func TestWeightedCombine_InvalidWeight(t *testing.T) {
	a, b := bitvec.New(8), bitvec.New(8)

	tests := []struct {
		name   string
		wa, wb float64
	}{
		{"BothZero", 0, 0},
		{"Negative", -1, 2},
		{"NegativeSum", -1, -1},
		{"NaN", math.NaN(), 1},
		{"Inf", math.Inf(1), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := WeightedCombine(a, tt.wa, b, tt.wb)

			var iw *ErrInvalidWeight
			require.True(t, errors.As(err, &iw))
			assert.Contains(t, iw.Error(), "invalid weights")
		})
	}
}

func TestWeightedCombine_Errors(t *testing.T) {
	_, err := WeightedCombine(bitvec.New(8), 1, bitvec.New(16), 1)
	var dm *ErrDimensionMismatch
	assert.True(t, errors.As(err, &dm))

	_, err = WeightedCombine(nil, 1, bitvec.New(16), 1)
	assert.ErrorIs(t, err, ErrNilVector)
}

func TestWeightedCombine_CustomSeeding(t *testing.T) {
	a := fromString(t, "1100")
	b := fromString(t, "1010")

	// A draw of 0.75 exceeds p = 0.5, so only positions set in both survive.
	alg := New(WithCombineSeeding(SharedSource(&testutil.FixedSource{Value: 0.75})))
	out, err := alg.WeightedCombine(a, 1, b, 1)
	require.NoError(t, err)
	assert.Equal(t, "1000", out.String())

	// A draw of 0.25 is within p = 0.5, so the result is a OR b.
	alg = New(WithCombineSeeding(SharedSource(&testutil.FixedSource{Value: 0.25})))
	out, err = alg.WeightedCombine(a, 1, b, 1)
	require.NoError(t, err)
	assert.Equal(t, "1110", out.String())
}

func TestCombineWeighted(t *testing.T) {
	rng := testutil.NewRNG(6)
	a := rng.BitVector(512)
	b := rng.BitVector(512)

	x, err := CombineWeighted(Weighted{Vector: a, Weight: 2}, Weighted{Vector: b, Weight: 1})
	require.NoError(t, err)
	y, err := WeightedCombine(a, 2, b, 1)
	require.NoError(t, err)
	assert.True(t, x.Equal(y))
}

func TestWeightedCombine_Metrics(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	alg := New(WithMetricsCollector(metrics))

	_, err := alg.WeightedCombine(bitvec.New(8), 1, bitvec.New(8), 1)
	require.NoError(t, err)
	_, err = alg.WeightedCombine(bitvec.New(8), 0, bitvec.New(8), 0)
	require.Error(t, err)

	stats := metrics.GetStats()
	assert.Equal(t, int64(2), stats.CombineCount)
	assert.Equal(t, int64(1), stats.CombineErrors)
}

func TestWeightedCombine_HugeWeights(t *testing.T) {
	const dim = 1000
	rng := testutil.NewRNG(6)
	a := rng.BitVector(dim)
	b := bitvec.New(dim)

	// 1e308 + 1e308 overflows float64; the shares must still be 1/2 each.
	huge, err := WeightedCombine(a, 1e308, b, 1e308)
	require.NoError(t, err)
	unit, err := WeightedCombine(a, 1, b, 1)
	require.NoError(t, err)

	assert.True(t, huge.Equal(unit))
	assert.InDelta(t, 0.5, float64(huge.Count())/float64(a.Count()), 0.1)

	dominant, err := WeightedCombine(a, math.MaxFloat64, b, math.MaxFloat64/4)
	require.NoError(t, err)
	assert.Greater(t, dominant.Count(), 0)
}
