package distance

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/binvec/bitvec"
	"github.com/hupe1980/binvec/testutil"
)

func vec(t *testing.T, dim int, words ...uint64) *bitvec.Vector {
	t.Helper()
	v, err := bitvec.FromWords(dim, words)
	require.NoError(t, err)
	return v
}

func TestHamming(t *testing.T) {
	tests := []struct {
		name     string
		a, b     *bitvec.Vector
		expected int
	}{
		{"Simple", vec(t, 16, 0x00FF), vec(t, 16, 0xFF00), 16},
		{"Identical", vec(t, 16, 0x55AA), vec(t, 16, 0x55AA), 0},
		{"Partial", vec(t, 8, 0b11110000), vec(t, 8, 0b11111111), 4},
		{"MultiWord", vec(t, 128, 0, 0), vec(t, 128, ^uint64(0), ^uint64(0)), 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Hamming(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestHamming_Properties(t *testing.T) {
	rng := testutil.NewRNG(7)
	for i := 0; i < 20; i++ {
		a := rng.BitVector(1000)
		b := rng.BitVector(1000)

		self, err := Hamming(a, a)
		require.NoError(t, err)
		assert.Equal(t, 0, self)

		ab, err := Hamming(a, b)
		require.NoError(t, err)
		ba, err := Hamming(b, a)
		require.NoError(t, err)
		assert.Equal(t, ab, ba)

		x, err := a.Xor(b)
		require.NoError(t, err)
		assert.Equal(t, x.Count(), ab, "and-not formulation must equal XOR popcount")
	}
}

func TestHamming_DimensionMismatch(t *testing.T) {
	_, err := Hamming(bitvec.New(10), bitvec.New(11))

	var dm *bitvec.ErrDimensionMismatch
	require.True(t, errors.As(err, &dm))
	assert.Equal(t, 10, dm.Expected)
	assert.Equal(t, 11, dm.Actual)

	_, err = Hamming(nil, bitvec.New(11))
	assert.ErrorIs(t, err, bitvec.ErrNilVector)
}

func TestNormalizedAndOverlap(t *testing.T) {
	a := vec(t, 8, 0b00001111)
	b := vec(t, 8, 0b00111100)

	n, err := NormalizedHamming(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, n, 1e-12)

	o, err := Overlap(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, o, 1e-12)

	assert.Equal(t, 4, Orthogonal(8))
	assert.Equal(t, 4, Orthogonal(9))
}

func TestMetric(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "Hamming", MetricHamming.String())
		assert.Equal(t, "NormalizedHamming", MetricNormalizedHamming.String())
		assert.Equal(t, "Overlap", MetricOverlap.String())
		assert.Equal(t, "Unknown(99)", Metric(99).String())
	})

	t.Run("Provider", func(t *testing.T) {
		a := vec(t, 8, 0b1111)
		b := vec(t, 8, 0)

		f, err := Provider(MetricHamming)
		require.NoError(t, err)
		got, err := f(a, b)
		require.NoError(t, err)
		assert.Equal(t, float64(4), got)

		f, err = Provider(MetricOverlap)
		require.NoError(t, err)
		got, err = f(a, a)
		require.NoError(t, err)
		assert.Equal(t, float64(1), got)

		f, err = Provider(MetricNormalizedHamming)
		require.NoError(t, err)
		assert.NotNil(t, f)

		_, err = Provider(Metric(99))
		assert.Error(t, err)
	})
}

func BenchmarkHamming_10000dim(b *testing.B) {
	rng := testutil.NewRNG(1)
	x := rng.BitVector(10000)
	y := rng.BitVector(10000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Hamming(x, y)
	}
}
