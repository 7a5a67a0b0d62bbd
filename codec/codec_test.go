package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/binvec/bitvec"
	"github.com/hupe1980/binvec/testutil"
)

func allCodecs() []Codec {
	return []Codec{Raw{}, LZ4{}, Zstd{}}
}

func TestRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(42)
	sparse := bitvec.New(4096)
	sparse.Set(7)
	sparse.Set(4095)

	inputs := map[string]*bitvec.Vector{
		"Random":    rng.BitVector(10000),
		"Sparse":    sparse,
		"Zero":      bitvec.New(1),
		"OddWidth":  rng.BitVector(65),
		"WordAlign": rng.BitVector(128),
	}

	for _, c := range allCodecs() {
		for name, v := range inputs {
			t.Run(c.Name()+"/"+name, func(t *testing.T) {
				data, err := c.Marshal(v)
				require.NoError(t, err)

				got, err := c.Unmarshal(data)
				require.NoError(t, err)
				assert.True(t, v.Equal(got))
			})
		}
	}
}

func TestRaw_Stable(t *testing.T) {
	rng := testutil.NewRNG(3)
	v := rng.BitVector(1000)

	a := MustMarshal(Raw{}, v)
	b := MustMarshal(nil, v.Clone())
	assert.Equal(t, a, b, "equal vectors must encode to equal bytes")
	assert.Len(t, a, rawHeaderSize+bitvec.NumWords(1000)*8)
}

func TestCompressed_ShrinksSparseVectors(t *testing.T) {
	v := bitvec.New(65536)
	v.Set(1)
	raw := MustMarshal(Raw{}, v)

	for _, c := range []Codec{LZ4{}, Zstd{}} {
		data := MustMarshal(c, v)
		assert.Less(t, len(data), len(raw)/10, c.Name())
	}
}

func TestUnmarshal_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		c    Codec
		data []byte
	}{
		{"RawShort", Raw{}, []byte{1, 2}},
		{"RawZeroDim", Raw{}, []byte{0, 0, 0, 0}},
		{"RawTruncated", Raw{}, []byte{64, 0, 0, 0, 1, 2, 3}},
		{"LZ4Short", LZ4{}, []byte{1}},
		{"LZ4Garbage", LZ4{}, []byte{12, 0, 0, 0, 3, 0, 0, 0, 0xff, 0xff, 0xff}},
		{"ZstdGarbage", Zstd{}, []byte{12, 0, 0, 0, 3, 0, 0, 0, 1, 2, 3}},
		{"StoredWrongSize", Zstd{}, []byte{12, 0, 0, 0, 0, 0, 0, 0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.c.Unmarshal(tt.data)
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}

func TestMarshal_Nil(t *testing.T) {
	for _, c := range allCodecs() {
		_, err := c.Marshal(nil)
		assert.ErrorIs(t, err, bitvec.ErrNilVector, c.Name())
	}
}

func TestByName(t *testing.T) {
	for _, c := range allCodecs() {
		got, ok := ByName(c.Name())
		require.True(t, ok)
		assert.Equal(t, c.Name(), got.Name())
	}

	_, ok := ByName("json")
	assert.False(t, ok)

	_, err := Lookup("json")
	assert.ErrorIs(t, err, ErrUnknownCodec)

	c, err := Lookup("zstd")
	require.NoError(t, err)
	assert.Equal(t, "zstd", c.Name())
}

func BenchmarkCodec_Marshal(b *testing.B) {
	v := testutil.NewRNG(1).BitVector(10000)
	for _, c := range allCodecs() {
		b.Run(c.Name(), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				_, _ = c.Marshal(v)
			}
		})
	}
}
