package binvec

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hupe1980/binvec/bitvec"
)

// fromString builds a vector from a bit string, index 0 first.
func fromString(t *testing.T, s string) *bitvec.Vector {
	t.Helper()
	v := bitvec.New(len(s))
	for i, c := range s {
		switch c {
		case '1':
			v.Set(i)
		case '0':
		default:
			t.Fatalf("invalid bit %q in %q", c, s)
		}
	}
	return v
}

func hamming(t *testing.T, a, b *bitvec.Vector) int {
	t.Helper()
	h, err := HammingDistance(a, b)
	require.NoError(t, err)
	return h
}
