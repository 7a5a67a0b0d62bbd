// Package bitvec provides the fixed-dimension bit vector used by binvec.
//
// A Vector wraps a bitset.BitSet whose length never changes after construction.
// Index arguments outside [0, Dimension()) panic, the same way slice indexing does;
// mismatched dimensions between two vectors are reported as *ErrDimensionMismatch.
package bitvec

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
)

// Vector is a fixed-dimension packed bit vector.
type Vector struct {
	dim  int
	bits *bitset.BitSet
}

// New returns a zero-valued Vector of the given dimension.
func New(dim int) *Vector {
	if dim <= 0 {
		panic(fmt.Sprintf("bitvec: dimension must be positive, got %d", dim))
	}
	return &Vector{dim: dim, bits: bitset.New(uint(dim))}
}

// FromWords constructs a Vector from packed little-endian words.
// len(words) must equal ceil(dim/64); padding bits are cleared.
func FromWords(dim int, words []uint64) (*Vector, error) {
	if dim <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}
	if len(words) != NumWords(dim) {
		return nil, fmt.Errorf("bitvec: %d words do not fit dimension %d", len(words), dim)
	}
	copied := make([]uint64, len(words))
	copy(copied, words)
	if rem := dim % 64; rem != 0 {
		copied[len(copied)-1] &= (uint64(1) << uint(rem)) - 1
	}
	return &Vector{dim: dim, bits: bitset.FromWithLength(uint(dim), copied)}, nil
}

// FromPositions returns a Vector with exactly the bits in rb set.
func FromPositions(dim int, rb *roaring.Bitmap) (*Vector, error) {
	if dim <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}
	v := New(dim)
	if rb == nil || rb.IsEmpty() {
		return v, nil
	}
	if int(rb.Maximum()) >= dim {
		return nil, fmt.Errorf("bitvec: position %d out of range for dimension %d", rb.Maximum(), dim)
	}
	it := rb.Iterator()
	for it.HasNext() {
		v.bits.Set(uint(it.Next()))
	}
	return v, nil
}

// NumWords returns the number of 64-bit words backing a vector of dimension dim.
func NumWords(dim int) int {
	return (dim + 63) / 64
}

// Dimension returns the number of bits in v.
func (v *Vector) Dimension() int { return v.dim }

// Get reports whether bit i is set.
func (v *Vector) Get(i int) bool {
	v.checkIndex(i)
	return v.bits.Test(uint(i))
}

// Set sets bit i.
func (v *Vector) Set(i int) {
	v.checkIndex(i)
	v.bits.Set(uint(i))
}

// Clear clears bit i.
func (v *Vector) Clear(i int) {
	v.checkIndex(i)
	v.bits.Clear(uint(i))
}

// Flip inverts bit i.
func (v *Vector) Flip(i int) {
	v.checkIndex(i)
	v.bits.Flip(uint(i))
}

// Count returns the number of set bits.
func (v *Vector) Count() int {
	return int(v.bits.Count())
}

// Clone returns an independent copy of v.
func (v *Vector) Clone() *Vector {
	return &Vector{dim: v.dim, bits: v.bits.Clone()}
}

// Equal reports whether v and other have the same dimension and bits.
func (v *Vector) Equal(other *Vector) bool {
	if other == nil || v.dim != other.dim {
		return false
	}
	return v.bits.Equal(other.bits)
}

// Xor returns a new Vector holding v XOR other.
func (v *Vector) Xor(other *Vector) (*Vector, error) {
	if err := v.requireSameDimension(other); err != nil {
		return nil, err
	}
	return &Vector{dim: v.dim, bits: v.bits.SymmetricDifference(other.bits)}, nil
}

// XorInPlace replaces v with v XOR other.
func (v *Vector) XorInPlace(other *Vector) error {
	if err := v.requireSameDimension(other); err != nil {
		return err
	}
	v.bits.InPlaceSymmetricDifference(other.bits)
	return nil
}

// AndNotCount returns the number of bits set in v but not in other.
func (v *Vector) AndNotCount(other *Vector) (int, error) {
	if err := v.requireSameDimension(other); err != nil {
		return 0, err
	}
	return int(v.bits.DifferenceCardinality(other.bits)), nil
}

// SymmetricDifferenceCount returns the number of positions where v and other differ.
func (v *Vector) SymmetricDifferenceCount(other *Vector) (int, error) {
	if err := v.requireSameDimension(other); err != nil {
		return 0, err
	}
	return int(v.bits.SymmetricDifferenceCardinality(other.bits)), nil
}

// MeasureOverlap returns 1 - 2·h/n where h is the Hamming distance to other.
// Identical vectors score 1, orthogonal (h = n/2) vectors 0, complements -1.
func (v *Vector) MeasureOverlap(other *Vector) (float64, error) {
	h, err := v.SymmetricDifferenceCount(other)
	if err != nil {
		return 0, err
	}
	return 1 - 2*float64(h)/float64(v.dim), nil
}

// Words returns a copy of the packed words, least significant bit first.
func (v *Vector) Words() []uint64 {
	src := v.bits.Words()
	words := make([]uint64, NumWords(v.dim))
	copy(words, src)
	return words
}

// Positions returns the indexes of the set bits.
func (v *Vector) Positions() *roaring.Bitmap {
	rb := roaring.New()
	for i, ok := v.bits.NextSet(0); ok; i, ok = v.bits.NextSet(i + 1) {
		rb.Add(uint32(i))
	}
	return rb
}

// String renders v as a bit string, index 0 first.
func (v *Vector) String() string {
	buf := make([]byte, v.dim)
	for i := range buf {
		if v.bits.Test(uint(i)) {
			buf[i] = '1'
		} else {
			buf[i] = '0'
		}
	}
	return string(buf)
}

func (v *Vector) checkIndex(i int) {
	if i < 0 || i >= v.dim {
		panic(fmt.Sprintf("bitvec: index %d out of range [0, %d)", i, v.dim))
	}
}

func (v *Vector) requireSameDimension(other *Vector) error {
	if v == nil || other == nil {
		return ErrNilVector
	}
	if other.dim != v.dim {
		return &ErrDimensionMismatch{Expected: v.dim, Actual: other.dim}
	}
	return nil
}
