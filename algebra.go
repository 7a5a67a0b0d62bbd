package binvec

import (
	"github.com/hupe1980/binvec/bitvec"
	"github.com/hupe1980/binvec/distance"
)

// Algebra performs the randomized bit vector operations.
//
// An Algebra only holds configuration and may be shared between goroutines, but
// the vectors passed to a mutating call must not be accessed concurrently with it.
type Algebra struct {
	opts options
}

// New creates an Algebra configured by the given options.
func New(optFns ...Option) *Algebra {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Algebra{opts: opts}
}

var defaultAlgebra = New()

// HammingDistance returns the number of positions where a and b differ.
func HammingDistance(a, b *bitvec.Vector) (int, error) {
	return distance.Hamming(a, b)
}

// AdjustToHalfDistance calls (*Algebra).AdjustToHalfDistance on the default Algebra.
func AdjustToHalfDistance(target, reference *bitvec.Vector, rng RandSource) error {
	return defaultAlgebra.AdjustToHalfDistance(target, reference, rng)
}

// Orthogonalize calls (*Algebra).Orthogonalize on the default Algebra.
func Orthogonalize(vectors []*bitvec.Vector) error {
	return defaultAlgebra.Orthogonalize(vectors)
}

// Negate calls (*Algebra).Negate on the default Algebra.
func Negate(target *bitvec.Vector, excluded ...*bitvec.Vector) error {
	return defaultAlgebra.Negate(target, excluded...)
}

// FuzzyIntersect calls (*Algebra).FuzzyIntersect on the default Algebra.
func FuzzyIntersect(a, b *bitvec.Vector, rng RandSource) (*bitvec.Vector, error) {
	return defaultAlgebra.FuzzyIntersect(a, b, rng)
}

// WeightedCombine calls (*Algebra).WeightedCombine on the default Algebra.
func WeightedCombine(a *bitvec.Vector, weightA float64, b *bitvec.Vector, weightB float64) (*bitvec.Vector, error) {
	return defaultAlgebra.WeightedCombine(a, weightA, b, weightB)
}

// CombineWeighted calls (*Algebra).CombineWeighted on the default Algebra.
func CombineWeighted(x, y Weighted) (*bitvec.Vector, error) {
	return defaultAlgebra.CombineWeighted(x, y)
}
