// Package distance provides public API for bit vector distance calculations.
package distance

import (
	"fmt"

	"github.com/hupe1980/binvec/bitvec"
)

// Hamming returns the number of positions where a and b differ.
// It is computed as |a AND NOT b| + |b AND NOT a|, which equals the popcount of a XOR b.
func Hamming(a, b *bitvec.Vector) (int, error) {
	if a == nil || b == nil {
		return 0, bitvec.ErrNilVector
	}
	ab, err := a.AndNotCount(b)
	if err != nil {
		return 0, err
	}
	ba, err := b.AndNotCount(a)
	if err != nil {
		return 0, err
	}
	return ab + ba, nil
}

// NormalizedHamming returns the Hamming distance divided by the dimension, in [0, 1].
func NormalizedHamming(a, b *bitvec.Vector) (float64, error) {
	h, err := Hamming(a, b)
	if err != nil {
		return 0, err
	}
	return float64(h) / float64(a.Dimension()), nil
}

// Overlap returns 1 - 2·h/n: 1 for identical vectors, 0 at the orthogonal
// distance n/2 and -1 for complements.
func Overlap(a, b *bitvec.Vector) (float64, error) {
	if a == nil || b == nil {
		return 0, bitvec.ErrNilVector
	}
	return a.MeasureOverlap(b)
}

// Orthogonal returns the Hamming distance at which two vectors of dimension
// dim count as orthogonal (floor(dim/2)).
func Orthogonal(dim int) int {
	return dim / 2
}

// Metric represents the measure used for bit vector comparison.
type Metric int

const (
	MetricHamming Metric = iota
	MetricNormalizedHamming
	MetricOverlap
)

func (m Metric) String() string {
	switch m {
	case MetricHamming:
		return "Hamming"
	case MetricNormalizedHamming:
		return "NormalizedHamming"
	case MetricOverlap:
		return "Overlap"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for bit vector comparison.
type Func func(a, b *bitvec.Vector) (float64, error)

// Provider returns the comparison function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricHamming:
		return func(a, b *bitvec.Vector) (float64, error) {
			h, err := Hamming(a, b)
			return float64(h), err
		}, nil
	case MetricNormalizedHamming:
		return NormalizedHamming, nil
	case MetricOverlap:
		return Overlap, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
