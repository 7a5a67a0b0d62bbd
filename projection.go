package binvec

import (
	"fmt"
	"reflect"
)

// Vector is the capability ProjectionScore needs from a vector type:
// a dimension and an overlap measure against vectors of the same type.
// *bitvec.Vector implements Vector[*bitvec.Vector].
type Vector[V any] interface {
	Dimension() int
	MeasureOverlap(other V) (float64, error)
}

// ProjectionScore compares query with the subspace spanned by candidates by summing
// query.MeasureOverlap(c) over every candidate. All overlaps count, including
// negative ones. An empty candidate list scores 0. A nil query or candidate
// returns ErrNilVector.
func ProjectionScore[V Vector[V]](query V, candidates []V) (float64, error) {
	if isNil(query) {
		return 0, fmt.Errorf("query: %w", ErrNilVector)
	}

	var score float64
	for i, c := range candidates {
		if isNil(c) {
			return 0, fmt.Errorf("candidate %d: %w", i, ErrNilVector)
		}
		if c.Dimension() != query.Dimension() {
			return 0, fmt.Errorf("candidate %d: %w", i, &ErrDimensionMismatch{Expected: query.Dimension(), Actual: c.Dimension()})
		}
		overlap, err := query.MeasureOverlap(c)
		if err != nil {
			return 0, fmt.Errorf("candidate %d: %w", i, err)
		}
		score += overlap
	}
	return score, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
