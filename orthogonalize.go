package binvec

import (
	"fmt"
	"time"

	"github.com/hupe1980/binvec/bitvec"
)

// Orthogonalize makes every vector maximally dissimilar (Hamming distance n/2) from
// the vectors preceding it, the binary counterpart of Gram-Schmidt.
//
// For k = 0..len-1 and j = 0..k-1, vectors[k] is adjusted in place against
// vectors[j] with a fresh source from the orthogonalize seeding. The result is
// order dependent: the distance to vectors[k-1] is exact, distances to earlier
// vectors are approximate because later adjustments do not revisit them.
//
// All vectors are validated before any is modified. A nil element or a dimension
// differing from vectors[0] aborts the call with nothing mutated. The slice
// itself is never resized or reordered. An empty slice is a no-op.
func (a *Algebra) Orthogonalize(vectors []*bitvec.Vector) error {
	start := time.Now()

	dim := 0
	if len(vectors) > 0 && vectors[0] != nil {
		dim = vectors[0].Dimension()
	}
	log := a.opts.logger.WithCount(len(vectors)).WithDimension(dim)

	err := a.orthogonalize(log, vectors)
	a.opts.metricsCollector.RecordOrthogonalize(len(vectors), time.Since(start), err)
	log.LogOrthogonalize(err)
	return err
}

func (a *Algebra) orthogonalize(log *Logger, vectors []*bitvec.Vector) error {
	if err := validateList(vectors); err != nil {
		return err
	}

	for k := 0; k < len(vectors); k++ {
		for j := 0; j < k; j++ {
			rng, err := a.opts.orthogonalizeSeeder.Source(vectors[k])
			if err != nil {
				return err
			}
			if err := a.adjust(log, vectors[k], vectors[j], rng); err != nil {
				return fmt.Errorf("orthogonalize vector %d against %d: %w", k, j, err)
			}
		}
	}
	return nil
}

func validateList(vectors []*bitvec.Vector) error {
	if len(vectors) == 0 {
		return nil
	}
	if vectors[0] == nil {
		return fmt.Errorf("vector 0: %w", ErrNilVector)
	}
	dim := vectors[0].Dimension()
	for i, v := range vectors[1:] {
		if v == nil {
			return fmt.Errorf("vector %d: %w", i+1, ErrNilVector)
		}
		if v.Dimension() != dim {
			return fmt.Errorf("vector %d: %w", i+1, &ErrDimensionMismatch{Expected: dim, Actual: v.Dimension()})
		}
	}
	return nil
}

// Negate adjusts target in place so it reads as target NOT (excluded[0] OR ...).
// It orthogonalizes copies of excluded followed by target; excluded vectors are not modified.
// target ends up exactly as it would as the last element of Orthogonalize.
func (a *Algebra) Negate(target *bitvec.Vector, excluded ...*bitvec.Vector) error {
	list := make([]*bitvec.Vector, 0, len(excluded)+1)
	for i, v := range excluded {
		if v == nil {
			return fmt.Errorf("excluded vector %d: %w", i, ErrNilVector)
		}
		list = append(list, v.Clone())
	}
	return a.Orthogonalize(append(list, target))
}
