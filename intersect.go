package binvec

import (
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/binvec/bitvec"
)

// FuzzyIntersect returns a new vector that keeps every bit on which x and y agree
// and resolves each disagreeing position by an independent fair coin.
//
// One draw is taken from rng per position, disputed or not, so results for
// the same source are aligned by position. A disputed position takes y's bit when
// the draw exceeds 0.5 and keeps x's bit otherwise. A nil rng selects the
// configured intersect seeding. Neither operand is modified.
func (a *Algebra) FuzzyIntersect(x, y *bitvec.Vector, rng RandSource) (*bitvec.Vector, error) {
	start := time.Now()

	differs, err := disputed(x, y)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		if rng, err = a.opts.intersectSeeder.Source(x); err != nil {
			return nil, err
		}
	}

	out := x.Clone()
	n := x.Dimension()
	count := 0
	for i := 0; i < n; i++ {
		draw := rng.Float64()
		if !differs.Get(i) {
			continue
		}
		count++
		if draw > 0.5 {
			out.Flip(i)
		}
	}

	a.opts.metricsCollector.RecordIntersect(count, time.Since(start))
	a.opts.logger.WithDimension(n).LogIntersect(count)
	return out, nil
}

// DisputedPositions returns the positions FuzzyIntersect randomizes for a and b,
// i.e. the set bits of a XOR b.
func DisputedPositions(a, b *bitvec.Vector) (*roaring.Bitmap, error) {
	differs, err := disputed(a, b)
	if err != nil {
		return nil, err
	}
	return differs.Positions(), nil
}

func disputed(a, b *bitvec.Vector) (*bitvec.Vector, error) {
	if a == nil || b == nil {
		return nil, ErrNilVector
	}
	return a.Xor(b)
}
