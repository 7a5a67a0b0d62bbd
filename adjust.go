package binvec

import (
	"fmt"

	"github.com/hupe1980/binvec/bitvec"
	"github.com/hupe1980/binvec/distance"
)

// AdjustToHalfDistance flips bits of target in place until its Hamming distance to
// reference is exactly floor(n/2), the binary analog of orthogonality.
//
// Positions are scanned in increasing order, wrapping around at n, and every
// visited position consumes one draw from rng. A position is flipped when the
// draw exceeds 0.5 and the position is a candidate: while target is too close to
// reference the candidates are the positions where they agree, otherwise the
// positions where they differ. A flipped position stops being a candidate.
// If the distance is already floor(n/2), target is left untouched and rng is not read.
//
// A nil rng selects the configured adjust seeding. reference is not modified.
func (a *Algebra) AdjustToHalfDistance(target, reference *bitvec.Vector, rng RandSource) error {
	if target == nil || reference == nil {
		return ErrNilVector
	}
	if rng == nil {
		src, err := a.opts.adjustSeeder.Source(target)
		if err != nil {
			return err
		}
		rng = src
	}
	return a.adjust(a.opts.logger.WithDimension(target.Dimension()), target, reference, rng)
}

func (a *Algebra) adjust(log *Logger, target, reference *bitvec.Vector, rng RandSource) error {
	flips, probes, err := adjustToHalfDistance(target, reference, rng, a.opts.probeFactor)
	a.opts.metricsCollector.RecordAdjust(flips, probes, err)
	log.LogAdjust(flips, probes, err)
	return err
}

func adjustToHalfDistance(target, reference *bitvec.Vector, rng RandSource, probeFactor int) (flips, probes int, err error) {
	h, err := distance.Hamming(target, reference)
	if err != nil {
		return 0, 0, err
	}

	n := target.Dimension()
	delta := distance.Orthogonal(n) - h
	if delta == 0 {
		return 0, 0, nil
	}

	// disagree[x] tracks whether target and reference currently differ at x.
	disagree, err := target.Xor(reference)
	if err != nil {
		return 0, 0, err
	}

	// Too similar: flip agreeing positions. Too different: flip disagreeing ones.
	candidate := delta < 0
	need := delta
	if need < 0 {
		need = -need
	}

	budget := probeFactor * n
	for x := 0; flips < need; x++ {
		if x == n {
			x = 0
		}
		if probes == budget {
			return flips, probes, fmt.Errorf("%w: %d of %d flips after %d probes", ErrProbeBudgetExhausted, flips, need, probes)
		}
		probes++

		draw := rng.Float64()
		if disagree.Get(x) == candidate && draw > 0.5 {
			target.Flip(x)
			disagree.Flip(x)
			flips++
		}
	}
	return flips, probes, nil
}
