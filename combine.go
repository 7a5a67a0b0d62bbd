package binvec

import (
	"math"
	"time"

	"github.com/hupe1980/binvec/bitvec"
)

// Weighted pairs a vector with a non-negative weight.
type Weighted struct {
	Vector *bitvec.Vector
	Weight float64
}

// WeightedCombine returns a new vector whose bits are weighted coin flips between
// x and y, the binary analog of a normalized weighted sum.
//
// Bit i is set with probability p = wx/(wx+wy)·x[i] + wy/(wx+wy)·y[i]: always when
// both operands set it, never when neither does, and with the setting operand's
// normalized weight otherwise. The random source comes from the combine seeding,
// by default derived from x alone, so equal x values replay the same draw for each
// position whatever y and the weights are. One draw is taken per position.
//
// Weights must be finite and non-negative with a positive sum, else
// *ErrInvalidWeight is returned.
func (a *Algebra) WeightedCombine(x *bitvec.Vector, weightX float64, y *bitvec.Vector, weightY float64) (*bitvec.Vector, error) {
	start := time.Now()
	out, err := a.weightedCombine(x, weightX, y, weightY)

	dim := 0
	if x != nil {
		dim = x.Dimension()
	}
	a.opts.metricsCollector.RecordCombine(time.Since(start), err)
	a.opts.logger.WithDimension(dim).LogCombine(err)
	return out, err
}

// CombineWeighted is WeightedCombine over Weighted pairs.
func (a *Algebra) CombineWeighted(x, y Weighted) (*bitvec.Vector, error) {
	return a.WeightedCombine(x.Vector, x.Weight, y.Vector, y.Weight)
}

func (a *Algebra) weightedCombine(x *bitvec.Vector, weightX float64, y *bitvec.Vector, weightY float64) (*bitvec.Vector, error) {
	if !validWeight(weightX) || !validWeight(weightY) || weightX+weightY <= 0 {
		return nil, &ErrInvalidWeight{WeightA: weightX, WeightB: weightY}
	}
	if x == nil || y == nil {
		return nil, ErrNilVector
	}
	if x.Dimension() != y.Dimension() {
		return nil, &ErrDimensionMismatch{Expected: x.Dimension(), Actual: y.Dimension()}
	}

	rng, err := a.opts.combineSeeder.Source(x)
	if err != nil {
		return nil, err
	}

	total := weightX + weightY
	if math.IsInf(total, 1) {
		// Both weights are finite, so halving them brings the sum back in range.
		weightX, weightY = weightX/2, weightY/2
		total = weightX + weightY
	}
	px := weightX / total
	py := weightY / total

	n := x.Dimension()
	out := bitvec.New(n)
	for i := 0; i < n; i++ {
		xi, yi := x.Get(i), y.Get(i)

		var p float64
		switch {
		case xi && yi:
			p = 1
		case xi:
			p = px
		case yi:
			p = py
		}

		draw := rng.Float64()
		if p > 0 && draw <= p {
			out.Set(i)
		}
	}
	return out, nil
}

func validWeight(w float64) bool {
	return w >= 0 && !math.IsInf(w, 1)
}
