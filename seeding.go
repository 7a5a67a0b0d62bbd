package binvec

import (
	"fmt"
	"math/rand"

	"github.com/hupe1980/binvec/bitvec"
	"github.com/hupe1980/binvec/codec"
	"github.com/hupe1980/binvec/internal/hash"
)

// DefaultSeed is the constant seed used by the adjust, orthogonalize and
// intersect operations unless configured otherwise.
const DefaultSeed int64 = 23

// RandSource yields uniform draws in [0, 1). *rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// Seeder supplies the random source for a single operation call.
// input is the operand the operation derives its randomness from
// (the target of an adjustment, the first operand otherwise).
type Seeder interface {
	Source(input *bitvec.Vector) (RandSource, error)
}

// SeederFunc adapts a function to the Seeder interface.
type SeederFunc func(input *bitvec.Vector) (RandSource, error)

// Source implements Seeder.
func (f SeederFunc) Source(input *bitvec.Vector) (RandSource, error) { return f(input) }

// ConstantSeed returns a Seeder that starts a fresh generator from seed on every call.
// Successive calls therefore replay the same random sequence: two adjustments in
// one Orthogonalize make their accept/reject decisions from identical draws.
func ConstantSeed(seed int64) Seeder {
	return SeederFunc(func(*bitvec.Vector) (RandSource, error) {
		return rand.New(rand.NewSource(seed)), nil // nolint gosec
	})
}

// DerivedSeed returns a Seeder that seeds a fresh generator from the serialized
// input. Equal inputs yield equal sequences regardless of the other operands.
// A nil codec selects codec.Default.
func DerivedSeed(c codec.Codec) Seeder {
	if c == nil {
		c = codec.Default
	}
	return SeederFunc(func(input *bitvec.Vector) (RandSource, error) {
		data, err := c.Marshal(input)
		if err != nil {
			return nil, fmt.Errorf("derive seed: %w", err)
		}
		return rand.New(rand.NewSource(hash.Seed64(data))), nil // nolint gosec
	})
}

// SharedSource returns a Seeder that hands out src on every call, so successive
// operations continue one random stream.
func SharedSource(src RandSource) Seeder {
	return SeederFunc(func(*bitvec.Vector) (RandSource, error) {
		return src, nil
	})
}
