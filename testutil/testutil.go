package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/binvec/bitvec"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// BitVector returns a vector with each bit set independently with probability 1/2.
func (r *RNG) BitVector(dim int) *bitvec.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()
	words := make([]uint64, bitvec.NumWords(dim))
	for i := range words {
		words[i] = r.rand.Uint64()
	}
	v, err := bitvec.FromWords(dim, words)
	if err != nil {
		panic(err)
	}
	return v
}

// BitVectors returns num independent random vectors of dimension dim.
func (r *RNG) BitVectors(num, dim int) []*bitvec.Vector {
	vecs := make([]*bitvec.Vector, num)
	for i := range vecs {
		vecs[i] = r.BitVector(dim)
	}
	return vecs
}

// Perturbed returns a copy of base with exactly flips distinct positions inverted,
// so its Hamming distance to base is flips.
func (r *RNG) Perturbed(base *bitvec.Vector, flips int) *bitvec.Vector {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := base.Clone()
	for _, i := range r.rand.Perm(base.Dimension())[:flips] {
		out.Flip(i)
	}
	return out
}

// UniformRangeVectors generates vectors with values in [-1, 1).
func (r *RNG) UniformRangeVectors(num int, dimensions int) [][]float32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	vectors := make([][]float32, num)
	for i := range vectors {
		vectors[i] = make([]float32, dimensions)
		for j := range vectors[i] {
			vectors[i][j] = r.rand.Float32()*2 - 1
		}
	}
	return vectors
}

// FixedSource is a random source that returns the same value on every draw.
type FixedSource struct {
	Value float64
	Draws int
}

// Float64 implements the random source contract.
func (s *FixedSource) Float64() float64 {
	s.Draws++
	return s.Value
}

// CountingSource wraps a source and counts draws.
type CountingSource struct {
	Source interface{ Float64() float64 }
	Draws  int
}

// Float64 implements the random source contract.
func (s *CountingSource) Float64() float64 {
	s.Draws++
	return s.Source.Float64()
}
