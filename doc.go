// Package binvec implements vector-space operations over binary vectors, where
// similarity is Hamming distance and two vectors of dimension n are orthogonal
// when they differ in n/2 positions.
//
// # Quick Start
//
//	alg := binvec.New()
//	a, b := bitvec.New(10000), bitvec.New(10000)
//	// ... set bits ...
//
//	h, _ := binvec.HammingDistance(a, b)
//	_ = alg.AdjustToHalfDistance(a, b, nil)       // now h(a, b) == 5000
//	_ = alg.Orthogonalize([]*bitvec.Vector{a, b}) // Gram-Schmidt analog
//	c, _ := alg.FuzzyIntersect(a, b, nil)
//	d, _ := alg.WeightedCombine(a, 0.7, b, 0.3)
//	s, _ := binvec.ProjectionScore(c, []*bitvec.Vector{a, b})
//
// # Operations
//
//   - AdjustToHalfDistance: flips bits of a target in place until it sits at
//     distance floor(n/2) from a reference.
//   - Orthogonalize: applies the adjustment to every ordered pair of a list so each
//     vector is decorrelated from its predecessors. Negate uses it to compute
//     target NOT (v0 OR v1 OR ...).
//   - FuzzyIntersect: keeps agreed bits and resolves disputed ones by coin flip.
//   - WeightedCombine: per-bit weighted vote between two vectors.
//   - ProjectionScore: sums overlaps between a query and a set of vectors.
//
// # Seeding
//
// The randomized operations draw from a RandSource. Where the caller does not pass
// one, a Seeder supplies it:
//
//   - ConstantSeed(DefaultSeed) for adjust, orthogonalize and intersect: every call
//     replays the same sequence, so results are reproducible across runs and
//     successive calls are correlated.
//   - DerivedSeed(codec.Raw{}) for WeightedCombine: the sequence depends only on the
//     serialized first operand.
//   - SharedSource(src) continues one caller-owned stream across calls.
//
// Seeders are configured per operation with the With*Seeding options.
//
// # Concurrency
//
// Operations run synchronously and do no locking. Vectors passed to a mutating
// call must not be used by other goroutines until it returns.
package binvec
