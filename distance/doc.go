// Package distance provides bit vector distance calculations.
//
// # Supported Metrics
//
//   - MetricHamming: number of differing positions
//   - MetricNormalizedHamming: Hamming distance divided by the dimension
//   - MetricOverlap: 1 - 2·h/n, the binary analog of cosine similarity
//
// Two vectors of dimension n are orthogonal in binary space when their Hamming
// distance is n/2.
//
// # Usage
//
//	h, err := distance.Hamming(a, b)
//	sim, err := distance.Overlap(a, b)
package distance
