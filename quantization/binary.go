// Package quantization converts real-valued embeddings into bit vectors.
package quantization

import (
	"errors"
	"fmt"

	"github.com/hupe1980/binvec/bitvec"
)

// BinaryQuantizer implements binary quantization (1-bit per dimension).
// It maps float32 vectors onto bitvec.Vector so dense embeddings can enter the
// binary algebra.
//
// Binary quantization uses a simple threshold: values >= threshold become 1, otherwise 0.
// Distance is then Hamming distance (popcount of XOR).
//
// Trade-offs:
//   - 32x compression ratio (vs float32)
//   - Very fast distance computation
//   - Significant accuracy loss for fine-grained similarity
type BinaryQuantizer struct {
	dimension int     // Expected vector dimension
	threshold float32 // Value threshold for binary encoding
	trained   bool    // Whether threshold has been calibrated
}

// NewBinaryQuantizer creates a new binary quantizer for the given dimension.
// The default threshold is 0.0 (sign-based quantization).
func NewBinaryQuantizer(dimension int) *BinaryQuantizer {
	return &BinaryQuantizer{
		dimension: dimension,
		threshold: 0.0,
		trained:   false,
	}
}

// WithThreshold sets a custom threshold for binary encoding.
// Values >= threshold become 1, values < threshold become 0.
func (bq *BinaryQuantizer) WithThreshold(threshold float32) *BinaryQuantizer {
	bq.threshold = threshold
	bq.trained = true
	return bq
}

// Train calibrates the quantizer by computing the mean value across all vectors.
// The mean is used as the threshold for binary encoding.
func (bq *BinaryQuantizer) Train(vectors [][]float32) error {
	if len(vectors) == 0 {
		return errors.New("no vectors provided for training")
	}

	var sum float64
	var count int
	for _, vec := range vectors {
		for _, val := range vec {
			sum += float64(val)
			count++
		}
	}

	if count > 0 {
		bq.threshold = float32(sum / float64(count))
	}
	bq.trained = true

	return nil
}

// Quantize converts v to a bit vector: bit i is set when v[i] >= threshold.
func (bq *BinaryQuantizer) Quantize(v []float32) (*bitvec.Vector, error) {
	if len(v) != bq.dimension {
		return nil, fmt.Errorf("quantize: %w", &bitvec.ErrDimensionMismatch{Expected: bq.dimension, Actual: len(v)})
	}
	if bq.dimension <= 0 {
		return nil, &bitvec.ErrInvalidDimension{Dimension: bq.dimension}
	}

	out := bitvec.New(bq.dimension)
	for i, val := range v {
		if val >= bq.threshold {
			out.Set(i)
		}
	}
	return out, nil
}

// QuantizeAll converts every vector, stopping at the first error.
func (bq *BinaryQuantizer) QuantizeAll(vectors [][]float32) ([]*bitvec.Vector, error) {
	out := make([]*bitvec.Vector, len(vectors))
	for i, v := range vectors {
		q, err := bq.Quantize(v)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
		out[i] = q
	}
	return out, nil
}

// Decode reconstructs a float32 vector from a bit vector.
// Note: This is a lossy reconstruction - values are either threshold-0.5 or threshold+0.5.
func (bq *BinaryQuantizer) Decode(v *bitvec.Vector) []float32 {
	decoded := make([]float32, v.Dimension())
	for i := range decoded {
		if v.Get(i) {
			decoded[i] = bq.threshold + 0.5
		} else {
			decoded[i] = bq.threshold - 0.5
		}
	}
	return decoded
}

// BytesTotal returns the bytes a quantized vector occupies in bitvec storage
// (whole 64-bit words).
func (bq *BinaryQuantizer) BytesTotal() int {
	return bitvec.NumWords(bq.dimension) * 8
}

// Dimension returns the expected vector dimension.
func (bq *BinaryQuantizer) Dimension() int {
	return bq.dimension
}

// Threshold returns the current threshold value.
func (bq *BinaryQuantizer) Threshold() float32 {
	return bq.threshold
}

// IsTrained returns whether the quantizer has been trained.
func (bq *BinaryQuantizer) IsTrained() bool {
	return bq.trained
}

// CompressionRatio returns float32 storage size divided by BytesTotal.
// It reaches 32 when the dimension is a multiple of 64.
func (bq *BinaryQuantizer) CompressionRatio() float32 {
	if bq.dimension <= 0 {
		return 0
	}
	return float32(bq.dimension*4) / float32(bq.BytesTotal())
}
