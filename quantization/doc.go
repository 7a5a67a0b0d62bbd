// Package quantization converts dense float32 embeddings into bit vectors.
//
// # Binary Quantization
//
// Compresses vectors to 1 bit per dimension using threshold encoding:
//
//	quantizer := quantization.NewBinaryQuantizer(128)
//	_ = quantizer.Train(trainingVectors) // threshold = global mean
//	v, err := quantizer.Quantize(vector) // *bitvec.Vector, 128 bits
//
// The resulting vectors feed the binvec operations directly, e.g. to decorrelate
// a set of quantized embeddings:
//
//	vecs, _ := quantizer.QuantizeAll(embeddings)
//	_ = binvec.Orthogonalize(vecs)
package quantization
