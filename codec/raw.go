package codec

import (
	"encoding/binary"
	"fmt"

	"github.com/hupe1980/binvec/bitvec"
)

// rawHeaderSize is the size of the dimension prefix.
const rawHeaderSize = 4

// Raw encodes a vector as [dimension uint32][words uint64...], little-endian.
type Raw struct{}

// Marshal encodes v.
func (r Raw) Marshal(v *bitvec.Vector) ([]byte, error) {
	return r.Append(nil, v)
}

// Append encodes v and appends it to dst.
func (Raw) Append(dst []byte, v *bitvec.Vector) ([]byte, error) {
	if v == nil {
		return nil, bitvec.ErrNilVector
	}
	words := v.Words()
	dst = binary.LittleEndian.AppendUint32(dst, uint32(v.Dimension()))
	for _, w := range words {
		dst = binary.LittleEndian.AppendUint64(dst, w)
	}
	return dst, nil
}

// Unmarshal decodes a vector produced by Marshal.
func (Raw) Unmarshal(data []byte) (*bitvec.Vector, error) {
	if len(data) < rawHeaderSize {
		return nil, fmt.Errorf("%w: %d bytes is too short for header", ErrCorrupt, len(data))
	}
	dim := int(binary.LittleEndian.Uint32(data))
	if dim <= 0 {
		return nil, fmt.Errorf("%w: dimension %d", ErrCorrupt, dim)
	}
	n := bitvec.NumWords(dim)
	body := data[rawHeaderSize:]
	if len(body) != n*8 {
		return nil, fmt.Errorf("%w: expected %d payload bytes, got %d", ErrCorrupt, n*8, len(body))
	}
	words := make([]uint64, n)
	for i := range words {
		words[i] = binary.LittleEndian.Uint64(body[i*8:])
	}
	return bitvec.FromWords(dim, words)
}

// Name returns the unique name of the codec ("raw").
func (Raw) Name() string { return "raw" }
