package codec

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/hupe1980/binvec/bitvec"
)

// Compressed blocks are laid out as [UncompressedSize uint32][CompressedSize uint32][Data...].
// CompressedSize == 0 means the raw encoding is stored uncompressed.
const blockHeaderSize = 8

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

// LZ4 compresses the raw encoding with LZ4 block compression.
type LZ4 struct{}

// Marshal encodes v.
func (LZ4) Marshal(v *bitvec.Vector) ([]byte, error) {
	raw, err := Raw{}.Marshal(v)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, blockHeaderSize+lz4.CompressBlockBound(len(raw)))

	n, err := lz4.CompressBlock(raw, dst[blockHeaderSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	if n == 0 || n >= len(raw) {
		return storeBlock(raw), nil
	}
	putBlockHeader(dst, len(raw), n)
	return dst[:blockHeaderSize+n], nil
}

// Unmarshal decodes a vector produced by Marshal.
func (LZ4) Unmarshal(data []byte) (*bitvec.Vector, error) {
	size, payload, stored, err := splitBlock(data)
	if err != nil {
		return nil, err
	}
	if stored {
		return Raw{}.Unmarshal(payload)
	}
	raw := make([]byte, size)
	n, err := lz4.UncompressBlock(payload, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: lz4: %v", ErrCorrupt, err)
	}
	if n != size {
		return nil, fmt.Errorf("%w: lz4 produced %d bytes, expected %d", ErrCorrupt, n, size)
	}
	return Raw{}.Unmarshal(raw)
}

// Name returns the unique name of the codec ("lz4").
func (LZ4) Name() string { return "lz4" }

// Zstd compresses the raw encoding with Zstandard.
type Zstd struct{}

// Marshal encodes v.
func (Zstd) Marshal(v *bitvec.Vector) ([]byte, error) {
	raw, err := Raw{}.Marshal(v)
	if err != nil {
		return nil, err
	}
	enc := getZstdEncoder()
	defer putZstdEncoder(enc)

	dst := enc.EncodeAll(raw, make([]byte, blockHeaderSize, blockHeaderSize+len(raw)/2))
	n := len(dst) - blockHeaderSize
	if n >= len(raw) {
		return storeBlock(raw), nil
	}
	putBlockHeader(dst, len(raw), n)
	return dst, nil
}

// Unmarshal decodes a vector produced by Marshal.
func (Zstd) Unmarshal(data []byte) (*bitvec.Vector, error) {
	size, payload, stored, err := splitBlock(data)
	if err != nil {
		return nil, err
	}
	if stored {
		return Raw{}.Unmarshal(payload)
	}
	dec := getZstdDecoder()
	defer putZstdDecoder(dec)

	raw, err := dec.DecodeAll(payload, make([]byte, 0, size))
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %v", ErrCorrupt, err)
	}
	if len(raw) != size {
		return nil, fmt.Errorf("%w: zstd produced %d bytes, expected %d", ErrCorrupt, len(raw), size)
	}
	return Raw{}.Unmarshal(raw)
}

// Name returns the unique name of the codec ("zstd").
func (Zstd) Name() string { return "zstd" }

func putBlockHeader(dst []byte, uncompressed, compressed int) {
	binary.LittleEndian.PutUint32(dst[0:], uint32(uncompressed))
	binary.LittleEndian.PutUint32(dst[4:], uint32(compressed))
}

func storeBlock(raw []byte) []byte {
	out := make([]byte, blockHeaderSize+len(raw))
	putBlockHeader(out, len(raw), 0)
	copy(out[blockHeaderSize:], raw)
	return out
}

// splitBlock validates the block header and returns the uncompressed size, the
// payload and whether the payload is stored uncompressed.
func splitBlock(data []byte) (int, []byte, bool, error) {
	if len(data) < blockHeaderSize {
		return 0, nil, false, fmt.Errorf("%w: block too small for header", ErrCorrupt)
	}
	size := int(binary.LittleEndian.Uint32(data[0:]))
	compressed := int(binary.LittleEndian.Uint32(data[4:]))
	payload := data[blockHeaderSize:]
	if size < rawHeaderSize {
		return 0, nil, false, fmt.Errorf("%w: uncompressed size %d", ErrCorrupt, size)
	}
	if compressed == 0 {
		if len(payload) != size {
			return 0, nil, false, fmt.Errorf("%w: stored block has %d bytes, expected %d", ErrCorrupt, len(payload), size)
		}
		return size, payload, true, nil
	}
	if len(payload) != compressed {
		return 0, nil, false, fmt.Errorf("%w: compressed block has %d bytes, expected %d", ErrCorrupt, len(payload), compressed)
	}
	return size, payload, false, nil
}
