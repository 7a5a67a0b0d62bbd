// Package codec centralizes bit vector serialization.
//
// Raw is the stable byte form of a vector: equal vectors always encode to equal
// bytes, which makes it usable as a seed source. The compressed codecs wrap the raw
// form and are meant for transport between processes.
package codec

import (
	"errors"
	"fmt"

	"github.com/hupe1980/binvec/bitvec"
)

var (
	// ErrCorrupt is returned when encoded data cannot be decoded.
	ErrCorrupt = errors.New("codec: corrupt data")

	// ErrUnknownCodec is returned by Lookup for unregistered names.
	ErrUnknownCodec = errors.New("codec: unknown codec")
)

// Codec encodes/decodes bit vectors.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v *bitvec.Vector) ([]byte, error)
	Unmarshal(data []byte) (*bitvec.Vector, error)
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = Raw{}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "raw":
		return Raw{}, true
	case "lz4":
		return LZ4{}, true
	case "zstd":
		return Zstd{}, true
	default:
		return nil, false
	}
}

// Lookup is like ByName but reports unknown names as ErrUnknownCodec.
func Lookup(name string) (Codec, error) {
	c, ok := ByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCodec, name)
	}
	return c, nil
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v *bitvec.Vector) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
