package hash

import "hash/fnv"

// Seed64 folds data into a 64-bit pseudorandom seed.
// The FNV-1a digest is mixed with the CRC32C checksum in the high bits so that
// inputs differing only in trailing words still spread across the seed space.
func Seed64(data []byte) int64 {
	h := fnv.New64a()
	_, _ = h.Write(data)
	return int64(h.Sum64() ^ uint64(CRC32C(data))<<32)
}
