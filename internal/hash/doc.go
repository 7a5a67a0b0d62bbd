// Package hash provides hashing utilities for checksums and seed derivation.
//
// # CRC32-Castagnoli (CRC32C)
//
//	checksum := hash.CRC32C(data)
//
// Seed64 mixes the checksum into the high half of its result.
//
// # Seeds
//
// Seed64 derives a deterministic math/rand seed from a serialized vector, so the
// same bytes always drive the same random sequence.
package hash
