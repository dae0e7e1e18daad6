package testutil

import (
	"encoding/binary"
	"math/rand"
)

// RNG encapsulates a random number generator with a fixed seed so test
// inputs are reproducible.
type RNG struct {
	rand *rand.Rand
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.rand.Seed(r.seed)
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	return r.rand.Intn(n)
}

// Record returns a pseudo-random byte record of the given width.
func (r *RNG) Record(size int) []byte {
	b := make([]byte, size)
	r.rand.Read(b)
	return b
}

// Records returns n pseudo-random byte records, each size bytes wide.
func (r *RNG) Records(n, size int) [][]byte {
	records := make([][]byte, n)
	for i := range records {
		records[i] = r.Record(size)
	}
	return records
}

// U64Record encodes v as an 8-byte little-endian record. Handy for tests
// that need recognizable fixed-width payloads.
func U64Record(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// U64FromRecord decodes the first 8 bytes of b as little-endian.
func U64FromRecord(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}
