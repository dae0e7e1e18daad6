package snapshot

import "hash/crc32"

// Snapshots are integrity-checked with CRC32 (IEEE polynomial): fast,
// hardware-accelerated on modern CPUs, and good at catching storage
// corruption. It is not cryptographically secure and does not detect
// deliberate tampering.

var crc32Table = crc32.MakeTable(crc32.IEEE)

// checksum computes the running CRC32 over the given byte sections.
func checksum(sections ...[]byte) uint32 {
	var sum uint32
	for _, s := range sections {
		sum = crc32.Update(sum, crc32Table, s)
	}
	return sum
}
