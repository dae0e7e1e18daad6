// Package snapshot serializes rawvec vectors to a compact binary format.
//
// A snapshot carries the object size, the live element count and the live
// record bytes; capacity is not persisted, so a loaded vector is sized
// exactly to its count. The payload can be stored raw or block-compressed
// with LZ4 or ZSTD, and the whole snapshot is protected by a trailing
// CRC32 checksum. The element-operations capability is a borrowed runtime
// reference and is never serialized; callers reattach it on load via
// WithElementOps.
//
// The Manager adds directory-scoped persistence with atomic file
// replacement and concurrent multi-vector saves.
package snapshot
