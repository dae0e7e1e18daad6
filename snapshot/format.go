package snapshot

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// MagicNumber identifies castor snapshot files (ASCII: "CAS1").
	MagicNumber = 0x43415331
	// Version is the current snapshot format version.
	Version = 1

	// headerSize is the fixed little-endian header length in bytes.
	headerSize = 28
	// trailerSize is the length of the trailing CRC32 checksum.
	trailerSize = 4

	// maxPayloadLen bounds the stored payload length so a corrupt header
	// cannot drive an absurd allocation.
	maxPayloadLen = 1 << 40
)

var (
	// ErrInvalidMagic is returned when the input does not start with a
	// castor snapshot header.
	ErrInvalidMagic = errors.New("invalid magic number")

	// ErrChecksumMismatch is returned when the snapshot bytes fail CRC32
	// verification.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrCorruptHeader is returned when header fields are internally
	// inconsistent (zero object size, oversized payload, size overflow).
	ErrCorruptHeader = errors.New("corrupt snapshot header")
)

// ErrUnsupportedVersion indicates a snapshot written by an unknown format
// version.
type ErrUnsupportedVersion struct {
	Version uint16
}

func (e *ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("unsupported snapshot version: %d", e.Version)
}

// header is the fixed-size prefix of every snapshot.
//
// Layout (little-endian):
//
//	Magic      uint32
//	Version    uint16
//	Codec      uint8
//	Reserved   uint8
//	ObjectSize uint32
//	Count      uint64
//	PayloadLen uint64
//
// The payload follows, then a CRC32 (IEEE) of header+payload.
type header struct {
	Magic      uint32
	Version    uint16
	Codec      Codec
	ObjectSize uint32
	Count      uint64
	PayloadLen uint64
}

func (h *header) marshal() []byte {
	buf := make([]byte, headerSize)
	binary.LittleEndian.PutUint32(buf[0:], h.Magic)
	binary.LittleEndian.PutUint16(buf[4:], h.Version)
	buf[6] = uint8(h.Codec)
	buf[7] = 0 // reserved
	binary.LittleEndian.PutUint32(buf[8:], h.ObjectSize)
	binary.LittleEndian.PutUint64(buf[12:], h.Count)
	binary.LittleEndian.PutUint64(buf[20:], h.PayloadLen)
	return buf
}

func (h *header) unmarshal(buf []byte) error {
	h.Magic = binary.LittleEndian.Uint32(buf[0:])
	if h.Magic != MagicNumber {
		return ErrInvalidMagic
	}

	h.Version = binary.LittleEndian.Uint16(buf[4:])
	if h.Version != Version {
		return &ErrUnsupportedVersion{Version: h.Version}
	}

	h.Codec = Codec(buf[6])
	if !h.Codec.valid() {
		return &ErrInvalidCodec{Codec: uint8(h.Codec)}
	}

	h.ObjectSize = binary.LittleEndian.Uint32(buf[8:])
	h.Count = binary.LittleEndian.Uint64(buf[12:])
	h.PayloadLen = binary.LittleEndian.Uint64(buf[20:])

	if h.ObjectSize == 0 || h.PayloadLen > maxPayloadLen {
		return ErrCorruptHeader
	}

	return nil
}
