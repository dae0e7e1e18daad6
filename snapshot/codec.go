package snapshot

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec selects the payload compression algorithm.
type Codec uint8

const (
	// CodecNone stores the payload uncompressed.
	CodecNone Codec = 0
	// CodecLZ4 uses LZ4 block compression (fast, good for hot data).
	CodecLZ4 Codec = 1
	// CodecZSTD uses ZSTD block compression (better ratio, good for cold data).
	CodecZSTD Codec = 2
)

func (c Codec) valid() bool {
	return c <= CodecZSTD
}

// ErrInvalidCodec indicates an unknown codec byte.
type ErrInvalidCodec struct {
	Codec uint8
}

func (e *ErrInvalidCodec) Error() string {
	return fmt.Sprintf("invalid snapshot codec: %d", e.Codec)
}

// ZSTD encoder/decoder pools for efficiency.
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

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// compress encodes data with c. When compression does not pay off (ratio
// above 0.9, or an incompressible LZ4 block) the payload is stored raw
// and the returned codec downgrades to CodecNone.
func compress(data []byte, c Codec) ([]byte, Codec, error) {
	if c == CodecNone || len(data) == 0 {
		return data, CodecNone, nil
	}

	var compressed []byte
	switch c {
	case CodecLZ4:
		bound := lz4.CompressBlockBound(len(data))
		buf := make([]byte, bound)
		n, err := lz4.CompressBlock(data, buf, nil)
		if err != nil {
			return nil, c, err
		}
		if n == 0 {
			// Incompressible block.
			return data, CodecNone, nil
		}
		compressed = buf[:n]
	case CodecZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		zstdEncoderPool.Put(enc)
	default:
		return nil, c, &ErrInvalidCodec{Codec: uint8(c)}
	}

	if float64(len(compressed)) > float64(len(data))*0.9 {
		return data, CodecNone, nil
	}

	return compressed, c, nil
}

// decompress decodes a payload written by compress into exactly
// uncompressedLen bytes.
func decompress(data []byte, c Codec, uncompressedLen int) ([]byte, error) {
	switch c {
	case CodecNone:
		if len(data) != uncompressedLen {
			return nil, fmt.Errorf("%w: payload length %d, want %d", ErrCorruptHeader, len(data), uncompressedLen)
		}
		return data, nil
	case CodecLZ4:
		out := make([]byte, uncompressedLen)
		n, err := lz4.UncompressBlock(data, out)
		if err != nil {
			return nil, err
		}
		if n != uncompressedLen {
			return nil, fmt.Errorf("%w: decompressed to %d bytes, want %d", ErrCorruptHeader, n, uncompressedLen)
		}
		return out, nil
	case CodecZSTD:
		dec := getZstdDecoder()
		out, err := dec.DecodeAll(data, nil)
		zstdDecoderPool.Put(dec)
		if err != nil {
			return nil, err
		}
		if len(out) != uncompressedLen {
			return nil, fmt.Errorf("%w: decompressed to %d bytes, want %d", ErrCorruptHeader, len(out), uncompressedLen)
		}
		return out, nil
	default:
		return nil, &ErrInvalidCodec{Codec: uint8(c)}
	}
}
