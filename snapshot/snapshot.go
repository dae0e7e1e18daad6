package snapshot

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/atomlet/castor/rawvec"
)

type options struct {
	codec Codec
	ops   *rawvec.ElementOps
}

// Option configures Write and Read.
type Option func(*options)

// WithCodec selects the payload compression codec for Write. The default
// is CodecNone. Read ignores it; the codec is recorded in the header.
func WithCodec(c Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithElementOps attaches an element-operations capability to the vector
// constructed by Read. Write ignores it; hooks are runtime references and
// are never serialized.
func WithElementOps(ops *rawvec.ElementOps) Option {
	return func(o *options) {
		o.ops = ops
	}
}

// Write serializes v's object size, count and live record bytes to w.
func Write(w io.Writer, v *rawvec.Vector, optFns ...Option) error {
	var opts options
	for _, fn := range optFns {
		fn(&opts)
	}
	if !opts.codec.valid() {
		return &ErrInvalidCodec{Codec: uint8(opts.codec)}
	}

	payload, codec, err := compress(v.Bytes(), opts.codec)
	if err != nil {
		return fmt.Errorf("compress payload: %w", err)
	}

	h := header{
		Magic:      MagicNumber,
		Version:    Version,
		Codec:      codec,
		ObjectSize: uint32(v.ObjectSize()),
		Count:      uint64(v.Count()),
		PayloadLen: uint64(len(payload)),
	}
	hdr := h.marshal()

	if _, err := w.Write(hdr); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}

	var trailer [trailerSize]byte
	binary.LittleEndian.PutUint32(trailer[:], checksum(hdr, payload))
	if _, err := w.Write(trailer[:]); err != nil {
		return fmt.Errorf("write checksum: %w", err)
	}

	return nil
}

// Read deserializes a vector written by Write. The result is sized
// exactly to its count (capacity == count; an empty snapshot yields an
// unallocated vector) and carries the ops supplied via WithElementOps,
// if any.
func Read(r io.Reader, optFns ...Option) (*rawvec.Vector, error) {
	var opts options
	for _, fn := range optFns {
		fn(&opts)
	}

	hdr := make([]byte, headerSize)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	var h header
	if err := h.unmarshal(hdr); err != nil {
		return nil, err
	}

	objectSize := int(h.ObjectSize)
	count := int(h.Count)
	if count < 0 || objectSize <= 0 || count > maxPayloadLen/objectSize {
		return nil, ErrCorruptHeader
	}

	payload := make([]byte, h.PayloadLen)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	var trailer [trailerSize]byte
	if _, err := io.ReadFull(r, trailer[:]); err != nil {
		return nil, fmt.Errorf("read checksum: %w", err)
	}
	if binary.LittleEndian.Uint32(trailer[:]) != checksum(hdr, payload) {
		return nil, ErrChecksumMismatch
	}

	raw, err := decompress(payload, h.Codec, count*objectSize)
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}

	vecOpts := []rawvec.Option{rawvec.WithCapacity(count)}
	if opts.ops != nil {
		vecOpts = append(vecOpts, rawvec.WithOps(opts.ops))
	}
	v, err := rawvec.New(objectSize, vecOpts...)
	if err != nil {
		return nil, err
	}

	for i := 0; i < count; i++ {
		v.PushBack(raw[i*objectSize:])
	}

	return v, nil
}
