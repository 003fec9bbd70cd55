package bitio

import (
	"bytes"

	"github.com/hlnet/gsnetmsg/endian"
	"github.com/hlnet/gsnetmsg/errs"
)

// ByteReader reads little-endian primitives out of a borrowed byte slice.
// Every simple (non-bit-packed) message body is read through one of
// these.
type ByteReader struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

// NewByteReader wraps data for byte-level reading starting at offset 0.
func NewByteReader(data []byte) *ByteReader {
	return &ByteReader{data: data, engine: endian.LittleEndian()}
}

func (r *ByteReader) need(n int) error {
	if r.pos+n > len(r.data) {
		return errs.At(errs.ErrShortRead, r.pos, 0)
	}

	return nil
}

func (r *ByteReader) ReadU8() (uint8, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	v := r.data[r.pos]
	r.pos++

	return v, nil
}

func (r *ByteReader) ReadI8() (int8, error) {
	v, err := r.ReadU8()
	return int8(v), err
}

func (r *ByteReader) ReadBool() (bool, error) {
	v, err := r.ReadU8()
	return v != 0, err
}

func (r *ByteReader) ReadU16() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := r.engine.Uint16(r.data[r.pos:])
	r.pos += 2

	return v, nil
}

func (r *ByteReader) ReadI16() (int16, error) {
	v, err := r.ReadU16()
	return int16(v), err
}

func (r *ByteReader) ReadU32() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := r.engine.Uint32(r.data[r.pos:])
	r.pos += 4

	return v, nil
}

func (r *ByteReader) ReadI32() (int32, error) {
	v, err := r.ReadU32()
	return int32(v), err
}

func (r *ByteReader) ReadF32() (float32, error) {
	v, err := r.ReadU32()
	return float32frombits(v), err
}

// ReadBytes returns the next n bytes as a sub-slice of the borrowed input
// (spec §9: "an implementation may choose to own-by-copy or
// lifetime-bind to the input buffer").
func (r *ByteReader) ReadBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	v := r.data[r.pos : r.pos+n]
	r.pos += n

	return v, nil
}

// ReadCString reads bytes up to (excluding) the next NUL terminator and
// consumes the terminator.
func (r *ByteReader) ReadCString() ([]byte, error) {
	rest := r.data[r.pos:]

	idx := bytes.IndexByte(rest, 0)
	if idx < 0 {
		return nil, errs.At(errs.ErrShortRead, r.pos, 0)
	}

	s := rest[:idx]
	r.pos += idx + 1

	return s, nil
}

// Remaining returns the unread tail of the input, without copying.
func (r *ByteReader) Remaining() []byte { return r.data[r.pos:] }

// Pos returns the current byte offset.
func (r *ByteReader) Pos() int { return r.pos }

// Len returns the total input length.
func (r *ByteReader) Len() int { return len(r.data) }

// Advance skips n bytes forward (used after a bit-packed sub-body whose
// consumed-byte count is already known).
func (r *ByteReader) Advance(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.pos += n

	return nil
}
