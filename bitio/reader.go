// Package bitio provides the little-endian bit-stream and byte-stream
// primitives the message codecs are built on.
//
// Reader is the bit-level façade used by the delta codec and the handful
// of message bodies that are themselves bit-packed (ClientData,
// SpawnBaseline, PacketEntities). ByteWriter/ByteReader are the
// byte-level counterparts used by every other message body. Both follow
// spec §4.1: within a byte the least significant bit is read first, and a
// field of width W yields an unsigned integer in [0, 2^W) before any
// sign extension.
package bitio

import "github.com/hlnet/gsnetmsg/errs"

// Reader reads bits LSB-first out of a byte slice it does not own.
type Reader struct {
	data   []byte
	bitPos int // absolute cursor, in bits, from the start of data
}

// NewReader wraps data for bit-level reading starting at bit 0.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadBit reads a single bit and advances the cursor by one.
func (r *Reader) ReadBit() (bool, error) {
	byteIdx := r.bitPos >> 3
	if byteIdx >= len(r.data) {
		return false, errs.At(errs.ErrShortRead, byteIdx, r.bitPos&7)
	}

	bit := (r.data[byteIdx] >> uint(r.bitPos&7)) & 1
	r.bitPos++

	return bit != 0, nil
}

// ReadBits reads the next n bits (1 <= n <= 32) and returns them as an
// unsigned integer in [0, 2^n), LSB-first within and across bytes.
func (r *Reader) ReadBits(n uint8) (uint32, error) {
	if n == 0 || n > 32 {
		return 0, errs.At(errs.ErrBadDescriptor, r.bitPos>>3, r.bitPos&7)
	}

	var out uint32
	for i := uint8(0); i < n; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		if bit {
			out |= 1 << i
		}
	}

	return out, nil
}

// ConsumedBytes returns the number of bytes the cursor has advanced into,
// rounded up — the value original_source calls get_consumed_bytes, used
// by callers to re-synchronize a byte-level cursor after a bit-packed
// message body.
func (r *Reader) ConsumedBytes() int {
	return (r.bitPos + 7) >> 3
}

// BitPos returns the raw bit cursor, mainly for error reporting.
func (r *Reader) BitPos() int { return r.bitPos }

// Remaining reports whether at least one more bit can be read.
func (r *Reader) Remaining() bool {
	return r.bitPos>>3 < len(r.data)
}

// SignExtend converts the unsigned n-bit value v to its two's-complement
// signed interpretation, per spec §4.1.
func SignExtend(v uint32, n uint8) int32 {
	shift := 32 - n
	return int32(v<<shift) >> shift
}
