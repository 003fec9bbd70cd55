package delta

import (
	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/errs"
)

// Field pairs a descriptor with the value decoded (or to be encoded) for
// it. Delta is the decoder's output: only the fields the change mask
// marked as present, in the order they appear in the owning descriptor
// list.
type Field struct {
	Descriptor FieldDescriptor
	Value      Value
}

// Delta is a sparse set of changed fields, as produced by Decode and
// consumed by Encode.
type Delta []Field

// Get returns the value for name, if the delta carries it.
func (d Delta) Get(name string) (Value, bool) {
	for _, f := range d {
		if f.Descriptor.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// Decode reads a change mask followed by the fields it marks present,
// against fields' order, and returns them as a Delta. fields must be the
// exact descriptor list that produced the bits being read — callers look
// it up from a Table by structure name before calling Decode (spec
// §4.2).
//
// Wire shape: a 1-bit has_change_mask. When set, a 3-bit mask_bytes-1
// count (so 1..8 mask bytes) followed by mask_bytes*8 mask bits, bit i
// gating descriptor i. When clear, no mask bits follow and every
// descriptor is treated as present — the "implied all-ones mask" a
// sender uses when every field in a structure changed.
func Decode(r *bitio.Reader, fields []FieldDescriptor) (Delta, error) {
	hasMask, err := r.ReadBit()
	if err != nil {
		return nil, err
	}

	present := make([]bool, len(fields))
	if !hasMask {
		for i := range present {
			present[i] = true
		}
	} else {
		maskBytesMinusOne, err := r.ReadBits(3)
		if err != nil {
			return nil, err
		}
		maskBytes := int(maskBytesMinusOne) + 1

		mask := make([]byte, maskBytes)
		for i := range mask {
			b, err := r.ReadBits(8)
			if err != nil {
				return nil, err
			}
			mask[i] = byte(b)
		}

		for i := range fields {
			byteIdx, bitIdx := i/8, uint(i%8)
			if byteIdx < len(mask) && mask[byteIdx]&(1<<bitIdx) != 0 {
				present[i] = true
			}
		}
	}

	var out Delta
	for i, desc := range fields {
		if !present[i] {
			continue
		}

		v, err := decodeField(r, desc)
		if err != nil {
			return nil, err
		}
		out = append(out, Field{Descriptor: desc, Value: v})
	}

	return out, nil
}

// Encode writes a change mask marking exactly the fields present in d,
// followed by their values, in fields' order. Fields in d that are not
// present in the fields list are a caller bug and are silently ignored,
// matching Decode's one-way "the table defines the shape" contract.
//
// The encoder always emits an explicit mask (has_change_mask=1) sized to
// the smallest mask_bytes in {1..8} covering the highest present index,
// per spec §4.2 — the implied-all-ones form is a decode-side allowance
// for other encoders, not something this encoder produces.
func Encode(w *bitio.Writer, fields []FieldDescriptor, d Delta) error {
	highest := -1
	for i, desc := range fields {
		if _, ok := d.Get(desc.Name); ok {
			highest = i
		}
	}

	maskBytes := 1
	if highest >= 0 {
		maskBytes = highest/8 + 1
		if maskBytes > 8 {
			return errs.ErrEncodeOverflow
		}
	}

	w.AppendBit(true)
	w.AppendBits(uint32(maskBytes-1), 3)

	mask := make([]byte, maskBytes)
	for i, desc := range fields {
		if _, ok := d.Get(desc.Name); ok {
			mask[i/8] |= 1 << uint(i%8)
		}
	}
	for _, b := range mask {
		w.AppendBits(uint32(b), 8)
	}

	for _, desc := range fields {
		v, ok := d.Get(desc.Name)
		if !ok {
			continue
		}
		if err := encodeField(w, desc, v); err != nil {
			return err
		}
	}

	return nil
}

func divide(raw int32, divisor float32) float32 {
	if divisor == 0 {
		return float32(raw)
	}
	return float32(raw) / divisor
}

func scale(f float32, divisor float32) int32 {
	if divisor == 0 {
		return int32(f)
	}
	return int32(f * divisor)
}

// readString reads bytes until (and consuming) a NUL terminator — spec
// §4.2's STRING row, distinct from usermsg's length-prefixed payloads.
func readString(r *bitio.Reader) ([]byte, error) {
	var buf []byte
	for {
		b, err := r.ReadBits(8)
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return buf, nil
		}
		buf = append(buf, byte(b))
	}
}

func writeString(w *bitio.Writer, s []byte) {
	for _, b := range s {
		w.AppendBits(uint32(b), 8)
	}
	w.AppendBits(0, 8)
}

func decodeField(r *bitio.Reader, d FieldDescriptor) (Value, error) {
	if !d.Valid() {
		return Value{}, errs.ErrBadDescriptor
	}

	if d.Flags&FlagString != 0 {
		s, err := readString(r)
		if err != nil {
			return Value{}, err
		}
		return Str(s), nil
	}

	// TIMEWINDOW_8 always reads a fixed 8-bit field regardless of the
	// descriptor's declared width (spec §4.2 table).
	width := uint8(d.Bits)
	if d.Flags&FlagTimeWindow8 != 0 {
		width = 8
	}

	raw, err := r.ReadBits(width)
	if err != nil {
		return Value{}, err
	}

	switch {
	case d.Flags&FlagAngle != 0:
		signed := bitio.SignExtend(raw, width)
		return Angle(float32(signed) * (360.0 / float32(uint32(1)<<width))), nil
	case d.Flags&(FlagTimeWindow8|FlagTimeWindowBig) != 0:
		signed := bitio.SignExtend(raw, width)
		return Time(divide(signed, d.Divisor)), nil
	}

	var signed int32
	if d.Flags&FlagSigned != 0 {
		signed = bitio.SignExtend(raw, width)
	} else {
		signed = int32(raw)
	}

	switch {
	case d.Flags&FlagByte != 0:
		return Value{Kind: KindByte, I: int64(signed)}, nil
	case d.Flags&FlagChar != 0:
		return Value{Kind: KindChar, I: int64(signed)}, nil
	case d.Flags&FlagShort != 0:
		return Value{Kind: KindI16, I: int64(signed)}, nil
	case d.Flags&FlagInteger != 0:
		return Value{Kind: KindI32, I: int64(signed)}, nil
	case d.Flags&FlagFloat != 0:
		return F32(divide(signed, d.Divisor)), nil
	default:
		return Value{}, errs.ErrBadDescriptor
	}
}

func encodeField(w *bitio.Writer, d FieldDescriptor, v Value) error {
	if !d.Valid() {
		return errs.ErrBadDescriptor
	}

	if d.Flags&FlagString != 0 {
		writeString(w, v.Bytes)
		return nil
	}

	width := uint8(d.Bits)
	if d.Flags&FlagTimeWindow8 != 0 {
		width = 8
	}

	if d.Flags&FlagAngle != 0 {
		scaleFactor := float32(uint32(1)<<width) / 360.0
		raw := int32(v.F * scaleFactor)
		if !fitsBits(raw, width, true) {
			return errs.ErrEncodeOverflow
		}
		w.AppendBits(uint32(raw)&bitMask(width), width)
		return nil
	}

	if d.Flags&(FlagTimeWindow8|FlagTimeWindowBig) != 0 {
		raw := scale(v.F, d.Divisor)
		if !fitsBits(raw, width, true) {
			return errs.ErrEncodeOverflow
		}
		w.AppendBits(uint32(raw)&bitMask(width), width)
		return nil
	}

	var raw int32
	switch {
	case d.Flags&(FlagByte|FlagChar|FlagShort|FlagInteger) != 0:
		raw = int32(v.I)
	case d.Flags&FlagFloat != 0:
		raw = scale(v.F, d.Divisor)
	default:
		return errs.ErrBadDescriptor
	}

	if !fitsBits(raw, width, d.Flags&FlagSigned != 0) {
		return errs.ErrEncodeOverflow
	}
	w.AppendBits(uint32(raw)&bitMask(width), width)

	return nil
}

func bitMask(bits uint8) uint32 {
	if bits >= 32 {
		return 0xFFFFFFFF
	}
	return 1<<uint(bits) - 1
}

func fitsBits(v int32, bits uint8, signed bool) bool {
	if bits >= 32 {
		return true
	}
	if signed {
		lo, hi := -(int32(1) << (bits - 1)), int32(1)<<(bits-1)-1
		return v >= lo && v <= hi
	}
	return v >= 0 && uint32(v) <= bitMask(bits)
}
