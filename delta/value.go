// Package delta implements the descriptor-driven field codec: the delta
// decoder table (DDT), the field descriptor type, and the interpreter
// that turns a descriptor list plus a bit stream into a Delta (field name
// -> typed value) and back.
//
// This is the descriptor-directed design spec.md §9 calls for explicitly:
// the table is data, the codec is a small interpreter over it, and new
// structures arrive at runtime via DeltaDescription without requiring new
// Go code. Shaped after arloliu-mebo/encoding's ColumnarEncoder[T] /
// ColumnarDecoder[T] pair — one small, composable interpreter per concern
// rather than one hand-written struct per wire shape.
package delta

// Kind tags the scalar kinds a DeltaValue can hold (spec §3.1).
type Kind uint8

const (
	KindByte Kind = iota
	KindChar
	KindI8
	KindI16
	KindI32
	KindU8
	KindU16
	KindU32
	KindF32
	KindString
	KindAngle
	KindTime

	// KindVec3F32 and KindVec3I32 round out spec §3.1's DeltaValue union.
	// No code in this module produces them: vector-shaped message bodies
	// (SetAngle, Particle's origin/direction) carry plain Go arrays, and
	// in the descriptor-driven codec in this package every FLOAT/ANGLE/etc.
	// flag in §4.2's table decodes one scalar per field, and an entity's
	// origin is three separate named fields ("origin[0]".."origin[2]")
	// in the real DDT, not one vector field.
	KindVec3F32
	KindVec3I32
)

// Value is a single decoded or to-be-encoded delta field value.
type Value struct {
	Kind Kind

	// I holds BYTE/CHAR/SHORT/INTEGER values, sign-extended when the
	// descriptor's SIGNED flag is set.
	I int64
	// F holds FLOAT/ANGLE/TIMEWINDOW_8/TIMEWINDOW_BIG values.
	F float32
	// Bytes holds STRING values (the bytes between NULs, excluding the
	// terminator), borrowed from the input when decoding.
	Bytes []byte

	Vec3F [3]float32
	Vec3I [3]int32
}

func U8(v uint8) Value   { return Value{Kind: KindU8, I: int64(v)} }
func I8(v int8) Value    { return Value{Kind: KindI8, I: int64(v)} }
func U16(v uint16) Value { return Value{Kind: KindU16, I: int64(v)} }
func I16(v int16) Value  { return Value{Kind: KindI16, I: int64(v)} }
func U32(v uint32) Value { return Value{Kind: KindU32, I: int64(v)} }
func I32(v int32) Value  { return Value{Kind: KindI32, I: int64(v)} }
func F32(v float32) Value { return Value{Kind: KindF32, F: v} }
func Angle(v float32) Value { return Value{Kind: KindAngle, F: v} }
func Time(v float32) Value  { return Value{Kind: KindTime, F: v} }
func Str(b []byte) Value    { return Value{Kind: KindString, Bytes: b} }

// AsU32 widens an integer-kinded value to uint32 (the wire representation
// before sign extension). Panics if v is not an integer kind — mirrors
// the original's strongly-typed field accessors rather than silently
// coercing.
func (v Value) AsU32() uint32 {
	switch v.Kind {
	case KindByte, KindChar, KindI8, KindI16, KindI32, KindU8, KindU16, KindU32:
		return uint32(v.I)
	default:
		panic("delta: AsU32 on non-integer value")
	}
}
