package delta

// Flag is the field-kind bitset carried by each FieldDescriptor (spec
// §3.2). Exactly one of Byte/Char/Short/Integer/Float/Angle/TimeWindow8/
// TimeWindowBig/String determines how many bits are read and how the
// raw bits are reinterpreted; Signed is an orthogonal modifier that
// makes Byte/Char/Short/Integer/Float sign-extend instead of
// zero-extend. Angle and the time-window kinds are always sign-extended,
// and String ignores it.
type Flag uint16

const (
	FlagByte Flag = 1 << iota
	FlagChar
	FlagSigned
	FlagShort
	FlagInteger
	FlagFloat
	FlagAngle
	FlagTimeWindow8
	FlagTimeWindowBig
	FlagString
)

// kindMask is every flag that participates in "exactly one of" field-kind
// selection, i.e. everything except the Signed modifier.
const kindMask = FlagByte | FlagChar | FlagShort | FlagInteger | FlagFloat |
	FlagAngle | FlagTimeWindow8 | FlagTimeWindowBig | FlagString

// FieldDescriptor is one row of a delta decoder table: a field name, its
// encoded bit width, a divisor applied to integer-coded floats, and a
// flag set selecting how to interpret the bits (spec §3.2).
type FieldDescriptor struct {
	// Name is the field's wire name, stored WITHOUT the trailing NUL the
	// wire format carries — Key() reattaches it when the name is used as
	// a DDT lookup key, so descriptor lists read naturally in code and
	// tests.
	Name    string
	Bits    uint16
	Divisor float32
	Flags   Flag
}

// Valid reports whether the descriptor has a sane bit width and exactly
// one field-kind flag set, per spec §3.2's invariant.
func (d FieldDescriptor) Valid() bool {
	if d.Bits < 1 || d.Bits > 32 {
		return false
	}

	kind := d.Flags & kindMask
	return kind != 0 && kind&(kind-1) == 0
}

// Key returns the DDT lookup key for a structure name: the name with its
// wire-format trailing NUL reattached, so that table entries seeded from
// Go literals ("clientdata_t") and entries parsed off the wire
// ("clientdata_t\x00") collide on the same key.
func Key(name string) string {
	if n := len(name); n > 0 && name[n-1] == 0 {
		return name
	}
	return name + "\x00"
}
