package delta_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/delta"
)

func testFields() []delta.FieldDescriptor {
	return []delta.FieldDescriptor{
		{Name: "health", Bits: 16, Flags: delta.FlagInteger | delta.FlagSigned},
		{Name: "origin[0]", Bits: 32, Divisor: 8, Flags: delta.FlagFloat | delta.FlagSigned},
		{Name: "flags", Bits: 8, Flags: delta.FlagByte},
		{Name: "physinfo", Bits: 8, Flags: delta.FlagString},
		{Name: "waterlevel", Bits: 8, Flags: delta.FlagByte},
	}
}

func TestCodecRoundTripSparse(t *testing.T) {
	fields := testFields()

	in := delta.Delta{
		{Descriptor: fields[0], Value: delta.Value{Kind: delta.KindI32, I: -37}},
		{Descriptor: fields[3], Value: delta.Str([]byte("net_bits"))},
	}

	w := bitio.NewWriter()
	require.NoError(t, delta.Encode(w, fields, in))

	r := bitio.NewReader(w.Bytes())
	out, err := delta.Decode(r, fields)
	require.NoError(t, err)
	require.Len(t, out, 2)

	health, ok := out.Get("health")
	require.True(t, ok)
	require.EqualValues(t, -37, health.I)

	physinfo, ok := out.Get("physinfo")
	require.True(t, ok)
	require.Equal(t, "net_bits", string(physinfo.Bytes))

	_, ok = out.Get("flags")
	require.False(t, ok)
}

func TestCodecDivisorRoundTrip(t *testing.T) {
	fields := []delta.FieldDescriptor{
		{Name: "origin[0]", Bits: 32, Divisor: 8, Flags: delta.FlagFloat | delta.FlagSigned},
	}

	in := delta.Delta{{Descriptor: fields[0], Value: delta.F32(12.5)}}

	w := bitio.NewWriter()
	require.NoError(t, delta.Encode(w, fields, in))

	r := bitio.NewReader(w.Bytes())
	out, err := delta.Decode(r, fields)
	require.NoError(t, err)

	v, ok := out.Get("origin[0]")
	require.True(t, ok)
	require.InDelta(t, 12.5, v.F, 0.01)
}

func TestCodecEmptyMaskRoundTrip(t *testing.T) {
	fields := testFields()

	w := bitio.NewWriter()
	require.NoError(t, delta.Encode(w, fields, nil))

	r := bitio.NewReader(w.Bytes())
	out, err := delta.Decode(r, fields)
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestCodecEncodeOverflow(t *testing.T) {
	fields := []delta.FieldDescriptor{
		{Name: "flags", Bits: 4, Flags: delta.FlagByte},
	}
	in := delta.Delta{{Descriptor: fields[0], Value: delta.Value{Kind: delta.KindByte, I: 31}}}

	w := bitio.NewWriter()
	err := delta.Encode(w, fields, in)
	require.Error(t, err)
}

func TestCodecImpliedAllOnesMask(t *testing.T) {
	fields := []delta.FieldDescriptor{
		{Name: "a", Bits: 8, Flags: delta.FlagByte},
		{Name: "b", Bits: 8, Flags: delta.FlagByte},
	}

	w := bitio.NewWriter()
	w.AppendBit(false) // has_change_mask = 0: every field is implicitly present
	w.AppendBits(7, 8)
	w.AppendBits(9, 8)

	r := bitio.NewReader(w.Bytes())
	out, err := delta.Decode(r, fields)
	require.NoError(t, err)
	require.Len(t, out, 2)

	a, ok := out.Get("a")
	require.True(t, ok)
	require.EqualValues(t, 7, a.I)

	b, ok := out.Get("b")
	require.True(t, ok)
	require.EqualValues(t, 9, b.I)
}

func TestCodecAngleRoundTrip(t *testing.T) {
	fields := []delta.FieldDescriptor{
		{Name: "angles[1]", Bits: 16, Flags: delta.FlagAngle | delta.FlagSigned},
	}
	in := delta.Delta{{Descriptor: fields[0], Value: delta.Angle(-90)}}

	w := bitio.NewWriter()
	require.NoError(t, delta.Encode(w, fields, in))

	r := bitio.NewReader(w.Bytes())
	out, err := delta.Decode(r, fields)
	require.NoError(t, err)

	v, ok := out.Get("angles[1]")
	require.True(t, ok)
	require.InDelta(t, -90, v.F, 0.1)
}

func TestCodecTimeWindow8AlwaysReadsEightBits(t *testing.T) {
	fields := []delta.FieldDescriptor{
		{Name: "animtime", Bits: 32, Divisor: 100, Flags: delta.FlagTimeWindow8},
	}
	in := delta.Delta{{Descriptor: fields[0], Value: delta.Time(1.2)}}

	w := bitio.NewWriter()
	require.NoError(t, delta.Encode(w, fields, in))

	r := bitio.NewReader(w.Bytes())
	out, err := delta.Decode(r, fields)
	require.NoError(t, err)

	v, ok := out.Get("animtime")
	require.True(t, ok)
	require.InDelta(t, 1.2, v.F, 0.02)
}
