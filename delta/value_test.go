package delta_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hlnet/gsnetmsg/delta"
)

func TestValueAsU32(t *testing.T) {
	require.EqualValues(t, 42, delta.U8(42).AsU32())
	require.EqualValues(t, 0xFFFFFFFF, delta.I32(-1).AsU32())
}

func TestValueAsU32PanicsOnFloat(t *testing.T) {
	require.Panics(t, func() { delta.F32(1.0).AsU32() })
}

func TestFingerprintStableAndSensitive(t *testing.T) {
	fields := []delta.FieldDescriptor{
		{Name: "health", Bits: 16, Flags: delta.FlagInteger},
	}
	a := delta.Delta{{Descriptor: fields[0], Value: delta.Value{Kind: delta.KindI32, I: 100}}}
	b := delta.Delta{{Descriptor: fields[0], Value: delta.Value{Kind: delta.KindI32, I: 100}}}
	c := delta.Delta{{Descriptor: fields[0], Value: delta.Value{Kind: delta.KindI32, I: 99}}}

	require.Equal(t, delta.Fingerprint(a), delta.Fingerprint(b))
	require.NotEqual(t, delta.Fingerprint(a), delta.Fingerprint(c))
}
