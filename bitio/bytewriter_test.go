package bitio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hlnet/gsnetmsg/bitio"
)

func TestByteWriterReaderRoundTrip(t *testing.T) {
	w := bitio.NewByteWriter()
	w.WriteU8(7)
	w.WriteI16(-42)
	w.WriteU32(0xCAFEBABE)
	w.WriteF32(3.5)
	w.WriteCString([]byte("hello"))
	w.WriteBytes([]byte{1, 2, 3})

	r := bitio.NewByteReader(w.Bytes())

	u8, err := r.ReadU8()
	require.NoError(t, err)
	require.EqualValues(t, 7, u8)

	i16, err := r.ReadI16()
	require.NoError(t, err)
	require.EqualValues(t, -42, i16)

	u32, err := r.ReadU32()
	require.NoError(t, err)
	require.EqualValues(t, 0xCAFEBABE, u32)

	f32, err := r.ReadF32()
	require.NoError(t, err)
	require.InDelta(t, 3.5, f32, 0.0001)

	s, err := r.ReadCString()
	require.NoError(t, err)
	require.Equal(t, "hello", string(s))

	rest, err := r.ReadBytes(3)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, rest)
}

func TestByteReaderShortRead(t *testing.T) {
	r := bitio.NewByteReader([]byte{1, 2})
	_, err := r.ReadU32()
	require.Error(t, err)
}
