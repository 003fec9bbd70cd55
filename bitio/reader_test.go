package bitio_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hlnet/gsnetmsg/bitio"
)

func TestReaderWriterRoundTrip(t *testing.T) {
	fields := []struct {
		width uint8
		value uint32
	}{
		{1, 1},
		{3, 5},
		{8, 200},
		{11, 2047},
		{32, 0xDEADBEEF},
		{6, 0},
		{5, 17},
	}

	w := bitio.NewWriter()
	for _, f := range fields {
		w.AppendBits(f.value, f.width)
	}

	r := bitio.NewReader(w.Bytes())
	for _, f := range fields {
		got, err := r.ReadBits(f.width)
		require.NoError(t, err)
		require.Equal(t, f.value, got)
	}
}

func TestReaderShortRead(t *testing.T) {
	r := bitio.NewReader([]byte{0xFF})
	_, err := r.ReadBits(8)
	require.NoError(t, err)

	_, err = r.ReadBit()
	require.Error(t, err)
}

func TestSignExtend(t *testing.T) {
	require.Equal(t, int32(-1), bitio.SignExtend(0b111, 3))
	require.Equal(t, int32(3), bitio.SignExtend(0b011, 3))
	require.Equal(t, int32(-128), bitio.SignExtend(0x80, 8))
}

func TestConsumedBytesRoundsUp(t *testing.T) {
	r := bitio.NewReader([]byte{0x01, 0x02})
	_, err := r.ReadBits(3)
	require.NoError(t, err)
	require.Equal(t, 1, r.ConsumedBytes())

	_, err = r.ReadBits(6)
	require.NoError(t, err)
	require.Equal(t, 2, r.ConsumedBytes())
}
