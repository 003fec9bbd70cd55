package message_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/delta"
	"github.com/hlnet/gsnetmsg/message"
	"github.com/hlnet/gsnetmsg/session"
)

func TestClientDataRoundTrip(t *testing.T) {
	s := session.New()

	fields, ok := s.DDT.Lookup("clientdata_t")
	require.True(t, ok)
	weaponFields, ok := s.DDT.Lookup("weapon_data_t")
	require.True(t, ok)

	in := message.ClientData{
		Delta: delta.Delta{
			{Descriptor: fields[16], Value: delta.Value{Kind: delta.KindI32, I: 88}}, // health
		},
		Weapons: map[uint8]delta.Delta{
			2: {{Descriptor: weaponFields[0], Value: delta.Value{Kind: delta.KindByte, I: 5}}},
			9: {{Descriptor: weaponFields[1], Value: delta.Value{Kind: delta.KindI8, I: -1}}},
		},
	}

	enc, ok := message.Encoder(message.TagClientData)
	require.True(t, ok)
	bw := bitio.NewByteWriter()
	require.NoError(t, enc(bw, in, s))

	dec, ok := message.Decoder(message.TagClientData)
	require.True(t, ok)
	br := bitio.NewByteReader(bw.Bytes())
	out, err := dec(br, s)
	require.NoError(t, err)

	got := out.(message.ClientData)
	require.Len(t, got.Weapons, 2)
	health, ok := got.Delta.Get("health")
	require.True(t, ok)
	require.EqualValues(t, 88, health.I)
}

func TestClientDataHLTVZeroBody(t *testing.T) {
	s := session.New()
	s.IsHLTV = true

	dec, ok := message.Decoder(message.TagClientData)
	require.True(t, ok)

	br := bitio.NewByteReader(nil)
	out, err := dec(br, s)
	require.NoError(t, err)
	require.Equal(t, message.ClientData{}, out)
}
