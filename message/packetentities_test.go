package message_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/delta"
	"github.com/hlnet/gsnetmsg/message"
	"github.com/hlnet/gsnetmsg/session"
)

func TestPacketEntitiesRoundTrip(t *testing.T) {
	s := session.New()
	s.MaxPlayers = 2

	fields, ok := s.DDT.Lookup("entity_state_t")
	require.True(t, ok)

	in := message.PacketEntities{
		Entities: []message.PacketEntity{
			{Index: 3, Delta: delta.Delta{{Descriptor: fields[6], Value: delta.Value{Kind: delta.KindU16, I: 7}}}},
			{Index: 50, Delta: delta.Delta{{Descriptor: fields[6], Value: delta.Value{Kind: delta.KindU16, I: 8}}}},
		},
	}

	enc, ok := message.Encoder(message.TagPacketEntities)
	require.True(t, ok)
	bw := bitio.NewByteWriter()
	require.NoError(t, enc(bw, in, s))

	dec, ok := message.Decoder(message.TagPacketEntities)
	require.True(t, ok)
	br := bitio.NewByteReader(bw.Bytes())
	out, err := dec(br, s)
	require.NoError(t, err)

	got := out.(message.PacketEntities)
	require.Len(t, got.Entities, 2)
	require.Equal(t, uint16(3), got.Entities[0].Index)
	require.Equal(t, uint16(50), got.Entities[1].Index)
}

func TestDeltaPacketEntitiesWithRemoval(t *testing.T) {
	s := session.New()

	fields, ok := s.DDT.Lookup("entity_state_t")
	require.True(t, ok)

	in := message.DeltaPacketEntities{
		DeltaSequence: 5,
		Entities: []message.PacketEntity{
			{Index: 1, Delta: delta.Delta{{Descriptor: fields[6], Value: delta.Value{Kind: delta.KindU16, I: 1}}}},
			{Index: 2, Removed: true},
		},
	}

	enc, ok := message.Encoder(message.TagDeltaPacketEntities)
	require.True(t, ok)
	bw := bitio.NewByteWriter()
	require.NoError(t, enc(bw, in, s))

	dec, ok := message.Decoder(message.TagDeltaPacketEntities)
	require.True(t, ok)
	br := bitio.NewByteReader(bw.Bytes())
	out, err := dec(br, s)
	require.NoError(t, err)

	got := out.(message.DeltaPacketEntities)
	require.Equal(t, uint8(5), got.DeltaSequence)
	require.Len(t, got.Entities, 2)
	require.True(t, got.Entities[1].Removed)
}
