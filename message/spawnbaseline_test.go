package message_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/delta"
	"github.com/hlnet/gsnetmsg/message"
	"github.com/hlnet/gsnetmsg/session"
)

func TestSpawnBaselineRoundTrip(t *testing.T) {
	s := session.New()
	s.MaxPlayers = 4

	entityFields, ok := s.DDT.Lookup("entity_state_t")
	require.True(t, ok)
	playerFields, ok := s.DDT.Lookup("entity_state_player_t")
	require.True(t, ok)

	in := message.SpawnBaseline{
		Entities: []message.BaselineEntity{
			{
				Index:  1,
				Type:   1, // delta-coded + player (index 1 <= MaxPlayers)
				Footer: 7,
				Delta: delta.Delta{
					{Descriptor: playerFields[6], Value: delta.Value{Kind: delta.KindU16, I: 42}}, // modelindex
				},
			},
			{
				Index:  10,
				Type:   1, // delta-coded, non-player
				Footer: 0,
				Delta: delta.Delta{
					{Descriptor: entityFields[6], Value: delta.Value{Kind: delta.KindU16, I: 99}},
				},
				Extra: []delta.Delta{
					{{Descriptor: entityFields[6], Value: delta.Value{Kind: delta.KindU16, I: 100}}},
				},
			},
		},
	}

	enc, ok := message.Encoder(message.TagSpawnBaseline)
	require.True(t, ok)
	bw := bitio.NewByteWriter()
	require.NoError(t, enc(bw, in, s))

	dec, ok := message.Decoder(message.TagSpawnBaseline)
	require.True(t, ok)
	br := bitio.NewByteReader(bw.Bytes())
	out, err := dec(br, s)
	require.NoError(t, err)

	got := out.(message.SpawnBaseline)
	require.Len(t, got.Entities, 2)
	require.Equal(t, uint16(1), got.Entities[0].Index)
	require.Equal(t, uint8(7), got.Entities[0].Footer)
	require.Equal(t, uint16(10), got.Entities[1].Index)
	require.Len(t, got.Entities[1].Extra, 1)
}
