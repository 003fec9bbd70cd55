package gsnetmsg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hlnet/gsnetmsg"
	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/delta"
	"github.com/hlnet/gsnetmsg/message"
	"github.com/hlnet/gsnetmsg/usermsg"
)

func TestDecodeEmptyPayload(t *testing.T) {
	s := gsnetmsg.NewSession()
	msgs, err := gsnetmsg.Decode(nil, s)
	require.NoError(t, err)
	require.Empty(t, msgs)
}

func TestDecodeSingleNop(t *testing.T) {
	s := gsnetmsg.NewSession()
	msgs, err := gsnetmsg.Decode([]byte{byte(message.TagNop)}, s)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, message.TagNop, msgs[0].Tag())
}

// Encode is read-only over the session (spec §6 item 3): a caller
// encoding a SpawnBaseline whose player-vs-generic choice depends on
// max_players must prime the session itself first, the same state a
// preceding ServerInfo's decode would have produced.
func TestServerInfoThenSpawnBaselineSeesMaxPlayers(t *testing.T) {
	s := gsnetmsg.NewSession()
	s.MaxPlayers = 8

	info := message.ServerInfo{
		MaxPlayers: 8,
		GameDir:    "valve",
		HostName:   "test server",
		MapName:    "crossfire",
		MapCycle:   "crossfire\n",
	}
	baseline := message.SpawnBaseline{
		Entities: []message.BaselineEntity{
			{Index: 1, Type: 1, Delta: delta.Delta{}},
		},
	}

	payload, err := gsnetmsg.Encode([]message.Message{info, baseline}, s)
	require.NoError(t, err)

	s2 := gsnetmsg.NewSession()
	msgs, err := gsnetmsg.Decode(payload, s2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.EqualValues(t, 8, s2.MaxPlayers)

	got := msgs[1].(message.SpawnBaseline)
	require.Len(t, got.Entities, 1)
	require.Equal(t, uint16(1), got.Entities[0].Index)
}

func TestHltvThenClientDataIsEmpty(t *testing.T) {
	s := gsnetmsg.NewSession()
	s.IsHLTV = true

	payload, err := gsnetmsg.Encode([]message.Message{
		message.Hltv{Mode: 1},
		message.ClientData{},
	}, s)
	require.NoError(t, err)

	s2 := gsnetmsg.NewSession()
	msgs, err := gsnetmsg.Decode(payload, s2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.True(t, s2.IsHLTV)
	require.Equal(t, message.ClientData{}, msgs[1])
}

func TestNewUserMsgThenVariableLengthRoundTrip(t *testing.T) {
	s := gsnetmsg.NewSession()
	s.Messages.Insert(usermsg.Registration{Index: 64, Length: -1, Name: "SayText"})

	reg := message.NewUserMsg{Index: 64, Length: -1, Name: "SayText"}
	um := message.UserMessage{ID: 64, Payload: []byte("hello")}

	payload, err := gsnetmsg.Encode([]message.Message{reg, um}, s)
	require.NoError(t, err)

	s2 := gsnetmsg.NewSession()
	msgs, err := gsnetmsg.Decode(payload, s2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)

	gotReg := msgs[0].(message.NewUserMsg)
	require.Equal(t, "SayText", gotReg.Name)

	got := msgs[1].(message.UserMessage)
	require.Equal(t, uint8(64), got.ID)
	require.Equal(t, []byte("hello"), got.Payload)
}

func TestDeltaDescriptionEnablesDependentMessage(t *testing.T) {
	s := gsnetmsg.NewSession()

	desc := message.DeltaDescription{
		Name: "demo_struct_t",
		Fields: []delta.FieldDescriptor{
			{Name: "counter", Bits: 8, Flags: delta.FlagByte},
		},
	}

	payload, err := gsnetmsg.Encode([]message.Message{desc}, s)
	require.NoError(t, err)

	s2 := gsnetmsg.NewSession()
	_, err = gsnetmsg.Decode(payload, s2)
	require.NoError(t, err)

	fields, ok := s2.DDT.Lookup("demo_struct_t")
	require.True(t, ok)
	require.Len(t, fields, 1)
	require.Equal(t, "counter", fields[0].Name)
	require.EqualValues(t, 8, fields[0].Bits)
	require.Equal(t, delta.FlagByte, fields[0].Flags)

	w := bitio.NewWriter()
	d := delta.Delta{{Descriptor: fields[0], Value: delta.Value{Kind: delta.KindByte, I: 9}}}
	require.NoError(t, delta.Encode(w, fields, d))

	r := bitio.NewReader(w.Bytes())
	out, err := delta.Decode(r, fields)
	require.NoError(t, err)
	counter, ok := out.Get("counter")
	require.True(t, ok)
	require.EqualValues(t, 9, counter.I)
}

func TestDecodeImmutableRejectsServerInfo(t *testing.T) {
	s := gsnetmsg.NewSession()

	info := message.ServerInfo{MaxPlayers: 4, GameDir: "valve"}
	payload, err := gsnetmsg.Encode([]message.Message{info}, s)
	require.NoError(t, err)

	s2 := gsnetmsg.NewSession()
	_, err = gsnetmsg.DecodeImmutable(payload, s2)
	require.Error(t, err)
}
