package message_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/delta"
	"github.com/hlnet/gsnetmsg/message"
	"github.com/hlnet/gsnetmsg/session"
)

func TestDeltaDescriptionRoundTrip(t *testing.T) {
	s := session.New()

	in := message.DeltaDescription{
		Name: "custom_struct_t",
		Fields: []delta.FieldDescriptor{
			{Name: "alpha", Bits: 8, Flags: delta.FlagByte},
			{Name: "beta", Bits: 32, Divisor: 4, Flags: delta.FlagFloat | delta.FlagSigned},
		},
	}

	enc, ok := message.Encoder(message.TagDeltaDescription)
	require.True(t, ok)
	bw := bitio.NewByteWriter()
	require.NoError(t, enc(bw, in, s))

	_, ok = s.DDT.Lookup("custom_struct_t")
	require.False(t, ok, "encode must not mutate the session's DDT")

	s2 := session.New()
	dec, ok := message.Decoder(message.TagDeltaDescription)
	require.True(t, ok)
	br := bitio.NewByteReader(bw.Bytes())
	out, err := dec(br, s2)
	require.NoError(t, err)

	got := out.(message.DeltaDescription)
	require.Equal(t, "custom_struct_t", got.Name)
	require.Len(t, got.Fields, 2)
	require.Equal(t, in.Fields, got.Fields)

	fields, ok := s2.DDT.Lookup("custom_struct_t")
	require.True(t, ok, "decode must install the new entry in the DDT")
	require.Equal(t, got.Fields, fields)
}

func TestDeltaDescriptionReplacesPriorEntry(t *testing.T) {
	s := session.New()

	first := message.DeltaDescription{
		Name:   "custom_struct_t",
		Fields: []delta.FieldDescriptor{{Name: "alpha", Bits: 8, Flags: delta.FlagByte}},
	}
	second := message.DeltaDescription{
		Name: "custom_struct_t",
		Fields: []delta.FieldDescriptor{
			{Name: "alpha", Bits: 8, Flags: delta.FlagByte},
			{Name: "gamma", Bits: 16, Flags: delta.FlagInteger},
		},
	}

	dec, ok := message.Decoder(message.TagDeltaDescription)
	require.True(t, ok)
	enc, ok := message.Encoder(message.TagDeltaDescription)
	require.True(t, ok)

	for _, m := range []message.DeltaDescription{first, second} {
		bw := bitio.NewByteWriter()
		require.NoError(t, enc(bw, m, s))
		br := bitio.NewByteReader(bw.Bytes())
		_, err := dec(br, s)
		require.NoError(t, err)
	}

	fields, ok := s.DDT.Lookup("custom_struct_t")
	require.True(t, ok)
	require.Len(t, fields, 2)
}
