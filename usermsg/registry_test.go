package usermsg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/errs"
	"github.com/hlnet/gsnetmsg/usermsg"
)

func TestRegistryInsertReplacesPriorEntry(t *testing.T) {
	reg := usermsg.NewRegistry()
	reg.Insert(usermsg.Registration{Index: 64, Length: 4, Name: "Health"})
	reg.Insert(usermsg.Registration{Index: 64, Length: -1, Name: "Health"})

	got, ok := reg.Lookup(64)
	require.True(t, ok)
	require.False(t, got.Fixed())
}

func TestRegistryRemove(t *testing.T) {
	reg := usermsg.NewRegistry()
	reg.Insert(usermsg.Registration{Index: 70, Length: 2, Name: "Damage"})
	reg.Remove(70)

	_, ok := reg.Lookup(70)
	require.False(t, ok)
}

func TestLookupUnknown(t *testing.T) {
	reg := usermsg.NewRegistry()
	_, err := usermsg.Lookup(reg, 99)
	require.ErrorIs(t, err, errs.ErrUnknownUserMessage)
}

func TestCodecFixedRoundTrip(t *testing.T) {
	r := usermsg.Registration{Index: 64, Length: 3, Name: "Health"}

	w := bitio.NewByteWriter()
	require.NoError(t, usermsg.EncodePayload(w, r, []byte{1, 2, 3}))

	br := bitio.NewByteReader(w.Bytes())
	payload, err := usermsg.DecodePayload(br, r)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, payload)
}

func TestCodecVariableRoundTrip(t *testing.T) {
	r := usermsg.Registration{Index: 70, Length: -1, Name: "Damage"}

	w := bitio.NewByteWriter()
	require.NoError(t, usermsg.EncodePayload(w, r, []byte("boom")))

	br := bitio.NewByteReader(w.Bytes())
	payload, err := usermsg.DecodePayload(br, r)
	require.NoError(t, err)
	require.Equal(t, []byte("boom"), payload)
}

func TestCodecFixedLengthMismatch(t *testing.T) {
	r := usermsg.Registration{Index: 64, Length: 3, Name: "Health"}
	w := bitio.NewByteWriter()
	err := usermsg.EncodePayload(w, r, []byte{1, 2})
	require.Error(t, err)
}
