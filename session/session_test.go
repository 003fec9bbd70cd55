package session_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hlnet/gsnetmsg/session"
)

func TestNewSeedsBootstrapTable(t *testing.T) {
	s := session.New()

	_, ok := s.DDT.Lookup("clientdata_t")
	require.True(t, ok)

	_, ok = s.Messages.Lookup(64)
	require.False(t, ok)
}

func TestCloneIsIndependent(t *testing.T) {
	s := session.New()
	clone := s.Clone()

	clone.DDT.Define("clientdata_t", nil)
	clone.MaxPlayers = 16

	_, ok := s.DDT.Lookup("clientdata_t")
	require.True(t, ok)
	require.Equal(t, uint8(0), s.MaxPlayers)
}

func TestFingerprintChangesWithFlags(t *testing.T) {
	s := session.New()
	before, err := s.Fingerprint()
	require.NoError(t, err)

	s.IsHLTV = true
	after, err := s.Fingerprint()
	require.NoError(t, err)

	require.NotEqual(t, before, after)
}
