// Package session holds the mutable state a netmsg stream accumulates as
// it is decoded: the delta decoder table, the user-message registry, the
// server's reported max_players, and whether this stream is an HLTV
// relay. Rust's original kept these as process-wide statics
// (MAX_CLIENTS, IS_HLTV, a lazily-built decoder map); spec.md §9 calls
// for them to become one explicit value instead, threaded through every
// decode/encode call — this is that value.
package session

import (
	"github.com/mitchellh/hashstructure/v2"

	"github.com/hlnet/gsnetmsg/delta"
	"github.com/hlnet/gsnetmsg/usermsg"
)

// Session is not safe for concurrent use. Exactly one goroutine should
// own a Session's decode/encode calls at a time, matching the
// single-threaded cooperative model the original's statics implied.
type Session struct {
	DDT        *delta.Table
	Messages   *usermsg.Registry
	MaxPlayers uint8
	IsHLTV     bool
}

// New returns a Session with the bootstrap delta descriptor set and an
// empty user-message registry — the state a stream starts in before its
// first ServerInfo/DeltaDescription/NewUserMsg.
func New() *Session {
	ddt := delta.NewTable()
	delta.Bootstrap(ddt)

	return &Session{
		DDT:      ddt,
		Messages: usermsg.NewRegistry(),
	}
}

// Clone deep-copies a Session, including its DDT and registry. Used to
// support speculative decoding — try a chunk, discard the clone on
// failure rather than mutating the live session, instead of re-decoding
// a whole stream from scratch.
func (s *Session) Clone() *Session {
	return &Session{
		DDT:        s.DDT.Clone(),
		Messages:   s.Messages.Clone(),
		MaxPlayers: s.MaxPlayers,
		IsHLTV:     s.IsHLTV,
	}
}

// scalarView is the subset of Session hashstructure can walk cheaply —
// the DDT and registry carry unexported map internals that don't need to
// participate in the comparison, only the visible session flags that
// message decoding actually branches on.
type scalarView struct {
	MaxPlayers uint8
	IsHLTV     bool
}

// Fingerprint hashes the session's scalar flags (MaxPlayers, IsHLTV) for
// cheap before/after comparison in tests, grounded on
// USA-RedDragon/DMRHub's use of mitchellh/hashstructure for struct
// identity hashing rather than hand-rolled field comparison.
func (s *Session) Fingerprint() (uint64, error) {
	return hashstructure.Hash(scalarView{MaxPlayers: s.MaxPlayers, IsHLTV: s.IsHLTV}, hashstructure.FormatV2, nil)
}
