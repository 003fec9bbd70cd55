// Package gsnetmsg implements the top-level demultiplexer for a GoldSrc
// netmsg frame stream: a sequence of type-byte-prefixed engine and user
// messages, threaded through one mutable Session (spec §4.5, §6).
//
// Package users never touch the message or usermsg registries directly
// for ordinary decode/encode work — NewSession, Decode, Encode, and
// DecodeImmutable are the whole surface spec §6 calls for.
package gsnetmsg

import (
	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/errs"
	"github.com/hlnet/gsnetmsg/message"
	"github.com/hlnet/gsnetmsg/session"
	"github.com/hlnet/gsnetmsg/usermsg"
)

// NewSession returns a fresh Session seeded with the bootstrap delta
// descriptor table and an empty user-message registry — the state a
// stream starts in before its first ServerInfo/DeltaDescription/
// NewUserMsg.
func NewSession() *session.Session {
	return session.New()
}

// immutableTags names the engine messages DecodeImmutable refuses,
// because decoding them would mutate the session (spec §6's immutable
// variant).
var immutableTags = map[message.Tag]bool{
	message.TagServerInfo:       true,
	message.TagDeltaDescription: true,
	message.TagNewUserMsg:       true,
}

// Decode parses payload into a sequence of Messages, applying every
// message's session side effects (ServerInfo's max_players,
// DeltaDescription's table mutation, NewUserMsg's registry mutation,
// Hltv's is_hltv flag) as it goes. An error is wrapped via errs.At with
// the byte offset of the failing message's type byte.
func Decode(payload []byte, s *session.Session) ([]message.Message, error) {
	return decode(payload, s, false)
}

// DecodeImmutable behaves like Decode but refuses ServerInfo,
// DeltaDescription, and NewUserMsg, returning errs.ErrImmutableViolation
// instead of applying them. An Hltv message is still decoded and still
// sets s.IsHLTV. Used by callers
// replaying a frame against a frozen session — the CLI's dump mode and
// speculative-decode tests, per spec §6.
func DecodeImmutable(payload []byte, s *session.Session) ([]message.Message, error) {
	return decode(payload, s, true)
}

func decode(payload []byte, s *session.Session, immutable bool) ([]message.Message, error) {
	br := bitio.NewByteReader(payload)

	var msgs []message.Message
	for br.Pos() < br.Len() {
		startPos := br.Pos()

		t, err := br.ReadU8()
		if err != nil {
			return msgs, errs.At(err, startPos, 0)
		}

		if t >= message.SVCMaxEngine {
			reg, err := usermsg.Lookup(s.Messages, t)
			if err != nil {
				return msgs, errs.At(err, startPos, 0)
			}

			body, err := usermsg.DecodePayload(br, reg)
			if err != nil {
				return msgs, errs.At(err, startPos, 0)
			}

			msgs = append(msgs, message.UserMessage{ID: t, Payload: body})
			continue
		}

		tag := message.Tag(t)
		if immutable && immutableTags[tag] {
			return msgs, errs.At(errs.ErrImmutableViolation, startPos, 0)
		}

		dec, ok := message.Decoder(tag)
		if !ok {
			return msgs, errs.At(errs.ErrBadDescriptor, startPos, 0)
		}

		m, err := dec(br, s)
		if err != nil {
			return msgs, errs.At(err, startPos, 0)
		}

		msgs = append(msgs, m)
	}

	return msgs, nil
}

// Encode serializes msgs back into a netmsg frame stream. It reads s for
// the state a message's own body depends on (max_players for
// SpawnBaseline/PacketEntities' player-vs-generic choice, the DDT for
// every delta-coded body, the user-message registry for UserMessage
// payload shapes) but never mutates it — unlike Decode, whose per-message
// side effects are part of the wire contract (spec §6 item 3). Encoding
// a message sequence that depends on an earlier message in the same
// sequence (a ServerInfo ahead of a SpawnBaseline, a NewUserMsg ahead of
// its UserMessage) requires the caller to have already primed s to
// match — typically by reusing the session a prior Decode call over an
// equivalent payload already mutated, per the round-trip law in spec §8.
func Encode(msgs []message.Message, s *session.Session) ([]byte, error) {
	bw := bitio.NewByteWriter()

	for _, m := range msgs {
		t := m.Tag()

		if um, ok := m.(message.UserMessage); ok {
			bw.WriteU8(um.ID)
			reg, err := usermsg.Lookup(s.Messages, um.ID)
			if err != nil {
				return nil, err
			}
			if err := usermsg.EncodePayload(bw, reg, um.Payload); err != nil {
				return nil, err
			}
			continue
		}

		bw.WriteU8(uint8(t))
		enc, ok := message.Encoder(t)
		if !ok {
			return nil, errs.ErrBadDescriptor
		}
		if err := enc(bw, m, s); err != nil {
			return nil, err
		}
	}

	return bw.Bytes(), nil
}
