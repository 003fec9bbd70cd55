package message

import (
	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/session"
)

// Simple is the shared representation for every tag spec §3.7 calls out
// as carrying no payload: Bad, Nop, Damage, KilledMonster, FoundSecret,
// Intermission, Choke.
type Simple struct{ T Tag }

func (m Simple) Tag() Tag { return m.T }

func decodeSimple(t Tag) DecodeFunc {
	return func(br *bitio.ByteReader, s *session.Session) (Message, error) {
		return Simple{T: t}, nil
	}
}

func encodeSimple(bw *bitio.ByteWriter, m Message, s *session.Session) error {
	return nil
}

func init() {
	for _, t := range []Tag{
		TagBad, TagNop, TagDamage, TagKilledMonster, TagFoundSecret,
		TagIntermission, TagChoke,
	} {
		register(t, decodeSimple(t), encodeSimple)
	}
}
