package message

import (
	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/session"
)

// TempEntity covers the real engine's many TE_ subtypes (sparks,
// explosions, decals, beams, ...), each with its own field layout. Real
// GoldSrc demos never carry a usable description of those layouts on the
// wire — they're compiled into the client — so without reference fixtures
// to pin them exactly this module keeps the subtype tag and copies its
// payload opaquely behind a length prefix, rather than guessing at ~30
// per-subtype struct shapes with no way to validate them.
type TempEntity struct {
	SubType uint8
	Payload []byte
}

func (m TempEntity) Tag() Tag { return TagTempEntity }

func init() {
	register(TagTempEntity,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			sub, err := br.ReadU8()
			if err != nil {
				return nil, err
			}
			n, err := br.ReadU8()
			if err != nil {
				return nil, err
			}
			payload, err := br.ReadBytes(int(n))
			return TempEntity{SubType: sub, Payload: payload}, err
		},
		func(bw *bitio.ByteWriter, msg Message, s *session.Session) error {
			m := msg.(TempEntity)
			bw.WriteU8(m.SubType)
			bw.WriteU8(uint8(len(m.Payload)))
			bw.WriteBytes(m.Payload)
			return nil
		})
}
