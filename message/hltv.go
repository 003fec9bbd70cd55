package message

import (
	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/session"
)

// Hltv marks the stream as an HLTV relay, which from this point on
// suppresses ClientData's body entirely (spec §4.5, §4.7, §4.8).
type Hltv struct{ Mode uint8 }

func (m Hltv) Tag() Tag { return TagHltv }

func init() {
	register(TagHltv,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			mode, err := br.ReadU8()
			if err != nil {
				return nil, err
			}
			s.IsHLTV = true
			return Hltv{Mode: mode}, nil
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			bw.WriteU8(m.(Hltv).Mode)
			return nil
		})
}
