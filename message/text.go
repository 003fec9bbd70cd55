package message

import (
	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/session"
)

// TextMessage is the shared shape for every engine message whose entire
// body is a single null-terminated string: Disconnect's reason, Print's
// and StuffText's console text, CenterPrint's HUD message, Finale's and
// Cutscene's end-of-level text, FileTxferFailed's resource name,
// SendCvarValue's cvar name, and ResourceLocation's download URL.
type TextMessage struct {
	T    Tag
	Text string
}

func (m TextMessage) Tag() Tag { return m.T }

func decodeText(t Tag) DecodeFunc {
	return func(br *bitio.ByteReader, s *session.Session) (Message, error) {
		b, err := br.ReadCString()
		if err != nil {
			return nil, err
		}
		return TextMessage{T: t, Text: string(b)}, nil
	}
}

func encodeText(bw *bitio.ByteWriter, m Message, s *session.Session) error {
	bw.WriteCString([]byte(m.(TextMessage).Text))
	return nil
}

func init() {
	for _, t := range []Tag{
		TagDisconnect, TagPrint, TagStuffText, TagCenterPrint, TagFinale,
		TagCutscene, TagFileTxferFailed, TagSendCvarValue, TagResourceLocation,
	} {
		register(t, decodeText(t), encodeText)
	}
}
