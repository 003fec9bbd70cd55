package message

import (
	"bytes"

	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/session"
	"github.com/hlnet/gsnetmsg/usermsg"
)

// userMsgNameSize is UserMsgReg's fixed wire width for Name (spec §3.6):
// a NUL-padded 16-byte field, not a length-prefixed or NUL-terminated
// string.
const userMsgNameSize = 16

// NewUserMsg registers (or re-registers) a dynamic user message id,
// removing any prior registration at the same index first (spec §4.5,
// §4.6).
type NewUserMsg struct {
	Index  uint8
	Length int8
	Name   string
}

func (m NewUserMsg) Tag() Tag { return TagNewUserMsg }

func decodeNewUserMsg(br *bitio.ByteReader, s *session.Session) (Message, error) {
	index, err := br.ReadU8()
	if err != nil {
		return nil, err
	}
	length, err := br.ReadI8()
	if err != nil {
		return nil, err
	}
	raw, err := br.ReadBytes(userMsgNameSize)
	if err != nil {
		return nil, err
	}

	m := NewUserMsg{Index: index, Length: length, Name: string(trimPadded(raw))}
	s.Messages.Insert(usermsg.Registration{Index: m.Index, Length: m.Length, Name: m.Name})

	return m, nil
}

// encodeNewUserMsg writes m without touching s — spec §6 item 3 keeps
// encode read-only over the session. A caller that needs the session's
// user-message registry updated to match (e.g. to encode a dependent
// UserMessage body right after) installs the registration on the
// session itself before encoding, or reuses the session a prior Decode
// already mutated.
func encodeNewUserMsg(bw *bitio.ByteWriter, msg Message, s *session.Session) error {
	m := msg.(NewUserMsg)
	bw.WriteU8(m.Index)
	bw.WriteI8(m.Length)
	bw.WriteBytes(padName(m.Name, userMsgNameSize))
	return nil
}

// trimPadded returns the bytes before the first NUL, or all of b if it
// carries no terminator.
func trimPadded(b []byte) []byte {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		return b[:i]
	}
	return b
}

// padName copies name into a zero-padded buffer of n bytes, truncating
// if name is too long to fit.
func padName(name string, n int) []byte {
	buf := make([]byte, n)
	copy(buf, name)
	return buf
}

func init() {
	register(TagNewUserMsg, decodeNewUserMsg, encodeNewUserMsg)
}
