package message

import (
	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/session"
)

type DecalName struct {
	Index uint16
	Name  string
}

func (m DecalName) Tag() Tag { return TagDecalName }

type Restore struct {
	Name  string
	Index uint8
}

func (m Restore) Tag() Tag { return TagRestore }

type LightStyle struct {
	Index   uint8
	Pattern string
}

func (m LightStyle) Tag() Tag { return TagLightStyle }

type UpdateUserInfo struct {
	Index uint8
	ID    uint32
	Info  string
}

func (m UpdateUserInfo) Tag() Tag { return TagUpdateUserInfo }

type VoiceInit struct {
	Codec   string
	Quality uint8
}

func (m VoiceInit) Tag() Tag { return TagVoiceInit }

type SendCvarValue2 struct {
	RequestID uint32
	Name      string
}

func (m SendCvarValue2) Tag() Tag { return TagSendCvarValue2 }

type SendExtraInfo struct {
	FallbackDir string
	CanCheat    bool
}

func (m SendExtraInfo) Tag() Tag { return TagSendExtraInfo }

func init() {
	register(TagDecalName,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			idx, err := br.ReadU16()
			if err != nil {
				return nil, err
			}
			name, err := br.ReadCString()
			return DecalName{Index: idx, Name: string(name)}, err
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			v := m.(DecalName)
			bw.WriteU16(v.Index)
			bw.WriteCString([]byte(v.Name))
			return nil
		})

	register(TagRestore,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			name, err := br.ReadCString()
			if err != nil {
				return nil, err
			}
			idx, err := br.ReadU8()
			return Restore{Name: string(name), Index: idx}, err
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			v := m.(Restore)
			bw.WriteCString([]byte(v.Name))
			bw.WriteU8(v.Index)
			return nil
		})

	register(TagLightStyle,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			idx, err := br.ReadU8()
			if err != nil {
				return nil, err
			}
			pat, err := br.ReadCString()
			return LightStyle{Index: idx, Pattern: string(pat)}, err
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			v := m.(LightStyle)
			bw.WriteU8(v.Index)
			bw.WriteCString([]byte(v.Pattern))
			return nil
		})

	register(TagUpdateUserInfo,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			idx, err := br.ReadU8()
			if err != nil {
				return nil, err
			}
			id, err := br.ReadU32()
			if err != nil {
				return nil, err
			}
			info, err := br.ReadCString()
			return UpdateUserInfo{Index: idx, ID: id, Info: string(info)}, err
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			v := m.(UpdateUserInfo)
			bw.WriteU8(v.Index)
			bw.WriteU32(v.ID)
			bw.WriteCString([]byte(v.Info))
			return nil
		})

	register(TagVoiceInit,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			codec, err := br.ReadCString()
			if err != nil {
				return nil, err
			}
			q, err := br.ReadU8()
			return VoiceInit{Codec: string(codec), Quality: q}, err
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			v := m.(VoiceInit)
			bw.WriteCString([]byte(v.Codec))
			bw.WriteU8(v.Quality)
			return nil
		})

	register(TagSendCvarValue2,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			id, err := br.ReadU32()
			if err != nil {
				return nil, err
			}
			name, err := br.ReadCString()
			return SendCvarValue2{RequestID: id, Name: string(name)}, err
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			v := m.(SendCvarValue2)
			bw.WriteU32(v.RequestID)
			bw.WriteCString([]byte(v.Name))
			return nil
		})

	register(TagSendExtraInfo,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			dir, err := br.ReadCString()
			if err != nil {
				return nil, err
			}
			cheat, err := br.ReadBool()
			return SendExtraInfo{FallbackDir: string(dir), CanCheat: cheat}, err
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			v := m.(SendExtraInfo)
			bw.WriteCString([]byte(v.FallbackDir))
			bw.WriteBool(v.CanCheat)
			return nil
		})
}
