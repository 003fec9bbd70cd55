package message

import (
	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/session"
)

type Version struct{ Protocol uint32 }

func (m Version) Tag() Tag { return TagVersion }

type SetView struct{ Entity int16 }

func (m SetView) Tag() Tag { return TagSetView }

type Time struct{ Time float32 }

func (m Time) Tag() Tag { return TagTime }

type SetAngle struct{ Angles [3]float32 }

func (m SetAngle) Tag() Tag { return TagSetAngle }

type SetPause struct{ Paused bool }

func (m SetPause) Tag() Tag { return TagSetPause }

type SignOnNum struct{ Num uint8 }

func (m SignOnNum) Tag() Tag { return TagSignOnNum }

type AddAngle struct{ Angle float32 }

func (m AddAngle) Tag() Tag { return TagAddAngle }

type TimeScale struct{ Scale float32 }

func (m TimeScale) Tag() Tag { return TagTimeScale }

type CrosshairAngle struct{ Pitch, Yaw float32 }

func (m CrosshairAngle) Tag() Tag { return TagCrosshairAngle }

type CdTrack struct{ Track, LoopTrack int8 }

func (m CdTrack) Tag() Tag { return TagCdTrack }

type WeaponAnim struct{ Sequence, Body uint8 }

func (m WeaponAnim) Tag() Tag { return TagWeaponAnim }

type RoomType struct{ Type uint16 }

func (m RoomType) Tag() Tag { return TagRoomType }

type StopSound struct {
	Entity  uint16
	Channel uint8
}

func (m StopSound) Tag() Tag { return TagStopSound }

type SoundFade struct {
	InitialPercent, HoldTime, FadeOutTime, FadeInTime uint8
}

func (m SoundFade) Tag() Tag { return TagSoundFade }

type ResourceRequest struct{ Unknown1, Unknown2 uint32 }

func (m ResourceRequest) Tag() Tag { return TagResourceRequest }

func init() {
	register(TagVersion,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			v, err := br.ReadU32()
			return Version{Protocol: v}, err
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			bw.WriteU32(m.(Version).Protocol)
			return nil
		})

	register(TagSetView,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			v, err := br.ReadI16()
			return SetView{Entity: v}, err
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			bw.WriteI16(m.(SetView).Entity)
			return nil
		})

	register(TagTime,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			v, err := br.ReadF32()
			return Time{Time: v}, err
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			bw.WriteF32(m.(Time).Time)
			return nil
		})

	register(TagSetAngle,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			var a [3]float32
			for i := range a {
				v, err := br.ReadF32()
				if err != nil {
					return nil, err
				}
				a[i] = v
			}
			return SetAngle{Angles: a}, nil
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			for _, v := range m.(SetAngle).Angles {
				bw.WriteF32(v)
			}
			return nil
		})

	register(TagSetPause,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			v, err := br.ReadBool()
			return SetPause{Paused: v}, err
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			bw.WriteBool(m.(SetPause).Paused)
			return nil
		})

	register(TagSignOnNum,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			v, err := br.ReadU8()
			return SignOnNum{Num: v}, err
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			bw.WriteU8(m.(SignOnNum).Num)
			return nil
		})

	register(TagAddAngle,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			v, err := br.ReadF32()
			return AddAngle{Angle: v}, err
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			bw.WriteF32(m.(AddAngle).Angle)
			return nil
		})

	register(TagTimeScale,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			v, err := br.ReadF32()
			return TimeScale{Scale: v}, err
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			bw.WriteF32(m.(TimeScale).Scale)
			return nil
		})

	register(TagCrosshairAngle,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			pitch, err := br.ReadF32()
			if err != nil {
				return nil, err
			}
			yaw, err := br.ReadF32()
			return CrosshairAngle{Pitch: pitch, Yaw: yaw}, err
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			v := m.(CrosshairAngle)
			bw.WriteF32(v.Pitch)
			bw.WriteF32(v.Yaw)
			return nil
		})

	register(TagCdTrack,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			track, err := br.ReadI8()
			if err != nil {
				return nil, err
			}
			loop, err := br.ReadI8()
			return CdTrack{Track: track, LoopTrack: loop}, err
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			v := m.(CdTrack)
			bw.WriteI8(v.Track)
			bw.WriteI8(v.LoopTrack)
			return nil
		})

	register(TagWeaponAnim,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			seq, err := br.ReadU8()
			if err != nil {
				return nil, err
			}
			body, err := br.ReadU8()
			return WeaponAnim{Sequence: seq, Body: body}, err
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			v := m.(WeaponAnim)
			bw.WriteU8(v.Sequence)
			bw.WriteU8(v.Body)
			return nil
		})

	register(TagRoomType,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			v, err := br.ReadU16()
			return RoomType{Type: v}, err
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			bw.WriteU16(m.(RoomType).Type)
			return nil
		})

	register(TagStopSound,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			ent, err := br.ReadU16()
			if err != nil {
				return nil, err
			}
			ch, err := br.ReadU8()
			return StopSound{Entity: ent, Channel: ch}, err
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			v := m.(StopSound)
			bw.WriteU16(v.Entity)
			bw.WriteU8(v.Channel)
			return nil
		})

	register(TagSoundFade,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			var v SoundFade
			vals := make([]uint8, 4)
			for i := range vals {
				b, err := br.ReadU8()
				if err != nil {
					return nil, err
				}
				vals[i] = b
			}
			v.InitialPercent, v.HoldTime, v.FadeOutTime, v.FadeInTime = vals[0], vals[1], vals[2], vals[3]
			return v, nil
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			v := m.(SoundFade)
			bw.WriteU8(v.InitialPercent)
			bw.WriteU8(v.HoldTime)
			bw.WriteU8(v.FadeOutTime)
			bw.WriteU8(v.FadeInTime)
			return nil
		})

	register(TagResourceRequest,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			a, err := br.ReadU32()
			if err != nil {
				return nil, err
			}
			b, err := br.ReadU32()
			return ResourceRequest{Unknown1: a, Unknown2: b}, err
		},
		func(bw *bitio.ByteWriter, m Message, s *session.Session) error {
			v := m.(ResourceRequest)
			bw.WriteU32(v.Unknown1)
			bw.WriteU32(v.Unknown2)
			return nil
		})
}
