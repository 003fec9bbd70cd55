package message

import (
	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/session"
)

// Sound carries a played-sound event: origin, sample name, and the usual
// volume/attenuation/pitch modifiers.
type Sound struct {
	Entity      uint16
	Channel     uint8
	SoundNum    uint16
	Volume      uint8
	Attenuation uint8
	Flags       uint16
	Pitch       uint8
	Origin      [3]float32
	Sample      string
}

func (m Sound) Tag() Tag { return TagSound }

// Particle describes a one-shot particle burst.
type Particle struct {
	Origin    [3]float32
	Direction [3]int8
	Count     uint8
	Color     uint8
}

func (m Particle) Tag() Tag { return TagParticle }

// PingEntry is one player's reported round-trip time inside a Pings
// message.
type PingEntry struct {
	Player uint8
	Ping   uint16
	Loss   uint8
}

// Pings reports per-player ping/loss, one PingEntry per connected
// player.
type Pings struct{ Entries []PingEntry }

func (m Pings) Tag() Tag { return TagPings }

// SpawnStaticSound places a looping ambient sound in the world at map
// load.
type SpawnStaticSound struct {
	Origin      [3]float32
	SoundIndex  uint16
	Volume      uint8
	Attenuation uint8
	EntityIndex uint16
	Pitch       uint8
	Flags       uint8
}

func (m SpawnStaticSound) Tag() Tag { return TagSpawnStaticSound }

// Resource is one entry in a ResourceList message.
type Resource struct {
	Type  uint8
	Name  string
	Index uint16
	Size  uint32
	Flags uint16
	MD5   [16]byte
}

// ResourceList is the precache table the server sends before a map
// starts running.
type ResourceList struct{ Resources []Resource }

func (m ResourceList) Tag() Tag { return TagResourceList }

// NewMovevars carries the full set of server-controlled physics
// constants (gravity, friction, max speed, and so on).
type NewMovevars struct {
	Gravity            float32
	StopSpeed          float32
	MaxSpeed           float32
	SpectatorMaxSpeed  float32
	Accelerate         float32
	AirAccelerate      float32
	WaterAccelerate    float32
	Friction           float32
	EdgeFriction       float32
	WaterFriction      float32
	EntGravity         float32
	Bounce             float32
	StepSize           float32
	MaxVelocity        float32
	ZMax               float32
	WaveHeight         float32
	Footsteps          bool
	SkyName            string
	RollAngle          float32
	RollSpeed          float32
	SkyColor           [3]float32
	SkyVec             [3]float32
}

func (m NewMovevars) Tag() Tag { return TagNewMovevars }

// Customization announces a player's custom resource (sprite, sound,
// model) download.
type Customization struct {
	Player       uint8
	Type         uint8
	Name         string
	Index        uint16
	DownloadSize uint32
	Flags        uint8
	MD5          [16]byte
}

func (m Customization) Tag() Tag { return TagCustomization }

// Director carries opaque scripted-camera control bytes; this module
// delimits them without interpreting their game-specific meaning (same
// stance as the user-message codec).
type Director struct{ Payload []byte }

func (m Director) Tag() Tag { return TagDirector }

// VoiceData carries one player's compressed voice frame, opaque to this
// module.
type VoiceData struct {
	Player  uint8
	Payload []byte
}

func (m VoiceData) Tag() Tag { return TagVoiceData }

func readVec3(br *bitio.ByteReader) ([3]float32, error) {
	var v [3]float32
	for i := range v {
		f, err := br.ReadF32()
		if err != nil {
			return v, err
		}
		v[i] = f
	}
	return v, nil
}

func writeVec3(bw *bitio.ByteWriter, v [3]float32) {
	for _, f := range v {
		bw.WriteF32(f)
	}
}

func init() {
	register(TagSound,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			var m Sound
			var err error
			if m.Entity, err = br.ReadU16(); err != nil {
				return nil, err
			}
			if m.Channel, err = br.ReadU8(); err != nil {
				return nil, err
			}
			if m.SoundNum, err = br.ReadU16(); err != nil {
				return nil, err
			}
			if m.Volume, err = br.ReadU8(); err != nil {
				return nil, err
			}
			if m.Attenuation, err = br.ReadU8(); err != nil {
				return nil, err
			}
			if m.Flags, err = br.ReadU16(); err != nil {
				return nil, err
			}
			if m.Pitch, err = br.ReadU8(); err != nil {
				return nil, err
			}
			if m.Origin, err = readVec3(br); err != nil {
				return nil, err
			}
			sample, err := br.ReadCString()
			m.Sample = string(sample)
			return m, err
		},
		func(bw *bitio.ByteWriter, msg Message, s *session.Session) error {
			m := msg.(Sound)
			bw.WriteU16(m.Entity)
			bw.WriteU8(m.Channel)
			bw.WriteU16(m.SoundNum)
			bw.WriteU8(m.Volume)
			bw.WriteU8(m.Attenuation)
			bw.WriteU16(m.Flags)
			bw.WriteU8(m.Pitch)
			writeVec3(bw, m.Origin)
			bw.WriteCString([]byte(m.Sample))
			return nil
		})

	register(TagParticle,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			var m Particle
			var err error
			if m.Origin, err = readVec3(br); err != nil {
				return nil, err
			}
			for i := range m.Direction {
				b, err := br.ReadI8()
				if err != nil {
					return nil, err
				}
				m.Direction[i] = b
			}
			if m.Count, err = br.ReadU8(); err != nil {
				return nil, err
			}
			m.Color, err = br.ReadU8()
			return m, err
		},
		func(bw *bitio.ByteWriter, msg Message, s *session.Session) error {
			m := msg.(Particle)
			writeVec3(bw, m.Origin)
			for _, b := range m.Direction {
				bw.WriteI8(b)
			}
			bw.WriteU8(m.Count)
			bw.WriteU8(m.Color)
			return nil
		})

	register(TagPings,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			n, err := br.ReadU8()
			if err != nil {
				return nil, err
			}
			entries := make([]PingEntry, 0, n)
			for i := uint8(0); i < n; i++ {
				player, err := br.ReadU8()
				if err != nil {
					return nil, err
				}
				ping, err := br.ReadU16()
				if err != nil {
					return nil, err
				}
				loss, err := br.ReadU8()
				if err != nil {
					return nil, err
				}
				entries = append(entries, PingEntry{Player: player, Ping: ping, Loss: loss})
			}
			return Pings{Entries: entries}, nil
		},
		func(bw *bitio.ByteWriter, msg Message, s *session.Session) error {
			m := msg.(Pings)
			bw.WriteU8(uint8(len(m.Entries)))
			for _, e := range m.Entries {
				bw.WriteU8(e.Player)
				bw.WriteU16(e.Ping)
				bw.WriteU8(e.Loss)
			}
			return nil
		})

	register(TagSpawnStaticSound,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			var m SpawnStaticSound
			var err error
			if m.Origin, err = readVec3(br); err != nil {
				return nil, err
			}
			if m.SoundIndex, err = br.ReadU16(); err != nil {
				return nil, err
			}
			if m.Volume, err = br.ReadU8(); err != nil {
				return nil, err
			}
			if m.Attenuation, err = br.ReadU8(); err != nil {
				return nil, err
			}
			if m.EntityIndex, err = br.ReadU16(); err != nil {
				return nil, err
			}
			if m.Pitch, err = br.ReadU8(); err != nil {
				return nil, err
			}
			m.Flags, err = br.ReadU8()
			return m, err
		},
		func(bw *bitio.ByteWriter, msg Message, s *session.Session) error {
			m := msg.(SpawnStaticSound)
			writeVec3(bw, m.Origin)
			bw.WriteU16(m.SoundIndex)
			bw.WriteU8(m.Volume)
			bw.WriteU8(m.Attenuation)
			bw.WriteU16(m.EntityIndex)
			bw.WriteU8(m.Pitch)
			bw.WriteU8(m.Flags)
			return nil
		})

	register(TagResourceList,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			n, err := br.ReadU16()
			if err != nil {
				return nil, err
			}
			resources := make([]Resource, 0, n)
			for i := uint16(0); i < n; i++ {
				var r Resource
				if r.Type, err = br.ReadU8(); err != nil {
					return nil, err
				}
				name, err := br.ReadCString()
				if err != nil {
					return nil, err
				}
				r.Name = string(name)
				if r.Index, err = br.ReadU16(); err != nil {
					return nil, err
				}
				if r.Size, err = br.ReadU32(); err != nil {
					return nil, err
				}
				if r.Flags, err = br.ReadU16(); err != nil {
					return nil, err
				}
				md5, err := br.ReadBytes(16)
				if err != nil {
					return nil, err
				}
				copy(r.MD5[:], md5)
				resources = append(resources, r)
			}
			return ResourceList{Resources: resources}, nil
		},
		func(bw *bitio.ByteWriter, msg Message, s *session.Session) error {
			m := msg.(ResourceList)
			bw.WriteU16(uint16(len(m.Resources)))
			for _, r := range m.Resources {
				bw.WriteU8(r.Type)
				bw.WriteCString([]byte(r.Name))
				bw.WriteU16(r.Index)
				bw.WriteU32(r.Size)
				bw.WriteU16(r.Flags)
				bw.WriteBytes(r.MD5[:])
			}
			return nil
		})

	register(TagNewMovevars,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			var m NewMovevars
			var err error
			floats := make([]*float32, 0, 16)
			floats = append(floats,
				&m.Gravity, &m.StopSpeed, &m.MaxSpeed, &m.SpectatorMaxSpeed,
				&m.Accelerate, &m.AirAccelerate, &m.WaterAccelerate, &m.Friction,
				&m.EdgeFriction, &m.WaterFriction, &m.EntGravity, &m.Bounce,
				&m.StepSize, &m.MaxVelocity, &m.ZMax, &m.WaveHeight,
			)
			for _, f := range floats {
				if *f, err = br.ReadF32(); err != nil {
					return nil, err
				}
			}
			if m.Footsteps, err = br.ReadBool(); err != nil {
				return nil, err
			}
			sky, err := br.ReadCString()
			if err != nil {
				return nil, err
			}
			m.SkyName = string(sky)
			if m.RollAngle, err = br.ReadF32(); err != nil {
				return nil, err
			}
			if m.RollSpeed, err = br.ReadF32(); err != nil {
				return nil, err
			}
			if m.SkyColor, err = readVec3(br); err != nil {
				return nil, err
			}
			m.SkyVec, err = readVec3(br)
			return m, err
		},
		func(bw *bitio.ByteWriter, msg Message, s *session.Session) error {
			m := msg.(NewMovevars)
			for _, f := range []float32{
				m.Gravity, m.StopSpeed, m.MaxSpeed, m.SpectatorMaxSpeed,
				m.Accelerate, m.AirAccelerate, m.WaterAccelerate, m.Friction,
				m.EdgeFriction, m.WaterFriction, m.EntGravity, m.Bounce,
				m.StepSize, m.MaxVelocity, m.ZMax, m.WaveHeight,
			} {
				bw.WriteF32(f)
			}
			bw.WriteBool(m.Footsteps)
			bw.WriteCString([]byte(m.SkyName))
			bw.WriteF32(m.RollAngle)
			bw.WriteF32(m.RollSpeed)
			writeVec3(bw, m.SkyColor)
			writeVec3(bw, m.SkyVec)
			return nil
		})

	register(TagCustomization,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			var m Customization
			var err error
			if m.Player, err = br.ReadU8(); err != nil {
				return nil, err
			}
			if m.Type, err = br.ReadU8(); err != nil {
				return nil, err
			}
			name, err := br.ReadCString()
			if err != nil {
				return nil, err
			}
			m.Name = string(name)
			if m.Index, err = br.ReadU16(); err != nil {
				return nil, err
			}
			if m.DownloadSize, err = br.ReadU32(); err != nil {
				return nil, err
			}
			if m.Flags, err = br.ReadU8(); err != nil {
				return nil, err
			}
			md5, err := br.ReadBytes(16)
			if err != nil {
				return nil, err
			}
			copy(m.MD5[:], md5)
			return m, nil
		},
		func(bw *bitio.ByteWriter, msg Message, s *session.Session) error {
			m := msg.(Customization)
			bw.WriteU8(m.Player)
			bw.WriteU8(m.Type)
			bw.WriteCString([]byte(m.Name))
			bw.WriteU16(m.Index)
			bw.WriteU32(m.DownloadSize)
			bw.WriteU8(m.Flags)
			bw.WriteBytes(m.MD5[:])
			return nil
		})

	register(TagDirector,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			n, err := br.ReadU8()
			if err != nil {
				return nil, err
			}
			payload, err := br.ReadBytes(int(n))
			return Director{Payload: payload}, err
		},
		func(bw *bitio.ByteWriter, msg Message, s *session.Session) error {
			m := msg.(Director)
			bw.WriteU8(uint8(len(m.Payload)))
			bw.WriteBytes(m.Payload)
			return nil
		})

	register(TagVoiceData,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			player, err := br.ReadU8()
			if err != nil {
				return nil, err
			}
			n, err := br.ReadU16()
			if err != nil {
				return nil, err
			}
			payload, err := br.ReadBytes(int(n))
			return VoiceData{Player: player, Payload: payload}, err
		},
		func(bw *bitio.ByteWriter, msg Message, s *session.Session) error {
			m := msg.(VoiceData)
			bw.WriteU8(m.Player)
			bw.WriteU16(uint16(len(m.Payload)))
			bw.WriteBytes(m.Payload)
			return nil
		})
}
