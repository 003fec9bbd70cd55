package message

import (
	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/session"
)

// ServerInfo's decode side effect (spec §4.5/§4.8) sets
// session.MaxPlayers, which SpawnBaseline/PacketEntities later consult
// to pick the player-vs-generic descriptor.
type ServerInfo struct {
	Protocol     uint32
	ServerCount  uint32
	MapCRC       uint32
	ClientDLLMD5 [16]byte
	MaxPlayers   uint8
	PlayerIndex  uint8
	IsDeathmatch bool
	GameDir      string
	HostName     string
	MapName      string
	MapCycle     string
}

func (m ServerInfo) Tag() Tag { return TagServerInfo }

func decodeServerInfo(br *bitio.ByteReader, s *session.Session) (Message, error) {
	var m ServerInfo

	var err error
	if m.Protocol, err = br.ReadU32(); err != nil {
		return nil, err
	}
	if m.ServerCount, err = br.ReadU32(); err != nil {
		return nil, err
	}
	if m.MapCRC, err = br.ReadU32(); err != nil {
		return nil, err
	}

	md5, err := br.ReadBytes(16)
	if err != nil {
		return nil, err
	}
	copy(m.ClientDLLMD5[:], md5)

	if m.MaxPlayers, err = br.ReadU8(); err != nil {
		return nil, err
	}
	if m.PlayerIndex, err = br.ReadU8(); err != nil {
		return nil, err
	}
	if m.IsDeathmatch, err = br.ReadBool(); err != nil {
		return nil, err
	}

	gameDir, err := br.ReadCString()
	if err != nil {
		return nil, err
	}
	m.GameDir = string(gameDir)

	hostName, err := br.ReadCString()
	if err != nil {
		return nil, err
	}
	m.HostName = string(hostName)

	mapName, err := br.ReadCString()
	if err != nil {
		return nil, err
	}
	m.MapName = string(mapName)

	mapCycle, err := br.ReadCString()
	if err != nil {
		return nil, err
	}
	m.MapCycle = string(mapCycle)

	s.MaxPlayers = m.MaxPlayers

	return m, nil
}

func encodeServerInfo(bw *bitio.ByteWriter, msg Message, s *session.Session) error {
	m := msg.(ServerInfo)

	bw.WriteU32(m.Protocol)
	bw.WriteU32(m.ServerCount)
	bw.WriteU32(m.MapCRC)
	bw.WriteBytes(m.ClientDLLMD5[:])
	bw.WriteU8(m.MaxPlayers)
	bw.WriteU8(m.PlayerIndex)
	bw.WriteBool(m.IsDeathmatch)
	bw.WriteCString([]byte(m.GameDir))
	bw.WriteCString([]byte(m.HostName))
	bw.WriteCString([]byte(m.MapName))
	bw.WriteCString([]byte(m.MapCycle))

	return nil
}

func init() {
	register(TagServerInfo, decodeServerInfo, encodeServerInfo)
}
