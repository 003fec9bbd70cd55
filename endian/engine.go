// Package endian provides the byte-order primitive used by the rest of
// this module's wire codecs.
//
// Adapted from arloliu/mebo's endian package: the same EndianEngine
// interface combining binary.ByteOrder and binary.AppendByteOrder, trimmed
// to what the netmsg codec actually needs. GoldSrc network messages are
// little-endian throughout (spec §6); BigEndian is kept only because a
// handful of game-defined user messages (e.g. the Day of Defeat ScoreShort
// payload seen in original_source/examples/dod-stats.rs) are documented to
// use big-endian fields the core never interprets — a consumer decoding
// that opaque payload still wants this helper available.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into one interface, satisfied directly by binary.LittleEndian and
// binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// LittleEndian is the byte order used by every wire-level reader/writer in
// this module.
func LittleEndian() EndianEngine { return binary.LittleEndian }

// BigEndian is exposed for consumers decoding user-message payloads that
// are documented to use big-endian fields; the core codec never selects it.
func BigEndian() EndianEngine { return binary.BigEndian }
