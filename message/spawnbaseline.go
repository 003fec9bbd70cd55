package message

import (
	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/delta"
	"github.com/hlnet/gsnetmsg/errs"
	"github.com/hlnet/gsnetmsg/session"
)

// baselineSentinel terminates the SpawnBaseline entity loop — an 11-bit
// index of all ones (spec §4.4).
const baselineSentinel = 0x7FF

// BaselineEntity is one entry in a SpawnBaseline message: an entity
// index, its 2-bit type tag (bit 0 selects the delta-coded descriptor;
// the other bit is carried through unmodified as spec.md gives it no
// further meaning), its primary delta, and zero or more extra_data
// deltas appended after it.
type BaselineEntity struct {
	Index  uint16
	Type   uint8
	Footer uint8
	Delta  delta.Delta
	Extra  []delta.Delta
}

// SpawnBaseline is the initial entity-state snapshot sent before a map
// starts running (spec §4.4).
type SpawnBaseline struct {
	Entities []BaselineEntity
}

func (m SpawnBaseline) Tag() Tag { return TagSpawnBaseline }

// baselineDescriptor picks entity_state_player_t, entity_state_t, or
// custom_entity_state_t for one baseline entry, per spec §4.4's
// type-bit-0 and max_players rules.
func baselineDescriptor(s *session.Session, index uint16, typ uint8) (string, error) {
	isPlayer := index >= 1 && index <= uint16(s.MaxPlayers)

	switch {
	case typ&1 != 0 && isPlayer:
		return "entity_state_player_t", nil
	case typ&1 != 0:
		return "entity_state_t", nil
	default:
		return "custom_entity_state_t", nil
	}
}

func decodeSpawnBaseline(br *bitio.ByteReader, s *session.Session) (Message, error) {
	r := bitio.NewReader(br.Remaining())

	extraFields, ok := s.DDT.Lookup("entity_state_t")
	if !ok {
		return nil, errs.ErrUnknownDDTKey
	}

	var entities []BaselineEntity
	for {
		index, err := r.ReadBits(11)
		if err != nil {
			return nil, err
		}
		if index == baselineSentinel {
			break
		}

		typ, err := r.ReadBits(2)
		if err != nil {
			return nil, err
		}

		name, err := baselineDescriptor(s, uint16(index), uint8(typ))
		if err != nil {
			return nil, err
		}
		fields, ok := s.DDT.Lookup(name)
		if !ok {
			return nil, errs.ErrUnknownDDTKey
		}

		d, err := delta.Decode(r, fields)
		if err != nil {
			return nil, err
		}

		footer, err := r.ReadBits(5)
		if err != nil {
			return nil, err
		}
		totalExtra, err := r.ReadBits(6)
		if err != nil {
			return nil, err
		}

		extra := make([]delta.Delta, 0, totalExtra)
		for i := uint32(0); i < totalExtra; i++ {
			ed, err := delta.Decode(r, extraFields)
			if err != nil {
				return nil, err
			}
			extra = append(extra, ed)
		}

		entities = append(entities, BaselineEntity{
			Index: uint16(index), Type: uint8(typ), Footer: uint8(footer),
			Delta: d, Extra: extra,
		})
	}

	if err := br.Advance(r.ConsumedBytes()); err != nil {
		return nil, err
	}

	return SpawnBaseline{Entities: entities}, nil
}

func encodeSpawnBaseline(bw *bitio.ByteWriter, msg Message, s *session.Session) error {
	m := msg.(SpawnBaseline)

	extraFields, ok := s.DDT.Lookup("entity_state_t")
	if !ok {
		return errs.ErrUnknownDDTKey
	}

	w := bitio.NewWriter()
	for _, e := range m.Entities {
		w.AppendBits(uint32(e.Index), 11)
		w.AppendBits(uint32(e.Type), 2)

		name, err := baselineDescriptor(s, e.Index, e.Type)
		if err != nil {
			return err
		}
		fields, ok := s.DDT.Lookup(name)
		if !ok {
			return errs.ErrUnknownDDTKey
		}

		if err := delta.Encode(w, fields, e.Delta); err != nil {
			return err
		}

		w.AppendBits(uint32(e.Footer), 5)
		w.AppendBits(uint32(len(e.Extra)), 6)

		for _, ed := range e.Extra {
			if err := delta.Encode(w, extraFields, ed); err != nil {
				return err
			}
		}
	}
	w.AppendBits(baselineSentinel, 11)

	bw.WriteBytes(w.Bytes())

	return nil
}

func init() {
	register(TagSpawnBaseline, decodeSpawnBaseline, encodeSpawnBaseline)
}
