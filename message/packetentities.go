package message

import (
	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/delta"
	"github.com/hlnet/gsnetmsg/errs"
	"github.com/hlnet/gsnetmsg/session"
)

// PacketEntity is one entry in a PacketEntities/DeltaPacketEntities
// stream: an entity index (strictly increasing across the list, spec
// §4.4's invariant), whether it was removed this frame (delta variant
// only), and — for a non-removed entry — whether it used the custom
// entity descriptor and its decoded delta.
type PacketEntity struct {
	Index   uint16
	Removed bool
	Custom  bool
	Delta   delta.Delta
}

// PacketEntities is the absolute (non-delta) entity snapshot variant.
type PacketEntities struct {
	Entities []PacketEntity
}

func (m PacketEntities) Tag() Tag { return TagPacketEntities }

// DeltaPacketEntities is the delta-from-baseline variant, additionally
// carrying the baseline sequence number it deltas against.
type DeltaPacketEntities struct {
	DeltaSequence uint8
	Entities      []PacketEntity
}

func (m DeltaPacketEntities) Tag() Tag { return TagDeltaPacketEntities }

func decodePacketEntityList(r *bitio.Reader, s *session.Session, isDelta bool, count uint16) ([]PacketEntity, error) {
	genericFields, ok := s.DDT.Lookup("entity_state_t")
	if !ok {
		return nil, errs.ErrUnknownDDTKey
	}
	playerFields, ok := s.DDT.Lookup("entity_state_player_t")
	if !ok {
		return nil, errs.ErrUnknownDDTKey
	}
	customFields, ok := s.DDT.Lookup("custom_entity_state_t")
	if !ok {
		return nil, errs.ErrUnknownDDTKey
	}

	entities := make([]PacketEntity, 0, count)
	var prevIndex uint16

	for i := uint16(0); i < count; i++ {
		var removed bool
		if isDelta {
			b, err := r.ReadBit()
			if err != nil {
				return nil, err
			}
			removed = b
		}

		absolute, err := r.ReadBit()
		if err != nil {
			return nil, err
		}

		var index uint16
		if absolute {
			v, err := r.ReadBits(11)
			if err != nil {
				return nil, err
			}
			index = uint16(v)
		} else {
			v, err := r.ReadBits(6)
			if err != nil {
				return nil, err
			}
			index = prevIndex + uint16(v)
		}
		prevIndex = index

		if removed {
			entities = append(entities, PacketEntity{Index: index, Removed: true})
			continue
		}

		custom, err := r.ReadBit()
		if err != nil {
			return nil, err
		}

		fields := genericFields
		if custom {
			fields = customFields
		} else if index >= 1 && index <= uint16(s.MaxPlayers) {
			fields = playerFields
		}

		d, err := delta.Decode(r, fields)
		if err != nil {
			return nil, err
		}

		entities = append(entities, PacketEntity{Index: index, Custom: custom, Delta: d})
	}

	term, err := r.ReadBits(16)
	if err != nil {
		return nil, err
	}
	if term != 0 {
		return nil, errs.ErrBadDescriptor
	}

	return entities, nil
}

func encodePacketEntityList(w *bitio.Writer, s *session.Session, isDelta bool, entities []PacketEntity) error {
	genericFields, ok := s.DDT.Lookup("entity_state_t")
	if !ok {
		return errs.ErrUnknownDDTKey
	}
	playerFields, ok := s.DDT.Lookup("entity_state_player_t")
	if !ok {
		return errs.ErrUnknownDDTKey
	}
	customFields, ok := s.DDT.Lookup("custom_entity_state_t")
	if !ok {
		return errs.ErrUnknownDDTKey
	}

	var prevIndex uint16
	for _, e := range entities {
		if isDelta {
			w.AppendBit(e.Removed)
		}

		diff := int(e.Index) - int(prevIndex)
		if diff >= 0 && diff < (1<<6) {
			w.AppendBit(false)
			w.AppendBits(uint32(diff), 6)
		} else {
			w.AppendBit(true)
			w.AppendBits(uint32(e.Index), 11)
		}
		prevIndex = e.Index

		if e.Removed {
			continue
		}

		w.AppendBit(e.Custom)

		fields := genericFields
		if e.Custom {
			fields = customFields
		} else if e.Index >= 1 && e.Index <= uint16(s.MaxPlayers) {
			fields = playerFields
		}

		if err := delta.Encode(w, fields, e.Delta); err != nil {
			return err
		}
	}
	w.AppendBits(0, 16)

	return nil
}

func decodePacketEntities(br *bitio.ByteReader, s *session.Session) (Message, error) {
	count, err := br.ReadU16()
	if err != nil {
		return nil, err
	}

	r := bitio.NewReader(br.Remaining())
	entities, err := decodePacketEntityList(r, s, false, count)
	if err != nil {
		return nil, err
	}
	if err := br.Advance(r.ConsumedBytes()); err != nil {
		return nil, err
	}

	return PacketEntities{Entities: entities}, nil
}

func encodePacketEntitiesMsg(bw *bitio.ByteWriter, msg Message, s *session.Session) error {
	m := msg.(PacketEntities)

	bw.WriteU16(uint16(len(m.Entities)))

	w := bitio.NewWriter()
	if err := encodePacketEntityList(w, s, false, m.Entities); err != nil {
		return err
	}
	bw.WriteBytes(w.Bytes())

	return nil
}

func decodeDeltaPacketEntities(br *bitio.ByteReader, s *session.Session) (Message, error) {
	count, err := br.ReadU16()
	if err != nil {
		return nil, err
	}
	seq, err := br.ReadU8()
	if err != nil {
		return nil, err
	}

	r := bitio.NewReader(br.Remaining())
	entities, err := decodePacketEntityList(r, s, true, count)
	if err != nil {
		return nil, err
	}
	if err := br.Advance(r.ConsumedBytes()); err != nil {
		return nil, err
	}

	return DeltaPacketEntities{DeltaSequence: seq, Entities: entities}, nil
}

func encodeDeltaPacketEntitiesMsg(bw *bitio.ByteWriter, msg Message, s *session.Session) error {
	m := msg.(DeltaPacketEntities)

	bw.WriteU16(uint16(len(m.Entities)))
	bw.WriteU8(m.DeltaSequence)

	w := bitio.NewWriter()
	if err := encodePacketEntityList(w, s, true, m.Entities); err != nil {
		return err
	}
	bw.WriteBytes(w.Bytes())

	return nil
}

func init() {
	register(TagPacketEntities, decodePacketEntities, encodePacketEntitiesMsg)
	register(TagDeltaPacketEntities, decodeDeltaPacketEntities, encodeDeltaPacketEntitiesMsg)
}
