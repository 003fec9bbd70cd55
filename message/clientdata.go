package message

import (
	"sort"

	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/delta"
	"github.com/hlnet/gsnetmsg/errs"
	"github.com/hlnet/gsnetmsg/session"
)

// ClientData carries the local player's predicted state plus zero or
// more per-weapon deltas (spec §4.7). When the session is an HLTV relay
// it has no body at all — not even the leading mask bit — per spec
// §4.5/§4.8's HLTV suppression rule.
type ClientData struct {
	Delta   delta.Delta
	Weapons map[uint8]delta.Delta
}

func (m ClientData) Tag() Tag { return TagClientData }

func decodeClientData(br *bitio.ByteReader, s *session.Session) (Message, error) {
	if s.IsHLTV {
		return ClientData{}, nil
	}

	fields, ok := s.DDT.Lookup("clientdata_t")
	if !ok {
		return nil, errs.ErrUnknownDDTKey
	}
	weaponFields, ok := s.DDT.Lookup("weapon_data_t")
	if !ok {
		return nil, errs.ErrUnknownDDTKey
	}

	r := bitio.NewReader(br.Remaining())

	d, err := delta.Decode(r, fields)
	if err != nil {
		return nil, err
	}

	weapons := make(map[uint8]delta.Delta)
	for {
		more, err := r.ReadBit()
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}

		idx, err := r.ReadBits(6)
		if err != nil {
			return nil, err
		}

		wd, err := delta.Decode(r, weaponFields)
		if err != nil {
			return nil, err
		}
		weapons[uint8(idx)] = wd
	}

	if err := br.Advance(r.ConsumedBytes()); err != nil {
		return nil, err
	}

	return ClientData{Delta: d, Weapons: weapons}, nil
}

func encodeClientData(bw *bitio.ByteWriter, msg Message, s *session.Session) error {
	m := msg.(ClientData)

	if s.IsHLTV {
		return nil
	}

	fields, ok := s.DDT.Lookup("clientdata_t")
	if !ok {
		return errs.ErrUnknownDDTKey
	}
	weaponFields, ok := s.DDT.Lookup("weapon_data_t")
	if !ok {
		return errs.ErrUnknownDDTKey
	}

	w := bitio.NewWriter()
	if err := delta.Encode(w, fields, m.Delta); err != nil {
		return err
	}

	indices := make([]uint8, 0, len(m.Weapons))
	for idx := range m.Weapons {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	for _, idx := range indices {
		w.AppendBit(true)
		w.AppendBits(uint32(idx), 6)
		if err := delta.Encode(w, weaponFields, m.Weapons[idx]); err != nil {
			return err
		}
	}
	// The trailing "no more weapons" bit is mandatory even with zero
	// weapons present (spec §4.7).
	w.AppendBit(false)

	bw.WriteBytes(w.Bytes())

	return nil
}

func init() {
	register(TagClientData, decodeClientData, encodeClientData)
}
