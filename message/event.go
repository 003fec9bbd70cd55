package message

import (
	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/delta"
	"github.com/hlnet/gsnetmsg/errs"
	"github.com/hlnet/gsnetmsg/session"
)

// Event, EventReliable, and SpawnStatic all route through the delta
// codec against a runtime-registered descriptor rather than carrying a
// hand-written layout — original_source's mod.rs wraps all three through
// the same delta_decoders lookup (wrap_parse!(i, Event, SvcEvent,
// delta_decoders) and friends), so they stay descriptor-driven here too.

type Event struct{ Delta delta.Delta }

func (m Event) Tag() Tag { return TagEvent }

type EventReliable struct {
	Sequence uint8
	Delta    delta.Delta
}

func (m EventReliable) Tag() Tag { return TagEventReliable }

type SpawnStatic struct{ Delta delta.Delta }

func (m SpawnStatic) Tag() Tag { return TagSpawnStatic }

func decodeDeltaBody(br *bitio.ByteReader, fields []delta.FieldDescriptor) (delta.Delta, error) {
	r := bitio.NewReader(br.Remaining())
	d, err := delta.Decode(r, fields)
	if err != nil {
		return nil, err
	}
	if err := br.Advance(r.ConsumedBytes()); err != nil {
		return nil, err
	}
	return d, nil
}

func encodeDeltaBody(bw *bitio.ByteWriter, fields []delta.FieldDescriptor, d delta.Delta) error {
	w := bitio.NewWriter()
	if err := delta.Encode(w, fields, d); err != nil {
		return err
	}
	bw.WriteBytes(w.Bytes())
	return nil
}

func init() {
	register(TagEvent,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			fields, ok := s.DDT.Lookup("event_t")
			if !ok {
				return nil, errs.ErrUnknownDDTKey
			}
			d, err := decodeDeltaBody(br, fields)
			return Event{Delta: d}, err
		},
		func(bw *bitio.ByteWriter, msg Message, s *session.Session) error {
			fields, ok := s.DDT.Lookup("event_t")
			if !ok {
				return errs.ErrUnknownDDTKey
			}
			return encodeDeltaBody(bw, fields, msg.(Event).Delta)
		})

	register(TagEventReliable,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			seq, err := br.ReadU8()
			if err != nil {
				return nil, err
			}
			fields, ok := s.DDT.Lookup("event_t")
			if !ok {
				return nil, errs.ErrUnknownDDTKey
			}
			d, err := decodeDeltaBody(br, fields)
			return EventReliable{Sequence: seq, Delta: d}, err
		},
		func(bw *bitio.ByteWriter, msg Message, s *session.Session) error {
			m := msg.(EventReliable)
			bw.WriteU8(m.Sequence)
			fields, ok := s.DDT.Lookup("event_t")
			if !ok {
				return errs.ErrUnknownDDTKey
			}
			return encodeDeltaBody(bw, fields, m.Delta)
		})

	register(TagSpawnStatic,
		func(br *bitio.ByteReader, s *session.Session) (Message, error) {
			fields, ok := s.DDT.Lookup("entity_state_t")
			if !ok {
				return nil, errs.ErrUnknownDDTKey
			}
			d, err := decodeDeltaBody(br, fields)
			return SpawnStatic{Delta: d}, err
		},
		func(bw *bitio.ByteWriter, msg Message, s *session.Session) error {
			fields, ok := s.DDT.Lookup("entity_state_t")
			if !ok {
				return errs.ErrUnknownDDTKey
			}
			return encodeDeltaBody(bw, fields, msg.(SpawnStatic).Delta)
		})
}
