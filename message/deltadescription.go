package message

import (
	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/delta"
	"github.com/hlnet/gsnetmsg/errs"
	"github.com/hlnet/gsnetmsg/session"
)

// DeltaDescription replaces a structure's field list in the session's
// delta decoder table (spec §3.4, §4.3, §4.8). It is not a byte-aligned
// administrative record: the DDT is bootstrapped with a built-in
// "delta_description_t" entry describing exactly this message's own
// field records, so a DeltaDescription decodes/encodes through the same
// bit-packed delta.Decode/delta.Encode machinery as Event, SpawnBaseline,
// and ClientData — each field record is itself a delta against
// "delta_description_t". Only the structure name and the record count
// sit outside that recursive mechanism, read as a plain NUL-terminated
// string and a 16-bit count.
type DeltaDescription struct {
	Name   string
	Fields []delta.FieldDescriptor
}

func (m DeltaDescription) Tag() Tag { return TagDeltaDescription }

// readDeltaDescName and writeDeltaDescName carry the structure name
// ahead of the field-record loop — the same NUL-terminated bit-level
// string shape delta.Decode/delta.Encode use for STRING-flagged fields,
// but read here directly since the name isn't itself one of
// "delta_description_t"'s fields.
func readDeltaDescName(r *bitio.Reader) ([]byte, error) {
	var buf []byte
	for {
		b, err := r.ReadBits(8)
		if err != nil {
			return nil, err
		}
		if b == 0 {
			return buf, nil
		}
		buf = append(buf, byte(b))
	}
}

func writeDeltaDescName(w *bitio.Writer, s []byte) {
	for _, b := range s {
		w.AppendBits(uint32(b), 8)
	}
	w.AppendBits(0, 8)
}

// fieldDescriptorFromRecord pulls the four FieldDescriptor members this
// package's delta codec needs out of a decoded delta_description_t
// record. offset/size/premultiplier/postmultiplier travel on the wire
// (spec §4.3) but have no corresponding FieldDescriptor member, so they
// are read (to keep the bit stream self-describing) and discarded.
func fieldDescriptorFromRecord(rec delta.Delta) delta.FieldDescriptor {
	var out delta.FieldDescriptor
	if v, ok := rec.Get("name"); ok {
		out.Name = string(v.Bytes)
	}
	if v, ok := rec.Get("bits"); ok {
		out.Bits = uint16(v.I)
	}
	if v, ok := rec.Get("divisor"); ok {
		out.Divisor = v.F
	}
	if v, ok := rec.Get("flags"); ok {
		out.Flags = delta.Flag(v.I)
	}
	return out
}

// recordFromFieldDescriptor builds the delta.Delta for one field
// record's wire encoding. Only the members FieldDescriptor tracks are
// set; offset/size/premultiplier/postmultiplier are left absent, which
// delta.Encode's change mask represents faithfully as "unchanged".
func recordFromFieldDescriptor(f delta.FieldDescriptor) delta.Delta {
	return delta.Delta{
		{Descriptor: delta.FieldDescriptor{Name: "name"}, Value: delta.Str([]byte(f.Name))},
		{Descriptor: delta.FieldDescriptor{Name: "bits"}, Value: delta.I32(int32(f.Bits))},
		{Descriptor: delta.FieldDescriptor{Name: "divisor"}, Value: delta.F32(f.Divisor)},
		{Descriptor: delta.FieldDescriptor{Name: "flags"}, Value: delta.I32(int32(f.Flags))},
	}
}

func decodeDeltaDescription(br *bitio.ByteReader, s *session.Session) (Message, error) {
	recordFields, ok := s.DDT.Lookup("delta_description_t")
	if !ok {
		return nil, errs.ErrUnknownDDTKey
	}

	r := bitio.NewReader(br.Remaining())

	name, err := readDeltaDescName(r)
	if err != nil {
		return nil, err
	}

	count, err := r.ReadBits(16)
	if err != nil {
		return nil, err
	}

	fields := make([]delta.FieldDescriptor, 0, count)
	for i := uint32(0); i < count; i++ {
		rec, err := delta.Decode(r, recordFields)
		if err != nil {
			return nil, err
		}
		fields = append(fields, fieldDescriptorFromRecord(rec))
	}

	if err := br.Advance(r.ConsumedBytes()); err != nil {
		return nil, err
	}

	m := DeltaDescription{Name: string(name), Fields: fields}
	s.DDT.Define(m.Name, m.Fields)

	return m, nil
}

// encodeDeltaDescription writes m's wire form without touching s — spec
// §6 item 3 scopes encode's use of the session to reads (it needs the
// "delta_description_t" descriptor to encode the field records), never
// mutation. A caller that wants the DDT entry this message describes to
// take effect for later encode calls installs it on the session itself
// (or decodes the message back out of the bytes this produced).
func encodeDeltaDescription(bw *bitio.ByteWriter, msg Message, s *session.Session) error {
	m := msg.(DeltaDescription)

	recordFields, ok := s.DDT.Lookup("delta_description_t")
	if !ok {
		return errs.ErrUnknownDDTKey
	}

	w := bitio.NewWriter()
	writeDeltaDescName(w, []byte(m.Name))
	w.AppendBits(uint32(len(m.Fields)), 16)

	for _, f := range m.Fields {
		if err := delta.Encode(w, recordFields, recordFromFieldDescriptor(f)); err != nil {
			return err
		}
	}

	bw.WriteBytes(w.Bytes())

	return nil
}

func init() {
	register(TagDeltaDescription, decodeDeltaDescription, encodeDeltaDescription)
}
