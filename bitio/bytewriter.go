package bitio

import "github.com/hlnet/gsnetmsg/endian"

// ByteWriter is an append-only little-endian byte buffer. Every message
// write path starts from one of these: the type byte first, then either
// further primitives or a bit-packed body via Writer.Bytes().
type ByteWriter struct {
	data   []byte
	engine endian.EndianEngine
}

// NewByteWriter returns an empty little-endian byte writer.
func NewByteWriter() *ByteWriter {
	return &ByteWriter{engine: endian.LittleEndian()}
}

func (w *ByteWriter) WriteU8(v uint8)   { w.data = append(w.data, v) }
func (w *ByteWriter) WriteI8(v int8)    { w.data = append(w.data, byte(v)) }
func (w *ByteWriter) WriteBool(v bool) {
	if v {
		w.WriteU8(1)
	} else {
		w.WriteU8(0)
	}
}

func (w *ByteWriter) WriteU16(v uint16) { w.data = w.engine.AppendUint16(w.data, v) }
func (w *ByteWriter) WriteI16(v int16)  { w.WriteU16(uint16(v)) }

func (w *ByteWriter) WriteU32(v uint32) { w.data = w.engine.AppendUint32(w.data, v) }
func (w *ByteWriter) WriteI32(v int32)  { w.WriteU32(uint32(v)) }

func (w *ByteWriter) WriteF32(v float32) { w.WriteU32(float32bits(v)) }

// WriteBytes appends raw bytes verbatim (a user-message payload, or a
// bit-packed body already rounded to bytes).
func (w *ByteWriter) WriteBytes(b []byte) { w.data = append(w.data, b...) }

// WriteCString appends s followed by a single NUL terminator, matching
// the null-terminated byte strings spec §3.2/§4.2 describe for names and
// STRING-flagged delta fields.
func (w *ByteWriter) WriteCString(s []byte) {
	w.data = append(w.data, s...)
	w.data = append(w.data, 0)
}

// Bytes returns the accumulated buffer.
func (w *ByteWriter) Bytes() []byte { return w.data }

// Len returns the number of bytes written so far.
func (w *ByteWriter) Len() int { return len(w.data) }
