package usermsg

import (
	"github.com/hlnet/gsnetmsg/bitio"
	"github.com/hlnet/gsnetmsg/errs"
)

// DecodePayload reads a user message's body: a variable-length message
// (Length < 0) is prefixed by one length byte, a fixed-length message
// (Length >= 0) has exactly that many bytes and no prefix (spec §4.6).
// The returned payload is opaque — this package never interprets a
// user message's bytes, matching spec.md's non-goal that game-specific
// payload meaning is out of scope.
func DecodePayload(r *bitio.ByteReader, reg Registration) ([]byte, error) {
	if reg.Fixed() {
		return r.ReadBytes(int(reg.Length))
	}

	n, err := r.ReadU8()
	if err != nil {
		return nil, err
	}

	return r.ReadBytes(int(n))
}

// EncodePayload writes a user message body for reg's contract. A
// variable-length registration writes a length-prefix byte; a
// fixed-length one requires payload to match reg.Length exactly.
func EncodePayload(w *bitio.ByteWriter, reg Registration, payload []byte) error {
	if reg.Fixed() {
		if len(payload) != int(reg.Length) {
			return errs.ErrEncodeOverflow
		}
		w.WriteBytes(payload)
		return nil
	}

	if len(payload) > 0xFF {
		return errs.ErrEncodeOverflow
	}
	w.WriteU8(uint8(len(payload)))
	w.WriteBytes(payload)

	return nil
}

// Lookup resolves index against reg, returning ErrUnknownUserMessage if
// nothing is registered there yet — a message arriving before its
// SvcNewUserMsg definition (spec §4.6's edge case).
func Lookup(reg *Registry, index uint8) (Registration, error) {
	r, ok := reg.Lookup(index)
	if !ok {
		return Registration{}, errs.ErrUnknownUserMessage
	}
	return r, nil
}
