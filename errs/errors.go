// Package errs defines the sentinel errors the codec can return, and the
// ParseError wrapper that attaches a cursor offset to a decode failure.
//
// The sentinel-var style follows the call sites in arloliu-mebo/section
// (e.g. errs.ErrInvalidHeaderFlags in numeric_flag.go): compare failures
// with errors.Is against these values rather than matching on strings.
package errs

import (
	"errors"
	"fmt"
)

var (
	// ErrShortRead is returned when a read would consume past the end of
	// the input buffer (bit or byte level).
	ErrShortRead = errors.New("gsnetmsg: short read")

	// ErrBadDescriptor is returned when a field descriptor names an
	// unrecognized flag combination or a bit width outside [1, 32].
	ErrBadDescriptor = errors.New("gsnetmsg: bad field descriptor")

	// ErrUnknownDDTKey is returned when a message's decoder needs a delta
	// descriptor table entry that hasn't been registered yet.
	ErrUnknownDDTKey = errors.New("gsnetmsg: unknown delta descriptor table key")

	// ErrUnknownUserMessage is returned when a wire id doesn't match any
	// registration in the session's user-message registry.
	ErrUnknownUserMessage = errors.New("gsnetmsg: unknown user message id")

	// ErrExcessInput is returned when decode finishes without consuming
	// the entire payload.
	ErrExcessInput = errors.New("gsnetmsg: payload not fully consumed")

	// ErrImmutableViolation is returned by DecodeImmutable when the
	// payload contains a state-mutating message (ServerInfo,
	// DeltaDescription, NewUserMsg).
	ErrImmutableViolation = errors.New("gsnetmsg: state-mutating message under immutable decode")

	// ErrEncodeOverflow is returned when a value to encode doesn't fit in
	// its descriptor's declared bit width.
	ErrEncodeOverflow = errors.New("gsnetmsg: value overflows declared bit width")
)

// ParseError reports a decode failure with the byte offset and residual
// bit offset into the current byte at which it occurred, per spec §7
// ("structured errors with a cursor offset").
type ParseError struct {
	Err        error
	ByteOffset int
	BitOffset  int // 0..7, bits already consumed of the byte at ByteOffset
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (at byte %d, bit %d)", e.Err, e.ByteOffset, e.BitOffset)
}

func (e *ParseError) Unwrap() error { return e.Err }

// At wraps err as a ParseError positioned at the given byte/bit cursor.
// If err is nil, At returns nil.
func At(err error, byteOffset, bitOffset int) error {
	if err == nil {
		return nil
	}

	return &ParseError{Err: err, ByteOffset: byteOffset, BitOffset: bitOffset}
}
