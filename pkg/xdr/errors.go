package xdr

import "errors"

// Codec errors. Operations wrap these sentinels with context via
// fmt.Errorf("...: %w", Err...), so callers should check them with errors.Is.
var (
	// ErrConversion indicates a value could not be represented in its target
	// wire encoding, such as an int that does not fit in 32 bits. The Packer
	// buffer is left untouched by the failing call.
	ErrConversion = errors.New("value not representable in XDR encoding")

	// ErrEndOfData indicates an unpack operation would read past the end of
	// the buffer. It is reported before the cursor moves, so the Unpacker
	// position never exceeds the buffer length.
	ErrEndOfData = errors.New("unexpected end of XDR data")

	// ErrMalformedStream indicates a structural decode violation that is not
	// a simple length problem: an unknown list continuation tag, a
	// length-prefixed item exceeding the configured opaque limit, or
	// unextracted bytes remaining when Done is called.
	ErrMalformedStream = errors.New("malformed XDR stream")

	// ErrPrecondition indicates a caller-supplied argument violated an
	// operation's contract (negative opaque length, fixed-array size
	// mismatch). No bytes are read or written.
	ErrPrecondition = errors.New("precondition violated")
)
