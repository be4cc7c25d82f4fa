package xdr

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ============================================================================
// Unpacker - Wire Format → Go Types
// ============================================================================

// Unpacker deserializes typed values from an immutable byte buffer,
// tracking a cursor as it goes. Every Unpack* method decodes the bytes at
// the current position and advances the cursor by exactly the number of
// bytes the matching Pack* call wrote.
//
// A read that would run past the end of the buffer fails with ErrEndOfData
// before the cursor moves, so the position never exceeds the buffer length.
//
// Unpacker is not safe for concurrent use.
type Unpacker struct {
	// MaxOpaqueLength caps the length prefix accepted by UnpackOpaque and
	// UnpackString, protecting against malicious or corrupt input that
	// declares a huge allocation. Zero means no limit, which matches the
	// raw wire format. A violation fails with ErrMalformedStream.
	MaxOpaqueLength uint32

	buf []byte
	pos int
}

// NewUnpacker returns an Unpacker positioned at the start of data. The
// Unpacker reads from data directly and never modifies it; the caller must
// not mutate it while decoding.
func NewUnpacker(data []byte) *Unpacker {
	return &Unpacker{buf: data}
}

// Reset replaces the buffer and moves the cursor back to the start,
// preserving the Unpacker identity for callers holding a reference.
func (u *Unpacker) Reset(data []byte) {
	u.buf = data
	u.pos = 0
}

// Buffer returns the underlying buffer being decoded.
func (u *Unpacker) Buffer() []byte {
	return u.buf
}

// Position returns the current cursor offset in bytes.
func (u *Unpacker) Position() int {
	return u.pos
}

// SetPosition moves the cursor to pos. No bounds validation is performed;
// an out-of-range position surfaces as ErrEndOfData on the next read.
// Useful for backtracking or realigning with externally known offsets.
func (u *Unpacker) SetPosition(pos int) {
	u.pos = pos
}

// Done verifies the whole buffer has been consumed. It fails with
// ErrMalformedStream when unread bytes remain, letting callers assert that
// a complete message carried no trailing garbage.
func (u *Unpacker) Done() error {
	if u.pos < len(u.buf) {
		return fmt.Errorf("%d unextracted bytes remain: %w", len(u.buf)-u.pos, ErrMalformedStream)
	}
	return nil
}

// next returns the n bytes at the cursor and advances past them. The bounds
// check happens before the cursor moves.
func (u *Unpacker) next(n int) ([]byte, error) {
	if n < 0 || u.pos < 0 || n > len(u.buf)-u.pos {
		return nil, fmt.Errorf("need %d bytes at offset %d of %d: %w", n, u.pos, len(u.buf), ErrEndOfData)
	}
	b := u.buf[u.pos : u.pos+n]
	u.pos += n
	return b, nil
}

// UnpackUint32 reads a 32-bit unsigned integer (RFC 4506 Section 4.2,
// 4 bytes, big-endian).
func (u *Unpacker) UnpackUint32() (uint32, error) {
	b, err := u.next(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

// UnpackInt32 reads a 32-bit signed integer (RFC 4506 Section 4.1,
// 4 bytes, big-endian, two's complement).
func (u *Unpacker) UnpackInt32() (int32, error) {
	v, err := u.UnpackUint32()
	return int32(v), err
}

// UnpackEnum reads an enumeration value. Enums share the int32 encoding
// (RFC 4506 Section 4.3).
func (u *Unpacker) UnpackEnum() (int32, error) {
	return u.UnpackInt32()
}

// UnpackBool reads a boolean (RFC 4506 Section 4.4). Zero decodes to false;
// any nonzero word decodes to true.
func (u *Unpacker) UnpackBool() (bool, error) {
	v, err := u.UnpackUint32()
	return v != 0, err
}

// UnpackUint64 reads a 64-bit unsigned integer (XDR "unsigned hyper"):
// two 32-bit words, high-order word first (RFC 4506 Section 4.5).
func (u *Unpacker) UnpackUint64() (uint64, error) {
	hi, err := u.UnpackUint32()
	if err != nil {
		return 0, err
	}
	lo, err := u.UnpackUint32()
	if err != nil {
		return 0, err
	}
	return uint64(hi)<<32 | uint64(lo), nil
}

// UnpackInt64 reads a 64-bit signed integer (XDR "hyper"), reinterpreting
// the unsigned hyper encoding as two's complement.
func (u *Unpacker) UnpackInt64() (int64, error) {
	v, err := u.UnpackUint64()
	return int64(v), err
}

// UnpackFloat32 reads a single-precision float (RFC 4506 Section 4.6,
// 4 bytes, big-endian IEEE 754).
func (u *Unpacker) UnpackFloat32() (float32, error) {
	v, err := u.UnpackUint32()
	return math.Float32frombits(v), err
}

// UnpackFloat64 reads a double-precision float (RFC 4506 Section 4.7,
// 8 bytes, big-endian IEEE 754).
func (u *Unpacker) UnpackFloat64() (float64, error) {
	v, err := u.UnpackUint64()
	return math.Float64frombits(v), err
}

// UnpackFixedOpaque reads fixed-length opaque data of declared size n
// (RFC 4506 Section 4.9).
//
// The wire carries ((n+3)/4)*4 bytes: the cursor advances by the aligned
// length, but only the first n bytes are returned (as a fresh copy).
// Padding bytes are consumed without being validated; the reference XDR
// codecs accept nonzero padding and so does this one.
//
// Fails with ErrPrecondition when n is negative and with ErrEndOfData when
// fewer than the aligned length of bytes remain, in which case the cursor
// does not move.
func (u *Unpacker) UnpackFixedOpaque(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("fixed opaque size %d must be nonnegative: %w", n, ErrPrecondition)
	}
	aligned := ((n + 3) / 4) * 4
	b, err := u.next(aligned)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b[:n])
	return out, nil
}

// UnpackOpaque reads variable-length opaque data: a uint32 length prefix
// followed by the fixed-opaque encoding of that many bytes (RFC 4506
// Section 4.10). When MaxOpaqueLength is set, a length prefix above the
// limit fails with ErrMalformedStream before any allocation.
func (u *Unpacker) UnpackOpaque() ([]byte, error) {
	length, err := u.UnpackUint32()
	if err != nil {
		return nil, err
	}
	if u.MaxOpaqueLength != 0 && length > u.MaxOpaqueLength {
		return nil, fmt.Errorf("opaque length %d exceeds maximum %d: %w", length, u.MaxOpaqueLength, ErrMalformedStream)
	}
	return u.UnpackFixedOpaque(int(length))
}

// UnpackString reads a string (RFC 4506 Section 4.11). Strings share the
// length-prefixed opaque encoding; the bytes are returned as-is with no
// UTF-8 validation.
func (u *Unpacker) UnpackString() (string, error) {
	b, err := u.UnpackOpaque()
	if err != nil {
		return "", err
	}
	return string(b), nil
}
