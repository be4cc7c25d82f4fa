package xdr

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ============================================================================
// Packer - Go Types → Wire Format
// ============================================================================

// Packer serializes typed values into a growing byte buffer using XDR
// encoding rules. Every Pack* method appends the wire representation of its
// argument; a failing call appends nothing, so the buffer only ever contains
// complete encodings.
//
// The zero value is ready to use:
//
//	var p xdr.Packer
//	_ = p.PackUint32(42)
//	_ = p.PackString("hello")
//	wire := p.Bytes()
//
// Packer is not safe for concurrent use.
type Packer struct {
	buf []byte
}

// NewPacker returns an empty Packer.
func NewPacker() *Packer {
	return &Packer{}
}

// Bytes returns a copy of all bytes written so far. The Packer retains its
// state; callers may keep packing after taking a snapshot.
func (p *Packer) Bytes() []byte {
	out := make([]byte, len(p.buf))
	copy(out, p.buf)
	return out
}

// Len returns the number of bytes written so far.
func (p *Packer) Len() int {
	return len(p.buf)
}

// Reset discards all written bytes, returning the Packer to its initial
// empty state. The underlying buffer is retained for reuse.
func (p *Packer) Reset() {
	p.buf = p.buf[:0]
}

// PackUint32 appends a 32-bit unsigned integer.
//
// Per RFC 4506 Section 4.2 (Unsigned Integer):
// encoded as exactly 4 bytes in big-endian byte order.
func (p *Packer) PackUint32(v uint32) error {
	p.buf = binary.BigEndian.AppendUint32(p.buf, v)
	return nil
}

// PackInt32 appends a 32-bit signed integer.
//
// Per RFC 4506 Section 4.1 (Integer):
// encoded as exactly 4 bytes, big-endian, two's complement.
func (p *Packer) PackInt32(v int32) error {
	return p.PackUint32(uint32(v))
}

// PackEnum appends an enumeration value. Enums share the int32 encoding
// (RFC 4506 Section 4.3).
func (p *Packer) PackEnum(v int32) error {
	return p.PackInt32(v)
}

// PackUint appends a platform-width unsigned integer after checking that it
// fits the 32-bit wire encoding. Fails with ErrConversion otherwise.
func (p *Packer) PackUint(v uint) error {
	if uint64(v) > math.MaxUint32 {
		return fmt.Errorf("uint %d overflows 32 bits: %w", v, ErrConversion)
	}
	return p.PackUint32(uint32(v))
}

// PackInt appends a platform-width signed integer after checking that it
// fits the 32-bit wire encoding. Fails with ErrConversion otherwise.
func (p *Packer) PackInt(v int) error {
	if int64(v) > math.MaxInt32 || int64(v) < math.MinInt32 {
		return fmt.Errorf("int %d overflows 32 bits: %w", v, ErrConversion)
	}
	return p.PackInt32(int32(v))
}

// PackBool appends a boolean value.
//
// Per RFC 4506 Section 4.4 (Boolean):
// encoded as a uint32, exactly 1 for true and 0 for false.
func (p *Packer) PackBool(v bool) error {
	var u uint32
	if v {
		u = 1
	}
	return p.PackUint32(u)
}

// PackUint64 appends a 64-bit unsigned integer (XDR "unsigned hyper").
//
// Per RFC 4506 Section 4.5 (Hyper Integer):
// encoded as two concatenated 32-bit words, high-order word first.
func (p *Packer) PackUint64(v uint64) error {
	if err := p.PackUint32(uint32(v >> 32)); err != nil {
		return err
	}
	return p.PackUint32(uint32(v & 0xFFFFFFFF))
}

// PackInt64 appends a 64-bit signed integer (XDR "hyper"), two's complement.
func (p *Packer) PackInt64(v int64) error {
	return p.PackUint64(uint64(v))
}

// PackFloat32 appends a single-precision float.
//
// Per RFC 4506 Section 4.6 (Floating-Point):
// encoded as 4 bytes, big-endian IEEE 754.
func (p *Packer) PackFloat32(v float32) error {
	return p.PackUint32(math.Float32bits(v))
}

// PackFloat64 appends a double-precision float (8 bytes, big-endian IEEE 754,
// RFC 4506 Section 4.7).
func (p *Packer) PackFloat64(v float64) error {
	return p.PackUint64(math.Float64bits(v))
}

// PackFixedOpaque appends fixed-length opaque data of declared size n.
//
// Per RFC 4506 Section 4.9 (Fixed-Length Opaque Data):
// the wire carries ((n+3)/4)*4 bytes. Only the first n bytes of data are
// used; if data is shorter than n the remainder is zero-filled, and the
// output is zero-padded up to the 4-byte boundary. The declared size n is
// known out-of-band by both sides and is not encoded.
//
// Fails with ErrPrecondition when n is negative.
//
// Example:
//
//	PackFixedOpaque(3, []byte("ab")) → [61 62 00 00]
func (p *Packer) PackFixedOpaque(n int, data []byte) error {
	if n < 0 {
		return fmt.Errorf("fixed opaque size %d must be nonnegative: %w", n, ErrPrecondition)
	}
	if len(data) > n {
		data = data[:n]
	}
	aligned := ((n + 3) / 4) * 4
	p.buf = append(p.buf, data...)
	if fill := aligned - len(data); fill > 0 {
		p.buf = append(p.buf, make([]byte, fill)...)
	}
	return nil
}

// PackOpaque appends variable-length opaque data: a uint32 length prefix
// followed by the fixed-opaque encoding of that many bytes (RFC 4506
// Section 4.10). Fails with ErrConversion when the length does not fit the
// 32-bit prefix.
//
// Example:
//
//	[]byte{0x01, 0x02, 0x03} → [00 00 00 03][01 02 03][00] (8 bytes total)
func (p *Packer) PackOpaque(data []byte) error {
	if uint64(len(data)) > math.MaxUint32 {
		return fmt.Errorf("opaque length %d overflows 32 bits: %w", len(data), ErrConversion)
	}
	if err := p.PackUint32(uint32(len(data))); err != nil {
		return err
	}
	return p.PackFixedOpaque(len(data), data)
}

// PackString appends a string (RFC 4506 Section 4.11). Strings use the same
// length-prefixed, padded encoding as opaque data.
//
// Example:
//
//	"abc" (3 bytes) → [00 00 00 03][61 62 63][00] (8 bytes total)
//	"test" (4 bytes) → [00 00 00 04][74 65 73 74] (8 bytes total)
func (p *Packer) PackString(s string) error {
	return p.PackOpaque([]byte(s))
}
