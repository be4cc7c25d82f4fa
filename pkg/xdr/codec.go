package xdr

// ============================================================================
// Codec Interfaces
// ============================================================================

// Encoder is implemented by types that can pack themselves into XDR format.
// Implementations append their wire representation field by field:
//
//	func (m *MountRequest) Encode(p *xdr.Packer) error {
//		return p.PackString(m.DirPath)
//	}
type Encoder interface {
	Encode(p *Packer) error
}

// Decoder is implemented by types that can unpack themselves from XDR
// format. The field order must mirror the matching Encode.
type Decoder interface {
	Decode(u *Unpacker) error
}

// Marshal packs v and returns its complete wire representation.
func Marshal(v Encoder) ([]byte, error) {
	p := GetPacker()
	defer PutPacker(p)
	if err := v.Encode(p); err != nil {
		return nil, err
	}
	return p.Bytes(), nil
}

// Unmarshal decodes a complete message from data into v. The whole buffer
// must be consumed: trailing bytes fail with ErrMalformedStream, the same
// check Unpacker.Done performs.
func Unmarshal(data []byte, v Decoder) error {
	u := NewUnpacker(data)
	if err := v.Decode(u); err != nil {
		return err
	}
	return u.Done()
}

// ============================================================================
// Discriminated Union Helpers
// ============================================================================

// PackUnionDiscriminant writes the uint32 discriminant of an XDR union.
// An alias for PackUint32 that makes union encode code self-documenting.
//
// Per RFC 4506 Section 4.15 (Discriminated Unions):
// the discriminant is always encoded as a uint32 before the union arm data.
func PackUnionDiscriminant(p *Packer, disc uint32) error {
	return p.PackUint32(disc)
}

// UnpackUnionDiscriminant reads the uint32 discriminant of an XDR union.
// An alias for UnpackUint32 that makes union decode code self-documenting.
func UnpackUnionDiscriminant(u *Unpacker) (uint32, error) {
	return u.UnpackUint32()
}
