package xdr

import (
	"fmt"
	"math"
)

// ============================================================================
// Generic Array and List Helpers
// ============================================================================
//
// XDR encodes three kinds of sequences: fixed-size arrays (element count
// known out-of-band, nothing on the wire but the elements), variable-size
// arrays (uint32 count prefix), and discriminated lists (per-element
// continuation tags, no count at all). The element encoding is supplied by
// the caller as a per-item callback, typically a Packer/Unpacker method
// value or a closure around one.

// PackFixedArray packs exactly n items with no length prefix (RFC 4506
// Section 4.12, Fixed-Length Array). Both sides must know n out-of-band.
//
// Fails with ErrPrecondition, writing nothing, when len(items) != n.
//
// Example:
//
//	err := xdr.PackFixedArray(p, 3, ids, p.PackUint32)
func PackFixedArray[T any](p *Packer, n int, items []T, packItem func(T) error) error {
	if len(items) != n {
		return fmt.Errorf("fixed array has %d items, declared %d: %w", len(items), n, ErrPrecondition)
	}
	for _, item := range items {
		if err := packItem(item); err != nil {
			return err
		}
	}
	return nil
}

// PackArray packs a variable-size array: a uint32 element count followed by
// the elements in order (RFC 4506 Section 4.13).
func PackArray[T any](p *Packer, items []T, packItem func(T) error) error {
	if uint64(len(items)) > math.MaxUint32 {
		return fmt.Errorf("array length %d overflows 32 bits: %w", len(items), ErrConversion)
	}
	if err := p.PackUint32(uint32(len(items))); err != nil {
		return err
	}
	return PackFixedArray(p, len(items), items, packItem)
}

// PackList packs a discriminated list: each element is preceded by a
// continuation tag of 1, and a final tag of 0 terminates the sequence.
// No element count is ever encoded; the reader stops at the 0 tag.
//
// This is the encoding RFC 4506 Section 4.20 sketches for optional-data
// chains (linked lists) and is structurally different from PackArray.
func PackList[T any](p *Packer, items []T, packItem func(T) error) error {
	for _, item := range items {
		if err := p.PackUint32(1); err != nil {
			return err
		}
		if err := packItem(item); err != nil {
			return err
		}
	}
	return p.PackUint32(0)
}

// UnpackFixedArray unpacks exactly n items, invoking unpackItem n times in
// sequence. No count is read; the caller supplies n out-of-band.
func UnpackFixedArray[T any](u *Unpacker, n int, unpackItem func() (T, error)) ([]T, error) {
	var items []T
	for i := 0; i < n; i++ {
		item, err := unpackItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// UnpackArray unpacks a variable-size array: a uint32 element count followed
// by that many elements.
//
// The result slice grows as elements decode rather than being preallocated
// from the count, so a corrupt count prefix fails with ErrEndOfData on the
// first missing element instead of provoking a giant allocation.
//
// Example:
//
//	ids, err := xdr.UnpackArray(u, u.UnpackUint32)
func UnpackArray[T any](u *Unpacker, unpackItem func() (T, error)) ([]T, error) {
	count, err := u.UnpackUint32()
	if err != nil {
		return nil, err
	}
	return UnpackFixedArray(u, int(count), unpackItem)
}

// UnpackList unpacks a discriminated list: continuation tags of 1 each
// introduce one more element, and a tag of 0 ends the list. Any other tag
// value fails with ErrMalformedStream.
func UnpackList[T any](u *Unpacker, unpackItem func() (T, error)) ([]T, error) {
	var items []T
	for {
		tag, err := u.UnpackUint32()
		if err != nil {
			return nil, err
		}
		if tag == 0 {
			break
		}
		if tag != 1 {
			return nil, fmt.Errorf("list continuation tag must be 0 or 1, got %d: %w", tag, ErrMalformedStream)
		}
		item, err := unpackItem()
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}
