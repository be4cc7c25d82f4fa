package xdr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// Variable-Size Array Tests
// ============================================================================

func TestPackArray(t *testing.T) {
	t.Run("CountPrefixThenElements", func(t *testing.T) {
		p := NewPacker()
		require.NoError(t, PackArray(p, []uint32{10, 20}, p.PackUint32))
		assert.Equal(t, []byte{
			0x00, 0x00, 0x00, 0x02, // count
			0x00, 0x00, 0x00, 0x0A,
			0x00, 0x00, 0x00, 0x14,
		}, p.Bytes())
	})

	t.Run("EmptyArray", func(t *testing.T) {
		p := NewPacker()
		require.NoError(t, PackArray(p, nil, p.PackUint32))
		assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, p.Bytes())
	})

	t.Run("RoundTrip", func(t *testing.T) {
		want := []string{"mount", "umount", "export"}
		p := NewPacker()
		require.NoError(t, PackArray(p, want, p.PackString))

		u := NewUnpacker(p.Bytes())
		got, err := UnpackArray(u, u.UnpackString)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		require.NoError(t, u.Done())
	})

	t.Run("CorruptCountFailsOnFirstMissingElement", func(t *testing.T) {
		// Count claims 0xFFFFFFFF elements but nothing follows.
		u := NewUnpacker([]byte{0xFF, 0xFF, 0xFF, 0xFF})
		_, err := UnpackArray(u, u.UnpackUint32)
		assert.ErrorIs(t, err, ErrEndOfData)
	})
}

// ============================================================================
// Fixed-Size Array Tests
// ============================================================================

func TestPackFixedArray(t *testing.T) {
	t.Run("NoCountOnTheWire", func(t *testing.T) {
		p := NewPacker()
		require.NoError(t, PackFixedArray(p, 2, []uint32{1, 2}, p.PackUint32))
		assert.Equal(t, []byte{
			0x00, 0x00, 0x00, 0x01,
			0x00, 0x00, 0x00, 0x02,
		}, p.Bytes())
	})

	t.Run("SizeMismatchWritesNothing", func(t *testing.T) {
		p := NewPacker()
		err := PackFixedArray(p, 3, []int32{1, 2}, p.PackInt32)
		require.ErrorIs(t, err, ErrPrecondition)
		assert.Empty(t, p.Bytes())
	})

	t.Run("RoundTrip", func(t *testing.T) {
		want := []uint64{7, 8, 9}
		p := NewPacker()
		require.NoError(t, PackFixedArray(p, 3, want, p.PackUint64))

		u := NewUnpacker(p.Bytes())
		got, err := UnpackFixedArray(u, 3, u.UnpackUint64)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		require.NoError(t, u.Done())
	})

	t.Run("UnpackZeroElements", func(t *testing.T) {
		u := NewUnpacker(nil)
		got, err := UnpackFixedArray(u, 0, u.UnpackUint32)
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

// ============================================================================
// Discriminated List Tests
// ============================================================================

func TestPackList(t *testing.T) {
	t.Run("TagItemPairsWithTerminator", func(t *testing.T) {
		p := NewPacker()
		require.NoError(t, PackList(p, []int32{1, 2}, p.PackInt32))
		assert.Equal(t, []byte{
			0x00, 0x00, 0x00, 0x01, // more follows
			0x00, 0x00, 0x00, 0x01, // item 1
			0x00, 0x00, 0x00, 0x01, // more follows
			0x00, 0x00, 0x00, 0x02, // item 2
			0x00, 0x00, 0x00, 0x00, // terminator
		}, p.Bytes())
	})

	t.Run("EmptyListIsJustTerminator", func(t *testing.T) {
		p := NewPacker()
		require.NoError(t, PackList(p, nil, p.PackInt32))
		assert.Equal(t, []byte{0x00, 0x00, 0x00, 0x00}, p.Bytes())
	})

	t.Run("RoundTrip", func(t *testing.T) {
		want := []int32{1, 2}
		p := NewPacker()
		require.NoError(t, PackList(p, want, p.PackInt32))

		u := NewUnpacker(p.Bytes())
		got, err := UnpackList(u, u.UnpackInt32)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		require.NoError(t, u.Done())
	})

	t.Run("StringListRoundTrip", func(t *testing.T) {
		want := []string{"/export", "/data/shared"}
		p := NewPacker()
		require.NoError(t, PackList(p, want, p.PackString))

		u := NewUnpacker(p.Bytes())
		got, err := UnpackList(u, u.UnpackString)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("UnknownTagIsMalformed", func(t *testing.T) {
		u := NewUnpacker([]byte{0x00, 0x00, 0x00, 0x02})
		_, err := UnpackList(u, u.UnpackInt32)
		assert.ErrorIs(t, err, ErrMalformedStream)
	})

	t.Run("MissingTerminatorIsEndOfData", func(t *testing.T) {
		u := NewUnpacker([]byte{
			0x00, 0x00, 0x00, 0x01,
			0x00, 0x00, 0x00, 0x2A,
		})
		_, err := UnpackList(u, u.UnpackInt32)
		assert.ErrorIs(t, err, ErrEndOfData)
	})
}
