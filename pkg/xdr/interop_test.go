package xdr

import (
	"bytes"
	"testing"

	refxdr "github.com/rasky/go-xdr/xdr2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileAttr mixes every scalar and composite shape the reflective reference
// codec and this package both support, so the two wire encodings can be
// compared byte for byte.
type fileAttr struct {
	Name     string
	Mode     uint32
	Size     uint64
	Blocks   []uint32
	Data     []byte
	Ratio    float64
	ReadOnly bool
}

// ============================================================================
// Differential Tests Against rasky/go-xdr
// ============================================================================

func TestInteropReferenceEncodesWeDecode(t *testing.T) {
	attr := fileAttr{
		Name:     "vmlinuz",
		Mode:     0o755,
		Size:     8_388_608,
		Blocks:   []uint32{1, 2, 3},
		Data:     []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01},
		Ratio:    0.5,
		ReadOnly: true,
	}

	var wire bytes.Buffer
	_, err := refxdr.Marshal(&wire, attr)
	require.NoError(t, err)

	u := NewUnpacker(wire.Bytes())

	name, err := u.UnpackString()
	require.NoError(t, err)
	assert.Equal(t, attr.Name, name)

	mode, err := u.UnpackUint32()
	require.NoError(t, err)
	assert.Equal(t, attr.Mode, mode)

	size, err := u.UnpackUint64()
	require.NoError(t, err)
	assert.Equal(t, attr.Size, size)

	blocks, err := UnpackArray(u, u.UnpackUint32)
	require.NoError(t, err)
	assert.Equal(t, attr.Blocks, blocks)

	data, err := u.UnpackOpaque()
	require.NoError(t, err)
	assert.Equal(t, attr.Data, data)

	ratio, err := u.UnpackFloat64()
	require.NoError(t, err)
	assert.Equal(t, attr.Ratio, ratio)

	readOnly, err := u.UnpackBool()
	require.NoError(t, err)
	assert.Equal(t, attr.ReadOnly, readOnly)

	assert.NoError(t, u.Done())
}

func TestInteropWeEncodeReferenceDecodes(t *testing.T) {
	attr := fileAttr{
		Name:     "initrd.img",
		Mode:     0o644,
		Size:     1 << 33,
		Blocks:   []uint32{42},
		Data:     []byte{0x01, 0x02},
		Ratio:    -2.25,
		ReadOnly: false,
	}

	p := NewPacker()
	require.NoError(t, p.PackString(attr.Name))
	require.NoError(t, p.PackUint32(attr.Mode))
	require.NoError(t, p.PackUint64(attr.Size))
	require.NoError(t, PackArray(p, attr.Blocks, p.PackUint32))
	require.NoError(t, p.PackOpaque(attr.Data))
	require.NoError(t, p.PackFloat64(attr.Ratio))
	require.NoError(t, p.PackBool(attr.ReadOnly))

	var got fileAttr
	_, err := refxdr.Unmarshal(bytes.NewReader(p.Bytes()), &got)
	require.NoError(t, err)
	assert.Equal(t, attr, got)
}

func TestInteropIdenticalWireBytes(t *testing.T) {
	attr := fileAttr{
		Name:   "a",
		Blocks: []uint32{7, 9},
		Data:   []byte{0xFF},
	}

	var ref bytes.Buffer
	_, err := refxdr.Marshal(&ref, attr)
	require.NoError(t, err)

	p := NewPacker()
	require.NoError(t, p.PackString(attr.Name))
	require.NoError(t, p.PackUint32(attr.Mode))
	require.NoError(t, p.PackUint64(attr.Size))
	require.NoError(t, PackArray(p, attr.Blocks, p.PackUint32))
	require.NoError(t, p.PackOpaque(attr.Data))
	require.NoError(t, p.PackFloat64(attr.Ratio))
	require.NoError(t, p.PackBool(attr.ReadOnly))

	assert.Equal(t, ref.Bytes(), p.Bytes())
}
