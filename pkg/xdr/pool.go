package xdr

import "sync"

// maxPooledBuffer is the largest accumulated buffer a Packer may keep when
// returned to the pool. Packers that grew beyond it are dropped so one huge
// message does not pin memory indefinitely.
const maxPooledBuffer = 1 << 20

var packerPool = sync.Pool{
	New: func() any { return new(Packer) },
}

// GetPacker returns an empty Packer from the pool. Pooling avoids
// re-growing the internal buffer for every message on hot encode paths;
// pair each GetPacker with a PutPacker once the bytes have been taken.
func GetPacker() *Packer {
	return packerPool.Get().(*Packer)
}

// PutPacker resets p and returns it to the pool. The caller must not touch
// p afterwards. Safe for concurrent use, as is GetPacker.
func PutPacker(p *Packer) {
	if cap(p.buf) > maxPooledBuffer {
		return
	}
	p.Reset()
	packerPool.Put(p)
}
