package frame

import "sync"

// framePool reuses encode buffers across WriteFrame calls. This reduces GC
// pressure by avoiding a fresh allocation per frame. A 4KB default covers
// common packet sizes without re-allocation.
var framePool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 4096)
		return &b
	},
}
