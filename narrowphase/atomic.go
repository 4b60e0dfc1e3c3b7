package narrowphase

import (
	"math"
	"sync/atomic"
	"unsafe"
)

// atomicMinFloat32 atomically sets *addr to min(*addr, val) via a
// compare-and-swap loop on the bit pattern reinterpreted as uint32. This
// relies on both *addr and val always being non-negative (the Sentinel
// and every real distance are ≥ 0): for non-negative IEEE-754 floats, bit
// pattern order matches numeric order, so no sign-flip encoding is
// required.
func atomicMinFloat32(addr *float32, val float32) {
	p := (*uint32)(unsafe.Pointer(addr))
	next := math.Float32bits(val)
	for {
		old := atomic.LoadUint32(p)
		if next >= old {
			return
		}
		if atomic.CompareAndSwapUint32(p, old, next) {
			return
		}
	}
}

// atomicMaxInt32 atomically sets *addr to max(*addr, val) via a
// compare-and-swap loop.
func atomicMaxInt32(addr *int32, val int32) {
	for {
		old := atomic.LoadInt32(addr)
		if val <= old {
			return
		}
		if atomic.CompareAndSwapInt32(addr, old, val) {
			return
		}
	}
}
