package alloc

import (
	"unsafe"

	"github.com/moontrade/unsafe/memory"
)

// OffHeap allocates byte buffers outside the Go heap. Buffers are
// invisible to the garbage collector and must be freed explicitly.
var OffHeap offHeap

type offHeap struct{}

func (offHeap) Allocate(size int) []byte {
	if size < 1 {
		return nil
	}
	p := uintptr(memory.Alloc(uintptr(size)))
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), size)
}

func (offHeap) Free(b []byte) {
	if cap(b) == 0 {
		return
	}
	memory.Free(memory.Pointer(unsafe.Pointer(&b[0])))
}
