package handle

import (
	"unsafe"

	"github.com/moontrade/handle/pkg/spinlock"
)

// Process-wide adopted-pointer registry. Debug aid only: catches the
// same pointer being adopted by two independent control blocks, which
// otherwise surfaces much later as a double release. Entries are
// removed when the adopting block finalizes, so a recycled address can
// be adopted again. Never consulted unless config.AdoptCheck is on.
type adoptRegistry struct {
	mu spinlock.Mutex
	m  map[unsafe.Pointer]struct{}
}

var adoptions adoptRegistry

func (r *adoptRegistry) adopt(p unsafe.Pointer) {
	r.mu.Lock()
	if r.m == nil {
		r.m = make(map[unsafe.Pointer]struct{})
	}
	if _, dup := r.m[p]; dup {
		r.mu.Unlock()
		panic("handle: pointer adopted twice")
	}
	r.m[p] = struct{}{}
	r.mu.Unlock()
}

func (r *adoptRegistry) forget(p unsafe.Pointer) {
	r.mu.Lock()
	if r.m != nil {
		delete(r.m, p)
	}
	r.mu.Unlock()
}
