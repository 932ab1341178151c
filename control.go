package handle

import (
	"strconv"
	"unsafe"

	logger "github.com/moontrade/log"

	"github.com/moontrade/handle/config"
	"github.com/moontrade/handle/pkg/counter"
	"github.com/moontrade/handle/pkg/util"
)

// control is the shared bookkeeping block for one managed value.
//
// strong counts live Strong handles. weak counts live Weak handles plus
// one implicit reference held collectively by the strong handles. The
// implicit reference is dropped after finalization, when strong reaches
// zero, so the strong side and the weak side can never race each other
// into retiring the block twice: the block is retired exactly once, by
// whoever drops weak to zero, strictly after the finalizer has run.
type control[T any] struct {
	strong counter.Counter
	weak   counter.Counter
	ptr    *T
	fin    Deleter[T]
	raw    unsafe.Pointer // adoption registry key, only set while AdoptCheck is on
	wipe   bool           // zero the value after finalization
}

// combined is the single-allocation layout: value and control block
// allocated as one unit, giving a structural 1:1 between value identity
// and block identity.
type combined[T any] struct {
	control[T]
	value T
}

// incStrong adds an ownership reference. The caller must already hold
// one, which proves the value alive; resurrecting from zero is only
// ever attempted through tryIncStrong.
func (c *control[T]) incStrong() {
	if n := c.strong.Incr(); n < 2 {
		panic("handle: clone of released handle, strong count " + strconv.FormatInt(n, 10))
	}
}

// decStrong drops an ownership reference. The count going negative
// means a handle was released twice.
func (c *control[T]) decStrong() {
	n := c.strong.Decr()
	if n == 0 {
		c.finalize()
		c.decWeak()
		return
	}
	if n < 0 {
		panic("handle: strong count underflow: " + strconv.FormatInt(n, 10))
	}
}

// tryIncStrong attempts to acquire ownership when the caller cannot
// prove the value alive. The compare-and-swap retry loop closes the
// read-then-increment race: once a concurrent drop reaches zero and
// finalization begins, every attempt observes zero and fails, so no
// handle is ever handed out to a finalized value.
func (c *control[T]) tryIncStrong() bool {
	for {
		n := c.strong.Load()
		if n == 0 {
			return false
		}
		if c.strong.Cas(n, n+1) {
			return true
		}
	}
}

func (c *control[T]) incWeak() {
	if n := c.weak.Incr(); n < 2 {
		panic("handle: clone of released weak handle, weak count " + strconv.FormatInt(n, 10))
	}
}

func (c *control[T]) decWeak() {
	n := c.weak.Decr()
	if n == 0 {
		c.retire()
		return
	}
	if n < 0 {
		panic("handle: weak count underflow: " + strconv.FormatInt(n, 10))
	}
}

// finalize runs exactly once, on the strong 1->0 transition. sync/atomic
// gives the decrement sequentially consistent ordering, so the
// finalizing goroutine observes every write made under any previously
// held Strong handle.
func (c *control[T]) finalize() {
	stats.Finalizes.Incr()
	ptr := c.ptr
	c.ptr = nil
	if c.raw != nil {
		adoptions.forget(c.raw)
		c.raw = nil
	}
	fin := c.fin
	c.fin = nil
	if fin != nil {
		runFinalizer(fin, ptr)
	}
	if c.wipe {
		var zero T
		*ptr = zero
	}
}

func runFinalizer[T any](fin Deleter[T], ptr *T) {
	if config.RecoverFinalizerPanic {
		defer func() {
			if e := recover(); e != nil {
				logger.Error(util.PanicToError(e), "handle: finalizer panic")
			}
		}()
	}
	fin(ptr)
}

// retire marks the block dead once both counts reached zero. The memory
// itself is reclaimed by the garbage collector; the counter lets tests
// verify blocks are retired if and only if every handle is gone.
func (c *control[T]) retire() {
	stats.BlockReleases.Incr()
}
