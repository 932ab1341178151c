package handle

import (
	"unsafe"

	"github.com/moontrade/handle/config"
)

// Strong is a shared-ownership handle. Any number of Strong handles may
// share one value; the value stays alive while at least one exists, and
// the last Release runs the finalizer.
//
// Strong values are comparable: two handles are == iff they share the
// same control block, i.e. own the same value. Plain Go assignment
// copies the struct without touching the count — treat assignment as a
// move and use Clone when a second owner is intended.
type Strong[T any] struct {
	ctl *control[T]
}

// New allocates value and its control block as a single unit and
// returns the first handle. This is the preferred construction path:
// the single allocation makes a second independent owner of the same
// value structurally impossible.
func New[T any](value T) Strong[T] {
	return NewWith(value, nil)
}

// NewWith is New with a finalizer bound into the control block. The
// stored value is zeroed on finalization, after fin runs, so payload
// references are dropped promptly.
func NewWith[T any](value T, fin Deleter[T]) Strong[T] {
	stats.Allocs.Incr()
	c := &combined[T]{value: value}
	c.ptr = &c.value
	c.fin = fin
	c.wipe = true
	c.strong = 1
	c.weak = 1
	return Strong[T]{ctl: &c.control}
}

// Adopt wraps an externally allocated value in a new control block.
// Interop escape hatch only. The same pointer must never be adopted by
// a second, independently constructed control block: that creates two
// independent owners and an eventual double release. The contract is
// the caller's and is not checked in production; with
// config.AdoptCheck on, a process-wide registry turns duplicate
// adoption into a fatal assertion.
//
// A nil fin zeroes the pointee on finalization.
func Adopt[T any](ptr *T, fin Deleter[T]) Strong[T] {
	if ptr == nil {
		return Strong[T]{}
	}
	c := &control[T]{ptr: ptr, fin: fin, wipe: fin == nil}
	c.strong = 1
	c.weak = 1
	if config.AdoptCheck {
		c.raw = unsafe.Pointer(ptr)
		adoptions.adopt(c.raw)
	}
	stats.Allocs.Incr()
	stats.Adopts.Incr()
	return Strong[T]{ctl: c}
}

// Clone returns a new handle sharing ownership of the same value. O(1):
// increments the strong count, never copies the value.
func (s Strong[T]) Clone() Strong[T] {
	if s.ctl == nil {
		return Strong[T]{}
	}
	s.ctl.incStrong()
	return Strong[T]{ctl: s.ctl}
}

// Move transfers ownership to the returned handle and empties s. No
// count changes. Moving, not cloning, is the idiom for inserting a
// handle into a collection consumed by other owners; repeated clones
// there inflate the count and delay release.
func (s *Strong[T]) Move() Strong[T] {
	c := s.ctl
	s.ctl = nil
	return Strong[T]{ctl: c}
}

// Release drops this handle's ownership and empties it. The last
// release runs the finalizer. Release of an empty handle is a no-op.
func (s *Strong[T]) Release() {
	c := s.ctl
	if c == nil {
		return
	}
	s.ctl = nil
	c.decStrong()
}

// Get returns the managed value. A non-empty Strong handle keeps its
// value alive, so the pointer is valid for the life of the handle.
func (s Strong[T]) Get() *T {
	return s.ctl.ptr
}

// Value returns a copy of the managed value.
func (s Strong[T]) Value() T {
	return *s.ctl.ptr
}

// UseCount returns the current strong count. Racy under concurrent
// mutation: a diagnostic, not a synchronization primitive.
func (s Strong[T]) UseCount() int64 {
	if s.ctl == nil {
		return 0
	}
	return s.ctl.strong.Load()
}

// Empty reports whether the handle owns nothing.
func (s Strong[T]) Empty() bool {
	return s.ctl == nil
}

// Weak derives a non-owning observer of the managed value.
func (s Strong[T]) Weak() Weak[T] {
	if s.ctl == nil {
		return Weak[T]{}
	}
	s.ctl.incWeak()
	return Weak[T]{ctl: s.ctl}
}

// weakRefs reports the number of live Weak handles. Test hook.
func (s Strong[T]) weakRefs() int64 {
	if s.ctl == nil {
		return 0
	}
	n := s.ctl.weak.Load()
	if s.ctl.strong.Load() > 0 {
		n--
	}
	return n
}
