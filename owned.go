package handle

// Owned is an exclusive-ownership handle: a single owner, no control
// block, no atomic operations. It is the recommended default; reach for
// Strong only when shared ownership is a genuine structural
// requirement. Promote converts to a Strong handle on demand — the
// reverse conversion does not exist.
type Owned[T any] struct {
	ptr *T
	fin Deleter[T]
}

// Own allocates value and returns its exclusive handle.
func Own[T any](value T) Owned[T] {
	return OwnWith(value, nil)
}

// OwnWith is Own with a finalizer run by Release.
func OwnWith[T any](value T, fin Deleter[T]) Owned[T] {
	return Owned[T]{ptr: &value, fin: fin}
}

// Move transfers ownership to the returned handle and empties o.
func (o *Owned[T]) Move() Owned[T] {
	m := *o
	*o = Owned[T]{}
	return m
}

// Get returns the owned value.
func (o *Owned[T]) Get() *T {
	return o.ptr
}

// Empty reports whether the handle owns nothing.
func (o *Owned[T]) Empty() bool {
	return o.ptr == nil
}

// Release destroys the value deterministically and empties the handle.
// No-op on an empty handle.
func (o *Owned[T]) Release() {
	ptr, fin := o.ptr, o.fin
	*o = Owned[T]{}
	if ptr == nil {
		return
	}
	if fin != nil {
		runFinalizer(fin, ptr)
		return
	}
	var zero T
	*ptr = zero
}

// Promote converts exclusive ownership into shared ownership,
// allocating a control block for the already-allocated value. o is
// emptied; the returned handle carries o's finalizer and a strong count
// of one.
func (o *Owned[T]) Promote() Strong[T] {
	ptr, fin := o.ptr, o.fin
	*o = Owned[T]{}
	if ptr == nil {
		return Strong[T]{}
	}
	stats.Allocs.Incr()
	c := &control[T]{ptr: ptr, fin: fin, wipe: fin == nil}
	c.strong = 1
	c.weak = 1
	return Strong[T]{ctl: c}
}
