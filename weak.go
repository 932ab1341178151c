package handle

// Weak observes a value owned by Strong handles without keeping it
// alive. A Weak handle may outlive the value; it never outlives the
// control block's bookkeeping, which stays valid until the last Weak
// handle is released.
//
// Weak is the required edge type for any back-reference that would
// otherwise close a cycle of Strong handles: if P strongly owns Q and Q
// strongly owns R, a reference from R back to Q must be Weak, or the
// whole group leaks for the life of the process.
type Weak[T any] struct {
	ctl *control[T]
}

// Clone returns a new observer of the same value.
func (w Weak[T]) Clone() Weak[T] {
	if w.ctl == nil {
		return Weak[T]{}
	}
	w.ctl.incWeak()
	return Weak[T]{ctl: w.ctl}
}

// Upgrade attempts to re-acquire shared ownership, atomically verifying
// the value is still alive. It fails once finalization has begun;
// failure is ordinary control flow, not an error. Upgrade is the only
// way to turn observation back into ownership.
func (w Weak[T]) Upgrade() (Strong[T], bool) {
	c := w.ctl
	if c == nil || !c.tryIncStrong() {
		stats.UpgradeMisses.Incr()
		return Strong[T]{}, false
	}
	stats.Upgrades.Incr()
	return Strong[T]{ctl: c}, true
}

// Expired reports whether the value has been finalized. Best-effort
// snapshot: liveness can flip to false concurrently, so use Upgrade
// when the answer matters.
func (w Weak[T]) Expired() bool {
	return w.ctl == nil || w.ctl.strong.Load() == 0
}

// Release drops the observer and empties it. No-op on an empty handle.
func (w *Weak[T]) Release() {
	c := w.ctl
	if c == nil {
		return
	}
	w.ctl = nil
	c.decWeak()
}

// Empty reports whether the handle observes nothing.
func (w Weak[T]) Empty() bool {
	return w.ctl == nil
}
