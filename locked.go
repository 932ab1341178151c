package handle

import (
	"github.com/moontrade/handle/pkg/spinlock"
)

// Locked pairs a lock with a value so independent Strong holders can
// mutate it safely. The counting protocol only synchronizes lifetime,
// never the managed value itself; Locked is the composed answer for
// callers that need both, distributed through the same Strong/Weak
// machinery.
type Locked[T any] struct {
	mu    spinlock.Mutex
	value T
}

// NewLocked allocates a lock-guarded value and returns the first Strong
// handle to it.
func NewLocked[T any](value T) Strong[Locked[T]] {
	return New(Locked[T]{value: value})
}

// With runs fn with the lock held.
func (l *Locked[T]) With(fn func(*T)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(&l.value)
}

// TryWith runs fn only if the lock is immediately available.
func (l *Locked[T]) TryWith(fn func(*T)) bool {
	if !l.mu.TryLock() {
		return false
	}
	defer l.mu.Unlock()
	fn(&l.value)
	return true
}
