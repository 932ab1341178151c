package counter

import "sync/atomic"

// Counter is an atomic int64 counter. The zero value is ready to use.
type Counter int64

func (c *Counter) Load() int64 {
	return atomic.LoadInt64((*int64)(c))
}

// Incr increments by 1 and returns the new value.
func (c *Counter) Incr() int64 {
	return atomic.AddInt64((*int64)(c), 1)
}

// Decr decrements by 1 and returns the new value.
func (c *Counter) Decr() int64 {
	return atomic.AddInt64((*int64)(c), -1)
}

func (c *Counter) Add(count int64) {
	atomic.AddInt64((*int64)(c), count)
}

func (c *Counter) Cas(old, new int64) bool {
	return atomic.CompareAndSwapInt64((*int64)(c), old, new)
}

func (c *Counter) Store(value int64) {
	atomic.StoreInt64((*int64)(c), value)
}
