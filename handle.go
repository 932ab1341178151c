// Package handle provides reference-counted ownership primitives for
// sharing a single value between multiple owners and releasing it
// deterministically: Strong shared-ownership handles, Weak non-owning
// observers that can detect the value's death without preventing it,
// and Owned exclusive handles with no counting overhead.
//
// The package makes lifetime management safe and race-free. It does not
// synchronize the managed value itself; concurrent mutation through
// multiple Strong holders needs the value's own locking discipline (see
// Locked for the composed form).
package handle

import (
	"github.com/moontrade/handle/pkg/counter"
)

// Deleter fully releases all resources owned by the managed value. It
// is bound at construction time and invoked at most once, when the last
// Strong handle is released. A Deleter must not panic and must not
// touch the strong or weak count of its own value; a panic is recovered
// and reported, never retried.
type Deleter[T any] func(*T)

// Stats tracks package-wide allocation and counting activity.
type Stats struct {
	Allocs        counter.Counter
	Adopts        counter.Counter
	Finalizes     counter.Counter
	BlockReleases counter.Counter
	Upgrades      counter.Counter
	UpgradeMisses counter.Counter
}

var stats Stats

// SnapshotStats returns a copy of the package counters. Advisory;
// counters move concurrently.
func SnapshotStats() Stats {
	return stats
}
