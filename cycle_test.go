package handle

import (
	"testing"

	"github.com/moontrade/handle/pkg/counter"
)

type node struct {
	name   string
	child  Strong[node]
	parent Weak[node]
}

// P strongly owns Q, Q strongly owns R, and R's back-reference to Q is
// weak. Dropping the sole external handle to P must tear down all three
// objects; a strong back-edge would keep the counts pinned and leak the
// whole group.
func TestCycleBackEdge(t *testing.T) {
	var fins counter.Counter
	fin := func(n *node) {
		fins.Incr()
		n.child.Release()
		n.parent.Release()
	}
	before := SnapshotStats()

	q := NewWith(node{name: "q"}, fin)
	r := NewWith(node{name: "r", parent: q.Weak()}, fin)
	q.Get().child = r.Move()
	p := NewWith(node{name: "p"}, fin)
	p.Get().child = q.Move()

	if fins.Load() != 0 {
		t.Fatal("nothing may finalize while p is externally owned")
	}
	p.Release()
	if fins.Load() != 3 {
		t.Fatal("expected 3 finalizes, got", fins.Load())
	}

	after := SnapshotStats()
	if got := after.BlockReleases.Load() - before.BlockReleases.Load(); got != 3 {
		t.Fatal("expected 3 block releases, got", got)
	}
	if after.Allocs.Load()-before.Allocs.Load() != 3 {
		t.Fatal("expected 3 allocations")
	}
}

// The back-edge stays observable while its target is alive: R can
// upgrade its parent reference until Q begins finalizing.
func TestCycleBackEdgeUpgrade(t *testing.T) {
	fin := func(n *node) {
		n.child.Release()
		n.parent.Release()
	}

	q := NewWith(node{name: "q"}, fin)
	r := NewWith(node{name: "r", parent: q.Weak()}, fin)
	q.Get().child = r.Move()

	up, ok := q.Get().child.Get().parent.Upgrade()
	if !ok {
		t.Fatal("back-edge upgrade must succeed while q is alive")
	}
	if up.Get().name != "q" {
		t.Fatal("back-edge resolved to the wrong node")
	}
	up.Release()
	q.Release()
}
