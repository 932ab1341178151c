package handle

import (
	"testing"

	"github.com/moontrade/handle/pkg/counter"
)

func TestOwned(t *testing.T) {
	var fins counter.Counter
	o := OwnWith(42, func(*int) { fins.Incr() })
	if o.Empty() || *o.Get() != 42 {
		t.Fatal("owned handle lost the value")
	}

	moved := o.Move()
	if !o.Empty() {
		t.Fatal("moved-from handle must be empty")
	}
	if *moved.Get() != 42 {
		t.Fatal("moved handle lost the value")
	}

	moved.Release()
	if !moved.Empty() {
		t.Fatal("released handle must be empty")
	}
	if fins.Load() != 1 {
		t.Fatal("expected exactly 1 finalize, got", fins.Load())
	}
	moved.Release()
	o.Release()
	if fins.Load() != 1 {
		t.Fatal("release of empty handles must not finalize again")
	}
}

func TestOwnedPromote(t *testing.T) {
	var fins counter.Counter
	before := SnapshotStats()

	o := OwnWith("payload", func(*string) { fins.Incr() })
	ptr := o.Get()

	sp := o.Promote()
	if !o.Empty() {
		t.Fatal("promote must empty the owned handle")
	}
	if sp.UseCount() != 1 {
		t.Fatal("expected 1, got", sp.UseCount())
	}
	if sp.Get() != ptr {
		t.Fatal("promote must preserve object identity")
	}

	w := sp.Weak()
	if up, ok := w.Upgrade(); !ok || up.Get() != ptr {
		t.Fatal("weak machinery must work on a promoted handle")
	} else {
		up.Release()
	}
	w.Release()

	sp.Release()
	if fins.Load() != 1 {
		t.Fatal("promoted handle must carry the finalizer, got", fins.Load())
	}

	after := SnapshotStats()
	if after.Allocs.Load()-before.Allocs.Load() != 1 {
		t.Fatal("promote allocates exactly one control block")
	}
	if after.BlockReleases.Load()-before.BlockReleases.Load() != 1 {
		t.Fatal("expected 1 block release")
	}
}

func TestOwnedPromoteEmpty(t *testing.T) {
	var o Owned[int]
	if sp := o.Promote(); !sp.Empty() {
		t.Fatal("promote of empty must be empty")
	}
}
