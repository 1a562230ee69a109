package rc_test

import (
	"errors"
	"sync/atomic"
	"testing"

	"golang.org/x/sync/errgroup"

	"boxkit/alloc"
	"boxkit/rc"
)

type gadget struct {
	drops *atomic.Int64
}

func (g *gadget) Drop() {
	if g.drops != nil {
		g.drops.Add(1)
	}
}

func TestArcCloneDrop(t *testing.T) {
	var drops atomic.Int64
	a := rc.MakeAtomic(gadget{drops: &drops})

	b := a.Clone()
	if got := a.Count(); got != 2 {
		t.Fatalf("expected count 2, got %d", got)
	}
	b.Drop()
	a.Drop()
	if got := drops.Load(); got != 1 {
		t.Fatalf("expected exactly one release, got %d", got)
	}
}

func TestArcConcurrentCloneDrop(t *testing.T) {
	const workers = 64
	const rounds = 128

	stats := &alloc.Stats{}
	elems := alloc.NewCounting[gadget](stats)
	blocks := alloc.NewCounting[rc.Block[gadget, rc.Atomic]](stats)

	var drops atomic.Int64
	a := rc.MakeAtomicIn(gadget{drops: &drops}, elems, blocks)

	var g errgroup.Group
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for j := 0; j < rounds; j++ {
				c := a.Clone()
				if c.IsNull() {
					return errors.New("clone lost the pointee")
				}
				c.Drop()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent clone/drop failed: %v", err)
	}

	if got := a.Count(); got != 1 {
		t.Fatalf("expected count back to 1, got %d", got)
	}
	if got := drops.Load(); got != 0 {
		t.Fatalf("pointee released while a handle was live: %d drops", got)
	}

	a.Drop()
	if got := drops.Load(); got != 1 {
		t.Fatalf("expected exactly one release after the last drop, got %d", got)
	}
	if stats.Live() != 0 {
		t.Fatalf("expected all allocations returned, %d still live", stats.Live())
	}
}
