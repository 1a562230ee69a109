package option_test

import (
	"strings"
	"testing"

	"boxkit/internal/contract"
	"boxkit/option"
)

type tracked struct {
	id    int
	drops *int
}

func (t *tracked) Drop() {
	if t.drops != nil {
		*t.drops++
	}
}

func TestOptionLifecycle(t *testing.T) {
	opt := option.None[int]()
	if opt.HasValue() {
		t.Fatal("empty option must not report a value")
	}
	if !opt.IsEmpty() {
		t.Fatal("empty option must report empty")
	}

	opt.Set(7)
	if !opt.HasValue() {
		t.Fatal("option must report a value after set")
	}
	if got := opt.Get(); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}

	opt.Reset()
	if opt.HasValue() {
		t.Fatal("option must be empty after reset")
	}

	// The container cycles between the two states for its whole life.
	opt.Set(8)
	if got := opt.Get(); got != 8 {
		t.Fatalf("expected 8 after re-set, got %d", got)
	}
}

func TestOptionSomeAndGetters(t *testing.T) {
	opt := option.Some("v")
	if got := opt.Get(); got != "v" {
		t.Fatalf("expected %q, got %q", "v", got)
	}
	if got := opt.GetOr("fallback"); got != "v" {
		t.Fatalf("expected held value, got %q", got)
	}
	if v, ok := opt.TryGet(); !ok || v != "v" {
		t.Fatalf("expected (v, true), got (%q, %v)", v, ok)
	}

	empty := option.None[string]()
	if got := empty.GetOr("fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
	if _, ok := empty.TryGet(); ok {
		t.Fatal("TryGet on empty must report false")
	}
	if empty.Ptr() != nil {
		t.Fatal("Ptr on empty must be nil")
	}
}

func TestOptionFromPtr(t *testing.T) {
	if opt := option.FromPtr[int](nil); opt.HasValue() {
		t.Fatal("nil pointer must fold into absence")
	}
	x := 3
	opt := option.FromPtr(&x)
	if got := opt.Get(); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
}

func TestOptionTakeClearsSource(t *testing.T) {
	opt := option.Some(41)
	v, ok := opt.Take()
	if !ok || v != 41 {
		t.Fatalf("expected (41, true), got (%d, %v)", v, ok)
	}
	if opt.HasValue() {
		t.Fatal("moved-from option must be observably empty")
	}
	if _, ok := opt.Take(); ok {
		t.Fatal("second take must report no value")
	}
}

func TestOptionMoveFrom(t *testing.T) {
	src := option.Some(11)
	var dst option.Option[int]
	dst.MoveFrom(&src)
	if got := dst.Get(); got != 11 {
		t.Fatalf("expected transferred value 11, got %d", got)
	}
	if src.HasValue() {
		t.Fatal("source must be empty after move")
	}

	// Moving over a present destination releases the old value first.
	drops := 0
	d2 := option.Some(tracked{id: 1, drops: &drops})
	s2 := option.Some(tracked{id: 2, drops: &drops})
	d2.MoveFrom(&s2)
	if drops != 1 {
		t.Fatalf("expected destination's old value released once, got %d", drops)
	}
	if got := d2.Get().id; got != 2 {
		t.Fatalf("expected id 2, got %d", got)
	}
}

func TestOptionCopySemantics(t *testing.T) {
	// Value-held T: copies are independent.
	a := option.Some(3)
	b := a
	b.Set(9)
	if got := a.Get(); got != 3 {
		t.Fatalf("mutating the copy leaked into the original: %d", got)
	}

	// Pointer-held T: copies alias the same target.
	x := 1
	pa := option.Some(&x)
	pb := pa
	*pb.Get() = 7
	if got := *pa.Get(); got != 7 {
		t.Fatalf("expected aliasing through pointer-held copies, got %d", got)
	}
}

func TestOptionSetReleasesPrevious(t *testing.T) {
	drops := 0
	opt := option.Some(tracked{id: 1, drops: &drops})
	opt.Set(tracked{id: 2, drops: &drops})
	if drops != 1 {
		t.Fatalf("expected previous value released once, got %d", drops)
	}
	opt.Reset()
	if drops != 2 {
		t.Fatalf("expected reset to release the held value, got %d drops", drops)
	}
	opt.Reset()
	if drops != 2 {
		t.Fatalf("reset on empty must not release again, got %d drops", drops)
	}
}

func TestOptionGetEmptyPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic, got nil")
		}
		v, ok := r.(*contract.Violation)
		if !ok {
			t.Fatalf("unexpected panic type: %T", r)
		}
		if v.Code != contract.CodeNoValue {
			t.Fatalf("expected %v, got %v", contract.CodeNoValue, v.Code)
		}
		if !strings.Contains(v.Message, "no value present") {
			t.Fatalf("expected descriptive message, got %q", v.Message)
		}
		if v.File == "" {
			t.Fatal("expected a located diagnostic")
		}
	}()

	empty := option.None[int]()
	_ = empty.Get()
}
