package arena

import "testing"

func expectFatal(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Error("expected a contract-violation panic")
		}
	}()
	fn()
}

func TestAllocBorrowFree(t *testing.T) {
	a := New[string]()
	h := a.Alloc("first")
	if h.IsNone() {
		t.Fatal("Alloc returned the null handle")
	}
	if got := a.Borrow(h); got != "first" {
		t.Errorf("Borrow = %q", got)
	}
	if got := a.Free(h); got != "first" {
		t.Errorf("Free returned %q", got)
	}
	if a.IsValid(h) {
		t.Error("freed handle is still valid")
	}
}

func TestStaleHandleNeverResolvesToNewOccupant(t *testing.T) {
	a := New[string]()
	old := a.Alloc("old")
	a.Free(old)

	// The freed slot is recycled for the next allocation.
	fresh := a.Alloc("fresh")
	if fresh.Index() != old.Index() {
		t.Fatalf("expected slot reuse, got index %d and %d", fresh.Index(), old.Index())
	}
	if old == fresh {
		t.Fatal("recycled handle equals the stale one")
	}
	if a.IsValid(old) {
		t.Error("stale handle reports valid")
	}
	expectFatal(t, func() { a.Borrow(old) })
	if got := a.Borrow(fresh); got != "fresh" {
		t.Errorf("Borrow(fresh) = %q", got)
	}
}

func TestBorrowNullAndOutOfRange(t *testing.T) {
	a := New[int]()
	expectFatal(t, func() { a.Borrow(None) })
	expectFatal(t, func() { a.Borrow(Handle{index: 42, generation: 1}) })
	if a.IsValid(None) || a.IsValid(Handle{index: 42, generation: 1}) {
		t.Error("IsValid must be false for null and out-of-range handles")
	}
}

func TestTakePutBack(t *testing.T) {
	a := New[string]()
	h := a.Alloc("node")

	value, ok := a.TakeAt(h.Index())
	if !ok || value != "node" {
		t.Fatalf("TakeAt = %q, %v", value, ok)
	}
	// The slot is vacant: the handle is invalid and borrowing fails fast,
	// but the generation is unchanged.
	if a.IsValid(h) {
		t.Error("taken-out handle reports valid")
	}
	expectFatal(t, func() { a.Borrow(h) })
	if got := a.HandleFromIndex(h.Index()); got != h {
		t.Errorf("HandleFromIndex = %v, want %v", got, h)
	}
	if _, ok := a.TakeAt(h.Index()); ok {
		t.Error("second TakeAt on a vacant slot must fail")
	}

	a.PutBack(h.Index(), value)
	if got := a.Borrow(h); got != "node" {
		t.Errorf("Borrow after PutBack = %q", got)
	}
	expectFatal(t, func() { a.PutBack(h.Index(), "other") })
}

func TestIteration(t *testing.T) {
	a := New[int]()
	h1 := a.Alloc(1)
	h2 := a.Alloc(2)
	h3 := a.Alloc(3)
	a.Free(h2)

	var values []int
	var handles []Handle
	a.EachWithHandle(func(h Handle, v int) {
		handles = append(handles, h)
		values = append(values, v)
	})
	if len(values) != 2 || values[0] != 1 || values[1] != 3 {
		t.Errorf("EachWithHandle values = %v", values)
	}
	if handles[0] != h1 || handles[1] != h3 {
		t.Errorf("EachWithHandle handles = %v", handles)
	}
	if a.AliveCount() != 2 || a.Cap() != 3 {
		t.Errorf("AliveCount = %d, Cap = %d", a.AliveCount(), a.Cap())
	}
}
