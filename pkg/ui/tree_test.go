package ui_test

import (
	"testing"

	"github.com/lichnak/rg3d/pkg/arena"
	"github.com/lichnak/rg3d/pkg/ui"
	"github.com/lichnak/rg3d/pkg/uitest"
)

func named(name string) *ui.Canvas {
	node := ui.NewCanvas()
	node.Widget().Name = name
	return node
}

func TestAddNodeLinksUnderRoot(t *testing.T) {
	u := ui.New()
	h := u.AddNode(named("a"))

	if got := u.Node(h).Widget().Parent; got != u.Root() {
		t.Errorf("parent = %v, want root %v", got, u.Root())
	}
	if !u.IsNodeDirectChildOf(h, u.Root()) {
		t.Error("root must list the new node as a direct child")
	}
}

func TestAddNodeRelinksPreAttachedChildren(t *testing.T) {
	u := ui.New()
	childA := u.AddNode(named("a"))
	childB := u.AddNode(named("b"))

	parent := named("parent")
	parent.Widget().Children = []arena.Handle{childA, childB}
	h := u.AddNode(parent)

	for _, child := range []arena.Handle{childA, childB} {
		if got := u.Node(child).Widget().Parent; got != h {
			t.Errorf("child parent = %v, want %v", got, h)
		}
		if u.IsNodeDirectChildOf(child, u.Root()) {
			t.Error("relinked child must leave the root's child list")
		}
	}
	if got := len(u.Node(h).Widget().Children); got != 2 {
		t.Fatalf("parent has %d children, want 2", got)
	}
}

func TestLinkNodesReparents(t *testing.T) {
	u := ui.New()
	a := u.AddNode(named("a"))
	b := u.AddNode(named("b"))

	u.LinkNodes(b, a)

	if got := u.Node(b).Widget().Parent; got != a {
		t.Errorf("parent = %v, want %v", got, a)
	}
	if u.IsNodeDirectChildOf(b, u.Root()) {
		t.Error("old parent must no longer list the node")
	}
	if !u.IsNodeChildOf(b, u.Root()) {
		t.Error("node must still be a descendant of the root")
	}
}

func TestUnlinkNodeDetachesBothSides(t *testing.T) {
	u := ui.New()
	a := u.AddNode(named("a"))

	u.UnlinkNode(a)

	if got := u.Node(a).Widget().Parent; got.IsSome() {
		t.Errorf("parent = %v, want none", got)
	}
	if u.IsNodeDirectChildOf(a, u.Root()) {
		t.Error("root must not list a detached node")
	}
}

func TestRemoveNodeFreesSubtree(t *testing.T) {
	u := ui.New()
	a := u.AddNode(named("a"))
	b := u.AddNode(named("b"))
	c := u.AddNode(named("c"))
	u.LinkNodes(b, a)
	u.LinkNodes(c, b)

	u.RemoveNode(a)

	for _, h := range []arena.Handle{a, b, c} {
		if u.IsValidHandle(h) {
			t.Errorf("handle %v still valid after subtree removal", h)
		}
	}
	if got := len(u.Node(u.Root()).Widget().Children); got != 0 {
		t.Errorf("root has %d children, want 0", got)
	}
	// The root alone remains alive, so new nodes reuse freed slots under
	// fresh generations.
	d := u.AddNode(named("d"))
	if !u.IsValidHandle(d) || u.IsValidHandle(a) {
		t.Error("reused slot must invalidate the old handle")
	}
}

func TestRemoveNodeClearsRoutingState(t *testing.T) {
	tester := uitest.New(t)
	u := tester.UI()

	block := u.AddNode(newBlock(10, 10, 100, 100))
	tester.Pump()
	tester.MoveMouse(50, 50)
	u.SetKeyboardFocus(block)
	if !u.CaptureMouse(block) {
		t.Fatal("capture failed")
	}

	u.RemoveNode(block)

	if u.PickedNode().IsSome() {
		t.Error("picked node must be cleared")
	}
	if u.KeyboardFocusNode().IsSome() {
		t.Error("keyboard focus must be cleared")
	}
	// A fresh node can take the capture, so the old one no longer holds
	// it.
	other := u.AddNode(newBlock(10, 10, 100, 100))
	if !u.CaptureMouse(other) {
		t.Error("capture must be free after the holder was removed")
	}
}

func TestFindByName(t *testing.T) {
	u := ui.New()
	a := u.AddNode(named("a"))
	b := u.AddNode(named("b"))
	u.LinkNodes(b, a)

	if got := u.FindByNameDown(u.Root(), "b"); got != b {
		t.Errorf("FindByNameDown = %v, want %v", got, b)
	}
	if got := u.FindByNameDown(u.Root(), "zzz"); got.IsSome() {
		t.Errorf("FindByNameDown on absent name = %v, want none", got)
	}
	if got := u.FindByNameUp(b, "a"); got != a {
		t.Errorf("FindByNameUp = %v, want %v", got, a)
	}
	if got := u.FindByNameUp(b, "zzz"); got.IsSome() {
		t.Errorf("FindByNameUp on absent name = %v, want none", got)
	}

	if got := u.BorrowByNameDown(u.Root(), "a").Widget().Name; got != "a" {
		t.Errorf("BorrowByNameDown name = %q, want \"a\"", got)
	}
}
