package ui_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lichnak/rg3d/pkg/graphics"
	"github.com/lichnak/rg3d/pkg/ui"
	"github.com/lichnak/rg3d/pkg/uitest"
)

func TestCenteredChildScenario(t *testing.T) {
	tt := uitest.New(t)
	u := tt.UI()

	child := ui.NewCanvas()
	child.Widget().Width = 100
	child.Widget().Height = 50
	child.Widget().HorizontalAlignment = graphics.HorizontalCenter
	child.Widget().VerticalAlignment = graphics.VerticalCenter
	handle := u.AddNode(child)

	tt.Pump()

	w := u.Node(handle).Widget()
	if w.ActualSize != (graphics.Size{Width: 100, Height: 50}) {
		t.Errorf("actual size = %+v, want 100x50", w.ActualSize)
	}
	if w.ActualLocalPosition != (graphics.Offset{X: 350, Y: 275}) {
		t.Errorf("actual position = %+v, want (350, 275)", w.ActualLocalPosition)
	}
}

func TestStretchConsumesOfferedSpanMinusMargin(t *testing.T) {
	tt := uitest.New(t)
	u := tt.UI()

	child := ui.NewCanvas()
	child.Widget().Margin = graphics.EdgeInsetsAll(10)
	handle := u.AddNode(child)

	tt.Pump()

	w := u.Node(handle).Widget()
	want := graphics.Size{Width: 780, Height: 580}
	if w.ActualSize != want {
		t.Errorf("stretched size = %+v, want %+v", w.ActualSize, want)
	}
	if w.ActualLocalPosition != (graphics.Offset{X: 10, Y: 10}) {
		t.Errorf("stretched position = %+v, want (10, 10)", w.ActualLocalPosition)
	}
}

func TestNonStretchShrinksToDesiredSize(t *testing.T) {
	tt := uitest.New(t)
	u := tt.UI()

	// A right/bottom-aligned child with an explicit size lands flush
	// against the far corner.
	child := ui.NewCanvas()
	child.Widget().Width = 60
	child.Widget().Height = 40
	child.Widget().HorizontalAlignment = graphics.HorizontalRight
	child.Widget().VerticalAlignment = graphics.VerticalBottom
	handle := u.AddNode(child)

	tt.Pump()

	w := u.Node(handle).Widget()
	if w.ActualLocalPosition != (graphics.Offset{X: 740, Y: 560}) {
		t.Errorf("position = %+v, want (740, 560)", w.ActualLocalPosition)
	}
}

func TestCollapsedChildTakesNoSpace(t *testing.T) {
	tt := uitest.New(t)
	u := tt.UI()

	parent := ui.NewCanvas()
	parentHandle := u.AddNode(parent)

	child := ui.NewCanvas()
	child.Widget().Width = 100
	child.Widget().Height = 100
	child.Widget().Visibility = graphics.Collapsed
	childHandle := u.AddNode(child)
	u.LinkNodes(childHandle, parentHandle)

	tt.Pump()

	w := u.Node(childHandle).Widget()
	if w.DesiredSize != (graphics.Size{}) {
		t.Errorf("collapsed desired size = %+v, want zero", w.DesiredSize)
	}
	if w.ActualSize != (graphics.Size{}) {
		t.Errorf("collapsed actual size = %+v, want zero", w.ActualSize)
	}
	if w.GlobalVisibility {
		t.Error("collapsed node must not be globally visible")
	}
}

func TestHiddenNodeExcludedFromLayout(t *testing.T) {
	tt := uitest.New(t)
	u := tt.UI()

	child := ui.NewCanvas()
	child.Widget().Width = 100
	child.Widget().Height = 100
	child.Widget().Visibility = graphics.Hidden
	handle := u.AddNode(child)

	tt.Pump()

	w := u.Node(handle).Widget()
	// Any non-Visible local visibility excludes the node from both
	// layout passes, exactly like Collapsed.
	if w.DesiredSize != (graphics.Size{}) {
		t.Errorf("hidden desired size = %+v, want zero", w.DesiredSize)
	}
	if w.ActualSize != (graphics.Size{}) {
		t.Errorf("hidden node was arranged (actual size %+v)", w.ActualSize)
	}
	if w.ArrangeValid {
		t.Error("hidden node must not record a completed arrange")
	}
	if w.GlobalVisibility {
		t.Error("hidden node must not be globally visible")
	}
	if len(w.CommandIndices) != 0 {
		t.Errorf("hidden node recorded %d commands", len(w.CommandIndices))
	}
}

func TestMinMaxClampWithMinPrecedence(t *testing.T) {
	tt := uitest.New(t)
	u := tt.UI()

	child := ui.NewCanvas()
	child.Widget().Width = 500
	child.Widget().Height = 20
	child.Widget().MaxSize = graphics.Size{Width: 200, Height: 600}
	child.Widget().MinSize = graphics.Size{Width: 0, Height: 50}
	child.Widget().HorizontalAlignment = graphics.HorizontalLeft
	child.Widget().VerticalAlignment = graphics.VerticalTop
	handle := u.AddNode(child)

	tt.Pump()

	w := u.Node(handle).Widget()
	if w.DesiredSize.Width != 200 {
		t.Errorf("desired width = %v, want max clamp 200", w.DesiredSize.Width)
	}
	if w.DesiredSize.Height != 50 {
		t.Errorf("desired height = %v, want min clamp 50", w.DesiredSize.Height)
	}
}

func TestDesiredSizeNeverExceedsAvailable(t *testing.T) {
	tt := uitest.New(t)
	tt.SetScreenSize(graphics.Size{Width: 300, Height: 200})
	u := tt.UI()

	child := ui.NewCanvas()
	child.Widget().Width = 1000
	child.Widget().Height = 1000
	handle := u.AddNode(child)

	tt.Pump()

	w := u.Node(handle).Widget()
	if w.DesiredSize != (graphics.Size{Width: 300, Height: 200}) {
		t.Errorf("desired size = %+v, want clamped to screen", w.DesiredSize)
	}
}

type layoutSnapshot struct {
	Desired  graphics.Size
	Actual   graphics.Size
	Local    graphics.Offset
	Screen   graphics.Offset
	Visible  bool
	Measured bool
	Arranged bool
}

func snapshotTree(u *ui.UserInterface) map[string]layoutSnapshot {
	snap := make(map[string]layoutSnapshot)
	u.FindByCriteriaDown(u.Root(), func(node ui.Control) bool {
		w := node.Widget()
		snap[w.Name] = layoutSnapshot{
			Desired:  w.DesiredSize,
			Actual:   w.ActualSize,
			Local:    w.ActualLocalPosition,
			Screen:   w.ScreenPosition,
			Visible:  w.GlobalVisibility,
			Measured: w.MeasureValid,
			Arranged: w.ArrangeValid,
		}
		return false
	})
	return snap
}

func TestLayoutIdempotence(t *testing.T) {
	tt := uitest.New(t)
	u := tt.UI()

	outer := ui.NewCanvas()
	outer.Widget().Name = "outer"
	outer.Widget().Margin = graphics.EdgeInsetsAll(5)
	outerHandle := u.AddNode(outer)

	inner := ui.NewCanvas()
	inner.Widget().Name = "inner"
	inner.Widget().Width = 120
	inner.Widget().Height = 80
	inner.Widget().HorizontalAlignment = graphics.HorizontalCenter
	inner.Widget().VerticalAlignment = graphics.VerticalCenter
	u.LinkNodes(u.AddNode(inner), outerHandle)

	tt.Pump()
	if w := tt.Borrow("inner").Widget(); w.ActualSize != (graphics.Size{Width: 120, Height: 80}) {
		t.Fatalf("inner size = %+v, want 120x80", w.ActualSize)
	}
	first := snapshotTree(u)
	tt.Pump()
	second := snapshotTree(u)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("layout is not idempotent (-first +second):\n%s", diff)
	}
}

func TestValidityFlagsRecordCompletion(t *testing.T) {
	tt := uitest.New(t)
	u := tt.UI()

	child := ui.NewCanvas()
	handle := u.AddNode(child)

	w := u.Node(handle).Widget()
	if w.MeasureValid || w.ArrangeValid {
		t.Error("fresh node must not claim completed passes")
	}

	tt.Pump()
	if !w.MeasureValid || !w.ArrangeValid {
		t.Error("pumped node must record completed measure and arrange")
	}
}
