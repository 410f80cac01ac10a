package ui

import (
	"math"

	"github.com/lichnak/rg3d/pkg/arena"
	"github.com/lichnak/rg3d/pkg/graphics"
)

// Widget is the base state embedded in every node variant: identity and
// tree links, layout inputs and outputs, visibility, interaction flags,
// and the per-frame drawing-command record.
type Widget struct {
	// Name identifies the widget for tree searches. Not unique.
	Name string
	// Handle is the widget's own arena handle, set when the node is
	// added to the interface.
	Handle arena.Handle
	// Parent is the owning node; None only for the root canvas.
	Parent arena.Handle
	// Children in traversal order. The order is meaningful: later
	// children draw on top and win hit-test ties.
	Children []arena.Handle

	// Width and Height are explicit sizes; NaN means unset.
	Width  float32
	Height float32
	// MinSize and MaxSize are hard clamps applied per axis.
	MinSize graphics.Size
	MaxSize graphics.Size
	// Margin is outer spacing around the widget.
	Margin graphics.EdgeInsets

	HorizontalAlignment graphics.HorizontalAlignment
	VerticalAlignment   graphics.VerticalAlignment

	// DesiredSize is the measure pass output, margins included.
	DesiredSize graphics.Size
	// ActualSize and ActualLocalPosition are the arrange pass outputs,
	// meaningful only after arrange has run for the current frame.
	ActualSize          graphics.Size
	ActualLocalPosition graphics.Offset
	// ScreenPosition is the absolute position computed by the
	// post-arrange propagation pass.
	ScreenPosition graphics.Offset

	// Visibility is the widget's local visibility.
	Visibility graphics.Visibility
	// GlobalVisibility is local visibility intersected with every
	// ancestor's, refreshed by the propagation pass.
	GlobalVisibility bool

	// IsHitTestVisible gates picking for this widget and its whole
	// subtree.
	IsHitTestVisible bool
	// IsMouseOver tracks enter/leave transitions for the router.
	IsMouseOver bool

	// MeasureValid and ArrangeValid record pass completion for the
	// current frame.
	MeasureValid bool
	ArrangeValid bool

	// CommandIndices are the drawing-context command indices emitted by
	// this widget (not its descendants) during the last draw pass.
	CommandIndices []int

	// events queues node-originated events until the router drains and
	// stamps them.
	events []Event

	// style is the last applied style, kept for cascading re-application.
	style *Style
}

// NewWidget returns a widget with layout defaults: unset explicit size,
// unbounded max size, visible, hit-test eligible.
func NewWidget() Widget {
	nan := float32(math.NaN())
	return Widget{
		Width:            nan,
		Height:           nan,
		MaxSize:          graphics.InfiniteSize(),
		Visibility:       graphics.Visible,
		GlobalVisibility: true,
		IsHitTestVisible: true,
	}
}

// HasExplicitWidth reports whether an explicit width is set.
func (w *Widget) HasExplicitWidth() bool {
	return !math.IsNaN(float64(w.Width))
}

// HasExplicitHeight reports whether an explicit height is set.
func (w *Widget) HasExplicitHeight() bool {
	return !math.IsNaN(float64(w.Height))
}

// ClearWidth unsets the explicit width.
func (w *Widget) ClearWidth() {
	w.Width = float32(math.NaN())
}

// ClearHeight unsets the explicit height.
func (w *Widget) ClearHeight() {
	w.Height = float32(math.NaN())
}

// ScreenBounds returns the widget's rectangle in screen space.
func (w *Widget) ScreenBounds() graphics.Rect {
	return graphics.RectFromLTWH(w.ScreenPosition.X, w.ScreenPosition.Y,
		w.ActualSize.Width, w.ActualSize.Height)
}

// PushEvent queues a node-originated event. The router drains the queue
// during the next poll and stamps the event with this widget's handle as
// source.
func (w *Widget) PushEvent(evt Event) {
	w.events = append(w.events, evt)
}

// popEvent removes and returns the oldest queued event.
func (w *Widget) popEvent() (Event, bool) {
	if len(w.events) == 0 {
		return Event{}, false
	}
	evt := w.events[0]
	w.events = w.events[1:]
	return evt, true
}

// Style returns the last applied style, or nil.
func (w *Widget) Style() *Style {
	return w.style
}

// HasDescendant reports whether handle appears anywhere below this
// widget in the tree.
func (w *Widget) HasDescendant(handle arena.Handle, ui *UserInterface) bool {
	for _, child := range w.Children {
		if child == handle {
			return true
		}
		if ui.Node(child).Widget().HasDescendant(handle, ui) {
			return true
		}
	}
	return false
}
