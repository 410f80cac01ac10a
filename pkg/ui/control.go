package ui

import (
	"github.com/lichnak/rg3d/pkg/arena"
	"github.com/lichnak/rg3d/pkg/draw"
	"github.com/lichnak/rg3d/pkg/graphics"
)

// Control is the contract every node variant implements. Embed
// ControlBase to inherit the default behaviors and override only what
// the variant needs.
type Control interface {
	// Widget exposes the embedded base state.
	Widget() *Widget

	// MeasureOverride computes the variant's desired content size given
	// the size available to children. Implementations must measure
	// their children through ui.MeasureNode.
	MeasureOverride(ui *UserInterface, availableSize graphics.Size) graphics.Size

	// ArrangeOverride places children given the final content size and
	// returns the size actually used. Implementations must arrange
	// their children through ui.ArrangeNode.
	ArrangeOverride(ui *UserInterface, finalSize graphics.Size) graphics.Size

	// Draw emits the variant's drawing commands.
	Draw(ctx *draw.Context)

	// Update advances per-frame state by dt seconds.
	Update(dt float32)

	// HandleEvent reacts to one routed event. The node is outside the
	// arena for the duration of the call: self must not be borrowed
	// through the interface, it is only for comparing against the
	// event's source/target and for capture calls.
	HandleEvent(self arena.Handle, ui *UserInterface, evt *Event)

	// SetProperty applies a named style property. Unknown names are
	// ignored.
	SetProperty(name string, value any)

	// GetProperty returns a named property value, if exposed.
	GetProperty(name string) (any, bool)
}

// ControlBase supplies the default Control behaviors: measure to the
// componentwise max of children, arrange every child over the full
// final size, draw nothing, ignore events and properties.
type ControlBase struct {
	widget Widget
}

// NewControlBase returns a base with default widget state.
func NewControlBase() ControlBase {
	return ControlBase{widget: NewWidget()}
}

// Widget returns the embedded base state.
func (c *ControlBase) Widget() *Widget {
	return &c.widget
}

// MeasureOverride measures every child against the available size and
// returns the componentwise maximum of their desired sizes.
func (c *ControlBase) MeasureOverride(ui *UserInterface, availableSize graphics.Size) graphics.Size {
	var size graphics.Size
	for _, child := range c.widget.Children {
		ui.MeasureNode(child, availableSize)
		desired := ui.Node(child).Widget().DesiredSize
		if desired.Width > size.Width {
			size.Width = desired.Width
		}
		if desired.Height > size.Height {
			size.Height = desired.Height
		}
	}
	return size
}

// ArrangeOverride arranges every child into a rect covering the full
// final size at the local origin.
func (c *ControlBase) ArrangeOverride(ui *UserInterface, finalSize graphics.Size) graphics.Size {
	finalRect := graphics.RectFromSize(finalSize)
	for _, child := range c.widget.Children {
		ui.ArrangeNode(child, finalRect)
	}
	return finalSize
}

// Draw draws nothing.
func (c *ControlBase) Draw(ctx *draw.Context) {}

// Update does nothing.
func (c *ControlBase) Update(dt float32) {}

// HandleEvent ignores the event.
func (c *ControlBase) HandleEvent(self arena.Handle, ui *UserInterface, evt *Event) {}

// SetProperty ignores the property.
func (c *ControlBase) SetProperty(name string, value any) {}

// GetProperty exposes no properties.
func (c *ControlBase) GetProperty(name string) (any, bool) {
	return nil, false
}

// Canvas is the window-sized root node every other node lives on. It
// uses the default measure and arrange behaviors.
type Canvas struct {
	ControlBase
}

// NewCanvas creates an empty canvas.
func NewCanvas() *Canvas {
	return &Canvas{ControlBase: NewControlBase()}
}
