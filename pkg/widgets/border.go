// Package widgets provides concrete node variants built on the core
// contract: containers that override the default measure/arrange
// behavior and emit drawing commands.
package widgets

import (
	"github.com/lichnak/rg3d/pkg/draw"
	"github.com/lichnak/rg3d/pkg/graphics"
	"github.com/lichnak/rg3d/pkg/ui"
)

// Border draws a filled background with a stroked outline and lays its
// children out inside the stroke.
type Border struct {
	ui.ControlBase
	StrokeThickness graphics.EdgeInsets
	StrokeColor     graphics.Color
	FillColor       graphics.Color
}

// NewBorder creates a border with a one-pixel white stroke.
func NewBorder() *Border {
	return &Border{
		ControlBase:     ui.NewControlBase(),
		StrokeThickness: graphics.EdgeInsetsAll(1),
		StrokeColor:     graphics.White,
		FillColor:       graphics.RGB(0x33, 0x33, 0x33),
	}
}

// MeasureOverride reserves room for the stroke around the largest
// child.
func (b *Border) MeasureOverride(u *ui.UserInterface, availableSize graphics.Size) graphics.Size {
	stroke := graphics.Size{
		Width:  b.StrokeThickness.Horizontal(),
		Height: b.StrokeThickness.Vertical(),
	}
	childAvailable := graphics.Size{
		Width:  availableSize.Width - stroke.Width,
		Height: availableSize.Height - stroke.Height,
	}.ClampNonNegative()

	var size graphics.Size
	for _, child := range b.Widget().Children {
		u.MeasureNode(child, childAvailable)
		desired := u.Node(child).Widget().DesiredSize
		if desired.Width > size.Width {
			size.Width = desired.Width
		}
		if desired.Height > size.Height {
			size.Height = desired.Height
		}
	}
	size.Width += stroke.Width
	size.Height += stroke.Height
	return size
}

// ArrangeOverride places children in the stroke-deflated interior.
func (b *Border) ArrangeOverride(u *ui.UserInterface, finalSize graphics.Size) graphics.Size {
	inner := b.StrokeThickness.Deflate(graphics.RectFromSize(finalSize))
	if inner.IsEmpty() {
		inner = graphics.Rect{}
	}
	for _, child := range b.Widget().Children {
		u.ArrangeNode(child, inner)
	}
	return finalSize
}

// Draw emits the background fill and the four stroke strips.
func (b *Border) Draw(ctx *draw.Context) {
	bounds := b.Widget().ScreenBounds()

	ctx.PushRectFilled(bounds, b.FillColor)
	ctx.Commit(draw.Geometry, draw.NoTexture)

	s := b.StrokeThickness
	ctx.PushRectFilled(graphics.Rect{Left: bounds.Left, Top: bounds.Top, Right: bounds.Right, Bottom: bounds.Top + s.Top}, b.StrokeColor)
	ctx.PushRectFilled(graphics.Rect{Left: bounds.Left, Top: bounds.Bottom - s.Bottom, Right: bounds.Right, Bottom: bounds.Bottom}, b.StrokeColor)
	ctx.PushRectFilled(graphics.Rect{Left: bounds.Left, Top: bounds.Top + s.Top, Right: bounds.Left + s.Left, Bottom: bounds.Bottom - s.Bottom}, b.StrokeColor)
	ctx.PushRectFilled(graphics.Rect{Left: bounds.Right - s.Right, Top: bounds.Top + s.Top, Right: bounds.Right, Bottom: bounds.Bottom - s.Bottom}, b.StrokeColor)
	ctx.Commit(draw.Geometry, draw.NoTexture)
}

// SetProperty accepts "fill_color", "stroke_color" (graphics.Color) and
// "stroke_thickness" (float32 uniform or graphics.EdgeInsets).
func (b *Border) SetProperty(name string, value any) {
	switch name {
	case "fill_color":
		if c, ok := value.(graphics.Color); ok {
			b.FillColor = c
		}
	case "stroke_color":
		if c, ok := value.(graphics.Color); ok {
			b.StrokeColor = c
		}
	case "stroke_thickness":
		switch v := value.(type) {
		case float32:
			b.StrokeThickness = graphics.EdgeInsetsAll(v)
		case graphics.EdgeInsets:
			b.StrokeThickness = v
		}
	}
}

// GetProperty exposes the same names accepted by SetProperty.
func (b *Border) GetProperty(name string) (any, bool) {
	switch name {
	case "fill_color":
		return b.FillColor, true
	case "stroke_color":
		return b.StrokeColor, true
	case "stroke_thickness":
		return b.StrokeThickness, true
	}
	return nil, false
}
