package widgets

import (
	"math"

	"github.com/lichnak/rg3d/pkg/graphics"
	"github.com/lichnak/rg3d/pkg/ui"
)

// Orientation selects the main axis of a StackPanel.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

// StackPanel lays children out sequentially along one axis, giving each
// its desired extent on the main axis and the full panel span on the
// cross axis.
type StackPanel struct {
	ui.ControlBase
	Orientation Orientation
}

// NewStackPanel creates a vertical stack panel.
func NewStackPanel() *StackPanel {
	return &StackPanel{ControlBase: ui.NewControlBase()}
}

// MeasureOverride measures children with an unbounded main axis and
// sums their extents: the panel wants the sum along the main axis and
// the maximum across it.
func (p *StackPanel) MeasureOverride(u *ui.UserInterface, availableSize graphics.Size) graphics.Size {
	inf := float32(math.Inf(1))
	childAvailable := availableSize
	if p.Orientation == Vertical {
		childAvailable.Height = inf
	} else {
		childAvailable.Width = inf
	}

	var size graphics.Size
	for _, child := range p.Widget().Children {
		u.MeasureNode(child, childAvailable)
		desired := u.Node(child).Widget().DesiredSize
		if p.Orientation == Vertical {
			size.Height += desired.Height
			if desired.Width > size.Width {
				size.Width = desired.Width
			}
		} else {
			size.Width += desired.Width
			if desired.Height > size.Height {
				size.Height = desired.Height
			}
		}
	}
	return size
}

// ArrangeOverride places children one after another along the main
// axis.
func (p *StackPanel) ArrangeOverride(u *ui.UserInterface, finalSize graphics.Size) graphics.Size {
	var cursor float32
	for _, child := range p.Widget().Children {
		desired := u.Node(child).Widget().DesiredSize
		var rect graphics.Rect
		if p.Orientation == Vertical {
			rect = graphics.RectFromLTWH(0, cursor, finalSize.Width, desired.Height)
			cursor += desired.Height
		} else {
			rect = graphics.RectFromLTWH(cursor, 0, desired.Width, finalSize.Height)
			cursor += desired.Width
		}
		u.ArrangeNode(child, rect)
	}

	if p.Orientation == Vertical {
		return graphics.Size{Width: finalSize.Width, Height: max(cursor, finalSize.Height)}
	}
	return graphics.Size{Width: max(cursor, finalSize.Width), Height: finalSize.Height}
}

// SetProperty accepts "orientation" ("vertical" or "horizontal").
func (p *StackPanel) SetProperty(name string, value any) {
	if name != "orientation" {
		return
	}
	switch value {
	case "vertical":
		p.Orientation = Vertical
	case "horizontal":
		p.Orientation = Horizontal
	}
}

// GetProperty exposes "orientation".
func (p *StackPanel) GetProperty(name string) (any, bool) {
	if name != "orientation" {
		return nil, false
	}
	if p.Orientation == Vertical {
		return "vertical", true
	}
	return "horizontal", true
}
