package ui

import (
	"github.com/lichnak/rg3d/pkg/arena"
	"github.com/lichnak/rg3d/pkg/graphics"
)

// The layout engine runs two passes over the tree each frame. Measure
// walks bottom-up computing each node's desired size from the size its
// parent can offer; arrange walks top-down assigning final sizes and
// local positions. Explicit width/height and min/max clamps are applied
// around the variant-specific override at each step.
//
// Numeric conventions: an explicit size is active only when positive
// (NaN and zero behave as unset), min/max are hard per-axis clamps, and
// offered/desired sizes are never negative.

// MeasureNode runs the measure pass for one node. Nodes that are not
// locally visible get a zero desired size and their children are not
// measured.
func (ui *UserInterface) MeasureNode(handle arena.Handle, availableSize graphics.Size) {
	node := ui.nodes.Borrow(handle)
	w := node.Widget()

	margin := graphics.Size{
		Width:  w.Margin.Horizontal(),
		Height: w.Margin.Vertical(),
	}

	sizeForChild := graphics.Size{
		Width:  clampAxis(axisOrFallback(w.Width, availableSize.Width-margin.Width), w.MinSize.Width, w.MaxSize.Width),
		Height: clampAxis(axisOrFallback(w.Height, availableSize.Height-margin.Height), w.MinSize.Height, w.MaxSize.Height),
	}

	if w.Visibility != graphics.Visible {
		w.DesiredSize = graphics.Size{}
		w.MeasureValid = true
		return
	}

	desired := node.MeasureOverride(ui, sizeForChild)

	// Explicit sizes override the computed axes, then the min/max clamp
	// applies to the result.
	if w.HasExplicitWidth() {
		desired.Width = w.Width
	}
	if w.HasExplicitHeight() {
		desired.Height = w.Height
	}

	desired.Width = clampAxis(desired.Width, w.MinSize.Width, w.MaxSize.Width)
	desired.Height = clampAxis(desired.Height, w.MinSize.Height, w.MaxSize.Height)

	desired.Width += margin.Width
	desired.Height += margin.Height

	// The desired size must not exceed what the parent can offer.
	if desired.Width > availableSize.Width {
		desired.Width = availableSize.Width
	}
	if desired.Height > availableSize.Height {
		desired.Height = availableSize.Height
	}

	w.DesiredSize = desired
	w.MeasureValid = true
}

// ArrangeNode runs the arrange pass for one node, placing it inside
// finalRect. Nodes that are not locally visible are skipped entirely.
func (ui *UserInterface) ArrangeNode(handle arena.Handle, finalRect graphics.Rect) {
	node := ui.nodes.Borrow(handle)
	w := node.Widget()

	if w.Visibility != graphics.Visible {
		return
	}

	marginX := w.Margin.Horizontal()
	marginY := w.Margin.Vertical()

	originX := finalRect.Left + w.Margin.Left
	originY := finalRect.Top + w.Margin.Top

	size := graphics.Size{
		Width:  max(0, finalRect.Width()-marginX),
		Height: max(0, finalRect.Height()-marginY),
	}
	sizeWithoutMargin := size

	// Non-stretched axes shrink to the desired size: the content does
	// not consume the full offered span.
	if w.HorizontalAlignment != graphics.HorizontalStretch {
		size.Width = min(size.Width, w.DesiredSize.Width-marginX)
	}
	if w.VerticalAlignment != graphics.VerticalStretch {
		size.Height = min(size.Height, w.DesiredSize.Height-marginY)
	}

	if w.Width > 0 {
		size.Width = w.Width
	}
	if w.Height > 0 {
		size.Height = w.Height
	}

	size = node.ArrangeOverride(ui, size)

	if size.Width > finalRect.Width() {
		size.Width = finalRect.Width()
	}
	if size.Height > finalRect.Height() {
		size.Height = finalRect.Height()
	}

	switch w.HorizontalAlignment {
	case graphics.HorizontalCenter, graphics.HorizontalStretch:
		originX += (sizeWithoutMargin.Width - size.Width) * 0.5
	case graphics.HorizontalRight:
		originX += sizeWithoutMargin.Width - size.Width
	}

	switch w.VerticalAlignment {
	case graphics.VerticalCenter, graphics.VerticalStretch:
		originY += (sizeWithoutMargin.Height - size.Height) * 0.5
	case graphics.VerticalBottom:
		originY += sizeWithoutMargin.Height - size.Height
	}

	w.ActualSize = size
	w.ActualLocalPosition = graphics.Offset{X: originX, Y: originY}
	w.ArrangeValid = true
}

// axisOrFallback returns the explicit size when it is set and positive,
// otherwise the fallback clamped to be non-negative.
func axisOrFallback(explicit, fallback float32) float32 {
	if explicit > 0 {
		return explicit
	}
	return max(0, fallback)
}

// clampAxis applies the min/max clamp, min taking precedence.
func clampAxis(v, lo, hi float32) float32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
