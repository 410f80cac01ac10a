// Package graphics provides the geometric primitives shared by layout,
// drawing and hit testing: points, sizes, rectangles, edge insets,
// alignment and visibility enums, and ARGB colors.
package graphics

import "math"

// Offset represents a 2D point or vector in UI pixel coordinates.
type Offset struct {
	X float32
	Y float32
}

// Add returns the componentwise sum of two offsets.
func (o Offset) Add(other Offset) Offset {
	return Offset{X: o.X + other.X, Y: o.Y + other.Y}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float32
	Height float32
}

// InfiniteSize returns a size that is unbounded on both axes.
func InfiniteSize() Size {
	inf := float32(math.Inf(1))
	return Size{Width: inf, Height: inf}
}

// ClampNonNegative replaces negative components with zero.
func (s Size) ClampNonNegative() Size {
	if s.Width < 0 {
		s.Width = 0
	}
	if s.Height < 0 {
		s.Height = 0
	}
	return s
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float32) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// RectFromSize constructs a Rect at the origin covering the given size.
func RectFromSize(size Size) Rect {
	return Rect{Right: size.Width, Bottom: size.Height}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float32 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float32 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() Offset {
	return Offset{X: r.Left, Y: r.Top}
}

// Contains reports whether the point lies inside the rectangle.
// Points on the left/top edge are inside, right/bottom are outside.
func (r Rect) Contains(pt Offset) bool {
	return pt.X >= r.Left && pt.X < r.Right && pt.Y >= r.Top && pt.Y < r.Bottom
}

// Inflate returns the rectangle grown by dx and dy on every side.
func (r Rect) Inflate(dx, dy float32) Rect {
	return Rect{
		Left:   r.Left - dx,
		Top:    r.Top - dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float32) Rect {
	return Rect{
		Left:   r.Left + dx,
		Top:    r.Top + dy,
		Right:  r.Right + dx,
		Bottom: r.Bottom + dy,
	}
}

// Intersect returns the intersection of two rectangles.
// Returns empty rect if they don't overlap.
func (r Rect) Intersect(other Rect) Rect {
	left := max(r.Left, other.Left)
	top := max(r.Top, other.Top)
	right := min(r.Right, other.Right)
	bottom := min(r.Bottom, other.Bottom)
	if left >= right || top >= bottom {
		return Rect{}
	}
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// EdgeInsets represents per-side spacing around a rectangle, used for
// widget margins and border strokes.
type EdgeInsets struct {
	Left   float32
	Top    float32
	Right  float32
	Bottom float32
}

// EdgeInsetsAll constructs uniform insets.
func EdgeInsetsAll(v float32) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

// EdgeInsetsOnly constructs insets with individual side values.
func EdgeInsetsOnly(left, top, right, bottom float32) EdgeInsets {
	return EdgeInsets{Left: left, Top: top, Right: right, Bottom: bottom}
}

// EdgeInsetsSymmetric constructs insets with shared horizontal and
// vertical values.
func EdgeInsetsSymmetric(horizontal, vertical float32) EdgeInsets {
	return EdgeInsets{Left: horizontal, Top: vertical, Right: horizontal, Bottom: vertical}
}

// Horizontal returns the combined left and right insets.
func (e EdgeInsets) Horizontal() float32 {
	return e.Left + e.Right
}

// Vertical returns the combined top and bottom insets.
func (e EdgeInsets) Vertical() float32 {
	return e.Top + e.Bottom
}

// Deflate shrinks the rectangle inward by the insets.
func (e EdgeInsets) Deflate(r Rect) Rect {
	return Rect{
		Left:   r.Left + e.Left,
		Top:    r.Top + e.Top,
		Right:  r.Right - e.Right,
		Bottom: r.Bottom - e.Bottom,
	}
}

// HorizontalAlignment controls horizontal placement of a widget inside
// the space its parent offers during arrange.
type HorizontalAlignment uint8

const (
	HorizontalStretch HorizontalAlignment = iota
	HorizontalLeft
	HorizontalCenter
	HorizontalRight
)

// VerticalAlignment controls vertical placement of a widget inside the
// space its parent offers during arrange.
type VerticalAlignment uint8

const (
	VerticalStretch VerticalAlignment = iota
	VerticalTop
	VerticalCenter
	VerticalBottom
)

// Visibility is the local visibility state of a widget.
type Visibility uint8

const (
	// Visible widgets take part in layout and drawing.
	Visible Visibility = iota
	// Collapsed widgets take no layout space and are invisible.
	Collapsed
	// Hidden widgets are invisible and, like collapsed ones, excluded
	// from the layout passes.
	Hidden
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Collapsed:
		return "collapsed"
	case Hidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// VisibilityFromBool maps true to Visible and false to Collapsed.
func VisibilityFromBool(visible bool) Visibility {
	if visible {
		return Visible
	}
	return Collapsed
}
