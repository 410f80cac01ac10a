// Package draw records the drawing commands emitted during the UI draw
// pass. Commands are triangle ranges over a shared vertex/index buffer,
// tagged Geometry or Clip; a renderer replays them in order, and hit
// testing queries per-command point containment after the fact.
package draw

import (
	"math"

	"github.com/lichnak/rg3d/pkg/errors"
	"github.com/lichnak/rg3d/pkg/graphics"
)

// CommandKind tags a command as visible geometry or a clipping region.
type CommandKind uint8

const (
	// Geometry commands produce visible pixels and participate in
	// hit testing.
	Geometry CommandKind = iota
	// Clip commands define the clipping region for subsequent commands
	// at deeper nesting levels.
	Clip
)

// Texture is an opaque texture reference carried by a command. The core
// never interprets it; zero means untextured.
type Texture uint32

// NoTexture marks a command that samples no texture.
const NoTexture Texture = 0

// Vertex is a single point of command geometry.
type Vertex struct {
	Pos      graphics.Offset
	TexCoord graphics.Offset
	Color    graphics.Color
}

// Command is a contiguous triangle range in the context's index buffer.
type Command struct {
	Kind          CommandKind
	Texture       Texture
	StartTriangle int
	TriangleCount int
	// Nesting is the tree depth the command was emitted at, used by
	// renderers for stencil-based clip layering.
	Nesting uint8
}

// Context accumulates vertices, triangles and commands for one frame.
//
// Primitive builders (PushRectFilled, PushLine, ...) append triangles to
// a pending range; Commit seals the pending range into a Command. The
// clip stack mirrors the draw traversal: CommitClipRect on entering a
// node, RevertClipGeom after its subtree.
type Context struct {
	vertices []Vertex
	indices  []uint32
	commands []Command

	clipStack    []int // command indices
	pendingStart int   // first pending triangle
	nesting      uint8
}

// NewContext creates an empty drawing context.
func NewContext() *Context {
	return &Context{}
}

// Clear drops all recorded commands, geometry and clip state.
func (c *Context) Clear() {
	c.vertices = c.vertices[:0]
	c.indices = c.indices[:0]
	c.commands = c.commands[:0]
	c.clipStack = c.clipStack[:0]
	c.pendingStart = 0
	c.nesting = 0
}

// SetNesting sets the tree depth recorded on subsequently committed
// commands.
func (c *Context) SetNesting(nesting uint8) {
	c.nesting = nesting
}

// Commands returns the committed command list.
func (c *Context) Commands() []Command {
	return c.commands
}

// CommandCount returns the number of committed commands.
func (c *Context) CommandCount() int {
	return len(c.commands)
}

// Vertices returns the shared vertex buffer.
func (c *Context) Vertices() []Vertex {
	return c.vertices
}

// Indices returns the shared triangle index buffer.
func (c *Context) Indices() []uint32 {
	return c.indices
}

func (c *Context) triangleCount() int {
	return len(c.indices) / 3
}

func (c *Context) pushVertex(pos, texCoord graphics.Offset, color graphics.Color) uint32 {
	c.vertices = append(c.vertices, Vertex{Pos: pos, TexCoord: texCoord, Color: color})
	return uint32(len(c.vertices) - 1)
}

func (c *Context) pushTriangle(a, b, d uint32) {
	c.indices = append(c.indices, a, b, d)
}

// PushRectFilled appends two triangles covering rect to the pending
// command.
func (c *Context) PushRectFilled(rect graphics.Rect, color graphics.Color) {
	lt := c.pushVertex(graphics.Offset{X: rect.Left, Y: rect.Top}, graphics.Offset{}, color)
	rt := c.pushVertex(graphics.Offset{X: rect.Right, Y: rect.Top}, graphics.Offset{X: 1}, color)
	rb := c.pushVertex(graphics.Offset{X: rect.Right, Y: rect.Bottom}, graphics.Offset{X: 1, Y: 1}, color)
	lb := c.pushVertex(graphics.Offset{X: rect.Left, Y: rect.Bottom}, graphics.Offset{Y: 1}, color)
	c.pushTriangle(lt, rt, rb)
	c.pushTriangle(lt, rb, lb)
}

// PushRect appends a rectangular outline of the given stroke thickness
// to the pending command, built from four filled strips.
func (c *Context) PushRect(rect graphics.Rect, thickness float32, color graphics.Color) {
	// Top and bottom strips span the full width; left and right strips
	// fill the remaining height so corners are not double-covered.
	c.PushRectFilled(graphics.Rect{Left: rect.Left, Top: rect.Top, Right: rect.Right, Bottom: rect.Top + thickness}, color)
	c.PushRectFilled(graphics.Rect{Left: rect.Left, Top: rect.Bottom - thickness, Right: rect.Right, Bottom: rect.Bottom}, color)
	c.PushRectFilled(graphics.Rect{Left: rect.Left, Top: rect.Top + thickness, Right: rect.Left + thickness, Bottom: rect.Bottom - thickness}, color)
	c.PushRectFilled(graphics.Rect{Left: rect.Right - thickness, Top: rect.Top + thickness, Right: rect.Right, Bottom: rect.Bottom - thickness}, color)
}

// PushLine appends a thickness-wide quad from a to b to the pending
// command.
func (c *Context) PushLine(a, b graphics.Offset, thickness float32, color graphics.Color) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := float32(math.Sqrt(float64(dx*dx + dy*dy)))
	if length == 0 {
		return
	}
	// Perpendicular half-thickness offset.
	nx := -dy / length * thickness * 0.5
	ny := dx / length * thickness * 0.5

	v0 := c.pushVertex(graphics.Offset{X: a.X + nx, Y: a.Y + ny}, graphics.Offset{}, color)
	v1 := c.pushVertex(graphics.Offset{X: b.X + nx, Y: b.Y + ny}, graphics.Offset{X: 1}, color)
	v2 := c.pushVertex(graphics.Offset{X: b.X - nx, Y: b.Y - ny}, graphics.Offset{X: 1, Y: 1}, color)
	v3 := c.pushVertex(graphics.Offset{X: a.X - nx, Y: a.Y - ny}, graphics.Offset{Y: 1}, color)
	c.pushTriangle(v0, v1, v2)
	c.pushTriangle(v0, v2, v3)
}

// Commit seals the pending triangles into a command and returns its
// index. Committing with no pending triangles records an empty command.
func (c *Context) Commit(kind CommandKind, texture Texture) int {
	total := c.triangleCount()
	cmd := Command{
		Kind:          kind,
		Texture:       texture,
		StartTriangle: c.pendingStart,
		TriangleCount: total - c.pendingStart,
		Nesting:       c.nesting,
	}
	c.pendingStart = total
	c.commands = append(c.commands, cmd)
	return len(c.commands) - 1
}

// CommitClipRect commits rect as a Clip command, makes it the active
// clip region and returns its command index.
func (c *Context) CommitClipRect(rect graphics.Rect) int {
	c.PushRectFilled(rect, graphics.White)
	index := c.Commit(Clip, NoTexture)
	c.clipStack = append(c.clipStack, index)
	return index
}

// RevertClipGeom pops the active clip region, restoring the parent's.
// The parent clip geometry is re-committed so a sequential renderer sees
// the restored state. Popping an empty stack is a contract violation.
func (c *Context) RevertClipGeom() {
	if len(c.clipStack) == 0 {
		errors.Fatal("draw.RevertClipGeom", errors.KindDraw, "clip stack is empty")
	}
	c.clipStack = c.clipStack[:len(c.clipStack)-1]
	if len(c.clipStack) > 0 {
		// Repeat the parent clip command at the current buffer position;
		// the copy shares the original triangle range and belongs to no
		// node's command index record.
		parent := c.commands[c.clipStack[len(c.clipStack)-1]]
		c.commands = append(c.commands, parent)
	}
}

// IsCommandContainsPoint reports whether pt falls inside any triangle of
// the command.
func (c *Context) IsCommandContainsPoint(cmd Command, pt graphics.Offset) bool {
	for tri := cmd.StartTriangle; tri < cmd.StartTriangle+cmd.TriangleCount; tri++ {
		base := tri * 3
		if base+2 >= len(c.indices) {
			break
		}
		a := c.vertices[c.indices[base]].Pos
		b := c.vertices[c.indices[base+1]].Pos
		d := c.vertices[c.indices[base+2]].Pos
		if pointInTriangle(pt, a, b, d) {
			return true
		}
	}
	return false
}

// pointInTriangle uses the same-side sign test; points on an edge count
// as inside.
func pointInTriangle(pt, a, b, c graphics.Offset) bool {
	d1 := edgeSign(pt, a, b)
	d2 := edgeSign(pt, b, c)
	d3 := edgeSign(pt, c, a)
	hasNeg := d1 < 0 || d2 < 0 || d3 < 0
	hasPos := d1 > 0 || d2 > 0 || d3 > 0
	return !(hasNeg && hasPos)
}

func edgeSign(p, a, b graphics.Offset) float32 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}
