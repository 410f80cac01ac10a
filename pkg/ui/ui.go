// Package ui implements the retained-mode interface core: a widget tree
// in a generational arena, the measure/arrange layout engine, visibility
// and screen-position propagation, the draw traversal with per-node
// command recording, geometric hit testing, and the event router.
//
// A host drives one UserInterface per window, calling each frame:
//
//	ui.Update(screenSize, dt)     // layout + propagation + per-node update
//	ctx := ui.Draw()              // rebuild the drawing command list
//	for ui.PollEvent() != nil {}  // dispatch queued events
//
// and ui.ProcessInputEvent for every raw window event received.
package ui

import (
	"slices"

	"github.com/lichnak/rg3d/pkg/arena"
	"github.com/lichnak/rg3d/pkg/draw"
	"github.com/lichnak/rg3d/pkg/graphics"
)

// UserInterface owns the node arena, the drawing context and all
// routing state. It is single-threaded: every operation runs to
// completion within the calling frame, and nothing outside the
// interface mutates its state.
type UserInterface struct {
	nodes          *arena.Arena[Control]
	drawingContext *draw.Context
	options        Options
	visualDebug    bool

	// Every node lives on the window-sized root canvas.
	rootCanvas        arena.Handle
	pickedNode        arena.Handle
	prevPickedNode    arena.Handle
	capturedNode      arena.Handle
	keyboardFocusNode arena.Handle
	mousePosition     graphics.Offset

	events []Event
}

// New creates an interface with default options and a fresh root
// canvas.
func New() *UserInterface {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions creates an interface with the given tuning options.
func NewWithOptions(opts Options) *UserInterface {
	ui := &UserInterface{
		nodes:          arena.New[Control](),
		drawingContext: draw.NewContext(),
		options:        opts,
		visualDebug:    opts.VisualDebug,
	}
	ui.rootCanvas = ui.AddNode(NewCanvas())
	return ui
}

// Root returns the root canvas handle.
func (ui *UserInterface) Root() arena.Handle {
	return ui.rootCanvas
}

// DrawingContext returns the interface's drawing context.
func (ui *UserInterface) DrawingContext() *draw.Context {
	return ui.drawingContext
}

// SetVisualDebug toggles the picked-node bounds overlay.
func (ui *UserInterface) SetVisualDebug(enabled bool) {
	ui.visualDebug = enabled
}

// Node returns the control addressed by handle, failing fast if the
// handle is stale.
func (ui *UserInterface) Node(handle arena.Handle) Control {
	return ui.nodes.Borrow(handle)
}

// IsValidHandle reports whether handle addresses a live node.
func (ui *UserInterface) IsValidHandle(handle arena.Handle) bool {
	return ui.nodes.IsValid(handle)
}

// AddNode attaches a control to a fresh arena slot and links it under
// the root canvas. Children already recorded on the control's widget
// are relinked under the new node.
func (ui *UserInterface) AddNode(node Control) arena.Handle {
	w := node.Widget()
	children := slices.Clone(w.Children)
	w.Children = w.Children[:0]
	handle := ui.nodes.Alloc(node)
	w.Handle = handle
	if ui.rootCanvas.IsSome() {
		ui.LinkNodes(handle, ui.rootCanvas)
	}
	for _, child := range children {
		ui.LinkNodes(child, handle)
	}
	return handle
}

// LinkNodes makes child a child of parent, unlinking it from any
// previous parent first. Both sides of the link are kept consistent.
func (ui *UserInterface) LinkNodes(child, parent arena.Handle) {
	ui.UnlinkNode(child)
	ui.nodes.Borrow(child).Widget().Parent = parent
	parentWidget := ui.nodes.Borrow(parent).Widget()
	parentWidget.Children = append(parentWidget.Children, child)
}

// UnlinkNode detaches a node from its parent, making it a root.
func (ui *UserInterface) UnlinkNode(handle arena.Handle) {
	w := ui.nodes.Borrow(handle).Widget()
	parent := w.Parent
	w.Parent = arena.None

	if parent.IsSome() {
		parentWidget := ui.nodes.Borrow(parent).Widget()
		if i := slices.Index(parentWidget.Children, handle); i >= 0 {
			parentWidget.Children = slices.Delete(parentWidget.Children, i, i+1)
		}
	}
}

// RemoveNode unlinks a node from its parent and recursively frees it
// and its whole subtree. Routing state referring to freed nodes
// (pick, capture, keyboard focus) is cleared.
func (ui *UserInterface) RemoveNode(handle arena.Handle) {
	ui.UnlinkNode(handle)
	ui.freeSubtree(handle)
}

func (ui *UserInterface) freeSubtree(handle arena.Handle) {
	children := slices.Clone(ui.nodes.Borrow(handle).Widget().Children)
	for _, child := range children {
		ui.freeSubtree(child)
	}
	if ui.pickedNode == handle {
		ui.pickedNode = arena.None
	}
	if ui.prevPickedNode == handle {
		ui.prevPickedNode = arena.None
	}
	if ui.capturedNode == handle {
		ui.capturedNode = arena.None
	}
	if ui.keyboardFocusNode == handle {
		ui.keyboardFocusNode = arena.None
	}
	ui.nodes.Free(handle)
}

// Update runs the full per-frame pass: measure and arrange the whole
// tree against the screen size, propagate screen positions and global
// visibility, then advance every node by dt.
func (ui *UserInterface) Update(screenSize graphics.Size, dt float32) {
	ui.nodes.Each(func(node Control) {
		w := node.Widget()
		w.MeasureValid = false
		w.ArrangeValid = false
	})

	ui.MeasureNode(ui.rootCanvas, screenSize)
	ui.ArrangeNode(ui.rootCanvas, graphics.RectFromSize(screenSize))
	ui.updateNode(ui.rootCanvas)

	ui.nodes.Each(func(node Control) {
		node.Update(dt)
	})
}

// updateNode is the top-down propagation pass: screen position is the
// parent's screen position plus the local position, and global
// visibility is the local flag intersected with the parent's.
func (ui *UserInterface) updateNode(handle arena.Handle) {
	w := ui.nodes.Borrow(handle).Widget()

	screenPosition := w.ActualLocalPosition
	parentVisibility := true
	if w.Parent.IsSome() {
		parentWidget := ui.nodes.Borrow(w.Parent).Widget()
		screenPosition = screenPosition.Add(parentWidget.ScreenPosition)
		parentVisibility = parentWidget.GlobalVisibility
	}

	w.ScreenPosition = screenPosition
	w.GlobalVisibility = w.Visibility == graphics.Visible && parentVisibility

	for _, child := range w.Children {
		ui.updateNode(child)
	}
}

// Draw rebuilds the drawing command list with a pre-order traversal and
// records, per node, the range of commands the node itself emitted.
// Globally invisible subtrees are skipped entirely: no commands, no
// clip push, no descendant traversal.
func (ui *UserInterface) Draw() *draw.Context {
	ui.drawingContext.Clear()

	ui.nodes.Each(func(node Control) {
		w := node.Widget()
		w.CommandIndices = w.CommandIndices[:0]
	})

	ui.drawNode(ui.rootCanvas, 1)

	if ui.visualDebug && ui.nodes.IsValid(ui.pickedNode) {
		bounds := ui.nodes.Borrow(ui.pickedNode).Widget().ScreenBounds()
		ui.drawingContext.SetNesting(0)
		ui.drawingContext.PushRect(bounds, 1, graphics.White)
		ui.drawingContext.Commit(draw.Geometry, draw.NoTexture)
	}

	return ui.drawingContext
}

func (ui *UserInterface) drawNode(handle arena.Handle, nesting uint8) {
	node := ui.nodes.Borrow(handle)
	w := node.Widget()
	if !w.GlobalVisibility {
		return
	}

	bounds := w.ScreenBounds()
	start := ui.drawingContext.CommandCount()
	ui.drawingContext.SetNesting(nesting)
	ui.drawingContext.CommitClipRect(bounds.Inflate(ui.options.ClipInflate, ui.options.ClipInflate))

	node.Draw(ui.drawingContext)

	for i := start; i < ui.drawingContext.CommandCount(); i++ {
		w.CommandIndices = append(w.CommandIndices, i)
	}

	for _, child := range w.Children {
		ui.drawNode(child, nesting+1)
	}

	ui.drawingContext.RevertClipGeom()
}

// FindByCriteriaDown searches depth-first below handle (inclusive) for
// the first node satisfying the predicate. Returns the null handle on
// no match.
func (ui *UserInterface) FindByCriteriaDown(handle arena.Handle, criteria func(Control) bool) arena.Handle {
	node := ui.nodes.Borrow(handle)
	if criteria(node) {
		return handle
	}
	for _, child := range node.Widget().Children {
		if result := ui.FindByCriteriaDown(child, criteria); result.IsSome() {
			return result
		}
	}
	return arena.None
}

// FindByCriteriaUp searches from handle up the ancestor chain for the
// first node satisfying the predicate. Returns the null handle on no
// match.
func (ui *UserInterface) FindByCriteriaUp(handle arena.Handle, criteria func(Control) bool) arena.Handle {
	if handle.IsNone() {
		return arena.None
	}
	node := ui.nodes.Borrow(handle)
	if criteria(node) {
		return handle
	}
	return ui.FindByCriteriaUp(node.Widget().Parent, criteria)
}

// FindByNameDown searches depth-first below handle for a widget name.
func (ui *UserInterface) FindByNameDown(handle arena.Handle, name string) arena.Handle {
	return ui.FindByCriteriaDown(handle, func(node Control) bool {
		return node.Widget().Name == name
	})
}

// FindByNameUp searches the ancestor chain of handle for a widget name.
func (ui *UserInterface) FindByNameUp(handle arena.Handle, name string) arena.Handle {
	return ui.FindByCriteriaUp(handle, func(node Control) bool {
		return node.Widget().Name == name
	})
}

// BorrowByNameDown finds by name below handle and borrows the node.
// Fails fast when nothing matches.
func (ui *UserInterface) BorrowByNameDown(handle arena.Handle, name string) Control {
	return ui.nodes.Borrow(ui.FindByNameDown(handle, name))
}

// BorrowByNameUp finds by name up the tree and borrows the node. Fails
// fast when nothing matches.
func (ui *UserInterface) BorrowByNameUp(handle arena.Handle, name string) Control {
	return ui.nodes.Borrow(ui.FindByNameUp(handle, name))
}

// IsNodeChildOf reports whether handle is anywhere below root in the
// tree.
func (ui *UserInterface) IsNodeChildOf(handle, root arena.Handle) bool {
	return ui.nodes.Borrow(root).Widget().HasDescendant(handle, ui)
}

// IsNodeDirectChildOf reports whether handle is an immediate child of
// root.
func (ui *UserInterface) IsNodeDirectChildOf(handle, root arena.Handle) bool {
	return slices.Contains(ui.nodes.Borrow(root).Widget().Children, handle)
}
