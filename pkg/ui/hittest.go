package ui

import (
	"github.com/lichnak/rg3d/pkg/arena"
	"github.com/lichnak/rg3d/pkg/draw"
	"github.com/lichnak/rg3d/pkg/graphics"
)

// Hit testing runs against the drawing commands recorded by the last
// draw pass: a point hits a node when it falls inside some Geometry
// command of that node and is not excluded by the clip regions of the
// node and its ancestors. Clip regions compose by intersection up the
// chain, so a node is pickable only where every ancestor clip admits
// the point.

// HitTest resolves the topmost node under pt. While a node holds mouse
// capture and is still alive, it is returned unconditionally.
func (ui *UserInterface) HitTest(pt graphics.Offset) arena.Handle {
	if ui.nodes.IsValid(ui.capturedNode) {
		return ui.capturedNode
	}
	level := 0
	return ui.pickNode(ui.rootCanvas, pt, &level)
}

// pickNode walks the subtree depth-first. A hit-test-invisible node
// short-circuits its whole subtree. Deeper successful picks win over
// shallower ones; on equal depth the later-visited child wins.
func (ui *UserInterface) pickNode(handle arena.Handle, pt graphics.Offset, level *int) arena.Handle {
	w := ui.nodes.Borrow(handle).Widget()

	if !w.IsHitTestVisible {
		return arena.None
	}

	picked := arena.None
	topmostLevel := 0
	if ui.isNodeContainsPoint(handle, pt) {
		picked = handle
		topmostLevel = *level
	}

	for _, child := range w.Children {
		*level++
		pickedChild := ui.pickNode(child, pt, level)
		if pickedChild.IsSome() && *level > topmostLevel {
			topmostLevel = *level
			picked = pickedChild
		}
	}

	return picked
}

// isNodeContainsPoint reports whether pt lies in one of the node's own
// Geometry commands and survives the clip chain.
func (ui *UserInterface) isNodeContainsPoint(handle arena.Handle, pt graphics.Offset) bool {
	w := ui.nodes.Borrow(handle).Widget()

	if !w.GlobalVisibility {
		return false
	}
	if ui.isNodeClipped(handle, pt) {
		return false
	}

	commands := ui.drawingContext.Commands()
	for _, index := range w.CommandIndices {
		if index >= len(commands) {
			continue
		}
		cmd := commands[index]
		if cmd.Kind == draw.Geometry && ui.drawingContext.IsCommandContainsPoint(cmd, pt) {
			return true
		}
	}
	return false
}

// isNodeClipped reports whether pt is excluded by the node's clip
// region or any ancestor's. A node whose commands include no Clip
// containing the point is fully clipped.
func (ui *UserInterface) isNodeClipped(handle arena.Handle, pt graphics.Offset) bool {
	w := ui.nodes.Borrow(handle).Widget()

	if !w.GlobalVisibility {
		return true
	}

	clipped := true
	commands := ui.drawingContext.Commands()
	for _, index := range w.CommandIndices {
		if index >= len(commands) {
			continue
		}
		cmd := commands[index]
		if cmd.Kind == draw.Clip && ui.drawingContext.IsCommandContainsPoint(cmd, pt) {
			clipped = false
			break
		}
	}

	if w.Parent.IsSome() && !clipped {
		clipped = ui.isNodeClipped(w.Parent, pt)
	}

	return clipped
}

// CaptureMouse routes all subsequent hit tests to node until the
// capture is released. The first capture wins; further calls fail until
// ReleaseMouseCapture.
func (ui *UserInterface) CaptureMouse(node arena.Handle) bool {
	if ui.capturedNode.IsNone() {
		ui.capturedNode = node
		return true
	}
	return false
}

// ReleaseMouseCapture ends the current mouse capture.
func (ui *UserInterface) ReleaseMouseCapture() {
	ui.capturedNode = arena.None
}
