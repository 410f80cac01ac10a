package ui

import (
	"github.com/lichnak/rg3d/pkg/arena"
	"github.com/lichnak/rg3d/pkg/graphics"
	"github.com/lichnak/rg3d/pkg/platform"
)

// EventKind is the tagged payload of a routed UI event. It is a closed
// union: input translation produces the kinds below, and widgets route
// their own payloads through Targeted.
type EventKind interface {
	isEventKind()
}

// MouseDown is sent to the picked node on a mouse button press.
type MouseDown struct {
	Pos    graphics.Offset
	Button platform.MouseButton
}

// MouseUp is sent to the picked node on a mouse button release.
type MouseUp struct {
	Pos    graphics.Offset
	Button platform.MouseButton
}

// MouseMove is sent to the picked node on every cursor move over it.
type MouseMove struct {
	Pos graphics.Offset
}

// MouseEnter is sent once when the cursor first moves over a node.
type MouseEnter struct{}

// MouseLeave is sent once when the cursor leaves a node it was over.
type MouseLeave struct{}

// MouseWheel is sent to the picked node on a scroll.
type MouseWheel struct {
	Pos    graphics.Offset
	Amount float32
}

// KeyDown is sent to the keyboard focus node on a key press.
type KeyDown struct {
	Code platform.KeyCode
}

// KeyUp is sent to the keyboard focus node on a key release.
type KeyUp struct {
	Code platform.KeyCode
}

// Text is sent to the keyboard focus node for each received character.
type Text struct {
	Char rune
}

// Targeted carries an arbitrary payload addressed at a specific node,
// e.g. telling a window widget to open.
type Targeted struct {
	Payload any
}

func (MouseDown) isEventKind()  {}
func (MouseUp) isEventKind()    {}
func (MouseMove) isEventKind()  {}
func (MouseEnter) isEventKind() {}
func (MouseLeave) isEventKind() {}
func (MouseWheel) isEventKind() {}
func (KeyDown) isEventKind()    {}
func (KeyUp) isEventKind()      {}
func (Text) isEventKind()       {}
func (Targeted) isEventKind()   {}

// Event is one routed UI event. Source is the node the event concerns
// (the picked node for pointer events, the emitting node for
// node-originated events); Target optionally addresses a specific
// recipient for Targeted events. Every dispatched event is broadcast to
// all nodes; handlers use Source/Target to decide whether to react and
// may set Handled to tell later recipients it was consumed.
type Event struct {
	Kind    EventKind
	Source  arena.Handle
	Target  arena.Handle
	Handled bool
}

// TargetedEvent builds an event addressed at a specific node.
func TargetedEvent(target arena.Handle, payload any) Event {
	return Event{
		Kind:   Targeted{Payload: payload},
		Target: target,
	}
}
