package ui

import (
	"github.com/lichnak/rg3d/pkg/arena"
	"github.com/lichnak/rg3d/pkg/graphics"
	"github.com/lichnak/rg3d/pkg/platform"
)

// SendEvent pushes an event onto the shared queue. Useful to address a
// specific node, e.g.:
//
//	ui.SendEvent(TargetedEvent(optionsWindow, windowOpen{}))
func (ui *UserInterface) SendEvent(evt Event) {
	ui.events = append(ui.events, evt)
}

// PollEvent drains every node's private event queue into the shared
// queue, then pops one event and broadcasts it to every live node. The
// dispatched event is returned, or nil when the queue is empty.
//
// Each node is taken out of the arena for the duration of its handler
// call, so a handler can look up and mutate any other node through the
// interface but can never alias itself by handle; borrowing the
// handler's own handle during the call fails fast. Dispatch visits
// slots in arena index order, not tree order. One event is dispatched
// per call, so hosts poll repeatedly to work through backlog.
func (ui *UserInterface) PollEvent() *Event {
	ui.nodes.EachWithHandle(func(handle arena.Handle, node Control) {
		for {
			evt, ok := node.Widget().popEvent()
			if !ok {
				break
			}
			evt.Source = handle
			ui.events = append(ui.events, evt)
		}
	})

	if len(ui.events) == 0 {
		return nil
	}
	evt := ui.events[0]
	ui.events = ui.events[1:]

	for i := 0; i < ui.nodes.Cap(); i++ {
		node, ok := ui.nodes.TakeAt(i)
		if !ok {
			continue
		}
		node.HandleEvent(ui.nodes.HandleFromIndex(i), ui, &evt)
		ui.nodes.PutBack(i, node)
	}

	return &evt
}

// ProcessInputEvent translates one raw window event into queued UI
// events, updating pick, capture-independent hover state and keyboard
// focus along the way. It reports whether the event produced any UI
// reaction.
func (ui *UserInterface) ProcessInputEvent(event platform.Event) bool {
	processed := false

	switch raw := event.(type) {
	case platform.MouseButtonEvent:
		switch raw.State {
		case platform.StatePressed:
			ui.pickedNode = ui.HitTest(ui.mousePosition)
			ui.keyboardFocusNode = ui.pickedNode

			if ui.pickedNode.IsSome() {
				ui.SendEvent(Event{
					Kind:   MouseDown{Pos: ui.mousePosition, Button: raw.Button},
					Source: ui.pickedNode,
				})
				processed = true
			}
		case platform.StateReleased:
			if ui.pickedNode.IsSome() {
				ui.SendEvent(Event{
					Kind:   MouseUp{Pos: ui.mousePosition, Button: raw.Button},
					Source: ui.pickedNode,
				})
				processed = true
			}
		}

	case platform.CursorMovedEvent:
		ui.mousePosition = raw.Position
		ui.pickedNode = ui.HitTest(ui.mousePosition)

		if ui.pickedNode != ui.prevPickedNode && ui.prevPickedNode.IsSome() {
			prevWidget := ui.nodes.Borrow(ui.prevPickedNode).Widget()
			if prevWidget.IsMouseOver {
				prevWidget.IsMouseOver = false
				ui.SendEvent(Event{
					Kind:   MouseLeave{},
					Source: ui.prevPickedNode,
				})
			}
		}

		if ui.pickedNode.IsSome() {
			pickedWidget := ui.nodes.Borrow(ui.pickedNode).Widget()
			if !pickedWidget.IsMouseOver {
				pickedWidget.IsMouseOver = true
				ui.SendEvent(Event{
					Kind:   MouseEnter{},
					Source: ui.pickedNode,
				})
			}

			ui.SendEvent(Event{
				Kind:   MouseMove{Pos: ui.mousePosition},
				Source: ui.pickedNode,
			})
			processed = true
		}

	case platform.MouseWheelEvent:
		if ui.pickedNode.IsSome() {
			ui.SendEvent(Event{
				Kind: MouseWheel{
					Pos:    ui.mousePosition,
					Amount: raw.DeltaY * ui.options.WheelScrollScale,
				},
				Source: ui.pickedNode,
			})
			processed = true
		}

	case platform.KeyboardEvent:
		if ui.keyboardFocusNode.IsSome() && raw.Key != platform.KeyUnknown {
			var kind EventKind
			if raw.State == platform.StatePressed {
				kind = KeyDown{Code: raw.Key}
			} else {
				kind = KeyUp{Code: raw.Key}
			}
			ui.SendEvent(Event{Kind: kind, Source: ui.keyboardFocusNode})
			processed = true
		}

	case platform.CharEvent:
		if ui.keyboardFocusNode.IsSome() {
			ui.SendEvent(Event{
				Kind:   Text{Char: raw.Char},
				Source: ui.keyboardFocusNode,
			})
			processed = true
		}
	}

	ui.prevPickedNode = ui.pickedNode

	return processed
}

// PickedNode returns the node currently under the mouse (or captured).
func (ui *UserInterface) PickedNode() arena.Handle {
	return ui.pickedNode
}

// KeyboardFocusNode returns the node receiving keyboard and text
// events.
func (ui *UserInterface) KeyboardFocusNode() arena.Handle {
	return ui.keyboardFocusNode
}

// SetKeyboardFocus moves keyboard focus to node.
func (ui *UserInterface) SetKeyboardFocus(node arena.Handle) {
	ui.keyboardFocusNode = node
}

// MousePosition returns the last cursor position seen by input
// translation.
func (ui *UserInterface) MousePosition() graphics.Offset {
	return ui.mousePosition
}
