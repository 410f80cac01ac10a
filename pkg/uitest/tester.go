// Package uitest provides a frame-pumping harness for interface tests:
// it drives the same per-frame calls a host would (update, draw, input
// translation, event polling) against a UserInterface under test.
package uitest

import (
	"testing"

	"github.com/lichnak/rg3d/pkg/graphics"
	"github.com/lichnak/rg3d/pkg/platform"
	"github.com/lichnak/rg3d/pkg/ui"
)

const defaultDt = float32(1.0 / 60.0)

// Tester wraps a UserInterface with host-side frame plumbing.
type Tester struct {
	t      *testing.T
	ui     *ui.UserInterface
	screen graphics.Size
}

// New creates a tester with an 800x600 screen.
func New(t *testing.T) *Tester {
	t.Helper()
	return &Tester{
		t:      t,
		ui:     ui.New(),
		screen: graphics.Size{Width: 800, Height: 600},
	}
}

// Borrow looks a node up by name below the root and fails the test when
// nothing matches.
func (tt *Tester) Borrow(name string) ui.Control {
	tt.t.Helper()
	handle := tt.ui.FindByNameDown(tt.ui.Root(), name)
	if handle.IsNone() {
		tt.t.Fatalf("no node named %q in the tree", name)
	}
	return tt.ui.Node(handle)
}

// UI returns the interface under test.
func (tt *Tester) UI() *ui.UserInterface {
	return tt.ui
}

// SetScreenSize changes the screen size used by Pump.
func (tt *Tester) SetScreenSize(size graphics.Size) {
	tt.screen = size
}

// Pump runs one frame: layout, propagation, per-node update and a full
// draw pass, making hit testing reflect the current tree.
func (tt *Tester) Pump() {
	tt.ui.Update(tt.screen, defaultDt)
	tt.ui.Draw()
}

// MoveMouse feeds a cursor move and reports whether it was consumed.
func (tt *Tester) MoveMouse(x, y float32) bool {
	return tt.ui.ProcessInputEvent(platform.CursorMovedEvent{
		Position: graphics.Offset{X: x, Y: y},
	})
}

// PressMouse feeds a button press at the current cursor position.
func (tt *Tester) PressMouse(button platform.MouseButton) bool {
	return tt.ui.ProcessInputEvent(platform.MouseButtonEvent{
		Button: button,
		State:  platform.StatePressed,
	})
}

// ReleaseMouse feeds a button release.
func (tt *Tester) ReleaseMouse(button platform.MouseButton) bool {
	return tt.ui.ProcessInputEvent(platform.MouseButtonEvent{
		Button: button,
		State:  platform.StateReleased,
	})
}

// Scroll feeds a vertical wheel line delta.
func (tt *Tester) Scroll(lines float32) bool {
	return tt.ui.ProcessInputEvent(platform.MouseWheelEvent{DeltaY: lines})
}

// PressKey feeds a key press.
func (tt *Tester) PressKey(code platform.KeyCode) bool {
	return tt.ui.ProcessInputEvent(platform.KeyboardEvent{
		State: platform.StatePressed,
		Key:   code,
	})
}

// ReleaseKey feeds a key release.
func (tt *Tester) ReleaseKey(code platform.KeyCode) bool {
	return tt.ui.ProcessInputEvent(platform.KeyboardEvent{
		State: platform.StateReleased,
		Key:   code,
	})
}

// TypeRune feeds a received character.
func (tt *Tester) TypeRune(r rune) bool {
	return tt.ui.ProcessInputEvent(platform.CharEvent{Char: r})
}

// DrainEvents polls until the queue is empty and returns the dispatched
// events in order.
func (tt *Tester) DrainEvents() []ui.Event {
	var events []ui.Event
	for {
		evt := tt.ui.PollEvent()
		if evt == nil {
			return events
		}
		events = append(events, *evt)
	}
}
