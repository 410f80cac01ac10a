// Package platform defines the raw window events the host feeds into
// the UI's input translation. It is the boundary between whatever
// windowing backend drives the application and the routed UI events the
// widget tree consumes.
package platform

import "github.com/lichnak/rg3d/pkg/graphics"

// ButtonState is the press state of a button or key.
type ButtonState uint8

const (
	StatePressed ButtonState = iota
	StateReleased
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseLeft MouseButton = iota
	MouseRight
	MouseMiddle
)

// KeyCode identifies a keyboard key. KeyUnknown marks a key the backend
// could not resolve; events carrying it are not routed.
type KeyCode uint16

const (
	KeyUnknown KeyCode = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeySpace
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyShift
	KeyControl
	KeyAlt
)

// Event is a raw window event. It is a closed union: the concrete types
// below are the only implementations.
type Event interface {
	isPlatformEvent()
}

// MouseButtonEvent is a mouse button press or release.
type MouseButtonEvent struct {
	Button MouseButton
	State  ButtonState
}

// CursorMovedEvent reports the new cursor position in UI pixels.
type CursorMovedEvent struct {
	Position graphics.Offset
}

// MouseWheelEvent is a scroll in line-delta form.
type MouseWheelEvent struct {
	DeltaX float32
	DeltaY float32
}

// KeyboardEvent is a key press or release. Key may be KeyUnknown when
// the backend cannot resolve the physical key.
type KeyboardEvent struct {
	State ButtonState
	Key   KeyCode
}

// CharEvent carries a received text character.
type CharEvent struct {
	Char rune
}

func (MouseButtonEvent) isPlatformEvent() {}
func (CursorMovedEvent) isPlatformEvent() {}
func (MouseWheelEvent) isPlatformEvent()  {}
func (KeyboardEvent) isPlatformEvent()    {}
func (CharEvent) isPlatformEvent()        {}
