package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/lichnak/rg3d/pkg/graphics"
	"github.com/lichnak/rg3d/pkg/platform"
)

var mouseButtons = map[ebiten.MouseButton]platform.MouseButton{
	ebiten.MouseButtonLeft:   platform.MouseLeft,
	ebiten.MouseButtonRight:  platform.MouseRight,
	ebiten.MouseButtonMiddle: platform.MouseMiddle,
}

var specialKeys = map[ebiten.Key]platform.KeyCode{
	ebiten.KeyEscape:     platform.KeyEscape,
	ebiten.KeyEnter:      platform.KeyEnter,
	ebiten.KeyTab:        platform.KeyTab,
	ebiten.KeyBackspace:  platform.KeyBackspace,
	ebiten.KeyDelete:     platform.KeyDelete,
	ebiten.KeySpace:      platform.KeySpace,
	ebiten.KeyArrowLeft:  platform.KeyLeft,
	ebiten.KeyArrowRight: platform.KeyRight,
	ebiten.KeyArrowUp:    platform.KeyUp,
	ebiten.KeyArrowDown:  platform.KeyDown,
	ebiten.KeyHome:       platform.KeyHome,
	ebiten.KeyEnd:        platform.KeyEnd,
	ebiten.KeyPageUp:     platform.KeyPageUp,
	ebiten.KeyPageDown:   platform.KeyPageDown,
	ebiten.KeyShift:      platform.KeyShift,
	ebiten.KeyControl:    platform.KeyControl,
	ebiten.KeyAlt:        platform.KeyAlt,
}

func translateKey(k ebiten.Key) platform.KeyCode {
	switch {
	case k >= ebiten.KeyA && k <= ebiten.KeyZ:
		return platform.KeyA + platform.KeyCode(k-ebiten.KeyA)
	case k >= ebiten.KeyDigit0 && k <= ebiten.KeyDigit9:
		return platform.Key0 + platform.KeyCode(k-ebiten.KeyDigit0)
	}
	return specialKeys[k]
}

// inputState diffs the window input against the previous frame and
// produces the raw events the router consumes.
type inputState struct {
	lastCursorX int
	lastCursorY int

	keys  []ebiten.Key
	chars []rune
}

func (s *inputState) poll() []platform.Event {
	var events []platform.Event

	if x, y := ebiten.CursorPosition(); x != s.lastCursorX || y != s.lastCursorY {
		s.lastCursorX, s.lastCursorY = x, y
		events = append(events, platform.CursorMovedEvent{
			Position: graphics.Offset{X: float32(x), Y: float32(y)},
		})
	}

	for eb, button := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(eb) {
			events = append(events, platform.MouseButtonEvent{Button: button, State: platform.StatePressed})
		}
		if inpututil.IsMouseButtonJustReleased(eb) {
			events = append(events, platform.MouseButtonEvent{Button: button, State: platform.StateReleased})
		}
	}

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		events = append(events, platform.MouseWheelEvent{DeltaX: float32(dx), DeltaY: float32(dy)})
	}

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		events = append(events, platform.KeyboardEvent{State: platform.StatePressed, Key: translateKey(k)})
	}
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		events = append(events, platform.KeyboardEvent{State: platform.StateReleased, Key: translateKey(k)})
	}

	s.chars = ebiten.AppendInputChars(s.chars[:0])
	for _, ch := range s.chars {
		events = append(events, platform.CharEvent{Char: ch})
	}

	return events
}
