package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	engineinput "pacpong/pkg/engine/input"
	"pacpong/pkg/engine/world"
)

// keyCodes maps Ebiten keys to binding codes
var keyCodes = []struct {
	key  ebiten.Key
	code string
}{
	{ebiten.KeyArrowUp, "arrow_up"},
	{ebiten.KeyArrowDown, "arrow_down"},
	{ebiten.KeyArrowLeft, "arrow_left"},
	{ebiten.KeyArrowRight, "arrow_right"},
	{ebiten.KeyW, "w"},
	{ebiten.KeyS, "s"},
	{ebiten.KeyA, "a"},
	{ebiten.KeyD, "d"},
	{ebiten.KeyK, "k"},
	{ebiten.KeyJ, "j"},
	{ebiten.KeyH, "h"},
	{ebiten.KeyL, "l"},
	{ebiten.KeySpace, "space"},
	{ebiten.KeyEnter, "enter"},
	{ebiten.KeyNumpadEnter, "enter"},
	{ebiten.KeyQ, "q"},
	{ebiten.KeyEscape, "escape"},
	{ebiten.KeyF9, "f9"},
}

// gamepadCodes maps standard-layout gamepad buttons to binding codes
var gamepadCodes = []struct {
	button ebiten.StandardGamepadButton
	code   string
}{
	{ebiten.StandardGamepadButtonLeftTop, "gamepad_dpad_up"},
	{ebiten.StandardGamepadButtonLeftBottom, "gamepad_dpad_down"},
	{ebiten.StandardGamepadButtonLeftLeft, "gamepad_dpad_left"},
	{ebiten.StandardGamepadButtonLeftRight, "gamepad_dpad_right"},
	{ebiten.StandardGamepadButtonRightBottom, "gamepad_a"},
}

// pollInput queues this tick's pointer and key events
func (e *EbitenRenderer) pollInput() {
	e.pollMouse()
	e.pollTouches()

	for _, k := range keyCodes {
		if inpututil.IsKeyJustPressed(k.key) {
			e.handleCode(k.code)
		}
	}

	var ids []ebiten.GamepadID
	ids = ebiten.AppendGamepadIDs(ids)
	for _, id := range ids {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		for _, b := range gamepadCodes {
			if inpututil.IsStandardGamepadButtonJustPressed(id, b.button) {
				e.handleCode(b.code)
			}
		}
	}
}

func (e *EbitenRenderer) handleCode(code string) {
	ev, act, ok := engineinput.ToEvent(code)
	if ok {
		e.events.Push(ev)
		return
	}
	switch act {
	case engineinput.ActionQuit:
		e.quit = true
	case engineinput.ActionDumpMap:
		if e.onDumpMap != nil {
			e.onDumpMap()
		}
	}
}

func (e *EbitenRenderer) pollMouse() {
	x, y := ebiten.CursorPosition()
	p := world.Vec2{X: float64(x), Y: float64(y)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		e.events.Push(e.touch.Press(mousePointer, p))
	}
	if ev, ok := e.touch.Move(mousePointer, p); ok {
		e.events.Push(ev)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if ev, ok := e.touch.Release(mousePointer); ok {
			e.events.Push(ev)
		}
	}
}

func (e *EbitenRenderer) pollTouches() {
	var ids []ebiten.TouchID
	ids = ebiten.AppendTouchIDs(ids)

	current := make(map[ebiten.TouchID]bool, len(ids))
	for _, id := range ids {
		current[id] = true
		x, y := ebiten.TouchPosition(id)
		p := world.Vec2{X: float64(x), Y: float64(y)}
		pointer := touchPointer + int(id)
		if !e.heldTouches[id] {
			e.events.Push(e.touch.Press(pointer, p))
			continue
		}
		if ev, ok := e.touch.Move(pointer, p); ok {
			e.events.Push(ev)
		}
	}
	for id := range e.heldTouches {
		if current[id] {
			continue
		}
		if ev, ok := e.touch.Release(touchPointer + int(id)); ok {
			e.events.Push(ev)
		}
	}
	e.heldTouches = current
}
