package input

import (
	"sort"

	"pacpong/pkg/engine/world"
)

// Action is a high-level intent decoded from a device code
type Action int

const (
	ActionNone Action = iota

	// Movement
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// Meta
	ActionStart   // Any confirm key; starts a waiting round
	ActionQuit    // Leave the host loop
	ActionDumpMap // Write the tile map and entities to disk (F9)
)

// bindings maps raw device codes to actions.
// Multiple codes may point to the same Action.
var bindings = map[string]Action{
	// Movement (arrows, WASD, Vim)
	"arrow_up":    ActionMoveUp,
	"w":           ActionMoveUp,
	"k":           ActionMoveUp,
	"arrow_down":  ActionMoveDown,
	"s":           ActionMoveDown,
	"j":           ActionMoveDown,
	"arrow_left":  ActionMoveLeft,
	"a":           ActionMoveLeft,
	"h":           ActionMoveLeft,
	"arrow_right": ActionMoveRight,
	"d":           ActionMoveRight,
	"l":           ActionMoveRight,

	"gamepad_dpad_up":    ActionMoveUp,
	"gamepad_dpad_down":  ActionMoveDown,
	"gamepad_dpad_left":  ActionMoveLeft,
	"gamepad_dpad_right": ActionMoveRight,

	"space":     ActionStart,
	"enter":     ActionStart,
	"gamepad_a": ActionStart,

	"q":      ActionQuit,
	"escape": ActionQuit,
	"ctrl_c": ActionQuit,

	"f9": ActionDumpMap,
}

// Lookup returns the action bound to code, or ActionNone
func Lookup(code string) Action {
	if act, ok := bindings[code]; ok {
		return act
	}
	return ActionNone
}

// Direction returns the movement direction of an action
func (a Action) Direction() (world.Direction, bool) {
	switch a {
	case ActionMoveUp:
		return world.Up, true
	case ActionMoveDown:
		return world.Down, true
	case ActionMoveLeft:
		return world.Left, true
	case ActionMoveRight:
		return world.Right, true
	default:
		return world.Up, false
	}
}

// ToEvent converts a bound code to a scene event. Meta actions return ok=false;
// hosts handle them themselves. Confirm keys become a touch at the origin, which
// starts a waiting round without hitting any button.
func ToEvent(code string) (Event, Action, bool) {
	act := Lookup(code)
	if dir, ok := act.Direction(); ok {
		return Key(dir), act, true
	}
	if act == ActionStart {
		return Touch(TouchEnded, -1, -1), act, true
	}
	return Event{}, act, false
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMoveUp:
		return "Move Up"
	case ActionMoveDown:
		return "Move Down"
	case ActionMoveLeft:
		return "Move Left"
	case ActionMoveRight:
		return "Move Right"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	case ActionDumpMap:
		return "Dump Map"
	default:
		return "None"
	}
}

// BindingsByAction returns the current bindings grouped by action.
func BindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, act := range bindings {
		result[act] = append(result[act], code)
	}
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
