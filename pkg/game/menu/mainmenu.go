package menu

import (
	"github.com/leonelquinteros/gotext"

	"pacpong/pkg/game/state"
)

// MainMenuAction represents the action type for main menu items.
type MainMenuAction int

const (
	MainMenuActionPlay MainMenuAction = iota
	MainMenuActionControls
	MainMenuActionQuit
)

// MainMenuItem represents a menu item in the main menu.
type MainMenuItem struct {
	Label  string
	Action MainMenuAction
}

// GetLabel returns the display label for this menu item.
func (m *MainMenuItem) GetLabel() string {
	return m.Label
}

// IsSelectable returns whether this item can be selected.
func (m *MainMenuItem) IsSelectable() bool {
	return true
}

// GetHelpText returns help text for this menu item.
func (m *MainMenuItem) GetHelpText() string {
	switch m.Action {
	case MainMenuActionPlay:
		return "Start a new round"
	case MainMenuActionControls:
		return "Show the keys and buttons"
	case MainMenuActionQuit:
		return "Exit the game"
	default:
		return ""
	}
}

// Transitioner replaces the active scene
type Transitioner interface {
	Replace(name string)
}

// MainMenuHandler shows the last round's result and starts the next one.
type MainMenuHandler struct {
	Session       *state.Session
	Transition    Transitioner
	GameScene     string
	ControlsScene string // empty hides the Controls item
	Quit          func()
}

// GetTitle returns the menu title.
func (h *MainMenuHandler) GetTitle() string {
	if h.Session == nil {
		return "Pac-Pong"
	}
	switch h.Session.Last {
	case state.OutcomeWon:
		return "You win!"
	case state.OutcomeLost:
		return "Caught by the phantom"
	}
	return "Pac-Pong"
}

// GetSubtitle returns the session statistics.
func (h *MainMenuHandler) GetSubtitle() []string {
	if h.Session == nil || h.Session.Rounds == 0 {
		return nil
	}
	return []string{
		gotext.Get("Coins this round: %d", h.Session.LastCoins),
		gotext.Get("Best: %d coins over %d rounds", h.Session.Best, h.Session.Rounds),
	}
}

// GetInstructions returns the menu instructions.
func (h *MainMenuHandler) GetInstructions(selected MenuItem) string {
	return gotext.Get("Use up/down to select, touch or Enter to activate")
}

// OnActivate is called when an item is activated.
func (h *MainMenuHandler) OnActivate(item MenuItem, index int) {
	mainItem, ok := item.(*MainMenuItem)
	if !ok {
		return
	}
	switch mainItem.Action {
	case MainMenuActionPlay:
		h.Transition.Replace(h.GameScene)
	case MainMenuActionControls:
		h.Transition.Replace(h.ControlsScene)
	case MainMenuActionQuit:
		if h.Quit != nil {
			h.Quit()
		}
	}
}

// GetMenuItems returns the menu items for the main menu.
func (h *MainMenuHandler) GetMenuItems() []MenuItem {
	items := []MenuItem{&MainMenuItem{Label: "Play again", Action: MainMenuActionPlay}}
	if h.ControlsScene != "" {
		items = append(items, &MainMenuItem{Label: "Controls", Action: MainMenuActionControls})
	}
	return append(items, &MainMenuItem{Label: "Quit", Action: MainMenuActionQuit})
}

// NewMainMenu builds the menu scene shown after a round ends.
func NewMainMenu(h *MainMenuHandler) *Menu {
	return New(h.GetMenuItems(), h)
}
