package menu

import (
	"fmt"
	"strings"

	"pacpong/pkg/engine/input"
)

// BindingMenuItem shows the keys bound to an action. It cannot be selected.
type BindingMenuItem struct {
	Action input.Action
}

// GetLabel returns the action name and its keys
func (b *BindingMenuItem) GetLabel() string {
	codes := input.BindingsByAction()[b.Action]
	codeText := strings.Join(codes, ", ")
	if codeText == "" {
		codeText = "(unbound)"
	}
	return fmt.Sprintf("%s: %s", input.ActionName(b.Action), codeText)
}

// IsSelectable returns false; bindings are listed for reference only
func (b *BindingMenuItem) IsSelectable() bool {
	return false
}

// GetHelpText returns nothing for bindings
func (b *BindingMenuItem) GetHelpText() string {
	return ""
}

// backItem returns to the previous menu
type backItem struct{}

func (backItem) GetLabel() string    { return "Back" }
func (backItem) IsSelectable() bool  { return true }
func (backItem) GetHelpText() string { return "Return to the main menu" }

// BindingsMenuHandler lists the controls
type BindingsMenuHandler struct {
	Transition Transitioner
	BackScene  string
}

// GetTitle returns the menu title.
func (h *BindingsMenuHandler) GetTitle() string {
	return "Controls"
}

// GetSubtitle returns the hint about on-screen buttons
func (h *BindingsMenuHandler) GetSubtitle() []string {
	return []string{translate("Touch the arrow buttons to steer, or drag to move the paddle")}
}

// GetInstructions returns the menu instructions.
func (h *BindingsMenuHandler) GetInstructions(selected MenuItem) string {
	return translate("Touch or Enter to go back")
}

// OnActivate is called when an item is activated.
func (h *BindingsMenuHandler) OnActivate(item MenuItem, index int) {
	if _, ok := item.(backItem); ok {
		h.Transition.Replace(h.BackScene)
	}
}

// GetMenuItems returns one row per bindable action, then Back
func (h *BindingsMenuHandler) GetMenuItems() []MenuItem {
	actions := []input.Action{
		input.ActionMoveUp,
		input.ActionMoveDown,
		input.ActionMoveLeft,
		input.ActionMoveRight,
		input.ActionStart,
		input.ActionQuit,
		input.ActionDumpMap,
	}
	items := make([]MenuItem, 0, len(actions)+1)
	for _, act := range actions {
		items = append(items, &BindingMenuItem{Action: act})
	}
	return append(items, backItem{})
}

// NewBindingsMenu builds the controls menu scene
func NewBindingsMenu(h *BindingsMenuHandler) *Menu {
	return New(h.GetMenuItems(), h)
}
