package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the current terminal width and height.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether stdin is attached to a terminal
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// EnableRawMode puts stdin into raw mode so single key presses (arrows
// included) can be read without Enter. The returned function restores the
// previous mode.
func EnableRawMode() (restore func(), err error) {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("set terminal to raw mode: %w", err)
	}
	return func() {
		_ = term.Restore(fd, oldState)
	}, nil
}

// HideCursor and ShowCursor toggle the cursor around full-screen redraws
func HideCursor() { fmt.Print("\x1b[?25l") }

// ShowCursor makes the cursor visible again
func ShowCursor() { fmt.Print("\x1b[?25h") }

// Home moves the cursor to the top-left corner without clearing
func Home() { fmt.Print("\x1b[H") }

// Clear clears the screen and moves the cursor home
func Clear() { fmt.Print("\x1b[2J\x1b[H") }
