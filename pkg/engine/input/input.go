package input

import (
	"bufio"
	"io"
)

// ReadCode reads one key from a terminal in raw mode and returns its binding
// code ("arrow_up", "q", "ctrl_c", ...). Unknown escape sequences return "".
func ReadCode(r io.ByteReader) (string, error) {
	b1, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b1 == 0x1b:
		return readEscape(r)
	case b1 == 3:
		return "ctrl_c", nil
	case b1 == '\n' || b1 == '\r':
		return "enter", nil
	case b1 == ' ':
		return "space", nil
	case b1 >= 'A' && b1 <= 'Z':
		return string(rune(b1 + ('a' - 'A'))), nil
	case b1 > 32 && b1 < 127:
		return string(rune(b1)), nil
	}
	return "", nil
}

// readEscape decodes the rest of an escape sequence. Both CSI (ESC [) and
// SS3 (ESC O) arrow sequences are recognised.
func readEscape(r io.ByteReader) (string, error) {
	b2, err := r.ReadByte()
	if err != nil {
		// A lone ESC at end of input
		return "escape", nil
	}
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	b3, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence - discard it
	return "", nil
}

// StreamCodes reads keys from r until it fails and sends every non-empty code
// on out. out is closed when reading stops.
func StreamCodes(r io.Reader, out chan<- string) {
	defer close(out)
	br := bufio.NewReader(r)
	for {
		code, err := ReadCode(br)
		if err != nil {
			return
		}
		if code != "" {
			out <- code
		}
	}
}
