package renderer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gookit/color"
	"github.com/leonelquinteros/gotext"
)

var (
	ColorText        color.Style
	ColorAction      color.Style
	ColorActionShort color.Style
	ColorDenied      color.Style
	ColorScore       color.Style
	ColorSubtle      color.Style

	regexpStringFunctions = regexp.MustCompile(`([A-Z_]+){([^{}]+)}`)
)

// translate looks up markup operands, which are only known at runtime
var translate = gotext.Get

// InitColors initializes the color styles
func InitColors() {
	ColorText = color.Style{color.FgWhite}
	ColorAction = color.Style{color.FgMagenta}
	ColorActionShort = color.Style{color.FgMagenta, color.OpBold}
	ColorDenied = color.Style{color.FgRed, color.OpBold}
	ColorScore = color.Style{color.FgYellow, color.OpBold}
	ColorSubtle = color.Style{color.FgGray, color.OpBold}
}

func init() {
	InitColors()
}

// FormatString formats a string and expands its markup into terminal colours.
//
//	GT{text}      translated text
//	SCORE{text}   score and counters
//	DANGER{text}  warnings and timers
//	ACTION{text}  prompts; the first letter is highlighted
func FormatString(msg string, a ...any) string {
	return expand(fmt.Sprintf(msg, a...), func(function, operand string) string {
		switch function {
		case "GT":
			return translate(operand)
		case "SCORE":
			return ColorScore.Sprint(operand)
		case "DANGER":
			return ColorDenied.Sprint(operand)
		case "ACTION":
			r := []rune(operand)
			return ColorActionShort.Sprint(string(r[:1])) + ColorAction.Sprint(string(r[1:]))
		}
		return fmt.Sprintf("ERROR, function not found: %v -> %v", function, operand)
	})
}

// StripMarkup removes the markup, keeping the (translated) text. Hosts that
// draw text in a single colour use it.
func StripMarkup(msg string) string {
	return expand(msg, func(function, operand string) string {
		if function == "GT" {
			return translate(operand)
		}
		return operand
	})
}

// VisibleLen returns the length of a formatted string without colour codes
func VisibleLen(s string) int {
	return len([]rune(color.ClearCode(s)))
}

func expand(msg string, fn func(function, operand string) string) string {
	for _, match := range regexpStringFunctions.FindAllStringSubmatch(msg, -1) {
		msg = strings.Replace(msg, match[0], fn(match[1], match[2]), -1)
	}
	return msg
}
