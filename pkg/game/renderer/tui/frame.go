package tui

import (
	"math"
	"strings"

	"github.com/gookit/color"

	"pacpong/pkg/engine/world"
	"pacpong/pkg/game/renderer"
)

// glyph is how a texture is drawn in the terminal
type glyph struct {
	icon  string
	style color.Style
}

// Icons for the textures of the shipped variants
var glyphs = map[string]glyph{
	"loading":    {"◌", color.Style{color.FgMagenta, color.OpBold}},
	"wall":       {"▒", color.Style{color.FgBlue}},
	"coin":       {"·", color.Style{color.FgYellow, color.OpBold}},
	"power":      {"●", color.Style{color.FgMagenta, color.OpBold}},
	"hbar":       {"═", color.Style{color.FgGray}},
	"vbar":       {"┊", color.Style{color.FgGray}},
	"player-bar": {"┃", color.Style{color.FgWhite, color.OpBold}},
	"ball":       {"o", color.Style{color.FgWhite, color.OpBold}},
	"up":         {"▲", color.Style{color.FgCyan}},
	"down":       {"▼", color.Style{color.FgCyan}},
	"left":       {"◀", color.Style{color.FgCyan}},
	"right":      {"▶", color.Style{color.FgCyan}},
	"pacman":     {"C", color.Style{color.FgYellow, color.BgBlack, color.OpBold}},
	"phantom":    {"M", color.Style{color.FgRed, color.BgBlack, color.OpBold}},
}

var unknownGlyph = glyph{"#", color.Style{color.FgGray}}

// overlay is a text line placed on the frame
type overlay struct {
	col  int
	text string
}

// frame is a character grid the canvas is scaled onto
type frame struct {
	cols, rows int
	scaleX     float64 // canvas units per column
	scaleY     float64 // canvas units per row

	cells []string // styled icon per cell, "" for blank
	text  map[int][]overlay
}

func newFrame(cols, rows int, canvasW, canvasH float64) *frame {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	f := &frame{
		cols:   cols,
		rows:   rows,
		scaleX: canvasW / float64(cols),
		scaleY: canvasH / float64(rows),
	}
	f.Clear()
	return f
}

func (f *frame) Clear() {
	f.cells = make([]string, f.cols*f.rows)
	f.text = make(map[int][]overlay)
}

// DrawTexture fills the cells covered by the sprite; every sprite covers at
// least the cell its centre is in
func (f *frame) DrawTexture(id string, center, size world.Vec2) {
	g, ok := glyphs[id]
	if !ok {
		g = unknownGlyph
	}
	styled := g.style.Sprint(g.icon)

	r := world.RectFromCenter(center, size.X, size.Y)
	c0, r0 := f.cellOf(r.Left(), r.Top())
	c1, r1 := f.cellOf(math.Nextafter(r.Right(), math.Inf(-1)), math.Nextafter(r.Bottom(), math.Inf(-1)))
	if c1 < c0 || r1 < r0 {
		c0, r0 = f.cellOf(center.X, center.Y)
		c1, r1 = c0, r0
	}
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			f.set(col, row, styled)
		}
	}
}

// DrawText places a line of text; markup is expanded to terminal colours
func (f *frame) DrawText(msg string, x, y float64) {
	col, row := f.cellOf(x, y)
	if row < 0 || row >= f.rows {
		return
	}
	if col < 0 {
		col = 0
	}
	f.text[row] = append(f.text[row], overlay{col: col, text: renderer.FormatString("%s", msg)})
}

func (f *frame) cellOf(x, y float64) (col, row int) {
	return int(math.Floor(x / f.scaleX)), int(math.Floor(y / f.scaleY))
}

func (f *frame) set(col, row int, s string) {
	if col < 0 || col >= f.cols || row < 0 || row >= f.rows {
		return
	}
	f.cells[row*f.cols+col] = s
}

// Lines renders the frame, text drawn over the sprites
func (f *frame) Lines() []string {
	lines := make([]string, f.rows)
	for row := 0; row < f.rows; row++ {
		var b strings.Builder
		texts := f.text[row]
		for col := 0; col < f.cols; {
			if t, ok := textAt(texts, col); ok {
				b.WriteString(t.text)
				col += renderer.VisibleLen(t.text)
				continue
			}
			if s := f.cells[row*f.cols+col]; s != "" {
				b.WriteString(s)
			} else {
				b.WriteByte(' ')
			}
			col++
		}
		lines[row] = b.String()
	}
	return lines
}

func textAt(texts []overlay, col int) (overlay, bool) {
	for _, t := range texts {
		if t.col == col {
			return t, true
		}
	}
	return overlay{}, false
}
