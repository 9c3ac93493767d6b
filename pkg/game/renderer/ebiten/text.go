package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"pacpong/pkg/engine/world"
	"pacpong/pkg/game/renderer"
)

func newFace() text.Face {
	return text.NewGoXFace(basicfont.Face7x13)
}

// canvas draws one frame onto the Ebiten screen
type canvas struct {
	e      *EbitenRenderer
	screen *ebiten.Image
}

func (c *canvas) Clear() {
	c.screen.Fill(colorBackground)
}

func (c *canvas) DrawTexture(id string, center, size world.Vec2) {
	tex, ok := c.e.library.Get(id)
	if !ok {
		return
	}
	w, h := tex.Size()
	if w == 0 || h == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size.X/w, size.Y/h)
	op.GeoM.Translate(center.X-size.X/2, center.Y-size.Y/2)
	op.Filter = ebiten.FilterLinear
	c.screen.DrawImage(tex.img, op)
}

// DrawText draws text in a single colour with a drop shadow; markup is stripped
func (c *canvas) DrawText(msg string, x, y float64) {
	msg = renderer.StripMarkup(msg)
	c.drawColoredText(msg, x+1, y+1, colorTextShadow)
	c.drawColoredText(msg, x, y, colorText)
}

func (c *canvas) drawColoredText(msg string, x, y float64, col color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	text.Draw(c.screen, msg, c.e.face, op)
}
