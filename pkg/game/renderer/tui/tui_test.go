package tui

import (
	"strings"
	"testing"

	"github.com/gookit/color"

	"pacpong/pkg/engine/input"
	"pacpong/pkg/engine/world"
	"pacpong/pkg/game/renderer"
)

func plainLines(f *frame) []string {
	lines := f.Lines()
	for i, l := range lines {
		lines[i] = color.ClearCode(l)
	}
	return lines
}

func TestFrame_DrawTextureCoversSprite(t *testing.T) {
	// 10x10 canvas units per cell
	f := newFrame(8, 4, 80, 40)

	f.DrawTexture("wall", world.Vec2{X: 20, Y: 15}, world.Vec2{X: 20, Y: 10})
	// Smaller than a cell: still drawn in the centre cell
	f.DrawTexture("coin", world.Vec2{X: 55, Y: 35}, world.Vec2{X: 2, Y: 2})
	// Off the frame
	f.DrawTexture("ball", world.Vec2{X: -500, Y: -500}, world.Vec2{X: 10, Y: 10})

	lines := plainLines(f)
	want := []string{
		"        ",
		" ▒▒     ",
		"        ",
		"     ·  ",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestFrame_TextOverSprites(t *testing.T) {
	f := newFrame(12, 2, 120, 20)
	f.DrawTexture("hbar", world.Vec2{X: 60, Y: 5}, world.Vec2{X: 120, Y: 10})
	f.DrawText("SCORE{Hi}", 20, 0)

	lines := plainLines(f)
	if lines[0] != "══Hi════════" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if strings.TrimSpace(lines[1]) != "" {
		t.Errorf("line 1 = %q, want blank", lines[1])
	}
}

func TestFrame_UnknownTexture(t *testing.T) {
	f := newFrame(2, 1, 2, 1)
	f.DrawTexture("mystery", world.Vec2{X: 0.5, Y: 0.5}, world.Vec2{X: 1, Y: 1})
	if got := plainLines(f)[0]; got != "# " {
		t.Errorf("line = %q, want %q", got, "# ")
	}
}

type recordingDriver struct {
	events []input.Event
}

func (d *recordingDriver) Handle(ev input.Event)  { d.events = append(d.events, ev) }
func (d *recordingDriver) Update(float64)         {}
func (d *recordingDriver) Render(renderer.Canvas) {}
func (d *recordingDriver) Suspend()               {}
func (d *recordingDriver) Resume()                {}

func TestHandleCode(t *testing.T) {
	d := &recordingDriver{}
	dumps := 0
	host := New(Options{Driver: d, OnDumpMap: func() { dumps++ }})

	if host.handleCode("arrow_left") {
		t.Error("arrow quit the host")
	}
	if host.handleCode("enter") {
		t.Error("enter quit the host")
	}
	if host.handleCode("f9") {
		t.Error("f9 quit the host")
	}
	if !host.handleCode("q") {
		t.Error("q did not quit")
	}

	if len(d.events) != 2 {
		t.Fatalf("events = %v, want 2", d.events)
	}
	if d.events[0].Kind != input.KeyDirection || d.events[0].Direction != world.Left {
		t.Errorf("events[0] = %v, want key-direction(left)", d.events[0])
	}
	if d.events[1].Kind != input.TouchEnded {
		t.Errorf("events[1] = %v, want touch-ended", d.events[1])
	}
	if dumps != 1 {
		t.Errorf("dumps = %d, want 1", dumps)
	}
}
