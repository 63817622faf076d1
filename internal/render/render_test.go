package render

import (
	"testing"

	"dungeon-crawler/internal/gamemap"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) tcell.Screen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	ss.SetSize(80, 24) // Init resets the size

	t.Cleanup(ss.Fini)
	return ss
}

func TestCameraCentersOnFocus(t *testing.T) {
	c := NewCamera(gamemap.Pt(40, 25), 40, 25)
	if c.Left != 20 || c.Right != 60 || c.Top != 13 || c.Bottom != 37 {
		t.Fatalf("unexpected camera %+v", c)
	}
	c.OnPlayerMove(gamemap.Pt(41, 25))
	if c.Left != 21 || c.Right != 61 {
		t.Errorf("camera did not follow the focus: %+v", c)
	}
}

func TestCameraWorldToScreen(t *testing.T) {
	c := NewCamera(gamemap.Pt(10, 10), 10, 10)
	s, ok := c.WorldToScreen(gamemap.Pt(10, 10))
	if !ok || s != gamemap.Pt(5, 5) {
		t.Errorf("focus maps to %v,%v; want (5,5),true", s, ok)
	}
	if _, ok := c.WorldToScreen(gamemap.Pt(15, 10)); ok {
		t.Error("right edge is exclusive")
	}
	if _, ok := c.WorldToScreen(gamemap.Pt(10, 15)); !ok {
		t.Error("bottom edge is inclusive")
	}
	if w := c.ScreenToWorld(s); w != gamemap.Pt(10, 10) {
		t.Errorf("ScreenToWorld round trip = %v", w)
	}
}

func TestBatchOrdersByLayer(t *testing.T) {
	b := NewBatch()
	b.Target(LayerEntities)
	b.Set(gamemap.Pt(1, 1), "@", tcell.ColorYellow, tcell.ColorBlack)
	b.Target(LayerMap)
	b.Set(gamemap.Pt(1, 1), ".", tcell.ColorGray, tcell.ColorBlack)
	b.Set(gamemap.Pt(2, 1), "#", tcell.ColorWhite, tcell.ColorBlack)

	cmds := b.Commands()
	if len(cmds) != 3 || b.Len() != 3 {
		t.Fatalf("expected 3 commands, got %d", len(cmds))
	}
	if cmds[0].Glyph != "." || cmds[1].Glyph != "#" || cmds[2].Glyph != "@" {
		t.Errorf("unexpected order: %v", cmds)
	}
	if top, ok := b.At(gamemap.Pt(1, 1)); !ok || top.Glyph != "@" {
		t.Errorf("top-most glyph at (1,1) = %q; want @", top.Glyph)
	}
	if _, ok := b.At(gamemap.Pt(9, 9)); ok {
		t.Error("no command was queued at (9,9)")
	}
}

func TestRendererPresent(t *testing.T) {
	screen := newSimScreen(t)
	r := NewRenderer(screen)
	if w, h := r.ViewSize(); w != 40 || h != 22 {
		t.Fatalf("ViewSize = %d,%d; want 40,22", w, h)
	}

	b := NewBatch()
	b.Set(gamemap.Pt(0, 0), "#", tcell.ColorWhite, tcell.ColorBlack)
	b.Target(LayerEntities)
	b.Set(gamemap.Pt(3, 2), "@", tcell.ColorYellow, tcell.ColorBlack)
	r.Present(b, Status{Turn: "AwaitingInput", Seed: 42})

	if mainc, _, _, _ := screen.GetContent(0, 0); mainc != '#' {
		t.Errorf("expected '#' at column 0, got %q", mainc)
	}
	if mainc, _, _, _ := screen.GetContent(6, 2); mainc != '@' {
		t.Errorf("expected '@' at column 6 (tile 3), got %q", mainc)
	}
	if mainc, _, _, _ := screen.GetContent(0, 23); mainc != 'T' {
		t.Errorf("expected status line on the last row, got %q", mainc)
	}
}

func TestCameraResizeAndRows(t *testing.T) {
	c := NewCamera(gamemap.Pt(20, 20), 40, 25)
	if c.Rows() != 25 {
		t.Fatalf("odd height: Rows = %d; want 25", c.Rows())
	}
	c.Resize(10, 24, gamemap.Pt(30, 10))
	if c.Left != 25 || c.Right != 35 || c.Top != -2 || c.Bottom != 22 {
		t.Fatalf("unexpected window after Resize: %+v", c)
	}
	if c.Rows() != 25 {
		t.Errorf("even height covers one extra row: Rows = %d; want 25", c.Rows())
	}
}
