package tagball

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func cellRune(s tcell.Screen, col, row int) (rune, tcell.Style) {
	r, _, st, _ := s.GetContent(col, row)
	return r, st
}

func TestTermCanvasGeometry(t *testing.T) {
	c := NewTermCanvas(newSimScreen(t, 40, 10), ColorWhite)
	if w, h := c.Size(); w != 360 || h != 180 {
		t.Errorf("size = %dx%d, want 360x180", w, h)
	}
	if col, row := c.CellAt(20, 40); col != 2 || row != 2 {
		t.Errorf("CellAt(20, 40) = (%d, %d), want (2, 2)", col, row)
	}
	if col, row := c.CellAt(-1, -1); col != -1 || row != -1 {
		t.Errorf("CellAt(-1, -1) = (%d, %d), want (-1, -1)", col, row)
	}
	if x, y := c.CellCenter(2, 2); x != 22.5 || y != 45 {
		t.Errorf("CellCenter(2, 2) = (%v, %v), want (22.5, 45)", x, y)
	}
}

func TestTermCanvasMeasureText(t *testing.T) {
	c := NewTermCanvas(newSimScreen(t, 10, 10), ColorWhite)
	tests := []struct {
		s    string
		want float64
	}{
		{"", 0},
		{"go", 18},
		{"世界", 36},
	}
	for _, tt := range tests {
		if got := c.MeasureText(tt.s); got != tt.want {
			t.Errorf("MeasureText(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestTermCanvasFillTextCentered(t *testing.T) {
	s := newSimScreen(t, 40, 10)
	c := NewTermCanvas(s, ColorWhite)
	c.Translate(180, 90)
	c.SetFillColor(ColorRed)
	c.FillText("go", 0, 0)

	r, st := cellRune(s, 19, 5)
	if r != 'g' {
		t.Errorf("cell (19, 5) = %q, want 'g'", r)
	}
	if r, _ := cellRune(s, 20, 5); r != 'o' {
		t.Errorf("cell (20, 5) = %q, want 'o'", r)
	}
	fg, bg, attr := st.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("fg = %v, want red", fg)
	}
	if bg != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("bg = %v, want white", bg)
	}
	if attr&tcell.AttrBold == 0 {
		t.Error("opaque label should be bold")
	}
}

func TestTermCanvasFillTextFadesTowardBackground(t *testing.T) {
	s := newSimScreen(t, 40, 10)
	c := NewTermCanvas(s, ColorWhite)
	c.SetFillColor(ColorRed.WithAlpha(0.5))
	c.FillText("x", 180, 90)

	_, st := cellRune(s, 20, 5)
	fg, _, attr := st.Decompose()
	if fg != tcell.NewRGBColor(255, 128, 128) {
		t.Errorf("fg = %v, want half-faded red", fg)
	}
	if attr&tcell.AttrBold != 0 {
		t.Error("faded label should not be bold")
	}
}

func TestTermCanvasFillTextClipped(t *testing.T) {
	s := newSimScreen(t, 4, 2)
	c := NewTermCanvas(s, ColorWhite)
	c.FillText("hidden", 10, -50) // row above the screen
	c.FillText("abcdef", 0, 9)    // runs off both sides
	if r, _ := cellRune(s, 0, 0); r != 'd' {
		t.Errorf("cell (0, 0) = %q, want 'd'", r)
	}
	if r, _ := cellRune(s, 1, 0); r != 'e' {
		t.Errorf("cell (1, 0) = %q, want 'e'", r)
	}
}

func TestTermCanvasClearRect(t *testing.T) {
	s := newSimScreen(t, 10, 4)
	c := NewTermCanvas(s, ColorBlack)
	c.SetFillColor(ColorWhite)
	c.FillText("ab", 45, 9)
	c.ClearRect(0, 0, 90, 72)
	for row := 0; row < 4; row++ {
		for col := 0; col < 10; col++ {
			r, st := cellRune(s, col, row)
			if r != ' ' {
				t.Fatalf("cell (%d, %d) = %q after clear", col, row, r)
			}
			if _, bg, _ := st.Decompose(); bg != tcell.NewRGBColor(0, 0, 0) {
				t.Fatalf("cell (%d, %d) bg = %v, want black", col, row, bg)
			}
		}
	}
}

func TestTermCanvasRunsCloud(t *testing.T) {
	s := newSimScreen(t, 80, 30)
	c := NewTermCanvas(s, ColorWhite)
	cfg := DefaultConfig()
	cfg.Tags = makeTags(12)
	cl, err := New(c, cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !cl.Tick() {
		t.Fatal("tick failed")
	}
	cells, _, _ := s.GetContents()
	drawn := 0
	for _, cell := range cells {
		if len(cell.Runes) > 0 && cell.Runes[0] != ' ' && cell.Runes[0] != 0 {
			drawn++
		}
	}
	if drawn == 0 {
		t.Error("no labels reached the screen")
	}
}

func TestTermInputHandle(t *testing.T) {
	s := newSimScreen(t, 40, 20)
	c := NewTermCanvas(s, ColorWhite)
	cfg := DefaultConfig()
	cfg.Tags = makeTags(4)
	cl, err := New(c, cfg, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	in := &termInput{cloud: cl, canvas: c}

	if in.handle(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)) {
		t.Fatal("'p' should not quit")
	}
	if cl.Scene().State() != StatePaused {
		t.Errorf("state = %v, want paused", cl.Scene().State())
	}
	in.handle(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone))
	if cl.Scene().State() != StateRunning {
		t.Errorf("state = %v, want running", cl.Scene().State())
	}

	in.handle(tcell.NewEventMouse(20, 10, tcell.ButtonNone, tcell.ModNone))
	// Cell (20, 10) centers on (184.5, 189); the origin is (180, 180).
	if p := cl.Scene().Pointer(); p.X != 4.5 || p.Y != 9 {
		t.Errorf("pointer = (%v, %v), want (4.5, 9)", p.X, p.Y)
	}

	in.handle(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	if !in.down {
		t.Error("button press not tracked")
	}
	in.handle(tcell.NewEventMouse(0, 0, tcell.ButtonNone, tcell.ModNone))
	if in.down {
		t.Error("button release not tracked")
	}

	for _, ev := range []tcell.Event{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone),
	} {
		if !in.handle(ev) {
			t.Errorf("%v should quit", ev)
		}
	}
}

func TestRunTerminalQuitKey(t *testing.T) {
	s := newSimScreen(t, 40, 20)
	cfg := DefaultConfig()
	cfg.Tags = makeTags(6)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	if err := RunTerminal(ctx, s, cfg, nil, TermConfig{FPS: 60}); err != nil {
		t.Fatalf("RunTerminal: %v", err)
	}
	if ctx.Err() != nil {
		t.Error("RunTerminal returned on timeout instead of the quit key")
	}
}

func TestRunTerminalConfigError(t *testing.T) {
	s := newSimScreen(t, 10, 10)
	if err := RunTerminal(context.Background(), s, Config{}, nil, TermConfig{}); err == nil {
		t.Error("expected configuration error")
	}
}
