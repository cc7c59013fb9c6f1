package tagball

import (
	"context"
	"errors"
	"testing"
)

func newTestScene(t *testing.T, n int) (*Scene, *fakeCanvas) {
	t.Helper()
	c := newFakeCanvas(500, 500)
	s, err := NewScene(c, SceneConfig{
		Items:  Layout(makeTags(n), 500, DefaultLayoutOptions()),
		Origin: Vec2{250, 250},
	})
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return s, c
}

func TestNewSceneRequiresConfig(t *testing.T) {
	if _, err := NewScene(newFakeCanvas(10, 10), SceneConfig{}); !errors.Is(err, ErrConfiguration) {
		t.Errorf("missing items: err = %v, want ErrConfiguration", err)
	}
	if _, err := NewScene(nil, SceneConfig{Items: []*Item{}}); !errors.Is(err, ErrConfiguration) {
		t.Errorf("nil canvas: err = %v, want ErrConfiguration", err)
	}
}

func TestNewSceneDefaults(t *testing.T) {
	s, _ := newTestScene(t, 3)
	if s.State() != StateStopped {
		t.Errorf("state = %v, want stopped", s.State())
	}
	if len(s.Items()) != 3 {
		t.Errorf("items = %d, want 3", len(s.Items()))
	}
	if w, h := s.Size(); w != 500 || h != 500 {
		t.Errorf("size = %vx%v, want 500x500", w, h)
	}
	if s.Pointer() != initialPointerState(500, 500) {
		t.Errorf("pointer = %+v", s.Pointer())
	}
}

func TestSceneTickStoppedDoesNothing(t *testing.T) {
	s, c := newTestScene(t, 3)
	if s.Tick() {
		t.Error("Tick on a stopped scene should return false")
	}
	if len(c.ops) != 0 || len(c.texts) != 0 {
		t.Errorf("stopped scene touched the canvas: %v", c.ops)
	}
}

func TestSceneStartIdempotent(t *testing.T) {
	s, c := newTestScene(t, 1)
	s.Start(context.Background())
	s.Start(context.Background())
	if s.State() != StateRunning {
		t.Fatalf("state = %v, want running", s.State())
	}
	if n := c.countOps("save"); n != 1 {
		t.Errorf("save called %d times, want 1", n)
	}
	if n := c.countOps("translate"); n != 1 {
		t.Errorf("translate called %d times, want 1", n)
	}
}

func TestSceneTickDrawsAllItemsInOrder(t *testing.T) {
	s, c := newTestScene(t, 4)
	s.Start(context.Background())
	if !s.Tick() {
		t.Fatal("Tick returned false while running")
	}
	if n := c.countOps("clear -250 -250 500 500"); n != 1 {
		t.Errorf("clear ops = %v", c.ops)
	}
	if len(c.texts) != 4 {
		t.Fatalf("drew %d labels, want 4", len(c.texts))
	}
	for i, txt := range c.texts {
		if want := makeTags(4)[i].Name; txt.s != want {
			t.Errorf("label %d = %q, want %q", i, txt.s, want)
		}
	}
	if s.Frame() != 1 {
		t.Errorf("frame = %d, want 1", s.Frame())
	}
}

func TestScenePauseFreezesFrame(t *testing.T) {
	s, c := newTestScene(t, 3)
	s.Start(context.Background())
	s.Tick()
	before := make([]Vec3, 3)
	for i, it := range s.Items() {
		before[i] = it.Position()
	}

	s.Pause()
	if s.State() != StatePaused {
		t.Fatalf("state = %v, want paused", s.State())
	}
	for i := 0; i < 5; i++ {
		if !s.Tick() {
			t.Fatal("paused scene should keep ticking")
		}
	}
	if c.countOps("clear") != 1 {
		t.Errorf("paused scene cleared the canvas: %v", c.ops)
	}
	for i, it := range s.Items() {
		if it.Position() != before[i] {
			t.Errorf("item %d moved while paused", i)
		}
	}

	s.Resume()
	if s.State() != StateRunning {
		t.Fatalf("state = %v, want running", s.State())
	}
	s.Tick()
	if c.countOps("clear") != 2 {
		t.Errorf("resumed scene did not redraw")
	}
}

func TestScenePauseReachesItems(t *testing.T) {
	s, _ := newTestScene(t, 3)
	s.Start(context.Background())
	s.Pause()
	for i, it := range s.Items() {
		if !it.Paused() {
			t.Errorf("item %d not paused by Scene.Pause", i)
		}
	}
}

func TestSceneStartResumesPaused(t *testing.T) {
	s, c := newTestScene(t, 1)
	s.Start(context.Background())
	s.Pause()
	s.Start(context.Background())
	if s.State() != StateRunning {
		t.Errorf("state = %v, want running", s.State())
	}
	if c.countOps("save") != 1 {
		t.Errorf("resume via Start should not save again")
	}
}

func TestSceneStop(t *testing.T) {
	s, c := newTestScene(t, 2)
	s.Start(context.Background())
	s.Tick()
	s.Stop()
	s.Stop()
	if s.State() != StateStopped {
		t.Errorf("state = %v, want stopped", s.State())
	}
	if n := c.countOps("restore"); n != 1 {
		t.Errorf("restore called %d times, want 1", n)
	}
	if s.Tick() {
		t.Error("Tick after Stop should return false")
	}
}

func TestSceneContextCancelStopsNextTick(t *testing.T) {
	s, c := newTestScene(t, 2)
	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	if !s.Tick() {
		t.Fatal("first tick should run")
	}
	cancel()
	if s.Tick() {
		t.Error("tick after cancel should return false")
	}
	if s.State() != StateStopped {
		t.Errorf("state = %v, want stopped", s.State())
	}
	if c.countOps("restore") != 1 {
		t.Error("cancellation should restore the canvas")
	}
}

func TestSceneRestartAfterStop(t *testing.T) {
	s, c := newTestScene(t, 1)
	s.Start(context.Background())
	s.Stop()
	s.Start(context.Background())
	if !s.Tick() {
		t.Error("restarted scene should tick")
	}
	if c.countOps("save") != 2 {
		t.Errorf("save ops = %d, want 2", c.countOps("save"))
	}
}

func TestScenePointerSetters(t *testing.T) {
	s, _ := newTestScene(t, 0)
	s.SetPointerPolar(PolarPayload{Angle: 1, Radius: 2})
	s.SetPointerCartesian(CartesianPayload{X: 3, Y: 4})
	if want := (PointerState{X: 3, Y: 4, Angle: 1, Radius: 2}); s.Pointer() != want {
		t.Errorf("pointer = %+v, want %+v", s.Pointer(), want)
	}
}

func TestSceneEmpty(t *testing.T) {
	s, c := newTestScene(t, 0)
	s.Start(context.Background())
	if !s.Tick() {
		t.Error("empty scene should tick")
	}
	if len(c.texts) != 0 {
		t.Errorf("empty scene drew %d labels", len(c.texts))
	}
}

func TestSceneAddItemIgnoresNil(t *testing.T) {
	s, _ := newTestScene(t, 0)
	s.AddItem(nil)
	s.AddItem(newTestItem(Vec3{0, 0, 1}))
	if len(s.Items()) != 1 {
		t.Errorf("items = %d, want 1", len(s.Items()))
	}
}

func TestSceneDebugModeTicks(t *testing.T) {
	s, _ := newTestScene(t, 2)
	s.SetDebugMode(true)
	s.Start(context.Background())
	if !s.Tick() {
		t.Error("debug tick should run")
	}
	s.SetDebugMode(false)
}

func TestStateString(t *testing.T) {
	tests := []struct {
		s    State
		want string
	}{
		{StateStopped, "stopped"},
		{StateRunning, "running"},
		{StatePaused, "paused"},
		{State(9), "State(9)"},
	}
	for _, tt := range tests {
		if got := tt.s.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
