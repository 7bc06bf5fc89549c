package drag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/example/shapedraw/internal/logging"
	"github.com/example/shapedraw/internal/scene"
	"github.com/example/shapedraw/internal/shape"
)

// forgetfulCanvas never reports an active shape.
type forgetfulCanvas struct {
	*scene.Scene
}

func (forgetfulCanvas) Active() *shape.Shape { return nil }

func TestRectLifecycle(t *testing.T) {
	sc := scene.New()
	c := New(sc)
	c.SetMode(ModeRect)

	p1, p2, p3 := shape.Pt(10, 15), shape.Pt(4, 60), shape.Pt(200, 300)
	c.PointerDown(p1)
	if c.State() != Dragging {
		t.Fatalf("state %v after press, want dragging", c.State())
	}
	c.PointerMove(p2)
	got := c.PointerUp(p3)

	shapes := sc.Shapes()
	if len(shapes) != 1 {
		t.Fatalf("expected exactly one shape, got %d", len(shapes))
	}
	r := shapes[0]
	if r != got {
		t.Fatalf("PointerUp returned %v, scene holds %v", got, r)
	}
	if r.Kind != shape.Rectangle {
		t.Fatalf("kind %v, want rect", r.Kind)
	}
	if r.Width != 6 || r.Height != 45 {
		t.Fatalf("extent %vx%v, want 6x45", r.Width, r.Height)
	}
	if r.Anchor() != p1 {
		t.Fatalf("anchor %v, want %v", r.Anchor(), p1)
	}
	if c.State() != Idle || c.Mode() != ModeNone {
		t.Fatalf("after release: state %v mode %v", c.State(), c.Mode())
	}
	if sc.Active() != r {
		t.Fatal("committed shape should remain the canvas's active shape")
	}
}

func TestCircleScenario(t *testing.T) {
	sc := scene.New()
	c := New(sc, WithMode(ModeCircle))
	c.PointerDown(shape.Pt(10, 10))
	c.PointerMove(shape.Pt(50, 30))
	c.PointerUp(shape.Pt(50, 30))

	s := sc.Shapes()[0]
	if s.Radius != 20 {
		t.Fatalf("radius %v, want 20", s.Radius)
	}
	if s.Anchor() != shape.Pt(10, 10) || s.Bounds().X != 10 || s.Bounds().Y != 10 {
		t.Fatalf("left/top moved: %v", s.Bounds())
	}
}

func TestDegenerateEllipseStaysInScene(t *testing.T) {
	sc := scene.New()
	c := New(sc, WithMode(ModeEllipse))
	c.PointerDown(shape.Pt(0, 0))
	c.PointerMove(shape.Pt(0, 0))
	c.PointerUp(shape.Pt(0, 0))
	if sc.Len() != 1 {
		t.Fatalf("expected the degenerate ellipse in the scene, got %d shapes", sc.Len())
	}
	e := sc.Shapes()[0]
	if e.RX != 0 || e.RY != 0 {
		t.Fatalf("rx/ry %v/%v, want 0/0", e.RX, e.RY)
	}
}

func TestPointerDownWithoutModeIsNoop(t *testing.T) {
	sc := scene.New()
	c := New(sc)
	c.PointerDown(shape.Pt(1, 1))
	if sc.Len() != 0 || sc.Active() != nil || sc.RenderCount() != 0 {
		t.Fatalf("scene mutated: len=%d active=%v renders=%d", sc.Len(), sc.Active(), sc.RenderCount())
	}
	if c.State() != Idle {
		t.Fatalf("state %v, want idle", c.State())
	}
}

func TestPointerMoveWithoutModeIsNoop(t *testing.T) {
	sc := scene.New()
	seed := shape.New(shape.Rectangle, shape.Pt(0, 0))
	sc.AddShape(seed)
	sc.SetActive(seed)

	c := New(sc)
	c.PointerMove(shape.Pt(30, 30))
	if seed.Width != 0 || seed.Height != 0 || sc.RenderCount() != 0 {
		t.Fatalf("move without a mode changed the scene: %v renders=%d", seed, sc.RenderCount())
	}
	c.PointerUp(shape.Pt(30, 30))
	if sc.RenderCount() != 0 {
		t.Fatal("release without a mode should not render")
	}
}

func TestPointerMoveBeforePressLeavesCommittedShapes(t *testing.T) {
	sc := scene.New()
	c := New(sc, WithMode(ModeRect))
	c.PointerDown(shape.Pt(0, 0))
	c.PointerMove(shape.Pt(10, 10))
	c.PointerUp(shape.Pt(10, 10))

	c.SetMode(ModeRect)
	c.PointerMove(shape.Pt(90, 90))
	first := sc.Shapes()[0]
	if first.Width != 10 || first.Height != 10 {
		t.Fatalf("committed shape resized to %vx%v", first.Width, first.Height)
	}
}

func TestPointerMoveWithoutActiveShapeIsSafe(t *testing.T) {
	sc := scene.New()
	c := New(forgetfulCanvas{sc}, WithMode(ModeLine))
	c.PointerDown(shape.Pt(5, 5))
	renders := sc.RenderCount()
	c.PointerMove(shape.Pt(9, 9))
	if sc.RenderCount() != renders {
		t.Fatal("move with no active shape should not render")
	}
	if l := sc.Shapes()[0]; l.End != shape.Pt(5, 5) {
		t.Fatalf("line end moved to %v", l.End)
	}
}

func TestPointerMoveRendersEvenWithoutChange(t *testing.T) {
	sc := scene.New()
	c := New(sc, WithMode(ModeRect))
	c.PointerDown(shape.Pt(0, 0))
	before := sc.RenderCount()
	c.PointerMove(shape.Pt(0, 50))
	if sc.RenderCount() != before+1 {
		t.Fatalf("renders %d, want %d", sc.RenderCount(), before+1)
	}
}

func TestPressWhileDraggingIsIgnored(t *testing.T) {
	sc := scene.New()
	c := New(sc, WithMode(ModeTriangle))
	c.PointerDown(shape.Pt(0, 0))
	c.PointerDown(shape.Pt(40, 40))
	if sc.Len() != 1 {
		t.Fatalf("expected 1 shape, got %d", sc.Len())
	}
	c.PointerMove(shape.Pt(20, 10))
	tri := sc.Shapes()[0]
	if tri.Width != 20 || tri.Height != 10 {
		t.Fatalf("extent %vx%v, want 20x10", tri.Width, tri.Height)
	}
}

func TestReleaseClearsModeWithoutDrag(t *testing.T) {
	sc := scene.New()
	c := New(sc, WithMode(ModeLine))
	if got := c.PointerUp(shape.Pt(1, 1)); got != nil {
		t.Fatalf("expected no committed shape, got %v", got)
	}
	if c.Mode() != ModeNone {
		t.Fatalf("mode %v, want none", c.Mode())
	}
	c.PointerDown(shape.Pt(2, 2))
	if sc.Len() != 0 {
		t.Fatal("press after the mode was cleared should not draw")
	}
}

func TestEachGestureNeedsAMode(t *testing.T) {
	sc := scene.New()
	c := New(sc)
	for i, m := range []Mode{ModeRect, ModeCircle, ModeLine} {
		c.SetMode(m)
		c.PointerDown(shape.Pt(float64(i), 0))
		c.PointerMove(shape.Pt(float64(i)+10, 10))
		c.PointerUp(shape.Pt(0, 0))
	}
	c.PointerDown(shape.Pt(100, 100))
	if sc.Len() != 3 {
		t.Fatalf("expected 3 shapes, got %d", sc.Len())
	}
}

func TestClearingModeEndsDrag(t *testing.T) {
	sc := scene.New()
	c := New(sc, WithMode(ModeRect))
	c.PointerDown(shape.Pt(0, 0))
	c.PointerMove(shape.Pt(5, 5))
	c.SetMode(ModeNone)
	if c.State() != Idle {
		t.Fatalf("state %v after clearing the mode, want idle", c.State())
	}
	c.PointerUp(shape.Pt(5, 5))

	c.SetMode(ModeCircle)
	c.PointerDown(shape.Pt(10, 10))
	c.PointerMove(shape.Pt(30, 30))
	c.PointerUp(shape.Pt(30, 30))

	shapes := sc.Shapes()
	if len(shapes) != 2 {
		t.Fatalf("expected rect and circle, got %d shapes", len(shapes))
	}
	if r := shapes[0]; r.Width != 5 || r.Height != 5 {
		t.Fatalf("abandoned rect resized to %vx%v", r.Width, r.Height)
	}
	if ci := shapes[1]; ci.Kind != shape.Circle || ci.Radius != 10 {
		t.Fatalf("unexpected second shape %v", ci)
	}
}

func TestFreehandToggle(t *testing.T) {
	sc := scene.New()
	c := New(sc, WithMode(ModeEllipse))
	c.SetMode(ModeFreehand)
	if !sc.Freehand() {
		t.Fatal("expected freehand on after first toggle")
	}
	if c.Mode() != ModeEllipse {
		t.Fatalf("mode changed to %v", c.Mode())
	}
	c.SetMode(ModeFreehand)
	if sc.Freehand() {
		t.Fatal("expected freehand off after second toggle")
	}
	if c.Mode() != ModeEllipse {
		t.Fatalf("mode changed to %v", c.Mode())
	}
}

func TestCustomPalette(t *testing.T) {
	sc := scene.New()
	p := shape.DefaultPalette()
	p[shape.Rectangle] = shape.Colors{Fill: p[shape.Ellipse].Fill}
	c := New(sc, WithPalette(p), WithMode(ModeRect))
	c.PointerDown(shape.Pt(0, 0))
	if got := sc.Shapes()[0].Fill; got != p[shape.Ellipse].Fill {
		t.Fatalf("fill %v, want %v", got, p[shape.Ellipse].Fill)
	}
}

func TestCommitIsLogged(t *testing.T) {
	var buf bytes.Buffer
	log, _ := logging.New(&buf, logging.Options{Level: "info"})
	sc := scene.New()
	c := New(sc, WithLogger(log), WithMode(ModeRect))
	c.PointerDown(shape.Pt(0, 0))
	c.PointerMove(shape.Pt(3, 4))
	c.PointerUp(shape.Pt(3, 4))
	if !strings.Contains(buf.String(), "shape committed") {
		t.Fatalf("expected commit log, got %q", buf.String())
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"rect", ModeRect},
		{"Rectangle", ModeRect},
		{"circle", ModeCircle},
		{"triangle", ModeTriangle},
		{"ellipse", ModeEllipse},
		{"line", ModeLine},
		{"free-draw", ModeFreehand},
		{"freehand", ModeFreehand},
		{"", ModeNone},
	}
	for _, tc := range tests {
		got, err := ParseMode(tc.in)
		if err != nil {
			t.Errorf("ParseMode(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if _, err := ParseMode("hexagon"); err == nil {
		t.Error("expected error for unknown mode")
	}
	for _, m := range Modes() {
		back, err := ParseMode(m.String())
		if err != nil || back != m {
			t.Errorf("round trip %v: %v %v", m, back, err)
		}
	}
}
