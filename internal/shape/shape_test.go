package shape

import (
	"testing"

	"golang.org/x/image/colornames"
)

func extent(s *Shape) [4]float64 {
	switch s.Kind {
	case Rectangle, Triangle:
		return [4]float64{s.Width, s.Height}
	case Circle:
		return [4]float64{s.Radius}
	case Ellipse:
		return [4]float64{s.RX, s.RY}
	case Line:
		return [4]float64{s.End.X, s.End.Y}
	}
	return [4]float64{}
}

func TestNewUnknownKind(t *testing.T) {
	if s := New(Kind(0), Pt(1, 2)); s != nil {
		t.Fatalf("expected nil shape, got %v", s)
	}
	if s := New(Kind(42), Pt(1, 2)); s != nil {
		t.Fatalf("expected nil shape, got %v", s)
	}
}

func TestNewDefaults(t *testing.T) {
	tests := []struct {
		kind   Kind
		fill   [3]uint8
		stroke [3]uint8
	}{
		{Rectangle, [3]uint8{0, 128, 0}, [3]uint8{}},
		{Circle, [3]uint8{255, 0, 0}, [3]uint8{}},
		{Triangle, [3]uint8{255, 255, 0}, [3]uint8{}},
		{Ellipse, [3]uint8{0, 255, 255}, [3]uint8{}},
		{Line, [3]uint8{255, 0, 0}, [3]uint8{0, 255, 255}},
	}
	for _, tc := range tests {
		s := New(tc.kind, Pt(10, 20))
		if s == nil {
			t.Fatalf("%v: expected shape", tc.kind)
		}
		if s.ID == "" {
			t.Errorf("%v: expected an ID", tc.kind)
		}
		if got := [3]uint8{s.Fill.R, s.Fill.G, s.Fill.B}; got != tc.fill {
			t.Errorf("%v: fill %v, want %v", tc.kind, got, tc.fill)
		}
		if got := [3]uint8{s.Stroke.R, s.Stroke.G, s.Stroke.B}; got != tc.stroke {
			t.Errorf("%v: stroke %v, want %v", tc.kind, got, tc.stroke)
		}
		if s.Anchor() != Pt(10, 20) {
			t.Errorf("%v: anchor %v", tc.kind, s.Anchor())
		}
		if !s.Empty() {
			t.Errorf("%v: expected zero extent on creation", tc.kind)
		}
	}
}

func TestNewIDsAreUnique(t *testing.T) {
	a := New(Rectangle, Pt(0, 0))
	b := New(Rectangle, Pt(0, 0))
	if a.ID == b.ID {
		t.Fatalf("expected distinct IDs, both %q", a.ID)
	}
}

func TestUpdateFormulas(t *testing.T) {
	anchor := Pt(10, 10)
	cur := Pt(50, 30)
	tests := []struct {
		kind Kind
		want [4]float64
	}{
		{Rectangle, [4]float64{40, 20}},
		{Triangle, [4]float64{40, 20}},
		{Circle, [4]float64{20}},
		{Ellipse, [4]float64{20, 10}},
		{Line, [4]float64{50, 30}},
	}
	for _, tc := range tests {
		s := New(tc.kind, anchor)
		if !s.Update(cur) {
			t.Errorf("%v: expected update to report a change", tc.kind)
		}
		if got := extent(s); got != tc.want {
			t.Errorf("%v: extent %v, want %v", tc.kind, got, tc.want)
		}
		if s.Anchor() != anchor {
			t.Errorf("%v: anchor moved to %v", tc.kind, s.Anchor())
		}
	}
}

func TestUpdateBackwardsDragIsNonNegative(t *testing.T) {
	points := []Point{Pt(0, 0), Pt(-30, -5), Pt(5, -40), Pt(-1, 90), Pt(100, 100)}
	for _, k := range Kinds() {
		if k == Line {
			continue
		}
		for _, p := range points {
			s := New(k, Pt(20, 20))
			s.Update(p)
			for i, v := range extent(s) {
				if v < 0 {
					t.Errorf("%v to %v: extent[%d] = %v", k, p, i, v)
				}
			}
		}
	}
}

func TestUpdateAtAnchorIsZero(t *testing.T) {
	anchor := Pt(7, 9)
	for _, k := range Kinds() {
		s := New(k, anchor)
		if s.Update(anchor) {
			t.Errorf("%v: update at anchor should not report a change", k)
		}
		if k == Line {
			if s.End != anchor {
				t.Errorf("line end %v, want %v", s.End, anchor)
			}
			continue
		}
		if got := extent(s); got != ([4]float64{}) {
			t.Errorf("%v: extent %v, want zero", k, got)
		}
	}
}

func TestUpdateDegenerateKeepsPreviousExtent(t *testing.T) {
	s := New(Rectangle, Pt(0, 0))
	s.Update(Pt(30, 40))
	if s.Update(Pt(60, 0)) {
		t.Fatal("zero height update should be skipped")
	}
	if s.Width != 30 || s.Height != 40 {
		t.Fatalf("extent changed to %vx%v", s.Width, s.Height)
	}

	e := New(Ellipse, Pt(0, 0))
	e.Update(Pt(10, 10))
	if e.Update(Pt(0, 50)) {
		t.Fatal("zero rx update should be skipped")
	}
	if e.RX != 5 || e.RY != 5 {
		t.Fatalf("ellipse changed to %v/%v", e.RX, e.RY)
	}

	c := New(Circle, Pt(0, 0))
	if c.Update(Pt(0, 80)) {
		t.Fatal("circle with no horizontal delta should be skipped")
	}
}

func TestUpdateIdempotent(t *testing.T) {
	p := Pt(33, 71)
	for _, k := range Kinds() {
		s := New(k, Pt(3, 4))
		s.Update(p)
		first := extent(s)
		if s.Update(p) {
			t.Errorf("%v: repeated update reported a change", k)
		}
		if second := extent(s); second != first {
			t.Errorf("%v: %v then %v", k, first, second)
		}
	}
}

func TestBounds(t *testing.T) {
	c := New(Circle, Pt(10, 10))
	c.Update(Pt(50, 30))
	if got, want := c.Bounds(), (Rect{X: 10, Y: 10, W: 40, H: 40}); got != want {
		t.Errorf("circle bounds %v, want %v", got, want)
	}
	l := New(Line, Pt(10, 10))
	l.Update(Pt(0, 30))
	if got, want := l.Bounds(), (Rect{X: 0, Y: 10, W: 10, H: 20}); got != want {
		t.Errorf("line bounds %v, want %v", got, want)
	}
}

func TestPaletteOverride(t *testing.T) {
	p := DefaultPalette()
	p[Circle] = Colors{Fill: colornames.Navy, Stroke: colornames.White}
	s := p.New(Circle, Pt(0, 0))
	if s.Fill != colornames.Navy || s.Stroke != colornames.White {
		t.Fatalf("palette override ignored: %+v %+v", s.Fill, s.Stroke)
	}
	delete(p, Rectangle)
	r := p.New(Rectangle, Pt(0, 0))
	if r.Fill != colornames.Green {
		t.Fatalf("missing palette entry should fall back to default, got %+v", r.Fill)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, ok := ParseKind(k.String())
		if !ok || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, ok)
		}
	}
	if _, ok := ParseKind("free-draw"); ok {
		t.Error("free-draw is not a shape kind")
	}
	if got, ok := ParseKind(" Rectangle "); !ok || got != Rectangle {
		t.Errorf("alias not accepted: %v %v", got, ok)
	}
}

func TestString(t *testing.T) {
	s := New(Circle, Pt(10, 10))
	s.Update(Pt(50, 30))
	if got, want := s.String(), "circle anchor=(10,10) radius=20"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	l := New(Line, Pt(1.5, 2))
	l.Update(Pt(3.25, 4))
	if got, want := l.String(), "line anchor=(1.5,2) end=(3.25,4)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
