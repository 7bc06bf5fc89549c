// Package shape holds the geometric primitives drawn by dragging on the canvas.
//
// A Shape is a closed tagged variant: its Kind selects which extent fields are
// meaningful and Update recomputes them from the fixed anchor and the current
// pointer position.
package shape

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/google/uuid"
)

// Point is a position in canvas coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) String() string {
	return fmt.Sprintf("(%s,%s)", trimFloat(p.X), trimFloat(p.Y))
}

// Rect is an axis-aligned box with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the box has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Shape is one drawable primitive. The anchor is fixed at construction and
// doubles as the shape's left/top position; only the extent fields change
// while the shape is being dragged out.
type Shape struct {
	ID   string
	Kind Kind

	anchor Point

	// Rectangle and Triangle.
	Width, Height float64
	// Circle.
	Radius float64
	// Ellipse.
	RX, RY float64
	// Line endpoint.
	End Point

	Fill   color.RGBA
	Stroke color.RGBA
}

// New builds a shape of the given kind anchored at p using the default
// palette. It returns nil for an unknown kind.
func New(kind Kind, p Point) *Shape {
	return DefaultPalette().New(kind, p)
}

func newShape(kind Kind, p Point, c Colors) *Shape {
	if !kind.Valid() {
		return nil
	}
	s := &Shape{
		ID:     uuid.NewString(),
		Kind:   kind,
		anchor: p,
		Fill:   c.Fill,
		Stroke: c.Stroke,
	}
	if kind == Line {
		s.End = p
	}
	return s
}

// Anchor returns the point the shape was created at.
func (s *Shape) Anchor() Point { return s.anchor }

// Update recomputes the extent from the anchor and the current pointer
// position. It returns false when the extent did not change, either because
// the new extent would be degenerate (zero width or height) or because it
// equals the current one.
func (s *Shape) Update(p Point) bool {
	dx := math.Abs(p.X - s.anchor.X)
	dy := math.Abs(p.Y - s.anchor.Y)
	switch s.Kind {
	case Rectangle, Triangle:
		if dx == 0 || dy == 0 {
			return false
		}
		if s.Width == dx && s.Height == dy {
			return false
		}
		s.Width, s.Height = dx, dy
		return true
	case Circle:
		r := dx / 2
		if r == 0 || r == s.Radius {
			return false
		}
		s.Radius = r
		return true
	case Ellipse:
		rx, ry := dx/2, dy/2
		if rx == 0 || ry == 0 {
			return false
		}
		if s.RX == rx && s.RY == ry {
			return false
		}
		s.RX, s.RY = rx, ry
		return true
	case Line:
		if s.End == p {
			return false
		}
		s.End = p
		return true
	}
	return false
}

// Bounds returns the box the shape occupies on the canvas.
func (s *Shape) Bounds() Rect {
	a := s.anchor
	switch s.Kind {
	case Rectangle, Triangle:
		return Rect{X: a.X, Y: a.Y, W: s.Width, H: s.Height}
	case Circle:
		return Rect{X: a.X, Y: a.Y, W: 2 * s.Radius, H: 2 * s.Radius}
	case Ellipse:
		return Rect{X: a.X, Y: a.Y, W: 2 * s.RX, H: 2 * s.RY}
	case Line:
		return Rect{
			X: math.Min(a.X, s.End.X),
			Y: math.Min(a.Y, s.End.Y),
			W: math.Abs(s.End.X - a.X),
			H: math.Abs(s.End.Y - a.Y),
		}
	}
	return Rect{X: a.X, Y: a.Y}
}

// Empty reports whether the shape has no visible extent yet.
func (s *Shape) Empty() bool {
	if s.Kind == Line {
		return s.End == s.anchor
	}
	return s.Bounds().Empty()
}

// Clone returns an independent copy, including the anchor.
func (s *Shape) Clone() *Shape {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

func (s *Shape) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s anchor=%s", s.Kind, s.anchor)
	switch s.Kind {
	case Rectangle, Triangle:
		fmt.Fprintf(&sb, " width=%s height=%s", trimFloat(s.Width), trimFloat(s.Height))
	case Circle:
		fmt.Fprintf(&sb, " radius=%s", trimFloat(s.Radius))
	case Ellipse:
		fmt.Fprintf(&sb, " rx=%s ry=%s", trimFloat(s.RX), trimFloat(s.RY))
	case Line:
		fmt.Fprintf(&sb, " end=%s", s.End)
	}
	return sb.String()
}

func trimFloat(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}
