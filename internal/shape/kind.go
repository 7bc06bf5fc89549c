package shape

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Kind tags the variant of a Shape.
type Kind int

const (
	Rectangle Kind = iota + 1
	Circle
	Triangle
	Ellipse
	Line
)

var kindNames = map[Kind]string{
	Rectangle: "rect",
	Circle:    "circle",
	Triangle:  "triangle",
	Ellipse:   "ellipse",
	Line:      "line",
}

// Kinds lists every shape kind in toolbar order.
func Kinds() []Kind {
	return []Kind{Rectangle, Circle, Triangle, Ellipse, Line}
}

// Valid reports whether k names one of the known variants.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind maps a mode tag such as "rect" or "ellipse" to its Kind.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rect", "rectangle":
		return Rectangle, true
	case "circle":
		return Circle, true
	case "triangle":
		return Triangle, true
	case "ellipse":
		return Ellipse, true
	case "line":
		return Line, true
	}
	return 0, false
}

// Colors is the fill and stroke used for newly created shapes of a kind.
type Colors struct {
	Fill   color.RGBA
	Stroke color.RGBA
}

// Palette maps each kind to the colours new shapes receive.
type Palette map[Kind]Colors

// DefaultPalette returns the built-in colours: green rectangles, red circles,
// yellow triangles, cyan ellipses and red/cyan lines.
func DefaultPalette() Palette {
	return Palette{
		Rectangle: {Fill: colornames.Green},
		Circle:    {Fill: colornames.Red},
		Triangle:  {Fill: colornames.Yellow},
		Ellipse:   {Fill: colornames.Cyan},
		Line:      {Fill: colornames.Red, Stroke: colornames.Cyan},
	}
}

// New builds a shape of the given kind anchored at p with zero extent. Kinds
// missing from the palette fall back to the default colours. It returns nil
// for an unknown kind.
func (p Palette) New(kind Kind, at Point) *Shape {
	c, ok := p[kind]
	if !ok {
		c = DefaultPalette()[kind]
	}
	return newShape(kind, at, c)
}

// Clone returns a copy that can be modified independently.
func (p Palette) Clone() Palette {
	out := make(Palette, len(p))
	for k, v := range p {
		out[k] = v
	}
	return out
}
