package drag

import (
	"fmt"
	"strings"

	"github.com/example/shapedraw/internal/shape"
)

// Mode is the draw-mode selection. ModeNone means nothing will be created on
// the next press; ModeFreehand is a selector value only and is never stored
// as the current mode.
type Mode int

const (
	ModeNone Mode = iota
	ModeRect
	ModeCircle
	ModeTriangle
	ModeEllipse
	ModeLine
	ModeFreehand
)

var modeKinds = map[Mode]shape.Kind{
	ModeRect:     shape.Rectangle,
	ModeCircle:   shape.Circle,
	ModeTriangle: shape.Triangle,
	ModeEllipse:  shape.Ellipse,
	ModeLine:     shape.Line,
}

// Modes lists every selectable mode in toolbar order.
func Modes() []Mode {
	return []Mode{ModeRect, ModeCircle, ModeTriangle, ModeEllipse, ModeLine, ModeFreehand}
}

// ModeOf returns the mode that draws shapes of kind k.
func ModeOf(k shape.Kind) Mode {
	for m, mk := range modeKinds {
		if mk == k {
			return m
		}
	}
	return ModeNone
}

// Kind returns the shape kind drawn in this mode.
func (m Mode) Kind() (shape.Kind, bool) {
	k, ok := modeKinds[m]
	return k, ok
}

func (m Mode) String() string {
	switch m {
	case ModeNone:
		return "none"
	case ModeFreehand:
		return "free-draw"
	}
	if k, ok := m.Kind(); ok {
		return k.String()
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode parses a mode selector such as "rect" or "free-draw".
func ParseMode(s string) (Mode, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "none", "":
		return ModeNone, nil
	case "free-draw", "freehand", "free":
		return ModeFreehand, nil
	}
	if k, ok := shape.ParseKind(name); ok {
		return ModeOf(k), nil
	}
	return ModeNone, fmt.Errorf("unknown draw mode %q", s)
}
