package scene

import (
	"image/color"

	"github.com/example/shapedraw/internal/shape"
)

// Brush draws freehand strokes into a scene while its freehand flag is set.
type Brush struct {
	scene   *Scene
	Color   color.RGBA
	Width   int
	current *Stroke
}

// NewBrush returns a brush painting into sc.
func NewBrush(sc *Scene, col color.RGBA, width int) *Brush {
	if width < 1 {
		width = 1
	}
	return &Brush{scene: sc, Color: col, Width: width}
}

// Drawing reports whether a stroke is in progress.
func (b *Brush) Drawing() bool { return b.current != nil }

// Press starts a stroke at p. It returns false if the freehand flag is off.
func (b *Brush) Press(p shape.Point) bool {
	if !b.scene.freehand {
		return false
	}
	b.current = &Stroke{Points: []shape.Point{p}, Color: b.Color, Width: b.Width}
	b.scene.RequestRender()
	return true
}

// Move extends the stroke in progress.
func (b *Brush) Move(p shape.Point) bool {
	if b.current == nil {
		return false
	}
	last := b.current.Points[len(b.current.Points)-1]
	if last == p {
		return true
	}
	b.current.Points = append(b.current.Points, p)
	b.scene.RequestRender()
	return true
}

// Release commits the stroke in progress. Strokes of a single point are
// discarded.
func (b *Brush) Release(p shape.Point) bool {
	if b.current == nil {
		return false
	}
	b.Move(p)
	if len(b.current.Points) > 1 {
		b.scene.strokes = append(b.scene.strokes, *b.current)
	}
	b.current = nil
	b.scene.RequestRender()
	return true
}
