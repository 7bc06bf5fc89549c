// Package scene is the in-memory canvas: the render list of committed and
// in-progress shapes, the active shape, the freehand flag and any freehand
// strokes. It is only ever touched from the UI event goroutine.
package scene

import (
	"image/color"

	"github.com/example/shapedraw/internal/shape"
)

// Stroke is a freehand polyline produced by the brush.
type Stroke struct {
	Points []shape.Point
	Color  color.RGBA
	Width  int
}

// Scene holds everything drawn on the canvas. Shapes are append-only.
type Scene struct {
	shapes   []*shape.Shape
	active   *shape.Shape
	freehand bool
	strokes  []Stroke

	renderCh chan struct{}
	renders  int
}

// New returns an empty scene.
func New() *Scene {
	return &Scene{renderCh: make(chan struct{}, 1)}
}

// AddShape appends sh to the render list. A nil shape is ignored.
func (s *Scene) AddShape(sh *shape.Shape) {
	if sh == nil {
		return
	}
	s.shapes = append(s.shapes, sh)
}

// SetActive marks sh as the shape receiving drag updates.
func (s *Scene) SetActive(sh *shape.Shape) { s.active = sh }

// Active returns the active shape or nil.
func (s *Scene) Active() *shape.Shape { return s.active }

// SetFreehand turns the freehand brush on or off.
func (s *Scene) SetFreehand(on bool) { s.freehand = on }

// Freehand reports whether the freehand brush is enabled.
func (s *Scene) Freehand() bool { return s.freehand }

// RequestRender asks the UI to repaint. Requests coalesce: at most one is
// pending at any time.
func (s *Scene) RequestRender() {
	s.renders++
	select {
	case s.renderCh <- struct{}{}:
	default:
	}
}

// RenderRequests delivers a value whenever a repaint is pending.
func (s *Scene) RenderRequests() <-chan struct{} { return s.renderCh }

// RenderCount returns how many times RequestRender has been called.
func (s *Scene) RenderCount() int { return s.renders }

// Shapes returns the render list in paint order. The slice is a copy but the
// shapes are shared.
func (s *Scene) Shapes() []*shape.Shape {
	out := make([]*shape.Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// Len returns the number of shapes in the render list.
func (s *Scene) Len() int { return len(s.shapes) }

// Strokes returns the committed freehand strokes.
func (s *Scene) Strokes() []Stroke {
	out := make([]Stroke, len(s.strokes))
	copy(out, s.strokes)
	return out
}

// Snapshot is a deep copy of the scene safe to hand to another goroutine.
type Snapshot struct {
	Shapes   []*shape.Shape
	ActiveID string
	Strokes  []Stroke
	Freehand bool
}

// Snapshot copies the current scene, including any stroke still being drawn
// by brush.
func (s *Scene) Snapshot(brush *Brush) Snapshot {
	snap := Snapshot{
		Shapes:   make([]*shape.Shape, 0, len(s.shapes)),
		Strokes:  make([]Stroke, 0, len(s.strokes)+1),
		Freehand: s.freehand,
	}
	for _, sh := range s.shapes {
		snap.Shapes = append(snap.Shapes, sh.Clone())
	}
	if s.active != nil {
		snap.ActiveID = s.active.ID
	}
	for _, st := range s.strokes {
		snap.Strokes = append(snap.Strokes, st.clone())
	}
	if brush != nil && brush.current != nil {
		snap.Strokes = append(snap.Strokes, brush.current.clone())
	}
	return snap
}

func (st Stroke) clone() Stroke {
	pts := make([]shape.Point, len(st.Points))
	copy(pts, st.Points)
	st.Points = pts
	return st
}
