// Package drag turns press/move/release pointer gestures into shapes.
//
// A Controller is either Idle or Dragging. A press with a draw mode selected
// creates a shape anchored at the press point and starts a drag; moves resize
// that shape; the release ends the drag and clears the mode so exactly one
// shape is produced per gesture. Malformed event sequences are silently
// ignored.
package drag

import (
	"log/slog"

	"github.com/example/shapedraw/internal/logging"
	"github.com/example/shapedraw/internal/shape"
)

// Canvas is the scene the controller draws into.
type Canvas interface {
	AddShape(*shape.Shape)
	RequestRender()
	SetActive(*shape.Shape)
	Active() *shape.Shape
	SetFreehand(bool)
	Freehand() bool
}

// State is the gesture state of a Controller.
type State int

const (
	Idle State = iota
	Dragging
)

func (s State) String() string {
	if s == Dragging {
		return "dragging"
	}
	return "idle"
}

// Controller owns the drag session for a canvas. It is not safe for
// concurrent use; call it from the UI event goroutine.
type Controller struct {
	canvas  Canvas
	palette shape.Palette
	log     *slog.Logger

	mode    Mode
	session *session
}

type session struct {
	shape *shape.Shape
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for gesture tracing.
func WithLogger(l *slog.Logger) Option { return func(c *Controller) { c.log = l } }

// WithPalette sets the colours given to new shapes.
func WithPalette(p shape.Palette) Option { return func(c *Controller) { c.palette = p } }

// WithMode selects the initial draw mode.
func WithMode(m Mode) Option { return func(c *Controller) { c.SetMode(m) } }

// New returns an idle controller drawing into canvas.
func New(canvas Canvas, opts ...Option) *Controller {
	c := &Controller{
		canvas:  canvas,
		palette: shape.DefaultPalette(),
		log:     logging.Discard(),
	}
	for _, o := range opts {
		o(c)
	}
	if c.log == nil {
		c.log = logging.Discard()
	}
	return c
}

// Mode returns the currently selected draw mode.
func (c *Controller) Mode() Mode { return c.mode }

// Palette returns the colours given to new shapes.
func (c *Controller) Palette() shape.Palette { return c.palette }

// State reports whether a drag is in progress.
func (c *Controller) State() State {
	if c.session != nil {
		return Dragging
	}
	return Idle
}

// Active returns the shape being dragged out, or nil when idle.
func (c *Controller) Active() *shape.Shape {
	if c.session == nil {
		return nil
	}
	return c.session.shape
}

// SetMode selects the kind of shape the next press creates. ModeFreehand
// toggles the canvas freehand flag instead and leaves the draw mode alone.
// ModeNone ends a running drag, keeping the shape as last drawn.
func (c *Controller) SetMode(m Mode) {
	if m == ModeFreehand {
		on := !c.canvas.Freehand()
		c.canvas.SetFreehand(on)
		c.log.Debug("freehand toggled", "on", on)
		return
	}
	if m == ModeNone && c.session != nil {
		c.log.Debug("drag abandoned", "id", c.session.shape.ID)
		c.session = nil
		c.canvas.RequestRender()
	}
	c.mode = m
	c.log.Debug("mode selected", "mode", m)
}

// PointerDown starts a drag at p if a draw mode is selected and no drag is
// already running.
func (c *Controller) PointerDown(p shape.Point) {
	kind, ok := c.mode.Kind()
	if !ok {
		return
	}
	if c.session != nil {
		c.log.Debug("press ignored while dragging", "at", p)
		return
	}
	sh := c.palette.New(kind, p)
	if sh == nil {
		return
	}
	c.canvas.AddShape(sh)
	c.canvas.SetActive(sh)
	c.session = &session{shape: sh}
	c.canvas.RequestRender()
	c.log.Debug("drag started", "kind", kind, "id", sh.ID, "anchor", p)
}

// PointerMove resizes the active shape to reach p. It does nothing unless a
// drag is running and the canvas has an active shape.
func (c *Controller) PointerMove(p shape.Point) {
	if c.mode == ModeNone || c.session == nil {
		return
	}
	sh := c.canvas.Active()
	if sh == nil {
		return
	}
	changed := sh.Update(p)
	c.canvas.RequestRender()
	if changed {
		c.log.Debug("shape resized", "id", sh.ID, "to", p)
	}
}

// PointerUp ends the gesture: the draw mode is cleared and the dragged shape
// stays in the scene as drawn by the last move. It returns the committed
// shape, or nil if no drag was running.
func (c *Controller) PointerUp(p shape.Point) *shape.Shape {
	if c.mode == ModeNone {
		return nil
	}
	c.mode = ModeNone
	var committed *shape.Shape
	if c.session != nil {
		committed = c.session.shape
		c.session = nil
	}
	c.canvas.RequestRender()
	if committed != nil {
		c.log.Info("shape committed", "id", committed.ID, "shape", committed.String())
	} else {
		c.log.Debug("release without drag", "at", p)
	}
	return committed
}
