// Package appstate runs the drawing window: it turns shiny mouse and key
// events into draw-mode controller calls and paints the scene.
package appstate

import (
	"context"
	"image"
	"log/slog"
	"sync"
	"unicode"

	"golang.org/x/exp/shiny/driver"
	"golang.org/x/exp/shiny/screen"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/lifecycle"
	"golang.org/x/mobile/event/mouse"
	"golang.org/x/mobile/event/paint"
	"golang.org/x/mobile/event/size"

	"github.com/example/shapedraw/internal/drag"
	"github.com/example/shapedraw/internal/logging"
	"github.com/example/shapedraw/internal/render"
	"github.com/example/shapedraw/internal/scene"
	"github.com/example/shapedraw/internal/shape"
	"github.com/example/shapedraw/internal/theme"
)

const (
	titleHeight  = 24
	statusHeight = 24
	buttonHeight = 24
)

const defaultBrushWidth = 2

// AppState holds the window configuration and the UI-goroutine state.
type AppState struct {
	Scene      *scene.Scene
	Controller *drag.Controller
	Brush      *scene.Brush
	Theme      *theme.Theme
	Title      string
	CanvasSize image.Point
	Shadow     *render.ShadowOptions

	log       *slog.Logger
	onClose   func()
	closeOnce sync.Once

	toolbarWidth   int
	width, height  int
	buttons        []*CacheButton
	buttonModes    []drag.Mode
	hover          int
	keyboardAction map[KeyShortcut]string
	actions        map[string]func()
	quit           bool
}

// Option modifies an AppState during creation.
type Option func(*AppState)

// WithScene sets the scene the window edits.
func WithScene(sc *scene.Scene) Option { return func(a *AppState) { a.Scene = sc } }

// WithController sets the controller that receives pointer events. It must
// drive the same scene passed to WithScene.
func WithController(c *drag.Controller) Option { return func(a *AppState) { a.Controller = c } }

// WithTheme sets the window colours.
func WithTheme(t *theme.Theme) Option { return func(a *AppState) { a.Theme = t } }

// WithTitle sets the text shown in the title bar.
func WithTitle(title string) Option { return func(a *AppState) { a.Title = title } }

// WithCanvasSize sets the initial drawing area size in pixels.
func WithCanvasSize(w, h int) Option { return func(a *AppState) { a.CanvasSize = image.Pt(w, h) } }

// WithShadow casts a soft shadow under shapes.
func WithShadow(o render.ShadowOptions) Option { return func(a *AppState) { a.Shadow = &o } }

// WithLogger sets the logger for UI events.
func WithLogger(l *slog.Logger) Option { return func(a *AppState) { a.log = l } }

// WithOnClose registers a callback invoked when the window closes.
func WithOnClose(fn func()) Option { return func(a *AppState) { a.onClose = fn } }

// New creates an AppState with the provided options.
func New(opts ...Option) *AppState {
	a := &AppState{
		Title:      "shapedraw",
		CanvasSize: image.Pt(800, 600),
		hover:      -1,
	}
	for _, o := range opts {
		o(a)
	}
	if a.log == nil {
		a.log = logging.Discard()
	}
	if a.Theme == nil {
		a.Theme = theme.Default()
	}
	if a.Scene == nil {
		a.Scene = scene.New()
	}
	if a.Controller == nil {
		a.Controller = drag.New(a.Scene, drag.WithLogger(a.log))
	}
	if a.Brush == nil {
		a.Brush = scene.NewBrush(a.Scene, a.Theme.Brush, defaultBrushWidth)
	}
	a.setup()
	a.resize(a.toolbarWidth+a.CanvasSize.X, titleHeight+a.CanvasSize.Y+statusHeight)
	return a
}

var modeRunes = map[drag.Mode]rune{
	drag.ModeRect:     'r',
	drag.ModeCircle:   'o',
	drag.ModeTriangle: 't',
	drag.ModeEllipse:  'e',
	drag.ModeLine:     'l',
	drag.ModeFreehand: 'f',
}

var modeLabels = map[drag.Mode]string{
	drag.ModeRect:     "Rect",
	drag.ModeCircle:   "Circle",
	drag.ModeTriangle: "Triangle",
	drag.ModeEllipse:  "Ellipse",
	drag.ModeLine:     "Line",
	drag.ModeFreehand: "Free",
}

func (a *AppState) setup() {
	a.actions = map[string]func(){}
	a.keyboardAction = map[KeyShortcut]string{}
	register := func(name string, keys KeyboardShortcuts, fn func()) {
		a.actions[name] = fn
		for _, sc := range keys.KeyboardShortcuts() {
			a.keyboardAction[sc] = name
		}
	}

	palette := a.Controller.Palette()
	a.toolbarWidth = textWidth(a.Title) + 8
	a.buttons = a.buttons[:0]
	a.buttonModes = a.buttonModes[:0]
	for _, m := range drag.Modes() {
		m := m // per-iteration copy; the onSelect closure below captures m
		r := modeRunes[m]
		label := string(unicode.ToUpper(r)) + ":" + modeLabels[m]
		tb := &ToolButton{label: label, theme: a.Theme, onSelect: func() { a.Controller.SetMode(m) }}
		if k, ok := m.Kind(); ok {
			tb.swatch = palette[k].Fill
		} else {
			tb.swatch = a.Brush.Color
		}
		a.buttons = append(a.buttons, &CacheButton{Button: tb})
		a.buttonModes = append(a.buttonModes, m)
		register(m.String(), shortcutList{{Rune: r}}, tb.onSelect)
		if w := textWidth(label) + 24; w > a.toolbarWidth {
			a.toolbarWidth = w
		}
	}
	register("quit", shortcutList{{Rune: 'q'}, {Code: key.CodeEscape}}, func() { a.quit = true })
}

func (a *AppState) resize(w, h int) {
	a.width, a.height = w, h
}

// canvasRect is the window area the scene is painted into.
func (a *AppState) canvasRect() image.Rectangle {
	r := image.Rect(a.toolbarWidth, titleHeight, a.width, a.height-statusHeight)
	if r.Empty() {
		return image.Rectangle{}
	}
	return r
}

func (a *AppState) buttonRect(i int) image.Rectangle {
	y := titleHeight + i*buttonHeight
	return image.Rect(0, y, a.toolbarWidth, y+buttonHeight)
}

// buttonAt returns the toolbar button under p or -1.
func (a *AppState) buttonAt(p image.Point) int {
	if p.X < 0 || p.X >= a.toolbarWidth || p.Y < titleHeight {
		return -1
	}
	idx := (p.Y - titleHeight) / buttonHeight
	if idx >= len(a.buttons) {
		return -1
	}
	return idx
}

func (a *AppState) toCanvas(p image.Point) shape.Point {
	r := a.canvasRect()
	return shape.Pt(float64(p.X-r.Min.X), float64(p.Y-r.Min.Y))
}

// capturing reports whether a gesture in progress owns the pointer.
func (a *AppState) capturing() bool {
	return a.Controller.State() == drag.Dragging || a.Brush.Drawing()
}

// handleMouse processes e and reports whether the window chrome needs a
// repaint. Scene changes request their own render through the scene.
func (a *AppState) handleMouse(e mouse.Event) bool {
	p := image.Pt(int(e.X), int(e.Y))
	if a.capturing() || p.In(a.canvasRect()) {
		repaint := a.hover != -1
		a.hover = -1
		return a.routePointer(e, a.toCanvas(p)) || repaint
	}

	idx := a.buttonAt(p)
	repaint := idx != a.hover
	a.hover = idx
	if idx >= 0 && e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress {
		a.buttons[idx].Activate()
		repaint = true
	}
	return repaint
}

// routePointer sends a canvas pointer event to the brush while free-draw is
// on, and to the controller otherwise. A gesture already in progress keeps
// its target until release.
func (a *AppState) routePointer(e mouse.Event, p shape.Point) bool {
	freehand := a.Brush.Drawing() || (a.Scene.Freehand() && a.Controller.State() != drag.Dragging)
	switch {
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirPress:
		if freehand {
			a.Brush.Press(p)
			return false
		}
		a.Controller.PointerDown(p)
		return false
	case e.Button == mouse.ButtonLeft && e.Direction == mouse.DirRelease:
		if freehand {
			a.Brush.Release(p)
			return false
		}
		before := a.Controller.Mode()
		a.Controller.PointerUp(p)
		return before != a.Controller.Mode()
	case e.Direction == mouse.DirNone:
		if freehand {
			a.Brush.Move(p)
			return false
		}
		a.Controller.PointerMove(p)
	}
	return false
}

// lookupShortcut matches e by rune first, then by key code.
func (a *AppState) lookupShortcut(e key.Event) (string, bool) {
	if e.Rune > 0 {
		if name, ok := a.keyboardAction[KeyShortcut{Rune: unicode.ToLower(e.Rune), Modifiers: e.Modifiers}]; ok {
			return name, true
		}
	}
	name, ok := a.keyboardAction[KeyShortcut{Code: e.Code, Modifiers: e.Modifiers}]
	return name, ok
}

// handleKey runs the action bound to e and reports whether a repaint is
// needed.
func (a *AppState) handleKey(e key.Event) bool {
	if e.Direction != key.DirPress {
		return false
	}
	name, ok := a.lookupShortcut(e)
	if !ok {
		return false
	}
	a.actions[name]()
	return true
}

func (a *AppState) notifyClose() {
	a.closeOnce.Do(func() {
		if a.onClose != nil {
			a.onClose()
		}
	})
}

// Run executes the UI loop using shiny's driver.
func (a *AppState) Run() error {
	var err error
	driver.Main(func(s screen.Screen) { err = a.Main(s) })
	return err
}

// Main opens the window on s and processes events until it is closed.
func (a *AppState) Main(s screen.Screen) error {
	w, err := s.NewWindow(&screen.NewWindowOptions{Width: a.width, Height: a.height, Title: a.Title})
	if err != nil {
		return err
	}
	defer w.Release()
	defer a.notifyClose()

	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			select {
			case <-a.Scene.RenderRequests():
				w.Send(paint.Event{})
			case <-done:
				return
			}
		}
	}()

	p := startPainter(func(ctx context.Context, st paintState) { a.drawFrame(ctx, s, w, st) })
	// Runs before w.Release so no frame is uploaded to a released window.
	defer p.stop()

	a.log.Info("window opened", "width", a.width, "height", a.height, "mode", a.Controller.Mode())
	for {
		switch e := w.NextEvent().(type) {
		case lifecycle.Event:
			if e.To == lifecycle.StageDead {
				return nil
			}
		case size.Event:
			a.resize(e.WidthPx, e.HeightPx)
		case paint.Event:
			p.request(a.paintState())
		case mouse.Event:
			if a.handleMouse(e) {
				w.Send(paint.Event{})
			}
		case key.Event:
			if a.handleKey(e) {
				w.Send(paint.Event{})
			}
			if a.quit {
				a.log.Info("window closed", "shapes", a.Scene.Len())
				return nil
			}
		case error:
			a.log.Error("window event", "err", e)
		}
	}
}
