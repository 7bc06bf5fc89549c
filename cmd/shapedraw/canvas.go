package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/example/shapedraw/internal/appstate"
	"github.com/example/shapedraw/internal/drag"
	"github.com/example/shapedraw/internal/render"
	"github.com/example/shapedraw/internal/scene"
	"github.com/example/shapedraw/internal/shape"
	"github.com/example/shapedraw/internal/theme"
)

type canvasCmd struct {
	*root
	fs        *flag.FlagSet
	mode      string
	width     int
	height    int
	noSeed    bool
	themeName string
	shadow    bool
}

func parseCanvasCmd(args []string, r *root) (*canvasCmd, error) {
	fs := flag.NewFlagSet("canvas", flag.ExitOnError)
	c := &canvasCmd{root: r, fs: fs}
	cfg := r.config
	fs.StringVar(&c.mode, "mode", cfg.Mode.String(), "initial draw mode (rect, circle, triangle, ellipse, line, none)")
	fs.IntVar(&c.width, "width", cfg.Width, "canvas width in pixels")
	fs.IntVar(&c.height, "height", cfg.Height, "canvas height in pixels")
	fs.BoolVar(&c.noSeed, "no-seed", !cfg.Seed, "start with an empty canvas")
	fs.StringVar(&c.themeName, "theme", "", "colour theme (default, dark, a name from the config or a file path)")
	fs.BoolVar(&c.shadow, "shadow", false, "cast a soft shadow under shapes")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	if c.width <= 0 || c.height <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d", c.width, c.height)
	}
	return c, nil
}

func (c *canvasCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

// seedShape is the rectangle a new canvas starts with.
func seedShape(p shape.Palette) *shape.Shape {
	s := p.New(shape.Rectangle, shape.Pt(20, 20))
	s.Update(shape.Pt(120, 120))
	return s
}

// newScene builds the scene and controller a canvas session starts with.
func (c *canvasCmd) newScene() (*scene.Scene, *drag.Controller, error) {
	mode, err := drag.ParseMode(c.mode)
	if err != nil {
		return nil, nil, err
	}
	if mode == drag.ModeFreehand {
		return nil, nil, fmt.Errorf("free-draw is a toggle, not an initial mode")
	}
	palette := c.config.Palette()
	sc := scene.New()
	if !c.noSeed {
		sc.AddShape(seedShape(palette))
	}
	ctrl := drag.New(sc, drag.WithLogger(c.log), drag.WithPalette(palette), drag.WithMode(mode))
	return sc, ctrl, nil
}

// resolveTheme picks the theme from the flag, SHAPEDRAW_THEME or the config,
// preferring themes defined inline in the config.
func (c *canvasCmd) resolveTheme(env string) *theme.Theme {
	name := c.themeName
	if name == "" {
		name = env
	}
	if name == "" {
		name = c.config.Theme
	}
	if t, ok := c.config.Themes[name]; ok {
		return t
	}
	t, err := theme.NewLoader().Load(name)
	if err != nil {
		c.log.Warn("theme not loaded, using default", "theme", name, "err", err)
		return theme.Default()
	}
	return t
}

func (c *canvasCmd) Run() error {
	sc, ctrl, err := c.newScene()
	if err != nil {
		return err
	}
	opts := []appstate.Option{
		appstate.WithScene(sc),
		appstate.WithController(ctrl),
		appstate.WithTheme(c.resolveTheme(strings.TrimSpace(os.Getenv("SHAPEDRAW_THEME")))),
		appstate.WithTitle("shapedraw"),
		appstate.WithCanvasSize(c.width, c.height),
		appstate.WithLogger(c.log),
	}
	if c.shadow {
		opts = append(opts, appstate.WithShadow(render.DefaultShadowOptions()))
	}
	if err := appstate.New(opts...).Run(); err != nil {
		return fmt.Errorf("open window: %w", err)
	}
	return nil
}
