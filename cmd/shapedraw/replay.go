package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/example/shapedraw/internal/drag"
	"github.com/example/shapedraw/internal/scene"
	"github.com/example/shapedraw/internal/shape"
)

// replayCmd drives a headless controller from a gesture script.
type replayCmd struct {
	*root
	fs   *flag.FlagSet
	file string
	seed bool
}

func parseReplayCmd(args []string, r *root) (*replayCmd, error) {
	fs := flag.NewFlagSet("replay", flag.ExitOnError)
	c := &replayCmd{root: r, fs: fs}
	fs.StringVar(&c.file, "file", "", "gesture script to read (default stdin)")
	fs.BoolVar(&c.seed, "seed", false, "start with the seed rectangle")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: c}
	}
	return c, nil
}

func (c *replayCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

type stepKind int

const (
	stepMode stepKind = iota
	stepDown
	stepMove
	stepUp
)

type step struct {
	line int
	kind stepKind
	mode drag.Mode
	at   shape.Point
}

// parseScript reads one gesture per line: "mode <name>", "down x y",
// "move x y" or "up x y". Blank lines and text after '#' are ignored.
func parseScript(r io.Reader) ([]step, error) {
	var steps []step
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		st := step{line: n}
		switch strings.ToLower(fields[0]) {
		case "mode":
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: mode takes one argument", n)
			}
			m, err := drag.ParseMode(fields[1])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", n, err)
			}
			st.kind, st.mode = stepMode, m
		case "down", "move", "up":
			if len(fields) != 3 {
				return nil, fmt.Errorf("line %d: %s takes x and y", n, fields[0])
			}
			x, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad x %q: %w", n, fields[1], err)
			}
			y, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad y %q: %w", n, fields[2], err)
			}
			st.at = shape.Pt(x, y)
			switch strings.ToLower(fields[0]) {
			case "down":
				st.kind = stepDown
			case "move":
				st.kind = stepMove
			default:
				st.kind = stepUp
			}
		default:
			return nil, fmt.Errorf("line %d: unknown command %q", n, fields[0])
		}
		steps = append(steps, st)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return steps, nil
}

// replay applies steps to a fresh scene. Pointer steps go to the brush while
// free-draw is on, as they do in the window.
func replay(steps []step, ctrl *drag.Controller, sc *scene.Scene, brush *scene.Brush) {
	for _, st := range steps {
		freehand := brush.Drawing() || (sc.Freehand() && ctrl.State() != drag.Dragging)
		switch st.kind {
		case stepMode:
			ctrl.SetMode(st.mode)
		case stepDown:
			if freehand {
				brush.Press(st.at)
			} else {
				ctrl.PointerDown(st.at)
			}
		case stepMove:
			if freehand {
				brush.Move(st.at)
			} else {
				ctrl.PointerMove(st.at)
			}
		case stepUp:
			if freehand {
				brush.Release(st.at)
			} else {
				ctrl.PointerUp(st.at)
			}
		}
	}
}

func (c *replayCmd) Run() error {
	var in io.Reader = os.Stdin
	if c.file != "" {
		f, err := os.Open(c.file)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}
	steps, err := parseScript(in)
	if err != nil {
		return err
	}

	palette := c.config.Palette()
	sc := scene.New()
	if c.seed {
		sc.AddShape(seedShape(palette))
	}
	ctrl := drag.New(sc, drag.WithLogger(c.log), drag.WithPalette(palette))
	brush := scene.NewBrush(sc, palette[shape.Line].Stroke, 2)
	replay(steps, ctrl, sc, brush)
	c.log.Debug("replay finished", "steps", len(steps), "shapes", sc.Len(), "renders", sc.RenderCount())

	for _, s := range sc.Shapes() {
		fmt.Fprintln(c.stdout, s)
	}
	for _, st := range sc.Strokes() {
		fmt.Fprintf(c.stdout, "stroke points=%d from=%s to=%s\n", len(st.Points), st.Points[0], st.Points[len(st.Points)-1])
	}
	return nil
}
