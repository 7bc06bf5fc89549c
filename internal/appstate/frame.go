package appstate

import (
	"context"
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/exp/shiny/screen"

	"github.com/example/shapedraw/internal/drag"
	"github.com/example/shapedraw/internal/render"
	"github.com/example/shapedraw/internal/scene"
)

// paintState is everything the paint goroutine needs to draw one frame.
// It is built on the UI goroutine and never shared back.
type paintState struct {
	width, height int
	snap          scene.Snapshot
	mode          drag.Mode
	dragging      bool
	hover         int
}

func (a *AppState) paintState() paintState {
	return paintState{
		width:    a.width,
		height:   a.height,
		snap:     a.Scene.Snapshot(a.Brush),
		mode:     a.Controller.Mode(),
		dragging: a.Controller.State() == drag.Dragging,
		hover:    a.hover,
	}
}

func (a *AppState) drawFrame(ctx context.Context, s screen.Screen, w screen.Window, st paintState) {
	if st.width <= 0 || st.height <= 0 {
		return
	}
	b, err := s.NewBuffer(image.Point{st.width, st.height})
	if err != nil {
		a.log.Error("new buffer", "err", err)
		return
	}
	defer b.Release()

	if !a.composeFrame(ctx, b.RGBA(), st) {
		return
	}
	w.Upload(image.Point{}, b, b.Bounds())
	w.Publish()
}

// composeFrame paints the full window into dst. It returns false if ctx was
// cancelled part way through.
func (a *AppState) composeFrame(ctx context.Context, dst *image.RGBA, st paintState) bool {
	th := a.Theme
	draw.Draw(dst, dst.Bounds(), &image.Uniform{th.Background}, image.Point{}, draw.Src)

	canvas := image.Rect(a.toolbarWidth, titleHeight, st.width, st.height-statusHeight).Intersect(dst.Bounds())
	if !canvas.Empty() {
		opts := render.Options{
			Background: th.Canvas,
			Selection:  th.Selection,
			LineWidth:  2,
			Shadow:     a.Shadow,
		}
		render.Draw(dst.SubImage(canvas).(*image.RGBA), st.snap, opts)
	}
	if ctx.Err() != nil {
		return false
	}

	title := image.Rect(0, 0, st.width, titleHeight)
	draw.Draw(dst, title, &image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)
	drawText(dst, 4, 16, a.Title, th.Foreground)

	toolbar := image.Rect(0, titleHeight, a.toolbarWidth, st.height-statusHeight)
	draw.Draw(dst, toolbar, &image.Uniform{th.ToolbarBackground}, image.Point{}, draw.Src)
	for i, cb := range a.buttons {
		cb.SetRect(a.buttonRect(i))
		state := StateDefault
		m := a.buttonModes[i]
		switch {
		case m == st.mode && m != drag.ModeNone, m == drag.ModeFreehand && st.snap.Freehand:
			state = StatePressed
		case i == st.hover:
			state = StateHover
		}
		cb.Draw(dst, state)
	}
	if ctx.Err() != nil {
		return false
	}

	status := image.Rect(0, st.height-statusHeight, st.width, st.height)
	draw.Draw(dst, status, &image.Uniform{th.StatusBackground}, image.Point{}, draw.Src)
	drawText(dst, 4, st.height-statusHeight+16, statusLine(st), th.Foreground)
	return ctx.Err() == nil
}

func statusLine(st paintState) string {
	free := "off"
	if st.snap.Freehand {
		free = "on"
	}
	state := drag.Idle
	if st.dragging {
		state = drag.Dragging
	}
	return fmt.Sprintf("mode: %s  %s  free-draw: %s  shapes: %d  strokes: %d",
		st.mode, state, free, len(st.snap.Shapes), len(st.snap.Strokes))
}
