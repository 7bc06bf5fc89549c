// Package render rasterizes a scene snapshot into an RGBA image.
//
// Fills are anti-aliased with golang.org/x/image/vector; outlines, lines and
// freehand strokes use a thick Bresenham line.
package render

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/example/shapedraw/internal/scene"
	"github.com/example/shapedraw/internal/shape"
)

// Options controls how a snapshot is painted.
type Options struct {
	Background color.RGBA
	Selection  color.RGBA
	// LineWidth is the stroke width for lines and shape outlines.
	LineWidth int
	// Shadow, when set, casts a soft shadow beneath shapes and strokes.
	Shadow *ShadowOptions
}

// DefaultOptions paints on white with a dark selection box.
func DefaultOptions() Options {
	return Options{
		Background: color.RGBA{255, 255, 255, 255},
		Selection:  color.RGBA{64, 64, 64, 255},
		LineWidth:  1,
	}
}

// Draw paints snap into dst. Canvas coordinate (0,0) maps to
// dst.Bounds().Min, so a sub-image can be used to place the canvas inside a
// larger frame.
func Draw(dst *image.RGBA, snap scene.Snapshot, opts Options) {
	b := dst.Bounds()
	if b.Empty() {
		return
	}
	if opts.LineWidth < 1 {
		opts.LineWidth = 1
	}
	draw.Draw(dst, b, image.NewUniform(opts.Background), image.Point{}, draw.Src)

	target := dst
	if opts.Shadow != nil {
		target = image.NewRGBA(b)
	}

	var active *shape.Shape
	for _, sh := range snap.Shapes {
		paintShape(target, sh, opts.LineWidth)
		if snap.ActiveID != "" && sh.ID == snap.ActiveID {
			active = sh
		}
	}
	for _, st := range snap.Strokes {
		paintStroke(target, st)
	}

	if opts.Shadow != nil {
		castShadow(dst, target, *opts.Shadow)
	}
	if active != nil && !active.Empty() {
		paintSelection(dst, active, opts.Selection)
	}
}

// Frame allocates an image of the given size and paints snap into it.
func Frame(size image.Point, snap scene.Snapshot, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: size})
	Draw(img, snap, opts)
	return img
}

func paintShape(dst *image.RGBA, sh *shape.Shape, lineWidth int) {
	if sh == nil || sh.Empty() {
		return
	}
	origin := dst.Bounds().Min
	a := sh.Anchor()
	switch sh.Kind {
	case shape.Rectangle:
		fillPath(dst, sh.Fill, rectPath(a.X, a.Y, sh.Width, sh.Height))
		outline(dst, sh, lineWidth)
	case shape.Triangle:
		fillPath(dst, sh.Fill, trianglePath(a.X, a.Y, sh.Width, sh.Height))
		outline(dst, sh, lineWidth)
	case shape.Circle:
		fillPath(dst, sh.Fill, ellipsePath(a.X+sh.Radius, a.Y+sh.Radius, sh.Radius, sh.Radius))
		outline(dst, sh, lineWidth)
	case shape.Ellipse:
		fillPath(dst, sh.Fill, ellipsePath(a.X+sh.RX, a.Y+sh.RY, sh.RX, sh.RY))
		outline(dst, sh, lineWidth)
	case shape.Line:
		col := sh.Stroke
		if col.A == 0 {
			col = sh.Fill
		}
		x0, y0 := toPixel(origin, a)
		x1, y1 := toPixel(origin, sh.End)
		drawLine(dst, x0, y0, x1, y1, col, lineWidth)
	}
}

// outline strokes the border of a filled shape when it has a visible stroke
// colour.
func outline(dst *image.RGBA, sh *shape.Shape, thick int) {
	if sh.Stroke.A == 0 {
		return
	}
	origin := dst.Bounds().Min
	a := sh.Anchor()
	switch sh.Kind {
	case shape.Rectangle:
		x0, y0 := toPixel(origin, a)
		drawRect(dst, image.Rect(x0, y0, x0+round(sh.Width), y0+round(sh.Height)), sh.Stroke, thick)
	case shape.Triangle:
		x0, y0 := toPixel(origin, a)
		w, h := round(sh.Width), round(sh.Height)
		apex := image.Pt(x0+w/2, y0)
		drawLine(dst, apex.X, apex.Y, x0+w, y0+h, sh.Stroke, thick)
		drawLine(dst, x0+w, y0+h, x0, y0+h, sh.Stroke, thick)
		drawLine(dst, x0, y0+h, apex.X, apex.Y, sh.Stroke, thick)
	case shape.Circle:
		cx, cy := toPixel(origin, shape.Pt(a.X+sh.Radius, a.Y+sh.Radius))
		drawEllipse(dst, cx, cy, round(sh.Radius), round(sh.Radius), sh.Stroke, thick)
	case shape.Ellipse:
		cx, cy := toPixel(origin, shape.Pt(a.X+sh.RX, a.Y+sh.RY))
		drawEllipse(dst, cx, cy, round(sh.RX), round(sh.RY), sh.Stroke, thick)
	}
}

func paintStroke(dst *image.RGBA, st scene.Stroke) {
	origin := dst.Bounds().Min
	for i := 1; i < len(st.Points); i++ {
		x0, y0 := toPixel(origin, st.Points[i-1])
		x1, y1 := toPixel(origin, st.Points[i])
		drawLine(dst, x0, y0, x1, y1, st.Color, st.Width)
	}
}

// paintSelection draws a dashed box just outside the shape's bounds.
func paintSelection(dst *image.RGBA, sh *shape.Shape, col color.RGBA) {
	origin := dst.Bounds().Min
	r := sh.Bounds()
	x0, y0 := toPixel(origin, shape.Pt(r.X, r.Y))
	box := image.Rect(x0, y0, x0+round(r.W), y0+round(r.H)).Inset(-3)
	drawDashedRect(dst, box, 4, 1, col, color.RGBA{255, 255, 255, 255})
}

type pathFn func(z *vector.Rasterizer)

func fillPath(dst *image.RGBA, col color.RGBA, path pathFn) {
	if col.A == 0 {
		return
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	path(z)
	z.Draw(dst, b, image.NewUniform(col), image.Point{})
}

func rectPath(x, y, w, h float64) pathFn {
	return func(z *vector.Rasterizer) {
		z.MoveTo(float32(x), float32(y))
		z.LineTo(float32(x+w), float32(y))
		z.LineTo(float32(x+w), float32(y+h))
		z.LineTo(float32(x), float32(y+h))
		z.ClosePath()
	}
}

// trianglePath is an isosceles triangle with its apex at the top centre of
// the box.
func trianglePath(x, y, w, h float64) pathFn {
	return func(z *vector.Rasterizer) {
		z.MoveTo(float32(x+w/2), float32(y))
		z.LineTo(float32(x+w), float32(y+h))
		z.LineTo(float32(x), float32(y+h))
		z.ClosePath()
	}
}

// kappa places cubic Bézier control points so four curves approximate an
// ellipse.
const kappa = 0.5522847498

func ellipsePath(cx, cy, rx, ry float64) pathFn {
	return func(z *vector.Rasterizer) {
		ox, oy := rx*kappa, ry*kappa
		f := func(v float64) float32 { return float32(v) }
		z.MoveTo(f(cx+rx), f(cy))
		z.CubeTo(f(cx+rx), f(cy+oy), f(cx+ox), f(cy+ry), f(cx), f(cy+ry))
		z.CubeTo(f(cx-ox), f(cy+ry), f(cx-rx), f(cy+oy), f(cx-rx), f(cy))
		z.CubeTo(f(cx-rx), f(cy-oy), f(cx-ox), f(cy-ry), f(cx), f(cy-ry))
		z.CubeTo(f(cx+ox), f(cy-ry), f(cx+rx), f(cy-oy), f(cx+rx), f(cy))
		z.ClosePath()
	}
}

func toPixel(origin image.Point, p shape.Point) (int, int) {
	return origin.X + round(p.X), origin.Y + round(p.Y)
}

func round(v float64) int { return int(math.Round(v)) }
