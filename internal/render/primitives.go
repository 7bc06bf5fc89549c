package render

import (
	"image"
	"image/color"
	"math"
)

func setThickPixel(img *image.RGBA, x, y, thick int, col color.RGBA) {
	r := thick / 2
	b := img.Bounds()
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			p := image.Pt(x+dx, y+dy)
			if p.In(b) {
				img.SetRGBA(p.X, p.Y, col)
			}
		}
	}
}

func drawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA, thick int) {
	dx := abs(x1 - x0)
	dy := abs(y1 - y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		setThickPixel(img, x0, y0, thick, col)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func drawEllipse(img *image.RGBA, cx, cy, rx, ry int, col color.RGBA, thick int) {
	steps := int(math.Ceil(2 * math.Pi * math.Sqrt(float64(rx*rx+ry*ry))))
	if steps < 8 {
		steps = 8
	}
	var px, py int
	for i := 0; i <= steps; i++ {
		angle := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(math.Round(math.Cos(angle)*float64(rx)))
		y := cy + int(math.Round(math.Sin(angle)*float64(ry)))
		if i > 0 {
			drawLine(img, px, py, x, y, col, thick)
		}
		px, py = x, y
	}
}

func drawRect(img *image.RGBA, r image.Rectangle, col color.RGBA, thick int) {
	drawLine(img, r.Min.X, r.Min.Y, r.Max.X-1, r.Min.Y, col, thick)
	drawLine(img, r.Max.X-1, r.Min.Y, r.Max.X-1, r.Max.Y-1, col, thick)
	drawLine(img, r.Max.X-1, r.Max.Y-1, r.Min.X, r.Max.Y-1, col, thick)
	drawLine(img, r.Min.X, r.Max.Y-1, r.Min.X, r.Min.Y, col, thick)
}

// drawDashedRect outlines r alternating c1 and c2 every dash pixels so the
// box stays visible on any fill.
func drawDashedRect(img *image.RGBA, r image.Rectangle, dash, thick int, c1, c2 color.RGBA) {
	if dash < 1 {
		dash = 1
	}
	b := img.Bounds()
	plot := func(i, x, y int) {
		col := c1
		if (i/dash)%2 == 1 {
			col = c2
		}
		for t := 0; t < thick; t++ {
			for _, p := range []image.Point{{x, y + t}, {x + t, y}} {
				if p.In(b) {
					img.SetRGBA(p.X, p.Y, col)
				}
			}
		}
	}
	i := 0
	for x := r.Min.X; x < r.Max.X; x++ {
		plot(i, x, r.Min.Y)
		i++
	}
	for y := r.Min.Y + 1; y < r.Max.Y; y++ {
		plot(i, r.Max.X-1, y)
		i++
	}
	for x := r.Max.X - 2; x >= r.Min.X; x-- {
		plot(i, x, r.Max.Y-1)
		i++
	}
	for y := r.Max.Y - 2; y > r.Min.Y; y-- {
		plot(i, r.Min.X, y)
		i++
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
