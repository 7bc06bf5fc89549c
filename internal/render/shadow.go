package render

import (
	"image"
	"image/color"
	"image/draw"
)

// ShadowOptions configures the soft shadow cast by shapes onto the canvas.
type ShadowOptions struct {
	Radius  int
	Offset  image.Point
	Opacity float64
}

// DefaultShadowOptions returns a subtle shadow suited to flat shape fills.
func DefaultShadowOptions() ShadowOptions {
	return ShadowOptions{
		Radius:  4,
		Offset:  image.Pt(3, 3),
		Opacity: 0.35,
	}
}

// castShadow composites a blurred, offset copy of layer's alpha beneath the
// layer onto dst. layer and dst share bounds; anything the offset pushes past
// the bounds is clipped.
func castShadow(dst, layer *image.RGBA, opts ShadowOptions) {
	b := layer.Bounds()
	if b.Empty() || opts.Opacity <= 0 {
		draw.Draw(dst, b, layer, b.Min, draw.Over)
		return
	}
	opacity := opts.Opacity
	if opacity > 1 {
		opacity = 1
	}
	radius := opts.Radius
	if radius < 0 {
		radius = 0
	}

	mask := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if a := layer.RGBAAt(x, y).A; a != 0 {
				mask.SetGray(x-b.Min.X, y-b.Min.Y, color.Gray{Y: a})
			}
		}
	}
	blurred := boxBlur(mask, radius)

	alpha := uint8(opacity*255 + 0.5)
	if alpha > 0 {
		target := blurred.Bounds().Add(b.Min).Add(opts.Offset)
		draw.DrawMask(dst, target, image.NewUniform(color.RGBA{A: alpha}), image.Point{}, blurred, image.Point{}, draw.Over)
	}
	draw.Draw(dst, b, layer, b.Min, draw.Over)
}

// boxBlur runs a horizontal then a vertical box filter using running sums.
func boxBlur(src *image.Gray, radius int) *image.Gray {
	out := image.NewGray(src.Bounds())
	if radius <= 0 {
		copy(out.Pix, src.Pix)
		return out
	}
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	tmp := image.NewGray(src.Bounds())

	blur1D := func(n int, get func(int) uint8, set func(int, uint8)) {
		sums := make([]int, n+1)
		for i := 0; i < n; i++ {
			sums[i+1] = sums[i] + int(get(i))
		}
		for i := 0; i < n; i++ {
			lo := max(i-radius, 0)
			hi := min(i+radius, n-1)
			set(i, uint8((sums[hi+1]-sums[lo])/(hi-lo+1)))
		}
	}

	for y := 0; y < h; y++ {
		row := y * src.Stride
		blur1D(w,
			func(x int) uint8 { return src.Pix[row+x] },
			func(x int, v uint8) { tmp.Pix[y*tmp.Stride+x] = v })
	}
	for x := 0; x < w; x++ {
		blur1D(h,
			func(y int) uint8 { return tmp.Pix[y*tmp.Stride+x] },
			func(y int, v uint8) { out.Pix[y*out.Stride+x] = v })
	}
	return out
}
