// Package theme holds the colours used to paint the drawing window.
package theme

import (
	"embed"
	"image/color"
)

// EmbeddedThemes contains the themes shipped with the binary.
//
//go:embed defaults/*.theme
var EmbeddedThemes embed.FS

// Theme defines the colour palette for the window chrome and canvas.
type Theme struct {
	Name string

	Background color.RGBA // window area around the canvas
	Foreground color.RGBA // title and status text

	ToolbarBackground     color.RGBA
	ButtonBackground      color.RGBA
	ButtonBackgroundHover color.RGBA
	ButtonBackgroundPress color.RGBA
	ButtonText            color.RGBA
	ButtonBorder          color.RGBA

	StatusBackground color.RGBA

	Canvas    color.RGBA // drawing surface
	Selection color.RGBA // dashed box around the active shape
	Brush     color.RGBA // freehand stroke colour
}

// Default returns the built-in light theme.
func Default() *Theme {
	return &Theme{
		Name:                  "Default",
		Background:            color.RGBA{220, 220, 220, 255},
		Foreground:            color.RGBA{0, 0, 0, 255},
		ToolbarBackground:     color.RGBA{220, 220, 220, 255},
		ButtonBackground:      color.RGBA{200, 200, 200, 255},
		ButtonBackgroundHover: color.RGBA{180, 180, 180, 255},
		ButtonBackgroundPress: color.RGBA{150, 150, 150, 255},
		ButtonText:            color.RGBA{0, 0, 0, 255},
		ButtonBorder:          color.RGBA{0, 0, 0, 255},
		StatusBackground:      color.RGBA{235, 235, 235, 255},
		Canvas:                color.RGBA{255, 255, 255, 255},
		Selection:             color.RGBA{64, 64, 64, 255},
		Brush:                 color.RGBA{0, 0, 0, 255},
	}
}
