// Package config reads and writes the shapedraw rc file.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/example/shapedraw/internal/drag"
	"github.com/example/shapedraw/internal/logging"
	"github.com/example/shapedraw/internal/shape"
	"github.com/example/shapedraw/internal/theme"
)

// Config holds the application configuration.
type Config struct {
	Mode   drag.Mode // mode selected when the canvas opens
	Seed   bool      // start with the seed rectangle
	Theme  string
	Width  int
	Height int
	// Colors overrides the default palette for individual kinds.
	Colors map[shape.Kind]shape.Colors
	Log    logging.Options
	Themes map[string]*theme.Theme
}

// New creates a new Config with defaults.
func New() *Config {
	return &Config{
		Mode:   drag.ModeRect,
		Seed:   true,
		Width:  800,
		Height: 600,
		Colors: make(map[shape.Kind]shape.Colors),
		Log:    logging.Options{Level: "info", Format: "text"},
		Themes: make(map[string]*theme.Theme),
	}
}

// Palette returns the default palette with the configured colours applied.
func (c *Config) Palette() shape.Palette {
	p := shape.DefaultPalette()
	for k, col := range c.Colors {
		p[k] = col
	}
	return p
}

// String implements fmt.Stringer and returns the configuration in RC format.
func (c *Config) String() string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "mode = %s\n", c.Mode)
	fmt.Fprintf(&sb, "seed = %v\n", c.Seed)
	if c.Theme != "" {
		fmt.Fprintf(&sb, "theme = %s\n", c.Theme)
	}
	fmt.Fprintf(&sb, "width = %d\n", c.Width)
	fmt.Fprintf(&sb, "height = %d\n", c.Height)
	sb.WriteString("\n")

	sb.WriteString("[log]\n")
	fmt.Fprintf(&sb, "level = %s\n", c.Log.Level)
	fmt.Fprintf(&sb, "format = %s\n", c.Log.Format)
	if c.Log.File != "" {
		fmt.Fprintf(&sb, "file = %s\n", c.Log.File)
	}
	sb.WriteString("\n")

	for _, k := range shape.Kinds() {
		col, ok := c.Colors[k]
		if !ok {
			continue
		}
		fmt.Fprintf(&sb, "[colors.%s]\n", k)
		fmt.Fprintf(&sb, "fill = %s\n", theme.FormatColor(col.Fill))
		fmt.Fprintf(&sb, "stroke = %s\n", theme.FormatColor(col.Stroke))
		sb.WriteString("\n")
	}

	var names []string
	for name := range c.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t := c.Themes[name]
		fmt.Fprintf(&sb, "[theme.%s]\n", name)
		fmt.Fprintf(&sb, "Name: %s\n", t.Name)
		for _, f := range t.Fields() {
			fmt.Fprintf(&sb, "%s: %s\n", f.Name, theme.FormatColor(f.Color))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
