package config

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/example/shapedraw/internal/drag"
	"github.com/example/shapedraw/internal/shape"
)

func TestParse(t *testing.T) {
	input := `
mode = circle
seed = false
theme = my_custom_theme
width = 1024
height = 768

[log]
level = debug
format = json
file = /tmp/shapedraw.log

[colors.rect]
fill = #112233
stroke = navy

[theme.my_custom_theme]
Background = #111111
Canvas: #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Mode != drag.ModeCircle {
		t.Errorf("mode %v, want circle", cfg.Mode)
	}
	if cfg.Seed {
		t.Error("expected seed to be false")
	}
	if cfg.Theme != "my_custom_theme" {
		t.Errorf("theme %q", cfg.Theme)
	}
	if cfg.Width != 1024 || cfg.Height != 768 {
		t.Errorf("size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" || cfg.Log.File != "/tmp/shapedraw.log" {
		t.Errorf("log %+v", cfg.Log)
	}

	rect := cfg.Colors[shape.Rectangle]
	if rect.Fill != (color.RGBA{0x11, 0x22, 0x33, 0xFF}) {
		t.Errorf("rect fill %v", rect.Fill)
	}
	if rect.Stroke != (color.RGBA{0, 0, 128, 255}) {
		t.Errorf("rect stroke %v", rect.Stroke)
	}

	th, ok := cfg.Themes["my_custom_theme"]
	if !ok {
		t.Fatal("Expected theme 'my_custom_theme' to be loaded")
	}
	if th.Background != (color.RGBA{0x11, 0x11, 0x11, 0xFF}) {
		t.Errorf("Unexpected Background color: %+v", th.Background)
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := Parse(strings.NewReader("# nothing set\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != drag.ModeRect || !cfg.Seed {
		t.Errorf("defaults mode=%v seed=%v", cfg.Mode, cfg.Seed)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Errorf("default size %dx%d", cfg.Width, cfg.Height)
	}
}

func TestParseErrors(t *testing.T) {
	tests := map[string]string{
		"bad mode":   "mode = hexagon",
		"bad seed":   "seed = maybe",
		"bad width":  "width = -3",
		"bad kind":   "[colors.star]\nfill = #000000",
		"bad colour": "[colors.circle]\nfill = #12",
		"bad theme":  "[theme.x]\nCanvas = nope",
	}
	for name, input := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(input)); err == nil {
				t.Fatalf("expected error for %q", input)
			}
		})
	}
}

func TestPalette(t *testing.T) {
	cfg := New()
	red := color.RGBA{255, 0, 0, 255}
	cfg.Colors[shape.Triangle] = shape.Colors{Fill: red}
	p := cfg.Palette()
	if p[shape.Triangle].Fill != red {
		t.Errorf("triangle fill %v", p[shape.Triangle].Fill)
	}
	if p[shape.Circle] != shape.DefaultPalette()[shape.Circle] {
		t.Errorf("circle should keep the default colours")
	}
}

func TestCircular(t *testing.T) {
	input := `mode = line
seed = false
theme = dark
width = 320
height = 200

[log]
level = warn
format = text

[colors.ellipse]
fill = #01020304
stroke = #FFFFFF

[theme.custom]
Name = custom
Background = #000000
Foreground = #FFFFFF
`
	cfg, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Initial parse failed: %v", err)
	}

	generated := cfg.String()
	cfg2, err := Parse(strings.NewReader(generated))
	if err != nil {
		t.Fatalf("Circular parse failed: %v\n%s", err, generated)
	}

	if cfg.Mode != cfg2.Mode || cfg.Seed != cfg2.Seed || cfg.Theme != cfg2.Theme {
		t.Errorf("root mismatch: %+v vs %+v", cfg, cfg2)
	}
	if cfg.Width != cfg2.Width || cfg.Height != cfg2.Height {
		t.Errorf("size mismatch")
	}
	if cfg.Log != cfg2.Log {
		t.Errorf("log mismatch: %+v vs %+v", cfg.Log, cfg2.Log)
	}
	if cfg.Colors[shape.Ellipse] != cfg2.Colors[shape.Ellipse] {
		t.Errorf("colors mismatch: %v vs %v", cfg.Colors[shape.Ellipse], cfg2.Colors[shape.Ellipse])
	}

	t1 := cfg.Themes["custom"]
	t2 := cfg2.Themes["custom"]
	if t1 == nil || t2 == nil {
		t.Fatalf("Custom theme missing in one config")
	}
	if *t1 != *t2 {
		t.Errorf("theme mismatch: %+v vs %+v", t1, t2)
	}
}

func TestLoaderOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.rc")
	if err := os.WriteFile(path, []byte("mode = triangle\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	l := NewLoader("v1.0.0", path)
	if got := l.GetConfigPath(); got != path {
		t.Fatalf("path %q, want %q", got, path)
	}
	cfg, err := l.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Mode != drag.ModeTriangle {
		t.Errorf("mode %v", cfg.Mode)
	}
}

func TestLoaderReportsPathOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.rc")
	if err := os.WriteFile(path, []byte("width = wide\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := NewLoader("v1.0.0", path).Load()
	if err == nil || !strings.Contains(err.Error(), path) {
		t.Fatalf("expected error naming %s, got %v", path, err)
	}
}
