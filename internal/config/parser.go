package config

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/example/shapedraw/internal/drag"
	"github.com/example/shapedraw/internal/shape"
	"github.com/example/shapedraw/internal/theme"
)

// Parse reads configuration from an io.Reader.
func Parse(r io.Reader) (*Config, error) {
	cfg := New()
	scanner := bufio.NewScanner(r)

	var section string
	var curTheme *theme.Theme
	var curKind shape.Kind

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSpace(line[1 : len(line)-1])
			curTheme = nil
			curKind = 0
			switch {
			case strings.HasPrefix(section, "theme."):
				name := strings.TrimPrefix(section, "theme.")
				curTheme = theme.Default()
				curTheme.Name = name
				cfg.Themes[name] = curTheme
			case strings.HasPrefix(section, "colors."):
				k, ok := shape.ParseKind(strings.TrimPrefix(section, "colors."))
				if !ok {
					return nil, fmt.Errorf("line %d: unknown shape kind in [%s]", lineNo, section)
				}
				curKind = k
				if _, ok := cfg.Colors[k]; !ok {
					cfg.Colors[k] = shape.DefaultPalette()[k]
				}
			}
			continue
		}

		var key, value string
		var ok bool
		if key, value, ok = strings.Cut(line, "="); !ok {
			if key, value, ok = strings.Cut(line, ":"); !ok {
				continue
			}
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"`)

		var err error
		switch {
		case curTheme != nil:
			err = theme.SetField(curTheme, key, value)
		case curKind != 0:
			err = setColorField(cfg, curKind, key, value)
		case section == "log":
			setLogField(cfg, key, value)
		case section == "":
			err = setRootField(cfg, key, value)
		}
		if err != nil {
			where := "root section"
			if section != "" {
				where = "section [" + section + "]"
			}
			return nil, fmt.Errorf("line %d: error in %s: %w", lineNo, where, err)
		}
	}

	return cfg, scanner.Err()
}

func setRootField(cfg *Config, key, value string) error {
	switch strings.ToLower(key) {
	case "mode":
		m, err := drag.ParseMode(value)
		if err != nil {
			return err
		}
		cfg.Mode = m
	case "seed":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for key %s: %w", key, err)
		}
		cfg.Seed = b
	case "theme":
		cfg.Theme = value
	case "width", "height":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid %s %q: must be a positive integer", key, value)
		}
		if strings.EqualFold(key, "width") {
			cfg.Width = n
		} else {
			cfg.Height = n
		}
	}
	return nil
}

func setColorField(cfg *Config, k shape.Kind, key, value string) error {
	c, err := theme.ParseColor(value)
	if err != nil {
		return fmt.Errorf("invalid color for key %s: %w", key, err)
	}
	col := cfg.Colors[k]
	switch strings.ToLower(key) {
	case "fill":
		col.Fill = c
	case "stroke":
		col.Stroke = c
	}
	cfg.Colors[k] = col
	return nil
}

func setLogField(cfg *Config, key, value string) {
	switch strings.ToLower(key) {
	case "level":
		cfg.Log.Level = value
	case "format":
		cfg.Log.Format = value
	case "file":
		cfg.Log.File = value
	}
}
