package main

import (
	"flag"
	"fmt"

	"github.com/example/shapedraw/internal/drag"
	"github.com/example/shapedraw/internal/theme"
)

type modesCmd struct {
	*root
	fs *flag.FlagSet
}

func parseModesCmd(args []string, r *root) (*modesCmd, error) {
	fs := flag.NewFlagSet("modes", flag.ExitOnError)
	cmd := &modesCmd{root: r, fs: fs}
	fs.Usage = usageFunc(cmd)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() != 0 {
		return nil, &UsageError{of: cmd}
	}
	return cmd, nil
}

func (c *modesCmd) Run() error {
	palette := c.config.Palette()
	fmt.Fprintln(c.stdout, "draw modes (* marks the initial mode):")
	for _, m := range drag.Modes() {
		marker := " "
		if m == c.config.Mode {
			marker = "*"
		}
		k, ok := m.Kind()
		if !ok {
			fmt.Fprintf(c.stdout, "%s %-10s toggles freehand strokes\n", marker, m)
			continue
		}
		col := palette[k]
		block := fmt.Sprintf("\x1b[48;2;%d;%d;%dm  \x1b[0m", col.Fill.R, col.Fill.G, col.Fill.B)
		fmt.Fprintf(c.stdout, "%s %-10s fill %s stroke %s %s\n", marker, m, theme.FormatColor(col.Fill), theme.FormatColor(col.Stroke), block)
	}
	return nil
}

func (c *modesCmd) FlagSet() *flag.FlagSet {
	return c.fs
}
