package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/shapedraw/internal/config"
)

type configCmd struct {
	*root
	fs     *flag.FlagSet
	output string
}

func parseConfigCmd(args []string, r *root) (*configCmd, error) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	c := &configCmd{root: r, fs: fs}
	fs.StringVar(&c.output, "o", "", "file written by save (default: the loaded config or ~/.config/shapedraw/config.rc)")
	fs.Usage = usageFunc(c)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *configCmd) FlagSet() *flag.FlagSet {
	return c.fs
}

func (c *configCmd) Run() error {
	args := c.fs.Args()
	if len(args) != 1 {
		return &UsageError{of: c}
	}

	switch args[0] {
	case "print":
		return c.runPrint()
	case "save":
		return c.runSave()
	default:
		return fmt.Errorf("unknown config command: %s", args[0])
	}
}

func (c *configCmd) runPrint() error {
	fmt.Fprint(c.stdout, c.config.String())
	return nil
}

// savePath picks where save writes: -o, then the file that was loaded, then
// the XDG default.
func (c *configCmd) savePath() (string, error) {
	if c.output != "" {
		return c.output, nil
	}
	if p := config.NewLoader(version, c.configPath).GetConfigPath(); p != "" {
		return p, nil
	}
	if p := config.DefaultPath(); p != "" {
		return p, nil
	}
	return "", fmt.Errorf("no home directory to save the config in; use -o")
}

func (c *configCmd) runSave() error {
	path, err := c.savePath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(c.config.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	c.log.Info("configuration saved", "path", path)
	fmt.Fprintf(c.stderr, "Configuration saved to %s\n", path)
	return nil
}
