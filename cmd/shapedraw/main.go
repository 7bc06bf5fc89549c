package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/example/shapedraw/internal/config"
	"github.com/example/shapedraw/internal/logging"
)

var (
	version            = "dev"
	commit             = ""
	date               = ""
	configPathOverride = ""
)

type runnable interface{ Run() error }

type root struct {
	fs         *flag.FlagSet
	program    string
	configPath string
	config     *config.Config
	log        *slog.Logger
	stdout     io.Writer
	stderr     io.Writer
}

func (r *root) Program() string {
	return r.program
}

func (r *root) subcommand(name string) *root {
	program := strings.TrimSpace(strings.Join([]string{r.program, name}, " "))
	return &root{
		program:    program,
		configPath: r.configPath,
		config:     r.config,
		log:        r.log,
		stdout:     r.stdout,
		stderr:     r.stderr,
	}
}

func (r *root) FlagSet() *flag.FlagSet {
	return r.fs
}

func newRoot() *root {
	r := &root{
		fs:      flag.NewFlagSet("shapedraw", flag.ExitOnError),
		program: "shapedraw",
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
	r.fs.StringVar(&r.configPath, "config", configPathOverride, "path to an rc file overriding the default lookup")
	r.fs.Usage = usageFunc(r)
	return r
}

// loadConfig reads the rc file and builds the logger. A broken config is
// reported and replaced by defaults.
func (r *root) loadConfig() io.Closer {
	loader := config.NewLoader(version, r.configPath)
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(r.stderr, "warning: failed to load config: %v\n", err)
		cfg = config.New()
	}
	r.config = cfg
	logger, closer := logging.New(r.stderr, cfg.Log.WithEnv())
	r.log = logger
	return closer
}

func (r *root) Run(args []string) error {
	if err := r.fs.Parse(args); err != nil {
		return err
	}
	if r.fs.NArg() < 1 {
		return &UsageError{of: r}
	}
	closer := r.loadConfig()
	defer closer.Close()

	cmdName := r.fs.Arg(0)
	subArgs := r.fs.Args()[1:]

	var (
		cmd runnable
		err error
	)
	switch cmdName {
	case "canvas":
		cmd, err = parseCanvasCmd(subArgs, r.subcommand(cmdName))
	case "replay":
		cmd, err = parseReplayCmd(subArgs, r.subcommand(cmdName))
	case "modes":
		cmd, err = parseModesCmd(subArgs, r.subcommand(cmdName))
	case "config":
		cmd, err = parseConfigCmd(subArgs, r.subcommand(cmdName))
	case "version":
		cmd = &versionCmd{r: r}
	default:
		err = &UsageError{of: r}
	}
	if err != nil {
		return err
	}
	return cmd.Run()
}

func main() {
	r := newRoot()
	if err := r.Run(os.Args[1:]); err != nil {
		var uerr *UsageError
		if errors.As(err, &uerr) {
			fmt.Fprintln(os.Stderr, uerr.Error())
		} else {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}
}
