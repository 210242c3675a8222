// Package main is the entry point for the gridstorm command.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/dshills/gridstorm/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// env holds what every command needs once global flags are parsed.
type env struct {
	cfg     *config.Config
	cfgPath string
	logger  *slog.Logger
}

func newApp() *cli.App {
	e := &env{}

	app := cli.NewApp()
	app.Name = "gridstorm"
	app.Usage = "Sparse grid editing, autofill and text conversion"
	app.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a TOML or YAML configuration file",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Log level (debug, info, warn, error); overrides the config file",
		},
	}
	app.Before = e.setup
	app.Commands = []*cli.Command{
		e.fillCommand(),
		e.runCommand(),
		e.convertCommand(),
	}
	return app
}

// setup loads the configuration and builds the logger.
func (e *env) setup(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.Log.Level = lvl
	}
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}

	e.cfg = cfg
	e.cfgPath = c.String("config")
	e.logger = slog.New(slog.NewTextHandler(errWriter(c), &slog.HandlerOptions{Level: level}))
	return nil
}

func errWriter(c *cli.Context) io.Writer {
	if c.App.ErrWriter != nil {
		return c.App.ErrWriter
	}
	return os.Stderr
}

func installSignals(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
}

// readInput returns the contents of path, or of the app reader when path is
// empty or "-".
func readInput(c *cli.Context, path string) (string, error) {
	if path == "" || path == "-" {
		r := c.App.Reader
		if r == nil {
			r = os.Stdin
		}
		data, err := io.ReadAll(r)
		return string(data), err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}
