package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dshills/gridstorm/internal/config"
	"github.com/dshills/gridstorm/internal/history"
	"github.com/dshills/gridstorm/internal/script"
	"github.com/dshills/gridstorm/internal/sheet"
)

func (e *env) runCommand() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run a Lua script against a sheet and print the result",
		ArgsUsage: "<script.lua> [input]",
		Description: `Loads the input text (stdin when omitted or "-") into a sheet, runs the
script and prints the sheet using the configured separators. With --watch
the script is run again each time it or the configuration file changes.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "watch",
				Aliases: []string{"w"},
				Usage:   "Re-run when the script or the configuration changes",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: script.DefaultTimeout,
				Usage: "Maximum run time of the script",
			},
			&cli.BoolFlag{
				Name:  "metrics",
				Usage: "Write history metrics in Prometheus text format to stderr on exit",
			},
		},
		Action: e.runScript,
	}
}

func (e *env) runScript(c *cli.Context) (err error) {
	if c.NArg() < 1 || c.NArg() > 2 {
		return errors.New("usage: gridstorm run <script.lua> [input]")
	}
	path := c.Args().Get(0)
	input, err := readInput(c, c.Args().Get(1))
	if err != nil {
		return err
	}

	if c.Bool("metrics") {
		defer func() {
			if merr := history.WriteMetrics(errWriter(c), nil); merr != nil && err == nil {
				err = fmt.Errorf("writing metrics: %w", merr)
			}
		}()
	}

	ctx, cancel := installSignals(c.Context)
	defer cancel()

	if err := e.execute(ctx, c, path, input); err != nil {
		return err
	}
	if !c.Bool("watch") {
		return nil
	}
	return e.watch(ctx, c, path, input)
}

// reload is one change seen while watching.
type reload struct {
	source string
	cfg    *config.Config
	err    error
}

// watch re-runs the script whenever it or the configuration file changes.
// Runs happen one at a time on the calling goroutine.
func (e *env) watch(ctx context.Context, c *cli.Context, path, input string) error {
	events := make(chan reload)
	send := func(r reload) {
		select {
		case events <- r:
		case <-ctx.Done():
		}
	}

	errs := make(chan error, 2)
	go func() {
		errs <- config.WatchFile(ctx, path, func(err error) {
			send(reload{source: "script", err: err})
		})
	}()
	if e.cfgPath != "" {
		go func() {
			errs <- config.Watch(ctx, e.cfgPath, func(cfg *config.Config, err error) {
				send(reload{source: "config", cfg: cfg, err: err})
			})
		}()
	}

	e.logger.Info("watching", slog.String("script", path), slog.String("config", e.cfgPath))
	for {
		select {
		case <-ctx.Done():
			return nil
		case err := <-errs:
			if err != nil {
				return err
			}
		case r := <-events:
			if r.err != nil {
				e.logger.Warn("reload failed", slog.String("source", r.source), slog.Any("error", r.err))
				continue
			}
			if r.cfg != nil {
				e.cfg = r.cfg
				e.logger.Info("config reloaded", slog.String("path", e.cfgPath))
			}
			if err := e.execute(ctx, c, path, input); err != nil {
				e.logger.Error("script failed", slog.String("path", path), slog.Any("error", err))
			}
		}
	}
}

// execute runs the script on a fresh sheet loaded with input.
func (e *env) execute(ctx context.Context, c *cli.Context, path, input string) error {
	s, err := sheet.FromConfig(e.cfg, sheet.WithLogger(e.logger))
	if err != nil {
		return err
	}
	if err := s.Load(input); err != nil {
		return fmt.Errorf("loading input: %w", err)
	}

	rt := script.New(s,
		script.WithOutput(c.App.Writer),
		script.WithLogger(e.logger),
		script.WithTimeout(c.Duration("timeout")),
	)
	defer rt.Close()

	start := time.Now()
	if err := rt.DoFile(ctx, path); err != nil {
		return err
	}
	e.logger.Debug("script done", slog.Duration("elapsed", time.Since(start)), slog.Int("undo", s.UndoCount()))

	if out := s.String(); out != "" {
		fmt.Fprintln(c.App.Writer, out)
	}
	return nil
}
