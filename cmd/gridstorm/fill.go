package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/dshills/gridstorm/internal/autofill"
)

func (e *env) fillCommand() *cli.Command {
	return &cli.Command{
		Name:      "fill",
		Usage:     "Print the continuation of a series",
		ArgsUsage: "<values...>",
		Description: `Infers a pattern from the sample values and prints the next values,
one per line. An empty argument stands for a blank cell.

  gridstorm fill 1 3 5         prints 7 9 11 ...
  gridstorm fill 2 4 8         prints 16 32 64 ...
  gridstorm fill "Item 1"      prints Item 2, Item 3 ...
  gridstorm fill A C           prints E G I ...`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Value:   5,
				Usage:   "Number of values to print",
			},
		},
		Action: e.runFill,
	}
}

func (e *env) runFill(c *cli.Context) error {
	samples := c.Args().Slice()
	if len(samples) == 0 {
		return errors.New("provide at least one sample value")
	}
	count := c.Int("count")
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	it := autofill.FromStrings(samples...).Iter()
	for range count {
		fmt.Fprintln(c.App.Writer, it.Next().ValueOrDefault(""))
	}
	e.logger.Debug("fill", slog.Int("samples", len(samples)), slog.Int("count", count))
	return nil
}
