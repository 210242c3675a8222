package main

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/dshills/gridstorm/internal/textio"
)

func (e *env) convertCommand() *cli.Command {
	return &cli.Command{
		Name:      "convert",
		Usage:     "Re-encode grid text between separator patterns",
		ArgsUsage: "[input]",
		Description: `Reads text with one set of separators and writes it with another. Each
separator is a regular expression; output uses one fixed instance of it.
Unset separators fall back to the configuration.

  gridstorm convert --from-col '\t' --to-col ',' data.tsv`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from-row", Usage: "Row separator pattern of the input"},
			&cli.StringFlag{Name: "from-col", Usage: "Column separator pattern of the input"},
			&cli.StringFlag{Name: "to-row", Usage: "Row separator pattern of the output"},
			&cli.StringFlag{Name: "to-col", Usage: "Column separator pattern of the output"},
			&cli.StringFlag{Name: "quote", Usage: "Quote symbol for both sides"},
		},
		Action: e.runConvert,
	}
}

func (e *env) runConvert(c *cli.Context) error {
	from, err := e.codec(c, "from-row", "from-col")
	if err != nil {
		return fmt.Errorf("input format: %w", err)
	}
	to, err := e.codec(c, "to-row", "to-col")
	if err != nil {
		return fmt.Errorf("output format: %w", err)
	}

	text, err := readInput(c, c.Args().First())
	if err != nil {
		return err
	}
	g, r, err := from.Decode(text)
	if err != nil {
		return err
	}
	if g.IsEmpty() {
		return nil
	}

	fmt.Fprintln(c.App.Writer, to.Encode(g, r))
	e.logger.Debug("converted", slog.Int("cells", g.Len()), slog.String("range", r.String()))
	return nil
}

// codec builds a codec from the configured text options overridden by the
// named flags.
func (e *env) codec(c *cli.Context, rowFlag, colFlag string) (*textio.Codec, error) {
	opts := textio.Options{
		RowSeparator:    e.cfg.Text.RowSeparator,
		ColumnSeparator: e.cfg.Text.ColumnSeparator,
		Quote:           e.cfg.Text.Quote,
		Seed:            e.cfg.Text.Seed,
	}
	if c.IsSet(rowFlag) {
		opts.RowSeparator = c.String(rowFlag)
	}
	if c.IsSet(colFlag) {
		opts.ColumnSeparator = c.String(colFlag)
	}
	if c.IsSet("quote") {
		opts.Quote = c.String("quote")
	}
	return textio.New(opts)
}
