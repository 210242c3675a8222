// Package textio converts rectangular grid windows to and from delimited
// text.
//
// Row and column separators are regular expressions. When reading, any
// match of a pattern splits the input. When writing, the codec emits one
// literal instance of each pattern, generated once from a fixed seed so
// that output is reproducible.
package textio

import (
	"fmt"
	"math/rand"
	"regexp"
	"regexp/syntax"
	"strings"

	regen "github.com/zach-klippenstein/goregen"

	"github.com/dshills/gridstorm/internal/grid"
	"github.com/dshills/gridstorm/internal/selection"
)

// Defaults used by DefaultOptions.
const (
	DefaultRowSeparator    = `\r?\n`
	DefaultColumnSeparator = `\t`
	DefaultQuote           = `"`
	DefaultSeed            = 1
)

// Options configures a Codec.
type Options struct {
	RowSeparator    string
	ColumnSeparator string
	Quote           string
	Seed            int64
}

// DefaultOptions returns tab separated, newline terminated options.
func DefaultOptions() Options {
	return Options{
		RowSeparator:    DefaultRowSeparator,
		ColumnSeparator: DefaultColumnSeparator,
		Quote:           DefaultQuote,
		Seed:            DefaultSeed,
	}
}

// Codec reads and writes delimited text.
type Codec struct {
	rowPattern *regexp.Regexp
	colPattern *regexp.Regexp
	rowLiteral string
	colLiteral string
	quote      string
}

// New compiles the separator patterns and generates their literals.
func New(opts Options) (*Codec, error) {
	if opts.Quote == "" {
		return nil, ErrEmptyQuote
	}
	c := &Codec{quote: opts.Quote}
	var err error
	if c.rowPattern, c.rowLiteral, err = compileSeparator("row", opts.RowSeparator, opts.Quote, opts.Seed); err != nil {
		return nil, err
	}
	if c.colPattern, c.colLiteral, err = compileSeparator("column", opts.ColumnSeparator, opts.Quote, opts.Seed); err != nil {
		return nil, err
	}
	if c.rowPattern.MatchString(c.colLiteral) || c.colPattern.MatchString(c.rowLiteral) {
		return nil, fmt.Errorf("%w: row %q and column %q", ErrAmbiguousSeparators, opts.RowSeparator, opts.ColumnSeparator)
	}
	return c, nil
}

// MustNew is like New but panics on error.
func MustNew(opts Options) *Codec {
	c, err := New(opts)
	if err != nil {
		panic(err)
	}
	return c
}

func compileSeparator(name, pattern, quote string, seed int64) (*regexp.Regexp, string, error) {
	if pattern == "" {
		return nil, "", fmt.Errorf("%w: %s separator", ErrEmptySeparator, name)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, "", fmt.Errorf("%s separator %q: %w", name, pattern, err)
	}
	if re.MatchString("") {
		return nil, "", fmt.Errorf("%w: %s separator %q matches empty text", ErrEmptySeparator, name, pattern)
	}
	lit, err := generateLiteral(pattern, seed)
	if err != nil {
		return nil, "", fmt.Errorf("%s separator %q: %w", name, pattern, err)
	}
	if strings.Contains(lit, quote) {
		return nil, "", fmt.Errorf("%w: %s separator literal %q contains quote", ErrAmbiguousSeparators, name, lit)
	}
	return re, lit, nil
}

// generateLiteral produces one string matching pattern. The same pattern
// and seed always yield the same literal.
func generateLiteral(pattern string, seed int64) (string, error) {
	gen, err := regen.NewGenerator(pattern, &regen.GeneratorArgs{
		RngSource:               rand.NewSource(seed),
		Flags:                   syntax.Perl,
		MaxUnboundedRepeatCount: 1,
	})
	if err != nil {
		return "", err
	}
	lit := gen.Generate()
	full, err := regexp.Compile(`^(?:` + pattern + `)$`)
	if err != nil {
		return "", err
	}
	if lit == "" || !full.MatchString(lit) {
		return "", fmt.Errorf("%w: generated %q", ErrUnsupportedPattern, lit)
	}
	return lit, nil
}

// RowSeparator returns the literal emitted between rows.
func (c *Codec) RowSeparator() string {
	return c.rowLiteral
}

// ColumnSeparator returns the literal emitted between fields.
func (c *Codec) ColumnSeparator() string {
	return c.colLiteral
}

// Quote returns the quote symbol.
func (c *Codec) Quote() string {
	return c.quote
}

// Encode writes the cells of r row by row. Absent cells become empty
// fields.
func (c *Codec) Encode(g *grid.Grid[string], r selection.Range) string {
	var sb strings.Builder
	for y := r.Top; y <= r.Bottom; y++ {
		if y > r.Top {
			sb.WriteString(c.rowLiteral)
		}
		for x := r.Left; x <= r.Right; x++ {
			if x > r.Left {
				sb.WriteString(c.colLiteral)
			}
			if v, ok := g.Lookup(grid.At(x, y)); ok {
				sb.WriteString(c.EncodeField(v))
			}
		}
	}
	return sb.String()
}

// EncodeField quotes v when it contains a separator or starts with the
// quote symbol. Embedded quotes are doubled.
func (c *Codec) EncodeField(v string) string {
	if !c.needsQuote(v) {
		return v
	}
	return c.quote + strings.ReplaceAll(v, c.quote, c.quote+c.quote) + c.quote
}

func (c *Codec) needsQuote(v string) bool {
	return strings.HasPrefix(v, c.quote) || c.rowPattern.MatchString(v) || c.colPattern.MatchString(v)
}

// Decode reads text into a grid anchored at (0,0). Empty fields are left
// absent. The returned range covers every row and field read, including
// empty ones; a trailing row separator does not start a new row.
func (c *Codec) Decode(text string) (*grid.Grid[string], selection.Range, error) {
	g := grid.NewGrid[string]()
	d := decoder{codec: c, text: text}
	x, y, maxX := 0, 0, 0
	for {
		field, sep, err := d.next()
		if err != nil {
			return nil, selection.Range{}, err
		}
		if field != "" {
			g.Set(grid.At(x, y), field)
		}
		maxX = max(maxX, x)
		switch sep {
		case sepColumn:
			x++
		case sepRow:
			if d.done() {
				return g, selection.NewRange(0, 0, maxX, y), nil
			}
			x = 0
			y++
		case sepEnd:
			return g, selection.NewRange(0, 0, maxX, y), nil
		}
	}
}

type separator int

const (
	sepEnd separator = iota
	sepColumn
	sepRow
)

type decoder struct {
	codec *Codec
	text  string
	pos   int
	line  int
}

func (d *decoder) done() bool {
	return d.pos >= len(d.text)
}

// next reads one field and the separator that ends it.
func (d *decoder) next() (string, separator, error) {
	var sb strings.Builder
	quote := d.codec.quote
	if strings.HasPrefix(d.text[d.pos:], quote) {
		start := d.pos
		d.pos += len(quote)
		for {
			i := strings.Index(d.text[d.pos:], quote)
			if i < 0 {
				return "", sepEnd, &ParseError{Offset: start, Line: d.line + 1, Err: ErrUnterminatedQuote}
			}
			chunk := d.text[d.pos : d.pos+i]
			sb.WriteString(chunk)
			d.line += len(d.codec.rowPattern.FindAllStringIndex(chunk, -1))
			d.pos += i + len(quote)
			if strings.HasPrefix(d.text[d.pos:], quote) {
				sb.WriteString(quote)
				d.pos += len(quote)
				continue
			}
			break
		}
	}
	rest := d.text[d.pos:]
	row := d.codec.rowPattern.FindStringIndex(rest)
	col := d.codec.colPattern.FindStringIndex(rest)
	switch {
	case row == nil && col == nil:
		sb.WriteString(rest)
		d.pos = len(d.text)
		return sb.String(), sepEnd, nil
	case row == nil || (col != nil && col[0] < row[0]):
		sb.WriteString(rest[:col[0]])
		d.pos += col[1]
		return sb.String(), sepColumn, nil
	default:
		sb.WriteString(rest[:row[0]])
		d.pos += row[1]
		d.line++
		return sb.String(), sepRow, nil
	}
}
