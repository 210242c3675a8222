package textio

import (
	"errors"
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/gridstorm/internal/grid"
	"github.com/dshills/gridstorm/internal/selection"
)

func TestDefaultLiterals(t *testing.T) {
	c := MustNew(DefaultOptions())
	assert.Equal(t, "\t", c.ColumnSeparator())
	assert.Regexp(t, regexp.MustCompile(`^\r?\n$`), c.RowSeparator())
	assert.Equal(t, `"`, c.Quote())
}

func TestLiteralsAreDeterministic(t *testing.T) {
	opts := Options{RowSeparator: `(\r\n|\n|;;)`, ColumnSeparator: `[,|]`, Quote: `'`, Seed: 42}
	a := MustNew(opts)
	for range 5 {
		b := MustNew(opts)
		assert.Equal(t, a.RowSeparator(), b.RowSeparator())
		assert.Equal(t, a.ColumnSeparator(), b.ColumnSeparator())
	}
	assert.Regexp(t, `^[,|]$`, a.ColumnSeparator())
}

func TestNewRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"empty quote", Options{RowSeparator: `\n`, ColumnSeparator: `\t`}, ErrEmptyQuote},
		{"empty row", Options{ColumnSeparator: `\t`, Quote: `"`}, ErrEmptySeparator},
		{"matches empty", Options{RowSeparator: `\n*`, ColumnSeparator: `\t`, Quote: `"`}, ErrEmptySeparator},
		{"same separators", Options{RowSeparator: `\t`, ColumnSeparator: `\t`, Quote: `"`}, ErrAmbiguousSeparators},
		{"quote in separator", Options{RowSeparator: `\n`, ColumnSeparator: `"`, Quote: `"`}, ErrAmbiguousSeparators},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := New(Options{RowSeparator: `(`, ColumnSeparator: `\t`, Quote: `"`})
	assert.Error(t, err)
}

func TestEncode(t *testing.T) {
	c := MustNew(Options{RowSeparator: `\n`, ColumnSeparator: `\t`, Quote: `"`})
	g := grid.FromMap(map[grid.Coord]string{
		grid.At(0, 0): "a",
		grid.At(2, 0): "tab\there",
		grid.At(1, 1): `say "hi"`,
		grid.At(2, 1): `"quoted"`,
		grid.At(0, 2): "two\nlines",
	})

	got := c.Encode(g, selection.NewRange(0, 0, 2, 2))
	want := "a\t\t\"tab\there\"\n" +
		"\tsay \"hi\"\t\"\"\"quoted\"\"\"\n" +
		"\"two\nlines\"\t\t"
	assert.Equal(t, want, got)
}

func TestEncodeWindow(t *testing.T) {
	c := MustNew(Options{RowSeparator: `\n`, ColumnSeparator: `,`, Quote: `"`})
	g := grid.FromMap(map[grid.Coord]string{
		grid.At(4, 7): "x",
		grid.At(5, 8): "y",
	})
	assert.Equal(t, "x,\n,y", c.Encode(g, selection.NewRange(4, 7, 5, 8)))
}

func TestDecode(t *testing.T) {
	c := MustNew(Options{RowSeparator: `\r?\n`, ColumnSeparator: `\t`, Quote: `"`})

	g, r, err := c.Decode("a\tb\r\n\t\"x\ty\"\n\"say \"\"hi\"\"\"\n")
	require.NoError(t, err)

	want := map[grid.Coord]string{
		grid.At(0, 0): "a",
		grid.At(1, 0): "b",
		grid.At(1, 1): "x\ty",
		grid.At(0, 2): `say "hi"`,
	}
	if diff := cmp.Diff(want, g.Map()); diff != "" {
		t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, selection.NewRange(0, 0, 1, 2), r)
}

func TestDecodeEmpty(t *testing.T) {
	c := MustNew(DefaultOptions())
	g, r, err := c.Decode("")
	require.NoError(t, err)
	assert.True(t, g.IsEmpty())
	assert.Equal(t, selection.Cell(0, 0), r)
}

func TestDecodeUnterminatedQuote(t *testing.T) {
	c := MustNew(Options{RowSeparator: `\n`, ColumnSeparator: `\t`, Quote: `"`})
	_, _, err := c.Decode("ok\n\"never closed\nmore")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnterminatedQuote)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, 3, pe.Offset)
}

func TestRoundTrip(t *testing.T) {
	cases := []Options{
		DefaultOptions(),
		{RowSeparator: `;;`, ColumnSeparator: `[,|]`, Quote: `'`, Seed: 7},
	}
	g := grid.FromMap(map[grid.Coord]string{
		grid.At(0, 0): "plain",
		grid.At(1, 0): "with,comma|pipe",
		grid.At(2, 0): "it's",
		grid.At(0, 1): "'lead",
		grid.At(2, 1): "semi;;colon\tand\nnewline",
		grid.At(1, 2): `"double"`,
	})
	for _, opts := range cases {
		c := MustNew(opts)
		text := c.Encode(g, selection.NewRange(0, 0, 2, 2))
		back, r, err := c.Decode(text)
		require.NoError(t, err, text)
		if diff := cmp.Diff(g.Map(), back.Map()); diff != "" {
			t.Errorf("round trip with %+v (-want +got):\n%s", opts, diff)
		}
		assert.Equal(t, selection.NewRange(0, 0, 2, 2), r)
	}
}
