package sheet

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/gridstorm/internal/grid"
	"github.com/dshills/gridstorm/internal/selection"
	"github.com/dshills/gridstorm/internal/style"
	"github.com/dshills/gridstorm/internal/textio"
)

// state captures every channel of a sheet.
type state struct {
	Content    map[grid.Coord]string
	Foreground map[grid.Coord]style.Color
	Margin     map[grid.Coord]style.Margin
	Alignment  map[grid.Coord]style.Alignment
	Typeface   map[grid.Coord]style.Typeface
	Rows       map[grid.Index]int
	Columns    map[grid.Index]int
}

func snapshot(s *Sheet) state {
	return state{
		Content:    s.content.Grid().Map(),
		Foreground: s.foreground.Grid().Map(),
		Margin:     s.margin.Grid().Map(),
		Alignment:  s.alignment.Grid().Map(),
		Typeface:   s.typeface.Grid().Map(),
		Rows:       s.rowHeight.Grid().Map(),
		Columns:    s.colWidth.Grid().Map(),
	}
}

func diffState(want, got state) string {
	return cmp.Diff(want, got, cmpopts.EquateEmpty())
}

func newTestSheet(t *testing.T, text string) *Sheet {
	t.Helper()
	s := New(WithCodec(textio.MustNew(textio.Options{
		RowSeparator:    `\n`,
		ColumnSeparator: `\t`,
		Quote:           `"`,
	})))
	require.NoError(t, s.Load(text))
	return s
}

func cells(ranges ...selection.Range) selection.Set {
	return selection.Of(ranges...)
}

func text(t *testing.T, s *Sheet, x, y int) string {
	t.Helper()
	v, _ := s.Text(x, y)
	return v
}

func TestSetTextUndo(t *testing.T) {
	s := newTestSheet(t, "1\t2")
	before := s.Content().Map()

	require.NoError(t, s.SetText(cells(selection.NewRange(0, 0, 1, 0)), "X"))
	assert.Equal(t, "X", text(t, s, 0, 0))
	assert.Equal(t, "X", text(t, s, 1, 0))

	require.True(t, s.CanUndo())
	require.NoError(t, s.Undo())
	assert.Equal(t, map[grid.Coord]string{grid.At(0, 0): "1", grid.At(1, 0): "2"}, before)
	assert.Equal(t, before, s.Content().Map())
	assert.False(t, s.CanUndo())
	assert.True(t, s.CanRedo())
}

func TestInsertColumnsUndo(t *testing.T) {
	s := New()
	require.NoError(t, s.SetText(cells(selection.Cell(5, 0)), "Z"))

	require.NoError(t, s.InsertColumns(2, 2))
	_, ok := s.Text(5, 0)
	assert.False(t, ok)
	assert.Equal(t, "Z", text(t, s, 7, 0))

	require.NoError(t, s.Undo())
	assert.Equal(t, "Z", text(t, s, 5, 0))
	_, ok = s.Text(7, 0)
	assert.False(t, ok)
}

func TestEveryActionIsReversible(t *testing.T) {
	red, err := style.ParseColor("red")
	require.NoError(t, err)

	setup := func() *Sheet {
		s := newTestSheet(t, "a\tb\tc\n1\t2\t3\nx\t\tz\n\t\t\nq")
		s.Untracked(func() {
			require.NoError(t, s.SetForeground(cells(selection.NewRange(0, 0, 1, 1)), red))
			require.NoError(t, s.SetAlignment(cells(selection.Cell(2, 2)), style.AlignRight))
			require.NoError(t, s.SetRowHeight(1, 2, 30))
			require.NoError(t, s.SetColumnWidth(0, 0, 120))
		})
		return s
	}

	actions := map[string]func(s *Sheet) error{
		"set text":  func(s *Sheet) error { return s.SetText(cells(selection.NewRange(1, 1, 3, 3)), "n") },
		"clear":     func(s *Sheet) error { return s.Clear(cells(selection.Rows(0, 0))) },
		"clear all": func(s *Sheet) error { return s.ClearAll(cells(selection.NewRange(0, 0, 1, 1))) },
		"margin":    func(s *Sheet) error { return s.SetMargin(cells(selection.Cell(0, 4)), style.Margin{Top: 1}) },
		"typeface": func(s *Sheet) error {
			return s.SetTypeface(cells(selection.Columns(1, 1)), style.Typeface{Family: "Mono"})
		},
		"row height":     func(s *Sheet) error { return s.SetRowHeight(0, 3, 0) },
		"column width":   func(s *Sheet) error { return s.SetColumnWidth(1, 2, 80) },
		"insert rows":    func(s *Sheet) error { return s.InsertRows(1, 2) },
		"delete rows":    func(s *Sheet) error { return s.DeleteRows(0, 2) },
		"insert columns": func(s *Sheet) error { return s.InsertColumns(0, 1) },
		"delete columns": func(s *Sheet) error { return s.DeleteColumns(1, 1) },
		"insert cells":   func(s *Sheet) error { return s.InsertCells(selection.NewRange(1, 0, 1, 1), grid.Rows) },
		"delete cells":   func(s *Sheet) error { return s.DeleteCells(selection.NewRange(0, 1, 1, 1), grid.Columns) },
		"move block":     func(s *Sheet) error { return s.MoveBlock(selection.NewRange(0, 0, 1, 1), 1, 1, false) },
		"copy block":     func(s *Sheet) error { return s.MoveBlock(selection.NewRange(0, 0, 1, 1), 3, 0, true) },
		"move rows down": func(s *Sheet) error { return s.MoveRows(0, 1, 3, false) },
		"move rows up":   func(s *Sheet) error { return s.MoveRows(2, 3, -2, false) },
		"copy columns":   func(s *Sheet) error { return s.MoveColumns(0, 0, 2, true) },
		"fill":           func(s *Sheet) error { return s.Fill(selection.NewRange(0, 0, 2, 1), selection.NewRange(0, 0, 2, 6)) },
		"apply style": func(s *Sheet) error {
			return s.ApplyStyle(cells(selection.Cell(4, 4)), style.Decode(map[string]string{"fg": "blue", "margin": "2"}))
		},
		"paste": func(s *Sheet) error {
			_, err := s.Paste(1, 1, "p\t\nq\tr")
			return err
		},
	}

	for name, action := range actions {
		t.Run(name, func(t *testing.T) {
			s := setup()
			before := snapshot(s)

			require.NoError(t, action(s))
			after := snapshot(s)
			require.Equal(t, 1, s.UndoCount())

			require.NoError(t, s.Undo())
			if d := diffState(before, snapshot(s)); d != "" {
				t.Errorf("undo mismatch (-want +got):\n%s", d)
			}

			require.NoError(t, s.Redo())
			if d := diffState(after, snapshot(s)); d != "" {
				t.Errorf("redo mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestUntracked(t *testing.T) {
	s := New()
	require.NoError(t, s.SetText(cells(selection.Cell(0, 0)), "kept"))
	s.Untracked(func() {
		require.NoError(t, s.SetText(cells(selection.Cell(1, 0)), "scratch"))
	})
	assert.Equal(t, "scratch", text(t, s, 1, 0))
	assert.Equal(t, 1, s.UndoCount())
}

func TestLoadClearsEverything(t *testing.T) {
	s := New()
	require.NoError(t, s.SetText(cells(selection.Cell(3, 3)), "old"))
	require.NoError(t, s.SetAlignment(cells(selection.Cell(0, 0)), style.AlignCenter))
	require.NoError(t, s.SetRowHeight(0, 0, 40))

	require.NoError(t, s.Load("q"))
	assert.Equal(t, 0, s.UndoCount())
	assert.False(t, s.CanRedo())
	assert.True(t, s.Style(0, 0).IsEmpty())
	assert.False(t, s.RowHeight(0).Has())
	assert.Equal(t, map[grid.Coord]string{grid.At(0, 0): "q"}, s.Content().Map())
}

func TestLoadRejectsBadText(t *testing.T) {
	s := newTestSheet(t, "keep")
	err := s.Load("\"open")
	assert.ErrorIs(t, err, textio.ErrUnterminatedQuote)
	assert.Equal(t, "keep", text(t, s, 0, 0))
}

func TestMaxUndoEntries(t *testing.T) {
	s := New(WithMaxUndoEntries(2))
	for i := range 3 {
		require.NoError(t, s.SetText(cells(selection.Cell(i, 0)), "v"))
	}
	assert.Equal(t, 2, s.UndoCount())
}

func TestUndoInfo(t *testing.T) {
	s := New()
	require.NoError(t, s.SetText(cells(selection.Cell(0, 0)), "v"))
	require.NoError(t, s.InsertRows(0, 1))

	info := s.UndoInfo()
	require.Len(t, info, 2)
	assert.Equal(t, "set text", info[0].Label)
	assert.Equal(t, "insert rows", info[1].Label)
	assert.Equal(t, []string{ChannelContent}, info[1].Channels)

	require.NoError(t, s.Undo())
	require.Len(t, s.RedoInfo(), 1)
	assert.Equal(t, "insert rows", s.RedoInfo()[0].Label)
}

func TestUndoRestoresSelection(t *testing.T) {
	s := New()
	target := cells(selection.NewRange(2, 2, 3, 3))
	require.NoError(t, s.SetText(target, "v"))
	require.NoError(t, s.SetSelection(cells(selection.Cell(9, 9))))

	require.NoError(t, s.Undo())
	assert.Equal(t, target, s.Selection())
}

func TestErrors(t *testing.T) {
	s := New()
	assert.ErrorIs(t, s.Undo(), ErrNothingToUndo)
	assert.ErrorIs(t, s.Redo(), ErrNothingToRedo)
	assert.ErrorIs(t, s.InsertRows(0, 0), ErrInvalidCount)
	assert.ErrorIs(t, s.DeleteColumns(-1, 1), ErrInvalidRange)
	assert.ErrorIs(t, s.SetText(selection.Set{{Left: 2, Right: 1}}, "x"), ErrInvalidRange)
	assert.ErrorIs(t, s.SetText(nil, "x"), ErrInvalidRange)
	assert.ErrorIs(t, s.MoveBlock(selection.Cell(0, 0), -1, 0, false), ErrInvalidRange)
	assert.ErrorIs(t, s.MoveRows(1, 0, 1, false), ErrInvalidRange)
	assert.ErrorIs(t, s.SetRowHeight(3, 2, 10), ErrInvalidRange)
	assert.Equal(t, 0, s.UndoCount())
}

func TestWholeLineSelectionIsClipped(t *testing.T) {
	s := newTestSheet(t, "a\nb\nc")
	require.NoError(t, s.SetText(cells(selection.Columns(1, 1)), "z"))

	assert.Equal(t, 6, s.Content().Len())
	assert.Equal(t, "z", text(t, s, 1, 2))
	_, ok := s.Text(1, 3)
	assert.False(t, ok)
}

func TestExtent(t *testing.T) {
	s := New()
	_, ok := s.Extent()
	assert.False(t, ok)

	require.NoError(t, s.SetText(cells(selection.Cell(2, 1)), "v"))
	require.NoError(t, s.SetAlignment(cells(selection.Cell(0, 5)), style.AlignRight))
	ext, ok := s.Extent()
	assert.True(t, ok)
	assert.Equal(t, selection.NewRange(0, 0, 2, 5), ext)
}

func TestMoveRows(t *testing.T) {
	load := func() *Sheet {
		s := newTestSheet(t, "r0\nr1\nr2\nr3\nr4")
		s.Untracked(func() { require.NoError(t, s.SetRowHeight(4, 4, 30)) })
		return s
	}
	column := func(s *Sheet) []string {
		var out []string
		for y := range 5 {
			out = append(out, text(t, s, 0, y))
		}
		return out
	}

	s := load()
	require.NoError(t, s.MoveRows(0, 0, 3, false))
	assert.Equal(t, []string{"r1", "r2", "r0", "r3", "r4"}, column(s))
	assert.Equal(t, cells(selection.Rows(2, 2)), s.Selection())

	s = load()
	require.NoError(t, s.MoveRows(3, 4, -2, false))
	assert.Equal(t, []string{"r0", "r3", "r4", "r1", "r2"}, column(s))
	assert.Equal(t, 30, s.RowHeight(2).Value())
	assert.False(t, s.RowHeight(4).Has())

	s = load()
	require.NoError(t, s.MoveRows(0, 2, 1, false))
	assert.Equal(t, 0, s.UndoCount(), "dropping a block inside itself is a no-op")

	s = load()
	require.NoError(t, s.MoveColumns(0, 0, 0, false))
	require.NoError(t, s.MoveBlock(selection.Cell(0, 0), 0, 0, false))
	assert.Equal(t, 0, s.UndoCount())
	assert.Equal(t, []string{"r0", "r1", "r2", "r3", "r4"}, column(s))
}

func TestMoveBlockSelectsDestination(t *testing.T) {
	s := newTestSheet(t, "a\tb")
	require.NoError(t, s.MoveBlock(selection.NewRange(0, 0, 1, 0), 0, 2, false))
	assert.Equal(t, cells(selection.NewRange(0, 2, 1, 2)), s.Selection())
	assert.Equal(t, "b", text(t, s, 1, 2))
	assert.Equal(t, 2, s.Content().Len())
}

func TestCopyPaste(t *testing.T) {
	s := newTestSheet(t, "a\tb\nc\td")

	out, err := s.Copy(selection.NewRange(0, 0, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, "a\tb\nc\td", out)

	require.NoError(t, s.SetText(cells(selection.Cell(3, 1)), "old"))
	r, err := s.Paste(2, 1, "x\t\ny")
	require.NoError(t, err)
	assert.Equal(t, selection.NewRange(2, 1, 3, 2), r)
	assert.Equal(t, "x", text(t, s, 2, 1))
	assert.Equal(t, "y", text(t, s, 2, 2))
	_, ok := s.Text(3, 1)
	assert.False(t, ok, "empty pasted field clears the cell")

	require.NoError(t, s.Undo())
	assert.Equal(t, "old", text(t, s, 3, 1))
	_, ok = s.Text(2, 1)
	assert.False(t, ok)

	_, err = s.Paste(-1, 0, "x")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestString(t *testing.T) {
	assert.Equal(t, "", New().String())

	s := newTestSheet(t, "a\t\"b\tc\"\n\td")
	assert.Equal(t, "a\t\"b\tc\"\n\td", s.String())
}

func TestJump(t *testing.T) {
	s := newTestSheet(t, "a\nb\nc\n\n\nd\ne")

	assert.Equal(t, grid.At(0, 2), s.Jump(Down))
	assert.Equal(t, grid.At(0, 5), s.Jump(Down))
	assert.Equal(t, grid.At(0, 6), s.Jump(Down))
	assert.Equal(t, grid.At(0, selection.MaxHeight), s.Jump(Down))
	assert.Equal(t, grid.At(0, 6), s.Jump(Up))
	assert.Equal(t, cells(selection.Cell(0, 6)), s.Selection())

	assert.Equal(t, grid.At(selection.MaxWidth, 6), s.Jump(Right))
	assert.Equal(t, grid.At(0, 6), s.Jump(Left))
	assert.Equal(t, 0, s.UndoCount())
}

func TestParseDirection(t *testing.T) {
	for d := Down; d <= Left; d++ {
		got, ok := ParseDirection(d.String())
		assert.True(t, ok)
		assert.Equal(t, d, got)
	}
	_, ok := ParseDirection("sideways")
	assert.False(t, ok)
}
