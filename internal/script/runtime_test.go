package script

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/gridstorm/internal/sheet"
	"github.com/dshills/gridstorm/internal/style"
)

func newRuntime(t *testing.T, opts ...Option) (*Runtime, *sheet.Sheet, *bytes.Buffer) {
	t.Helper()
	s := sheet.New()
	var out bytes.Buffer
	r := New(s, append([]Option{WithOutput(&out)}, opts...)...)
	t.Cleanup(r.Close)
	return r, s, &out
}

func TestSetGetDump(t *testing.T) {
	r, s, out := newRuntime(t)

	err := r.DoString(context.Background(), `
		set(0, 0, "a")
		set(1, 0, "b")
		print(get(1, 0), get(5, 5))
		print(dump())
	`)
	require.NoError(t, err)

	assert.Equal(t, "b\tnil\na\tb\n", out.String())
	text, ok := s.Text(0, 0)
	assert.True(t, ok)
	assert.Equal(t, "a", text)
}

func TestFill(t *testing.T) {
	r, s, _ := newRuntime(t)

	err := r.DoString(context.Background(), `
		set(0, 0, "1")
		set(0, 1, "2")
		fill(0, 0, 0, 1, 0, 0, 0, 4)
	`)
	require.NoError(t, err)

	text, _ := s.Text(0, 4)
	assert.Equal(t, "5", text)
}

func TestUndoRedo(t *testing.T) {
	r, s, out := newRuntime(t)

	err := r.DoString(context.Background(), `
		set(0, 0, "x")
		insert_rows(0, 2)
		print(get(0, 2))
		print(undo())
		print(get(0, 0))
		print(redo(), redo())
	`)
	require.NoError(t, err)

	assert.Equal(t, "x\ntrue\nx\ntrue\tfalse\n", out.String())
	text, _ := s.Text(0, 2)
	assert.Equal(t, "x", text)
}

func TestStyle(t *testing.T) {
	r, s, _ := newRuntime(t)

	err := r.DoString(context.Background(), `style(0, 0, 1, 1, {fg = "red", align = "nonsense"})`)
	require.NoError(t, err)

	st := s.Style(1, 1)
	assert.True(t, st.Foreground.Has())
	assert.False(t, st.Alignment.Has())
	assert.True(t, s.Style(2, 2).IsEmpty())

	require.NoError(t, r.DoString(context.Background(), `style(0, 0, 0, 0, {align = "right"})`))
	a, ok := s.Style(0, 0).Alignment.Get()
	require.True(t, ok)
	assert.Equal(t, style.AlignRight, a)
}

func TestMoveAndJump(t *testing.T) {
	r, s, out := newRuntime(t)

	err := r.DoString(context.Background(), `
		set(0, 0, "a")
		set(0, 1, "b")
		move_rows(0, 0, 2)
		print(get(0, 0), get(0, 1))
		set(0, 2, "c")
		print(jump("up"))
	`)
	require.NoError(t, err)

	assert.Equal(t, "b\ta\n0\t0\n", out.String())
	assert.Equal(t, 4, s.UndoCount())
}

func TestSheetErrorsRaise(t *testing.T) {
	r, _, _ := newRuntime(t)

	err := r.DoString(context.Background(), `insert_rows(0, 0)`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), sheet.ErrInvalidCount.Error())

	err = r.DoString(context.Background(), `jump("sideways")`)
	require.Error(t, err)
}

func TestErrorsCanBeCaught(t *testing.T) {
	r, _, out := newRuntime(t)

	err := r.DoString(context.Background(), `
		local ok = pcall(delete_columns, 3, -1)
		print(ok)
	`)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out.String())
}

func TestSandbox(t *testing.T) {
	r, _, out := newRuntime(t)

	err := r.DoString(context.Background(), `
		print(io, os, debug, package)
		print(dofile, loadfile, load, loadstring, require)
		print(string.upper("ok"), math.max(1, 2), table.concat({"a", "b"}, ","))
	`)
	require.NoError(t, err)

	assert.Equal(t, "nil\tnil\tnil\tnil\nnil\tnil\tnil\tnil\tnil\nOK\t2\ta,b\n", out.String())
}

func TestTimeout(t *testing.T) {
	r, _, _ := newRuntime(t, WithTimeout(50*time.Millisecond))

	err := r.DoString(context.Background(), `while true do end`)
	require.ErrorIs(t, err, ErrTimeout)

	// The runtime stays usable after a timeout.
	require.NoError(t, r.DoString(context.Background(), `set(0, 0, "after")`))
}

func TestCancelIsNotTimeout(t *testing.T) {
	r, _, _ := newRuntime(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stop := time.AfterFunc(20*time.Millisecond, cancel)
	defer stop.Stop()

	err := r.DoString(ctx, `while true do end`)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrTimeout)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDoFile(t *testing.T) {
	r, s, _ := newRuntime(t)

	path := filepath.Join(t.TempDir(), "fill.lua")
	require.NoError(t, os.WriteFile(path, []byte(`set(2, 3, "file")`), 0o644))

	require.NoError(t, r.DoFile(context.Background(), path))
	text, _ := s.Text(2, 3)
	assert.Equal(t, "file", text)

	err := r.DoFile(context.Background(), filepath.Join(t.TempDir(), "missing.lua"))
	assert.Error(t, err)
}

func TestClosed(t *testing.T) {
	s := sheet.New()
	r := New(s)
	r.Close()
	r.Close()

	assert.ErrorIs(t, r.DoString(context.Background(), `set(0, 0, "x")`), ErrClosed)
}
