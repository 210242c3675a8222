package script

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/gridstorm/internal/sheet"
)

// DefaultTimeout bounds a single script run.
const DefaultTimeout = 5 * time.Second

// Runtime binds a Lua state to a sheet.
type Runtime struct {
	L     *lua.LState
	sheet *sheet.Sheet

	// Configuration
	timeout time.Duration
	out     io.Writer
	logger  *slog.Logger

	closed bool
}

// Option configures a Runtime.
type Option func(*Runtime)

// WithTimeout sets the maximum duration of one run.
func WithTimeout(d time.Duration) Option {
	return func(r *Runtime) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// WithOutput sets where print writes. The default discards output.
func WithOutput(w io.Writer) Option {
	return func(r *Runtime) {
		if w != nil {
			r.out = w
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runtime) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a sandboxed runtime operating on s.
func New(s *sheet.Sheet, opts ...Option) *Runtime {
	r := &Runtime{
		sheet:   s,
		timeout: DefaultTimeout,
		out:     io.Discard,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With(slog.String("component", "script"))

	r.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(r.L)
	r.sandbox()
	r.register()
	return r
}

// openSafeLibraries opens only safe Lua standard libraries.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	// io, os, debug and package are intentionally not opened.
}

// sandbox removes loaders and redirects print.
func (r *Runtime) sandbox() {
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require"} {
		r.L.SetGlobal(name, lua.LNil)
	}

	r.L.SetGlobal("print", r.L.NewFunction(func(L *lua.LState) int {
		n := L.GetTop()
		parts := make([]string, n)
		for i := 1; i <= n; i++ {
			parts[i-1] = L.ToStringMeta(L.Get(i)).String()
		}
		fmt.Fprintln(r.out, strings.Join(parts, "\t"))
		return 0
	}))
}

// DoString runs a chunk of Lua code.
func (r *Runtime) DoString(ctx context.Context, code string) error {
	return r.run(ctx, "<string>", func() error { return r.L.DoString(code) })
}

// DoFile runs the Lua file at path.
func (r *Runtime) DoFile(ctx context.Context, path string) error {
	// The Lua loader itself is removed from the sandbox; the host reads the
	// file on the script's behalf.
	return r.run(ctx, path, func() error { return r.L.DoFile(path) })
}

func (r *Runtime) run(ctx context.Context, name string, fn func() error) error {
	if r.closed {
		return ErrClosed
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	r.L.SetContext(ctx)
	defer r.L.RemoveContext()

	start := time.Now()
	err := r.doWithRecovery(fn)
	if err != nil {
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			err = fmt.Errorf("%w: %v", ErrTimeout, ctx.Err())
		case ctx.Err() != nil:
			err = fmt.Errorf("script interrupted: %w", ctx.Err())
		}
	}

	r.logger.Debug("script finished",
		slog.String("name", name),
		slog.Duration("elapsed", time.Since(start)),
		slog.Bool("ok", err == nil),
	)
	return err
}

// doWithRecovery executes a function with panic recovery.
func (r *Runtime) doWithRecovery(fn func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("lua panic: %v", v)
		}
	}()
	return fn()
}

// Close releases the Lua state.
func (r *Runtime) Close() {
	if r.closed {
		return
	}
	r.closed = true
	r.L.Close()
}
