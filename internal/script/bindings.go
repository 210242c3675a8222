package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/gridstorm/internal/selection"
	"github.com/dshills/gridstorm/internal/sheet"
	"github.com/dshills/gridstorm/internal/style"
)

// register installs the sheet functions as globals.
func (r *Runtime) register() {
	fns := map[string]lua.LGFunction{
		"set":            r.luaSet,
		"get":            r.luaGet,
		"clear":          r.luaClear,
		"paste":          r.luaPaste,
		"insert_rows":    r.lineCount(r.sheet.InsertRows),
		"delete_rows":    r.lineCount(r.sheet.DeleteRows),
		"insert_columns": r.lineCount(r.sheet.InsertColumns),
		"delete_columns": r.lineCount(r.sheet.DeleteColumns),
		"move_rows":      r.lineMove(r.sheet.MoveRows),
		"move_columns":   r.lineMove(r.sheet.MoveColumns),
		"fill":           r.luaFill,
		"style":          r.luaStyle,
		"row_height":     r.lineSize(r.sheet.SetRowHeight),
		"column_width":   r.lineSize(r.sheet.SetColumnWidth),
		"jump":           r.luaJump,
		"undo":           r.luaUndo,
		"redo":           r.luaRedo,
		"dump":           r.luaDump,
	}
	for name, fn := range fns {
		r.L.SetGlobal(name, r.L.NewFunction(fn))
	}
}

// check raises a Lua error when err is non-nil.
func check(L *lua.LState, name string, err error) {
	if err != nil {
		L.RaiseError("%s: %v", name, err)
	}
}

// checkRange reads four integer arguments starting at n as l, t, r, b.
func checkRange(L *lua.LState, n int) selection.Range {
	return selection.NewRange(L.CheckInt(n), L.CheckInt(n+1), L.CheckInt(n+2), L.CheckInt(n+3))
}

// set(col, row, text)
func (r *Runtime) luaSet(L *lua.LState) int {
	x, y := L.CheckInt(1), L.CheckInt(2)
	text := L.CheckString(3)
	check(L, "set", r.sheet.SetText(selection.Of(selection.Cell(x, y)), text))
	return 0
}

// get(col, row) -> text or nil
func (r *Runtime) luaGet(L *lua.LState) int {
	text, ok := r.sheet.Text(L.CheckInt(1), L.CheckInt(2))
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(text))
	return 1
}

// clear(l, t, r, b)
func (r *Runtime) luaClear(L *lua.LState) int {
	check(L, "clear", r.sheet.Clear(selection.Of(checkRange(L, 1))))
	return 0
}

// paste(col, row, text)
func (r *Runtime) luaPaste(L *lua.LState) int {
	_, err := r.sheet.Paste(L.CheckInt(1), L.CheckInt(2), L.CheckString(3))
	check(L, "paste", err)
	return 0
}

func (r *Runtime) lineCount(op func(at, count int) error) lua.LGFunction {
	return func(L *lua.LState) int {
		check(L, "lines", op(L.CheckInt(1), L.CheckInt(2)))
		return 0
	}
}

func (r *Runtime) lineMove(op func(lo, hi, delta int, duplicate bool) error) lua.LGFunction {
	return func(L *lua.LState) int {
		check(L, "move", op(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3), L.OptBool(4, false)))
		return 0
	}
}

func (r *Runtime) lineSize(op func(lo, hi, size int) error) lua.LGFunction {
	return func(L *lua.LState) int {
		check(L, "size", op(L.CheckInt(1), L.CheckInt(2), L.CheckInt(3)))
		return 0
	}
}

// fill(l, t, r, b, l2, t2, r2, b2)
func (r *Runtime) luaFill(L *lua.LState) int {
	check(L, "fill", r.sheet.Fill(checkRange(L, 1), checkRange(L, 5)))
	return 0
}

// style(l, t, r, b, {fg=..., align=..., typeface=..., margin=...})
//
// Unknown or malformed fields are ignored.
func (r *Runtime) luaStyle(L *lua.LState) int {
	rng := checkRange(L, 1)
	tbl := L.CheckTable(5)

	fields := make(map[string]string)
	tbl.ForEach(func(k, v lua.LValue) {
		if key, ok := k.(lua.LString); ok {
			fields[string(key)] = L.ToStringMeta(v).String()
		}
	})

	check(L, "style", r.sheet.ApplyStyle(selection.Of(rng), style.Decode(fields)))
	return 0
}

// jump(direction) -> col, row
func (r *Runtime) luaJump(L *lua.LState) int {
	dir, ok := sheet.ParseDirection(L.CheckString(1))
	if !ok {
		L.ArgError(1, "expected up, down, left or right")
		return 0
	}
	at := r.sheet.Jump(dir)
	L.Push(lua.LNumber(at.X))
	L.Push(lua.LNumber(at.Y))
	return 2
}

// undo() -> bool
func (r *Runtime) luaUndo(L *lua.LState) int {
	L.Push(lua.LBool(r.sheet.Undo() == nil))
	return 1
}

// redo() -> bool
func (r *Runtime) luaRedo(L *lua.LState) int {
	L.Push(lua.LBool(r.sheet.Redo() == nil))
	return 1
}

// dump() -> text
func (r *Runtime) luaDump(L *lua.LState) int {
	L.Push(lua.LString(r.sheet.String()))
	return 1
}
