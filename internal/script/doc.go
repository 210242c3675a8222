// Package script runs sandboxed Lua scripts against a sheet.
//
// Scripts see a small set of global functions that map onto sheet
// operations. Coordinates are zero-based, matching the sheet:
//
//	set(col, row, text)            get(col, row) -> text or nil
//	clear(l, t, r, b)              paste(col, row, text)
//	insert_rows(at, n)             delete_rows(at, n)
//	insert_columns(at, n)          delete_columns(at, n)
//	move_rows(min, max, delta [, copy])
//	move_columns(min, max, delta [, copy])
//	fill(l, t, r, b, l2, t2, r2, b2)
//	style(l, t, r, b, {fg=..., align=..., typeface=..., margin=...})
//	row_height(top, bottom, h)     column_width(left, right, w)
//	jump(direction) -> col, row
//	undo() -> bool                 redo() -> bool
//	dump() -> text
//
// Only the base, table, string and math libraries are available. Functions
// that load code from files or strings are removed, and print writes to the
// runtime's output instead of stdout.
//
// # Execution
//
// Execution is synchronous. Each run is bounded by a timeout; a script that
// exceeds it is stopped and ErrTimeout is returned. A Runtime is not safe
// for concurrent use.
package script
