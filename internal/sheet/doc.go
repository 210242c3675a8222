// Package sheet is the facade over the sparse tabular engine.
//
// A Sheet owns one channel per cell attribute (content, foreground, margin,
// alignment, typeface) and one per line attribute (row height, column
// width), together with a single history log. Every user-level action,
// however many channels it touches, becomes exactly one undoable entry.
//
// # Architecture
//
// The sheet is built on several sub-packages:
//
//   - grid: sparse coordinate stores and boundary scans
//   - selection: rectangle algebra over cell ranges
//   - edit: pure grid operations returning reversible frames
//   - history: channels, transactions and the undo/redo log
//   - autofill: sequence inference for fill operations
//   - textio: delimited text codec for copy, paste and load
//
// # Concurrency
//
// A Sheet is not safe for concurrent use. One owner, typically the UI
// loop or a script, drives every operation to completion before starting
// the next.
//
// # Basic Usage
//
//	s := sheet.New()
//	s.SetText(selection.Of(selection.NewRange(0, 0, 1, 0)), "X")
//	s.InsertColumns(2, 2)
//	_ = s.Undo()
//
// # Capture Suppression
//
// Changes made inside Untracked are applied without being recorded:
//
//	s.Untracked(func() {
//		s.SetText(selection.Of(selection.Cell(0, 0)), "scratch")
//	})
package sheet
