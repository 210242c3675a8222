package sheet

import "github.com/dshills/gridstorm/internal/history"

// Undo reverts the last action on every channel and restores its selection.
func (s *Sheet) Undo() error {
	sel, err := s.log.Undo()
	if err != nil {
		return err
	}
	if len(sel) > 0 {
		s.selection = sel
	}
	return nil
}

// Redo re-applies the last undone action and restores its selection.
func (s *Sheet) Redo() error {
	sel, err := s.log.Redo()
	if err != nil {
		return err
	}
	if len(sel) > 0 {
		s.selection = sel
	}
	return nil
}

// CanUndo reports whether undo is available.
func (s *Sheet) CanUndo() bool {
	return s.log.CanUndo()
}

// CanRedo reports whether redo is available.
func (s *Sheet) CanRedo() bool {
	return s.log.CanRedo()
}

// UndoCount returns the number of undo entries.
func (s *Sheet) UndoCount() int {
	return s.log.UndoCount()
}

// RedoCount returns the number of redo entries.
func (s *Sheet) RedoCount() int {
	return s.log.RedoCount()
}

// UndoInfo describes the undo stack, oldest first.
func (s *Sheet) UndoInfo() []history.Info {
	return s.log.UndoInfo()
}

// RedoInfo describes the redo stack, oldest first.
func (s *Sheet) RedoInfo() []history.Info {
	return s.log.RedoInfo()
}

// ClearHistory drops all undo and redo entries.
func (s *Sheet) ClearHistory() {
	s.log.Clear()
}
