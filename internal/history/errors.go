package history

import "errors"

// Errors returned by the log. Callers are expected to check CanUndo and
// CanRedo first; the stacks are left untouched when these are returned.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)
