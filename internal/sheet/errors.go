package sheet

import (
	"errors"

	"github.com/dshills/gridstorm/internal/history"
)

// Errors returned by sheet operations.
var (
	// ErrInvalidRange indicates a range with negative or inverted bounds.
	ErrInvalidRange = errors.New("invalid range")

	// ErrInvalidCount indicates a non-positive line count.
	ErrInvalidCount = errors.New("invalid count")

	// ErrInvalidFill indicates a fill target that does not extend the
	// source along one axis.
	ErrInvalidFill = errors.New("invalid fill target")

	// ErrNothingToUndo indicates the undo stack is empty.
	ErrNothingToUndo = history.ErrNothingToUndo

	// ErrNothingToRedo indicates the redo stack is empty.
	ErrNothingToRedo = history.ErrNothingToRedo
)
