// Package edit provides the structural and value edits applied to sheet
// stores.
//
// Every operation is a pure function: it leaves its input untouched and
// returns a new store together with a history.Frame describing the change.
// Callers decide whether to record the frame. Ranges are assumed normalized
// and validated by the caller; whole-line ranges must be clipped before
// SetValue, which writes every cell it covers.
package edit
