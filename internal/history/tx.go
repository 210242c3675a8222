package history

import "github.com/dshills/gridstorm/internal/selection"

// Change is one channel's recorded part of a logical action.
type Change interface {
	// Channel returns the name of the channel the change applies to.
	Channel() string

	// Selection returns the cells affected by the change.
	Selection() selection.Set

	// Size returns the number of keys touched.
	Size() int

	// Revert restores the channel's values from before the change.
	Revert()

	// Replay re-applies the change.
	Replay()
}

// Tx collects the changes of one logical action across channels.
type Tx struct {
	label     string
	selection selection.Set
	changes   []Change
}

// NewTx creates an empty transaction.
func NewTx(label string) *Tx {
	return &Tx{label: label}
}

// Label returns the transaction label.
func (tx *Tx) Label() string {
	return tx.label
}

// Add records a change.
func (tx *Tx) Add(c Change) {
	tx.changes = append(tx.changes, c)
}

// SetSelection overrides the selection restored on undo and redo.
func (tx *Tx) SetSelection(sel selection.Set) {
	tx.selection = sel.Clone()
}

// Changes returns the recorded changes in order.
func (tx *Tx) Changes() []Change {
	return tx.changes
}

// IsEmpty reports whether no changes were recorded.
func (tx *Tx) IsEmpty() bool {
	return len(tx.changes) == 0
}

// Rollback reverts every recorded change, newest first, and empties the
// transaction.
func (tx *Tx) Rollback() {
	for i := len(tx.changes) - 1; i >= 0; i-- {
		tx.changes[i].Revert()
	}
	tx.changes = nil
}

// restoreSelection is the selection of the explicit override or else of the
// first change that has one.
func (tx *Tx) restoreSelection() selection.Set {
	if tx.selection != nil {
		return tx.selection
	}
	for _, c := range tx.changes {
		if sel := c.Selection(); len(sel) > 0 {
			return sel.Clone()
		}
	}
	return nil
}
