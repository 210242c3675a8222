package history

import (
	"github.com/dshills/gridstorm/internal/grid"
	"github.com/dshills/gridstorm/internal/selection"
)

// Channel owns the live store for one attribute. Edits replace the store
// wholesale; Commit installs the new store and records its frame.
type Channel[K grid.Key[K], V any] struct {
	name string
	live *grid.Sparse[K, V]
}

// NewChannel creates a channel with an empty store.
func NewChannel[K grid.Key[K], V any](name string) *Channel[K, V] {
	return &Channel[K, V]{name: name, live: grid.New[K, V]()}
}

// Name returns the channel name.
func (c *Channel[K, V]) Name() string {
	return c.name
}

// Grid returns the live store. Callers must treat it as read-only and go
// through Commit to change it.
func (c *Channel[K, V]) Grid() *grid.Sparse[K, V] {
	return c.live
}

// Reset installs g without recording history.
func (c *Channel[K, V]) Reset(g *grid.Sparse[K, V]) {
	if g == nil {
		g = grid.New[K, V]()
	}
	c.live = g
}

// Commit installs g as the live store and, when tx is non-nil, records f
// in the transaction. Empty frames are not recorded.
func (c *Channel[K, V]) Commit(tx *Tx, g *grid.Sparse[K, V], f Frame[K, V]) {
	c.live = g
	if tx == nil || f.IsEmpty() {
		return
	}
	tx.Add(&change[K, V]{channel: c, frame: f})
}

// change binds a frame to the channel it was recorded on.
type change[K grid.Key[K], V any] struct {
	channel *Channel[K, V]
	frame   Frame[K, V]
}

func (ch *change[K, V]) Channel() string {
	return ch.channel.name
}

func (ch *change[K, V]) Selection() selection.Set {
	return ch.frame.Selection
}

func (ch *change[K, V]) Size() int {
	return ch.frame.Len()
}

func (ch *change[K, V]) Revert() {
	ch.channel.live = ch.frame.Apply(ch.channel.live, false)
}

func (ch *change[K, V]) Replay() {
	ch.channel.live = ch.frame.Apply(ch.channel.live, true)
}
