package conf

import "sync/atomic"

// Holder publishes the live table to concurrent readers. Tables are
// immutable once published; a reload builds the replacement table fully and
// swaps it in with a single atomic store, so readers always see either the
// old or the new complete table, never a partial one.
type Holder struct {
	table atomic.Pointer[Table]
}

// NewHolder publishes the given initial table, typically Defaults().
func NewHolder(initial *Table) *Holder {
	h := &Holder{}
	h.table.Store(initial)
	return h
}

// Current returns the live table.
func (h *Holder) Current() *Table {
	return h.table.Load()
}

// Swap publishes t as the live table.
func (h *Holder) Swap(t *Table) {
	h.table.Store(t)
}

// Reload builds a new table from src and publishes it on success. On
// failure the previously published table stays live and the error is
// returned to the caller.
func (h *Holder) Reload(l *Loader, src Source) error {
	t, err := l.Load(src)
	if err != nil {
		return err
	}
	h.table.Store(t)
	return nil
}
