package conf

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHolderCurrentAndSwap(t *testing.T) {
	initial := Defaults()
	h := NewHolder(initial)
	assert.Same(t, initial, h.Current())

	next := Defaults()
	h.Swap(next)
	assert.Same(t, next, h.Current())
}

func TestHolderReloadSuccess(t *testing.T) {
	h := NewHolder(Defaults())

	err := h.Reload(NewLoader(discardLogger()), validSource())
	require.NoError(t, err)
	assert.Len(t, h.Current().Outputs, 2)
}

func TestHolderReloadFailureKeepsOldTable(t *testing.T) {
	initial := Defaults()
	h := NewHolder(initial)

	bad := newMapSource().set("OUTPUT=kernlog", "File", "/var/log/kern.log")
	err := h.Reload(NewLoader(discardLogger()), bad)
	require.Error(t, err)
	assert.Same(t, initial, h.Current(), "failed reload must not disturb the live table")
}

func TestHolderReloadDiscardsAbsentEntities(t *testing.T) {
	h := NewHolder(Defaults())
	l := NewLoader(discardLogger())

	require.NoError(t, h.Reload(l, validSource()))
	_, ok := h.Current().Context("updater")
	require.True(t, ok)

	// The replacement source no longer defines kernlog or updater; the new
	// table must not carry them over.
	smaller := newMapSource().
		set("OUTPUT=stdlog", "File", "/var/log/messages").
		set("CONTEXT=<global>", "Rule1", "*.*,stdlog")
	require.NoError(t, h.Reload(l, smaller))

	table := h.Current()
	assert.Len(t, table.Outputs, 1)
	_, ok = table.Context("updater")
	assert.False(t, ok)
}

func TestHolderConcurrentReaders(t *testing.T) {
	h := NewHolder(Defaults())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				table := h.Current()
				if table == nil || len(table.Outputs) == 0 {
					t.Error("reader observed an incomplete table")
					return
				}
			}
		}()
	}
	for j := 0; j < 100; j++ {
		h.Swap(Defaults())
	}
	wg.Wait()
}
