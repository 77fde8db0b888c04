package conf

import (
	"pmlogd/internal/ringbuf"
)

// Defaults synthesizes the guaranteed-valid fallback table: one stdlog
// output at the default path and one "<global>" context with a single
// catch-all rule routed to it. Callers fall back to this table whenever a
// load fails, so the daemon is never left without a usable configuration.
func Defaults() *Table {
	t := NewTable()

	t.Outputs = []OutputTarget{{
		Name:      StdlogName,
		Path:      DefaultLogPath,
		MaxSize:   DefaultLogSize,
		Rotations: DefaultRotations,
	}}

	t.Contexts[GlobalContextName] = &Context{
		Name: GlobalContextName,
		Rules: []Rule{{
			Facility:    -1,
			Level:       -1,
			LevelInvert: false,
			Program:     "",
			OutputIndex: 0,
			OmitOutput:  false,
		}},
		BufferSize: ringbuf.DefaultCapacity,
		FlushLevel: ringbuf.DefaultFlushLevel,
		Buffer:     ringbuf.New(ringbuf.DefaultCapacity, ringbuf.DefaultFlushLevel),
	}

	return t
}
