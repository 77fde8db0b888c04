package conf

import (
	"pmlogd/internal/ringbuf"
)

// OutputTarget is one named rotating log destination.
//
// Name and Path are fixed when the output is first defined; redefinitions
// may only adjust MaxSize and Rotations.
type OutputTarget struct {
	Name      string `json:"name" yaml:"name"`
	Path      string `json:"path" yaml:"path"`
	MaxSize   int64  `json:"max_size" yaml:"max_size"`
	Rotations int    `json:"rotations" yaml:"rotations"`
}

// Rule is one compiled routing rule inside a context. Position in the
// context's rule list is evaluation priority.
type Rule struct {
	// Facility is a syslog facility code, or -1 for any facility.
	Facility int `json:"facility" yaml:"facility"`

	// Level is a syslog severity code, or -1 for any level.
	Level int `json:"level" yaml:"level"`

	// LevelInvert flips the level comparison ("!err" = everything but err).
	LevelInvert bool `json:"level_invert,omitempty" yaml:"level_invert,omitempty"`

	// Program is an exact program-name selector; empty matches any program.
	Program string `json:"program,omitempty" yaml:"program,omitempty"`

	// OutputIndex references an already-defined output target.
	OutputIndex int `json:"output_index" yaml:"output_index"`

	// OmitOutput excludes matching records from the output instead of
	// including them.
	OmitOutput bool `json:"omit_output,omitempty" yaml:"omit_output,omitempty"`
}

// Context is one named, ordered set of routing rules plus its buffering
// policy and ring-buffer handle.
type Context struct {
	Name       string `json:"name" yaml:"name"`
	Rules      []Rule `json:"rules" yaml:"rules"`
	BufferSize int64  `json:"buffer_size" yaml:"buffer_size"`
	FlushLevel int    `json:"flush_level" yaml:"flush_level"`

	// Buffer is re-created on every successful (re)definition of the
	// context, even when the sizing did not change.
	Buffer *ringbuf.Buffer `json:"-" yaml:"-"`
}

// Table is the complete routing table: the ordered output registry plus the
// name-keyed context registry. A Table is built from scratch by one load and
// never mutated afterwards; reloading produces a new Table.
type Table struct {
	Outputs  []OutputTarget      `json:"outputs" yaml:"outputs"`
	Contexts map[string]*Context `json:"contexts" yaml:"contexts"`
}

// NewTable returns an empty table ready to be populated by a load.
func NewTable() *Table {
	return &Table{Contexts: make(map[string]*Context)}
}

// Context returns the named context.
func (t *Table) Context(name string) (*Context, bool) {
	ctx, ok := t.Contexts[name]
	return ctx, ok
}

// GlobalContext returns the mandatory "<global>" context. It exists in every
// table produced by a successful load or by Defaults.
func (t *Table) GlobalContext() (*Context, bool) {
	return t.Context(GlobalContextName)
}
