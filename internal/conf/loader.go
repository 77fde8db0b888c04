package conf

import (
	"fmt"
	"log/slog"
	"strings"

	"pmlogd/internal/keyfile"
)

const (
	outputGroupPrefix  = "OUTPUT="
	contextGroupPrefix = "CONTEXT="
)

// Source is the grouped key/value collaborator the loader reads from.
// Groups must preserve source order: the mandatory-first-output and
// mandatory-first-context checks depend on it.
type Source interface {
	Groups() []string
	GetString(group, key string) (string, bool)
	GetInt(group, key string) (int64, bool)
}

// Loader builds routing tables from configuration sources. Each load builds
// a fresh table in private scratch; nothing previously published is touched,
// so a failed load leaves the running configuration intact.
type Loader struct {
	logger *slog.Logger
}

// NewLoader returns a loader that reports recoverable problems (clamped
// values, skipped groups, truncated rule lists) through logger.
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger}
}

// Load walks every group of the source and builds a complete, validated
// table. Any syntax, reference, or structural problem aborts the whole load;
// the caller is expected to fall back to Defaults rather than operate on a
// partial table.
func (l *Loader) Load(src Source) (*Table, error) {
	t := NewTable()

	for _, group := range src.Groups() {
		var err error
		switch {
		case strings.HasPrefix(group, outputGroupPrefix):
			err = l.loadOutputGroup(t, src, group, group[len(outputGroupPrefix):])
		case strings.HasPrefix(group, contextGroupPrefix):
			err = l.loadContextGroup(t, src, group, group[len(contextGroupPrefix):])
		default:
			l.logger.Warn("unrecognized group, skipping", "group", group)
		}
		if err != nil {
			return nil, err
		}
	}

	if len(t.Outputs) == 0 {
		return nil, structuralError("", "no output definitions found")
	}
	if _, ok := t.GlobalContext(); !ok {
		return nil, structuralError("", fmt.Sprintf("missing %s context definition", GlobalContextName))
	}

	return t, nil
}

// LoadFile reads the configuration file at path and builds its table.
func (l *Loader) LoadFile(path string) (*Table, error) {
	f, err := keyfile.Open(path)
	if err != nil {
		return nil, &Error{Code: CodeIO, Value: path, Message: "cannot load config file: " + err.Error()}
	}
	return l.Load(f)
}

// loadOutputGroup reads one OUTPUT group into the output registry.
// File is required; MaxSize and Rotations are optional. An unparsable
// MaxSize is reported and falls back to the default rather than aborting.
func (l *Loader) loadOutputGroup(t *Table, src Source, group, name string) error {
	po := parsedOutput{Name: name}

	if s, ok := src.GetString(group, "File"); ok {
		po.File = s
	}

	if s, ok := src.GetString(group, "MaxSize"); ok {
		if n, parsed := ParseSize(s); parsed {
			po.MaxSize = &n
		} else {
			l.logger.Warn("unrecognized MaxSize format, using default",
				"group", group, "value", s)
		}
	}

	if n, ok := src.GetInt(group, "Rotations"); ok {
		po.Rotations = &n
	}

	return t.upsertOutput(po, group, l.logger)
}

// loadContextGroup reads one CONTEXT group: Rule1..RuleN up to the bound
// (the first missing key ends the list), then the optional ring-buffer
// sizing keys.
func (l *Loader) loadContextGroup(t *Table, src Source, group, name string) error {
	pc := parsedContext{Name: name}

	for j := 1; j <= MaxRulesPerContext; j++ {
		key := fmt.Sprintf("Rule%d", j)
		expr, ok := src.GetString(group, key)
		if !ok {
			break
		}
		rule, err := t.CompileRule(expr)
		if err != nil {
			if ce, isConf := err.(*Error); isConf {
				ce.Group = group
				ce.Key = key
			}
			return err
		}
		pc.Rules = append(pc.Rules, rule)
	}

	if len(pc.Rules) == MaxRulesPerContext {
		excess := fmt.Sprintf("Rule%d", MaxRulesPerContext+1)
		if _, ok := src.GetString(group, excess); ok {
			l.logger.Warn("rule list truncated at bound",
				"group", group, "max_rules", MaxRulesPerContext)
		}
	}

	if s, ok := src.GetString(group, "BufferSize"); ok {
		n, parsed := ParseSize(s)
		if !parsed {
			return syntaxError(group, "BufferSize", s, "size not parsed")
		}
		pc.BufferSize = &n
	}

	if s, ok := src.GetString(group, "FlushLevel"); ok {
		level, parsed := ParseFlushLevel(s)
		if !parsed {
			return syntaxError(group, "FlushLevel", s, "level not parsed")
		}
		pc.FlushLevel = &level
	}

	return t.makeContext(pc, group)
}
