package conf

import (
	"fmt"
	"log/slog"
	"strings"
)

// parsedOutput is the intermediate record for one OUTPUT group. Optional
// numeric fields stay nil until the group explicitly sets them, so "not set"
// is distinguishable from an explicit zero.
type parsedOutput struct {
	Name      string
	File      string
	MaxSize   *int64
	Rotations *int64
}

// FindOutputByName looks the named output up in the ordered registry.
// Returns the output, its index, and whether it was found.
func (t *Table) FindOutputByName(name string) (*OutputTarget, int, bool) {
	for i := range t.Outputs {
		if t.Outputs[i].Name == name {
			return &t.Outputs[i], i, true
		}
	}
	return nil, -1, false
}

// upsertOutput validates a parsed OUTPUT group and appends or updates the
// registry entry.
//
// A new entry fixes name and path permanently; redefinition touches only
// size and rotations. Out-of-range size/rotation values are clamped with a
// warning, never rejected.
func (t *Table) upsertOutput(po parsedOutput, group string, logger *slog.Logger) error {
	if len(t.Outputs) == 0 && po.Name != StdlogName {
		return structuralError(group, fmt.Sprintf("expected %s definition first", StdlogName))
	}
	if len(po.Name) > MaxOutputNameLen {
		return syntaxError(group, "", po.Name, "output name too long")
	}

	switch {
	case po.File == "":
		return syntaxError(group, "File", "", "File not specified")
	case !strings.HasPrefix(po.File, "/"):
		return syntaxError(group, "File", po.File, "expected full path value")
	}

	out, _, found := t.FindOutputByName(po.Name)
	if !found {
		if len(t.Outputs) >= MaxOutputs {
			return referenceError(group, "", po.Name, "too many output definitions")
		}
		t.Outputs = append(t.Outputs, OutputTarget{Name: po.Name, Path: po.File})
		out = &t.Outputs[len(t.Outputs)-1]
	}
	// Name and path stay untouched when the output already existed.

	out.MaxSize = clampSize(po.MaxSize, po.Name, logger)
	out.Rotations = clampRotations(po.Rotations, po.Name, logger)
	return nil
}

// clampSize resolves an optional MaxSize to its stored value: default when
// unset, clamped to [MinLogSize, MaxLogSize] when out of range.
func clampSize(v *int64, outputName string, logger *slog.Logger) int64 {
	if v == nil {
		return DefaultLogSize
	}
	switch {
	case *v < MinLogSize:
		logger.Warn("log size below minimum, clamping",
			"output", outputName, "max_size", *v, "min", int64(MinLogSize))
		return MinLogSize
	case *v > MaxLogSize:
		logger.Warn("log size above maximum, clamping",
			"output", outputName, "max_size", *v, "max", int64(MaxLogSize))
		return MaxLogSize
	}
	return *v
}

// clampRotations resolves an optional rotation count the same way.
func clampRotations(v *int64, outputName string, logger *slog.Logger) int {
	if v == nil {
		return DefaultRotations
	}
	switch {
	case *v < MinRotations:
		logger.Warn("rotation count below minimum, clamping",
			"output", outputName, "rotations", *v, "min", MinRotations)
		return MinRotations
	case *v > MaxRotations:
		logger.Warn("rotation count above maximum, clamping",
			"output", outputName, "rotations", *v, "max", MaxRotations)
		return MaxRotations
	}
	return int(*v)
}
