// Package route evaluates routing tables against incoming log records.
// This is the runtime consumer of the tables built by internal/conf: once
// per record, a context's ordered rule list decides which outputs receive
// the record.
package route

import (
	"pmlogd/internal/conf"
)

// Record is the routing-relevant slice of one log record.
type Record struct {
	Facility int
	Level    int
	Program  string
}

// Matches reports whether the rule's filter selects the record. The output
// reference and omit polarity play no part here; they are applied by
// Outputs.
func Matches(rule conf.Rule, rec Record) bool {
	if rule.Facility != -1 && rule.Facility != rec.Facility {
		return false
	}
	if rule.Level != -1 {
		if (rec.Level == rule.Level) == rule.LevelInvert {
			return false
		}
	}
	if rule.Program != "" && rule.Program != rec.Program {
		return false
	}
	return true
}

// Outputs walks the context's rules in order and returns the indexes of the
// outputs that should receive the record, ascending. Later rules win:
// an omit rule removes an output selected by an earlier rule, and a normal
// rule re-adds one removed earlier.
func Outputs(t *conf.Table, ctx *conf.Context, rec Record) []int {
	selected := make([]bool, len(t.Outputs))
	for _, rule := range ctx.Rules {
		if !Matches(rule, rec) {
			continue
		}
		if rule.OutputIndex < 0 || rule.OutputIndex >= len(selected) {
			continue
		}
		selected[rule.OutputIndex] = !rule.OmitOutput
	}

	var out []int
	for i, on := range selected {
		if on {
			out = append(out, i)
		}
	}
	return out
}

// For routes the record through the named context. A context that does not
// exist routes nothing.
func For(t *conf.Table, contextName string, rec Record) []int {
	ctx, ok := t.Context(contextName)
	if !ok {
		return nil
	}
	return Outputs(t, ctx, rec)
}
