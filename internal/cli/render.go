package cli

import (
	"fmt"
	"sort"
	"strings"

	"pmlogd/internal/conf"
	"pmlogd/internal/syslogcode"
)

// renderTable produces the human-readable form of a routing table. Outputs
// appear in registry order, contexts in name order, rules in evaluation
// order.
func renderTable(t *conf.Table) string {
	var b strings.Builder

	b.WriteString("outputs:\n")
	for i, out := range t.Outputs {
		fmt.Fprintf(&b, "  [%d] %s -> %s (max %d bytes, %d rotations)\n",
			i, out.Name, out.Path, out.MaxSize, out.Rotations)
	}

	names := make([]string, 0, len(t.Contexts))
	for name := range t.Contexts {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteString("contexts:\n")
	for _, name := range names {
		ctx := t.Contexts[name]
		fmt.Fprintf(&b, "  %s (buffer %d bytes, flush level %s)\n",
			ctx.Name, ctx.Buffer.Capacity(), levelLabel(ctx.Buffer.FlushLevel()))
		for i, rule := range ctx.Rules {
			fmt.Fprintf(&b, "    rule %d: %s -> %s\n", i+1, renderFilter(rule), renderTarget(t, rule))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderFilter reconstructs the filter half of a rule expression.
func renderFilter(rule conf.Rule) string {
	facility := "*"
	if rule.Facility != -1 {
		facility = syslogcode.FacilityName(rule.Facility)
	}
	level := "*"
	if rule.Level != -1 {
		level = syslogcode.LevelName(rule.Level)
	}
	if rule.LevelInvert {
		level = "!" + level
	}
	program := "*"
	if rule.Program != "" {
		program = rule.Program
	}
	return facility + "." + level + "." + program
}

// renderTarget reconstructs the output half of a rule expression.
func renderTarget(t *conf.Table, rule conf.Rule) string {
	name := fmt.Sprintf("#%d", rule.OutputIndex)
	if rule.OutputIndex >= 0 && rule.OutputIndex < len(t.Outputs) {
		name = t.Outputs[rule.OutputIndex].Name
	}
	if rule.OmitOutput {
		name = "-" + name
	}
	return name
}

func levelLabel(level int) string {
	if name := syslogcode.LevelName(level); name != "" {
		return name
	}
	return fmt.Sprintf("%d", level)
}
