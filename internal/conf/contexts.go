package conf

import (
	"fmt"

	"pmlogd/internal/ringbuf"
)

// parsedContext is the intermediate record for one CONTEXT group. Buffer
// sizing fields stay nil until the group explicitly sets them; unset values
// resolve to the ring-buffer defaults.
type parsedContext struct {
	Name       string
	Rules      []Rule
	BufferSize *int64
	FlushLevel *int
}

// makeContext creates or replaces the named context from a parsed CONTEXT
// group. On redefinition the rule list is replaced wholesale and the ring
// buffer is re-created with the latest sizing, even if the sizing did not
// change.
func (t *Table) makeContext(pc parsedContext, group string) error {
	ctx, ok := t.Contexts[pc.Name]
	if !ok {
		if len(t.Contexts) == 0 && pc.Name != GlobalContextName {
			return structuralError(group, fmt.Sprintf("expected %s context definition first", GlobalContextName))
		}
		if len(pc.Name) > MaxContextNameLen {
			return syntaxError(group, "", pc.Name, "context name too long")
		}
		ctx = &Context{Name: pc.Name}
		t.Contexts[pc.Name] = ctx
	}

	if len(pc.Rules) > MaxRulesPerContext {
		return referenceError(group, "", "",
			fmt.Sprintf("too many rules (max %d)", MaxRulesPerContext))
	}
	ctx.Rules = append([]Rule(nil), pc.Rules...)

	ctx.BufferSize = ringbuf.DefaultCapacity
	if pc.BufferSize != nil && *pc.BufferSize > 0 {
		ctx.BufferSize = *pc.BufferSize
	}
	ctx.FlushLevel = ringbuf.DefaultFlushLevel
	if pc.FlushLevel != nil {
		ctx.FlushLevel = *pc.FlushLevel
	}
	ctx.Buffer = ringbuf.New(ctx.BufferSize, ctx.FlushLevel)

	return nil
}
