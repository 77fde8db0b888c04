package conf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pmlogd/internal/syslogcode"
)

// tableWithOutputs builds a table whose output registry already holds the
// given names, in order.
func tableWithOutputs(names ...string) *Table {
	t := NewTable()
	for _, name := range names {
		t.Outputs = append(t.Outputs, OutputTarget{
			Name:      name,
			Path:      "/var/log/" + name,
			MaxSize:   DefaultLogSize,
			Rotations: DefaultRotations,
		})
	}
	return t
}

func TestCompileRuleFull(t *testing.T) {
	tab := tableWithOutputs("stdlog", "errlog")

	rule, err := tab.CompileRule("kern.err.myprog,errlog")
	require.NoError(t, err)
	assert.Equal(t, 0, rule.Facility, "kern is facility 0")
	assert.Equal(t, syslogcode.LevelError, rule.Level)
	assert.False(t, rule.LevelInvert)
	assert.Equal(t, "myprog", rule.Program)
	assert.Equal(t, 1, rule.OutputIndex)
	assert.False(t, rule.OmitOutput)
}

func TestCompileRuleCatchAll(t *testing.T) {
	tab := tableWithOutputs("stdlog")

	rule, err := tab.CompileRule("*.*,stdlog")
	require.NoError(t, err)
	assert.Equal(t, -1, rule.Facility)
	assert.Equal(t, -1, rule.Level)
	assert.False(t, rule.LevelInvert)
	assert.Equal(t, "", rule.Program, "empty program matches any")
	assert.Equal(t, 0, rule.OutputIndex)
	assert.False(t, rule.OmitOutput)
}

func TestCompileRuleInvertAndOmit(t *testing.T) {
	tab := tableWithOutputs("stdlog", "errlog")

	rule, err := tab.CompileRule("kern.!err,-errlog")
	require.NoError(t, err)
	assert.True(t, rule.LevelInvert)
	assert.True(t, rule.OmitOutput)
	assert.Equal(t, syslogcode.LevelError, rule.Level)
	assert.Equal(t, 1, rule.OutputIndex)
}

func TestCompileRuleFacilityOnly(t *testing.T) {
	tab := tableWithOutputs("stdlog")

	rule, err := tab.CompileRule("daemon,stdlog")
	require.NoError(t, err)
	assert.Equal(t, 3, rule.Facility)
	assert.Equal(t, -1, rule.Level, "level defaults to any without '.'")
	assert.False(t, rule.LevelInvert)
	assert.Equal(t, "", rule.Program)
}

func TestCompileRuleEmptyProgramToken(t *testing.T) {
	tab := tableWithOutputs("stdlog")

	// Trailing '.' with nothing before the ',' is an explicit empty
	// program token, which means any program.
	rule, err := tab.CompileRule("kern.err.,stdlog")
	require.NoError(t, err)
	assert.Equal(t, "", rule.Program)
}

func TestCompileRuleExtraSegment(t *testing.T) {
	tab := tableWithOutputs("stdlog")

	_, err := tab.CompileRule("kern.err.prog.extra,stdlog")
	require.Error(t, err)
	assert.True(t, IsSyntax(err), "extra segment before ',' is a syntax error")
}

func TestCompileRuleSyntaxErrors(t *testing.T) {
	tab := tableWithOutputs("stdlog")

	cases := []struct {
		name string
		expr string
	}{
		{"missing comma", "kern"},
		{"missing comma after level", "kern.err"},
		{"empty facility", ".err,stdlog"},
		{"bad facility", "bogus.err,stdlog"},
		{"bad level", "kern.bogus,stdlog"},
		{"empty level", "kern.,stdlog"},
		{"invert without level", "kern.!,stdlog"},
		{"trailing data after output", "kern,stdlog.x"},
		{"trailing comma", "kern,stdlog,"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tab.CompileRule(tc.expr)
			require.Error(t, err)
			assert.True(t, IsSyntax(err), "expected syntax error, got %v", err)
		})
	}
}

func TestCompileRuleUnknownOutput(t *testing.T) {
	tab := tableWithOutputs("stdlog")

	_, err := tab.CompileRule("kern.err,nosuchlog")
	require.Error(t, err)
	assert.True(t, IsReference(err))
	assert.Contains(t, err.Error(), "nosuchlog")
}

func TestCompileRuleNoForwardReference(t *testing.T) {
	// Outputs defined later in the file are not visible to rules compiled
	// earlier; the registry holds only what has been defined so far.
	tab := tableWithOutputs("stdlog")

	_, err := tab.CompileRule("kern.err,errlog")
	require.Error(t, err)
	assert.True(t, IsReference(err))
}
