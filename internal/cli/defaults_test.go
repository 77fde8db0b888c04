package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/yaml.v3"
)

func TestDefaultsText(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDefaultsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "defaults_table", buf.Bytes())
}

func TestDefaultsYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "yaml"}
	cmd := NewDefaultsCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp struct {
		Status string `yaml:"status"`
		Data   struct {
			Outputs []struct {
				Name string `yaml:"name"`
				Path string `yaml:"path"`
			} `yaml:"outputs"`
		} `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Outputs, 1)
	assert.Equal(t, "stdlog", resp.Data.Outputs[0].Name)
	assert.Equal(t, "/var/log/messages", resp.Data.Outputs[0].Path)
}

func TestDefaultsRejectsArgs(t *testing.T) {
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewDefaultsCommand(rootOpts)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	err := cmd.Execute()
	assert.Error(t, err)
}
