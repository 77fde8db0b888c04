package keyfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConf = `
[OUTPUT=stdlog]
File=/var/log/messages
MaxSize=100K
Rotations=4

[CONTEXT=<global>]
Rule1=*.*,stdlog
Rule2=kern.err.klogd,stdlog
`

func TestParseGroupsInFileOrder(t *testing.T) {
	f, err := Parse([]byte(sampleConf))
	require.NoError(t, err)

	assert.Equal(t, []string{"OUTPUT=stdlog", "CONTEXT=<global>"}, f.Groups())
}

func TestGetString(t *testing.T) {
	f, err := Parse([]byte(sampleConf))
	require.NoError(t, err)

	v, ok := f.GetString("OUTPUT=stdlog", "File")
	require.True(t, ok)
	assert.Equal(t, "/var/log/messages", v)

	// Values keep '.' and ',' intact.
	v, ok = f.GetString("CONTEXT=<global>", "Rule2")
	require.True(t, ok)
	assert.Equal(t, "kern.err.klogd,stdlog", v)

	_, ok = f.GetString("OUTPUT=stdlog", "NoSuchKey")
	assert.False(t, ok)

	_, ok = f.GetString("NOSUCHGROUP", "File")
	assert.False(t, ok)
}

func TestGetInt(t *testing.T) {
	f, err := Parse([]byte(sampleConf))
	require.NoError(t, err)

	n, ok := f.GetInt("OUTPUT=stdlog", "Rotations")
	require.True(t, ok)
	assert.Equal(t, int64(4), n)

	// Suffixed sizes are not plain integers; callers parse those themselves.
	_, ok = f.GetInt("OUTPUT=stdlog", "MaxSize")
	assert.False(t, ok)

	_, ok = f.GetInt("OUTPUT=stdlog", "Missing")
	assert.False(t, ok)
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pmlog.conf")
	require.NoError(t, os.WriteFile(path, []byte(sampleConf), 0o644))

	f, err := Open(path)
	require.NoError(t, err)
	assert.Len(t, f.Groups(), 2)
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "absent.conf"))
	assert.Error(t, err)
}
