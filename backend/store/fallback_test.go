package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackReadMissingKey(t *testing.T) {
	f, err := OpenFallback(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer f.Close()

	_, ok, err := f.Read("classes")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFallbackWriteReadOverwrite(t *testing.T) {
	f, err := OpenFallback(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, f.Write("classes", []byte(`["a"]`)))

	value, ok, err := f.Read("classes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["a"]`, string(value))

	require.NoError(t, f.Write("classes", []byte(`["a","b"]`)))
	value, ok, err = f.Read("classes")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["a","b"]`, string(value))
}

func TestFallbackDurableAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	f, err := OpenFallback(path)
	require.NoError(t, err)
	require.NoError(t, f.Write("allowedEmails", []byte(`["x@y.z"]`)))
	require.NoError(t, f.Close())

	reopened, err := OpenFallback(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, ok, err := reopened.Read("allowedEmails")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `["x@y.z"]`, string(value))
}
