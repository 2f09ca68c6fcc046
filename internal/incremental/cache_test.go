package incremental

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileIsEmptyCache(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	c, err := Load(path)
	require.NoError(t, err)
	assert.False(t, c.Skip("anything.txt"))
}

func TestCache_RecordThenSkip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	c, err := Load(path)
	require.NoError(t, err)

	assert.False(t, c.Skip("book.txt"))
	c.Record("book.txt", Entry{CompletedAt: "2026-01-01T00:00:00Z", Sentences: 42})
	assert.True(t, c.Skip("book.txt"))
}

func TestCache_SaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	c, err := Load(path)
	require.NoError(t, err)

	c.Record("book.txt", Entry{CompletedAt: "2026-01-01T00:00:00Z", Sentences: 42})
	require.NoError(t, c.Save())

	reloaded, err := Load(path)
	require.NoError(t, err)
	assert.True(t, reloaded.Skip("book.txt"))
}

func TestCache_SaveIsNoOpWhenUnmodified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")
	c, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, c.Save())
	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "cache file should not be written when nothing changed")
}
