package corpus

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, rel string, data []byte) {
	t.Helper()
	full := filepath.Join(dir, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
	require.NoError(t, os.WriteFile(full, data, 0o644))
}

func drain(ch <-chan Result) []Result {
	var out []Result
	for r := range ch {
		out = append(out, r)
	}
	return out
}

func TestWalk_MatchesIncludeGlobsAndSkipsOthers(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "book1.txt", []byte("Once upon a time."))
	writeFile(t, dir, "sub/book2.txt", []byte("The end."))
	writeFile(t, dir, "notes.md", []byte("ignore me"))

	results := drain(Walk(context.Background(), dir, []string{"**/*.txt"}, nil, logrus.New()))

	require.Len(t, results, 2)
	var paths []string
	for _, r := range results {
		require.NoError(t, r.Err)
		paths = append(paths, r.File.RelPath)
	}
	sort.Strings(paths)
	assert.Equal(t, []string{"book1.txt", filepath.Join("sub", "book2.txt")}, paths)
}

func TestWalk_ExcludeGlobWins(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.txt", []byte("keep this"))
	writeFile(t, dir, "draft/skip.txt", []byte("skip this"))

	results := drain(Walk(context.Background(), dir, []string{"**/*.txt"}, []string{"draft/**"}, logrus.New()))

	require.Len(t, results, 1)
	assert.Equal(t, "keep.txt", results[0].File.RelPath)
}

func TestWalk_RejectsInvalidUTF8(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.txt", []byte{0xff, 0xfe, 0x00})

	results := drain(Walk(context.Background(), dir, []string{"**/*.txt"}, nil, logrus.New()))

	require.Len(t, results, 1)
	assert.Error(t, results[0].Err)
}

func TestWalk_DefaultIncludeIsTxt(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.txt", []byte("hello"))
	writeFile(t, dir, "a.csv", []byte("1,2,3"))

	results := drain(Walk(context.Background(), dir, nil, nil, logrus.New()))

	require.Len(t, results, 1)
	assert.Equal(t, "a.txt", results[0].File.RelPath)
}
