package sink

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/textseams/seams"
)

func TestSidecarSink_WritesTabSeparatedLines(t *testing.T) {
	det, err := seams.BuildDetector()
	require.NoError(t, err)

	sentences := det.Scan([]byte("Dr. Smith examined the patient. The results were clear."))
	require.Len(t, sentences, 2)

	dir := t.TempDir()
	srcPath := filepath.Join(dir, "book.txt")
	require.NoError(t, os.WriteFile(srcPath, nil, 0o644))

	s := NewSidecarSink(logrus.New())
	require.NoError(t, s.WriteFile(context.Background(), FileRecord{FileID: 1, Path: srcPath}, sentences))

	data, err := os.ReadFile(srcPath + SidecarSuffix)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	require.Len(t, lines, 2)

	fields := strings.Split(lines[0], "\t")
	require.Len(t, fields, 3)
	assert.Equal(t, "0", fields[0])
	assert.Equal(t, "Dr. Smith examined the patient.", fields[1])
	assert.True(t, strings.HasPrefix(fields[2], "(1,1,1,"))

	assert.True(t, strings.HasSuffix(string(data), "\n"), "sidecar must end with a trailing newline")
}

func TestSidecarSink_EmptySentenceListStillWritesFile(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "empty.txt")

	s := NewSidecarSink(logrus.New())
	require.NoError(t, s.WriteFile(context.Background(), FileRecord{FileID: 1, Path: srcPath}, nil))

	data, err := os.ReadFile(srcPath + SidecarSuffix)
	require.NoError(t, err)
	assert.Empty(t, data)
}
