package stats

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_FoldsCountsByStatus(t *testing.T) {
	start := time.Unix(1700000000, 0)
	fileStats := []FileStat{
		{Path: "a.txt", CharsProcessed: 100, SentencesDetected: 4, Status: StatusSuccess},
		{Path: "b.txt", CharsProcessed: 50, SentencesDetected: 2, Status: StatusSuccess},
		{Path: "c.txt", Status: StatusSkipped},
		{Path: "d.txt", Status: StatusFailed, Error: "boom"},
	}

	rs, err := Build(start, 2*time.Second, fileStats)
	require.NoError(t, err)

	assert.NotEmpty(t, rs.RunID)
	assert.Equal(t, "1700000000", rs.RunStart)
	assert.Equal(t, 2, rs.FilesProcessed)
	assert.Equal(t, 1, rs.FilesSkipped)
	assert.Equal(t, 1, rs.FilesFailed)
	assert.Equal(t, 150, rs.TotalCharsProcessed)
	assert.Equal(t, 6, rs.TotalSentencesDetected)
	assert.Equal(t, 75.0, rs.OverallCharsPerSec)
}

func TestBuild_GeneratesDistinctRunIDs(t *testing.T) {
	a, err := Build(time.Unix(0, 0), time.Second, nil)
	require.NoError(t, err)
	b, err := Build(time.Unix(0, 0), time.Second, nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestRunStats_WriteJSONRoundTrips(t *testing.T) {
	rs, err := Build(time.Unix(1700000000, 0), time.Second, []FileStat{
		{Path: "a.txt", CharsProcessed: 10, SentencesDetected: 1, Status: StatusSuccess},
	})
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "run-stats.json")
	require.NoError(t, rs.WriteJSON(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var reloaded RunStats
	require.NoError(t, json.Unmarshal(data, &reloaded))
	assert.Equal(t, rs.RunID, reloaded.RunID)
	assert.Equal(t, rs.FilesProcessed, reloaded.FilesProcessed)
}
