package internal

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryNewestFirst(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "history")
	now := time.Now()

	require.NoError(t, SaveRunResult(&RunResult{PlaylistID: "PLold", Title: "old", CreatedAt: now.Add(-time.Hour)}, dir))
	require.NoError(t, SaveRunResult(&RunResult{PlaylistID: "PLnew", Title: "new", CreatedAt: now}, dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	runs, err := LoadHistory(dir)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "PLnew", runs[0].PlaylistID)
	assert.Equal(t, "PLold", runs[1].PlaylistID)
}

func TestLoadHistoryMissingDir(t *testing.T) {
	runs, err := LoadHistory(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestBuildReport(t *testing.T) {
	report, err := BuildReport(&RunResult{
		PostID:     "123",
		PlaylistID: "PLtest",
		Title:      "My Picks",
		VideoIDs:   []string{"vid111", "vid222"},
		Inserted:   []string{"vid222"},
		Failed:     []string{"vid111"},
	})
	require.NoError(t, err)

	assert.Contains(t, report, "# My Picks")
	assert.Contains(t, report, "https://www.youtube.com/playlist?list=PLtest")
	assert.Contains(t, report, "1 of 2 videos inserted")
	assert.Contains(t, report, "[vid222](https://www.youtube.com/watch?v=vid222)")
	assert.Contains(t, report, "- `vid111`")
}

func TestDescribeError(t *testing.T) {
	assert.Equal(t, "401 error: Invalid Request. Unable to access Twitter API.",
		DescribeError(&RequestError{StatusCode: 401, Message: msgTwitterRequest}))
	assert.Equal(t, "Error: Could not find any YouTube links in replies.",
		DescribeError(ErrNoRecognizedLinks))
	assert.Equal(t, "Unknown error: boom", DescribeError(errors.New("boom")))
}
