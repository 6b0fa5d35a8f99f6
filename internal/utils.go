package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileExists checks if a file exists
func FileExists(filename string) bool {
	_, err := os.Stat(filename)
	return !os.IsNotExist(err)
}

// EnsureDirs creates directories if needed
func EnsureDirs(dirs ...string) error {
	for _, dir := range dirs {
		if !FileExists(dir) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
		}
	}
	return nil
}

// SaveRunResult stores a run in the history directory as <playlist id>.json
func SaveRunResult(result *RunResult, historyDir string) error {
	if err := EnsureDirs(historyDir); err != nil {
		return fmt.Errorf("creating history directory: %w", err)
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling run result: %w", err)
	}

	path := filepath.Join(historyDir, result.PlaylistID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("saving run result: %w", err)
	}

	return nil
}

// LoadHistory reads all stored runs, newest first.
// Unreadable entries are skipped with a warning.
func LoadHistory(historyDir string) ([]RunResult, error) {
	if !FileExists(historyDir) {
		return nil, nil
	}

	entries, err := os.ReadDir(historyDir)
	if err != nil {
		return nil, fmt.Errorf("reading history directory: %w", err)
	}

	var runs []RunResult
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		path := filepath.Join(historyDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to read %s: %v\n", path, err)
			continue
		}

		var run RunResult
		if err := json.Unmarshal(data, &run); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to parse %s: %v\n", path, err)
			continue
		}
		runs = append(runs, run)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].CreatedAt.After(runs[j].CreatedAt)
	})

	return runs, nil
}
