// Package prefs persists user preferences between runs.
// The theme selection is the only state the application keeps across
// restarts; everything else is re-seeded at startup.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"limra/internal/domain/settings"
)

type prefsFile struct {
	Theme settings.Theme `json:"theme"`
}

// FileStore stores preferences in a small JSON file.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore at the given path. The file is
// created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// LoadTheme reads the stored theme. A missing file or an unknown
// theme value is not an error; ok is false.
func (f *FileStore) LoadTheme() (settings.Theme, bool, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read preferences: %w", err)
	}

	var stored prefsFile
	if err := json.Unmarshal(data, &stored); err != nil {
		return "", false, fmt.Errorf("parse preferences: %w", err)
	}

	if !settings.IsValidTheme(stored.Theme) {
		return "", false, nil
	}
	return stored.Theme, true, nil
}

// SaveTheme writes the theme, creating the directory if needed.
func (f *FileStore) SaveTheme(theme settings.Theme) error {
	data, err := json.Marshal(prefsFile{Theme: theme})
	if err != nil {
		return fmt.Errorf("encode preferences: %w", err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create preferences dir: %w", err)
		}
	}

	if err := os.WriteFile(f.path, data, 0o644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}
	return nil
}
