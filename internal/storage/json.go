package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const preferencesFile = "preferences.json"

// JSONRepository stores preferences as a JSON file under a base directory.
type JSONRepository struct {
	basePath string
	logger   *slog.Logger
}

// NewJSONRepository creates a repository rooted at basePath.
func NewJSONRepository(basePath string, logger *slog.Logger) *JSONRepository {
	return &JSONRepository{basePath: basePath, logger: logger}
}

// Load implements Repository. A missing file answers the defaults.
func (r *JSONRepository) Load() (Preferences, error) {
	data, err := os.ReadFile(r.preferencesPath())
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultPreferences(), nil
		}
		return DefaultPreferences(), fmt.Errorf("read preferences: %w", err)
	}

	var prefs Preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		// A corrupt file should not brick the app; fall back and let the
		// next save overwrite it.
		r.logger.Warn("preferences file corrupt, using defaults",
			slog.String("path", r.preferencesPath()),
			slog.Any("error", err),
		)
		return DefaultPreferences(), nil
	}
	return prefs, nil
}

// Save implements Repository with an atomic write.
func (r *JSONRepository) Save(prefs Preferences) error {
	if err := os.MkdirAll(r.basePath, 0755); err != nil {
		return fmt.Errorf("create storage directory: %w", err)
	}

	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	if err := atomicWriteFile(r.preferencesPath(), data, 0644); err != nil {
		return fmt.Errorf("write preferences: %w", err)
	}

	r.logger.Debug("preferences saved", slog.String("path", r.preferencesPath()))
	return nil
}

func (r *JSONRepository) preferencesPath() string {
	return filepath.Join(r.basePath, preferencesFile)
}

// atomicWriteFile writes to a temp file in the target directory and
// renames it into place, so readers never see a partial file.
func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return err
	}
	tmpPath := f.Name()

	ok := false
	defer func() {
		if !ok {
			os.Remove(tmpPath)
		}
	}()

	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return err
	}
	ok = true
	return nil
}
