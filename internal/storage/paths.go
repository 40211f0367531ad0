package storage

import (
	"os"
	"path/filepath"
)

const appDir = ".expandable-demo"

// DefaultStoragePath returns the default preference location, a dot
// directory in the user's home.
func DefaultStoragePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDir), nil
}
