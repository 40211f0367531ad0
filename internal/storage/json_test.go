package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KQAR/expandable/internal/logging"
)

func TestJSONRepository_LoadWithoutFileReturnsDefaults(t *testing.T) {
	repo := NewJSONRepository(t.TempDir(), logging.Nop())

	prefs, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), prefs)
}

func TestJSONRepository_SaveThenLoadRoundTrips(t *testing.T) {
	repo := NewJSONRepository(t.TempDir(), logging.Nop())

	want := Preferences{
		ExpandAnimation:   "slide",
		CollapseAnimation: "none",
		DefaultExpandable: false,
	}
	require.NoError(t, repo.Save(want))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestJSONRepository_SaveCreatesBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "nested", "dir")
	repo := NewJSONRepository(base, logging.Nop())

	require.NoError(t, repo.Save(DefaultPreferences()))

	_, err := os.Stat(filepath.Join(base, preferencesFile))
	assert.NoError(t, err)
}

func TestJSONRepository_CorruptFileFallsBackToDefaults(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(base, preferencesFile), []byte("{broken"), 0644))
	repo := NewJSONRepository(base, logging.Nop())

	prefs, err := repo.Load()
	require.NoError(t, err, "a corrupt file must not brick the app")
	assert.Equal(t, DefaultPreferences(), prefs)
}

func TestJSONRepository_SaveLeavesNoTempFiles(t *testing.T) {
	base := t.TempDir()
	repo := NewJSONRepository(base, logging.Nop())
	require.NoError(t, repo.Save(DefaultPreferences()))

	entries, err := os.ReadDir(base)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, preferencesFile, entries[0].Name())
}

func TestMemoryRepository_RoundTrip(t *testing.T) {
	repo := NewMemoryRepository()

	prefs, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), prefs)

	prefs.ExpandAnimation = "slide"
	require.NoError(t, repo.Save(prefs))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, "slide", got.ExpandAnimation)
}
