package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seasonsite/internal/config"
)

func setupManager(t *testing.T) (*Manager, *config.Paths) {
	t.Helper()
	base := t.TempDir()
	paths := &config.Paths{
		DataDir:   filepath.Join(base, "data"),
		OutputDir: filepath.Join(base, "docs"),
		AssetsDir: filepath.Join(base, "assets"),
	}
	return NewManager(paths), paths
}

func TestCleanOutput(t *testing.T) {
	m, paths := setupManager(t)

	// Simulate a stale previous build.
	stale := filepath.Join(paths.OutputDir, "old.html")
	require.NoError(t, os.MkdirAll(paths.OutputDir, 0755))
	require.NoError(t, os.WriteFile(stale, []byte("stale"), 0644))

	require.NoError(t, m.CleanOutput())

	_, err := os.Stat(stale)
	assert.True(t, os.IsNotExist(err), "previous output removed")
	info, err := os.Stat(paths.OutputDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestCopyAssets(t *testing.T) {
	t.Run("copies the tree into the output", func(t *testing.T) {
		m, paths := setupManager(t)
		require.NoError(t, os.MkdirAll(filepath.Join(paths.AssetsDir, "players"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(paths.AssetsDir, "style.css"), []byte("body{}"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(paths.AssetsDir, "players", "x.png"), []byte{1}, 0644))
		require.NoError(t, m.CleanOutput())

		require.NoError(t, m.CopyAssets())

		copied, err := os.ReadFile(filepath.Join(paths.OutputAssetsDir(), "style.css"))
		require.NoError(t, err)
		assert.Equal(t, "body{}", string(copied))
		_, err = os.Stat(filepath.Join(paths.OutputAssetsDir(), "players", "x.png"))
		assert.NoError(t, err)
	})

	t.Run("missing assets directory is not an error", func(t *testing.T) {
		m, _ := setupManager(t)
		require.NoError(t, m.CleanOutput())
		assert.NoError(t, m.CopyAssets())
	})
}

func TestFindPlayerImage(t *testing.T) {
	m, paths := setupManager(t)
	playersDir := filepath.Join(paths.AssetsDir, config.PlayerImagesDir)
	require.NoError(t, os.MkdirAll(playersDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(playersDir, "sanchez-laya-pau.jpg"), []byte{1}, 0644))

	t.Run("existing portrait", func(t *testing.T) {
		rel, ok := m.FindPlayerImage("sanchez-laya-pau")
		require.True(t, ok)
		assert.Equal(t, "assets/players/sanchez-laya-pau.jpg", rel)
	})

	t.Run("no portrait", func(t *testing.T) {
		_, ok := m.FindPlayerImage("nobody-here")
		assert.False(t, ok)
	})
}
