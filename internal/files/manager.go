// Package files stages the output directory: cleaning it between builds,
// copying the static assets tree into it, and locating player portraits by
// slug. It owns all output filesystem manipulation so the computation and
// rendering layers stay pure.
package files

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"seasonsite/internal/config"
)

// imageExtensions lists the portrait formats probed for each player, in
// preference order.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".webp"}

// Manager provides output staging operations.
type Manager struct {
	paths *config.Paths
}

// NewManager creates a file manager over the resolved path set.
func NewManager(paths *config.Paths) *Manager {
	return &Manager{paths: paths}
}

// CleanOutput removes the previous build output entirely and recreates an
// empty output directory.
func (m *Manager) CleanOutput() error {
	slog.Info("cleaning output directory", slog.String("dir", m.paths.OutputDir))

	if err := os.RemoveAll(m.paths.OutputDir); err != nil {
		return fmt.Errorf("remove output directory: %w", err)
	}
	if err := os.MkdirAll(m.paths.OutputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	return nil
}

// CopyAssets copies the static assets tree into the output directory. A
// missing assets directory is not an error; the site simply ships without
// static files.
func (m *Manager) CopyAssets() error {
	info, err := os.Stat(m.paths.AssetsDir)
	if os.IsNotExist(err) {
		slog.Warn("assets directory not found, skipping copy",
			slog.String("dir", m.paths.AssetsDir))
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat assets directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("assets path is not a directory: %s", m.paths.AssetsDir)
	}

	dst := m.paths.OutputAssetsDir()
	copied := 0

	err = filepath.Walk(m.paths.AssetsDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(m.paths.AssetsDir, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if info.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		if err := copyFile(path, target); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return fmt.Errorf("copy assets: %w", err)
	}

	slog.Info("assets copied", slog.String("dst", dst), slog.Int("files", copied))
	return nil
}

// FindPlayerImage probes the assets tree for a portrait matching the player
// slug and returns its site-relative path. The second return value is false
// when no portrait exists in any known format.
func (m *Manager) FindPlayerImage(playerSlug string) (string, bool) {
	for _, ext := range imageExtensions {
		candidate := m.paths.PlayerImagePath(playerSlug + ext)
		if _, err := os.Stat(candidate); err == nil {
			rel := filepath.ToSlash(filepath.Join(
				filepath.Base(m.paths.AssetsDir), config.PlayerImagesDir, playerSlug+ext))
			return rel, true
		}
	}
	return "", false
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("create destination directory: %w", err)
	}

	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source file: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create destination file: %w", err)
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		return fmt.Errorf("copy file contents: %w", err)
	}
	return nil
}
