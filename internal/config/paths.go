package config

import (
	"path/filepath"
)

// Paths resolves every location the pipeline reads or writes. It is derived
// once from the effective Config and passed to the components that touch the
// filesystem; nothing else builds paths on its own.
type Paths struct {
	DataDir   string
	OutputDir string
	AssetsDir string
}

// NewPaths derives the path set from a configuration, anchored at baseDir
// (usually the working directory, a temp dir in tests).
func NewPaths(baseDir string, cfg *Config) *Paths {
	return &Paths{
		DataDir:   join(baseDir, cfg.Inputs.DataDir),
		OutputDir: join(baseDir, cfg.Output.Dir),
		AssetsDir: join(baseDir, cfg.Output.AssetsDir),
	}
}

// PlayersPath returns the roster input file location.
func (p *Paths) PlayersPath(filename string) string {
	return filepath.Join(p.DataDir, filename)
}

// MatchesPath returns the match log input file location.
func (p *Paths) MatchesPath(filename string) string {
	return filepath.Join(p.DataDir, filename)
}

// OutputPath returns a location inside the generated site.
func (p *Paths) OutputPath(name string) string {
	return filepath.Join(p.OutputDir, name)
}

// ExportPath returns a location inside the output data/ subtree that holds
// the CSV and JSON exports.
func (p *Paths) ExportPath(name string) string {
	return filepath.Join(p.OutputDir, ExportsDir, name)
}

// OutputAssetsDir is where the assets tree is copied inside the output.
func (p *Paths) OutputAssetsDir() string {
	return filepath.Join(p.OutputDir, filepath.Base(p.AssetsDir))
}

// PlayerImagePath returns the on-disk location of a player portrait candidate.
func (p *Paths) PlayerImagePath(filename string) string {
	return filepath.Join(p.AssetsDir, PlayerImagesDir, filename)
}

func join(base, dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(base, dir)
}
