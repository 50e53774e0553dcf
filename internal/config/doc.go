// Package config holds the build configuration (inputs, output layout, team
// settings, logging) and the derived path set. Configuration merges three
// layers: built-in defaults, an optional YAML file, and SEASON_* environment
// variables.
package config
