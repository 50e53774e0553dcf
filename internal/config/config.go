package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config is the complete configuration for one site build. Everything that
// used to be a process-wide constant in earlier iterations (input file names,
// goalkeeper list, output directory) lives here so multiple seasons or test
// fixtures can run the same pipeline with different settings.
type Config struct {
	Inputs  InputsConfig  `yaml:"inputs" envconfig:"INPUTS"`
	Output  OutputConfig  `yaml:"output" envconfig:"OUTPUT"`
	Team    TeamConfig    `yaml:"team" envconfig:"TEAM"`
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

// InputsConfig locates the two tabular inputs.
type InputsConfig struct {
	DataDir     string `yaml:"data_dir" envconfig:"DATA_DIR" validate:"required"`
	PlayersFile string `yaml:"players_file" envconfig:"PLAYERS_FILE" validate:"required"`
	MatchesFile string `yaml:"matches_file" envconfig:"MATCHES_FILE" validate:"required"`
}

// OutputConfig locates the generated site and the static assets copied into it.
type OutputConfig struct {
	Dir       string `yaml:"dir" envconfig:"DIR" validate:"required"`
	AssetsDir string `yaml:"assets_dir" envconfig:"ASSETS_DIR" validate:"required"`
}

// TeamConfig carries team-level settings that cannot be derived from the data.
type TeamConfig struct {
	Name        string   `yaml:"name" envconfig:"NAME"`
	Goalkeepers []string `yaml:"goalkeepers" envconfig:"GOALKEEPERS"`
}

// LoggingConfig controls the slog setup.
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL" validate:"oneof=debug info warn error"`
	Format   string `yaml:"format" envconfig:"FORMAT" validate:"oneof=json text"`
	Output   string `yaml:"output" envconfig:"OUTPUT" validate:"oneof=stdout file both"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Inputs: InputsConfig{
			DataDir:     DefaultDataDir,
			PlayersFile: DefaultPlayersFile,
			MatchesFile: DefaultMatchesFile,
		},
		Output: OutputConfig{
			Dir:       DefaultOutputDir,
			AssetsDir: DefaultAssetsDir,
		},
		Team: TeamConfig{
			Name:        "La Masia 25/26",
			Goalkeepers: DefaultGoalkeepers,
		},
		Logging: LoggingConfig{
			Level:    "info",
			Format:   "text",
			Output:   "stdout",
			FilePath: "logs/build.log",
		},
	}
}

// Load builds the effective configuration: defaults, then the YAML file at
// configFile if it exists, then SEASON_* environment variables on top.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile != "" {
		if _, err := os.Stat(configFile); err == nil {
			data, err := os.ReadFile(configFile)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}
		}
	}

	if err := envconfig.Process("SEASON", &cfg); err != nil {
		return nil, fmt.Errorf("load config from env: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	return validator.New().Struct(c)
}

// IsGoalkeeper reports whether the named player is in the configured
// goalkeeper set.
func (c *Config) IsGoalkeeper(name string) bool {
	for _, gk := range c.Team.Goalkeepers {
		if gk == name {
			return true
		}
	}
	return false
}
