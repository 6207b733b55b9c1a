package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Loader provides configuration loading capabilities.
type Loader interface {
	// Load loads configuration from file and environment variables.
	// Priority: defaults → config file → environment variables (env wins)
	Load() (*Config, error)
}

type loader struct {
	rootDir string
}

// NewLoader creates a new configuration loader for the given root directory.
func NewLoader(rootDir string) Loader {
	return &loader{
		rootDir: rootDir,
	}
}

// Load loads configuration with the following priority (highest to lowest):
// 1. Environment variables (GFXBOARD_*)
// 2. Config file (gfxboard.yml or gfxboard.yaml in the root directory)
// 3. Default values
func (l *loader) Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("gfxboard")
	v.SetConfigType("yaml")
	v.AddConfigPath(l.rootDir)

	// Enable environment variable overrides
	v.SetEnvPrefix("GFXBOARD")
	v.AutomaticEnv()
	// Replace . with _ in env var names (e.g., GFXBOARD_BOARD_REFERENCE)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.BindEnv("matrix")
	v.BindEnv("board.apis")
	v.BindEnv("board.primary")
	v.BindEnv("board.reference")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// Config file not found is acceptable - we'll use defaults + env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setDefaults seeds viper with the Default() values so a partial config
// file only overrides what it mentions.
func setDefaults(v *viper.Viper) {
	def := Default()
	v.SetDefault("matrix", def.Matrix)
	v.SetDefault("board.apis", def.Board.APIs)
	v.SetDefault("board.primary", def.Board.Primary)
	v.SetDefault("board.reference", def.Board.Reference)
}

// LoadFromDir is a convenience wrapper for NewLoader(dir).Load().
func LoadFromDir(dir string) (*Config, error) {
	return NewLoader(dir).Load()
}
