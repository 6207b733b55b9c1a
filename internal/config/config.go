package config

// Config represents the complete gfxboard configuration.
// It can be loaded from gfxboard.yml with environment variable overrides.
type Config struct {
	Matrix string      `yaml:"matrix" mapstructure:"matrix"` // path to the feature matrix file
	Board  BoardConfig `yaml:"board" mapstructure:"board"`
}

// BoardConfig describes which APIs appear on the board and how the
// reference implementation is labeled. The ordered API list and the
// reference display name are configuration data, not logic: the same core
// serves differing rosters.
type BoardConfig struct {
	APIs      []string `yaml:"apis" mapstructure:"apis"`           // ordered include list; APIs not listed are excluded entirely
	Primary   []string `yaml:"primary" mapstructure:"primary"`     // API names ranked ahead of all others, in order
	Reference string   `yaml:"reference" mapstructure:"reference"` // display name for the reference implementation column
}

// Default returns a configuration with sensible defaults: the canonical
// Mesa-style roster.
func Default() *Config {
	return &Config{
		Matrix: "matrix.yml",
		Board: BoardConfig{
			APIs: []string{
				"Vulkan",
				"OpenGL",
				"OpenGL ES",
			},
			Primary: []string{
				"Vulkan",
				"OpenGL",
			},
			Reference: "mesa",
		},
	}
}
