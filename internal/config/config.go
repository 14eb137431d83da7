// Package config handles isotool configuration loading and management.
package config

// Config holds all isotool settings.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Frames    FramesConfig    `yaml:"frames"`
	Output    OutputConfig    `yaml:"output"`
	Tolerance ToleranceConfig `yaml:"tolerance"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// FramesConfig points at the frame tree description.
type FramesConfig struct {
	File string `yaml:"file"` // YAML frame tree
	Root string `yaml:"root"` // Root frame name when the file does not set one
}

// OutputConfig controls how numbers are printed.
type OutputConfig struct {
	Precision int `yaml:"precision"` // Significant digits
}

// ToleranceConfig holds comparison tolerances.
type ToleranceConfig struct {
	Equal float64 `yaml:"equal"` // Absolute tolerance for round-trip checks
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Frames: FramesConfig{
			File: "",
			Root: "world",
		},
		Output: OutputConfig{
			Precision: 9,
		},
		Tolerance: ToleranceConfig{
			Equal: 1e-6,
		},
	}
}
