package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
	if cfg.Frames.Root != "world" {
		t.Errorf("expected root 'world', got %s", cfg.Frames.Root)
	}
	if cfg.Frames.File != "" {
		t.Errorf("expected empty frames file, got %s", cfg.Frames.File)
	}
	if cfg.Output.Precision != 9 {
		t.Errorf("expected precision 9, got %d", cfg.Output.Precision)
	}
	if cfg.Tolerance.Equal != 1e-6 {
		t.Errorf("expected tolerance 1e-6, got %g", cfg.Tolerance.Equal)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "isotool.yaml")

	yamlContent := `
logging:
  level: "debug"
  log_file: "isotool.log"

frames:
  file: "robot.yaml"
  root: "map"

output:
  precision: 6

tolerance:
  equal: 1e-9
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "isotool.log" {
		t.Errorf("expected log file 'isotool.log', got %s", cfg.Logging.LogFile)
	}
	if cfg.Frames.File != "robot.yaml" {
		t.Errorf("expected frames file 'robot.yaml', got %s", cfg.Frames.File)
	}
	if cfg.Frames.Root != "map" {
		t.Errorf("expected root 'map', got %s", cfg.Frames.Root)
	}
	if cfg.Output.Precision != 6 {
		t.Errorf("expected precision 6, got %d", cfg.Output.Precision)
	}
	if cfg.Tolerance.Equal != 1e-9 {
		t.Errorf("expected tolerance 1e-9, got %g", cfg.Tolerance.Equal)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
output:
  precision: not a number
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/isotool.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"precision zero", func(c *Config) { c.Output.Precision = 0 }, false},
		{"precision too high", func(c *Config) { c.Output.Precision = 18 }, false},
		{"negative tolerance", func(c *Config) { c.Tolerance.Equal = -1 }, false},
		{"bad level", func(c *Config) { c.Logging.Level = "verbose" }, false},
		{"warn level", func(c *Config) { c.Logging.Level = "warn" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestFindConfigFile(t *testing.T) {
	origDir, _ := os.Getwd()
	defer os.Chdir(origDir)

	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tmpDir, "home"))
	os.Chdir(tmpDir)

	if path := findConfigFile(); path != "" {
		t.Errorf("expected empty path when no config exists, got %s", path)
	}

	configPath := filepath.Join(tmpDir, FileName)
	if err := os.WriteFile(configPath, []byte("output:\n  precision: 4\n"), 0644); err != nil {
		t.Fatalf("failed to create test config: %v", err)
	}

	if path := findConfigFile(); path == "" {
		t.Error("expected to find isotool.yaml in current directory")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name:  "debug flag",
			setup: func() { *flagDebug = true },
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() { *flagDebug = false },
		},
		{
			name:  "frames flag",
			setup: func() { *flagFrames = "robot.yaml" },
			verify: func(cfg *Config) {
				if cfg.Frames.File != "robot.yaml" {
					t.Errorf("expected frames file robot.yaml, got %s", cfg.Frames.File)
				}
			},
			teardown: func() { *flagFrames = "" },
		},
		{
			name:  "root flag",
			setup: func() { *flagRoot = "odom" },
			verify: func(cfg *Config) {
				if cfg.Frames.Root != "odom" {
					t.Errorf("expected root odom, got %s", cfg.Frames.Root)
				}
			},
			teardown: func() { *flagRoot = "" },
		},
		{
			name:  "precision flag",
			setup: func() { *flagPrecision = 4 },
			verify: func(cfg *Config) {
				if cfg.Output.Precision != 4 {
					t.Errorf("expected precision 4, got %d", cfg.Output.Precision)
				}
			},
			teardown: func() { *flagPrecision = 0 },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			applyFlags(cfg)

			tt.verify(cfg)
		})
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "isotool.yaml")

	yamlContent := `
frames:
  file: "from-file.yaml"
  root: "map"
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0644))

	*flagConfig = configPath
	*flagFrames = "from-flag.yaml"
	defer func() {
		*flagConfig = ""
		*flagFrames = ""
	}()

	cfg, err := Load()
	require.NoError(t, err)

	// File from flag, root from file.
	assert.Equal(t, "from-flag.yaml", cfg.Frames.File)
	assert.Equal(t, "map", cfg.Frames.Root)
}

func TestLoadRejectsInvalid(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "isotool.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("output:\n  precision: 40\n"), 0644))

	*flagConfig = configPath
	defer func() { *flagConfig = "" }()

	_, err := Load()
	assert.Error(t, err)
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "isotool.yaml")

	cfg := Default()
	cfg.Frames.File = "robot.yaml"
	cfg.Tolerance.Equal = 1e-8
	require.NoError(t, cfg.SaveTo(path))

	loaded := Default()
	require.NoError(t, loadFromFile(loaded, path))
	assert.Equal(t, cfg, loaded)
}
