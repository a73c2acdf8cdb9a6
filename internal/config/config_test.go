package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Input: InputConfig{
			Path: "mapping.txt",
		},
		Output: OutputConfig{
			Dir:         "generated",
			BasePackage: "com.example.mappings",
			Strategy:    "plain",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func TestValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidateEmptyInputPath(t *testing.T) {
	cfg := validConfig()
	cfg.Input.Path = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input.path")
}

func TestValidateBadStrategy(t *testing.T) {
	cfg := validConfig()
	cfg.Output.Strategy = "inline"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.strategy")
}

func TestValidateBadBasePackage(t *testing.T) {
	cfg := validConfig()
	cfg.Output.BasePackage = "com.cla$$.mappings"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base_package")

	// Keyword segments are rejected rather than silently rewritten.
	cfg.Output.BasePackage = "com.int.mappings"
	assert.Error(t, cfg.Validate())
}

func TestValidateEmptyBasePackageAllowed(t *testing.T) {
	cfg := validConfig()
	cfg.Output.BasePackage = ""

	assert.NoError(t, cfg.Validate())
}

func TestValidateBadLogging(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "verbose"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestValidateAggregatesViolations(t *testing.T) {
	cfg := validConfig()
	cfg.Input.Path = ""
	cfg.Output.Dir = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input.path")
	assert.Contains(t, err.Error(), "output.dir")
}

func TestDefault(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "mapping.txt", cfg.Input.Path)
	assert.Equal(t, "generated", cfg.Output.Dir)
	assert.Equal(t, "mappings", cfg.Output.BasePackage)
	assert.Equal(t, "plain", cfg.Output.Strategy)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
input:
  path: server.txt
  url: https://example.com/mapping.txt
output:
  dir: out
  base_package: com.example
  strategy: static-init
logging:
  level: debug
  format: console
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "server.txt", cfg.Input.Path)
	assert.Equal(t, "https://example.com/mapping.txt", cfg.Input.URL)
	assert.Equal(t, "out", cfg.Output.Dir)
	assert.Equal(t, "com.example", cfg.Output.BasePackage)
	assert.Equal(t, "static-init", cfg.Output.Strategy)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadInvalidConfigFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  strategy: bogus\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output.strategy")
}
