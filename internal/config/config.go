package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-tex2mml/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
)

// Compiler backend names accepted in config files and on the CLI.
const (
	CompilerMathJax = "mathjax"
	CompilerLaTeXML = "latexml"
)

// Display mode names. "auto" classifies each expression by its content.
const (
	DisplayAuto   = "auto"
	DisplayBlock  = "block"
	DisplayInline = "inline"
)

// Bounds for numeric settings.
const (
	MaxTimeout = 10 * time.Minute
	MaxWorkers = 8
)

// Config holds all configuration for batch conversion.
type Config struct {
	Compiler string        `yaml:"compiler"` // "mathjax" or "latexml" (default: "mathjax")
	Display  string        `yaml:"display"`  // "auto", "block", "inline" (default: "auto")
	Output   OutputConfig  `yaml:"output"`
	Timeout  time.Duration `yaml:"timeout"` // Per-expression compile timeout (default: 30s)
	Workers  int           `yaml:"workers"` // Pool size, 0 = derive from CPU count
	Verbose  bool          `yaml:"verbose"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir       string `yaml:"dir"`       // Output directory (empty = same as source)
	Extension string `yaml:"extension"` // Output file extension (default: ".mml")
}

// Validate checks enum values and numeric bounds.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	if c.Compiler != "" {
		switch c.Compiler {
		case CompilerMathJax, CompilerLaTeXML:
		default:
			return fmt.Errorf("compiler: invalid value %q (must be %s or %s)",
				c.Compiler, CompilerMathJax, CompilerLaTeXML)
		}
	}

	if c.Display != "" {
		switch c.Display {
		case DisplayAuto, DisplayBlock, DisplayInline:
		default:
			return fmt.Errorf("display: invalid value %q (must be %s, %s, or %s)",
				c.Display, DisplayAuto, DisplayBlock, DisplayInline)
		}
	}

	if c.Timeout < 0 {
		return fmt.Errorf("timeout: must not be negative, got %s", c.Timeout)
	}
	if c.Timeout > MaxTimeout {
		return fmt.Errorf("timeout: must not exceed %s, got %s", MaxTimeout, c.Timeout)
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("workers: must be between 0 and %d, got %d", MaxWorkers, c.Workers)
	}

	if ext := c.Output.Extension; ext != "" && !strings.HasPrefix(ext, ".") {
		return fmt.Errorf("output.extension: must start with a dot, got %q", ext)
	}

	return nil
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Compiler: CompilerMathJax,
		Display:  DisplayAuto,
		Output:   OutputConfig{Extension: ".mml"},
		Timeout:  30 * time.Second,
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-tex2mml/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-tex2mml", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
