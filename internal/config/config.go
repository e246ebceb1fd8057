package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/indaco/tagfind/internal/core"
	"github.com/pelletier/go-toml/v2"
)

// EnvConfigPath points at an explicit configuration file.
const EnvConfigPath = "TAGFIND_CONFIG"

// Default configuration file names, in lookup order.
const (
	DefaultYAMLFile = ".tagfind.yaml"
	DefaultTOMLFile = ".tagfind.toml"
)

// Config is the main configuration structure for tagfind.
type Config struct {
	Manifest        string   `yaml:"manifest,omitempty" toml:"manifest,omitempty"`
	ComponentsDir   string   `yaml:"components-dir,omitempty" toml:"components-dir,omitempty"`
	ExcludeDirs     []string `yaml:"exclude-dirs,omitempty" toml:"exclude-dirs,omitempty"`
	ExcludePackages []string `yaml:"exclude-packages,omitempty" toml:"exclude-packages,omitempty"`
	LogLevel        string   `yaml:"log-level,omitempty" toml:"log-level,omitempty"`
	Theme           string   `yaml:"theme,omitempty" toml:"theme,omitempty"`

	// Source is the file this configuration was read from; empty for defaults.
	Source string `yaml:"-" toml:"-"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Manifest:      core.DefaultManifestName,
		ComponentsDir: core.DefaultComponentsDir,
	}
}

// LoadConfigFn is swapped in tests.
var LoadConfigFn = loadConfig

// loadConfig resolves the configuration: TAGFIND_CONFIG first, then
// .tagfind.yaml, then .tagfind.toml in the working directory, then defaults.
func loadConfig() (*Config, error) {
	if envPath := os.Getenv(EnvConfigPath); envPath != "" {
		cleanPath := filepath.Clean(envPath)
		if strings.Contains(cleanPath, "..") {
			return nil, fmt.Errorf("invalid %s: path traversal not allowed, use absolute path instead", EnvConfigPath)
		}
		return LoadFrom(cleanPath)
	}

	for _, name := range []string{DefaultYAMLFile, DefaultTOMLFile} {
		if _, err := os.Stat(name); err == nil {
			return LoadFrom(name)
		}
	}

	return Default(), nil
}

// Exists reports whether a default config file is present in the working directory.
func Exists() bool {
	for _, name := range []string{DefaultYAMLFile, DefaultTOMLFile} {
		if _, err := os.Stat(name); err == nil {
			return true
		}
	}
	return false
}

// LoadFrom reads the configuration at path. The extension selects the decoder.
// Unknown keys are rejected.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		decoder := yaml.NewDecoder(bytes.NewReader(data), yaml.Strict())
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
		}
	case ".toml":
		decoder := toml.NewDecoder(bytes.NewReader(data))
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q (use .yaml, .yml or .toml)", path)
	}

	cfg.applyDefaults()
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Manifest == "" {
		c.Manifest = core.DefaultManifestName
	}
	if c.ComponentsDir == "" {
		c.ComponentsDir = core.DefaultComponentsDir
	}
}

// BaseDir is the directory relative exclude-dirs entries are resolved against:
// the config file's directory, or the working directory for defaults.
func (c *Config) BaseDir() (string, error) {
	if c.Source != "" {
		return filepath.Abs(filepath.Dir(c.Source))
	}
	return os.Getwd()
}

// ResolvedExcludeDirs returns ExcludeDirs made absolute against base.
func (c *Config) ResolvedExcludeDirs(base string) []string {
	dirs := make([]string, 0, len(c.ExcludeDirs))
	for _, d := range c.ExcludeDirs {
		if !filepath.IsAbs(d) {
			d = filepath.Join(base, d)
		}
		dirs = append(dirs, filepath.Clean(d))
	}
	return dirs
}

// ConfigFilePerm restricts config files to the owner.
const ConfigFilePerm = core.PermOwnerRW
