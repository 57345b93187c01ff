// Package config loads and saves the dev-sweep configuration file and
// supplies the rule table used by the scanner.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/lakshaymaurya-felt/devsweep/internal/core"
	"github.com/lakshaymaurya-felt/devsweep/internal/project"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "DEVSWEEP_CONFIG"

// Config is the on-disk configuration.
type Config struct {
	// Roots are scanned when no path is given on the command line.
	Roots []string `yaml:"roots" json:"roots"`

	// MaxDepth bounds the walk; negative means unbounded.
	MaxDepth int `yaml:"max_depth" json:"max_depth"`

	// Ignore lists directory name patterns the walker never enters.
	Ignore []string `yaml:"ignore" json:"ignore"`

	// Workers bounds parallel sizing and cleaning. Zero selects NumCPU.
	Workers int `yaml:"workers" json:"workers"`

	// LogFile overrides the log file location.
	LogFile string `yaml:"log_file,omitempty" json:"log_file,omitempty"`

	// DisabledKinds removes built-in rules by kind.
	DisabledKinds []string `yaml:"disabled_kinds,omitempty" json:"disabled_kinds,omitempty"`

	// CustomRules are evaluated before the built-in rules.
	CustomRules []project.Rule `yaml:"rules,omitempty" json:"rules,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Roots:    nil,
		MaxDepth: -1,
		Ignore:   DefaultIgnore(),
		Workers:  0,
	}
}

// Path returns the config file location: $DEVSWEEP_CONFIG, else
// <UserConfigDir>/dev-sweep/config.yaml.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return core.ExpandHome(p)
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "dev-sweep", "config.yaml")
}

// Load reads the config at path. A missing file yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Validate checks every custom rule.
func (c *Config) Validate() error {
	for _, r := range c.CustomRules {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Rules returns the effective rule table: custom rules first, then the
// built-ins minus any disabled kinds.
func (c *Config) Rules() []project.Rule {
	rules := append([]project.Rule(nil), c.CustomRules...)
	for _, r := range DefaultRules() {
		if slices.Contains(c.DisabledKinds, r.Kind) {
			continue
		}
		rules = append(rules, r)
	}
	return rules
}

// WorkerCount resolves Workers, defaulting to the number of CPUs.
func (c *Config) WorkerCount() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.NumCPU()
}

// ScanRoots returns the configured roots with "~" expanded.
func (c *Config) ScanRoots() []string {
	roots := make([]string, 0, len(c.Roots))
	for _, r := range c.Roots {
		roots = append(roots, core.ExpandHome(r))
	}
	return roots
}
