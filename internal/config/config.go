// Package config resolves the settings of a packaging run from defaults,
// an optional YAML file and the LOVE_FILE environment variable.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/dendrascience/lovepack/rules"
	"github.com/goccy/go-yaml"
)

// EnvOutput names the environment variable holding the archive destination.
const EnvOutput = "LOVE_FILE"

// ErrMissingOutput is returned by Validate when no archive destination is configured.
var ErrMissingOutput = errors.New("archive destination not set (use --output or " + EnvOutput + ")")

// ExcludeConfig lists the exclusion rules. A nil list means "use the default".
type ExcludeConfig struct {
	Dirs   []string `yaml:"dirs"`
	Paths  []string `yaml:"paths"`
	Globs  []string `yaml:"globs"`
	Ignore []string `yaml:"ignore,omitempty"`
}

// Config holds everything a packaging run needs.
type Config struct {
	Root    string        `yaml:"root"`
	Output  string        `yaml:"output"`
	Exclude ExcludeConfig `yaml:"exclude"`
}

// Default returns the built-in configuration: the current directory as root,
// no output and the default exclusion rules.
func Default() Config {
	return Config{
		Root: ".",
		Exclude: ExcludeConfig{
			Dirs:  slices.Clone(rules.DefaultDirs),
			Paths: slices.Clone(rules.DefaultPaths),
			Globs: slices.Clone(rules.DefaultGlobs),
		},
	}
}

// Load reads a YAML configuration file on top of Default.
// Lists present in the file replace the default lists; unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return Parse(data)
}

// Parse decodes YAML configuration data on top of Default.
func Parse(data []byte) (Config, error) {
	var file Config
	if err := yaml.UnmarshalWithOptions(data, &file, yaml.DisallowUnknownField()); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if file.Root != "" {
		cfg.Root = file.Root
	}
	if file.Output != "" {
		cfg.Output = file.Output
	}
	if file.Exclude.Dirs != nil {
		cfg.Exclude.Dirs = file.Exclude.Dirs
	}
	if file.Exclude.Paths != nil {
		cfg.Exclude.Paths = file.Exclude.Paths
	}
	if file.Exclude.Globs != nil {
		cfg.Exclude.Globs = file.Exclude.Globs
	}
	if file.Exclude.Ignore != nil {
		cfg.Exclude.Ignore = file.Exclude.Ignore
	}
	return cfg, nil
}

// WithEnv applies environment overrides using getenv (usually os.Getenv).
func (c Config) WithEnv(getenv func(string) string) Config {
	if v := getenv(EnvOutput); v != "" {
		c.Output = v
	}
	return c
}

// Validate checks that the configuration can drive a build.
func (c Config) Validate() error {
	if c.Output == "" {
		return ErrMissingOutput
	}
	return nil
}

// Ruleset compiles the exclusion lists.
func (c Config) Ruleset() (*rules.Ruleset, error) {
	return rules.New(c.Exclude.Dirs, c.Exclude.Paths, c.Exclude.Globs, c.Exclude.Ignore)
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
