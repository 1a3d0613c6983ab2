package config

import (
	"os"
	"path"
	"path/filepath"

	"github.com/imdario/mergo"
	"gopkg.in/yaml.v3"

	"github.com/robgonnella/bumpver/internal/rewrite"
)

// FileName is the optional per-project configuration file
const FileName = ".bumpver.yml"

// Target declares one file holding a version assignment plus the pattern
// locating that assignment. Each target must contain exactly one matching
// line.
type Target struct {
	Path    string `yaml:"path"`
	Pattern string `yaml:"pattern"`
}

// Config represents the data structure of our user provided yaml
// configuration. The target set is fixed once loaded - it is not
// extensible at runtime.
type Config struct {
	Name        string   `yaml:"name"`
	VersionFile string   `yaml:"versionFile"`
	Targets     []Target `yaml:"targets"`
}

// Default returns the built-in configuration for srcDir: a bare VERSION
// file plus the assignment styles of a setup script and a package init
// module
func Default(srcDir string) *Config {
	abs, err := filepath.Abs(srcDir)

	name := "project"

	if err == nil {
		name = filepath.Base(abs)
	}

	return &Config{
		Name:        name,
		VersionFile: "VERSION",
		Targets: []Target{
			{Path: "setup.py", Pattern: rewrite.DefaultPattern},
			{Path: "__init__.py", Pattern: rewrite.DefaultPattern},
		},
	}
}

// New returns the configuration for srcDir: the project's yaml file merged
// over the built-in defaults, or the defaults alone when no file exists
func New(srcDir string) (*Config, error) {
	defaults := Default(srcDir)

	confPath := path.Join(srcDir, FileName)

	raw, err := os.ReadFile(confPath)

	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}

		return nil, err
	}

	var conf Config

	if err := yaml.Unmarshal(raw, &conf); err != nil {
		return nil, err
	}

	// fill any field the project file left unset from the defaults
	if err := mergo.Merge(&conf, defaults); err != nil {
		return nil, err
	}

	for i, target := range conf.Targets {
		if target.Pattern == "" {
			conf.Targets[i].Pattern = rewrite.DefaultPattern
		}
	}

	return &conf, nil
}

// Validate compiles every target pattern, failing fast on malformed config
func (c *Config) Validate() error {
	for _, target := range c.Targets {
		if _, err := rewrite.CompilePattern(target.Pattern); err != nil {
			return err
		}
	}

	return nil
}
