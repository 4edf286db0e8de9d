// Package config loads and writes the wrapgen project file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the project file the CLI looks for when -config is not
// given.
const DefaultFileName = "wrapgen.yaml"

// Config mirrors wrapgen.yaml.
type Config struct {
	// Manifest is the component manifest path or URL.
	Manifest string `yaml:"manifest"`

	// CorePackage is the npm package holding the compiled elements.
	CorePackage string `yaml:"corePackage"`

	// Exclude lists tags left out of every target.
	Exclude []string `yaml:"exclude,omitempty"`

	// Header is an extra banner line for generated files.
	Header string `yaml:"header,omitempty"`

	// Verify syntax-checks emitted sources before writing.
	Verify bool `yaml:"verify,omitempty"`

	// Targets configures each enabled target by name.
	Targets map[string]Target `yaml:"targets"`

	// Bindings wire native element values to the host model convention.
	Bindings []Binding `yaml:"bindings,omitempty"`
}

// Target configures one emission target.
type Target struct {
	OutDir            string `yaml:"outDir"`
	ProxiesFile       string `yaml:"proxiesFile,omitempty"`
	IncludeDefiner    bool   `yaml:"includeDefiner,omitempty"`
	CustomElementsDir string `yaml:"customElementsDir,omitempty"`
}

// Binding wires an element's native value property to the host's model
// convention.
type Binding struct {
	Elements      []string `yaml:"elements"`
	Prop          string   `yaml:"prop"`
	UpdateEvents  []string `yaml:"updateEvents"`
	ExternalEvent string   `yaml:"externalEvent,omitempty"`
}

// Load reads and decodes a project file.
func Load(path string) (Config, error) {
	if path == "" {
		return Config{}, errors.New("config: path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %q: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes the project file payload. Unknown fields are rejected so
// typos surface instead of silently disabling settings.
func Parse(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	return cfg, nil
}

// Validate checks the fields every generation run needs.
func (c Config) Validate() error {
	if c.Manifest == "" {
		return errors.New("config: manifest is required")
	}
	if c.CorePackage == "" {
		return errors.New("config: corePackage is required")
	}
	if len(c.Targets) == 0 {
		return errors.New("config: at least one target is required")
	}
	for name, target := range c.Targets {
		if target.OutDir == "" {
			return fmt.Errorf("config: target %q: outDir is required", name)
		}
	}
	return nil
}

// TargetNames returns the configured target names, sorted so runs stay
// deterministic regardless of map order.
func (c Config) TargetNames() []string {
	names := make([]string, 0, len(c.Targets))
	for name := range c.Targets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Save writes the project file.
func Save(path string, cfg Config) error {
	if path == "" {
		return errors.New("config: path is required")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %q: %w", path, err)
	}
	return nil
}
