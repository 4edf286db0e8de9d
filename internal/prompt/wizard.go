package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-wrapgen/internal/config"
)

// Wizard walks a user through the settings a fresh project file needs.
type Wizard struct {
	driver  Driver
	targets []string
}

// NewWizard builds a Wizard offering the given target names.
func NewWizard(driver Driver, targets []string) (*Wizard, error) {
	if driver == nil {
		return nil, errors.New("prompt: driver is required")
	}
	if len(targets) == 0 {
		return nil, errors.New("prompt: at least one target is required")
	}
	return &Wizard{driver: driver, targets: targets}, nil
}

// Run collects answers and assembles the project configuration.
func (w *Wizard) Run(ctx context.Context) (config.Config, error) {
	if ctx == nil {
		return config.Config{}, errors.New("prompt: context is required")
	}

	if err := w.driver.Info(ctx, "This utility walks you through creating a "+config.DefaultFileName+" file."); err != nil {
		return config.Config{}, err
	}

	manifest, err := w.driver.Input(ctx, InputConfig{
		Message:   "Component manifest path or URL",
		Default:   "dist/custom-elements.json",
		Help:      "The custom elements manifest produced by your component build.",
		Validator: required("manifest"),
	})
	if err != nil {
		return config.Config{}, err
	}

	corePackage, err := w.driver.Input(ctx, InputConfig{
		Message:   "Core package",
		Help:      "The npm package that publishes the compiled custom elements.",
		Validator: required("core package"),
	})
	if err != nil {
		return config.Config{}, err
	}

	selected, err := w.driver.MultiSelect(ctx, SelectConfig{
		Message:  "Targets to generate",
		Options:  w.targets,
		Defaults: allIndices(len(w.targets)),
	})
	if err != nil {
		return config.Config{}, err
	}
	if len(selected) == 0 {
		return config.Config{}, errors.New("prompt: select at least one target")
	}

	includeDefiner, err := w.driver.Confirm(ctx, ConfirmConfig{
		Message: "Import element definers into the generated proxies?",
		Default: true,
		Help:    "When enabled each proxy registers its custom element on first use.",
	})
	if err != nil {
		return config.Config{}, err
	}

	targets := make(map[string]config.Target, len(selected))
	for _, idx := range selected {
		name := w.targets[idx]
		outDir, err := w.driver.Input(ctx, InputConfig{
			Message:   fmt.Sprintf("Output directory for %s", name),
			Default:   fmt.Sprintf("packages/%s/src", name),
			Validator: required("output directory"),
		})
		if err != nil {
			return config.Config{}, err
		}
		targets[name] = config.Target{
			OutDir:         outDir,
			IncludeDefiner: includeDefiner,
		}
	}

	verify, err := w.driver.Confirm(ctx, ConfirmConfig{
		Message: "Syntax-check generated sources before writing?",
		Default: true,
	})
	if err != nil {
		return config.Config{}, err
	}

	return config.Config{
		Manifest:    manifest,
		CorePackage: corePackage,
		Verify:      verify,
		Targets:     targets,
	}, nil
}

func required(field string) func(string) error {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}
