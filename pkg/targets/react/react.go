package react

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-wrapgen/pkg/generate"
	gentemplate "github.com/goliatone/go-wrapgen/pkg/generate/template"
	gotemplate "github.com/goliatone/go-wrapgen/pkg/generate/template/gotemplate"
	"github.com/goliatone/go-wrapgen/pkg/manifest"
)

const templateName = "templates/proxies.tpl"

// runtimeAssets lists the support files copied next to the proxies module, in
// emission order.
var runtimeAssets = []string{
	"runtime/react.tsx",
	"runtime/shared.ts",
}

// Option customises the target configuration.
type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer gentemplate.TemplateRenderer
	assetsFS         fs.FS
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.templateFS = files
		}
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer gentemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithAssetsFS overrides the embedded runtime support bundle.
func WithAssetsFS(files fs.FS) Option {
	return func(cfg *config) {
		if files != nil {
			cfg.assetsFS = files
		}
	}
}

// WithAssetsDir loads runtime support files from a directory on disk.
func WithAssetsDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.assetsFS = os.DirFS(path)
	}
}

// Target emits the React proxies module plus the runtime support files the
// proxies import.
type Target struct {
	templates gentemplate.TemplateRenderer
	assetsFS  fs.FS
}

// Ensure Target satisfies the generate.Target contract.
var _ generate.Target = (*Target)(nil)

// New constructs the React target applying any provided options.
func New(options ...Option) (*Target, error) {
	cfg := config{
		templateFS: TemplatesFS(),
		assetsFS:   AssetsFS(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}
	if err := ensureTemplate(cfg.templateFS, templateName); err != nil {
		return nil, err
	}
	if cfg.assetsFS == nil {
		cfg.assetsFS = AssetsFS()
	}
	for _, asset := range runtimeAssets {
		if err := ensureAsset(cfg.assetsFS, asset); err != nil {
			return nil, err
		}
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("react target: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Target{templates: renderer, assetsFS: cfg.assetsFS}, nil
}

// Name identifies the target inside the registry.
func (t *Target) Name() string {
	return "react"
}

// Generate emits the proxies module followed by the runtime support files.
// Output order is fixed so downstream diffs stay stable.
func (t *Target) Generate(_ context.Context, components []manifest.Component, opts generate.Options) ([]generate.File, error) {
	if t.templates == nil {
		return nil, fmt.Errorf("react target: template renderer is nil")
	}

	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	prepared, err := generate.Prepare(components, opts.Exclude)
	if err != nil {
		return nil, fmt.Errorf("react target: prepare components: %w", err)
	}

	rendered, err := t.templates.RenderTemplate(templateName, templateData(prepared, opts))
	if err != nil {
		return nil, fmt.Errorf("react target: render proxies: %w", err)
	}

	files := []generate.File{
		{Path: opts.ProxiesFile, Contents: []byte(rendered)},
	}
	for _, asset := range runtimeAssets {
		contents, err := fs.ReadFile(t.assetsFS, asset)
		if err != nil {
			return nil, fmt.Errorf("react target: read runtime asset %q: %w", asset, err)
		}
		files = append(files, generate.File{Path: asset, Contents: contents})
	}
	return files, nil
}

func ensureTemplate(store fs.FS, name string) error {
	if store == nil {
		return fmt.Errorf("react target: template file system is nil")
	}
	if _, err := fs.Stat(store, name); err != nil {
		return fmt.Errorf("react target: template %q not found: %w", name, err)
	}
	return nil
}

func ensureAsset(store fs.FS, name string) error {
	if store == nil {
		return fmt.Errorf("react target: asset file system is nil")
	}
	if _, err := fs.Stat(store, name); err != nil {
		return fmt.Errorf("react target: runtime asset %q not found: %w", name, err)
	}
	return nil
}
