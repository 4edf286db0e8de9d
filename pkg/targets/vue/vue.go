package vue

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

const (
	templateName = "templates/proxies.tpl"

	runtimeAsset = "runtime/vue.ts"
)

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

// Target emits the Vue proxies module plus the runtime support file the
// proxies import.
type Target struct {
	templates gentemplate.TemplateRenderer
	assetsFS  fs.FS
}

// Ensure Target satisfies the generate.Target contract.
var _ generate.Target = (*Target)(nil)

// New constructs the Vue target applying any provided options.
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
	if err := ensureAsset(cfg.assetsFS, runtimeAsset); err != nil {
		return nil, err
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".tpl"),
		)
		if err != nil {
			return nil, fmt.Errorf("vue target: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Target{templates: renderer, assetsFS: cfg.assetsFS}, nil
}

// Name identifies the target inside the registry.
func (t *Target) Name() string {
	return "vue"
}

// Generate emits the proxies module followed by the runtime support file.
// Output order is fixed so downstream diffs stay stable.
func (t *Target) Generate(_ context.Context, components []manifest.Component, opts generate.Options) ([]generate.File, error) {
	if t.templates == nil {
		return nil, fmt.Errorf("vue target: template renderer is nil")
	}

	opts = opts.WithDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	prepared, err := generate.Prepare(components, opts.Exclude)
	if err != nil {
		return nil, fmt.Errorf("vue target: prepare components: %w", err)
	}

	rendered, err := t.templates.RenderTemplate(templateName, templateData(prepared, opts))
	if err != nil {
		return nil, fmt.Errorf("vue target: render proxies: %w", err)
	}

	runtime, err := fs.ReadFile(t.assetsFS, runtimeAsset)
	if err != nil {
		return nil, fmt.Errorf("vue target: read runtime asset %q: %w", runtimeAsset, err)
	}

	return []generate.File{
		{Path: opts.ProxiesFile, Contents: []byte(rendered)},
		{Path: runtimeAsset, Contents: runtime},
	}, nil
}

func ensureTemplate(store fs.FS, name string) error {
	if store == nil {
		return fmt.Errorf("vue target: template file system is nil")
	}
	if _, err := fs.Stat(store, name); err != nil {
		return fmt.Errorf("vue target: template %q not found: %w", name, err)
	}
	return nil
}

func ensureAsset(store fs.FS, name string) error {
	if store == nil {
		return fmt.Errorf("vue target: asset file system is nil")
	}
	if _, err := fs.Stat(store, name); err != nil {
		return fmt.Errorf("vue target: runtime asset %q not found: %w", name, err)
	}
	return nil
}
