package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	internalLoader "github.com/goliatone/go-wrapgen/internal/manifest/loader"
	internalParser "github.com/goliatone/go-wrapgen/internal/manifest/parser"
	"github.com/goliatone/go-wrapgen/pkg/generate"
	pkgmanifest "github.com/goliatone/go-wrapgen/pkg/manifest"
	"github.com/goliatone/go-wrapgen/pkg/targets/react"
	"github.com/goliatone/go-wrapgen/pkg/targets/vue"
)

// ErrSinkUnavailable reports a nil sink. Generation has nowhere to write, so
// the run aborts before any target executes.
var ErrSinkUnavailable = errors.New("orchestrator: sink unavailable")

// Verifier checks emitted files before they reach the sink.
type Verifier interface {
	Verify(files []generate.File) error
}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom manifest loader.
func WithLoader(loader pkgmanifest.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = loader
	}
}

// WithParser injects a custom manifest parser.
func WithParser(parser pkgmanifest.Parser) Option {
	return func(o *Orchestrator) {
		o.parser = parser
	}
}

// WithRegistry injects a target registry. Without it the orchestrator
// registers the built-in vue and react targets.
func WithRegistry(registry *generate.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithSink routes generated files through a custom sink. Passing nil disables
// writing; Generate then fails with ErrSinkUnavailable.
func WithSink(sink Sink) Option {
	return func(o *Orchestrator) {
		o.sink = sink
		o.sinkSpecified = true
	}
}

// WithVerifier checks emitted sources before any file is written.
func WithVerifier(verifier Verifier) Option {
	return func(o *Orchestrator) {
		o.verifier = verifier
	}
}

// WithLogger injects a logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *Orchestrator) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Orchestrator coordinates the manifest → targets → sink pipeline. It applies
// sensible defaults (built-in loader, parser, targets, OS sink) while
// remaining open to dependency injection for advanced callers.
type Orchestrator struct {
	loader          pkgmanifest.Loader
	parser          pkgmanifest.Parser
	registry        *generate.Registry
	sink            Sink
	sinkSpecified   bool
	verifier        Verifier
	logger          *zap.Logger
	initialiseErr   error
	defaultsApplied bool
}

// New constructs an Orchestrator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

// TargetRequest names one target and where its output goes.
type TargetRequest struct {
	// Name selects a registered target, e.g. "vue".
	Name string

	// OutDir is the directory emitted paths are joined onto.
	OutDir string

	// Options carry the emission settings for this target.
	Options generate.Options
}

// Request describes the inputs for one generation run.
type Request struct {
	// Source identifies where the manifest lives. Optional when Document is
	// supplied.
	Source pkgmanifest.Source

	// Document allows callers to bypass the loader when they already have the
	// payload.
	Document *pkgmanifest.Document

	// Targets lists the targets to run. At least one is required.
	Targets []TargetRequest
}

// WrittenFile records one sink write.
type WrittenFile struct {
	// Path is the full output path handed to the sink.
	Path string

	// Changed reports whether the write altered what was on disk.
	Changed bool
}

// TargetResult lists the files one target produced.
type TargetResult struct {
	Target string
	Files  []WrittenFile
}

// Result summarises a generation run.
type Result struct {
	// Components is the number of descriptors parsed from the manifest,
	// before per-target filtering.
	Components int

	// Targets holds per-target write records in request order.
	Targets []TargetResult
}

// Generate executes the loader → parser → targets → verifier → sink sequence.
func (o *Orchestrator) Generate(ctx context.Context, req Request) (Result, error) {
	if ctx == nil {
		return Result{}, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	if err := o.initialiseErr; err != nil {
		return Result{}, err
	}
	if !o.defaultsApplied {
		o.applyDefaults()
		if err := o.initialiseErr; err != nil {
			return Result{}, err
		}
	}

	if o.sink == nil {
		return Result{}, ErrSinkUnavailable
	}
	if len(req.Targets) == 0 {
		return Result{}, errors.New("orchestrator: at least one target is required")
	}

	doc, err := o.resolveDocument(ctx, req)
	if err != nil {
		return Result{}, err
	}

	components, err := o.parser.Components(ctx, doc)
	if err != nil {
		return Result{}, fmt.Errorf("orchestrator: parse components: %w", err)
	}

	result := Result{Components: len(components)}
	for _, tr := range req.Targets {
		target, err := o.registry.Get(tr.Name)
		if err != nil {
			return Result{}, fmt.Errorf("orchestrator: target %q: %w", tr.Name, err)
		}

		files, err := target.Generate(ctx, components, tr.Options)
		if err != nil {
			return Result{}, fmt.Errorf("orchestrator: generate %s: %w", tr.Name, err)
		}

		if o.verifier != nil {
			if err := o.verifier.Verify(files); err != nil {
				return Result{}, fmt.Errorf("orchestrator: verify %s output: %w", tr.Name, err)
			}
		}

		tres := TargetResult{Target: tr.Name, Files: make([]WrittenFile, 0, len(files))}
		for _, file := range files {
			path := file.Path
			if tr.OutDir != "" {
				path = filepath.Join(tr.OutDir, file.Path)
			}
			changed, err := o.sink.WriteFile(path, file.Contents)
			if err != nil {
				return Result{}, fmt.Errorf("orchestrator: write %s: %w", path, err)
			}
			o.logger.Debug("wrote generated file",
				zap.String("target", tr.Name),
				zap.String("path", path),
				zap.Bool("changed", changed),
			)
			tres.Files = append(tres.Files, WrittenFile{Path: path, Changed: changed})
		}
		o.logger.Info("target generated",
			zap.String("target", tr.Name),
			zap.Int("components", len(components)),
			zap.Int("files", len(tres.Files)),
		)
		result.Targets = append(result.Targets, tres)
	}

	return result, nil
}

func (o *Orchestrator) resolveDocument(ctx context.Context, req Request) (pkgmanifest.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return pkgmanifest.Document{}, errors.New("orchestrator: source or document is required")
	}
	doc, err := o.loader.Load(ctx, req.Source)
	if err != nil {
		return pkgmanifest.Document{}, fmt.Errorf("orchestrator: load manifest: %w", err)
	}
	return doc, nil
}

func (o *Orchestrator) applyDefaults() {
	if o.defaultsApplied {
		return
	}

	if o.loader == nil {
		o.loader = internalLoader.New(pkgmanifest.NewLoaderOptions())
	}
	if o.parser == nil {
		o.parser = internalParser.New(pkgmanifest.NewParserOptions())
	}
	if o.registry == nil {
		o.registry = generate.NewRegistry()
		vueTarget, err := vue.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default vue target: %w", err)
		} else {
			o.registry.MustRegister(vueTarget)
		}
		reactTarget, err := react.New()
		if err != nil {
			o.initialiseErr = fmt.Errorf("orchestrator: default react target: %w", err)
		} else {
			o.registry.MustRegister(reactTarget)
		}
	}
	if o.sink == nil && !o.sinkSpecified {
		o.sink = NewOSSink()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	o.defaultsApplied = true
}
