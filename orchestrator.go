package wrapgen

import (
	"context"

	"github.com/goliatone/go-wrapgen/pkg/generate"
	"github.com/goliatone/go-wrapgen/pkg/manifest"
	"github.com/goliatone/go-wrapgen/pkg/orchestrator"
)

// Component describes one custom element parsed from the manifest; alias
// exported via the root package for convenience.
type Component = manifest.Component

// Options describe one emission run for one target.
type Options = generate.Options

// ModelBinding connects an element's native value property to the host's
// two-way model convention.
type ModelBinding = generate.ModelBinding

// Request describes one generation run across one or more targets.
type Request = orchestrator.Request

// TargetRequest selects a registered target together with its emission
// settings and output directory.
type TargetRequest = orchestrator.TargetRequest

// Result summarises what a generation run parsed and wrote.
type Result = orchestrator.Result

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// Generate loads the component manifest, parses its descriptors, and emits
// wrapper modules for every requested target. It is the simplest entry point
// for callers that just want files on disk.
func Generate(ctx context.Context, source manifest.Source, targets []TargetRequest, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, Request{
		Source:  source,
		Targets: targets,
	})
}

// GenerateFromDocument emits wrappers using a pre-loaded manifest document,
// bypassing the loader stage while still delegating to the orchestrator.
func GenerateFromDocument(ctx context.Context, doc manifest.Document, targets []TargetRequest, options ...orchestrator.Option) (Result, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, Request{
		Document: &doc,
		Targets:  targets,
	})
}
