package generate

import (
	"context"

	"github.com/goliatone/go-wrapgen/pkg/manifest"
)

// File is one emitted output. Path is relative to the target's output
// directory and always uses forward slashes.
type File struct {
	Path     string
	Contents []byte
}

// Target converts prepared component descriptors into framework wrapper
// sources. Implementations must be deterministic: identical descriptors and
// options produce byte-identical files in identical order.
type Target interface {
	// Name identifies the target in registries and configuration, e.g.
	// "vue".
	Name() string

	// Generate emits the wrapper module plus its fixed runtime-support
	// files. The descriptor slice is already filtered and sorted; targets
	// must not reorder it.
	Generate(ctx context.Context, components []manifest.Component, options Options) ([]File, error)
}
