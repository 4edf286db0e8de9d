package manifest

import "context"

// Parser normalises manifest documents into component descriptors that
// downstream packages consume. Decoding accepts both JSON and YAML payloads.
type Parser interface {
	Components(ctx context.Context, doc Document) ([]Component, error)
}

// ParserOptions exposes decode-time toggles.
type ParserOptions struct {
	// Strict rejects manifests with unknown top-level fields. Defaults to
	// false so newer compiler output keeps loading.
	Strict bool
}

// ParserOption mutates ParserOptions during construction.
type ParserOption func(*ParserOptions)

// WithStrictDecoding toggles rejection of unknown manifest fields.
func WithStrictDecoding(enabled bool) ParserOption {
	return func(opts *ParserOptions) {
		opts.Strict = enabled
	}
}

// NewParserOptions folds the supplied options over a zero configuration.
func NewParserOptions(options ...ParserOption) ParserOptions {
	var cfg ParserOptions
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
