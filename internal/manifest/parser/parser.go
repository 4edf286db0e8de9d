package parser

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	pkgmanifest "github.com/goliatone/go-wrapgen/pkg/manifest"
)

// Parser implements pkgmanifest.Parser for JSON and YAML manifest payloads.
type Parser struct {
	options pkgmanifest.ParserOptions
}

// Ensure the implementation satisfies the public interface.
var _ pkgmanifest.Parser = (*Parser)(nil)

// New constructs a Parser with the given options.
func New(options pkgmanifest.ParserOptions) pkgmanifest.Parser {
	return &Parser{options: options}
}

// Components decodes a Document into descriptor values. The payload format is
// detected from its first significant byte; YAML handles everything JSON's
// object/array openers do not claim.
func (p *Parser) Components(ctx context.Context, doc pkgmanifest.Document) ([]pkgmanifest.Component, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw := doc.Raw()
	if len(raw) == 0 {
		return nil, errors.New("manifest parser: document payload is empty")
	}

	var (
		wire wireManifest
		err  error
	)
	if looksLikeJSON(raw) {
		err = p.decodeJSON(raw, &wire)
	} else {
		err = p.decodeYAML(raw, &wire)
	}
	if err != nil {
		return nil, fmt.Errorf("manifest parser: decode %s: %w", doc.Location(), err)
	}

	components := make([]pkgmanifest.Component, 0, len(wire.Components))
	for _, wc := range wire.Components {
		components = append(components, wc.component())
	}

	if err := pkgmanifest.Validate(components); err != nil {
		return nil, err
	}
	return components, nil
}

func (p *Parser) decodeJSON(raw []byte, wire *wireManifest) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if p.options.Strict {
		dec.DisallowUnknownFields()
	}
	return dec.Decode(wire)
}

func (p *Parser) decodeYAML(raw []byte, wire *wireManifest) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(p.options.Strict)
	if err := dec.Decode(wire); err != nil {
		return err
	}
	return nil
}

func looksLikeJSON(raw []byte) bool {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	return len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[')
}
