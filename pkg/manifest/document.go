package manifest

import (
	"bytes"
	"errors"
)

// Source identifies where a manifest originated. Loaders operate on files,
// fs.FS entries, or URLs without leaking implementation details.
type Source interface {
	Kind() SourceKind
	Location() string
}

// SourceKind enumerates the loader modalities.
type SourceKind string

const (
	SourceKindFile SourceKind = "file"
	SourceKindFS   SourceKind = "fs"
	SourceKindURL  SourceKind = "url"
)

// Document pairs the raw manifest payload with its origin. Carrying bytes
// instead of decoded structures keeps the public API decoupled from the
// manifest's wire format (JSON or YAML); only the parser commits to one.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument wraps a manifest payload. The bytes are copied, so later
// mutation of raw by the caller does not reach the document.
func NewDocument(src Source, raw []byte) (Document, error) {
	switch {
	case src == nil:
		return Document{}, errors.New("manifest: source is required")
	case len(raw) == 0:
		return Document{}, errors.New("manifest: raw document is empty")
	}
	return Document{source: src, raw: bytes.Clone(raw)}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the manifest payload.
func (d Document) Raw() []byte {
	return bytes.Clone(d.raw)
}

// Location returns the origin identifier, or "" for a zero-value document.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}
