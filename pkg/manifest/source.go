package manifest

import (
	"fmt"
	"net/url"
	"path/filepath"
)

// source is the single concrete Source implementation. The constructors pin
// the kind down so loaders can dispatch on Kind without type assertions.
type source struct {
	kind     SourceKind
	location string
}

func (s source) Kind() SourceKind {
	return s.kind
}

func (s source) Location() string {
	return s.location
}

// SourceFromFile points at a manifest on disk, typically the
// custom-elements.json a component build drops into its dist directory.
func SourceFromFile(path string) Source {
	return source{kind: SourceKindFile, location: filepath.Clean(path)}
}

// SourceFromFS points at a manifest inside an fs.FS, which keeps embedded
// fixtures and tests off the real filesystem.
func SourceFromFS(name string) Source {
	return source{kind: SourceKindFS, location: name}
}

// SourceFromURL points at a manifest served over HTTP, such as a component
// dev server. It panics on a malformed URL so configuration mistakes surface
// at startup rather than halfway through a run.
func SourceFromURL(raw string) Source {
	if raw == "" {
		panic("manifest: empty URL source")
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		panic(fmt.Sprintf("manifest: invalid URL %q: %v", raw, err))
	}
	return source{kind: SourceKindURL, location: raw}
}
