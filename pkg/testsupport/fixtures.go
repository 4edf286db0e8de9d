// Package testsupport holds the fixture and golden-file helpers shared by the
// manifest, target, and orchestrator test suites.
package testsupport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	pkgmanifest "github.com/goliatone/go-wrapgen/pkg/manifest"
)

// LoadDocument reads a manifest fixture from disk and wraps it in a Document
// carrying a file source, failing the test on any error so contract tests
// stay concise.
func LoadDocument(t *testing.T, path string) pkgmanifest.Document {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read manifest fixture: %v", err)
	}
	doc, err := pkgmanifest.NewDocument(pkgmanifest.SourceFromFile(path), data)
	if err != nil {
		t.Fatalf("wrap manifest fixture: %v", err)
	}
	return doc
}

// MustLoadComponents decodes a JSON golden file into component descriptors.
func MustLoadComponents(t *testing.T, path string) []pkgmanifest.Component {
	t.Helper()

	var out []pkgmanifest.Component
	if err := json.Unmarshal(MustReadGolden(t, path), &out); err != nil {
		t.Fatalf("unmarshal golden: %v", err)
	}
	return out
}

// WriteGolden marshals value as indented JSON and stores it as a golden file
// when UPDATE_GOLDENS is set.
func WriteGolden(t *testing.T, path string, value any) {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		t.Fatalf("marshal golden: %v", err)
	}
	writeGoldenBytes(t, path, payload)
}

// WriteMaybeGolden refreshes a golden file when UPDATE_GOLDENS is set and
// reports whether it did, so callers can end the test after regenerating.
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()

	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	writeGoldenBytes(t, path, data)
	return true
}

func writeGoldenBytes(t *testing.T, path string, data []byte) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
}

// CompareGolden diffs two values, returning "" when they already agree.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden returns the raw bytes of a golden file, failing the test on
// any read error.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString is MustReadGolden with the bytes converted to a string.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// Context hands tests a plain background context.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput runs a render function against a fresh buffer and
// returns the render's string result alongside whatever reached the writer,
// so tests can check the two stay in lockstep without buffer boilerplate.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}
