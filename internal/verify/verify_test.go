package verify

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/goliatone/go-wrapgen/pkg/generate"
	"github.com/goliatone/go-wrapgen/pkg/targets/react"
	"github.com/goliatone/go-wrapgen/pkg/targets/vue"
)

func TestVerify_AcceptsValidSources(t *testing.T) {
	files := []generate.File{
		{Path: "components.ts", Contents: []byte("export const XButton = 1;\n")},
		{Path: "runtime/util.tsx", Contents: []byte("export const el = <div a={1} />;\n")},
		{Path: "README.md", Contents: []byte("not a source file ((")},
	}

	if err := New().Verify(files); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestVerify_ReportsFirstSyntaxError(t *testing.T) {
	files := []generate.File{
		{Path: "components.ts", Contents: []byte("export const = ;\n")},
	}

	err := New().Verify(files)
	if err == nil {
		t.Fatalf("expected syntax error")
	}
	if !strings.Contains(err.Error(), "components.ts") {
		t.Fatalf("expected file path in error, got %v", err)
	}
}

// The embedded runtime support files ship as-is, so they must parse.
func TestVerify_EmbeddedRuntimeAssets(t *testing.T) {
	cases := []struct {
		store fs.FS
		path  string
	}{
		{vue.AssetsFS(), "runtime/vue.ts"},
		{react.AssetsFS(), "runtime/react.tsx"},
		{react.AssetsFS(), "runtime/shared.ts"},
	}

	for _, tc := range cases {
		contents, err := fs.ReadFile(tc.store, tc.path)
		if err != nil {
			t.Fatalf("read %s: %v", tc.path, err)
		}
		if err := New().Verify([]generate.File{{Path: tc.path, Contents: contents}}); err != nil {
			t.Fatalf("runtime asset %s does not parse: %v", tc.path, err)
		}
	}
}
