package manifest_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-wrapgen/pkg/manifest"
)

func TestNewDocument_RequiresSourceAndPayload(t *testing.T) {
	if _, err := manifest.NewDocument(nil, []byte("{}")); err == nil {
		t.Fatal("expected error for nil source")
	}
	if _, err := manifest.NewDocument(manifest.SourceFromFile("components.json"), nil); err == nil {
		t.Fatal("expected error for empty payload")
	}
}

func TestDocument_RawIsDefensiveCopy(t *testing.T) {
	raw := []byte(`{"components":[]}`)
	doc := manifest.MustNewDocument(manifest.SourceFromFile("components.json"), raw)

	raw[0] = 'X'
	got := doc.Raw()
	if got[0] != '{' {
		t.Fatalf("document shared caller's backing array: %q", got[:1])
	}

	got[1] = 'X'
	if again := doc.Raw(); again[1] == 'X' {
		t.Fatal("Raw returned a shared slice")
	}
}

func TestSourceKinds(t *testing.T) {
	cases := []struct {
		name     string
		src      manifest.Source
		kind     manifest.SourceKind
		location string
	}{
		{"file", manifest.SourceFromFile("./fixtures/components.json"), manifest.SourceKindFile, "fixtures/components.json"},
		{"fs", manifest.SourceFromFS("fixtures/components.yaml"), manifest.SourceKindFS, "fixtures/components.yaml"},
		{"url", manifest.SourceFromURL("https://cdn.example.com/components.json"), manifest.SourceKindURL, "https://cdn.example.com/components.json"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.src.Kind() != tc.kind {
				t.Fatalf("kind = %q, want %q", tc.src.Kind(), tc.kind)
			}
			if diff := cmp.Diff(tc.location, tc.src.Location()); diff != "" {
				t.Fatalf("location mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSourceFromURL_PanicsOnGarbage(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for malformed URL")
		}
	}()
	manifest.SourceFromURL("://not-a-url")
}

func TestComponent_NameAccessors(t *testing.T) {
	c := manifest.MustNewComponent("my-input",
		[]manifest.Property{{Name: "value"}, {Name: "disabled"}},
		[]manifest.Event{{Name: "myChange"}},
	)

	if diff := cmp.Diff([]string{"value", "disabled"}, c.PropertyNames()); diff != "" {
		t.Fatalf("property names mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"myChange"}, c.EventNames()); diff != "" {
		t.Fatalf("event names mismatch (-want +got):\n%s", diff)
	}
}

func TestComponent_CloneIsIndependent(t *testing.T) {
	orig := manifest.MustNewComponent("my-input",
		[]manifest.Property{{Name: "value"}},
		[]manifest.Event{{Name: "myChange"}},
	)

	cloned := orig.Clone()
	cloned.Properties[0].Name = "mutated"
	cloned.Events[0].Name = "mutated"

	if orig.Properties[0].Name != "value" || orig.Events[0].Name != "myChange" {
		t.Fatalf("clone mutated the original: %+v", orig)
	}
}
