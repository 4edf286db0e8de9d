package generate_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-wrapgen/pkg/generate"
	"github.com/goliatone/go-wrapgen/pkg/manifest"
)

func TestPrepare_FiltersSortsAndClones(t *testing.T) {
	components := []manifest.Component{
		{Tag: "x-b"},
		{Tag: "x-internal", Internal: true},
		{Tag: "x-a", Properties: []manifest.Property{{Name: "color"}}},
		{Tag: "x-skipped"},
	}

	got, err := generate.Prepare(components, []string{"x-skipped"})
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}

	tags := make([]string, 0, len(got))
	for _, c := range got {
		tags = append(tags, c.Tag)
	}
	if diff := cmp.Diff([]string{"x-a", "x-b"}, tags); diff != "" {
		t.Fatalf("tag order mismatch (-want +got):\n%s", diff)
	}

	got[0].Properties[0].Name = "mutated"
	if components[2].Properties[0].Name != "color" {
		t.Fatal("prepare returned shared descriptor slices")
	}
}

func TestPrepare_DuplicateTagsFailFast(t *testing.T) {
	components := []manifest.Component{
		{Tag: "x-a"},
		{Tag: "x-a"},
	}

	_, err := generate.Prepare(components, nil)
	if !errors.Is(err, manifest.ErrDuplicateTag) {
		t.Fatalf("error %v is not ErrDuplicateTag", err)
	}
}

func TestPrepare_ExclusionCanResolveDuplicates(t *testing.T) {
	// Excluding one claimant removes the collision; the run proceeds.
	components := []manifest.Component{
		{Tag: "x-a"},
		{Tag: "x-a", Internal: true},
	}

	got, err := generate.Prepare(components, nil)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if len(got) != 1 || got[0].Tag != "x-a" {
		t.Fatalf("unexpected survivors: %+v", got)
	}
}

func TestPrepare_EmptyInputIsAllowed(t *testing.T) {
	got, err := generate.Prepare(nil, nil)
	if err != nil {
		t.Fatalf("prepare: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected no survivors, got %d", len(got))
	}
}
