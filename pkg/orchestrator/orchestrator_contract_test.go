package orchestrator_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-wrapgen/pkg/generate"
	"github.com/goliatone/go-wrapgen/pkg/manifest"
	"github.com/goliatone/go-wrapgen/pkg/orchestrator"
	"github.com/goliatone/go-wrapgen/pkg/testsupport"
)

const manifestJSON = `{
  "components": [
    {"tag": "x-input", "properties": ["value"], "events": ["ionChange"]},
    {"tag": "x-button", "properties": ["routerDirection"], "events": ["xClick"]}
  ]
}`

func fixtureDocument(t *testing.T) *manifest.Document {
	t.Helper()
	doc, err := manifest.NewDocument(manifest.SourceFromFile("fixture.json"), []byte(manifestJSON))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}
	return &doc
}

type fakeTarget struct {
	name  string
	calls int
	files []generate.File
	err   error
}

func (f *fakeTarget) Name() string { return f.name }

func (f *fakeTarget) Generate(_ context.Context, components []manifest.Component, _ generate.Options) ([]generate.File, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if f.files != nil {
		return f.files, nil
	}
	out := make([]generate.File, 0, len(components))
	for _, c := range components {
		out = append(out, generate.File{Path: c.Tag + ".ts", Contents: []byte("// " + c.Tag + "\n")})
	}
	return out, nil
}

type memorySink struct {
	files  map[string][]byte
	writes []string
}

func newMemorySink() *memorySink {
	return &memorySink{files: make(map[string][]byte)}
}

func (s *memorySink) WriteFile(path string, contents []byte) (bool, error) {
	s.writes = append(s.writes, path)
	if existing, ok := s.files[path]; ok && bytes.Equal(existing, contents) {
		return false, nil
	}
	s.files[path] = append([]byte(nil), contents...)
	return true, nil
}

type fakeVerifier struct {
	calls int
	err   error
}

func (f *fakeVerifier) Verify(files []generate.File) error {
	f.calls++
	return f.err
}

func TestOrchestrator_GenerateContract(t *testing.T) {
	target := &fakeTarget{name: "fake"}
	registry := generate.NewRegistry()
	registry.MustRegister(target)

	sink := newMemorySink()
	verifier := &fakeVerifier{}

	orch := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithSink(sink),
		orchestrator.WithVerifier(verifier),
	)

	req := orchestrator.Request{
		Document: fixtureDocument(t),
		Targets: []orchestrator.TargetRequest{
			{Name: "fake", OutDir: "out", Options: generate.Options{CorePackage: "demo-core"}},
		},
	}

	result, err := orch.Generate(testsupport.Context(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if result.Components != 2 {
		t.Fatalf("expected 2 parsed components, got %d", result.Components)
	}
	if len(result.Targets) != 1 || result.Targets[0].Target != "fake" {
		t.Fatalf("unexpected target results: %+v", result.Targets)
	}
	if target.calls != 1 {
		t.Fatalf("expected one target invocation, got %d", target.calls)
	}
	if verifier.calls != 1 {
		t.Fatalf("expected one verifier invocation, got %d", verifier.calls)
	}

	wantPath := filepath.Join("out", "x-input.ts")
	if _, ok := sink.files[wantPath]; !ok {
		t.Fatalf("expected sink write at %s, got %v", wantPath, sink.writes)
	}
	for _, file := range result.Targets[0].Files {
		if !file.Changed {
			t.Fatalf("first write of %s should report a change", file.Path)
		}
	}

	// A second identical run writes nothing new.
	result, err = orch.Generate(testsupport.Context(), req)
	if err != nil {
		t.Fatalf("regenerate: %v", err)
	}
	for _, file := range result.Targets[0].Files {
		if file.Changed {
			t.Fatalf("unchanged content for %s should not report a change", file.Path)
		}
	}
}

func TestOrchestrator_NilSinkFailsFast(t *testing.T) {
	target := &fakeTarget{name: "fake"}
	registry := generate.NewRegistry()
	registry.MustRegister(target)

	orch := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithSink(nil),
	)

	_, err := orch.Generate(testsupport.Context(), orchestrator.Request{
		Document: fixtureDocument(t),
		Targets:  []orchestrator.TargetRequest{{Name: "fake"}},
	})
	if !errors.Is(err, orchestrator.ErrSinkUnavailable) {
		t.Fatalf("expected ErrSinkUnavailable, got %v", err)
	}
	if target.calls != 0 {
		t.Fatalf("no target should run without a sink, got %d calls", target.calls)
	}
}

func TestOrchestrator_RequiresTargets(t *testing.T) {
	orch := orchestrator.New(orchestrator.WithSink(newMemorySink()))

	_, err := orch.Generate(testsupport.Context(), orchestrator.Request{Document: fixtureDocument(t)})
	if err == nil || !strings.Contains(err.Error(), "at least one target") {
		t.Fatalf("expected targets error, got %v", err)
	}
}

func TestOrchestrator_RequiresSourceOrDocument(t *testing.T) {
	orch := orchestrator.New(orchestrator.WithSink(newMemorySink()))

	_, err := orch.Generate(testsupport.Context(), orchestrator.Request{
		Targets: []orchestrator.TargetRequest{{Name: "vue"}},
	})
	if err == nil || !strings.Contains(err.Error(), "source or document") {
		t.Fatalf("expected source error, got %v", err)
	}
}

func TestOrchestrator_UnknownTarget(t *testing.T) {
	orch := orchestrator.New(orchestrator.WithSink(newMemorySink()))

	_, err := orch.Generate(testsupport.Context(), orchestrator.Request{
		Document: fixtureDocument(t),
		Targets:  []orchestrator.TargetRequest{{Name: "svelte"}},
	})
	if err == nil || !strings.Contains(err.Error(), `"svelte"`) {
		t.Fatalf("expected unknown target error, got %v", err)
	}
}

func TestOrchestrator_VerifierFailureAborts(t *testing.T) {
	target := &fakeTarget{name: "fake"}
	registry := generate.NewRegistry()
	registry.MustRegister(target)

	sink := newMemorySink()
	orch := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithSink(sink),
		orchestrator.WithVerifier(&fakeVerifier{err: errors.New("syntax error")}),
	)

	_, err := orch.Generate(testsupport.Context(), orchestrator.Request{
		Document: fixtureDocument(t),
		Targets:  []orchestrator.TargetRequest{{Name: "fake"}},
	})
	if err == nil || !strings.Contains(err.Error(), "verify") {
		t.Fatalf("expected verify error, got %v", err)
	}
	if len(sink.writes) != 0 {
		t.Fatalf("no file should be written when verification fails, got %v", sink.writes)
	}
}

func TestOrchestrator_TargetFailureStopsRun(t *testing.T) {
	registry := generate.NewRegistry()
	registry.MustRegister(&fakeTarget{name: "bad", err: errors.New("boom")})

	sink := newMemorySink()
	orch := orchestrator.New(
		orchestrator.WithRegistry(registry),
		orchestrator.WithSink(sink),
	)

	_, err := orch.Generate(testsupport.Context(), orchestrator.Request{
		Document: fixtureDocument(t),
		Targets:  []orchestrator.TargetRequest{{Name: "bad"}},
	})
	if err == nil || !strings.Contains(err.Error(), "generate bad") {
		t.Fatalf("expected generation error, got %v", err)
	}
	if len(sink.writes) != 0 {
		t.Fatalf("no file should be written when generation fails, got %v", sink.writes)
	}
}
