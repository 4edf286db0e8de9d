package react_test

import (
	"io"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-wrapgen/pkg/generate"
	"github.com/goliatone/go-wrapgen/pkg/targets/react"
	"github.com/goliatone/go-wrapgen/pkg/testsupport"
)

func TestNew_WithTemplatesFSMissingTemplate(t *testing.T) {
	_, err := react.New(react.WithTemplatesFS(fstest.MapFS{}))
	if err == nil {
		t.Fatalf("expected error for missing template")
	}
	if !strings.Contains(err.Error(), "template") {
		t.Fatalf("expected template error, got %v", err)
	}
}

func TestNew_WithAssetsFSMissingRuntime(t *testing.T) {
	custom := fstest.MapFS{
		"runtime/react.tsx": &fstest.MapFile{Data: []byte("// react")},
	}
	_, err := react.New(react.WithAssetsFS(custom))
	if err == nil {
		t.Fatalf("expected error for missing shared runtime asset")
	}
	if !strings.Contains(err.Error(), "runtime/shared.ts") {
		t.Fatalf("expected shared runtime error, got %v", err)
	}
}

func TestTarget_WithTemplateRenderer(t *testing.T) {
	stub := &stubTemplateRenderer{
		renderTemplateFunc: func(name string, data any, out ...io.Writer) (string, error) {
			if name != "templates/proxies.tpl" {
				t.Fatalf("unexpected template name: %s", name)
			}
			payload, ok := data.(map[string]any)
			if !ok {
				t.Fatalf("expected map payload, got %T", data)
			}
			if payload["core_package"] != "demo-core" {
				t.Fatalf("core package not provided to template: %v", payload["core_package"])
			}
			return "react-custom", nil
		},
	}

	target, err := react.New(react.WithTemplateRenderer(stub))
	if err != nil {
		t.Fatalf("react.New: %v", err)
	}

	files, err := target.Generate(testsupport.Context(), fixtureComponents(), generate.Options{CorePackage: "demo-core"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if string(files[0].Contents) != "react-custom" {
		t.Fatalf("unexpected proxies output: %s", files[0].Contents)
	}
	if !stub.called {
		t.Fatalf("expected render template to be called")
	}
}

type stubTemplateRenderer struct {
	called             bool
	renderTemplateFunc func(name string, data any, out ...io.Writer) (string, error)
}

func (s *stubTemplateRenderer) Render(name string, data any, out ...io.Writer) (string, error) {
	return s.RenderTemplate(name, data, out...)
}

func (s *stubTemplateRenderer) RenderTemplate(name string, data any, out ...io.Writer) (string, error) {
	s.called = true
	if s.renderTemplateFunc != nil {
		return s.renderTemplateFunc(name, data, out...)
	}
	return "", nil
}

func (s *stubTemplateRenderer) RenderString(templateContent string, data any, out ...io.Writer) (string, error) {
	return "", nil
}

func (s *stubTemplateRenderer) RegisterFilter(name string, fn func(input any, param any) (any, error)) error {
	return nil
}

func (s *stubTemplateRenderer) GlobalContext(data any) error {
	return nil
}
