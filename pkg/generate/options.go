package generate

import "errors"

// Default emission settings shared by targets.
const (
	DefaultProxiesFile       = "components.ts"
	DefaultJSXNamespace      = "JSX"
	DefaultCustomElementsDir = "components"
)

// Options describe one emission run for one target.
type Options struct {
	// CorePackage is the npm package holding the compiled elements and their
	// JSX type namespace. Required.
	CorePackage string

	// ProxiesFile is the emitted wrapper module filename. Defaults to
	// "components.ts".
	ProxiesFile string

	// JSXNamespace is the type namespace imported from CorePackage. Defaults
	// to "JSX".
	JSXNamespace string

	// IncludeDefiner emits a per-component defineCustomElement import so
	// wrappers lazily register their elements.
	IncludeDefiner bool

	// CustomElementsDir is the CorePackage subdirectory exposing the
	// per-component custom element modules. Used only when IncludeDefiner is
	// set. Defaults to "components".
	CustomElementsDir string

	// Exclude lists tags to leave out of the run.
	Exclude []string

	// Bindings wire native element values to the host's model convention.
	Bindings []ModelBinding

	// Header is an extra banner line for the emitted files, typically the
	// project name and compiler version.
	Header string
}

// WithDefaults returns a copy with empty fields set to their defaults.
func (o Options) WithDefaults() Options {
	if o.ProxiesFile == "" {
		o.ProxiesFile = DefaultProxiesFile
	}
	if o.JSXNamespace == "" {
		o.JSXNamespace = DefaultJSXNamespace
	}
	if o.CustomElementsDir == "" {
		o.CustomElementsDir = DefaultCustomElementsDir
	}
	return o
}

// Validate rejects options no target can emit with.
func (o Options) Validate() error {
	if o.CorePackage == "" {
		return errors.New("generate: core package is required")
	}
	return nil
}

// ModelBinding connects an element's native value property to the host's
// two-way model convention.
type ModelBinding struct {
	// Elements lists the tags the binding applies to.
	Elements []string

	// Prop is the element property carrying the native value.
	Prop string

	// UpdateEvents are the native events signalling a fresh value.
	UpdateEvents []string

	// ExternalEvent, when set, re-emits the native update event under this
	// name after the model value emission.
	ExternalEvent string
}

// Matches reports whether the binding applies to tag.
func (b ModelBinding) Matches(tag string) bool {
	for _, el := range b.Elements {
		if el == tag {
			return true
		}
	}
	return false
}

// BindingFor resolves the first binding that matches tag.
func BindingFor(bindings []ModelBinding, tag string) (ModelBinding, bool) {
	for _, b := range bindings {
		if b.Matches(tag) {
			return b, true
		}
	}
	return ModelBinding{}, false
}
