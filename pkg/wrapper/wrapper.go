package wrapper

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Reserved names claimed by the wrapper surface. Declared component
// properties and events may not use them.
const (
	// ModelValueInput is the input carrying an explicit model value.
	ModelValueInput = "modelValue"

	// ModelValueEvent is emitted, before anything else, whenever a model
	// update event refreshes the cached model value.
	ModelValueEvent = "update:modelValue"

	// RouterLinkInput is the input carrying a navigation target. Supplying
	// it arms click interception.
	RouterLinkInput = "routerLink"

	// classInput carries the host's class attribute value for
	// reconciliation. It is implicit: never declared, always accepted.
	classInput = "class"
)

// Config describes one wrapped element type.
type Config struct {
	// Tag is the custom element tag name. Required.
	Tag string

	// Definer registers the element with the host platform. Optional; when
	// set it runs exactly once per tag process-wide, before Define returns.
	Definer DefineFunc

	// Props lists the declared property names in declaration order.
	Props []string

	// Events lists the declared custom event names in declaration order.
	Events []string

	// ModelProp names the element property carrying the element's native
	// value. Empty disables model binding.
	ModelProp string

	// ModelUpdateEvents lists the native events that signal a fresh model
	// value. Requires ModelProp.
	ModelUpdateEvents []string

	// ExternalModelEvent, when set, re-emits the native update event under
	// this name after ModelValueEvent. Requires ModelProp.
	ExternalModelEvent string

	// Router receives navigation requests from click interception. Optional;
	// can also be supplied per mount via WithRouter.
	Router NavigationHost

	// Logger receives wrapper diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Definition is the reusable wrapper for one element type. Create it once
// via Define and mount it any number of times.
type Definition struct {
	cfg     Config
	logger  *zap.Logger
	inputs  []string
	outputs []string
}

// Define validates the configuration, ensures the element is registered with
// the host platform, and returns the wrapper definition.
func Define(cfg Config) (*Definition, error) {
	if cfg.Tag == "" {
		return nil, errors.New("wrapper: tag is required")
	}
	if !strings.Contains(cfg.Tag, "-") {
		return nil, fmt.Errorf("wrapper: tag %q is not a custom element name (needs a dash)", cfg.Tag)
	}
	if cfg.ModelProp == "" {
		if len(cfg.ModelUpdateEvents) > 0 {
			return nil, fmt.Errorf("wrapper: %s: model update events require a model property", cfg.Tag)
		}
		if cfg.ExternalModelEvent != "" {
			return nil, fmt.Errorf("wrapper: %s: external model event requires a model property", cfg.Tag)
		}
	}
	if err := checkDeclaredNames(cfg.Tag, "property", cfg.Props); err != nil {
		return nil, err
	}
	if err := checkDeclaredNames(cfg.Tag, "event", cfg.Events); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	cfg.Props = append([]string(nil), cfg.Props...)
	cfg.Events = append([]string(nil), cfg.Events...)
	cfg.ModelUpdateEvents = append([]string(nil), cfg.ModelUpdateEvents...)

	EnsureDefined(cfg.Tag, cfg.Definer)

	def := &Definition{
		cfg:    cfg,
		logger: logger.With(zap.String("tag", cfg.Tag)),
	}
	def.inputs = def.buildInputs()
	def.outputs = def.buildOutputs()
	return def, nil
}

// MustDefine panics when Define fails. Useful for generated registration
// code where the configuration is static.
func MustDefine(cfg Config) *Definition {
	def, err := Define(cfg)
	if err != nil {
		panic(err)
	}
	return def
}

// Reserved reports whether name collides with a name the wrapper surface
// claims for itself.
func Reserved(name string) bool {
	switch name {
	case ModelValueInput, ModelValueEvent, RouterLinkInput, classInput:
		return true
	}
	return false
}

func checkDeclaredNames(tag, kind string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return fmt.Errorf("wrapper: %s: empty %s name", tag, kind)
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("wrapper: %s: %s %q declared twice", tag, kind, name)
		}
		seen[name] = struct{}{}
		if Reserved(name) {
			return fmt.Errorf("wrapper: %s: %s %q collides with a reserved name", tag, kind, name)
		}
	}
	return nil
}

// Tag returns the wrapped element's tag name.
func (d *Definition) Tag() string {
	return d.cfg.Tag
}

// Inputs returns every input name the wrapper accepts: declared properties,
// the router link, and the model value when model binding is configured.
func (d *Definition) Inputs() []string {
	return append([]string(nil), d.inputs...)
}

// Outputs returns every event name the wrapper can emit: declared events,
// their kebab-case aliases where distinct, and the model binding events when
// configured.
func (d *Definition) Outputs() []string {
	return append([]string(nil), d.outputs...)
}

func (d *Definition) buildInputs() []string {
	inputs := make([]string, 0, len(d.cfg.Props)+2)
	inputs = append(inputs, d.cfg.Props...)
	inputs = append(inputs, RouterLinkInput)
	if d.cfg.ModelProp != "" {
		inputs = append(inputs, ModelValueInput)
	}
	return inputs
}

func (d *Definition) buildOutputs() []string {
	outputs := make([]string, 0, len(d.cfg.Events)*2+2)
	seen := make(map[string]struct{}, len(d.cfg.Events)*2+2)
	add := func(name string) {
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		outputs = append(outputs, name)
	}

	for _, event := range d.cfg.Events {
		add(event)
		if alias := kebabAlias(event); alias != event {
			add(alias)
		}
	}
	if d.cfg.ModelProp != "" {
		add(ModelValueEvent)
		if d.cfg.ExternalModelEvent != "" {
			add(d.cfg.ExternalModelEvent)
		}
	}
	return outputs
}
