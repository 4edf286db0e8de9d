package manifest

import "errors"

// Component describes one custom element as recorded by the upstream
// compiler: its tag, the properties and events its class declares, and
// generation flags. Descriptors are value types; callers should treat them as
// immutable once parsed.
type Component struct {
	// Tag is the custom element tag name, kebab-case, e.g. "my-button".
	Tag string

	// Properties lists the element's declared properties in declaration
	// order. Order is preserved into the generated wrapper registration.
	Properties []Property

	// Events lists the element's declared custom events in declaration order.
	Events []Event

	// Internal marks descriptors the compiler emits for private elements.
	// Internal components never appear in generated output.
	Internal bool

	// Docs carries the element's documentation text, if any.
	Docs string
}

// Property is a declared element property.
type Property struct {
	// Name is the property name on the element class, usually camelCase.
	Name string

	// Attribute is the reflected attribute name when the compiler emits one.
	Attribute string

	// Docs carries the property's documentation text, if any.
	Docs string
}

// Event is a declared custom event.
type Event struct {
	// Name is the event type dispatched by the element, e.g. "ionChange".
	Name string

	// Docs carries the event's documentation text, if any.
	Docs string
}

// NewComponent validates core fields and returns the descriptor.
func NewComponent(tag string, properties []Property, events []Event) (Component, error) {
	if tag == "" {
		return Component{}, errors.New("manifest: component tag is required")
	}

	return Component{
		Tag:        tag,
		Properties: append([]Property(nil), properties...),
		Events:     append([]Event(nil), events...),
	}, nil
}

// MustNewComponent panics when construction fails, assisting fixtures/tests.
func MustNewComponent(tag string, properties []Property, events []Event) Component {
	c, err := NewComponent(tag, properties, events)
	if err != nil {
		panic(err)
	}
	return c
}

// Clone creates a deep copy so callers can decorate descriptors without
// mutating shared slices.
func (c Component) Clone() Component {
	cloned := c
	if len(c.Properties) > 0 {
		cloned.Properties = append([]Property(nil), c.Properties...)
	}
	if len(c.Events) > 0 {
		cloned.Events = append([]Event(nil), c.Events...)
	}
	return cloned
}

// PropertyNames returns the declared property names in declaration order.
func (c Component) PropertyNames() []string {
	names := make([]string, 0, len(c.Properties))
	for _, p := range c.Properties {
		names = append(names, p.Name)
	}
	return names
}

// EventNames returns the declared event names in declaration order.
func (c Component) EventNames() []string {
	names := make([]string, 0, len(c.Events))
	for _, e := range c.Events {
		names = append(names, e.Name)
	}
	return names
}
