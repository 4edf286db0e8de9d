package wrapper

// Event is the wrapper's view of a dispatched element event.
type Event interface {
	// Type returns the event name as dispatched, e.g. "ionChange".
	Type() string

	// Target returns the element the event was dispatched on, or nil.
	Target() Element

	// Detail returns the event payload.
	Detail() any

	// DefaultPrevented reports whether a handler suppressed the default
	// action.
	DefaultPrevented() bool

	// PreventDefault suppresses the default action.
	PreventDefault()
}

// CustomEvent is a plain Event implementation for hosts and tests.
type CustomEvent struct {
	eventType string
	target    Element
	detail    any
	prevented bool
}

var _ Event = (*CustomEvent)(nil)

// NewEvent constructs a CustomEvent of the given type.
func NewEvent(eventType string, target Element, detail any) *CustomEvent {
	return &CustomEvent{eventType: eventType, target: target, detail: detail}
}

func (e *CustomEvent) Type() string {
	return e.eventType
}

func (e *CustomEvent) Target() Element {
	return e.target
}

func (e *CustomEvent) Detail() any {
	return e.detail
}

func (e *CustomEvent) DefaultPrevented() bool {
	return e.prevented
}

func (e *CustomEvent) PreventDefault() {
	e.prevented = true
}
