package wrapper

// ListenerFunc receives dispatched element events.
type ListenerFunc func(Event)

// Element is the wrapper's view of one custom element instance. Real DOM
// bridges and test fakes satisfy it; render logic never touches anything
// beyond this surface.
type Element interface {
	// TagName returns the element's tag, e.g. "my-button".
	TagName() string

	// SetProperty assigns a property on the element instance.
	SetProperty(name string, value any)

	// Property reads a property from the element instance. Unknown names
	// return nil.
	Property(name string) any

	// Classes returns the element's live class list in document order.
	Classes() []string

	// SetClasses replaces the element's class list.
	SetClasses(classes []string)

	// AddEventListener subscribes fn to events of the given type.
	AddEventListener(eventType string, fn ListenerFunc)
}

// Document creates elements. Each mounted wrapper instance exclusively owns
// the single element it creates here.
type Document interface {
	CreateElement(tag string) (Element, error)
}

// Navigation carries everything a router needs to resolve a wrapper-initiated
// transition: the navigation-relevant inputs that were supplied at click time
// and the originating event.
type Navigation struct {
	// Props holds the supplied router-prefixed inputs, including routerLink.
	Props map[string]any

	// Event is the click event that triggered the navigation.
	Event Event
}

// NavigationHost performs framework-level navigation. It is injected
// explicitly (Config.Router or WithRouter); the wrapper never discovers a
// router ambiently.
type NavigationHost interface {
	Navigate(nav Navigation)
}

// NavigationFunc adapts a function to the NavigationHost interface.
type NavigationFunc func(nav Navigation)

func (f NavigationFunc) Navigate(nav Navigation) {
	f(nav)
}
