package wrapper

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// EmitFunc receives wrapper emissions: declared events, their kebab-case
// aliases, and model binding events.
type EmitFunc func(event string, detail any)

// MountOption customises one mounted instance.
type MountOption func(*mountConfig)

type mountConfig struct {
	emit   EmitFunc
	click  ListenerFunc
	router NavigationHost
}

// WithEmitter routes wrapper emissions to fn. Without an emitter emissions
// are dropped; model caching still happens.
func WithEmitter(fn EmitFunc) MountOption {
	return func(mc *mountConfig) {
		mc.emit = fn
	}
}

// WithClickHandler installs the caller's click handler. It runs before click
// interception consults the router link.
func WithClickHandler(fn ListenerFunc) MountOption {
	return func(mc *mountConfig) {
		mc.click = fn
	}
}

// WithRouter overrides the definition-level navigation host for this
// instance.
func WithRouter(nav NavigationHost) MountOption {
	return func(mc *mountConfig) {
		mc.router = nav
	}
}

// Instance binds one element to one reactive host component. Methods must be
// called from the host's UI goroutine; instances are not safe for concurrent
// use.
type Instance struct {
	def    *Definition
	el     Element
	emit   EmitFunc
	click  ListenerFunc
	router NavigationHost

	model     any   // last value read from the model property
	lastProps Props // inputs from the most recent Render
	warnOnce  sync.Once
}

// Mount creates the wrapped element in doc and wires its event listeners.
// The instance owns the element exclusively.
func (d *Definition) Mount(doc Document, options ...MountOption) (*Instance, error) {
	if doc == nil {
		return nil, errors.New("wrapper: document is required")
	}

	mc := mountConfig{router: d.cfg.Router}
	for _, opt := range options {
		opt(&mc)
	}
	if mc.emit == nil {
		mc.emit = func(string, any) {}
	}

	el, err := doc.CreateElement(d.cfg.Tag)
	if err != nil {
		return nil, fmt.Errorf("wrapper: create element %q: %w", d.cfg.Tag, err)
	}
	if el == nil {
		return nil, fmt.Errorf("wrapper: document returned no element for %q", d.cfg.Tag)
	}

	inst := &Instance{
		def:    d,
		el:     el,
		emit:   mc.emit,
		click:  mc.click,
		router: mc.router,
		model:  Unset,
	}

	// Model listeners attach first so the cached value is already fresh when
	// declared-event handlers observe the same native event.
	for _, event := range d.cfg.ModelUpdateEvents {
		inst.el.AddEventListener(event, inst.handleModelUpdate)
	}
	for _, event := range d.cfg.Events {
		name := event
		inst.el.AddEventListener(name, func(ev Event) {
			inst.forwardEvent(name, ev)
		})
	}
	inst.el.AddEventListener("click", inst.handleClick)

	return inst, nil
}

// Element returns the underlying element, e.g. for focus management. Callers
// must not detach the wrapper's listeners.
func (inst *Instance) Element() Element {
	return inst.el
}

// ModelValue returns the cached native model value, or Unset when no model
// update event has fired yet.
func (inst *Instance) ModelValue() any {
	return inst.model
}

// Render synchronises the element with one reactive pass worth of inputs.
// It is idempotent for identical inputs and never fails: inputs that cannot
// apply are skipped.
func (inst *Instance) Render(props Props) {
	if props == nil {
		props = Props{}
	}
	inst.lastProps = props

	inst.reconcileClasses(props)
	inst.forwardProps(props)
	inst.forwardModel(props)
}

func (inst *Instance) reconcileClasses(props Props) {
	var owned []string
	if raw, ok := props.Value(classInput).(string); ok {
		owned = splitClassList(raw)
	}
	inst.el.SetClasses(mergeClassLists(owned, inst.el.Classes()))
}

func (inst *Instance) forwardProps(props Props) {
	for _, name := range inst.def.cfg.Props {
		value := props.Value(name)
		// Aria inputs forward unconditionally so stale accessibility state
		// can be cleared; everything else forwards only when supplied.
		if IsUnset(value) && classifyInput(name) != roleAria {
			continue
		}
		inst.el.SetProperty(name, value)
	}

	if value := props.Value(RouterLinkInput); !IsUnset(value) {
		inst.el.SetProperty(RouterLinkInput, value)
	}

	// Aria inputs outside the declared surface forward too when supplied:
	// hosts commonly set accessibility attributes without binding them as
	// properties.
	var extras []string
	for name, value := range props {
		if classifyInput(name) != roleAria || IsUnset(value) {
			continue
		}
		if containsName(inst.def.cfg.Props, name) {
			continue
		}
		extras = append(extras, name)
	}
	sort.Strings(extras)
	for _, name := range extras {
		inst.el.SetProperty(name, props[name])
	}
}

func containsName(names []string, name string) bool {
	for _, candidate := range names {
		if candidate == name {
			return true
		}
	}
	return false
}

func (inst *Instance) forwardModel(props Props) {
	modelProp := inst.def.cfg.ModelProp
	if modelProp == "" {
		return
	}

	// An explicit modelValue input wins over the cached native value. With
	// neither available the property is left alone.
	if value := props.Value(ModelValueInput); !IsUnset(value) {
		inst.el.SetProperty(modelProp, value)
		return
	}
	if !IsUnset(inst.model) {
		inst.el.SetProperty(modelProp, inst.model)
	}
}

func (inst *Instance) handleModelUpdate(ev Event) {
	target := ev.Target()
	if target == nil {
		target = inst.el
	}
	value := target.Property(inst.def.cfg.ModelProp)
	inst.model = value

	inst.emit(ModelValueEvent, value)
	if name := inst.def.cfg.ExternalModelEvent; name != "" {
		inst.emit(name, ev)
	}
}

func (inst *Instance) forwardEvent(name string, ev Event) {
	inst.emit(name, ev)
	if alias := kebabAlias(name); alias != name {
		inst.emit(alias, ev)
	}
}

func (inst *Instance) handleClick(ev Event) {
	if inst.click != nil {
		inst.click(ev)
	}
	if ev.DefaultPrevented() {
		return
	}

	if IsUnset(inst.lastProps.Value(RouterLinkInput)) {
		return
	}

	if inst.router == nil {
		inst.warnOnce.Do(func() {
			inst.def.logger.Warn("router link supplied but no navigation host is registered")
		})
		return
	}

	navProps := make(map[string]any)
	for name, value := range inst.lastProps {
		if classifyInput(name) != roleRouter || IsUnset(value) {
			continue
		}
		navProps[name] = value
	}
	inst.router.Navigate(Navigation{Props: navProps, Event: ev})
}
