package wrapper_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/goliatone/go-wrapgen/pkg/wrapper"
)

func mountForTest(t *testing.T, cfg wrapper.Config, options ...wrapper.MountOption) (*wrapper.Instance, *fakeElement) {
	t.Helper()
	def, err := wrapper.Define(cfg)
	if err != nil {
		t.Fatalf("define: %v", err)
	}
	doc := &fakeDocument{}
	inst, err := def.Mount(doc, options...)
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	return inst, doc.created[0]
}

func TestRender_UnsuppliedInputsAreNeverForwarded(t *testing.T) {
	inst, el := mountForTest(t, wrapper.Config{
		Tag:   "rn-button",
		Props: []string{"color", "size"},
	})

	inst.Render(wrapper.Props{"color": "primary"})

	if got := el.props["color"]; got != "primary" {
		t.Fatalf("color = %v, want primary", got)
	}
	if _, forwarded := el.props["size"]; forwarded {
		t.Fatal("unsupplied input was forwarded")
	}

	// An explicit sentinel behaves exactly like a missing key.
	inst.Render(wrapper.Props{"color": "primary", "size": wrapper.Unset})
	if _, forwarded := el.props["size"]; forwarded {
		t.Fatal("explicit Unset was forwarded")
	}
}

func TestRender_ExplicitFalsyValuesForward(t *testing.T) {
	inst, el := mountForTest(t, wrapper.Config{
		Tag:   "rn-input",
		Props: []string{"disabled", "placeholder", "count"},
	})

	inst.Render(wrapper.Props{"disabled": false, "placeholder": "", "count": 0})

	want := []string{"disabled", "placeholder", "count"}
	if diff := cmp.Diff(want, el.propOrder); diff != "" {
		t.Fatalf("forwarded order mismatch (-want +got):\n%s", diff)
	}
	if el.props["disabled"] != false || el.props["placeholder"] != "" || el.props["count"] != 0 {
		t.Fatalf("falsy values mangled: %v", el.props)
	}
}

func TestRender_AriaInputsForwardUnconditionally(t *testing.T) {
	inst, el := mountForTest(t, wrapper.Config{
		Tag:   "rn-checkbox",
		Props: []string{"ariaLabel", "aria-checked", "color"},
	})

	inst.Render(wrapper.Props{})

	if !wrapper.IsUnset(el.props["ariaLabel"]) {
		t.Fatalf("ariaLabel = %v, want the unset marker", el.props["ariaLabel"])
	}
	if !wrapper.IsUnset(el.props["aria-checked"]) {
		t.Fatalf("aria-checked = %v, want the unset marker", el.props["aria-checked"])
	}
	if _, forwarded := el.props["color"]; forwarded {
		t.Fatal("standard input forwarded while unset")
	}

	inst.Render(wrapper.Props{"ariaLabel": "Accept"})
	if el.props["ariaLabel"] != "Accept" {
		t.Fatalf("ariaLabel = %v, want Accept", el.props["ariaLabel"])
	}
}

func TestRender_UndeclaredAriaInputsForwardWhenSupplied(t *testing.T) {
	inst, el := mountForTest(t, wrapper.Config{
		Tag:   "rn-toggle",
		Props: []string{"checked"},
	})

	inst.Render(wrapper.Props{
		"checked":     true,
		"ariaLabel":   "Enable alerts",
		"aria-hidden": wrapper.Unset,
		"variant":     "compact",
	})

	if el.props["ariaLabel"] != "Enable alerts" {
		t.Fatalf("ariaLabel = %v, want Enable alerts", el.props["ariaLabel"])
	}
	// Undeclared names forward only when supplied, and only for the
	// accessibility prefix.
	if _, forwarded := el.props["aria-hidden"]; forwarded {
		t.Fatal("undeclared unset aria input was forwarded")
	}
	if _, forwarded := el.props["variant"]; forwarded {
		t.Fatal("undeclared standard input was forwarded")
	}
}

func TestRender_RouterLinkForwardsWhenSupplied(t *testing.T) {
	inst, el := mountForTest(t, wrapper.Config{Tag: "rn-item"})

	inst.Render(wrapper.Props{})
	if _, forwarded := el.props["routerLink"]; forwarded {
		t.Fatal("routerLink forwarded while unset")
	}

	inst.Render(wrapper.Props{"routerLink": "/settings"})
	if el.props["routerLink"] != "/settings" {
		t.Fatalf("routerLink = %v, want /settings", el.props["routerLink"])
	}
}

func TestRender_ModelPrecedence(t *testing.T) {
	inst, el := mountForTest(t, wrapper.Config{
		Tag:               "rn-field",
		Props:             []string{"value"},
		Events:            []string{"ionChange"},
		ModelProp:         "value",
		ModelUpdateEvents: []string{"ionChange"},
	})

	// No explicit model value and no cached native value: leave the
	// property alone.
	inst.Render(wrapper.Props{})
	if _, forwarded := el.props["value"]; forwarded {
		t.Fatalf("value = %v, want untouched", el.props["value"])
	}

	// Explicit model value forwards.
	inst.Render(wrapper.Props{"modelValue": "typed"})
	if el.props["value"] != "typed" {
		t.Fatalf("value = %v, want typed", el.props["value"])
	}

	// A native update refreshes the cache; the next render without an
	// explicit model value reapplies it.
	el.props["value"] = "native"
	el.dispatch(t, wrapper.NewEvent("ionChange", el, nil))
	inst.Render(wrapper.Props{})
	if el.props["value"] != "native" {
		t.Fatalf("value = %v, want native", el.props["value"])
	}

	// Explicit model value still wins over the cache.
	inst.Render(wrapper.Props{"modelValue": "explicit"})
	if el.props["value"] != "explicit" {
		t.Fatalf("value = %v, want explicit", el.props["value"])
	}
}

func TestModelUpdate_CachesValueAndEmitsInOrder(t *testing.T) {
	rec := &recorder{}
	observedAtExternal := any(nil)

	var inst *wrapper.Instance
	emitter := func(event string, detail any) {
		rec.emit(event, detail)
		if event == "v-ion-change" {
			observedAtExternal = inst.ModelValue()
		}
	}

	def, err := wrapper.Define(wrapper.Config{
		Tag:                "md-input",
		Props:              []string{"value"},
		Events:             []string{"ionChange"},
		ModelProp:          "value",
		ModelUpdateEvents:  []string{"ionChange"},
		ExternalModelEvent: "v-ion-change",
	})
	if err != nil {
		t.Fatalf("define: %v", err)
	}
	doc := &fakeDocument{}
	inst, err = def.Mount(doc, wrapper.WithEmitter(emitter))
	if err != nil {
		t.Fatalf("mount: %v", err)
	}
	el := doc.created[0]

	el.props["value"] = "abc"
	ev := wrapper.NewEvent("ionChange", el, nil)
	el.dispatch(t, ev)

	wantOrder := []string{"update:modelValue", "v-ion-change", "ionChange", "ion-change"}
	if diff := cmp.Diff(wantOrder, rec.events()); diff != "" {
		t.Fatalf("emission order mismatch (-want +got):\n%s", diff)
	}

	if rec.emissions[0].detail != "abc" {
		t.Fatalf("update:modelValue payload = %v, want abc", rec.emissions[0].detail)
	}
	if rec.emissions[1].detail != wrapper.Event(ev) {
		t.Fatal("external re-emit lost the native event")
	}
	if observedAtExternal != "abc" {
		t.Fatalf("external handler observed %v, want the already-cached abc", observedAtExternal)
	}
	if inst.ModelValue() != "abc" {
		t.Fatalf("cached model value = %v, want abc", inst.ModelValue())
	}
}

func TestForwardEvent_AliasOnlyWhenDistinct(t *testing.T) {
	rec := &recorder{}
	_, el := mountForTest(t, wrapper.Config{
		Tag:    "fw-toggle",
		Events: []string{"ionChange", "toggled"},
	}, wrapper.WithEmitter(rec.emit))

	el.dispatch(t, wrapper.NewEvent("toggled", el, nil))
	el.dispatch(t, wrapper.NewEvent("ionChange", el, "payload"))

	want := []string{"toggled", "ionChange", "ion-change"}
	if diff := cmp.Diff(want, rec.events()); diff != "" {
		t.Fatalf("emissions mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_ClassReconciliation(t *testing.T) {
	inst, el := mountForTest(t, wrapper.Config{Tag: "cl-card"})

	// The element carries classes of its own before the first render.
	el.SetClasses([]string{"hydrated", "ion-activatable"})

	inst.Render(wrapper.Props{"class": "card shadow hydrated"})

	want := []string{"card", "shadow", "hydrated", "ion-activatable"}
	if diff := cmp.Diff(want, el.Classes()); diff != "" {
		t.Fatalf("classes mismatch (-want +got):\n%s", diff)
	}

	// Rendering the same input again must not grow or reorder the list.
	inst.Render(wrapper.Props{"class": "card shadow hydrated"})
	if diff := cmp.Diff(want, el.Classes()); diff != "" {
		t.Fatalf("reconciliation not idempotent (-want +got):\n%s", diff)
	}
}

func TestClick_CallerHandlerRunsFirstAndCanCancel(t *testing.T) {
	var order []string
	nav := wrapper.NavigationFunc(func(wrapper.Navigation) {
		order = append(order, "navigate")
	})
	click := func(ev wrapper.Event) {
		order = append(order, "handler")
		ev.PreventDefault()
	}

	inst, el := mountForTest(t, wrapper.Config{Tag: "ck-button"},
		wrapper.WithRouter(nav), wrapper.WithClickHandler(click))

	inst.Render(wrapper.Props{"routerLink": "/home"})
	el.dispatch(t, wrapper.NewEvent("click", el, nil))

	if diff := cmp.Diff([]string{"handler"}, order); diff != "" {
		t.Fatalf("prevented click still navigated (-want +got):\n%s", diff)
	}
}

func TestClick_NavigatesWithRouterInputs(t *testing.T) {
	var got wrapper.Navigation
	nav := wrapper.NavigationFunc(func(n wrapper.Navigation) { got = n })

	inst, el := mountForTest(t, wrapper.Config{
		Tag:   "ck-item",
		Props: []string{"color", "routerDirection"},
	}, wrapper.WithRouter(nav))

	inst.Render(wrapper.Props{
		"routerLink":      "/home",
		"routerDirection": "forward",
		"color":           "primary",
	})

	ev := wrapper.NewEvent("click", el, nil)
	el.dispatch(t, ev)

	wantProps := map[string]any{
		"routerLink":      "/home",
		"routerDirection": "forward",
	}
	if diff := cmp.Diff(wantProps, got.Props); diff != "" {
		t.Fatalf("navigation props mismatch (-want +got):\n%s", diff)
	}
	if got.Event != wrapper.Event(ev) {
		t.Fatal("navigation lost the originating event")
	}
}

func TestClick_WithoutRouterLinkIsInert(t *testing.T) {
	called := false
	nav := wrapper.NavigationFunc(func(wrapper.Navigation) { called = true })

	inst, el := mountForTest(t, wrapper.Config{Tag: "ck-plain"}, wrapper.WithRouter(nav))

	inst.Render(wrapper.Props{})
	el.dispatch(t, wrapper.NewEvent("click", el, nil))

	if called {
		t.Fatal("navigation fired without a router link")
	}
}

func TestClick_MissingRouterWarnsOnce(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)

	inst, el := mountForTest(t, wrapper.Config{
		Tag:    "ck-orphan",
		Logger: zap.New(core),
	})

	inst.Render(wrapper.Props{"routerLink": "/nowhere"})
	el.dispatch(t, wrapper.NewEvent("click", el, nil))
	el.dispatch(t, wrapper.NewEvent("click", el, nil))

	if logs.Len() != 1 {
		t.Fatalf("warning logged %d times, want 1", logs.Len())
	}
	entry := logs.All()[0]
	if entry.Level != zapcore.WarnLevel {
		t.Fatalf("level = %v, want warn", entry.Level)
	}
	if entry.ContextMap()["tag"] != "ck-orphan" {
		t.Fatalf("warning lacks tag field: %v", entry.ContextMap())
	}
}

func TestClick_BeforeFirstRenderIsSafe(t *testing.T) {
	called := false
	nav := wrapper.NavigationFunc(func(wrapper.Navigation) { called = true })

	_, el := mountForTest(t, wrapper.Config{Tag: "ck-early"}, wrapper.WithRouter(nav))

	el.dispatch(t, wrapper.NewEvent("click", el, nil))
	if called {
		t.Fatal("navigation fired before any render supplied inputs")
	}
}
