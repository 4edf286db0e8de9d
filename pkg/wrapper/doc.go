// Package wrapper adapts compiled custom elements to reactive component
// hosts. A Definition is created once per tag via Define and mounted into a
// host Document; each Instance owns exactly one element and keeps it in sync
// with the host's declarative view of the world: forwarding supplied inputs
// as element properties, reconciling class lists, translating native custom
// events into host emissions, maintaining a two-way model binding, and
// intercepting clicks for router-driven navigation.
//
// Hosts integrate by satisfying the small Element/Document/Event contracts.
// The package has no opinion about scheduling: callers invoke Render on every
// reactive pass, and all per-instance state is owned by the host's UI
// goroutine. Only the process-wide element definition registry is safe for
// concurrent use.
package wrapper
