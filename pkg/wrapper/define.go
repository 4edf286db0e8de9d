package wrapper

import "sync"

// DefineFunc registers a custom element implementation with the host
// platform, typically by loading the compiled element class.
type DefineFunc func()

var (
	definedMu   sync.Mutex
	definedTags = make(map[string]struct{})
)

// EnsureDefined invokes definer the first time the tag is seen in this
// process and records the tag as registered. Repeat calls for the same tag
// are no-ops regardless of which definer they carry. Safe for concurrent
// use; the definer runs before EnsureDefined returns.
func EnsureDefined(tag string, definer DefineFunc) {
	if definer == nil {
		return
	}
	definedMu.Lock()
	defer definedMu.Unlock()

	if _, done := definedTags[tag]; done {
		return
	}
	definedTags[tag] = struct{}{}
	definer()
}
