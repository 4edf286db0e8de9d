// Package manifest exposes the public contracts for loading and parsing
// component manifests: the descriptor records a web-component compiler emits
// for each custom element (tag, properties, events, flags). Implementations
// live under internal/manifest to keep decoding details hidden from consumers.
package manifest
