// Package template defines the engine-agnostic template contract targets
// render through. Keeping the seam separate from any one engine lets callers
// swap template engines without touching emission logic.
package template
