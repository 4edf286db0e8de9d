package wrapper

import "errors"

// ErrUnsetValue is returned when the unset marker reaches a serialization
// boundary. The marker is an in-memory signal only; encountering it in a
// payload means a forwarding bug upstream.
var ErrUnsetValue = errors.New("wrapper: unset marker cannot be serialized")

// unsetType is the private type behind Unset. Being unexported, no other
// package can mint a second value that compares equal to it, so a supplied
// nil, zero, or empty string is always distinguishable from "not supplied".
type unsetType struct{}

// Unset marks a declared input the caller did not supply. Inputs holding
// Unset are never forwarded to the element (aria-prefixed inputs excepted).
var Unset = unsetType{}

// IsUnset reports whether v is the unset marker.
func IsUnset(v any) bool {
	_, ok := v.(unsetType)
	return ok
}

func (unsetType) String() string {
	return "wrapper.Unset"
}

// MarshalJSON always fails: the marker must never leak into serialized
// payloads.
func (unsetType) MarshalJSON() ([]byte, error) {
	return nil, ErrUnsetValue
}

// MarshalYAML always fails for the same reason as MarshalJSON.
func (unsetType) MarshalYAML() (any, error) {
	return nil, ErrUnsetValue
}
