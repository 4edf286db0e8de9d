package manifest

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicateTag reports two descriptors claiming the same tag within one
// generation run. Generated modules export one identifier per tag, so
// duplicates would collide; callers must treat this as fatal.
var ErrDuplicateTag = errors.New("manifest: duplicate component tag")

// reservedNames are claimed by the generated wrapper surface and may not be
// declared by a component as a property or event.
var reservedNames = map[string]string{
	"modelValue":        "model binding input",
	"update:modelValue": "model binding event",
	"routerLink":        "navigation input",
}

// ValidateComponent checks a single descriptor: tag grammar, duplicate
// property/event names, and reserved-name collisions.
func ValidateComponent(c Component) error {
	if err := validateTag(c.Tag); err != nil {
		return err
	}

	seenProps := make(map[string]struct{}, len(c.Properties))
	for _, p := range c.Properties {
		if p.Name == "" {
			return fmt.Errorf("manifest: component %q declares a property with no name", c.Tag)
		}
		if _, dup := seenProps[p.Name]; dup {
			return fmt.Errorf("manifest: component %q declares property %q twice", c.Tag, p.Name)
		}
		seenProps[p.Name] = struct{}{}
		if role, reserved := reservedNames[p.Name]; reserved {
			return fmt.Errorf("manifest: component %q property %q collides with the reserved %s", c.Tag, p.Name, role)
		}
	}

	seenEvents := make(map[string]struct{}, len(c.Events))
	for _, e := range c.Events {
		if e.Name == "" {
			return fmt.Errorf("manifest: component %q declares an event with no name", c.Tag)
		}
		if _, dup := seenEvents[e.Name]; dup {
			return fmt.Errorf("manifest: component %q declares event %q twice", c.Tag, e.Name)
		}
		seenEvents[e.Name] = struct{}{}
		if role, reserved := reservedNames[e.Name]; reserved {
			return fmt.Errorf("manifest: component %q event %q collides with the reserved %s", c.Tag, e.Name, role)
		}
	}

	return nil
}

// Validate checks every descriptor and rejects duplicate tags across the set.
func Validate(components []Component) error {
	seen := make(map[string]struct{}, len(components))
	for _, c := range components {
		if err := ValidateComponent(c); err != nil {
			return err
		}
		if _, dup := seen[c.Tag]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateTag, c.Tag)
		}
		seen[c.Tag] = struct{}{}
	}
	return nil
}

func validateTag(tag string) error {
	if tag == "" {
		return errors.New("manifest: component tag is required")
	}
	if !strings.Contains(tag, "-") {
		return fmt.Errorf("manifest: tag %q is not a custom element name (needs a dash)", tag)
	}
	if tag != strings.ToLower(tag) {
		return fmt.Errorf("manifest: tag %q must be lowercase", tag)
	}
	for _, r := range tag {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
		case r == '-':
		default:
			return fmt.Errorf("manifest: tag %q contains invalid character %q", tag, r)
		}
	}
	if strings.HasPrefix(tag, "-") || strings.HasSuffix(tag, "-") {
		return fmt.Errorf("manifest: tag %q may not start or end with a dash", tag)
	}
	return nil
}
