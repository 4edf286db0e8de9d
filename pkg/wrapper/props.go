package wrapper

import "strings"

// Props carries one render pass worth of input values, keyed by input name.
// A missing key and an explicit Unset value mean the same thing: the caller
// did not supply the input this pass. Explicit nil is a real value and is
// forwarded.
type Props map[string]any

// Value returns the supplied value for name, or Unset when the input is
// absent.
func (p Props) Value(name string) any {
	if v, ok := p[name]; ok {
		return v
	}
	return Unset
}

// Supplied reports whether name carries a usable value this pass.
func (p Props) Supplied(name string) bool {
	return !IsUnset(p.Value(name))
}

// inputRole classifies input names whose prefix grants special forwarding
// behaviour.
type inputRole uint8

const (
	roleStandard inputRole = iota

	// roleAria inputs forward to the element on every render, even when the
	// value is the unset marker. Accessibility state must be clearable.
	roleAria

	// roleRouter inputs are collected into the navigation payload when a
	// click escalates to the router.
	roleRouter
)

// prefixTable drives the classification. Entries list the exact prefix and
// the separator class that must follow it, replacing pattern matching over
// arbitrary names with a fixed typed lookup.
var prefixTable = []prefixRule{
	{prefix: "aria", allowHyphen: true, role: roleAria},
	{prefix: "router", allowHyphen: false, role: roleRouter},
}

type prefixRule struct {
	prefix      string
	allowHyphen bool
	role        inputRole
}

func classifyInput(name string) inputRole {
	for _, rule := range prefixTable {
		rest, ok := strings.CutPrefix(name, rule.prefix)
		if !ok || rest == "" {
			continue
		}
		next := rest[0]
		if (next >= 'A' && next <= 'Z') || (rule.allowHyphen && next == '-') {
			return rule.role
		}
	}
	return roleStandard
}

// kebabAlias converts a camelCase event name to its kebab-case form, e.g.
// "ionChange" to "ion-change". Names without uppercase letters come back
// unchanged.
func kebabAlias(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 2)
	runes := []rune(name)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			prevLower := i > 0 && isLowerOrDigit(runes[i-1])
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('-')
			}
			b.WriteRune(r + ('a' - 'A'))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isLowerOrDigit(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
