package generate

import "strings"

// PascalName converts a kebab-case tag to the exported identifier emitted
// for it: "my-button" becomes "MyButton", "x-a" becomes "XA".
func PascalName(tag string) string {
	var b strings.Builder
	b.Grow(len(tag))
	upperNext := true
	for _, r := range tag {
		if r == '-' {
			upperNext = true
			continue
		}
		if upperNext && r >= 'a' && r <= 'z' {
			r -= 'a' - 'A'
		}
		upperNext = false
		b.WriteRune(r)
	}
	return b.String()
}

// HandlerName converts an event name to the React handler prop spelling:
// "ionChange" becomes "onIonChange".
func HandlerName(event string) string {
	if event == "" {
		return ""
	}
	head := event[:1]
	if head >= "a" && head <= "z" {
		head = strings.ToUpper(head)
	}
	return "on" + head + event[1:]
}

// KebabName converts a camelCase name to kebab-case: "ionChange" becomes
// "ion-change". Names without uppercase letters come back unchanged.
func KebabName(name string) string {
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
