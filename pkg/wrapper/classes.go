package wrapper

import "strings"

// splitClassList breaks a class attribute value into tokens. Empty tokens
// from repeated whitespace are discarded.
func splitClassList(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return strings.Fields(value)
}

// mergeClassLists reconciles the classes the host owns this render pass with
// whatever the element (or its own internals) put on the live class list.
// Owned classes come first, live classes the host does not own follow, and
// duplicates collapse to their first occurrence. Applying the result and
// merging again yields the same list, so repeated renders cannot grow it.
func mergeClassLists(owned, live []string) []string {
	merged := make([]string, 0, len(owned)+len(live))
	seen := make(map[string]struct{}, len(owned)+len(live))

	for _, class := range owned {
		if class == "" {
			continue
		}
		if _, dup := seen[class]; dup {
			continue
		}
		seen[class] = struct{}{}
		merged = append(merged, class)
	}

	// seen now holds exactly the owned set, so this loop keeps live classes
	// the host does not own and drops repeats in one check.
	for _, class := range live {
		if class == "" {
			continue
		}
		if _, dup := seen[class]; dup {
			continue
		}
		seen[class] = struct{}{}
		merged = append(merged, class)
	}

	return merged
}
