package generate

import (
	"sort"

	"github.com/goliatone/go-wrapgen/pkg/manifest"
)

// Prepare filters and orders descriptors for emission. Internal components
// and excluded tags drop out, survivors sort by tag so output is stable
// across runs, and the resulting set is validated. Duplicate tags fail here:
// every emitted wrapper is an exported identifier, so two descriptors
// claiming one tag cannot coexist in a run.
func Prepare(components []manifest.Component, exclude []string) ([]manifest.Component, error) {
	excluded := make(map[string]struct{}, len(exclude))
	for _, tag := range exclude {
		excluded[tag] = struct{}{}
	}

	kept := make([]manifest.Component, 0, len(components))
	for _, c := range components {
		if c.Internal {
			continue
		}
		if _, skip := excluded[c.Tag]; skip {
			continue
		}
		kept = append(kept, c.Clone())
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].Tag < kept[j].Tag })

	if err := manifest.Validate(kept); err != nil {
		return nil, err
	}
	return kept, nil
}
