package vue

import (
	"strings"

	"github.com/goliatone/go-wrapgen/pkg/generate"
	"github.com/goliatone/go-wrapgen/pkg/manifest"
)

// templateData precomputes every emitted fragment so the template only lays
// out lines. TypeScript literals are built here, not via template filters.
func templateData(components []manifest.Component, opts generate.Options) map[string]any {
	list := make([]any, 0, len(components))
	for _, c := range components {
		name := generate.PascalName(c.Tag)

		definer := ""
		definerArg := "undefined"
		if opts.IncludeDefiner {
			definer = "define" + name
			definerArg = definer
		}

		entry := map[string]any{
			"tag":         c.Tag,
			"name":        name,
			"docs":        generate.SanitizeDocs(c.Docs),
			"definer":     definer,
			"definer_arg": definerArg,
			"props":       tsStringArray(c.PropertyNames()),
			"events":      tsStringArray(c.EventNames()),
			"binding":     nil,
		}
		if binding, ok := generate.BindingFor(opts.Bindings, c.Tag); ok {
			entry["binding"] = map[string]any{
				"prop":           binding.Prop,
				"update_events":  tsStringArray(binding.UpdateEvents),
				"external_event": binding.ExternalEvent,
			}
		}
		list = append(list, entry)
	}

	return map[string]any{
		"core_package":        opts.CorePackage,
		"jsx_namespace":       opts.JSXNamespace,
		"include_definer":     opts.IncludeDefiner,
		"custom_elements_dir": opts.CustomElementsDir,
		"header":              opts.Header,
		"components":          list,
	}
}

func tsStringArray(values []string) string {
	if len(values) == 0 {
		return "[]"
	}
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
