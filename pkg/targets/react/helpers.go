package react

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

		list = append(list, map[string]any{
			"tag":         c.Tag,
			"name":        name,
			"docs":        generate.SanitizeDocs(c.Docs),
			"definer":     definer,
			"definer_arg": definerArg,
			"props":       tsStringArray(c.PropertyNames()),
			"handlers":    handlerMapLiteral(c.Events),
		})
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

// handlerMapLiteral maps React handler prop names to the native event each one
// listens for: { onIonChange: 'ionChange' }.
func handlerMapLiteral(events []manifest.Event) string {
	if len(events) == 0 {
		return "{}"
	}
	pairs := make([]string, len(events))
	for i, ev := range events {
		pairs[i] = generate.HandlerName(ev.Name) + ": '" + ev.Name + "'"
	}
	return "{ " + strings.Join(pairs, ", ") + " }"
}
