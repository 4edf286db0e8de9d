package generate

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	docsPolicyOnce sync.Once
	docsPolicy     *bluemonday.Policy
)

// SanitizeDocs prepares compiler-supplied documentation for a JSDoc comment:
// markup is stripped, entities are unescaped, whitespace collapses to single
// spaces, and comment terminators are defused so hostile docs cannot break
// out of the emitted comment.
func SanitizeDocs(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	cleaned := html.UnescapeString(docsSanitizer().Sanitize(trimmed))
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	cleaned = strings.ReplaceAll(cleaned, "*/", `*\/`)
	return strings.TrimSpace(cleaned)
}

func docsSanitizer() *bluemonday.Policy {
	docsPolicyOnce.Do(func() {
		docsPolicy = bluemonday.StrictPolicy()
	})
	return docsPolicy
}
