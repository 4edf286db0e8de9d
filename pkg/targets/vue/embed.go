package vue

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.tpl
var embeddedTemplates embed.FS

//go:embed assets/runtime/*.ts
var embeddedAssets embed.FS

// TemplatesFS exposes the embedded emission templates for consumers that want
// to tweak individual templates while keeping the rest of the bundle.
func TemplatesFS() fs.FS {
	return embeddedTemplates
}

// AssetsFS exposes the embedded runtime support bundle copied next to the
// generated proxies module.
func AssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedAssets, "assets")
	if err != nil {
		// Should never happen, but fall back to raw FS so assets remain usable.
		return embeddedAssets
	}
	return sub
}
