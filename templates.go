package wrapgen

import (
	"io/fs"

	"github.com/goliatone/go-wrapgen/pkg/targets/react"
	"github.com/goliatone/go-wrapgen/pkg/targets/vue"
)

// VueTemplatesFS exposes the built-in Vue emission templates so callers can
// reuse or extend them without importing the target package directly.
func VueTemplatesFS() fs.FS {
	return vue.TemplatesFS()
}

// ReactTemplatesFS exposes the built-in React emission templates.
func ReactTemplatesFS() fs.FS {
	return react.TemplatesFS()
}
