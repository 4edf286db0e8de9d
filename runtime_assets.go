package wrapgen

import (
	"io/fs"

	"github.com/goliatone/go-wrapgen/pkg/targets/react"
	"github.com/goliatone/go-wrapgen/pkg/targets/vue"
)

// VueRuntimeFS exposes the Vue runtime support sources (createWrapper and its
// helpers) that the vue target copies next to every generated proxies module.
// Applications can inspect or serve them without running a generation.
func VueRuntimeFS() fs.FS {
	return vue.AssetsFS()
}

// ReactRuntimeFS exposes the React runtime support sources shipped by the
// react target.
func ReactRuntimeFS() fs.FS {
	return react.AssetsFS()
}
