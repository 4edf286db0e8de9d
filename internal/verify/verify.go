// Package verify parses emitted sources before they reach disk, so a broken
// template surfaces as a generation failure instead of a downstream compile
// error.
package verify

import (
	"fmt"
	"path"
	"strings"

	esbuildApi "github.com/evanw/esbuild/pkg/api"

	"github.com/goliatone/go-wrapgen/pkg/generate"
)

var loadersByExt = map[string]esbuildApi.Loader{
	".ts":  esbuildApi.LoaderTS,
	".tsx": esbuildApi.LoaderTSX,
	".js":  esbuildApi.LoaderJS,
	".jsx": esbuildApi.LoaderJSX,
}

// Verifier syntax-checks generated files with esbuild. It transforms each
// file in isolation; imports are not resolved.
type Verifier struct{}

// New constructs a Verifier.
func New() *Verifier {
	return &Verifier{}
}

// Verify parses every file esbuild has a loader for and reports the first
// error. Files with other extensions pass through unchecked.
func (v *Verifier) Verify(files []generate.File) error {
	for _, file := range files {
		loader, ok := loadersByExt[strings.ToLower(path.Ext(file.Path))]
		if !ok {
			continue
		}

		result := esbuildApi.Transform(string(file.Contents), esbuildApi.TransformOptions{
			Loader: loader,
		})
		if len(result.Errors) > 0 {
			msg := result.Errors[0]
			line := 0
			if msg.Location != nil {
				line = msg.Location.Line
			}
			return fmt.Errorf("verify: %s:%d: %s", file.Path, line, msg.Text)
		}
	}
	return nil
}
