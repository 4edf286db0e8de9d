package orchestrator

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Sink persists generated files.
type Sink interface {
	// WriteFile stores contents at path, creating parent directories as
	// needed. It reports whether the write changed what was stored before.
	WriteFile(path string, contents []byte) (bool, error)
}

type osSink struct{}

// NewOSSink returns the default sink writing through the OS. Writes that
// would rewrite identical content are skipped, keeping file mtimes stable for
// downstream build tools.
func NewOSSink() Sink {
	return osSink{}
}

func (osSink) WriteFile(path string, contents []byte) (bool, error) {
	if existing, err := os.ReadFile(path); err == nil && bytes.Equal(existing, contents) {
		return false, nil
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, fmt.Errorf("orchestrator: create output dir %q: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		return false, fmt.Errorf("orchestrator: write file %q: %w", path, err)
	}
	return true, nil
}
