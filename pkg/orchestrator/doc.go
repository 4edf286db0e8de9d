// Package orchestrator coordinates the full pipeline from component manifest
// to generated wrapper modules on disk: resolve the document, parse the
// descriptors, run each requested target, optionally verify the emitted
// sources, and hand the files to a sink.
package orchestrator
