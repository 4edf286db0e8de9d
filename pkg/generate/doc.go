// Package generate defines the target contract for wrapper emission: a
// Target turns component descriptors into framework source files. The package
// also carries the pieces every target shares, including descriptor
// preparation, identifier naming, model binding resolution, and doc
// sanitization. Concrete targets live under pkg/targets.
package generate
