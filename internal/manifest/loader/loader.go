// Package loader resolves component manifests from the filesystem, an fs.FS,
// or HTTP endpoints.
package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"

	pkgmanifest "github.com/goliatone/go-wrapgen/pkg/manifest"
)

// Loader resolves manifest sources by kind. Construct it through New so the
// HTTP policy is settled up front.
type Loader struct {
	files fs.FS
	http  *http.Client
}

var _ pkgmanifest.Loader = (*Loader)(nil)

// New builds a Loader from pre-resolved options. An injected HTTP client is
// cloned so later mutation by the caller cannot change loader behaviour; with
// no client and the fallback disabled, every URL source fails.
func New(options pkgmanifest.LoaderOptions) pkgmanifest.Loader {
	return &Loader{
		files: options.FileSystem,
		http:  httpClient(options),
	}
}

func httpClient(options pkgmanifest.LoaderOptions) *http.Client {
	switch {
	case options.HTTPClient != nil:
		clone := *options.HTTPClient
		if clone.Timeout == 0 {
			clone.Timeout = options.RequestTimeout
		}
		return &clone
	case options.AllowHTTPFallback:
		return &http.Client{Timeout: options.RequestTimeout}
	default:
		return nil
	}
}

// Load fetches the manifest bytes behind src and wraps them in a Document.
func (l *Loader) Load(ctx context.Context, src pkgmanifest.Source) (pkgmanifest.Document, error) {
	if src == nil {
		return pkgmanifest.Document{}, errors.New("manifest loader: source is nil")
	}
	if err := ctx.Err(); err != nil {
		return pkgmanifest.Document{}, err
	}

	data, err := l.fetch(ctx, src)
	if err != nil {
		return pkgmanifest.Document{}, err
	}
	return pkgmanifest.NewDocument(src, data)
}

func (l *Loader) fetch(ctx context.Context, src pkgmanifest.Source) ([]byte, error) {
	location := src.Location()
	switch src.Kind() {
	case pkgmanifest.SourceKindFile:
		return readFile(location)
	case pkgmanifest.SourceKindFS:
		return l.readFS(location)
	case pkgmanifest.SourceKindURL:
		return l.get(ctx, location)
	default:
		return nil, fmt.Errorf("manifest loader: unsupported source kind %q", src.Kind())
	}
}

func readFile(path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("manifest loader: file path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest loader: read %q: %w", path, err)
	}
	return data, nil
}

func (l *Loader) readFS(name string) ([]byte, error) {
	if l.files == nil {
		return nil, errors.New("manifest loader: filesystem is not configured")
	}
	if name == "" {
		return nil, errors.New("manifest loader: fs path is required")
	}
	data, err := fs.ReadFile(l.files, name)
	if err != nil {
		return nil, fmt.Errorf("manifest loader: read fs %q: %w", name, err)
	}
	return data, nil
}
