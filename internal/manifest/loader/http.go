package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// get fetches a manifest over HTTP. Manifests ship as JSON or YAML, so the
// Accept header advertises both.
func (l *Loader) get(ctx context.Context, url string) ([]byte, error) {
	if l.http == nil {
		return nil, errors.New("manifest loader: http support disabled")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("manifest loader: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json, application/yaml, text/yaml")

	resp, err := l.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("manifest loader: fetch %q: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("manifest loader: fetch %q: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("manifest loader: read body: %w", err)
	}
	return data, nil
}
