// Package artifact downloads and unpacks vendored toolchain bundles.
package artifact

import (
	"fmt"
	"io"
	"net/http"
	"os"
)

var downloadClient = http.Client{
	CheckRedirect: func(r *http.Request, via []*http.Request) error {
		r.URL.Opaque = r.URL.Path
		return nil
	},
}

// Download fetches url into path and returns the number of bytes
// written.
func Download(url string, path string) (int64, error) {
	file, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("create destination: %w", err)
	}
	defer file.Close()

	response, err := downloadClient.Get(url)
	if err != nil {
		return 0, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("fetch %s: unexpected status %s", url, response.Status)
	}

	size, err := io.Copy(file, response.Body)
	if err != nil {
		return size, fmt.Errorf("write %s: %w", path, err)
	}
	if response.ContentLength != -1 && size != response.ContentLength {
		return size, fmt.Errorf("fetch %s: truncated body (%d of %d bytes)", url, size, response.ContentLength)
	}
	return size, nil
}
