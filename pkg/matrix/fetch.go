package matrix

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
)

var (
	errEmpty     = errors.New("empty matrix")
	errNotURL    = errors.New("not a URL")
	errBadScheme = errors.New("unsupported URL scheme")
)

func errRagged(want, got int) error {
	return fmt.Errorf("ragged rows: expected %d fields, got %d", want, got)
}

// Fetch retrieves the content behind a matrix URL. file:// URLs are read
// from disk, http:// and https:// URLs over HTTP. A single blocking call,
// no retries.
func Fetch(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" {
		return "", errNotURL
	}

	switch u.Scheme {
	case "file":
		raw, err := os.ReadFile(u.Path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", u.Path, err)
		}
		return string(raw), nil
	case "http", "https":
		resp, err := http.Get(rawURL)
		if err != nil {
			return "", fmt.Errorf("fetch %s: %w", rawURL, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("fetch %s: unexpected status %s", rawURL, resp.Status)
		}
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("fetch %s: %w", rawURL, err)
		}
		return string(raw), nil
	default:
		return "", fmt.Errorf("%w: %s", errBadScheme, u.Scheme)
	}
}

// IsURL reports whether the token looks like a fetchable URL.
func IsURL(token string) bool {
	return strings.HasPrefix(token, "file://") ||
		strings.HasPrefix(token, "http://") ||
		strings.HasPrefix(token, "https://")
}
