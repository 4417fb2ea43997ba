// Package media converts user-selected image files into self-contained
// data URIs so the product's image travels inside the slot file. Remote
// URLs pass through verbatim; the store never dereferences them.
package media

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"os"
	"strings"
)

// IsRemote reports whether the value is an http(s) URL rather than a local
// file path.
func IsRemote(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}

// IsDataURI reports whether the value is already an encoded payload.
func IsDataURI(value string) bool {
	return strings.HasPrefix(value, "data:")
}

// Ingest resolves an admin form image value into the string stored on the
// product. Data URIs and remote URLs are stored verbatim; anything else is
// treated as a local file path and encoded. No size, dimension, or content
// validation is performed beyond sniffing the MIME type.
func Ingest(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if IsDataURI(value) || IsRemote(value) {
		return value, nil
	}
	return EncodeFile(value)
}

// EncodeFile reads a local file and returns it as a
// data:<mime>;base64,<payload> URI. The MIME type is sniffed from the
// file's leading bytes.
func EncodeFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read image: %w", err)
	}
	mime := http.DetectContentType(data)
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
