// Package pathutil sanitizes untrusted slash-separated archive paths.
package pathutil

import (
	"path"
	"strings"
)

// Sanitize derives a safe relative path from an untrusted archive entry
// name. It reports ok=false when the name must not be joined to an output
// directory: absolute paths, drive-rooted names, parent traversal, and names
// that clean away to nothing. The result is slash-separated, cleaned, and
// strictly relative.
func Sanitize(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	// Hostile archives use either separator.
	name = strings.ReplaceAll(name, `\`, "/")
	if strings.HasPrefix(name, "/") {
		return "", false
	}
	// Drive-rooted names like "C:/evil" survive path.Clean untouched.
	if i := strings.IndexByte(name, ':'); i >= 0 && !strings.Contains(name[:i], "/") {
		return "", false
	}
	cleaned := path.Clean(name)
	if cleaned == "." || cleaned == ".." || strings.HasPrefix(cleaned, "../") {
		return "", false
	}
	return cleaned, true
}
