package storage

import (
	"path/filepath"
	"strings"
)

// SanitizeFilename reduces a client-supplied filename to something safe to
// keep as metadata and to use in a path: the base name only, with anything
// outside [A-Za-z0-9._-] replaced by an underscore and leading dots
// stripped so the result can never traverse out of the storage directory.
// An empty or fully-unsafe name becomes "file".
func SanitizeFilename(name string) string {
	// drop any directory part, whichever separator the client used
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	cleaned := strings.TrimLeft(b.String(), ".")
	if cleaned == "" || strings.Trim(cleaned, "._-") == "" {
		return "file"
	}
	return cleaned
}
