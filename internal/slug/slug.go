// Package slug derives stable catalog identifiers from filenames.
package slug

import "strings"

// FromFilename derives a catalog item id from a filename: the extension is
// stripped, the result lowercased, and spaces replaced with hyphens. Ids are
// unique within a catalog as long as filenames are unique.
func FromFilename(filename string) string {
	name := strings.TrimSuffix(filename, ".pdf")
	name = strings.ToLower(name)
	name = strings.ReplaceAll(name, " ", "-")
	return name
}

// SanitizeFilename creates a safe filename from a document title: filesystem
// metacharacters are removed, whitespace runs collapse to single hyphens, and
// the result is truncated to 120 characters.
func SanitizeFilename(title string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(title) {
		switch r {
		case '<', '>', ':', '"', '/', '\\', '|', '?', '*':
			// dropped
		case ' ', '\t', '\n', '\r':
			b.WriteByte('-')
		default:
			b.WriteRune(r)
		}
	}
	name := b.String()
	for strings.Contains(name, "--") {
		name = strings.ReplaceAll(name, "--", "-")
	}
	name = strings.Trim(name, "-")
	if len(name) > 120 {
		name = name[:120]
		name = strings.TrimRight(name, "-")
	}
	return name
}
