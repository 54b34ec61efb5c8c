package uploading

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und)

// readableTitle derives a display title from a filename base: underscores
// and hyphens become spaces, words get title-cased. An empty base yields
// the given fallback.
func readableTitle(base, fallback string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return fallback
	}
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	return titleCaser.String(base)
}

// splitExt splits a filename into base and extension (dot included,
// lower-cased). "these_days.MP3" -> ("these_days", ".mp3").
func splitExt(name string) (base, ext string) {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[:i], strings.ToLower(name[i:])
	}
	return name, ""
}
