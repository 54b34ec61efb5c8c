package experiences

import (
	"path/filepath"
	"strings"
)

// Entry represents a single playable experience: one audio file plus its
// display metadata. File and Lyrics are paths relative to the public
// directory; Lyrics may be empty when no lyric sheet exists.
type Entry struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Author  string `json:"author"`
	Voice   string `json:"voice"`
	File    string `json:"file"`
	Lyrics  string `json:"lyrics"`
	Vibe    string `json:"vibe"`
	Package string `json:"package"`
}

// IDPrefix is the prefix shared by every experience identifier.
const IDPrefix = "EXP-"

// DefaultPackage is the display group for entries without a package.
const DefaultPackage = "Shared Experiences"

// allowedAudioExtensions is the upload whitelist, lower-case and without dots.
var allowedAudioExtensions = map[string]bool{
	"mp3": true,
	"wav": true,
	"ogg": true,
	"m4a": true,
}

// IsAllowedAudio reports whether a filename carries one of the accepted
// audio extensions. Files without an extension are rejected.
func IsAllowedAudio(filename string) bool {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return false
	}
	return allowedAudioExtensions[ext]
}

// HasLyrics reports whether the entry references a lyric sheet.
func (e Entry) HasLyrics() bool {
	return strings.TrimSpace(e.Lyrics) != ""
}

// PackageName returns the display group of the entry, falling back to the
// default group when the package field is empty.
func (e Entry) PackageName() string {
	if strings.TrimSpace(e.Package) == "" {
		return DefaultPackage
	}
	return e.Package
}
