// Package probe reads embedded tags from stored audio files. The results
// feed logs and metrics only; catalog metadata always comes from the upload
// form and the filename.
package probe

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dhowden/tag"
)

// Info is what could be read from a file's embedded tags.
type Info struct {
	FileType string
	Format   string
	Title    string
	Artist   string
}

// AudioProbe inspects audio files with dhowden/tag.
type AudioProbe struct{}

// NewAudioProbe creates a new probe.
func NewAudioProbe() *AudioProbe {
	return &AudioProbe{}
}

// Probe reads the embedded tags of the file at path. Files without readable
// tags still yield the extension as file type.
func (p *AudioProbe) Probe(path string) (Info, error) {
	info := Info{
		FileType: strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."),
	}

	f, err := os.Open(path)
	if err != nil {
		return info, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		// Plenty of uploads carry no tags at all; that's not a failure
		// worth surfacing past the caller's debug log.
		return info, nil
	}
	info.FileType = strings.ToLower(string(m.FileType()))
	info.Format = string(m.Format())
	info.Title = m.Title()
	info.Artist = m.Artist()
	return info, nil
}
