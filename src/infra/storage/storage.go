// Package storage handles the files backing uploaded experiences: the
// upload folder under the public directory where audio and lyric sheets
// live.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/contre95/soundgate/src/experiences"
	"github.com/gosimple/unidecode"
)

// Storage is rooted at the public directory; uploads live in a subfolder of
// it. Entry paths are kept relative to the public directory so they double
// as URL paths.
type Storage struct {
	publicDir string
	subdir    string
}

// New creates a Storage for the given public directory and upload subfolder.
func New(publicDir, subdir string) *Storage {
	return &Storage{publicDir: publicDir, subdir: subdir}
}

// EnsureDir creates the upload folder if it is missing.
func (s *Storage) EnsureDir() error {
	if err := os.MkdirAll(s.Dir(), 0755); err != nil {
		return fmt.Errorf("failed to create upload folder %s: %w", s.Dir(), err)
	}
	return nil
}

// Dir returns the absolute upload folder path.
func (s *Storage) Dir() string {
	return filepath.Join(s.publicDir, s.subdir)
}

// Rel returns the public-relative path for a file in the upload folder,
// always with forward slashes so it can be served as a URL.
func (s *Storage) Rel(name string) string {
	return path.Join(s.subdir, name)
}

// Abs resolves a public-relative path (as stored on an entry) to an
// absolute path.
func (s *Storage) Abs(rel string) string {
	return filepath.Join(s.publicDir, filepath.FromSlash(rel))
}

// SaveUpload streams an upload into the folder under the given name.
func (s *Storage) SaveUpload(src io.Reader, name string) error {
	dst, err := os.Create(filepath.Join(s.Dir(), name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// Exists reports whether a file with the given name is present in the
// upload folder.
func (s *Storage) Exists(name string) bool {
	_, err := os.Stat(filepath.Join(s.Dir(), name))
	return err == nil
}

// ListAudio returns the names of allowed audio files in the upload folder,
// sorted by name. A missing folder returns os.ErrNotExist.
func (s *Storage) ListAudio() ([]string, error) {
	dirents, err := os.ReadDir(s.Dir())
	if err != nil {
		return nil, err
	}
	var names []string
	for _, d := range dirents {
		if d.IsDir() || !experiences.IsAllowedAudio(d.Name()) {
			continue
		}
		names = append(names, d.Name())
	}
	sort.Strings(names)
	return names, nil
}

// Remove deletes a public-relative path, swallowing missing files. Only
// unexpected failures are reported.
func (s *Storage) Remove(rel string) error {
	if rel == "" {
		return nil
	}
	if err := os.Remove(s.Abs(rel)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", rel, err)
	}
	return nil
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]+`)

// SanitizeFilename flattens a filename to a safe ASCII form: transliterate,
// replace anything outside [A-Za-z0-9_.-] with underscores and trim the
// leftovers. Path separators never survive, so names derived from user
// input cannot escape the upload folder.
func SanitizeFilename(name string) string {
	name = unidecode.Unidecode(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._-")
	return name
}
