// Package store persists the uploaded subset of the catalog as a JSON
// sidecar file next to the audio storage.
package store

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"

	"github.com/contre95/soundgate/src/experiences"
)

// JSONStore reads and writes the sidecar document at a fixed path. The
// sidecar is a cache of derivable state, never the source of truth for
// seeds, so load failures of any kind degrade to an empty uploaded set.
type JSONStore struct {
	path string
}

// NewJSONStore creates a store for the given sidecar path.
func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

// Load returns the uploaded entries stored in the sidecar. A missing file,
// unreadable file, malformed JSON or a document that is not an array all
// yield an empty list.
func (s *JSONStore) Load() []experiences.Entry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Sidecar unreadable, treating as empty", "path", s.path, "error", err)
		}
		return []experiences.Entry{}
	}

	var entries []experiences.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.Warn("Sidecar malformed, treating as empty", "path", s.path, "error", err)
		return []experiences.Entry{}
	}
	if entries == nil {
		return []experiences.Entry{}
	}
	return entries
}

// Save overwrites the sidecar with the given entries as indented JSON.
// Non-ASCII text is written as-is.
func (s *JSONStore) Save(entries []experiences.Entry) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(entries); err != nil {
		slog.Error("Failed to encode sidecar", "path", s.path, "error", err)
		return err
	}
	if err := os.WriteFile(s.path, buf.Bytes(), 0644); err != nil {
		slog.Error("Failed to write sidecar", "path", s.path, "error", err)
		return err
	}
	return nil
}

// Exists reports whether the sidecar file is present on disk.
func (s *JSONStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}
