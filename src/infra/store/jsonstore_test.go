package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/contre95/soundgate/src/experiences"
)

func TestLoad_MissingFileYieldsEmpty(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "experiences.json"))
	if entries := s.Load(); len(entries) != 0 {
		t.Errorf("expected empty, got %v", entries)
	}
	if s.Exists() {
		t.Error("missing sidecar reported as existing")
	}
}

func TestLoad_MalformedJSONYieldsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiences.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	s := NewJSONStore(path)
	if entries := s.Load(); len(entries) != 0 {
		t.Errorf("expected empty, got %v", entries)
	}
}

func TestLoad_NonArrayYieldsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiences.json")
	if err := os.WriteFile(path, []byte(`{"id": "EXP-06"}`), 0644); err != nil {
		t.Fatal(err)
	}
	s := NewJSONStore(path)
	if entries := s.Load(); len(entries) != 0 {
		t.Errorf("expected empty, got %v", entries)
	}
}

func TestSaveLoad_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiences.json")
	s := NewJSONStore(path)

	entries := []experiences.Entry{
		{
			ID:      "EXP-06",
			Title:   "Café Nights",
			Author:  "Guest Author",
			Voice:   "Guest Voice",
			File:    "experiences/EXP-06.mp3",
			Lyrics:  "",
			Vibe:    "Shared by the community",
			Package: "EXP – Shared Experiences",
		},
		{
			ID:      "EXP-07",
			Title:   "Second",
			Author:  "Alice",
			Voice:   "V",
			File:    "experiences/EXP-07.wav",
			Lyrics:  "experiences/EXP-07.txt",
			Vibe:    "Shared by the community",
			Package: "Alpha",
		},
	}
	if err := s.Save(entries); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !s.Exists() {
		t.Error("sidecar missing after save")
	}

	loaded := s.Load()
	if len(loaded) != len(entries) {
		t.Fatalf("expected %d entries, got %d", len(entries), len(loaded))
	}
	for i := range entries {
		if loaded[i] != entries[i] {
			t.Errorf("entry %d mismatch: got %+v, want %+v", i, loaded[i], entries[i])
		}
	}
}

func TestSave_WritesIndentedUnescapedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "experiences.json")
	s := NewJSONStore(path)

	err := s.Save([]experiences.Entry{{ID: "EXP-06", Package: "EXP – Café"}})
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.Contains(text, "\n  ") {
		t.Error("sidecar is not indented")
	}
	if !strings.Contains(text, "EXP – Café") {
		t.Error("non-ASCII text was escaped")
	}
}
