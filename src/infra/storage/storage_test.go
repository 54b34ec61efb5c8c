package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s := New(t.TempDir(), "experiences")
	if err := s.EnsureDir(); err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"EXP-06.mp3":        "EXP-06.mp3",
		"these days.mp3":    "these_days.mp3",
		"../../etc/passwd":  "etc_passwd",
		"caña brava.txt":    "cana_brava.txt",
		"weird!!name??.ogg": "weird_name_.ogg",
	}
	for in, want := range cases {
		if got := SanitizeFilename(in); got != want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizeFilename_NeverKeepsSeparators(t *testing.T) {
	for _, in := range []string{"a/b/c.mp3", `a\b\c.mp3`, "/abs/path.mp3"} {
		got := SanitizeFilename(in)
		if strings.ContainsAny(got, `/\`) {
			t.Errorf("SanitizeFilename(%q) = %q still contains a separator", in, got)
		}
	}
}

func TestSaveUploadAndExists(t *testing.T) {
	s := newTestStorage(t)

	if err := s.SaveUpload(strings.NewReader("audio-bytes"), "EXP-06.mp3"); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if !s.Exists("EXP-06.mp3") {
		t.Error("saved file not found")
	}
	data, err := os.ReadFile(filepath.Join(s.Dir(), "EXP-06.mp3"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "audio-bytes" {
		t.Errorf("unexpected content: %q", data)
	}
}

func TestListAudio_SortedAndFiltered(t *testing.T) {
	s := newTestStorage(t)
	for _, name := range []string{"song_two.wav", "Song One.mp3", "notes.pdf", "cover.jpg"} {
		if err := s.SaveUpload(strings.NewReader("x"), name); err != nil {
			t.Fatal(err)
		}
	}

	names, err := s.ListAudio()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	want := []string{"Song One.mp3", "song_two.wav"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("expected %v, got %v", want, names)
			break
		}
	}
}

func TestListAudio_MissingDir(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "nope"), "experiences")
	if _, err := s.ListAudio(); !os.IsNotExist(err) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestRemove_SwallowsMissing(t *testing.T) {
	s := newTestStorage(t)
	if err := s.Remove("experiences/ghost.mp3"); err != nil {
		t.Errorf("expected missing file to be swallowed, got %v", err)
	}
	if err := s.Remove(""); err != nil {
		t.Errorf("expected empty path to be a no-op, got %v", err)
	}
}

func TestRelAndAbs(t *testing.T) {
	s := New("/srv/public", "experiences")
	if got := s.Rel("EXP-06.mp3"); got != "experiences/EXP-06.mp3" {
		t.Errorf("Rel = %q", got)
	}
	if got := s.Abs("experiences/EXP-06.mp3"); got != filepath.Join("/srv/public", "experiences", "EXP-06.mp3") {
		t.Errorf("Abs = %q", got)
	}
}
