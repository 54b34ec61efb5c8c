package uploading

import "testing"

func TestReadableTitle(t *testing.T) {
	cases := map[string]string{
		"these_days":    "These Days",
		"song-two":      "Song Two",
		"already Nice":  "Already Nice",
		"mixed_case-ok": "Mixed Case Ok",
	}
	for in, want := range cases {
		if got := readableTitle(in, "fallback"); got != want {
			t.Errorf("readableTitle(%q) = %q, want %q", in, got, want)
		}
	}
	if got := readableTitle("", "Untitled Experience"); got != "Untitled Experience" {
		t.Errorf("empty base should fall back, got %q", got)
	}
}

func TestSplitExt(t *testing.T) {
	base, ext := splitExt("these_days.MP3")
	if base != "these_days" || ext != ".mp3" {
		t.Errorf("got %q, %q", base, ext)
	}
	base, ext = splitExt("noext")
	if base != "noext" || ext != "" {
		t.Errorf("got %q, %q", base, ext)
	}
	base, ext = splitExt("two.dots.wav")
	if base != "two.dots" || ext != ".wav" {
		t.Errorf("got %q, %q", base, ext)
	}
}
