package recovery

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/contre95/soundgate/src/experiences"
	"github.com/contre95/soundgate/src/infra/storage"
	"github.com/contre95/soundgate/src/infra/store"
)

func newFixture(t *testing.T) (*Service, *experiences.Catalog, *storage.Storage, *store.JSONStore) {
	t.Helper()
	dir := t.TempDir()
	sidecar := store.NewJSONStore(filepath.Join(dir, "experiences.json"))
	stor := storage.New(dir, "experiences")
	if err := stor.EnsureDir(); err != nil {
		t.Fatal(err)
	}
	catalog := experiences.NewCatalog(sidecar)
	return NewService(catalog, stor, nil, nil), catalog, stor, sidecar
}

func TestRebuild_Deterministic(t *testing.T) {
	service, catalog, stor, sidecar := newFixture(t)
	for _, name := range []string{"song_two.wav", "Song One.mp3", "readme.pdf"} {
		if err := stor.SaveUpload(strings.NewReader("x"), name); err != nil {
			t.Fatal(err)
		}
	}

	if err := service.Rebuild(context.Background()); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}

	uploaded := catalog.Uploaded()
	if len(uploaded) != 2 {
		t.Fatalf("expected 2 recovered entries, got %d", len(uploaded))
	}

	first, second := uploaded[0], uploaded[1]
	if first.ID != "EXP-06" || second.ID != "EXP-07" {
		t.Errorf("ids should continue from the seed set, got %s, %s", first.ID, second.ID)
	}
	if first.Title != "Song One" || second.Title != "Song Two" {
		t.Errorf("unexpected titles %q, %q", first.Title, second.Title)
	}
	if first.File != "experiences/Song One.mp3" || second.File != "experiences/song_two.wav" {
		t.Errorf("unexpected files %q, %q", first.File, second.File)
	}
	if first.Lyrics != "experiences/Song One.txt" || second.Lyrics != "experiences/song_two.txt" {
		t.Errorf("unexpected lyrics %q, %q", first.Lyrics, second.Lyrics)
	}
	for _, e := range uploaded {
		if e.Author != "Recovered Author" || e.Voice != "Recovered Voice" {
			t.Errorf("expected recovery placeholders, got %+v", e)
		}
		if e.Vibe != "Recovered from disk" || e.Package != "EXP – Recovered Experiences" {
			t.Errorf("expected recovery markers, got %+v", e)
		}
	}

	saved := sidecar.Load()
	if len(saved) != 2 || saved[0].ID != "EXP-06" || saved[1].ID != "EXP-07" {
		t.Errorf("sidecar should hold exactly the recovered entries, got %v", saved)
	}
}

func TestRebuild_DiscardsStaleEntries(t *testing.T) {
	service, catalog, stor, _ := newFixture(t)

	// A stale uploaded entry whose file no longer exists.
	_, err := catalog.AppendNew(func(id string) (experiences.Entry, error) {
		return experiences.Entry{Title: "Stale", File: "experiences/gone.mp3"}, nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := stor.SaveUpload(strings.NewReader("x"), "real.mp3"); err != nil {
		t.Fatal(err)
	}

	if err := service.Rebuild(context.Background()); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}

	uploaded := catalog.Uploaded()
	if len(uploaded) != 1 || uploaded[0].Title != "Real" {
		t.Errorf("expected only the on-disk file to survive, got %v", uploaded)
	}
	if uploaded[0].ID != "EXP-06" {
		t.Errorf("numbering should restart after the seeds, got %s", uploaded[0].ID)
	}
}

func TestRebuild_MissingStorageDirPersistsEmptySet(t *testing.T) {
	dir := t.TempDir()
	sidecar := store.NewJSONStore(filepath.Join(dir, "experiences.json"))
	stor := storage.New(filepath.Join(dir, "missing"), "experiences")
	catalog := experiences.NewCatalog(sidecar)
	service := NewService(catalog, stor, nil, nil)

	if err := service.Rebuild(context.Background()); err != nil {
		t.Fatalf("rebuild failed: %v", err)
	}
	if len(catalog.Uploaded()) != 0 {
		t.Error("expected empty uploaded set")
	}
	if !sidecar.Exists() {
		t.Error("empty uploaded set should still be persisted")
	}
	if saved := sidecar.Load(); len(saved) != 0 {
		t.Errorf("expected empty sidecar, got %v", saved)
	}
}
