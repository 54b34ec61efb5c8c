package uploading

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/contre95/soundgate/src/experiences"
	"github.com/contre95/soundgate/src/infra/storage"
	"github.com/contre95/soundgate/src/infra/store"
)

type fixture struct {
	service *Service
	catalog *experiences.Catalog
	storage *storage.Storage
	sidecar *store.JSONStore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dir := t.TempDir()
	sidecar := store.NewJSONStore(filepath.Join(dir, "experiences.json"))
	stor := storage.New(dir, "experiences")
	if err := stor.EnsureDir(); err != nil {
		t.Fatal(err)
	}
	catalog := experiences.NewCatalog(sidecar)
	return &fixture{
		service: NewService(catalog, stor, nil, nil, nil),
		catalog: catalog,
		storage: stor,
		sidecar: sidecar,
	}
}

func upload(name, content string) *File {
	return &File{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(content)), nil
		},
	}
}

func TestIngest_DerivesTitleFromFilename(t *testing.T) {
	f := newFixture(t)

	entry, err := f.service.Ingest(context.Background(), upload("these_days.mp3", "audio"), nil, Fields{})
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if entry.ID != "EXP-06" {
		t.Errorf("expected EXP-06, got %s", entry.ID)
	}
	if entry.Title != "These Days" {
		t.Errorf("expected title 'These Days', got %q", entry.Title)
	}
	if entry.Author != "Guest Author" || entry.Voice != "Guest Voice" {
		t.Errorf("expected guest placeholders, got %q/%q", entry.Author, entry.Voice)
	}
	if entry.File != "experiences/EXP-06.mp3" {
		t.Errorf("unexpected file path %q", entry.File)
	}
	if !f.storage.Exists("EXP-06.mp3") {
		t.Error("audio file was not stored")
	}
	if saved := f.sidecar.Load(); len(saved) != 1 || saved[0].ID != "EXP-06" {
		t.Errorf("sidecar should hold the new entry, got %v", saved)
	}
}

func TestIngest_RejectsMissingAudio(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Ingest(context.Background(), nil, nil, Fields{})
	if !errors.Is(err, ErrNoAudio) {
		t.Fatalf("expected ErrNoAudio, got %v", err)
	}
	if len(f.catalog.Uploaded()) != 0 {
		t.Error("catalog changed after rejection")
	}
}

func TestIngest_RejectsDisallowedExtension(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Ingest(context.Background(), upload("malware.exe", "nope"), nil, Fields{})
	if !errors.Is(err, ErrBadExtension) {
		t.Fatalf("expected ErrBadExtension, got %v", err)
	}
	if len(f.catalog.Uploaded()) != 0 {
		t.Error("catalog changed after rejection")
	}
	if f.sidecar.Exists() {
		t.Error("sidecar written after rejection")
	}
}

func TestIngest_ExplicitFieldsWin(t *testing.T) {
	f := newFixture(t)

	entry, err := f.service.Ingest(context.Background(), upload("raw_name.wav", "audio"), nil, Fields{
		Title:   "My Title",
		Author:  "Alice",
		Voice:   "Nova",
		Package: "Handpicked",
	})
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if entry.Title != "My Title" || entry.Author != "Alice" || entry.Voice != "Nova" || entry.Package != "Handpicked" {
		t.Errorf("explicit fields not honored: %+v", entry)
	}
	if entry.File != "experiences/EXP-06.wav" {
		t.Errorf("extension not preserved: %q", entry.File)
	}
}

func TestIngest_PackageDerivedFromAuthor(t *testing.T) {
	f := newFixture(t)

	entry, err := f.service.Ingest(context.Background(), upload("a.mp3", "x"), nil, Fields{Author: "Alice"})
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if entry.Package != "EXP – Alice's Experiences" {
		t.Errorf("unexpected package %q", entry.Package)
	}

	entry, err = f.service.Ingest(context.Background(), upload("b.mp3", "x"), nil, Fields{})
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if entry.Package != "EXP – Shared Experiences" {
		t.Errorf("unexpected package %q", entry.Package)
	}
}

func TestIngest_StoresLyricsUnderEntryID(t *testing.T) {
	f := newFixture(t)

	entry, err := f.service.Ingest(context.Background(), upload("song.mp3", "audio"), upload("words.txt", "la la"), Fields{})
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if entry.Lyrics != "experiences/EXP-06.txt" {
		t.Errorf("unexpected lyrics path %q", entry.Lyrics)
	}
	if !f.storage.Exists("EXP-06.txt") {
		t.Error("lyrics file was not stored")
	}
}

func TestIngest_DiscardsLyricsWithWrongExtension(t *testing.T) {
	f := newFixture(t)

	entry, err := f.service.Ingest(context.Background(), upload("song.mp3", "audio"), upload("words.pdf", "la la"), Fields{})
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if entry.Lyrics != "" {
		t.Errorf("lyrics should be empty, got %q", entry.Lyrics)
	}
	if f.storage.Exists("EXP-06.txt") {
		t.Error("discarded lyrics were stored anyway")
	}
}

func TestIngest_LegacyLyricsFallback(t *testing.T) {
	f := newFixture(t)
	if err := f.storage.SaveUpload(strings.NewReader("old words"), "song.txt"); err != nil {
		t.Fatal(err)
	}

	entry, err := f.service.Ingest(context.Background(), upload("song.mp3", "audio"), nil, Fields{})
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if entry.Lyrics != "experiences/song.txt" {
		t.Errorf("expected legacy lyrics reference, got %q", entry.Lyrics)
	}
}

func TestIngest_NoLegacyLyricsMeansEmpty(t *testing.T) {
	f := newFixture(t)

	entry, err := f.service.Ingest(context.Background(), upload("song.mp3", "audio"), nil, Fields{})
	if err != nil {
		t.Fatalf("ingest failed: %v", err)
	}
	if entry.Lyrics != "" {
		t.Errorf("expected empty lyrics, got %q", entry.Lyrics)
	}
}

func TestIngest_SequentialUploadsGetDistinctIDs(t *testing.T) {
	f := newFixture(t)

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		entry, err := f.service.Ingest(context.Background(), upload("track.mp3", "x"), nil, Fields{})
		if err != nil {
			t.Fatalf("ingest %d failed: %v", i, err)
		}
		if seen[entry.ID] {
			t.Fatalf("duplicate id %s", entry.ID)
		}
		seen[entry.ID] = true
	}
	if len(f.sidecar.Load()) != 10 {
		t.Errorf("expected 10 persisted entries, got %d", len(f.sidecar.Load()))
	}
}
