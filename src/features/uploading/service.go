package uploading

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/contre95/soundgate/src/experiences"
	"github.com/contre95/soundgate/src/features/activity"
	"github.com/contre95/soundgate/src/features/metrics"
	"github.com/contre95/soundgate/src/infra/probe"
	"github.com/contre95/soundgate/src/infra/storage"
)

var (
	// ErrNoAudio is returned when the upload carries no audio file.
	ErrNoAudio = errors.New("no audio file provided")
	// ErrBadExtension is returned when the audio extension is not allowed.
	ErrBadExtension = errors.New("audio extension not allowed")
)

// File is one uploaded file, decoupled from the transport: a name and a way
// to open its content.
type File struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// Fields are the free-text metadata fields of the upload form. Empty values
// get derived defaults.
type Fields struct {
	Title   string
	Author  string
	Voice   string
	Package string
}

// Prober inspects a stored audio file for logging and metrics.
type Prober interface {
	Probe(path string) (probe.Info, error)
}

// Notifier announces catalog changes to an external channel.
type Notifier interface {
	Notify(message string)
}

// Service is the domain service for ingesting uploads.
type Service struct {
	catalog  *experiences.Catalog
	storage  *storage.Storage
	prober   Prober
	activity *activity.Service
	notifier Notifier
}

// NewService creates a new uploading service.
func NewService(catalog *experiences.Catalog, stor *storage.Storage, prober Prober, activityService *activity.Service, notifier Notifier) *Service {
	return &Service{
		catalog:  catalog,
		storage:  stor,
		prober:   prober,
		activity: activityService,
		notifier: notifier,
	}
}

// Ingest validates an upload, stores its files under the freshly allocated
// identifier and appends the resulting entry to the catalog. Lyrics uploads
// without a .txt extension are silently dropped. The audio filename only
// influences the stored extension and the derived metadata; the stored name
// itself is built from the identifier, so user-supplied names can neither
// collide nor escape the upload folder.
func (s *Service) Ingest(ctx context.Context, audio *File, lyrics *File, fields Fields) (experiences.Entry, error) {
	if audio == nil || audio.Name == "" {
		metrics.UploadsRejected.WithLabelValues("missing").Inc()
		return experiences.Entry{}, ErrNoAudio
	}
	if !experiences.IsAllowedAudio(audio.Name) {
		slog.Debug("Upload rejected by extension", "filename", audio.Name)
		metrics.UploadsRejected.WithLabelValues("extension").Inc()
		return experiences.Entry{}, ErrBadExtension
	}

	base, ext := splitExt(audio.Name)
	if ext == "" {
		ext = ".mp3"
	}

	if lyrics != nil {
		if _, lext := splitExt(lyrics.Name); lext != ".txt" {
			slog.Debug("Discarding lyrics upload with wrong extension", "filename", lyrics.Name)
			lyrics = nil
		}
	}

	entry, err := s.catalog.AppendNew(func(id string) (experiences.Entry, error) {
		audioName := storage.SanitizeFilename(id + ext)
		if err := s.saveFile(audio, audioName); err != nil {
			return experiences.Entry{}, fmt.Errorf("failed to store audio: %w", err)
		}

		return experiences.Entry{
			Title:   s.deriveTitle(fields.Title, base),
			Author:  defaultString(fields.Author, "Guest Author"),
			Voice:   defaultString(fields.Voice, "Guest Voice"),
			File:    s.storage.Rel(audioName),
			Lyrics:  s.resolveLyrics(id, lyrics, base),
			Vibe:    "Shared by the community",
			Package: s.derivePackage(fields.Package, fields.Author),
		}, nil
	})
	if err != nil {
		// Either the audio file never hit disk (ingest aborted) or only
		// persistence failed; in the latter case the entry is live in
		// memory and the next save reconciles the sidecar.
		if entry.ID == "" {
			return experiences.Entry{}, err
		}
		slog.Error("Failed to persist catalog after upload", "id", entry.ID, "error", err)
	}

	s.observe(ctx, entry, audio.Name)
	return entry, nil
}

func (s *Service) saveFile(f *File, name string) error {
	src, err := f.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	return s.storage.SaveUpload(src, name)
}

func (s *Service) deriveTitle(supplied, base string) string {
	if t := strings.TrimSpace(supplied); t != "" {
		return t
	}
	return readableTitle(base, "Untitled Experience")
}

// derivePackage picks the display package: the supplied one, an
// author-derived label when the author was explicitly given, or the shared
// default.
func (s *Service) derivePackage(suppliedPackage, suppliedAuthor string) string {
	if p := strings.TrimSpace(suppliedPackage); p != "" {
		return p
	}
	if a := strings.TrimSpace(suppliedAuthor); a != "" {
		return fmt.Sprintf("EXP – %s's Experiences", a)
	}
	return "EXP – Shared Experiences"
}

// resolveLyrics picks the lyrics path: an uploaded sheet stored under the
// entry id, a legacy sheet matching the original audio base name (raw form
// first, then sanitized), or nothing.
func (s *Service) resolveLyrics(id string, lyrics *File, base string) string {
	if lyrics != nil {
		name := storage.SanitizeFilename(id + ".txt")
		if err := s.saveFile(lyrics, name); err != nil {
			slog.Warn("Failed to store lyrics upload", "id", id, "error", err)
			return ""
		}
		return s.storage.Rel(name)
	}

	for _, candidate := range []string{base + ".txt", storage.SanitizeFilename(base + ".txt")} {
		if candidate != ".txt" && s.storage.Exists(candidate) {
			return s.storage.Rel(candidate)
		}
	}
	return ""
}

func (s *Service) observe(ctx context.Context, entry experiences.Entry, originalName string) {
	format := strings.TrimPrefix(strings.ToLower(splitExtRight(entry.File)), ".")
	if s.prober != nil {
		if info, err := s.prober.Probe(s.storage.Abs(entry.File)); err == nil {
			if info.FileType != "" {
				format = info.FileType
			}
			slog.Debug("Probed upload", "id", entry.ID, "fileType", info.FileType, "embeddedTitle", info.Title, "embeddedArtist", info.Artist)
		} else {
			slog.Debug("Upload probe failed", "id", entry.ID, "error", err)
		}
	}

	slog.Info("Experience ingested", "id", entry.ID, "title", entry.Title, "original", originalName, "file", entry.File)
	stats := s.catalog.Stats()
	metrics.UploadsAccepted.WithLabelValues(format).Inc()
	metrics.SetCatalogSize(stats.Seeds, stats.Uploaded)
	s.activity.Record(ctx, activity.KindUpload, entry.ID, entry.Title)
	if s.notifier != nil {
		s.notifier.Notify(fmt.Sprintf("New experience uploaded: %s (%s)", entry.Title, entry.ID))
	}
}

func splitExtRight(name string) string {
	if i := strings.LastIndex(name, "."); i >= 0 {
		return name[i:]
	}
	return ""
}

func defaultString(v, fallback string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return fallback
}
