package uploading

import (
	"io"
	"log/slog"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
)

// Handler is the handler for the uploading feature.
type Handler struct {
	service *Service
}

// NewHandler creates a new handler for the uploading feature.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Upload ingests a new experience from a multipart form. Every outcome ends
// back on the listing page; rejections simply don't add an entry.
func (h *Handler) Upload(c *fiber.Ctx) error {
	audio := formFile(c, "file")
	lyrics := formFile(c, "lyrics_file")
	fields := Fields{
		Title:   c.FormValue("title"),
		Author:  c.FormValue("author"),
		Voice:   c.FormValue("voice"),
		Package: c.FormValue("package"),
	}

	entry, err := h.service.Ingest(c.Context(), audio, lyrics, fields)
	switch err {
	case nil:
		slog.Debug("Upload accepted", "id", entry.ID)
	case ErrNoAudio, ErrBadExtension:
		slog.Debug("Upload rejected", "error", err)
	default:
		slog.Error("Upload failed", "error", err)
	}
	return c.Redirect("/")
}

// formFile adapts a multipart file header into the transport-agnostic File
// the service consumes. Absent or empty-named parts yield nil.
func formFile(c *fiber.Ctx, key string) *File {
	fh, err := c.FormFile(key)
	if err != nil || fh == nil || fh.Filename == "" {
		return nil
	}
	return &File{
		Name: fh.Filename,
		Open: func() (io.ReadCloser, error) {
			return openHeader(fh)
		},
	}
}

func openHeader(fh *multipart.FileHeader) (io.ReadCloser, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	return f, nil
}
