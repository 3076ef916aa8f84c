package media

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/bulatminnakhmetov/cloudmedia/internal/service/media"
)

// DefaultMaxUploadSize is used when a handler is built with a zero limit.
const DefaultMaxUploadSize = 100 << 20 // 100 MB

// multipart parts above this size are spooled to disk
const maxMemory = 32 << 20

// MediaGateway определяет интерфейс для работы с медиа одного типа
type MediaGateway interface {
	Upload(ctx context.Context, req media.UploadRequest) (*media.Asset, error)
	Update(ctx context.Context, publicID string, file media.UploadedFile) (*media.Asset, error)
	Delete(ctx context.Context, publicID string) error
	Get(ctx context.Context, publicID string) (*media.Asset, error)
	List(ctx context.Context, prefix string) ([]media.Asset, error)
}

var (
	errNoFile       = errors.New("no file uploaded")
	errFileTooLarge = errors.New("file too large")
)

// readFile parses the multipart body and returns the first non-empty file
// found under one of fields, in order. Empty parts are skipped. The returned cleanup removes spooled parts.
func readFile(w http.ResponseWriter, r *http.Request, maxSize int64, fields ...string) (media.UploadedFile, func(), error) {
	noop := func() {}

	r.Body = http.MaxBytesReader(w, r.Body, maxSize)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) || strings.Contains(err.Error(), "request body too large") {
			return nil, noop, errFileTooLarge
		}
		return nil, noop, errNoFile
	}
	cleanup := func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}

	for _, field := range fields {
		for _, header := range r.MultipartForm.File[field] {
			if header.Size > 0 {
				return &media.FileHeaderWrapper{FileHeader: header}, cleanup, nil
			}
		}
	}

	return nil, cleanup, errNoFile
}

// pathParam returns a URL parameter, unescaped so that identifiers like
// "uploads%2F<token>" address "uploads/<token>".
func pathParam(r *http.Request, name string) string {
	raw := chi.URLParam(r, name)
	if v, err := url.PathUnescape(raw); err == nil {
		raw = v
	}
	return strings.TrimSpace(raw)
}

// failureStatus maps a gateway error to a HTTP status.
func failureStatus(err error) (int, *media.Failure) {
	f := media.AsFailure(err)
	switch {
	case errors.Is(f, media.ErrInvalidInput):
		return http.StatusBadRequest, f
	case errors.Is(f, media.ErrMediaNotFound):
		return http.StatusNotFound, f
	case errors.Is(f, media.ErrProviderFault):
		return http.StatusInternalServerError, f
	}
	if f.StatusCode >= http.StatusBadRequest && f.StatusCode <= 599 {
		return f.StatusCode, f
	}
	return http.StatusBadRequest, f
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(text))
}
