package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	_ "github.com/bulatminnakhmetov/cloudmedia/docs"
	"github.com/bulatminnakhmetov/cloudmedia/internal/service/media"
	storageMedia "github.com/bulatminnakhmetov/cloudmedia/internal/storage/media"
)

func newTestRouter(swagger bool) http.Handler {
	provider := storageMedia.NewMemoryProvider("")
	logger := zerolog.Nop()

	return NewRouter(
		media.NewGateway(media.KindImage, provider, logger),
		media.NewGateway(media.KindVideo, provider, logger),
		Options{Logger: logger, AllowedOrigin: "http://localhost:5173", Swagger: swagger},
	)
}

func TestNewRouter_Health(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestRouter(false).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "ok", rr.Body.String())
}

func TestNewRouter_Swagger(t *testing.T) {
	rr := httptest.NewRecorder()
	newTestRouter(true).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "/api/CloudinaryApi/upload")
	assert.Contains(t, rr.Body.String(), "/api/Video/{publicId}")

	rr = httptest.NewRecorder()
	newTestRouter(false).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestNewRouter_MountsBothGroups(t *testing.T) {
	router := newTestRouter(false)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/CloudinaryApi/test", nil))
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/Video/folder/anything", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"resources":[]`)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/Unknown", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
