package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	mediaHandler "github.com/bulatminnakhmetov/cloudmedia/internal/handler/media"
	"github.com/bulatminnakhmetov/cloudmedia/internal/logging"
)

// Options configures the HTTP router.
type Options struct {
	Logger         zerolog.Logger
	AllowedOrigin  string
	RequestTimeout time.Duration
	MaxUploadSize  int64
	// Swagger mounts the API docs under /swagger/.
	Swagger bool
}

// NewRouter wires the image and video route groups.
func NewRouter(images, videos mediaHandler.MediaGateway, opts Options) http.Handler {
	r := chi.NewRouter()

	// Базовые middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.Middleware(opts.Logger))
	r.Use(middleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	// CORS: один разрешенный клиент, с credentials
	if opts.AllowedOrigin != "" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{opts.AllowedOrigin},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.Swagger {
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}

	imageHandler := mediaHandler.NewImageHandler(images, opts.MaxUploadSize)
	videoHandler := mediaHandler.NewVideoHandler(videos, opts.MaxUploadSize)

	r.Route("/api/CloudinaryApi", imageHandler.Routes)
	r.Route("/api/Video", videoHandler.Routes)

	return r
}
