package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	_ "github.com/bulatminnakhmetov/cloudmedia/docs"
	"github.com/bulatminnakhmetov/cloudmedia/internal/config"
	"github.com/bulatminnakhmetov/cloudmedia/internal/logging"
	"github.com/bulatminnakhmetov/cloudmedia/internal/server"
	"github.com/bulatminnakhmetov/cloudmedia/internal/service/media"
	storageMedia "github.com/bulatminnakhmetov/cloudmedia/internal/storage/media"
)

// @title           Cloud Media API
// @version         1.0
// @description     Image and video management over a cloud media provider.
// @BasePath        /
func main() {
	// Загрузка конфигурации из переменных окружения
	cfg, err := config.Load()
	if err != nil {
		bootLogger := logging.New(os.Stderr, "cloudmedia", "info", "json")
		bootLogger.Fatal().Err(err).Msg("invalid configuration")
	}

	logger := logging.New(os.Stdout, "cloudmedia", cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Инициализация провайдера хранения
	provider, err := newProvider(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("driver", cfg.Driver).Msg("failed to initialize media provider")
	}
	logger.Info().Str("driver", cfg.Driver).Msg("media provider ready")

	// Инициализация шлюзов для изображений и видео
	images := media.NewGateway(media.KindImage, provider, logger)
	videos := media.NewGateway(media.KindVideo, provider, logger)

	handler := server.NewRouter(images, videos, server.Options{
		Logger:         logger,
		AllowedOrigin:  cfg.AllowedOrigin,
		RequestTimeout: cfg.RequestTimeout,
		MaxUploadSize:  cfg.MaxUploadSize,
		Swagger:        cfg.Swagger,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: handler,
	}

	g, gctx := errgroup.WithContext(ctx)

	// Запуск сервера
	g.Go(func() error {
		logger.Info().Str("port", cfg.ServerPort).Msg("server is starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrapf(err, "listen on port %s", cfg.ServerPort)
		}
		return nil
	})

	// Корректное завершение работы сервера
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal().Err(err).Msg("server stopped with error")
	}

	logger.Info().Msg("server gracefully stopped")
}

func newProvider(ctx context.Context, cfg *config.Config) (storageMedia.Provider, error) {
	switch cfg.Driver {
	case config.DriverCloudinary:
		return storageMedia.NewCloudinaryProvider(storageMedia.CloudinaryConfig{
			CloudName: cfg.Cloudinary.CloudName,
			APIKey:    cfg.Cloudinary.APIKey,
			APISecret: cfg.Cloudinary.APISecret,
			Timeout:   cfg.ProviderTimeout,
		})
	case config.DriverMinio:
		return storageMedia.NewMinioProvider(ctx, storageMedia.MinioConfig{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Bucket:    cfg.Minio.Bucket,
			UseSSL:    cfg.Minio.UseSSL,
			PublicURL: cfg.Minio.PublicURL,
			Timeout:   cfg.ProviderTimeout,
		})
	case config.DriverS3:
		return storageMedia.NewS3Provider(ctx, storageMedia.S3Config{
			Bucket:    cfg.S3.Bucket,
			Region:    cfg.S3.Region,
			AccessKey: cfg.S3.AccessKey,
			SecretKey: cfg.S3.SecretKey,
			Endpoint:  cfg.S3.Endpoint,
			PublicURL: cfg.S3.PublicURL,
			Timeout:   cfg.ProviderTimeout,
		})
	case config.DriverMemory:
		return storageMedia.NewMemoryProvider(cfg.MemoryBaseURL), nil
	}
	return nil, errors.Wrap(storageMedia.ErrUnknownDriver, cfg.Driver)
}
