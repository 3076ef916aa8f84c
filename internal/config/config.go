package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Provider drivers
const (
	DriverCloudinary = "cloudinary"
	DriverMinio      = "minio"
	DriverS3         = "s3"
	DriverMemory     = "memory"
)

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
}

type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string
}

type S3Config struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
	PublicURL string
}

type Config struct {
	ServerPort      string
	AllowedOrigin   string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
	MaxUploadSize   int64
	Swagger         bool

	LogLevel  string
	LogFormat string

	Driver          string
	ProviderTimeout time.Duration
	Cloudinary      CloudinaryConfig
	Minio           MinioConfig
	S3              S3Config
	MemoryBaseURL   string
}

// Load reads the configuration from the environment. A .env file in the
// working directory (or the files given) is loaded first when present;
// real environment variables win over it.
func Load(files ...string) (*Config, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return nil, errors.Wrap(err, "load .env")
	}

	cfg := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		AllowedOrigin:   getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:5173"),
		RequestTimeout:  getEnvAsDuration("REQUEST_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		MaxUploadSize:   int64(getEnvAsInt("UPLOAD_MAX_MB", 100)) << 20,
		Swagger:         getEnvAsBool("SWAGGER_ENABLED", true),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		Driver:          strings.ToLower(getEnv("MEDIA_PROVIDER", DriverCloudinary)),
		ProviderTimeout: getEnvAsDuration("PROVIDER_TIMEOUT", 60*time.Second),
		Cloudinary: CloudinaryConfig{
			CloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
			APIKey:    getEnv("CLOUDINARY_API_KEY", ""),
			APISecret: getEnv("CLOUDINARY_API_SECRET", ""),
		},
		Minio: MinioConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", ""),
			SecretKey: getEnv("MINIO_SECRET_KEY", ""),
			Bucket:    getEnv("MINIO_BUCKET", "media"),
			UseSSL:    getEnvAsBool("MINIO_USE_SSL", false),
			PublicURL: getEnv("MINIO_PUBLIC_URL", ""),
		},
		S3: S3Config{
			Bucket:    getEnv("S3_BUCKET", "media"),
			Region:    getEnv("S3_REGION", "us-east-1"),
			AccessKey: getEnv("S3_ACCESS_KEY", ""),
			SecretKey: getEnv("S3_SECRET_KEY", ""),
			Endpoint:  getEnv("S3_ENDPOINT", ""),
			PublicURL: getEnv("S3_PUBLIC_URL", ""),
		},
		MemoryBaseURL: getEnv("MEMORY_BASE_URL", "http://localhost:8080/media"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected driver has its credentials.
func (c *Config) Validate() error {
	switch c.Driver {
	case DriverCloudinary:
		var missing []string
		if c.Cloudinary.CloudName == "" {
			missing = append(missing, "CLOUDINARY_CLOUD_NAME")
		}
		if c.Cloudinary.APIKey == "" {
			missing = append(missing, "CLOUDINARY_API_KEY")
		}
		if c.Cloudinary.APISecret == "" {
			missing = append(missing, "CLOUDINARY_API_SECRET")
		}
		if len(missing) > 0 {
			return fmt.Errorf("missing cloudinary credentials: %s", strings.Join(missing, ", "))
		}
	case DriverMinio:
		if c.Minio.AccessKey == "" || c.Minio.SecretKey == "" {
			return errors.New("missing minio credentials: MINIO_ACCESS_KEY, MINIO_SECRET_KEY")
		}
	case DriverS3:
		if c.S3.AccessKey == "" || c.S3.SecretKey == "" {
			return errors.New("missing s3 credentials: S3_ACCESS_KEY, S3_SECRET_KEY")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown MEDIA_PROVIDER %q", c.Driver)
	}

	if c.MaxUploadSize <= 0 {
		return errors.New("UPLOAD_MAX_MB must be positive")
	}
	return nil
}

// Вспомогательные функции для работы с переменными окружения
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return strings.TrimSpace(value)
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(strings.TrimSpace(value)); err == nil {
			return d
		}
	}
	return fallback
}
