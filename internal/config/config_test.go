package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MemoryDefaults(t *testing.T) {
	t.Setenv("MEDIA_PROVIDER", "memory")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "http://localhost:5173", cfg.AllowedOrigin)
	assert.Equal(t, int64(100<<20), cfg.MaxUploadSize)
	assert.Equal(t, 60*time.Second, cfg.ProviderTimeout)
	assert.True(t, cfg.Swagger)
	assert.Equal(t, DriverMemory, cfg.Driver)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MEDIA_PROVIDER", "Cloudinary")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("UPLOAD_MAX_MB", "5")
	t.Setenv("REQUEST_TIMEOUT", "2m")
	t.Setenv("SWAGGER_ENABLED", "false")
	t.Setenv("PROVIDER_TIMEOUT", "not-a-duration")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, DriverCloudinary, cfg.Driver)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, int64(5<<20), cfg.MaxUploadSize)
	assert.Equal(t, 2*time.Minute, cfg.RequestTimeout)
	assert.False(t, cfg.Swagger)
	assert.Equal(t, 60*time.Second, cfg.ProviderTimeout)
	assert.Equal(t, "demo", cfg.Cloudinary.CloudName)
}

func TestLoad_DotEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MEDIA_PROVIDER=memory\nMEMORY_BASE_URL=https://cdn.test\n"), 0o600))

	// godotenv не перезаписывает уже заданные переменные
	t.Setenv("MEDIA_PROVIDER", "")
	os.Unsetenv("MEDIA_PROVIDER")
	t.Setenv("MEMORY_BASE_URL", "")
	os.Unsetenv("MEMORY_BASE_URL")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Driver)
	assert.Equal(t, "https://cdn.test", cfg.MemoryBaseURL)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"cloudinary without credentials", Config{Driver: DriverCloudinary, MaxUploadSize: 1}, true},
		{"cloudinary", Config{Driver: DriverCloudinary, MaxUploadSize: 1, Cloudinary: CloudinaryConfig{
			CloudName: "demo", APIKey: "k", APISecret: "s",
		}}, false},
		{"minio without credentials", Config{Driver: DriverMinio, MaxUploadSize: 1}, true},
		{"s3 without credentials", Config{Driver: DriverS3, MaxUploadSize: 1}, true},
		{"s3", Config{Driver: DriverS3, MaxUploadSize: 1, S3: S3Config{AccessKey: "a", SecretKey: "b"}}, false},
		{"memory", Config{Driver: DriverMemory, MaxUploadSize: 1}, false},
		{"unknown driver", Config{Driver: "ftp", MaxUploadSize: 1}, true},
		{"zero upload size", Config{Driver: DriverMemory}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
