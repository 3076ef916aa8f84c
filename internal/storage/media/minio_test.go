package media

import (
	"context"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
)

func TestMetaValue(t *testing.T) {
	meta := map[string]string{
		"X-Amz-Meta-Format": "png",
		"Folder":            "pets",
	}

	assert.Equal(t, "png", metaValue(meta, metaFormat))
	assert.Equal(t, "pets", metaValue(meta, metaFolder))
	assert.Equal(t, "", metaValue(meta, "missing"))
	assert.Equal(t, "", metaValue(nil, metaFormat))
}

func TestObjectKey(t *testing.T) {
	assert.Equal(t, "video/default_videos/clip", objectKey(ResourceVideo, "default_videos/clip"))
}

func TestMinioProvider_AssetFromObject(t *testing.T) {
	p := &MinioProvider{bucket: "media", baseURL: "http://localhost:9000"}
	modified := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	asset := p.assetFromObject(ResourceImage, minio.ObjectInfo{
		Key:          "image/pets/cat_1",
		Size:         42,
		LastModified: modified,
		UserMetadata: map[string]string{"X-Amz-Meta-Format": "jpg"},
	})

	assert.Equal(t, "pets/cat_1", asset.PublicID)
	assert.Equal(t, "pets", asset.Folder)
	assert.Equal(t, "jpg", asset.Format)
	assert.Equal(t, DeliveryUpload, asset.Type)
	assert.Equal(t, "http://localhost:9000/media/image/pets/cat_1", asset.SecureURL)
	assert.Equal(t, 42, asset.Bytes)
	assert.Equal(t, int(modified.Unix()), asset.Version)
}

func TestNewMinioProvider_RequiresCredentials(t *testing.T) {
	_, err := NewMinioProvider(context.Background(), MinioConfig{Endpoint: "localhost:9000", Bucket: "media"})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
