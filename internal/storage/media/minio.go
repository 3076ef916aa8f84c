package media

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

const (
	metaFormat = "format"
	metaFolder = "folder"
)

// MinioConfig describes an S3-compatible bucket used in place of Cloudinary.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicURL overrides the scheme://host used in delivery URLs.
	PublicURL string
	Timeout   time.Duration
}

// MinioProvider stores assets as objects under "{resource_type}/{public_id}".
type MinioProvider struct {
	client  *minio.Client
	bucket  string
	baseURL string
	timeout time.Duration
}

// NewMinioProvider connects to the endpoint and creates the bucket if needed.
func NewMinioProvider(ctx context.Context, cfg MinioConfig) (*MinioProvider, error) {
	if cfg.Endpoint == "" || cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, ErrInvalidConfig
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "create minio client")
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, errors.Wrapf(err, "check bucket %q", cfg.Bucket)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, errors.Wrapf(err, "create bucket %q", cfg.Bucket)
		}
	}

	baseURL := cfg.PublicURL
	if baseURL == "" {
		scheme := "https"
		if !cfg.UseSSL {
			scheme = "http"
		}
		baseURL = scheme + "://" + cfg.Endpoint
	}

	return &MinioProvider{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: cfg.Timeout,
	}, nil
}

func (p *MinioProvider) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.timeout)
}

func objectKey(resourceType, publicID string) string {
	return resourceType + "/" + publicID
}

func (p *MinioProvider) Upload(ctx context.Context, params UploadParams) (*UploadResult, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	publicID := joinPublicID(params.Folder, params.PublicID)
	key := objectKey(params.ResourceType, publicID)

	if !params.Overwrite {
		info, err := p.client.StatObject(ctx, p.bucket, key, minio.StatObjectOptions{})
		if err == nil {
			return &UploadResult{StatusCode: http.StatusOK, Asset: p.assetFromObject(params.ResourceType, info)}, nil
		}
		if resp := minio.ToErrorResponse(err); resp.Code != "NoSuchKey" {
			if resp.StatusCode == 0 {
				return nil, errors.Wrapf(err, "minio stat %q", key)
			}
			return &UploadResult{StatusCode: resp.StatusCode, Error: resp.Message}, nil
		}
	}

	folder := strings.Trim(params.Folder, "/")
	if folder == "" {
		folder = folderOf(publicID)
	}
	format := detectFormat(params.Filename, nil)

	size := params.Size
	if size <= 0 {
		size = -1
	}

	info, err := p.client.PutObject(ctx, p.bucket, key, params.File, size, minio.PutObjectOptions{
		ContentType: contentTypeFor(format),
		UserMetadata: map[string]string{
			metaFormat: format,
			metaFolder: folder,
		},
	})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.StatusCode == 0 {
			return nil, errors.Wrapf(err, "minio put %q", key)
		}
		return &UploadResult{StatusCode: resp.StatusCode, Error: resp.Message}, nil
	}

	modified := info.LastModified
	if modified.IsZero() {
		modified = time.Now().UTC()
	}

	return &UploadResult{
		StatusCode: http.StatusOK,
		Asset: Asset{
			PublicID:     publicID,
			Folder:       folder,
			Format:       format,
			ResourceType: params.ResourceType,
			Type:         DeliveryUpload,
			URL:          p.objectURL(key),
			SecureURL:    p.objectURL(key),
			Bytes:        int(info.Size),
			Version:      int(modified.Unix()),
			CreatedAt:    modified,
		},
	}, nil
}

func (p *MinioProvider) Destroy(ctx context.Context, params DestroyParams) (*DestroyResult, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	key := objectKey(params.ResourceType, params.PublicID)
	if _, err := p.client.StatObject(ctx, p.bucket, key, minio.StatObjectOptions{}); err != nil {
		resp := minio.ToErrorResponse(err)
		switch {
		case resp.Code == "NoSuchKey":
			return &DestroyResult{StatusCode: http.StatusOK, Result: "not found"}, nil
		case resp.StatusCode == 0:
			return nil, errors.Wrapf(err, "minio stat %q", key)
		default:
			return &DestroyResult{StatusCode: resp.StatusCode, Result: "error", Error: resp.Message}, nil
		}
	}

	if err := p.client.RemoveObject(ctx, p.bucket, key, minio.RemoveObjectOptions{}); err != nil {
		resp := minio.ToErrorResponse(err)
		if resp.StatusCode == 0 {
			return nil, errors.Wrapf(err, "minio remove %q", key)
		}
		return &DestroyResult{StatusCode: resp.StatusCode, Result: "error", Error: resp.Message}, nil
	}

	return &DestroyResult{StatusCode: http.StatusOK, Result: "ok"}, nil
}

func (p *MinioProvider) Asset(ctx context.Context, params AssetParams) (*AssetResult, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	key := objectKey(params.ResourceType, params.PublicID)
	info, err := p.client.StatObject(ctx, p.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		resp := minio.ToErrorResponse(err)
		switch {
		case resp.Code == "NoSuchKey":
			return &AssetResult{StatusCode: http.StatusNotFound, Error: "Resource not found - " + params.PublicID}, nil
		case resp.StatusCode == 0:
			return nil, errors.Wrapf(err, "minio stat %q", key)
		default:
			return &AssetResult{StatusCode: resp.StatusCode, Error: resp.Message}, nil
		}
	}

	return &AssetResult{StatusCode: http.StatusOK, Asset: p.assetFromObject(params.ResourceType, info)}, nil
}

func (p *MinioProvider) Assets(ctx context.Context, params AssetsParams) (*AssetsResult, error) {
	ctx, cancel := p.withTimeout(ctx)
	// cancel также останавливает горутину листинга, если выходим раньше
	defer cancel()

	objects := p.client.ListObjects(ctx, p.bucket, minio.ListObjectsOptions{
		Prefix:       objectKey(params.ResourceType, params.Prefix),
		Recursive:    true,
		WithMetadata: true,
	})

	result := &AssetsResult{StatusCode: http.StatusOK, Assets: make([]Asset, 0)}
	for obj := range objects {
		if obj.Err != nil {
			resp := minio.ToErrorResponse(obj.Err)
			if resp.StatusCode == 0 {
				return nil, errors.Wrapf(obj.Err, "minio list %q", params.Prefix)
			}
			return &AssetsResult{StatusCode: resp.StatusCode, Error: resp.Message}, nil
		}
		result.Assets = append(result.Assets, p.assetFromObject(params.ResourceType, obj))
		if params.MaxResults > 0 && len(result.Assets) >= params.MaxResults {
			break
		}
	}

	return result, nil
}

func (p *MinioProvider) objectURL(key string) string {
	return fmt.Sprintf("%s/%s/%s", p.baseURL, p.bucket, key)
}

func (p *MinioProvider) assetFromObject(resourceType string, info minio.ObjectInfo) Asset {
	publicID := strings.TrimPrefix(info.Key, resourceType+"/")
	folder := metaValue(info.UserMetadata, metaFolder)
	if folder == "" {
		folder = folderOf(publicID)
	}

	return Asset{
		PublicID:     publicID,
		Folder:       folder,
		Format:       metaValue(info.UserMetadata, metaFormat),
		ResourceType: resourceType,
		Type:         DeliveryUpload,
		URL:          p.objectURL(info.Key),
		SecureURL:    p.objectURL(info.Key),
		Bytes:        int(info.Size),
		Version:      int(info.LastModified.Unix()),
		CreatedAt:    info.LastModified,
	}
}

// metaValue looks up user metadata regardless of how the server spelled
// the key ("format", "Format" or "X-Amz-Meta-Format").
func metaValue(meta map[string]string, name string) string {
	for k, v := range meta {
		k = strings.TrimPrefix(strings.ToLower(k), "x-amz-meta-")
		if k == name {
			return v
		}
	}
	return ""
}
