package media

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// headConcurrency bounds the HeadObject calls issued while listing.
const headConcurrency = 8

type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	HeadObject(ctx context.Context, params *s3.HeadObjectInput, optFns ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// S3Config works with AWS S3 and S3-compatible stores (R2, MinIO, GCS).
type S3Config struct {
	Bucket    string
	Region    string
	AccessKey string
	SecretKey string
	// Endpoint is optional; when set, path-style addressing is used.
	Endpoint  string
	PublicURL string
	Timeout   time.Duration
}

// S3Provider stores assets as objects under "{resource_type}/{public_id}",
// like MinioProvider, but through the AWS SDK.
type S3Provider struct {
	client  s3API
	bucket  string
	baseURL string
	timeout time.Duration
}

func NewS3Provider(ctx context.Context, cfg S3Config) (*S3Provider, error) {
	if cfg.AccessKey == "" || cfg.SecretKey == "" || cfg.Bucket == "" {
		return nil, ErrInvalidConfig
	}

	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(region),
		config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		),
	)
	if err != nil {
		return nil, errors.Wrap(err, "load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	baseURL := cfg.PublicURL
	if baseURL == "" {
		if cfg.Endpoint != "" {
			baseURL = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
		} else {
			baseURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, region)
		}
	}

	return newS3Provider(client, cfg.Bucket, baseURL, cfg.Timeout), nil
}

func newS3Provider(client s3API, bucket, baseURL string, timeout time.Duration) *S3Provider {
	return &S3Provider{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(baseURL, "/"),
		timeout: timeout,
	}
}

func (p *S3Provider) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if p.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, p.timeout)
}

func (p *S3Provider) Upload(ctx context.Context, params UploadParams) (*UploadResult, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	publicID := joinPublicID(params.Folder, params.PublicID)
	key := objectKey(params.ResourceType, publicID)

	if !params.Overwrite {
		head, err := p.head(ctx, key)
		switch {
		case err == nil:
			return &UploadResult{StatusCode: http.StatusOK, Asset: p.assetFromHead(params.ResourceType, key, head)}, nil
		case !isS3NotFound(err):
			if status, msg, ok := s3Status(err); ok {
				return &UploadResult{StatusCode: status, Error: msg}, nil
			}
			return nil, errors.Wrapf(err, "s3 head %q", key)
		}
	}

	folder := strings.Trim(params.Folder, "/")
	if folder == "" {
		folder = folderOf(publicID)
	}
	format := detectFormat(params.Filename, nil)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        params.File,
		ContentType: aws.String(contentTypeFor(format)),
		Metadata: map[string]string{
			metaFormat: format,
			metaFolder: folder,
		},
	}
	if params.Size > 0 {
		input.ContentLength = aws.Int64(params.Size)
	}

	if _, err := p.client.PutObject(ctx, input); err != nil {
		if status, msg, ok := s3Status(err); ok {
			return &UploadResult{StatusCode: status, Error: msg}, nil
		}
		return nil, errors.Wrapf(err, "s3 put %q", key)
	}

	now := time.Now().UTC()
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
			Bytes:        int(params.Size),
			Version:      int(now.Unix()),
			CreatedAt:    now,
		},
	}, nil
}

// Destroy checks the object first: S3 deletes of missing keys succeed.
func (p *S3Provider) Destroy(ctx context.Context, params DestroyParams) (*DestroyResult, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	key := objectKey(params.ResourceType, params.PublicID)
	if _, err := p.head(ctx, key); err != nil {
		if isS3NotFound(err) {
			return &DestroyResult{StatusCode: http.StatusOK, Result: "not found"}, nil
		}
		if status, msg, ok := s3Status(err); ok {
			return &DestroyResult{StatusCode: status, Result: "error", Error: msg}, nil
		}
		return nil, errors.Wrapf(err, "s3 head %q", key)
	}

	_, err := p.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if status, msg, ok := s3Status(err); ok {
			return &DestroyResult{StatusCode: status, Result: "error", Error: msg}, nil
		}
		return nil, errors.Wrapf(err, "s3 delete %q", key)
	}

	return &DestroyResult{StatusCode: http.StatusOK, Result: "ok"}, nil
}

func (p *S3Provider) Asset(ctx context.Context, params AssetParams) (*AssetResult, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	key := objectKey(params.ResourceType, params.PublicID)
	head, err := p.head(ctx, key)
	if err != nil {
		if isS3NotFound(err) {
			return &AssetResult{StatusCode: http.StatusNotFound, Error: "Resource not found - " + params.PublicID}, nil
		}
		if status, msg, ok := s3Status(err); ok {
			return &AssetResult{StatusCode: status, Error: msg}, nil
		}
		return nil, errors.Wrapf(err, "s3 head %q", key)
	}

	return &AssetResult{StatusCode: http.StatusOK, Asset: p.assetFromHead(params.ResourceType, key, head)}, nil
}

// Assets pages through the prefix and fetches object metadata in parallel,
// since ListObjectsV2 does not return user metadata.
func (p *S3Provider) Assets(ctx context.Context, params AssetsParams) (*AssetsResult, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	prefix := objectKey(params.ResourceType, params.Prefix)
	var keys []string
	var token *string
	for {
		out, err := p.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(p.bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: token,
		})
		if err != nil {
			if status, msg, ok := s3Status(err); ok {
				return &AssetsResult{StatusCode: status, Error: msg}, nil
			}
			return nil, errors.Wrapf(err, "s3 list %q", prefix)
		}
		for _, obj := range out.Contents {
			keys = append(keys, aws.ToString(obj.Key))
		}
		if params.MaxResults > 0 && len(keys) >= params.MaxResults {
			keys = keys[:params.MaxResults]
			break
		}
		if !aws.ToBool(out.IsTruncated) || out.NextContinuationToken == nil {
			break
		}
		token = out.NextContinuationToken
	}

	assets := make([]Asset, len(keys))
	var mu sync.Mutex
	missing := make(map[int]bool)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(headConcurrency)
	for i, key := range keys {
		g.Go(func() error {
			head, err := p.head(gctx, key)
			if err != nil {
				// удален между листингом и запросом метаданных
				if isS3NotFound(err) {
					mu.Lock()
					missing[i] = true
					mu.Unlock()
					return nil
				}
				return err
			}
			assets[i] = p.assetFromHead(params.ResourceType, key, head)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if status, msg, ok := s3Status(err); ok {
			return &AssetsResult{StatusCode: status, Error: msg}, nil
		}
		return nil, errors.Wrapf(err, "s3 head objects under %q", prefix)
	}

	result := &AssetsResult{StatusCode: http.StatusOK, Assets: make([]Asset, 0, len(assets))}
	for i, a := range assets {
		if !missing[i] {
			result.Assets = append(result.Assets, a)
		}
	}
	return result, nil
}

func (p *S3Provider) head(ctx context.Context, key string) (*s3.HeadObjectOutput, error) {
	return p.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(p.bucket),
		Key:    aws.String(key),
	})
}

func (p *S3Provider) objectURL(key string) string {
	return p.baseURL + "/" + key
}

func (p *S3Provider) assetFromHead(resourceType, key string, head *s3.HeadObjectOutput) Asset {
	publicID := strings.TrimPrefix(key, resourceType+"/")
	folder := metaValue(head.Metadata, metaFolder)
	if folder == "" {
		folder = folderOf(publicID)
	}
	modified := aws.ToTime(head.LastModified)

	return Asset{
		PublicID:     publicID,
		Folder:       folder,
		Format:       metaValue(head.Metadata, metaFormat),
		ResourceType: resourceType,
		Type:         DeliveryUpload,
		URL:          p.objectURL(key),
		SecureURL:    p.objectURL(key),
		Bytes:        int(aws.ToInt64(head.ContentLength)),
		Version:      int(modified.Unix()),
		CreatedAt:    modified,
	}
}

func isS3NotFound(err error) bool {
	var apiErr interface{ ErrorCode() string }
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return true
		}
	}
	return false
}

// s3Status extracts the HTTP status of a service answer. ok is false for
// transport failures where no response was received.
func s3Status(err error) (int, string, bool) {
	var respErr interface{ HTTPStatusCode() int }
	if !errors.As(err, &respErr) || respErr.HTTPStatusCode() == 0 {
		return 0, "", false
	}

	msg := err.Error()
	var apiErr interface{ ErrorMessage() string }
	if errors.As(err, &apiErr) && apiErr.ErrorMessage() != "" {
		msg = apiErr.ErrorMessage()
	}
	return respErr.HTTPStatusCode(), msg, true
}
