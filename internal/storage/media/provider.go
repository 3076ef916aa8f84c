package media

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
)

var (
	ErrInvalidConfig = errors.New("media storage: invalid configuration")
	ErrUnknownDriver = errors.New("media storage: unknown provider driver")
)

// Resource types understood by every provider.
const (
	ResourceImage = "image"
	ResourceVideo = "video"

	// DeliveryUpload is the only delivery type this service works with.
	DeliveryUpload = "upload"
)

// Provider is the remote media service boundary.
//
// A returned error always means the call itself failed (network, encoding,
// cancelled context). A provider that answered with a rejection reports it
// through StatusCode and Error on the result instead.
type Provider interface {
	Upload(ctx context.Context, params UploadParams) (*UploadResult, error)
	Destroy(ctx context.Context, params DestroyParams) (*DestroyResult, error)
	Asset(ctx context.Context, params AssetParams) (*AssetResult, error)
	Assets(ctx context.Context, params AssetsParams) (*AssetsResult, error)
}

// Asset is the provider-neutral description of a stored asset.
type Asset struct {
	PublicID     string
	Folder       string
	Format       string
	ResourceType string
	Type         string
	URL          string
	SecureURL    string
	Bytes        int
	Width        int
	Height       int
	Version      int
	CreatedAt    time.Time
}

type UploadParams struct {
	File         io.Reader
	Filename     string
	Size         int64
	PublicID     string
	Folder       string
	ResourceType string
	Overwrite    bool
}

type UploadResult struct {
	StatusCode int
	Error      string
	Asset
}

type DestroyParams struct {
	PublicID     string
	ResourceType string
}

// DestroyResult.Result is "ok" on success and "not found" for unknown ids.
type DestroyResult struct {
	StatusCode int
	Result     string
	Error      string
}

type AssetParams struct {
	PublicID     string
	ResourceType string
}

type AssetResult struct {
	StatusCode int
	Error      string
	Asset
}

type AssetsParams struct {
	Prefix       string
	ResourceType string
	DeliveryType string
	MaxResults   int
}

type AssetsResult struct {
	StatusCode int
	Error      string
	Assets     []Asset
}
