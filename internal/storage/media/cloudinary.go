package media

import (
	"context"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/admin"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/pkg/errors"
)

// CloudinaryConfig holds the account credentials.
type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Timeout   time.Duration
}

// CloudinaryProvider talks to Cloudinary through the official SDK.
type CloudinaryProvider struct {
	cld     *cloudinary.Cloudinary
	timeout time.Duration
}

func NewCloudinaryProvider(cfg CloudinaryConfig) (*CloudinaryProvider, error) {
	if cfg.CloudName == "" || cfg.APIKey == "" || cfg.APISecret == "" {
		return nil, ErrInvalidConfig
	}

	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, errors.Wrap(err, "create cloudinary client")
	}

	cld.Upload.Client.Transport = &statusTransport{base: cld.Upload.Client.Transport}
	cld.Admin.Client.Transport = &statusTransport{base: cld.Admin.Client.Transport}

	return &CloudinaryProvider{cld: cld, timeout: cfg.Timeout}, nil
}

type statusKey struct{}

// callStatus holds the HTTP status of the last response seen for one call.
type callStatus struct {
	mu   sync.Mutex
	code int
}

func (s *callStatus) set(code int) {
	s.mu.Lock()
	s.code = code
	s.mu.Unlock()
}

func (s *callStatus) get() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.code
}

// resolve returns the status to report for an answer carrying msg. The
// message is only consulted when no error status was recorded.
func (s *callStatus) resolve(msg string) int {
	code := s.get()
	if code >= http.StatusBadRequest {
		return code
	}
	return statusFromMessage(msg)
}

// answered reports whether a failed call still got an error response, so
// an undecodable error body is a rejection and not a transport fault.
func (s *callStatus) answered() (int, bool) {
	code := s.get()
	return code, code >= http.StatusBadRequest
}

// statusTransport records response statuses into the callStatus carried by
// the request context. The SDK decodes error bodies and drops the status line.
type statusTransport struct {
	base http.RoundTripper
}

func (t *statusTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	if s, ok := req.Context().Value(statusKey{}).(*callStatus); ok {
		s.set(resp.StatusCode)
	}
	return resp, nil
}

func withCallStatus(ctx context.Context) (context.Context, *callStatus) {
	s := &callStatus{}
	return context.WithValue(ctx, statusKey{}, s), s
}

func (p *CloudinaryProvider) withTimeout(ctx context.Context) (context.Context, *callStatus, context.CancelFunc) {
	ctx, status := withCallStatus(ctx)
	if p.timeout <= 0 {
		ctx, cancel := context.WithCancel(ctx)
		return ctx, status, cancel
	}
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	return ctx, status, cancel
}

func (p *CloudinaryProvider) Upload(ctx context.Context, params UploadParams) (*UploadResult, error) {
	ctx, status, cancel := p.withTimeout(ctx)
	defer cancel()

	overwrite := params.Overwrite
	resp, err := p.cld.Upload.Upload(ctx, params.File, uploader.UploadParams{
		PublicID:     params.PublicID,
		Folder:       params.Folder,
		Overwrite:    &overwrite,
		ResourceType: params.ResourceType,
	})
	if err != nil {
		if code, ok := status.answered(); ok {
			return &UploadResult{StatusCode: code, Error: http.StatusText(code)}, nil
		}
		return nil, errors.Wrapf(err, "cloudinary upload %q", params.PublicID)
	}

	result := &UploadResult{
		StatusCode: status.resolve(resp.Error.Message),
		Error:      resp.Error.Message,
	}
	if resp.Error.Message != "" {
		return result, nil
	}

	result.Asset = Asset{
		PublicID:     resp.PublicID,
		Folder:       strings.Trim(params.Folder, "/"),
		Format:       resp.Format,
		ResourceType: resp.ResourceType,
		Type:         resp.Type,
		URL:          resp.URL,
		SecureURL:    resp.SecureURL,
		Bytes:        resp.Bytes,
		Width:        resp.Width,
		Height:       resp.Height,
		Version:      resp.Version,
		CreatedAt:    resp.CreatedAt,
	}
	return result, nil
}

func (p *CloudinaryProvider) Destroy(ctx context.Context, params DestroyParams) (*DestroyResult, error) {
	ctx, status, cancel := p.withTimeout(ctx)
	defer cancel()

	resp, err := p.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID:     params.PublicID,
		ResourceType: params.ResourceType,
	})
	if err != nil {
		if code, ok := status.answered(); ok {
			return &DestroyResult{StatusCode: code, Error: http.StatusText(code)}, nil
		}
		return nil, errors.Wrapf(err, "cloudinary destroy %q", params.PublicID)
	}

	return &DestroyResult{
		StatusCode: status.resolve(resp.Error.Message),
		Result:     resp.Result,
		Error:      resp.Error.Message,
	}, nil
}

func (p *CloudinaryProvider) Asset(ctx context.Context, params AssetParams) (*AssetResult, error) {
	ctx, status, cancel := p.withTimeout(ctx)
	defer cancel()

	resp, err := p.cld.Admin.Asset(ctx, admin.AssetParams{
		PublicID:     params.PublicID,
		AssetType:    api.AssetType(params.ResourceType),
		DeliveryType: api.DeliveryType(DeliveryUpload),
	})
	if err != nil {
		if code, ok := status.answered(); ok {
			return &AssetResult{StatusCode: code, Error: http.StatusText(code)}, nil
		}
		return nil, errors.Wrapf(err, "cloudinary asset %q", params.PublicID)
	}

	result := &AssetResult{
		StatusCode: status.resolve(resp.Error.Message),
		Error:      resp.Error.Message,
	}
	if resp.Error.Message != "" {
		return result, nil
	}

	result.Asset = Asset{
		PublicID:     resp.PublicID,
		Folder:       folderOf(resp.PublicID),
		Format:       resp.Format,
		ResourceType: resp.ResourceType,
		Type:         resp.Type,
		URL:          resp.URL,
		SecureURL:    resp.SecureURL,
		Bytes:        resp.Bytes,
		Width:        resp.Width,
		Height:       resp.Height,
		Version:      resp.Version,
		CreatedAt:    resp.CreatedAt,
	}
	return result, nil
}

func (p *CloudinaryProvider) Assets(ctx context.Context, params AssetsParams) (*AssetsResult, error) {
	ctx, status, cancel := p.withTimeout(ctx)
	defer cancel()

	deliveryType := params.DeliveryType
	if deliveryType == "" {
		deliveryType = DeliveryUpload
	}

	resp, err := p.cld.Admin.Assets(ctx, admin.AssetsParams{
		AssetType:    api.AssetType(params.ResourceType),
		DeliveryType: deliveryType,
		Prefix:       params.Prefix,
		MaxResults:   params.MaxResults,
	})
	if err != nil {
		if code, ok := status.answered(); ok {
			return &AssetsResult{StatusCode: code, Error: http.StatusText(code)}, nil
		}
		return nil, errors.Wrapf(err, "cloudinary list prefix %q", params.Prefix)
	}

	result := &AssetsResult{
		StatusCode: status.resolve(resp.Error.Message),
		Error:      resp.Error.Message,
	}
	if resp.Error.Message != "" {
		return result, nil
	}

	result.Assets = make([]Asset, 0, len(resp.Assets))
	for _, a := range resp.Assets {
		resourceType := a.AssetType
		if resourceType == "" {
			resourceType = params.ResourceType
		}
		result.Assets = append(result.Assets, Asset{
			PublicID:     a.PublicID,
			Folder:       folderOf(a.PublicID),
			Format:       a.Format,
			ResourceType: resourceType,
			Type:         a.Type,
			URL:          a.URL,
			SecureURL:    a.SecureURL,
			Bytes:        a.Bytes,
			Width:        a.Width,
			Height:       a.Height,
			Version:      a.Version,
			CreatedAt:    a.CreatedAt,
		})
	}
	return result, nil
}

// statusFromMessage guesses the HTTP status of a Cloudinary answer from its
// error message. Used only when no error status was recorded for the call.
func statusFromMessage(msg string) int {
	if msg == "" {
		return http.StatusOK
	}

	m := strings.ToLower(msg)
	switch {
	case strings.Contains(m, "not found"):
		return http.StatusNotFound
	case strings.Contains(m, "invalid signature"),
		strings.Contains(m, "unknown api key"),
		strings.Contains(m, "invalid api key"),
		strings.Contains(m, "must supply api_key"):
		return http.StatusUnauthorized
	case strings.Contains(m, "not allowed"), strings.Contains(m, "forbidden"):
		return http.StatusForbidden
	case strings.Contains(m, "rate limit"):
		return 420
	case strings.Contains(m, "already exists"):
		return http.StatusConflict
	case strings.Contains(m, "internal server error"), strings.Contains(m, "general error"):
		return http.StatusInternalServerError
	default:
		return http.StatusBadRequest
	}
}

// folderOf returns the folder part of a fixed-folder public id.
func folderOf(publicID string) string {
	i := strings.LastIndex(publicID, "/")
	if i <= 0 {
		return ""
	}
	return publicID[:i]
}
