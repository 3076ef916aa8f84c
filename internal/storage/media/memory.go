package media

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

type memoryObject struct {
	asset Asset
	data  []byte
}

// MemoryProvider keeps assets in process memory and answers like the
// remote provider does. It backs the "memory" driver and the tests.
type MemoryProvider struct {
	mu      sync.RWMutex
	baseURL string
	objects map[string]*memoryObject
	now     func() time.Time
}

// NewMemoryProvider creates an empty provider. baseURL is used to build
// delivery URLs, e.g. "https://media.local/demo".
func NewMemoryProvider(baseURL string) *MemoryProvider {
	if baseURL == "" {
		baseURL = "https://media.local/demo"
	}
	return &MemoryProvider{
		baseURL: strings.TrimRight(baseURL, "/"),
		objects: make(map[string]*memoryObject),
		now:     time.Now,
	}
}

func memoryKey(resourceType, publicID string) string {
	return resourceType + ":" + publicID
}

func (p *MemoryProvider) Upload(ctx context.Context, params UploadParams) (*UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(params.File)
	if err != nil {
		return nil, errors.Wrap(err, "read upload content")
	}
	if len(data) == 0 {
		return &UploadResult{StatusCode: 400, Error: "Empty file"}, nil
	}
	if params.PublicID == "" {
		return &UploadResult{StatusCode: 400, Error: "Missing required parameter - public_id"}, nil
	}

	publicID := joinPublicID(params.Folder, params.PublicID)
	key := memoryKey(params.ResourceType, publicID)

	p.mu.Lock()
	defer p.mu.Unlock()

	existing, found := p.objects[key]
	if found && !params.Overwrite {
		// Без overwrite провайдер возвращает уже существующий ресурс
		return &UploadResult{StatusCode: 200, Asset: existing.asset}, nil
	}

	folder := params.Folder
	if found && folder == "" {
		folder = existing.asset.Folder
	}

	created := p.now().UTC()
	version := int(created.Unix())
	if found && version <= existing.asset.Version {
		version = existing.asset.Version + 1
	}

	format := detectFormat(params.Filename, data)
	path := fmt.Sprintf("%s/upload/v%d/%s", params.ResourceType, version, publicID)
	if format != "" {
		path += "." + format
	}

	asset := Asset{
		PublicID:     publicID,
		Folder:       strings.Trim(folder, "/"),
		Format:       format,
		ResourceType: params.ResourceType,
		Type:         DeliveryUpload,
		URL:          strings.Replace(p.baseURL, "https://", "http://", 1) + "/" + path,
		SecureURL:    p.baseURL + "/" + path,
		Bytes:        len(data),
		Version:      version,
		CreatedAt:    created,
	}
	p.objects[key] = &memoryObject{asset: asset, data: data}

	return &UploadResult{StatusCode: 200, Asset: asset}, nil
}

func (p *MemoryProvider) Destroy(ctx context.Context, params DestroyParams) (*DestroyResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	key := memoryKey(params.ResourceType, params.PublicID)
	if _, ok := p.objects[key]; !ok {
		return &DestroyResult{StatusCode: 200, Result: "not found"}, nil
	}
	delete(p.objects, key)

	return &DestroyResult{StatusCode: 200, Result: "ok"}, nil
}

func (p *MemoryProvider) Asset(ctx context.Context, params AssetParams) (*AssetResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	obj, ok := p.objects[memoryKey(params.ResourceType, params.PublicID)]
	if !ok {
		return &AssetResult{
			StatusCode: 404,
			Error:      "Resource not found - " + params.PublicID,
		}, nil
	}

	return &AssetResult{StatusCode: 200, Asset: obj.asset}, nil
}

func (p *MemoryProvider) Assets(ctx context.Context, params AssetsParams) (*AssetsResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	deliveryType := params.DeliveryType
	if deliveryType == "" {
		deliveryType = DeliveryUpload
	}

	p.mu.RLock()
	assets := make([]Asset, 0)
	for _, obj := range p.objects {
		a := obj.asset
		if a.ResourceType != params.ResourceType || a.Type != deliveryType {
			continue
		}
		if !strings.HasPrefix(a.PublicID, params.Prefix) {
			continue
		}
		assets = append(assets, a)
	}
	p.mu.RUnlock()

	// Newest first, like the admin API
	sort.Slice(assets, func(i, j int) bool {
		if !assets[i].CreatedAt.Equal(assets[j].CreatedAt) {
			return assets[i].CreatedAt.After(assets[j].CreatedAt)
		}
		return assets[i].PublicID < assets[j].PublicID
	})

	if params.MaxResults > 0 && len(assets) > params.MaxResults {
		assets = assets[:params.MaxResults]
	}

	return &AssetsResult{StatusCode: 200, Assets: assets}, nil
}

// Content returns the stored bytes of an asset.
func (p *MemoryProvider) Content(resourceType, publicID string) ([]byte, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	obj, ok := p.objects[memoryKey(resourceType, publicID)]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), obj.data...), true
}
