package media

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bulatminnakhmetov/cloudmedia/internal/logging"
	storageMedia "github.com/bulatminnakhmetov/cloudmedia/internal/storage/media"
)

// Gateway turns validated requests of one media kind into provider calls
// and classifies the answers. It holds no per-request state and is safe for
// concurrent use.
type Gateway struct {
	kind     Kind
	policy   Policy
	provider storageMedia.Provider
	logger   zerolog.Logger
	newToken func() string
}

// NewGateway создает шлюз для указанного типа медиа
func NewGateway(kind Kind, provider storageMedia.Provider, logger zerolog.Logger) *Gateway {
	return &Gateway{
		kind:     kind,
		policy:   PolicyFor(kind),
		provider: provider,
		logger:   logger.With().Str("component", "media_gateway").Str("kind", string(kind)).Logger(),
		newToken: newToken,
	}
}

// Kind returns the media kind the gateway serves.
func (g *Gateway) Kind() Kind {
	return g.kind
}

func (g *Gateway) log(ctx context.Context) *zerolog.Logger {
	l := g.logger
	if reqID := logging.RequestID(ctx); reqID != "" {
		l = l.With().Str("request_id", reqID).Logger()
	}
	return &l
}

func (g *Gateway) invalidInput(ctx context.Context, op, message string) *Failure {
	g.log(ctx).Warn().Str("op", op).Str("reason", message).Msg("invalid input")
	return invalid(message)
}

// Upload stores a new asset. Overwrite is always off.
func (g *Gateway) Upload(ctx context.Context, req UploadRequest) (*Asset, error) {
	if req.File == nil || req.File.GetSize() <= 0 {
		return nil, g.invalidInput(ctx, "upload", "file is required")
	}

	folder := g.policy.Folder(req.Placement, req.Folder)
	publicID := g.policy.PublicID(req.Placement, req.PublicID, req.File.GetFilename(), g.newToken())

	return g.upload(ctx, "upload", req.File, storageMedia.UploadParams{
		Filename:     req.File.GetFilename(),
		Size:         req.File.GetSize(),
		PublicID:     publicID,
		Folder:       folder,
		ResourceType: g.kind.ResourceType(),
		Overwrite:    false,
	})
}

// Update replaces the content of an existing asset. The folder is left alone.
func (g *Gateway) Update(ctx context.Context, publicID string, file UploadedFile) (*Asset, error) {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return nil, g.invalidInput(ctx, "update", "publicId is required")
	}
	if file == nil || file.GetSize() <= 0 {
		return nil, g.invalidInput(ctx, "update", "file is required")
	}

	return g.upload(ctx, "update", file, storageMedia.UploadParams{
		Filename:     file.GetFilename(),
		Size:         file.GetSize(),
		PublicID:     publicID,
		ResourceType: g.kind.ResourceType(),
		Overwrite:    true,
	})
}

func (g *Gateway) upload(ctx context.Context, op string, file UploadedFile, params storageMedia.UploadParams) (*Asset, error) {
	log := g.log(ctx)

	src, err := file.Open()
	if err != nil {
		log.Error().Err(err).Str("op", op).Str("public_id", params.PublicID).Msg("failed to open uploaded file")
		return nil, fault(err)
	}
	defer src.Close()
	params.File = src

	res, err := g.provider.Upload(ctx, params)
	if err != nil {
		log.Error().Err(err).Str("op", op).
			Str("public_id", params.PublicID).
			Str("folder", params.Folder).
			Msg("provider upload failed")
		return nil, fault(err)
	}

	if res.StatusCode != http.StatusOK {
		log.Error().Str("op", op).
			Str("public_id", params.PublicID).
			Str("folder", params.Folder).
			Int("status", res.StatusCode).
			Str("provider_error", res.Error).
			Msg("provider rejected upload")
		return nil, rejected(res.Error, res.StatusCode)
	}

	asset := assetFromStorage(res.Asset)
	if asset.Folder == "" && params.Folder != "" {
		asset.Folder = params.Folder
	}

	log.Info().Str("op", op).
		Str("public_id", asset.PublicID).
		Str("folder", params.Folder).
		Str("format", asset.Format).
		Msg("asset uploaded")

	return &asset, nil
}

// Delete destroys an asset. Only the literal provider result "ok" counts
// as success.
func (g *Gateway) Delete(ctx context.Context, publicID string) error {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return g.invalidInput(ctx, "delete", "publicId is required")
	}
	log := g.log(ctx)

	res, err := g.provider.Destroy(ctx, storageMedia.DestroyParams{
		PublicID:     publicID,
		ResourceType: g.kind.ResourceType(),
	})
	if err != nil {
		log.Error().Err(err).Str("op", "delete").Str("public_id", publicID).Msg("provider destroy failed")
		return fault(err)
	}

	switch {
	case res.Result == "ok":
		log.Info().Str("op", "delete").Str("public_id", publicID).Msg("asset deleted")
		return nil
	case strings.EqualFold(res.Result, "not found"):
		log.Warn().Str("op", "delete").Str("public_id", publicID).Msg("asset to delete not found")
		return notFound("not found")
	default:
		msg := res.Error
		if msg == "" {
			msg = "delete result: " + res.Result
		}
		log.Error().Str("op", "delete").
			Str("public_id", publicID).
			Str("result", res.Result).
			Str("provider_error", res.Error).
			Msg("provider rejected delete")
		return rejected(msg, res.StatusCode)
	}
}

// Get looks up a single asset.
func (g *Gateway) Get(ctx context.Context, publicID string) (*Asset, error) {
	publicID = strings.TrimSpace(publicID)
	if publicID == "" {
		return nil, g.invalidInput(ctx, "get", "publicId is required")
	}
	log := g.log(ctx)

	res, err := g.provider.Asset(ctx, storageMedia.AssetParams{
		PublicID:     publicID,
		ResourceType: g.kind.ResourceType(),
	})
	if err != nil {
		log.Error().Err(err).Str("op", "get").Str("public_id", publicID).Msg("provider lookup failed")
		return nil, fault(err)
	}

	switch res.StatusCode {
	case http.StatusOK:
		asset := assetFromStorage(res.Asset)
		log.Info().Str("op", "get").Str("public_id", publicID).Msg("asset retrieved")
		return &asset, nil
	case http.StatusNotFound:
		log.Warn().Str("op", "get").Str("public_id", publicID).Str("provider_error", res.Error).Msg("asset not found")
		msg := res.Error
		if msg == "" {
			msg = "not found"
		}
		return nil, notFound(msg)
	default:
		log.Error().Str("op", "get").
			Str("public_id", publicID).
			Int("status", res.StatusCode).
			Str("provider_error", res.Error).
			Msg("provider rejected lookup")
		return nil, rejected(res.Error, res.StatusCode)
	}
}

// List returns up to MaxListResults uploaded assets whose identifier starts
// with prefix. An empty result is not an error.
func (g *Gateway) List(ctx context.Context, prefix string) ([]Asset, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return nil, g.invalidInput(ctx, "list", "folder is required")
	}
	log := g.log(ctx)

	res, err := g.provider.Assets(ctx, storageMedia.AssetsParams{
		Prefix:       prefix,
		ResourceType: g.kind.ResourceType(),
		DeliveryType: storageMedia.DeliveryUpload,
		MaxResults:   MaxListResults,
	})
	if err != nil {
		log.Error().Err(err).Str("op", "list").Str("folder", prefix).Msg("provider listing failed")
		return nil, fault(err)
	}

	if res.StatusCode != http.StatusOK {
		log.Error().Str("op", "list").
			Str("folder", prefix).
			Int("status", res.StatusCode).
			Str("provider_error", res.Error).
			Msg("provider rejected listing")
		return nil, rejected(res.Error, res.StatusCode)
	}

	assets := make([]Asset, 0, len(res.Assets))
	for _, a := range res.Assets {
		assets = append(assets, assetFromStorage(a))
	}

	log.Info().Str("op", "list").Str("folder", prefix).Int("count", len(assets)).Msg("assets listed")
	return assets, nil
}
