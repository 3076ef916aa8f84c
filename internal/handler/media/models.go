package media

import (
	"time"

	"github.com/bulatminnakhmetov/cloudmedia/internal/service/media"
)

// API response models

// ImageResponse is the trimmed projection of an image upload or lookup.
type ImageResponse struct {
	PublicID  string `json:"publicId"`
	SecureURL string `json:"secureUrl"`
	Format    string `json:"format"`
}

// FolderImageResponse is returned by the folder upload endpoint.
type FolderImageResponse struct {
	PublicID  string `json:"publicId"`
	SecureURL string `json:"secureUrl"`
	Format    string `json:"format"`
	Folder    string `json:"folder"`
}

// AssetListItem is one entry of a folder listing.
type AssetListItem struct {
	PublicID     string    `json:"publicId"`
	SecureURL    string    `json:"secureUrl"`
	Format       string    `json:"format"`
	ResourceType string    `json:"resourceType"`
	Type         string    `json:"type"`
	CreatedAt    time.Time `json:"createdAt"`
}

// ErrorBody mirrors the provider error object.
type ErrorBody struct {
	Message string `json:"message"`
}

// MessageResponse is the body of video validation errors.
type MessageResponse struct {
	Message string `json:"message"`
}

// VideoResult is the full normalized payload of video upload, update and
// lookup, on success and on provider failure.
type VideoResult struct {
	StatusCode   int        `json:"statusCode"`
	PublicID     string     `json:"publicId,omitempty"`
	Version      int        `json:"version,omitempty"`
	URL          string     `json:"url,omitempty"`
	SecureURL    string     `json:"secureUrl,omitempty"`
	Format       string     `json:"format,omitempty"`
	ResourceType string     `json:"resourceType,omitempty"`
	Type         string     `json:"type,omitempty"`
	Folder       string     `json:"folder,omitempty"`
	Bytes        int        `json:"bytes,omitempty"`
	Width        int        `json:"width,omitempty"`
	Height       int        `json:"height,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
	Error        *ErrorBody `json:"error,omitempty"`
}

// VideoListResult is the payload of a video folder listing.
type VideoListResult struct {
	StatusCode int             `json:"statusCode"`
	Resources  []AssetListItem `json:"resources"`
	Error      *ErrorBody      `json:"error,omitempty"`
}

// DeletionResult is the payload of a video deletion.
type DeletionResult struct {
	StatusCode int        `json:"statusCode"`
	Result     string     `json:"result"`
	Error      *ErrorBody `json:"error,omitempty"`
}

func toImageResponse(a *media.Asset) ImageResponse {
	return ImageResponse{
		PublicID:  a.PublicID,
		SecureURL: a.SecureURL,
		Format:    a.Format,
	}
}

func toListItems(assets []media.Asset) []AssetListItem {
	items := make([]AssetListItem, 0, len(assets))
	for _, a := range assets {
		items = append(items, AssetListItem{
			PublicID:     a.PublicID,
			SecureURL:    a.SecureURL,
			Format:       a.Format,
			ResourceType: a.ResourceType,
			Type:         a.Type,
			CreatedAt:    a.CreatedAt,
		})
	}
	return items
}

func toVideoResult(a *media.Asset) VideoResult {
	createdAt := a.CreatedAt
	return VideoResult{
		StatusCode:   200,
		PublicID:     a.PublicID,
		Version:      a.Version,
		URL:          a.URL,
		SecureURL:    a.SecureURL,
		Format:       a.Format,
		ResourceType: a.ResourceType,
		Type:         a.Type,
		Folder:       a.Folder,
		Bytes:        a.Bytes,
		Width:        a.Width,
		Height:       a.Height,
		CreatedAt:    &createdAt,
	}
}
