package media

import (
	"mime/multipart"
	"net/textproto"
	"time"

	storageMedia "github.com/bulatminnakhmetov/cloudmedia/internal/storage/media"
)

// Kind selects the provider resource type and the folder policy.
type Kind string

const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// ResourceType returns the provider resource type for the kind.
func (k Kind) ResourceType() string {
	if k == KindVideo {
		return storageMedia.ResourceVideo
	}
	return storageMedia.ResourceImage
}

// Placement tells the gateway which endpoint the upload came through.
type Placement int

const (
	// PlacementDefault is the bare upload endpoint of a kind.
	PlacementDefault Placement = iota
	// PlacementFolder is an upload routed to a named folder.
	PlacementFolder
)

// Asset is a stored media asset as returned to the API layer.
type Asset struct {
	PublicID     string    `json:"publicId"`
	SecureURL    string    `json:"secureUrl"`
	URL          string    `json:"url"`
	Format       string    `json:"format"`
	ResourceType string    `json:"resourceType"`
	Type         string    `json:"type"`
	Folder       string    `json:"folder,omitempty"`
	Bytes        int       `json:"bytes"`
	Width        int       `json:"width,omitempty"`
	Height       int       `json:"height,omitempty"`
	Version      int       `json:"version"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UploadRequest describes a fresh upload.
type UploadRequest struct {
	File      UploadedFile
	Placement Placement
	Folder    string
	// PublicID is optional; the gateway generates one when it is blank.
	PublicID string
}

type UploadedFile interface {
	Open() (multipart.File, error)
	GetFilename() string
	GetSize() int64
	GetHeader() textproto.MIMEHeader
}

type FileHeaderWrapper struct {
	*multipart.FileHeader
}

func (w *FileHeaderWrapper) Open() (multipart.File, error) {
	return w.FileHeader.Open()
}

func (w *FileHeaderWrapper) GetFilename() string {
	return w.Filename
}

func (w *FileHeaderWrapper) GetSize() int64 {
	return w.Size
}

func (w *FileHeaderWrapper) GetHeader() textproto.MIMEHeader {
	return w.Header
}

func assetFromStorage(a storageMedia.Asset) Asset {
	return Asset{
		PublicID:     a.PublicID,
		SecureURL:    a.SecureURL,
		URL:          a.URL,
		Format:       a.Format,
		ResourceType: a.ResourceType,
		Type:         a.Type,
		Folder:       a.Folder,
		Bytes:        a.Bytes,
		Width:        a.Width,
		Height:       a.Height,
		Version:      a.Version,
		CreatedAt:    a.CreatedAt,
	}
}
