package media

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// Константы для политики папок и идентификаторов
const (
	DefaultImageFolder       = "default_folder"
	DefaultVideoFolder       = "default_videos"
	DefaultVideoUploadFolder = "default_videos_folder"

	// UploadsPrefix namespaces identifiers from the bare image upload endpoint.
	UploadsPrefix = "uploads"

	// MaxListResults is the provider page cap; listings never paginate past it.
	MaxListResults = 500
)

// Policy decides folders and identifiers for a media kind.
type Policy struct {
	// BareFolder is the folder used by the bare upload endpoint.
	BareFolder string
	// FolderFallback replaces a blank folder on folder uploads.
	FolderFallback string
	// BareUploadsPrefix makes bare uploads ignore the filename and use
	// "uploads/{token}" as identifier.
	BareUploadsPrefix bool
}

// PolicyFor returns the folder and identifier policy of a kind.
func PolicyFor(kind Kind) Policy {
	switch kind {
	case KindVideo:
		return Policy{
			BareFolder:     DefaultVideoFolder,
			FolderFallback: DefaultVideoUploadFolder,
		}
	default:
		return Policy{
			FolderFallback:    DefaultImageFolder,
			BareUploadsPrefix: true,
		}
	}
}

// Folder returns the folder an upload goes to.
func (p Policy) Folder(placement Placement, requested string) string {
	requested = strings.TrimSpace(requested)
	if placement == PlacementFolder {
		if requested == "" {
			return p.FolderFallback
		}
		return requested
	}
	if requested != "" {
		return requested
	}
	return p.BareFolder
}

// PublicID returns the identifier for a new upload.
func (p Policy) PublicID(placement Placement, requested, filename, token string) string {
	if requested = strings.TrimSpace(requested); requested != "" {
		return requested
	}
	if placement == PlacementDefault && p.BareUploadsPrefix {
		return UploadsPrefix + "/" + token
	}
	return baseName(filename) + "_" + token
}

// baseName strips directories and the extension from an uploaded filename.
func baseName(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = strings.TrimSuffix(name, filepath.Ext(name))
	if name == "." || name == "/" {
		return ""
	}
	return name
}

func newToken() string {
	return uuid.New().String()
}
