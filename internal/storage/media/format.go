package media

import (
	"mime"
	"net/http"
	"path"
	"path/filepath"
	"strings"
)

// detectFormat returns the asset format the way the provider reports it:
// the lowercase file extension, or the sniffed MIME subtype when the
// filename has none.
func detectFormat(filename string, head []byte) string {
	if ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), "."); ext != "" {
		if ext == "jpeg" {
			return "jpg"
		}
		return ext
	}
	if len(head) == 0 {
		return ""
	}

	mediaType, _, err := mime.ParseMediaType(http.DetectContentType(head))
	if err != nil || mediaType == "application/octet-stream" {
		return ""
	}
	sub := path.Base(mediaType)
	if sub == "jpeg" {
		return "jpg"
	}
	return sub
}

// contentTypeFor maps a format back to a MIME type for object stores.
func contentTypeFor(format string) string {
	if format == "" {
		return "application/octet-stream"
	}
	if ct := mime.TypeByExtension("." + format); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// joinPublicID prefixes id with folder the way fixed-folder accounts do.
func joinPublicID(folder, id string) string {
	folder = strings.Trim(folder, "/")
	if folder == "" {
		return id
	}
	return folder + "/" + id
}
