// Package media classifies uploaded file content.
package media

import (
	"mime"
	"path"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"medialib-backend/domain/assets"
)

// TypeDetector maps uploaded content to a media type and asset kind by
// sniffing the file bytes. The filename is only a fallback hint when the
// content is ambiguous.
type TypeDetector struct{}

func init() {
	// Sniffing never needs more than the header
	mimetype.SetLimit(3072)
}

// NewTypeDetector creates a content-based media type mapper
func NewTypeDetector() *TypeDetector {
	return &TypeDetector{}
}

// Map detects the media type of the content and the asset kind it belongs to
func (d *TypeDetector) Map(filename string, content []byte) (string, assets.Kind) {
	detected := mimetype.Detect(content)

	mediaType := detected.String()
	// Strip parameters such as "; charset=utf-8"
	if idx := strings.Index(mediaType, ";"); idx >= 0 {
		mediaType = strings.TrimSpace(mediaType[:idx])
	}

	if mediaType == "application/octet-stream" {
		if byExtension := mime.TypeByExtension(path.Ext(filename)); byExtension != "" {
			mediaType = byExtension
			if idx := strings.Index(mediaType, ";"); idx >= 0 {
				mediaType = strings.TrimSpace(mediaType[:idx])
			}
		}
	}

	return mediaType, assets.KindForMediaType(mediaType)
}
