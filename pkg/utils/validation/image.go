package validation

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"pxtown_backend/pkg/utils/image"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// ValidateImageUpload rejects oversized files and anything that is not a
// jpeg/png/webp photo before any decoding work happens.
func ValidateImageUpload(file *multipart.FileHeader) error {
	if file.Size > image.MaxImageSize {
		return fmt.Errorf("file size too large, maximum is %d bytes", image.MaxImageSize)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return fmt.Errorf("invalid file extension: %s", ext)
	}

	contentType := file.Header.Get("Content-Type")
	if !image.AllowedImageTypes[contentType] {
		return fmt.Errorf("invalid content type: %s", contentType)
	}

	return nil
}
