package domain

import (
	"path/filepath"
	"slices"
	"strings"
)

// imageExtensions lists the file extensions the codec can decode.
var imageExtensions = []string{
	".bmp", ".gif", ".jpeg", ".jpg", ".png", ".tif", ".tiff", ".webp",
}

// IsImagePath reports whether path carries an extension of a supported image format.
func IsImagePath(path string) bool {
	return slices.Contains(imageExtensions, strings.ToLower(filepath.Ext(path)))
}

// ImageExtensions returns the supported image extensions in lexical order.
func ImageExtensions() []string {
	return slices.Clone(imageExtensions)
}
