package constants

import (
	"path/filepath"
	"strings"
)

const (
	MaxPhotoSize = 2 * 1024 * 1024

	FolderAdmins   = "admins"
	FolderTeachers = "teachers"
)

var imageExts = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".gif": true,
}

var imageMimes = map[string]bool{
	"image/jpeg": true, "image/png": true, "image/webp": true, "image/gif": true,
}

func IsImageExt(filename string) bool {
	return imageExts[strings.ToLower(filepath.Ext(filename))]
}

func IsImageMime(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(strings.SplitN(contentType, ";", 2)[0]))
	return imageMimes[ct]
}
