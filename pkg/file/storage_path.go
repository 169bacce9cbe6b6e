package file

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ExtensionOrDefault returns the lowercased extension of filename without
// the leading dot, or def when the filename has none.
func ExtensionOrDefault(filename, def string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(filename)), ".")
	if ext == "" {
		return def
	}
	return ext
}

// StoragePath builds the object key for an uploaded video. Keys are
// namespaced by session so one guest's uploads stay together.
func StoragePath(sessionID, ext string) string {
	return fmt.Sprintf("%s/%s.%s", sessionID, uuid.New().String(), ext)
}

// ExtensionForContentType maps a recorder media type to a file extension.
// MediaRecorder negotiates webm on most browsers, mp4 on Safari.
func ExtensionForContentType(contentType string) string {
	ct := strings.ToLower(contentType)
	if idx := strings.Index(ct, ";"); idx >= 0 {
		ct = ct[:idx]
	}
	switch strings.TrimSpace(ct) {
	case "video/webm":
		return "webm"
	case "video/quicktime":
		return "mov"
	case "video/x-matroska":
		return "mkv"
	default:
		return "mp4"
	}
}
