package uploads

import (
	"path/filepath"
	"strings"
)

// MaxFileSize is the upload size ceiling: 5 MiB.
const MaxFileSize = 5 << 20

// allowedExts is the image extension whitelist, matched case-insensitively.
var allowedExts = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// ValidateFile checks an upload's declared name and size before anything
// touches the disk. Each file is judged on its own; callers decide what a
// rejection means for the rest of the batch.
func ValidateFile(name string, size int64) error {
	ext := strings.ToLower(filepath.Ext(name))
	allowed := false
	for _, a := range allowedExts {
		if ext == a {
			allowed = true
			break
		}
	}
	if !allowed {
		return &InvalidFormatError{Ext: ext, Allowed: allowedExts}
	}
	if size > MaxFileSize {
		return &FileTooLargeError{Size: size, Limit: MaxFileSize}
	}
	return nil
}
