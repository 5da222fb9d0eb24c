package uploads

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoContentRoot is returned when the configured content root is empty.
var ErrNoContentRoot = errors.New("content root is not configured")

// DirCreateError reports a directory that could not be created.
type DirCreateError struct {
	Path string
	Err  error
}

func (e *DirCreateError) Error() string {
	return fmt.Sprintf("create directory %s: %v", e.Path, e.Err)
}

func (e *DirCreateError) Unwrap() error { return e.Err }

// InvalidFormatError reports a rejected file extension.
type InvalidFormatError struct {
	Ext     string
	Allowed []string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("unsupported image format %q, allowed: %s", e.Ext, strings.Join(e.Allowed, ", "))
}

// FileTooLargeError reports a file over the size ceiling.
type FileTooLargeError struct {
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file is %d bytes, limit is %d", e.Size, e.Limit)
}

// PermissionError reports a path the process was not allowed to write.
type PermissionError struct {
	Path string
	Err  error
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("permission denied for %s", e.Path)
}

func (e *PermissionError) Unwrap() error { return e.Err }

// IOError wraps any other filesystem failure during a write.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// UploadError covers failures with no more specific classification, naming the
// offending file.
type UploadError struct {
	File string
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s: %v", e.File, e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// UserMessage translates any upload-pipeline error into the single
// human-readable notification shown on the edit form. Nothing from this
// taxonomy reaches a generic error page.
func UserMessage(err error) string {
	var (
		dirErr  *DirCreateError
		fmtErr  *InvalidFormatError
		sizeErr *FileTooLargeError
		permErr *PermissionError
		ioErr   *IOError
		upErr   *UploadError
	)
	switch {
	case errors.Is(err, ErrNoContentRoot):
		return "Image storage is not configured; set CONTENT_ROOT and try again."
	case errors.As(err, &dirErr):
		return fmt.Sprintf("Could not create the image directory %s: %v.", dirErr.Path, dirErr.Err)
	case errors.As(err, &fmtErr):
		return fmt.Sprintf("Unsupported image format %q; allowed formats are %s.", fmtErr.Ext, strings.Join(fmtErr.Allowed, ", "))
	case errors.As(err, &sizeErr):
		return fmt.Sprintf("File is too large (%d bytes); the limit is %d bytes.", sizeErr.Size, sizeErr.Limit)
	case errors.As(err, &permErr):
		return fmt.Sprintf("Permission denied while writing %s; check directory permissions.", permErr.Path)
	case errors.As(err, &ioErr):
		return fmt.Sprintf("Could not store the image: %v.", ioErr.Err)
	case errors.As(err, &upErr):
		return fmt.Sprintf("Upload of %s failed, please try again.", upErr.File)
	}
	return "Could not save the product, please try again."
}
