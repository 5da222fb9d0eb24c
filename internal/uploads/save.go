package uploads

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/h2non/filetype"

	"storefront/internal/models"
)

// Save writes an already validated file under productDir with a freshly
// generated unique name and returns the ProductImage row for the caller to
// stage. The product directory is created here if this is the product's first
// image. Nothing is committed to the database; the returned row joins the
// caller's pending change set.
func Save(productID uint, originalName string, data []byte, productDir string) (*models.ProductImage, error) {
	if err := ensureDir(productDir); err != nil {
		var de *DirCreateError
		if errors.As(err, &de) {
			if os.IsPermission(de.Err) {
				return nil, &PermissionError{Path: de.Path, Err: de.Err}
			}
			return nil, &IOError{Path: de.Path, Err: de.Err}
		}
		return nil, err
	}

	// A random token decouples the stored name from whatever the user called
	// the file, so two uploads named photo.jpg in one request cannot collide.
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.New().String() + ext
	dst := filepath.Join(productDir, name)

	if err := writeFile(dst, data); err != nil {
		return nil, err
	}

	// URLs always use forward slashes, whatever the host separator is.
	url := "/" + path.Join(imagesDirName, productsDirName, productDirName(productID), name)
	url = filepath.ToSlash(url)

	return &models.ProductImage{
		ProductID: productID,
		ImageURL:  url,
		MimeType:  sniffMime(data),
	}, nil
}

// writeFile creates dst exclusively and writes data to it. The handle is
// released on every exit path; a close failure on an otherwise clean write is
// still a write failure.
func writeFile(dst string, data []byte) (err error) {
	f, oerr := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if oerr != nil {
		if os.IsPermission(oerr) {
			return &PermissionError{Path: dst, Err: oerr}
		}
		return &IOError{Path: dst, Err: oerr}
	}
	defer func() {
		cerr := f.Close()
		if err == nil && cerr != nil {
			err = &IOError{Path: dst, Err: cerr}
		}
	}()

	if _, werr := f.Write(data); werr != nil {
		if os.IsPermission(werr) {
			return &PermissionError{Path: dst, Err: werr}
		}
		return &IOError{Path: dst, Err: werr}
	}
	return nil
}

// sniffMime detects the real content type from the bytes. Unknown content is
// recorded as empty rather than trusted from the filename.
func sniffMime(data []byte) string {
	kind, err := filetype.Match(data)
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}
