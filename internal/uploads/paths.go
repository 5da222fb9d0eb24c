// Package uploads implements the product image pipeline: storage path
// resolution, per-file validation and writing validated files to disk with
// collision-free names.
package uploads

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	imagesDirName   = "images"
	productsDirName = "products"
)

// Paths are the directories one product's uploads touch, all under the
// configured content root.
type Paths struct {
	ImageRoot   string // <root>/images
	ProductsDir string // <root>/images/products
	ProductDir  string // <root>/images/products/product-<id>
}

// Resolver computes storage locations under the content root. It has no state
// beyond the root; resolving is a pure function of the product ID plus the
// side effect of ensuring the shared directories exist.
type Resolver struct {
	root string
}

// NewResolver validates the configured content root.
func NewResolver(contentRoot string) (*Resolver, error) {
	if strings.TrimSpace(contentRoot) == "" {
		return nil, ErrNoContentRoot
	}
	return &Resolver{root: contentRoot}, nil
}

// Resolve returns the storage paths for productID and makes sure the image
// root and products directories exist. Both checks are idempotent; an existing
// directory is detected, not recreated. The product directory itself is not
// created here; it is created lazily, once a valid file is about to be
// written.
func (r *Resolver) Resolve(productID uint) (Paths, error) {
	p := Paths{ImageRoot: filepath.Join(r.root, imagesDirName)}
	p.ProductsDir = filepath.Join(p.ImageRoot, productsDirName)
	p.ProductDir = filepath.Join(p.ProductsDir, productDirName(productID))

	for _, dir := range []string{p.ImageRoot, p.ProductsDir} {
		if err := ensureDir(dir); err != nil {
			return Paths{}, err
		}
	}
	return p, nil
}

func productDirName(productID uint) string {
	return fmt.Sprintf("product-%d", productID)
}

// ensureDir creates dir unless it already exists.
func ensureDir(dir string) error {
	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return &DirCreateError{Path: dir, Err: errors.New("path exists and is not a directory")}
		}
		return nil
	}
	if !os.IsNotExist(err) {
		return &DirCreateError{Path: dir, Err: err}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &DirCreateError{Path: dir, Err: err}
	}
	return nil
}
