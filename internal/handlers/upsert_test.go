package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/uploads"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func productFields(catID uint) map[string]string {
	return map[string]string{
		"id":          "0",
		"title":       "Coffee Mug",
		"description": "Holds coffee",
		"price":       "12.50",
		"stock":       "5",
		"category_id": fmt.Sprint(catID),
	}
}

func TestProductUpsert_CreateWithImage(t *testing.T) {
	root := t.TempDir()
	h, r := newTestHandler(t, root)
	r.POST("/admin/products", h.AdminProductUpsert)
	cat := seedCategory(t, h)

	cookie := ""
	photo := bytes.Repeat(pngBytes, (2<<20)/len(pngBytes)) // ~2 MiB
	w := do(r, multipartRequest(t, "/admin/products", productFields(cat.ID), []testFile{
		{name: "photo.JPG", data: photo},
	}), &cookie)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/products", w.Header().Get("Location"))

	items, err := h.Store.Products()
	require.NoError(t, err)
	require.Len(t, items, 1)
	p := items[0]
	assert.Equal(t, "Coffee Mug", p.Title)
	assert.Equal(t, 1250, p.PriceCents)
	require.Len(t, p.Images, 1)

	pattern := regexp.MustCompile(fmt.Sprintf(`^/images/products/product-%d/[0-9a-f-]{36}\.jpg$`, p.ID))
	assert.Regexp(t, pattern, p.Images[0].ImageURL)

	onDisk := filepath.Join(root, filepath.FromSlash(p.Images[0].ImageURL[1:]))
	data, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, photo, data)
}

func TestProductUpsert_UpdateExisting(t *testing.T) {
	h, r := newTestHandler(t, t.TempDir())
	r.POST("/admin/products", h.AdminProductUpsert)
	cat := seedCategory(t, h)

	cookie := ""
	w := do(r, multipartRequest(t, "/admin/products", productFields(cat.ID), nil), &cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)

	items, err := h.Store.Products()
	require.NoError(t, err)
	require.Len(t, items, 1)

	fields := productFields(cat.ID)
	fields["id"] = fmt.Sprint(items[0].ID)
	fields["title"] = "Bigger Mug"
	w = do(r, multipartRequest(t, "/admin/products", fields, nil), &cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)

	got, err := h.Store.ProductByID(items[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Bigger Mug", got.Title)

	items, err = h.Store.Products()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestProductUpsert_RejectsInvalidExtension(t *testing.T) {
	root := t.TempDir()
	h, r := newTestHandler(t, root)
	r.POST("/admin/products", h.AdminProductUpsert)
	cat := seedCategory(t, h)

	cookie := ""
	w := do(r, multipartRequest(t, "/admin/products", productFields(cat.ID), []testFile{
		{name: "malware.exe", data: []byte("MZ...")},
	}), &cookie)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/products/new", w.Header().Get("Location"))

	// The whole transaction is rolled back: the product row for unrelated
	// fields is not committed either.
	items, err := h.Store.Products()
	require.NoError(t, err)
	assert.Empty(t, items)

	// No product directory was created for the rejected file.
	entries, err := os.ReadDir(filepath.Join(root, "images", "products"))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestProductUpsert_RejectsOversizedFile(t *testing.T) {
	h, r := newTestHandler(t, t.TempDir())
	r.POST("/admin/products", h.AdminProductUpsert)
	cat := seedCategory(t, h)

	cookie := ""
	big := make([]byte, uploads.MaxFileSize+1)
	w := do(r, multipartRequest(t, "/admin/products", productFields(cat.ID), []testFile{
		{name: "huge.png", data: big},
	}), &cookie)

	require.Equal(t, http.StatusSeeOther, w.Code)
	items, err := h.Store.Products()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestProductUpsert_SameNameFilesGetDistinctURLs(t *testing.T) {
	h, r := newTestHandler(t, t.TempDir())
	r.POST("/admin/products", h.AdminProductUpsert)
	cat := seedCategory(t, h)

	cookie := ""
	w := do(r, multipartRequest(t, "/admin/products", productFields(cat.ID), []testFile{
		{name: "photo.jpg", data: pngBytes},
		{name: "photo.jpg", data: pngBytes},
	}), &cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)

	items, err := h.Store.Products()
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Len(t, items[0].Images, 2)
	assert.NotEqual(t, items[0].Images[0].ImageURL, items[0].Images[1].ImageURL)
}

func TestProductUpsert_EmptyContentRootAborts(t *testing.T) {
	h, r := newTestHandler(t, "")
	r.POST("/admin/products", h.AdminProductUpsert)
	cat := seedCategory(t, h)

	cookie := ""
	w := do(r, multipartRequest(t, "/admin/products", productFields(cat.ID), []testFile{
		{name: "photo.jpg", data: pngBytes},
	}), &cookie)

	require.Equal(t, http.StatusSeeOther, w.Code)
	items, err := h.Store.Products()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestProductUpsert_BindFailureRedisplaysForm(t *testing.T) {
	h, r := newTestHandler(t, t.TempDir())
	r.POST("/admin/products", h.AdminProductUpsert)
	seedCategory(t, h)

	cookie := ""
	// Missing required title and price.
	w := do(r, multipartRequest(t, "/admin/products", map[string]string{"id": "0"}, nil), &cookie)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "admin_product_form.tmpl")

	items, err := h.Store.Products()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestImageDelete_RemovesRowAndFile(t *testing.T) {
	root := t.TempDir()
	h, r := newTestHandler(t, root)
	r.POST("/admin/products", h.AdminProductUpsert)
	r.POST("/admin/images/:id/delete", h.AdminImageDelete)
	cat := seedCategory(t, h)

	cookie := ""
	w := do(r, multipartRequest(t, "/admin/products", productFields(cat.ID), []testFile{
		{name: "photo.jpg", data: pngBytes},
	}), &cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)

	items, err := h.Store.Products()
	require.NoError(t, err)
	require.Len(t, items[0].Images, 1)
	img := items[0].Images[0]
	onDisk := filepath.Join(root, filepath.FromSlash(img.ImageURL[1:]))
	require.FileExists(t, onDisk)

	w = do(r, formRequest(fmt.Sprintf("/admin/images/%d/delete", img.ID), nil), &cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)

	got, err := h.Store.ProductByID(items[0].ID)
	require.NoError(t, err)
	assert.Empty(t, got.Images)
	assert.NoFileExists(t, onDisk)
}
