package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
	"storefront/internal/store"
	"storefront/internal/uploads"
)

// ProductForm is the bound product form. A zero ID means create.
type ProductForm struct {
	ID          uint   `form:"id"`
	Title       string `form:"title" binding:"required"`
	Description string `form:"description"`
	Price       string `form:"price" binding:"required"`
	Stock       int    `form:"stock"`
	CategoryID  uint   `form:"category_id" binding:"required"`
}

// AdminProducts lists all products for the back office.
func (h *Handler) AdminProducts(c *gin.Context) {
	items, err := h.Store.Products()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	h.render(c, http.StatusOK, "admin_products.tmpl", ViewData{"Items": items})
}

// AdminProductForm renders the create or edit form.
func (h *Handler) AdminProductForm(c *gin.Context) {
	cats, err := h.Store.Categories()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	data := ViewData{"Mode": "create", "Categories": cats}
	if idStr := c.Param("id"); idStr != "" {
		item, err := h.Store.ProductByID(parseID(idStr))
		if err != nil {
			c.String(http.StatusNotFound, "Not found")
			return
		}
		data["Mode"] = "edit"
		data["Item"] = item
		data["Form"] = ViewData{
			"ID":          item.ID,
			"Title":       item.Title,
			"Description": item.Description,
			"Price":       fmt.Sprintf("%.2f", float64(item.PriceCents)/100.0),
			"Stock":       item.Stock,
			"CategoryID":  item.CategoryID,
		}
	}
	h.render(c, http.StatusOK, "admin_product_form.tmpl", data)
}

// AdminProductUpsert creates or updates a product and stores its uploaded
// images. The product row, the storage resolution and every file are handled
// inside one transaction: the first failure rolls everything back and the
// request redirects to the edit form with a notification. Files written to
// disk before a later file fails are not removed; their database rows are
// never committed, so a partial upload can leave orphaned files on disk.
func (h *Handler) AdminProductUpsert(c *gin.Context) {
	var form ProductForm
	if err := c.ShouldBind(&form); err != nil {
		// Form validation failed: redisplay, nothing touched the database or
		// the filesystem.
		h.redisplayProductForm(c, &form, "Fill title, price and category")
		return
	}

	files := productFormFiles(c)

	var productID uint
	err := h.Store.Transaction(func(s store.Store) error {
		p, err := h.persistProduct(s, &form)
		if err != nil {
			return err
		}
		productID = p.ID

		resolver, err := uploads.NewResolver(h.Cfg.ContentRoot)
		if err != nil {
			return err
		}
		paths, err := resolver.Resolve(p.ID)
		if err != nil {
			return err
		}

		for _, fh := range files {
			if err := uploads.ValidateFile(fh.Filename, fh.Size); err != nil {
				return err
			}
			data, err := readUpload(fh)
			if err != nil {
				return &uploads.UploadError{File: fh.Filename, Err: err}
			}
			img, err := uploads.Save(p.ID, fh.Filename, data, paths.ProductDir)
			if err != nil {
				return err
			}
			if err := s.AddImage(img); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		h.Log.Warn().Err(err).Uint("product_id", form.ID).Msg("product upsert failed")
		setFlash(c, flashErrorKey, uploads.UserMessage(err))
		if form.ID != 0 {
			c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/products/%d/edit", form.ID))
		} else {
			c.Redirect(http.StatusSeeOther, "/admin/products/new")
		}
		return
	}

	h.Log.Info().Uint("product_id", productID).Int("images", len(files)).Msg("product saved")
	setFlash(c, flashNoticeKey, "Product saved")
	c.Redirect(http.StatusSeeOther, "/admin/products")
}

// persistProduct inserts or updates the product row so an ID exists for path
// construction before any file is processed.
func (h *Handler) persistProduct(s store.Store, form *ProductForm) (*models.Product, error) {
	var p *models.Product
	if form.ID != 0 {
		existing, err := s.ProductByID(form.ID)
		if err != nil {
			return nil, err
		}
		p = existing
	} else {
		p = &models.Product{}
	}
	p.Title = strings.TrimSpace(form.Title)
	p.Description = strings.TrimSpace(form.Description)
	p.PriceCents = parsePriceCents(form.Price)
	p.Stock = form.Stock
	if p.Stock < 0 {
		p.Stock = 0
	}
	p.CategoryID = form.CategoryID
	if err := s.SaveProduct(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (h *Handler) redisplayProductForm(c *gin.Context, form *ProductForm, msg string) {
	cats, _ := h.Store.Categories()
	data := ViewData{
		"Mode":       "create",
		"Error":      msg,
		"Categories": cats,
		"Form": ViewData{
			"ID":          form.ID,
			"Title":       form.Title,
			"Description": form.Description,
			"Price":       form.Price,
			"Stock":       form.Stock,
			"CategoryID":  form.CategoryID,
		},
	}
	if form.ID != 0 {
		data["Mode"] = "edit"
		if item, err := h.Store.ProductByID(form.ID); err == nil {
			data["Item"] = item
		}
	}
	h.render(c, http.StatusBadRequest, "admin_product_form.tmpl", data)
}

// productFormFiles collects the uploaded image parts; a submission with no
// files is fine.
func productFormFiles(c *gin.Context) []*multipart.FileHeader {
	mf, err := c.MultipartForm()
	if err != nil || mf == nil {
		return nil
	}
	return mf.File["images"]
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// AdminProductDelete removes the product, its image rows and its directory on
// disk.
func (h *Handler) AdminProductDelete(c *gin.Context) {
	id := parseID(c.Param("id"))
	if err := h.Store.DeleteProduct(id); err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	if resolver, err := uploads.NewResolver(h.Cfg.ContentRoot); err == nil {
		if paths, err := resolver.Resolve(id); err == nil {
			if err := os.RemoveAll(paths.ProductDir); err != nil {
				h.Log.Warn().Err(err).Str("dir", paths.ProductDir).Msg("remove product images")
			}
		}
	}
	setFlash(c, flashNoticeKey, "Product deleted")
	c.Redirect(http.StatusSeeOther, "/admin/products")
}

// AdminImageDelete removes one image row and its file. Replacement is always
// delete plus re-upload; image rows are never edited in place.
func (h *Handler) AdminImageDelete(c *gin.Context) {
	img, err := h.Store.ImageByID(parseID(c.Param("id")))
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	if err := h.Store.DeleteImage(img.ID); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	onDisk := filepath.Join(h.Cfg.ContentRoot, filepath.FromSlash(strings.TrimPrefix(img.ImageURL, "/")))
	if err := os.Remove(onDisk); err != nil && !os.IsNotExist(err) {
		h.Log.Warn().Err(err).Str("file", onDisk).Msg("remove image file")
	}
	setFlash(c, flashNoticeKey, "Image removed")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/products/%d/edit", img.ProductID))
}
