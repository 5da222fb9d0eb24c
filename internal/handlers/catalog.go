package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Index renders the public product list.
func (h *Handler) Index(c *gin.Context) {
	items, err := h.Store.Products()
	if err != nil {
		h.Log.Error().Err(err).Msg("list products")
	}
	h.render(c, http.StatusOK, "list.tmpl", ViewData{"Items": items})
}

// ProductsJSON is the auxiliary JSON listing.
func (h *Handler) ProductsJSON(c *gin.Context) {
	items, err := h.Store.Products()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ProductDetail renders one product with its images.
func (h *Handler) ProductDetail(c *gin.Context) {
	p, err := h.Store.ProductByID(parseID(c.Param("id")))
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	h.render(c, http.StatusOK, "detail.tmpl", ViewData{"Item": p})
}
