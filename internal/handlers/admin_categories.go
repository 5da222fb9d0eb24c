package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
)

func (h *Handler) AdminCategories(c *gin.Context) {
	cats, err := h.Store.Categories()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	h.render(c, http.StatusOK, "admin_categories.tmpl", ViewData{"Items": cats})
}

func (h *Handler) AdminCategoryForm(c *gin.Context) {
	data := ViewData{"Mode": "create"}
	if idStr := c.Param("id"); idStr != "" {
		cat, err := h.Store.CategoryByID(parseID(idStr))
		if err != nil {
			c.String(http.StatusNotFound, "Not found")
			return
		}
		data["Mode"] = "edit"
		data["Item"] = cat
	}
	h.render(c, http.StatusOK, "admin_category_form.tmpl", data)
}

func (h *Handler) AdminCategoryUpsert(c *gin.Context) {
	id := parseID(c.PostForm("id"))
	name := strings.TrimSpace(c.PostForm("name"))
	order := parseID(c.PostForm("display_order"))
	if name == "" {
		h.render(c, http.StatusBadRequest, "admin_category_form.tmpl", ViewData{"Mode": "create", "Error": "Name is required"})
		return
	}

	cat := &models.Category{Name: name, DisplayOrder: int(order)}
	if id != 0 {
		existing, err := h.Store.CategoryByID(id)
		if err != nil {
			c.String(http.StatusNotFound, "Not found")
			return
		}
		existing.Name = name
		existing.DisplayOrder = int(order)
		cat = existing
	}
	if err := h.Store.SaveCategory(cat); err != nil {
		h.render(c, http.StatusInternalServerError, "admin_category_form.tmpl", ViewData{"Mode": "create", "Error": err.Error()})
		return
	}
	setFlash(c, flashNoticeKey, "Category saved")
	c.Redirect(http.StatusSeeOther, "/admin/categories")
}

func (h *Handler) AdminCategoryDelete(c *gin.Context) {
	if err := h.Store.DeleteCategory(parseID(c.Param("id"))); err != nil {
		setFlash(c, flashErrorKey, "Category not found")
	} else {
		setFlash(c, flashNoticeKey, "Category deleted")
	}
	c.Redirect(http.StatusSeeOther, "/admin/categories")
}
