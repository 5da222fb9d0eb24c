package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
)

func (h *Handler) AdminCompanies(c *gin.Context) {
	cos, err := h.Store.Companies()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	h.render(c, http.StatusOK, "admin_companies.tmpl", ViewData{"Items": cos})
}

func (h *Handler) AdminCompanyForm(c *gin.Context) {
	data := ViewData{"Mode": "create"}
	if idStr := c.Param("id"); idStr != "" {
		co, err := h.Store.CompanyByID(parseID(idStr))
		if err != nil {
			c.String(http.StatusNotFound, "Not found")
			return
		}
		data["Mode"] = "edit"
		data["Item"] = co
	}
	h.render(c, http.StatusOK, "admin_company_form.tmpl", data)
}

func (h *Handler) AdminCompanyUpsert(c *gin.Context) {
	id := parseID(c.PostForm("id"))
	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		h.render(c, http.StatusBadRequest, "admin_company_form.tmpl", ViewData{"Mode": "create", "Error": "Name is required"})
		return
	}

	co := &models.Company{}
	if id != 0 {
		existing, err := h.Store.CompanyByID(id)
		if err != nil {
			c.String(http.StatusNotFound, "Not found")
			return
		}
		co = existing
	}
	co.Name = name
	co.StreetAddress = strings.TrimSpace(c.PostForm("street_address"))
	co.City = strings.TrimSpace(c.PostForm("city"))
	co.PostalCode = strings.TrimSpace(c.PostForm("postal_code"))
	co.Phone = strings.TrimSpace(c.PostForm("phone"))

	if err := h.Store.SaveCompany(co); err != nil {
		h.render(c, http.StatusInternalServerError, "admin_company_form.tmpl", ViewData{"Mode": "create", "Error": err.Error()})
		return
	}
	setFlash(c, flashNoticeKey, "Company saved")
	c.Redirect(http.StatusSeeOther, "/admin/companies")
}

func (h *Handler) AdminCompanyDelete(c *gin.Context) {
	if err := h.Store.DeleteCompany(parseID(c.Param("id"))); err != nil {
		setFlash(c, flashErrorKey, "Company not found")
	} else {
		setFlash(c, flashNoticeKey, "Company deleted")
	}
	c.Redirect(http.StatusSeeOther, "/admin/companies")
}
