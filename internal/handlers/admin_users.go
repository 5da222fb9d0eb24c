package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
)

// AdminUsers lists accounts with their roles and companies.
func (h *Handler) AdminUsers(c *gin.Context) {
	users, err := h.Store.Users()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	cos, err := h.Store.Companies()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	h.render(c, http.StatusOK, "admin_users.tmpl", ViewData{"Items": users, "Companies": cos})
}

// AdminUserUpdate changes a user's role and company association. Company
// membership only applies to company-role accounts.
func (h *Handler) AdminUserUpdate(c *gin.Context) {
	u, err := h.Store.UserByID(parseID(c.Param("id")))
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}

	role := models.Role(c.PostForm("role"))
	if !role.Valid() {
		setFlash(c, flashErrorKey, "Unknown role")
		c.Redirect(http.StatusSeeOther, "/admin/users")
		return
	}
	u.Role = role

	u.CompanyID = nil
	u.Company = nil
	if role == models.RoleCompany {
		if id := parseID(c.PostForm("company_id")); id != 0 {
			if _, err := h.Store.CompanyByID(id); err != nil {
				setFlash(c, flashErrorKey, "Unknown company")
				c.Redirect(http.StatusSeeOther, "/admin/users")
				return
			}
			u.CompanyID = &id
		}
	}

	if err := h.Store.SaveUser(u); err != nil {
		setFlash(c, flashErrorKey, err.Error())
	} else {
		setFlash(c, flashNoticeKey, "User updated")
	}
	c.Redirect(http.StatusSeeOther, "/admin/users")
}
