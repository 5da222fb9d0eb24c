package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"storefront/internal/models"
)

// mustLogin redirects anonymous visitors to the login page.
func (h *Handler) mustLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)
		if sess.Get(sessionEmail) == nil && sess.Get(sessionName) == nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// mustRole loads the signed-in user and requires one of the given roles. The
// check always goes to the database; the role cached in the session is for
// navigation only.
func (h *Handler) mustRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := h.currentUser(c)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		for _, r := range roles {
			if u.Role == r {
				c.Set("currentUser", u)
				c.Next()
				return
			}
		}
		setFlash(c, flashErrorKey, "You do not have access to that page.")
		c.Redirect(http.StatusSeeOther, "/")
		c.Abort()
	}
}
