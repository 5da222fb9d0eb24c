package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"storefront/internal/models"
)

func (h *Handler) RegisterForm(c *gin.Context) {
	h.render(c, http.StatusOK, "register.tmpl", nil)
}

// Register creates an account from a contact (email or phone), username and
// password, and signs the new user in as a customer.
func (h *Handler) Register(c *gin.Context) {
	contact := strings.TrimSpace(c.PostForm("contact"))
	username := strings.TrimSpace(c.PostForm("username"))
	pw := c.PostForm("password")
	if contact == "" || username == "" || pw == "" {
		h.render(c, http.StatusBadRequest, "register.tmpl", ViewData{"Error": "Fill all fields"})
		return
	}

	var email, phone string
	if strings.Contains(contact, "@") {
		email = contact
	} else {
		phone = contact
	}

	if taken, err := h.Store.UsernameTaken(username); err != nil {
		h.render(c, http.StatusInternalServerError, "register.tmpl", ViewData{"Error": err.Error()})
		return
	} else if taken {
		h.render(c, http.StatusBadRequest, "register.tmpl", ViewData{"Error": "Username taken"})
		return
	}
	if taken, err := h.Store.ContactTaken(email, phone); err != nil {
		h.render(c, http.StatusInternalServerError, "register.tmpl", ViewData{"Error": err.Error()})
		return
	} else if taken {
		h.render(c, http.StatusBadRequest, "register.tmpl", ViewData{"Error": "Contact already registered"})
		return
	}

	hash, err := models.HashPassword(pw)
	if err != nil {
		h.render(c, http.StatusInternalServerError, "register.tmpl", ViewData{"Error": err.Error()})
		return
	}
	u := models.User{Username: username, Email: email, Phone: phone, PasswordHash: hash, Role: models.RoleCustomer}
	if err := h.Store.CreateUser(&u); err != nil {
		h.render(c, http.StatusInternalServerError, "register.tmpl", ViewData{"Error": err.Error()})
		return
	}

	signIn(c, &u)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) LoginForm(c *gin.Context) {
	h.render(c, http.StatusOK, "login.tmpl", nil)
}

// Login accepts a username, email or phone as the identifier.
func (h *Handler) Login(c *gin.Context) {
	ident := strings.TrimSpace(c.PostForm("username"))
	pw := c.PostForm("password")
	if ident == "" || pw == "" {
		h.render(c, http.StatusBadRequest, "login.tmpl", ViewData{"Error": "Fill all fields"})
		return
	}

	u, err := h.Store.UserByIdent(ident)
	if err != nil {
		h.render(c, http.StatusUnauthorized, "login.tmpl", ViewData{"Error": "User not found"})
		return
	}
	if !models.CheckPassword(u.PasswordHash, pw) {
		h.render(c, http.StatusUnauthorized, "login.tmpl", ViewData{"Error": "Wrong password"})
		return
	}

	signIn(c, u)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Redirect(http.StatusSeeOther, "/")
}
