package handlers

import (
	"encoding/gob"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"storefront/internal/models"
	"storefront/internal/store"
)

// The cookie store serializes session values with gob; the cart map has to be
// registered before the first save.
func init() {
	gob.Register(map[string]int{})
}

// ViewData is the bag of values handed to a template.
type ViewData map[string]any

const (
	cartKey        = "cart" // map[string]int, productID -> qty
	sessionEmail   = "user_email"
	sessionName    = "user_username"
	sessionRole    = "user_role"
	flashNoticeKey = "flash_notice"
	flashErrorKey  = "flash_error"
)

// view decorates data with the signed-in identity, the cart badge count and
// any one-shot flash messages, then hands it to the template.
func (h *Handler) view(c *gin.Context, data ViewData) ViewData {
	if data == nil {
		data = ViewData{}
	}
	sess := sessions.Default(c)
	if v, ok := sess.Get(sessionEmail).(string); ok && v != "" {
		data["UserEmail"] = v
	}
	if v, ok := sess.Get(sessionName).(string); ok && v != "" {
		data["UserName"] = v
	}
	if v, ok := sess.Get(sessionRole).(string); ok && v != "" {
		data["UserRole"] = v
	}

	count := 0
	if raw := sess.Get(cartKey); raw != nil {
		if m, ok := raw.(map[string]int); ok {
			for _, q := range m {
				count += q
			}
		}
	}
	data["CartCount"] = count

	if msg := popFlash(c, flashNoticeKey); msg != "" {
		data["Notice"] = msg
	}
	if msg := popFlash(c, flashErrorKey); msg != "" {
		data["Error"] = msg
	}
	return data
}

func (h *Handler) render(c *gin.Context, code int, name string, data ViewData) {
	c.HTML(code, name, h.view(c, data))
}

func setFlash(c *gin.Context, key, msg string) {
	sess := sessions.Default(c)
	sess.Set(key, msg)
	_ = sess.Save()
}

func popFlash(c *gin.Context, key string) string {
	sess := sessions.Default(c)
	msg, _ := sess.Get(key).(string)
	if msg != "" {
		sess.Delete(key)
		_ = sess.Save()
	}
	return msg
}

func signIn(c *gin.Context, u *models.User) {
	sess := sessions.Default(c)
	sess.Set(sessionEmail, u.Email)
	sess.Set(sessionName, u.Username)
	sess.Set(sessionRole, string(u.Role))
	_ = sess.Save()
}

// currentUser resolves the signed-in user from the session identity.
func (h *Handler) currentUser(c *gin.Context) (*models.User, error) {
	if u, ok := c.Get("currentUser"); ok {
		if user, ok := u.(*models.User); ok {
			return user, nil
		}
	}
	sess := sessions.Default(c)
	email, _ := sess.Get(sessionEmail).(string)
	username, _ := sess.Get(sessionName).(string)
	ident := email
	if ident == "" {
		ident = username
	}
	if ident == "" {
		return nil, store.ErrNotFound
	}
	return h.Store.UserByIdent(ident)
}

// ---------- cart in sessions ----------

func getCart(c *gin.Context) map[string]int {
	sess := sessions.Default(c)
	raw := sess.Get(cartKey)
	if raw == nil {
		return map[string]int{}
	}
	m, ok := raw.(map[string]int)
	if !ok {
		return map[string]int{}
	}
	return m
}

func saveCart(c *gin.Context, cart map[string]int) {
	sess := sessions.Default(c)
	sess.Set(cartKey, cart)
	_ = sess.Save()
}

func clearCart(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Delete(cartKey)
	_ = sess.Save()
}
