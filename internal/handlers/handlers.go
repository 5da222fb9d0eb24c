// Package handlers wires every HTTP route of the storefront: the public
// catalog, session cart, checkout, auth and the admin area that hosts the
// product upsert and image upload workflow.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"storefront/internal/config"
	"storefront/internal/models"
	"storefront/internal/store"
)

// Handler carries the shared dependencies for every route.
type Handler struct {
	Store store.Store
	Cfg   config.Config
	Log   zerolog.Logger
}

// New builds a Handler.
func New(st store.Store, cfg config.Config, log zerolog.Logger) *Handler {
	return &Handler{Store: st, Cfg: cfg, Log: log}
}

// Routes mounts all application routes on r.
func (h *Handler) Routes(r *gin.Engine) {
	r.GET("/", h.Index)
	r.GET("/products", h.ProductsJSON)
	r.GET("/product/:id", h.ProductDetail)

	r.GET("/register", h.RegisterForm)
	r.POST("/register", h.Register)
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	r.GET("/cart", h.CartView)
	r.POST("/cart/add", h.CartAdd)
	r.POST("/cart/update", h.CartUpdate)
	r.POST("/cart/remove", h.CartRemove)
	r.POST("/checkout", h.mustLogin(), h.Checkout)
	r.GET("/orders", h.mustLogin(), h.MyOrders)
	r.GET("/orders/:id", h.mustLogin(), h.OrderDetail)

	staff := r.Group("/admin", h.mustRole(models.RoleAdmin, models.RoleEmployee))
	{
		staff.GET("/products", h.AdminProducts)
		staff.GET("/products/new", h.AdminProductForm)
		staff.GET("/products/:id/edit", h.AdminProductForm)
		staff.POST("/products", h.AdminProductUpsert)
		staff.POST("/products/:id/delete", h.AdminProductDelete)
		staff.POST("/images/:id/delete", h.AdminImageDelete)

		staff.GET("/orders", h.AdminOrders)
		staff.GET("/orders/:id", h.AdminOrderDetail)
		staff.POST("/orders/:id/status", h.AdminOrderStatus)
	}

	admin := r.Group("/admin", h.mustRole(models.RoleAdmin))
	{
		admin.GET("/categories", h.AdminCategories)
		admin.GET("/categories/new", h.AdminCategoryForm)
		admin.GET("/categories/:id/edit", h.AdminCategoryForm)
		admin.POST("/categories", h.AdminCategoryUpsert)
		admin.POST("/categories/:id/delete", h.AdminCategoryDelete)

		admin.GET("/companies", h.AdminCompanies)
		admin.GET("/companies/new", h.AdminCompanyForm)
		admin.GET("/companies/:id/edit", h.AdminCompanyForm)
		admin.POST("/companies", h.AdminCompanyUpsert)
		admin.POST("/companies/:id/delete", h.AdminCompanyDelete)

		admin.GET("/users", h.AdminUsers)
		admin.POST("/users/:id", h.AdminUserUpdate)
	}
}
