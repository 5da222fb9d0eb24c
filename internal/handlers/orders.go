package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MyOrders lists the signed-in user's orders.
func (h *Handler) MyOrders(c *gin.Context) {
	u, err := h.currentUser(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	orders, err := h.Store.OrdersByUser(u.ID)
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	h.render(c, http.StatusOK, "orders.tmpl", ViewData{"Orders": orders})
}

// OrderDetail shows one order; owners only.
func (h *Handler) OrderDetail(c *gin.Context) {
	u, err := h.currentUser(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}
	o, err := h.Store.OrderByID(parseID(c.Param("id")))
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	if o.UserID != u.ID {
		c.String(http.StatusForbidden, "Forbidden")
		return
	}
	h.render(c, http.StatusOK, "order.tmpl", ViewData{"Order": o})
}
