package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
)

func (h *Handler) AdminOrders(c *gin.Context) {
	orders, err := h.Store.Orders()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	h.render(c, http.StatusOK, "admin_orders.tmpl", ViewData{"Orders": orders})
}

func (h *Handler) AdminOrderDetail(c *gin.Context) {
	o, err := h.Store.OrderByID(parseID(c.Param("id")))
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}
	h.render(c, http.StatusOK, "admin_order.tmpl", ViewData{"Order": o})
}

// AdminOrderStatus moves an order to a new fulfilment or payment status. Both
// fields are optional; submitted values must belong to their enumerations.
func (h *Handler) AdminOrderStatus(c *gin.Context) {
	o, err := h.Store.OrderByID(parseID(c.Param("id")))
	if err != nil {
		c.String(http.StatusNotFound, "Not found")
		return
	}

	if v := c.PostForm("status"); v != "" {
		status := models.OrderStatus(v)
		if !status.Valid() {
			setFlash(c, flashErrorKey, "Unknown order status")
			c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/orders/%d", o.ID))
			return
		}
		o.Status = status
	}
	if v := c.PostForm("payment_status"); v != "" {
		status := models.PaymentStatus(v)
		if !status.Valid() {
			setFlash(c, flashErrorKey, "Unknown payment status")
			c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/orders/%d", o.ID))
			return
		}
		o.PaymentStatus = status
	}

	if err := h.Store.SaveOrder(o); err != nil {
		setFlash(c, flashErrorKey, err.Error())
	} else {
		setFlash(c, flashNoticeKey, "Order updated")
	}
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/admin/orders/%d", o.ID))
}
