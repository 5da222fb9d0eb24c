package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"storefront/internal/models"
	"storefront/internal/store"
)

func (h *Handler) CartAdd(c *gin.Context) {
	id := strings.TrimSpace(c.PostForm("product_id"))
	qtyStr := strings.TrimSpace(c.PostForm("qty"))
	if id == "" {
		c.String(http.StatusBadRequest, "no product")
		return
	}
	if qtyStr == "" {
		qtyStr = "1"
	}
	var qty int
	fmt.Sscanf(qtyStr, "%d", &qty)
	if qty <= 0 {
		qty = 1
	}

	p, err := h.Store.ProductByID(parseID(id))
	if err != nil {
		c.String(http.StatusNotFound, "product not found")
		return
	}
	if p.Stock <= 0 {
		c.String(http.StatusBadRequest, "out of stock")
		return
	}

	cart := getCart(c)
	cart[id] += qty
	if cart[id] < 1 {
		cart[id] = 1
	}
	saveCart(c, cart)

	c.Redirect(http.StatusSeeOther, "/cart")
}

func (h *Handler) CartUpdate(c *gin.Context) {
	id := strings.TrimSpace(c.PostForm("product_id"))
	qtyStr := strings.TrimSpace(c.PostForm("qty"))
	if id == "" {
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}
	var qty int
	fmt.Sscanf(qtyStr, "%d", &qty)
	cart := getCart(c)
	if qty <= 0 {
		delete(cart, id)
	} else {
		cart[id] = qty
	}
	saveCart(c, cart)
	c.Redirect(http.StatusSeeOther, "/cart")
}

func (h *Handler) CartRemove(c *gin.Context) {
	id := strings.TrimSpace(c.PostForm("product_id"))
	if id == "" {
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}
	cart := getCart(c)
	delete(cart, id)
	saveCart(c, cart)
	c.Redirect(http.StatusSeeOther, "/cart")
}

// cartRow is one rendered line of the cart page.
type cartRow struct {
	Product       models.Product
	Qty           int
	SubtotalCents int
}

func (h *Handler) CartView(c *gin.Context) {
	cart := getCart(c)
	var rows []cartRow
	total := 0
	for id, q := range cart {
		p, err := h.Store.ProductByID(parseID(id))
		if err != nil {
			continue
		}
		sub := p.PriceCents * q
		rows = append(rows, cartRow{Product: *p, Qty: q, SubtotalCents: sub})
		total += sub
	}
	h.render(c, http.StatusOK, "cart.tmpl", ViewData{"Rows": rows, "TotalCents": total})
}

// Checkout turns the session cart into an order. Stock is decremented and the
// order with its items is created in one transaction; any failure rolls the
// whole checkout back and the cart stays untouched.
func (h *Handler) Checkout(c *gin.Context) {
	cart := getCart(c)
	if len(cart) == 0 {
		setFlash(c, flashErrorKey, "Your cart is empty.")
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}
	u, err := h.currentUser(c)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	var orderID uint
	err = h.Store.Transaction(func(s store.Store) error {
		o := models.Order{
			UserID:        u.ID,
			Status:        models.OrderPending,
			PaymentStatus: models.PaymentPending,
		}
		for id, qty := range cart {
			p, err := s.ProductByID(parseID(id))
			if errors.Is(err, store.ErrNotFound) {
				continue
			}
			if err != nil {
				return err
			}
			if p.Stock < qty {
				return fmt.Errorf("not enough stock for %s", p.Title)
			}
			p.Stock -= qty
			if err := s.SaveProduct(p); err != nil {
				return err
			}
			o.Items = append(o.Items, models.OrderItem{
				ProductID:  p.ID,
				Title:      p.Title,
				PriceCents: p.PriceCents,
				Qty:        qty,
			})
			o.TotalCents += p.PriceCents * qty
		}
		if len(o.Items) == 0 {
			return errors.New("no orderable items in cart")
		}
		if err := s.CreateOrder(&o); err != nil {
			return err
		}
		orderID = o.ID
		return nil
	})
	if err != nil {
		setFlash(c, flashErrorKey, err.Error())
		c.Redirect(http.StatusSeeOther, "/cart")
		return
	}

	clearCart(c)
	setFlash(c, flashNoticeKey, "Order placed.")
	c.Redirect(http.StatusSeeOther, fmt.Sprintf("/orders/%d", orderID))
}
