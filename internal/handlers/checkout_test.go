package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/models"
)

func TestCheckout_PlacesOrderAndDecrementsStock(t *testing.T) {
	h, r := newTestHandler(t, t.TempDir())
	h.Routes(r)

	cat := seedCategory(t, h)
	p := &models.Product{Title: "Mug", PriceCents: 250, Stock: 5, CategoryID: cat.ID}
	require.NoError(t, h.Store.SaveProduct(p))

	cookie := ""
	w := do(r, formRequest("/register", url.Values{
		"contact": {"jo@example.com"}, "username": {"jo"}, "password": {"pw"},
	}), &cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = do(r, formRequest("/cart/add", url.Values{
		"product_id": {fmt.Sprint(p.ID)}, "qty": {"2"},
	}), &cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)

	w = do(r, formRequest("/checkout", nil), &cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)

	u, err := h.Store.UserByIdent("jo")
	require.NoError(t, err)
	orders, err := h.Store.OrdersByUser(u.ID)
	require.NoError(t, err)
	require.Len(t, orders, 1)

	o := orders[0]
	assert.Equal(t, models.OrderPending, o.Status)
	assert.Equal(t, models.PaymentPending, o.PaymentStatus)
	assert.Equal(t, 500, o.TotalCents)
	require.Len(t, o.Items, 1)
	assert.Equal(t, "Mug", o.Items[0].Title)
	assert.Equal(t, 2, o.Items[0].Qty)
	assert.Equal(t, fmt.Sprintf("/orders/%d", o.ID), w.Header().Get("Location"))

	got, err := h.Store.ProductByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock)
}

func TestCheckout_InsufficientStockRollsBack(t *testing.T) {
	h, r := newTestHandler(t, t.TempDir())
	h.Routes(r)

	cat := seedCategory(t, h)
	p := &models.Product{Title: "Mug", PriceCents: 250, Stock: 1, CategoryID: cat.ID}
	require.NoError(t, h.Store.SaveProduct(p))

	cookie := ""
	do(r, formRequest("/register", url.Values{
		"contact": {"jo@example.com"}, "username": {"jo"}, "password": {"pw"},
	}), &cookie)

	do(r, formRequest("/cart/add", url.Values{
		"product_id": {fmt.Sprint(p.ID)}, "qty": {"3"},
	}), &cookie)

	w := do(r, formRequest("/checkout", nil), &cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))

	u, err := h.Store.UserByIdent("jo")
	require.NoError(t, err)
	orders, err := h.Store.OrdersByUser(u.ID)
	require.NoError(t, err)
	assert.Empty(t, orders)

	got, err := h.Store.ProductByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Stock)
}

func TestCheckout_EmptyCart(t *testing.T) {
	h, r := newTestHandler(t, t.TempDir())
	h.Routes(r)

	cookie := ""
	do(r, formRequest("/register", url.Values{
		"contact": {"jo@example.com"}, "username": {"jo"}, "password": {"pw"},
	}), &cookie)

	w := do(r, formRequest("/checkout", nil), &cookie)
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/cart", w.Header().Get("Location"))
}
