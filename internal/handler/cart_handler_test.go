package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar-kart/internal/cart"
	"bazaar-kart/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockCheckoutService is a mock implementation of CheckoutService.
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) Checkout(ctx context.Context, cartID uuid.UUID, buyer model.BuyerDetails) (string, error) {
	args := m.Called(ctx, cartID, buyer)
	return args.String(0), args.Error(1)
}

func strPtr(s string) *string {
	return &s
}

func newCartHandler(t *testing.T) (*CartHandler, *cart.Store, *MockCheckoutService) {
	t.Helper()
	store := cart.NewStore()
	checkout := new(MockCheckoutService)
	return NewCartHandler(store, checkout, zerolog.Nop()), store, checkout
}

func doJSON(t *testing.T, h *CartHandler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	w := httptest.NewRecorder()
	h.Handle(w, req)
	return w
}

func decodeView(t *testing.T, w *httptest.ResponseRecorder) CartView {
	t.Helper()
	var view CartView
	require.NoError(t, json.NewDecoder(w.Body).Decode(&view))
	return view
}

func TestCartHandler_Create(t *testing.T) {
	h, store, _ := newCartHandler(t)

	w := doJSON(t, h, http.MethodPost, "/api/carts", nil)

	require.Equal(t, http.StatusCreated, w.Code)
	view := decodeView(t, w)
	assert.NotEqual(t, uuid.Nil, view.CartID)
	assert.Empty(t, view.Items)

	_, ok := store.Get(view.CartID)
	assert.True(t, ok, "created cart must be registered in the store")
}

func TestCartHandler_Create_MethodNotAllowed(t *testing.T) {
	h, _, _ := newCartHandler(t)

	w := doJSON(t, h, http.MethodGet, "/api/carts", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCartHandler_AddItem_AndPricedView(t *testing.T) {
	h, store, _ := newCartHandler(t)
	cartID, _ := store.Create()

	item := model.CartItem{ProductID: 1, Name: "A", Price: strPtr("100"), Quantity: 2}
	w := doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/carts/%s/items", cartID), item)

	require.Equal(t, http.StatusOK, w.Code)
	view := decodeView(t, w)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)

	// subtotal 200 -> handling 6, delivery 37, grand total 243
	assert.Equal(t, "200", view.Pricing.Subtotal.String())
	assert.Equal(t, "37", view.Pricing.DeliveryCharge.String())
	assert.Equal(t, "243", view.Pricing.GrandTotal.String())
	assert.Contains(t, view.Pricing.Message, "100.00")
}

func TestCartHandler_AddItem_AccumulatesSameProduct(t *testing.T) {
	h, store, _ := newCartHandler(t)
	cartID, _ := store.Create()

	item := model.CartItem{ProductID: 1, Name: "A", Price: strPtr("150"), Quantity: 1}
	doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/carts/%s/items", cartID), item)
	w := doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/carts/%s/items", cartID), item)

	view := decodeView(t, w)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, "0", view.Pricing.DeliveryCharge.String(), "subtotal 300 qualifies for free delivery")
	assert.Equal(t, "306", view.Pricing.GrandTotal.String())
}

func TestCartHandler_AddItem_Validation(t *testing.T) {
	h, store, _ := newCartHandler(t)
	cartID, _ := store.Create()
	path := fmt.Sprintf("/api/carts/%s/items", cartID)

	w := doJSON(t, h, http.MethodPost, path, model.CartItem{Name: "A", Quantity: 1})
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing product id")

	w = doJSON(t, h, http.MethodPost, path, model.CartItem{ProductID: 1, Quantity: 1})
	assert.Equal(t, http.StatusBadRequest, w.Code, "missing name")

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "malformed body")
}

func TestCartHandler_UpdateQty_ClampsToOne(t *testing.T) {
	h, store, _ := newCartHandler(t)
	cartID, c := store.Create()
	c.Add(model.CartItem{ProductID: 1, Name: "A", Price: strPtr("100"), Quantity: 2})

	w := doJSON(t, h, http.MethodPut, fmt.Sprintf("/api/carts/%s/items/1", cartID), updateQtyRequest{Quantity: 0})

	require.Equal(t, http.StatusOK, w.Code)
	view := decodeView(t, w)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 1, view.Items[0].Quantity)
}

func TestCartHandler_RemoveItem(t *testing.T) {
	h, store, _ := newCartHandler(t)
	cartID, c := store.Create()
	c.Add(model.CartItem{ProductID: 1, Name: "A", Price: strPtr("100"), Quantity: 1})
	c.Add(model.CartItem{ProductID: 2, Name: "B", Price: strPtr("50"), Quantity: 1})

	w := doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/carts/%s/items/1", cartID), nil)

	require.Equal(t, http.StatusOK, w.Code)
	view := decodeView(t, w)
	require.Len(t, view.Items, 1)
	assert.Equal(t, int64(2), view.Items[0].ProductID)
}

func TestCartHandler_ClearItems(t *testing.T) {
	h, store, _ := newCartHandler(t)
	cartID, c := store.Create()
	c.Add(model.CartItem{ProductID: 1, Name: "A", Price: strPtr("100"), Quantity: 1})

	w := doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/carts/%s/items", cartID), nil)

	require.Equal(t, http.StatusOK, w.Code)
	view := decodeView(t, w)
	assert.Empty(t, view.Items)
	assert.Equal(t, "0", view.Pricing.Subtotal.String())
}

func TestCartHandler_DeleteCart(t *testing.T) {
	h, store, _ := newCartHandler(t)
	cartID, _ := store.Create()

	w := doJSON(t, h, http.MethodDelete, fmt.Sprintf("/api/carts/%s", cartID), nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	_, ok := store.Get(cartID)
	assert.False(t, ok)
}

func TestCartHandler_UnknownCart(t *testing.T) {
	h, _, _ := newCartHandler(t)

	w := doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/carts/%s", uuid.New()), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/carts/%s/items", uuid.New()),
		model.CartItem{ProductID: 1, Name: "A", Quantity: 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartHandler_InvalidCartID(t *testing.T) {
	h, _, _ := newCartHandler(t)

	w := doJSON(t, h, http.MethodGet, "/api/carts/not-a-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartHandler_Checkout_Success(t *testing.T) {
	h, store, checkout := newCartHandler(t)
	cartID, c := store.Create()
	c.Add(model.CartItem{ProductID: 1, Name: "A", Price: strPtr("100"), Quantity: 2})

	buyer := model.BuyerDetails{Name: "Asha", Address: "12 MG Road", Phone: "9876543210"}
	checkout.On("Checkout", mock.Anything, cartID, buyer).Return("ORD-654321", nil)

	w := doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/carts/%s/checkout", cartID), buyer)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp CheckoutResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "ORD-654321", resp.OrderID)
	checkout.AssertExpectations(t)
}

func TestCartHandler_Checkout_Errors(t *testing.T) {
	tests := []struct {
		name           string
		serviceError   error
		expectedStatus int
	}{
		{name: "Cart not found", serviceError: model.ErrCartNotFound, expectedStatus: http.StatusNotFound},
		{name: "Empty cart", serviceError: model.ErrCartEmpty, expectedStatus: http.StatusBadRequest},
		{name: "Missing buyer field", serviceError: model.ErrMissingBuyerField, expectedStatus: http.StatusBadRequest},
		{name: "Product not found", serviceError: model.ErrProductNotFound, expectedStatus: http.StatusBadRequest},
		{name: "Insert failure", serviceError: fmt.Errorf("failed to persist order: boom"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, store, checkout := newCartHandler(t)
			cartID, _ := store.Create()

			checkout.On("Checkout", mock.Anything, cartID, mock.Anything).Return("", tt.serviceError)

			w := doJSON(t, h, http.MethodPost, fmt.Sprintf("/api/carts/%s/checkout", cartID),
				model.BuyerDetails{Name: "Asha", Address: "12 MG Road", Phone: "9876543210"})

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestCartHandler_UnknownSubPath(t *testing.T) {
	h, store, _ := newCartHandler(t)
	cartID, _ := store.Create()

	w := doJSON(t, h, http.MethodGet, fmt.Sprintf("/api/carts/%s/unknown", cartID), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
