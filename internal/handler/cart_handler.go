package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"bazaar-kart/internal/cart"
	"bazaar-kart/internal/model"
	"bazaar-kart/internal/pricing"
	"bazaar-kart/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// CartHandler handles session cart and checkout HTTP requests.
type CartHandler struct {
	carts    *cart.Store
	checkout service.CheckoutService
	logger   zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(carts *cart.Store, checkout service.CheckoutService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		carts:    carts,
		checkout: checkout,
		logger:   logger.With().Str("handler", "cart").Logger(),
	}
}

// CartView is the priced read model of a session cart.
type CartView struct {
	CartID  uuid.UUID        `json:"cartId"`
	Items   []model.CartItem `json:"items"`
	Pricing pricing.Quote    `json:"pricing"`
}

// CheckoutResponse carries the generated order id back to the buyer.
type CheckoutResponse struct {
	OrderID string `json:"orderId"`
}

// updateQtyRequest is the body of a quantity update.
type updateQtyRequest struct {
	Quantity int `json:"quantity"`
}

// Handle dispatches /api/carts requests by method and path shape:
//
//	POST   /api/carts                          create a session cart
//	GET    /api/carts/{id}                     priced cart view
//	DELETE /api/carts/{id}                     drop the session cart
//	POST   /api/carts/{id}/items               add an item
//	DELETE /api/carts/{id}/items               clear all items
//	PUT    /api/carts/{id}/items/{productId}   set an item's quantity
//	DELETE /api/carts/{id}/items/{productId}   remove an item
//	POST   /api/carts/{id}/checkout            place the order
func (h *CartHandler) Handle(w http.ResponseWriter, r *http.Request) {
	rest := strings.Trim(strings.TrimPrefix(r.URL.Path, "/api/carts"), "/")

	if rest == "" {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
			return
		}
		h.create(w, r)
		return
	}

	segments := strings.Split(rest, "/")

	cartID, err := uuid.Parse(segments[0])
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid cart ID format", h.logger)
		return
	}

	switch {
	case len(segments) == 1:
		switch r.Method {
		case http.MethodGet:
			h.get(w, r, cartID)
		case http.MethodDelete:
			h.delete(w, r, cartID)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		}

	case len(segments) == 2 && segments[1] == "items":
		switch r.Method {
		case http.MethodPost:
			h.addItem(w, r, cartID)
		case http.MethodDelete:
			h.clearItems(w, r, cartID)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		}

	case len(segments) == 3 && segments[1] == "items":
		productID, err := strconv.ParseInt(segments[2], 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid product ID format", h.logger)
			return
		}
		switch r.Method {
		case http.MethodPut:
			h.updateQty(w, r, cartID, productID)
		case http.MethodDelete:
			h.removeItem(w, r, cartID, productID)
		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		}

	case len(segments) == 2 && segments[1] == "checkout":
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
			return
		}
		h.placeOrder(w, r, cartID)

	default:
		http.Error(w, "not found", http.StatusNotFound)
	}
}

func (h *CartHandler) create(w http.ResponseWriter, _ *http.Request) {
	id, _ := h.carts.Create()

	h.logger.Debug().Str("cart_id", id.String()).Msg("cart created")

	writeJSON(w, http.StatusCreated, CartView{
		CartID:  id,
		Items:   []model.CartItem{},
		Pricing: pricing.NewQuote(decimal.Zero),
	})
}

func (h *CartHandler) get(w http.ResponseWriter, _ *http.Request, cartID uuid.UUID) {
	c, ok := h.carts.Get(cartID)
	if !ok {
		writeError(w, http.StatusNotFound, "cart not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.view(cartID, c))
}

func (h *CartHandler) delete(w http.ResponseWriter, _ *http.Request, cartID uuid.UUID) {
	h.carts.Delete(cartID)
	w.WriteHeader(http.StatusNoContent)
}

func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request, cartID uuid.UUID) {
	c, ok := h.carts.Get(cartID)
	if !ok {
		writeError(w, http.StatusNotFound, "cart not found", h.logger)
		return
	}

	var item model.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if item.ProductID <= 0 {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}
	if item.Name == "" {
		writeError(w, http.StatusBadRequest, "product name is required", h.logger)
		return
	}

	c.Add(item)

	writeJSON(w, http.StatusOK, h.view(cartID, c))
}

func (h *CartHandler) clearItems(w http.ResponseWriter, _ *http.Request, cartID uuid.UUID) {
	c, ok := h.carts.Get(cartID)
	if !ok {
		writeError(w, http.StatusNotFound, "cart not found", h.logger)
		return
	}

	c.Clear()

	writeJSON(w, http.StatusOK, h.view(cartID, c))
}

func (h *CartHandler) updateQty(w http.ResponseWriter, r *http.Request, cartID uuid.UUID, productID int64) {
	c, ok := h.carts.Get(cartID)
	if !ok {
		writeError(w, http.StatusNotFound, "cart not found", h.logger)
		return
	}

	var req updateQtyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	c.UpdateQty(productID, req.Quantity)

	writeJSON(w, http.StatusOK, h.view(cartID, c))
}

func (h *CartHandler) removeItem(w http.ResponseWriter, _ *http.Request, cartID uuid.UUID, productID int64) {
	c, ok := h.carts.Get(cartID)
	if !ok {
		writeError(w, http.StatusNotFound, "cart not found", h.logger)
		return
	}

	c.Remove(productID)

	writeJSON(w, http.StatusOK, h.view(cartID, c))
}

func (h *CartHandler) placeOrder(w http.ResponseWriter, r *http.Request, cartID uuid.UUID) {
	var buyer model.BuyerDetails
	if err := json.NewDecoder(r.Body).Decode(&buyer); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	orderID, err := h.checkout.Checkout(r.Context(), cartID, buyer)
	if err != nil {
		status := http.StatusInternalServerError
		message := "failed to place order"

		switch {
		case errors.Is(err, model.ErrCartNotFound):
			status = http.StatusNotFound
			message = "cart not found"
		case errors.Is(err, model.ErrCartEmpty):
			status = http.StatusBadRequest
			message = "cart contains no items"
		case errors.Is(err, model.ErrMissingBuyerField):
			status = http.StatusBadRequest
			message = "buyer name, address and phone are required"
		case errors.Is(err, model.ErrProductNotFound):
			status = http.StatusBadRequest
			message = "one or more products not found"
		}

		writeError(w, status, message, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, CheckoutResponse{OrderID: orderID})
}

// view builds the priced read model for a cart.
func (h *CartHandler) view(cartID uuid.UUID, c *cart.Cart) CartView {
	items := c.Items()
	if items == nil {
		items = []model.CartItem{}
	}
	return CartView{
		CartID:  cartID,
		Items:   items,
		Pricing: pricing.NewQuote(c.Subtotal()),
	}
}
