package handler

import (
	"net/http"

	"bazaar-kart/internal/service"

	"github.com/rs/zerolog"
)

// OrderHandler handles order lookup HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// GetByOrderID handles GET /api/orders/{orderId} requests. A missing record
// and a backend failure collapse to the same error body; callers cannot
// distinguish them.
func (h *OrderHandler) GetByOrderID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	// Expecting path: /api/orders/{orderId}
	path := r.URL.Path
	if len(path) < len("/api/orders/") {
		writeError(w, http.StatusBadRequest, "order ID is required", h.logger)
		return
	}
	orderID := path[len("/api/orders/"):]

	if orderID == "" {
		writeError(w, http.StatusBadRequest, "order ID is required", h.logger)
		return
	}

	rec, err := h.service.GetByOrderID(r.Context(), orderID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "could not fetch order details", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}
