package handler

import (
	"net/http"
	"strconv"

	"bazaar-kart/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product discovery HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests with pagination and optional
// category and search filters.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	limitStr := r.URL.Query().Get("limit")
	offsetStr := r.URL.Query().Get("offset")

	limit := 10 // default
	if limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit parameter", h.logger)
			return
		}
	}

	offset := 0 // default
	if offsetStr != "" {
		var err error
		offset, err = strconv.Atoi(offsetStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset parameter", h.logger)
			return
		}
	}

	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("search")

	products, err := h.service.GetAll(r.Context(), limit, offset, category, search)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	// Expecting path: /api/products/{id}
	path := r.URL.Path
	if len(path) < len("/api/products/") {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}
	idStr := path[len("/api/products/"):]

	if idStr == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product ID format", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "product not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Categories handles GET /api/products/categories requests.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	categories, err := h.service.Categories(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve categories", h.logger)
		return
	}

	if categories == nil {
		categories = []string{}
	}

	writeJSON(w, http.StatusOK, categories)
}
