package router

import (
	"net/http"
	"strings"

	"bazaar-kart/internal/handler"
	"bazaar-kart/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product handler function
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/api/products" || r.URL.Path == "/api/products/":
			productHandler.GetAll(w, r)
		case r.URL.Path == "/api/products/categories":
			productHandler.Categories(w, r)
		default:
			productHandler.GetByID(w, r)
		}
	}

	// Register product routes (both with and without trailing slash)
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Cart routes: creation, item mutation, priced view and checkout all hang
	// off /api/carts; the handler dispatches on path shape.
	mux.HandleFunc("/api/carts", cartHandler.Handle)
	mux.HandleFunc("/api/carts/", cartHandler.Handle)

	// Order lookup
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/orders/") && r.URL.Path != "/api/orders/" {
			orderHandler.GetByOrderID(w, r)
			return
		}
		http.Error(w, "not found", http.StatusNotFound)
	}

	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Apply middleware in order: Recovery -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
