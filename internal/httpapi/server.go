// Package httpapi exposes the application services over REST with a
// uniform JSON envelope.
package httpapi

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"luxe-be/internal/cart"
	"luxe-be/internal/catalog"
	"luxe-be/internal/logger"
	"luxe-be/internal/metrics"
	"luxe-be/internal/order"
	"luxe-be/internal/payment"
	"luxe-be/internal/recommend"
)

// Server holds the service dependencies behind the REST routes.
type Server struct {
	catalog    catalog.Service
	cart       cart.Service
	orders     order.Service
	recommend  recommend.Service
	gateway    payment.Gateway
	metrics    *metrics.Requests
	invoiceDir string
	started    time.Time
}

func NewServer(
	catalogSvc catalog.Service,
	cartSvc cart.Service,
	orderSvc order.Service,
	recommendSvc recommend.Service,
	gateway payment.Gateway,
	requestMetrics *metrics.Requests,
	invoiceDir string,
) *Server {
	return &Server{
		catalog:    catalogSvc,
		cart:       cartSvc,
		orders:     orderSvc,
		recommend:  recommendSvc,
		gateway:    gateway,
		metrics:    requestMetrics,
		invoiceDir: invoiceDir,
		started:    time.Now(),
	}
}

// Routes registers every endpoint on a fresh mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)

	mux.HandleFunc("GET /api/products", s.handleListProducts)
	mux.HandleFunc("GET /api/products/{id}", s.handleGetProduct)

	mux.HandleFunc("GET /api/cart/{sessionId}", s.handleGetCart)
	mux.HandleFunc("POST /api/cart/{sessionId}/add", s.handleAddCartItem)
	mux.HandleFunc("PUT /api/cart/{sessionId}/update/{productId}", s.handleUpdateCartItem)
	mux.HandleFunc("DELETE /api/cart/{sessionId}/remove/{productId}", s.handleRemoveCartItem)
	mux.HandleFunc("DELETE /api/cart/{sessionId}/clear", s.handleClearCart)

	mux.HandleFunc("POST /api/checkout/validate", s.handleCheckoutValidate)
	mux.HandleFunc("POST /api/checkout/calculate-shipping", s.handleCalculateShipping)
	mux.HandleFunc("POST /api/checkout/calculate-tax", s.handleCalculateTax)
	mux.HandleFunc("POST /api/checkout/process-payment", s.handleProcessPayment)
	mux.HandleFunc("GET /api/checkout/payment-methods", s.handlePaymentMethods)

	mux.HandleFunc("POST /api/orders", s.handleCreateOrder)
	mux.HandleFunc("GET /api/orders", s.handleListOrders)
	mux.HandleFunc("GET /api/orders/{orderId}", s.handleGetOrder)
	mux.HandleFunc("PUT /api/orders/{orderId}/status", s.handleUpdateOrderStatus)
	mux.HandleFunc("POST /api/orders/{orderId}/cancel", s.handleCancelOrder)
	mux.HandleFunc("GET /api/orders/{orderId}/track", s.handleTrackOrder)
	mux.HandleFunc("POST /api/orders/validate-coupon", s.handleValidateCoupon)
	mux.HandleFunc("GET /api/orders/{orderId}/invoice", s.handleDownloadInvoice)
	mux.HandleFunc("GET /api/invoices/{fileName}", s.handleServeInvoice)

	mux.HandleFunc("POST /api/recommendations/similar", s.handleSimilarProducts)
	mux.HandleFunc("POST /api/recommendations/cart-based", s.handleCartRecommendations)
	mux.HandleFunc("GET /api/recommendations/trending", s.handleTrendingProducts)
	mux.HandleFunc("GET /api/recommendations/personalized/{userId}", s.handlePersonalizedProducts)

	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	payload := map[string]any{
		"status":    "healthy",
		"uptime":    time.Since(s.started).Round(time.Second).String(),
		"timestamp": time.Now().UTC(),
	}
	if s.metrics != nil {
		payload["requests"] = s.metrics.Snapshot()
	}
	ok(w, r, payload)
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromCtx(r.Context()).Error("request failed",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	fail(w, r, http.StatusInternalServerError, "Internal server error")
}
