package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestResolveRateTier(t *testing.T) {
	t.Run("Strict - Order creation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)

		_, _, tier := resolveRateTier(req)

		assert.Equal(t, "strict", tier)
	})

	t.Run("Strict - Payment processing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/checkout/process-payment", nil)

		_, _, tier := resolveRateTier(req)

		assert.Equal(t, "strict", tier)
	})

	t.Run("General - Order listing", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)

		_, _, tier := resolveRateTier(req)

		assert.Equal(t, "general", tier)
	})

	t.Run("Frontend - Client type header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("X-Client-Type", "frontend-heavy")

		_, _, tier := resolveRateTier(req)

		assert.Equal(t, "frontend", tier)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("Allows within burst", func(t *testing.T) {
		handler := RateLimitMiddleware(okHandler())

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		req.Header.Set("X-Session-ID", "limit-test-ok")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Rejects after strict burst exhausted", func(t *testing.T) {
		handler := RateLimitMiddleware(okHandler())

		var last int
		for i := 0; i < burstStrict+1; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
			req.Header.Set("X-Session-ID", "limit-test-strict")

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			last = rec.Code
		}

		assert.Equal(t, http.StatusTooManyRequests, last)
	})

	t.Run("Separate quotas per identity", func(t *testing.T) {
		handler := RateLimitMiddleware(okHandler())

		for i := 0; i < burstStrict; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
			req.Header.Set("X-Session-ID", "limit-test-a")
			handler.ServeHTTP(httptest.NewRecorder(), req)
		}

		req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
		req.Header.Set("X-Session-ID", "limit-test-b")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCORS(t *testing.T) {
	handler := CORS(okHandler())

	t.Run("Sets headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Preflight short-circuits", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}
