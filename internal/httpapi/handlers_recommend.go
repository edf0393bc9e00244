package httpapi

import (
	"net/http"
	"strconv"

	"luxe-be/internal/cart"
)

func (s *Server) handleSimilarProducts(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ViewedProductIDs []int `json:"viewedProductIds"`
		Limit            int   `json:"limit,omitempty"`
	}
	if err := decode(r, &body); err != nil {
		fail(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	products, err := s.recommend.Similar(r.Context(), body.ViewedProductIDs, body.Limit)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	okCount(w, r, products, len(products))
}

func (s *Server) handleCartRecommendations(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CartItems []cart.Item `json:"cartItems"`
		Limit     int         `json:"limit,omitempty"`
	}
	if err := decode(r, &body); err != nil {
		fail(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	products, err := s.recommend.CartBased(r.Context(), body.CartItems, body.Limit)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	okCount(w, r, products, len(products))
}

func (s *Server) handleTrendingProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	products, err := s.recommend.Trending(r.Context(), limit)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	okCount(w, r, products, len(products))
}

func (s *Server) handlePersonalizedProducts(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	products, err := s.recommend.Personalized(r.Context(), r.PathValue("userId"), limit)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	okCount(w, r, products, len(products))
}
