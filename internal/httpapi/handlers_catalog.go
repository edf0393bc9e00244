package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"luxe-be/internal/catalog"
)

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := catalog.Filter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Sort:     q.Get("sort"),
	}
	if v := q.Get("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &f
		}
	}
	if v := q.Get("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &f
		}
	}

	products, err := s.catalog.ListProducts(r.Context(), filter)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	okCount(w, r, products, len(products))
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		fail(w, r, http.StatusBadRequest, "Invalid product id")
		return
	}

	product, err := s.catalog.GetProduct(r.Context(), id)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			fail(w, r, http.StatusNotFound, "Product not found")
			return
		}
		s.internalError(w, r, err)
		return
	}

	ok(w, r, product)
}
