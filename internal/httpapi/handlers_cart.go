package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"luxe-be/internal/cart"
)

func (s *Server) handleGetCart(w http.ResponseWriter, r *http.Request) {
	c, err := s.cart.GetCart(r.Context(), r.PathValue("sessionId"))
	if err != nil {
		s.internalError(w, r, err)
		return
	}
	ok(w, r, c)
}

func (s *Server) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var item cart.Item
	if err := decode(r, &item); err != nil {
		fail(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	items, err := s.cart.AddItem(r.Context(), r.PathValue("sessionId"), item)
	if err != nil {
		if errors.Is(err, cart.ErrMissingFields) {
			fail(w, r, http.StatusBadRequest, "Product ID, name and price are required")
			return
		}
		s.internalError(w, r, err)
		return
	}

	okMessage(w, r, items, "Item added to cart")
}

func (s *Server) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(r.PathValue("productId"))
	if err != nil {
		fail(w, r, http.StatusBadRequest, "Invalid product id")
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := decode(r, &body); err != nil {
		fail(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	items, err := s.cart.UpdateQuantity(r.Context(), r.PathValue("sessionId"), productID, body.Quantity)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrInvalidQuantity):
			fail(w, r, http.StatusBadRequest, "Quantity must be at least 1")
		case errors.Is(err, cart.ErrItemNotFound):
			fail(w, r, http.StatusNotFound, "Item not found in cart")
		default:
			s.internalError(w, r, err)
		}
		return
	}

	okMessage(w, r, items, "Cart updated")
}

func (s *Server) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(r.PathValue("productId"))
	if err != nil {
		fail(w, r, http.StatusBadRequest, "Invalid product id")
		return
	}

	items, err := s.cart.RemoveItem(r.Context(), r.PathValue("sessionId"), productID)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	okMessage(w, r, items, "Item removed from cart")
}

func (s *Server) handleClearCart(w http.ResponseWriter, r *http.Request) {
	if err := s.cart.ClearCart(r.Context(), r.PathValue("sessionId")); err != nil {
		s.internalError(w, r, err)
		return
	}
	okMessage(w, r, []cart.Item{}, "Cart cleared")
}
