package httpapi

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"luxe-be/internal/coupon"
	"luxe-be/internal/order"
)

func (s *Server) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var input order.CreateOrderInput
	if err := decode(r, &input); err != nil {
		fail(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	o, err := s.orders.CreateOrder(r.Context(), input)
	if err != nil {
		s.orderError(w, r, err)
		return
	}

	created(w, r, o, "Order placed successfully")
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := order.Filter{
		SessionID: q.Get("sessionId"),
		Email:     q.Get("email"),
	}

	orders, err := s.orders.GetOrders(r.Context(), filter)
	if err != nil {
		s.internalError(w, r, err)
		return
	}

	okCount(w, r, orders, len(orders))
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := s.orders.GetOrderDetail(r.Context(), r.PathValue("orderId"))
	if err != nil {
		s.orderError(w, r, err)
		return
	}
	ok(w, r, o)
}

func (s *Server) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Status  string `json:"status"`
		Message string `json:"message,omitempty"`
	}
	if err := decode(r, &body); err != nil {
		fail(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}

	o, err := s.orders.UpdateStatus(r.Context(), r.PathValue("orderId"), order.Status(body.Status), body.Message)
	if err != nil {
		s.orderError(w, r, err)
		return
	}

	okMessage(w, r, o, "Order status updated")
}

func (s *Server) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Reason string `json:"reason,omitempty"`
	}
	// An empty body is fine; cancellation works without a reason.
	_ = decode(r, &body)
	if body.Reason == "" {
		body.Reason = "Customer requested cancellation"
	}

	o, err := s.orders.Cancel(r.Context(), r.PathValue("orderId"), body.Reason)
	if err != nil {
		s.orderError(w, r, err)
		return
	}

	okMessage(w, r, o, "Order cancelled successfully")
}

func (s *Server) handleTrackOrder(w http.ResponseWriter, r *http.Request) {
	tracking, err := s.orders.Track(r.Context(), r.PathValue("orderId"))
	if err != nil {
		s.orderError(w, r, err)
		return
	}
	ok(w, r, tracking)
}

func (s *Server) handleValidateCoupon(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code     string  `json:"code"`
		Subtotal float64 `json:"subtotal"`
	}
	if err := decode(r, &body); err != nil {
		fail(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if body.Code == "" {
		fail(w, r, http.StatusBadRequest, "Coupon code is required")
		return
	}

	result := coupon.Validate(body.Code, decimal.NewFromFloat(body.Subtotal))
	if !result.Valid {
		fail(w, r, http.StatusBadRequest, result.Message)
		return
	}

	okMessage(w, r, result, result.Message)
}

// handleDownloadInvoice streams the stored invoice PDF for an order.
func (s *Server) handleDownloadInvoice(w http.ResponseWriter, r *http.Request) {
	o, err := s.orders.GetOrderDetail(r.Context(), r.PathValue("orderId"))
	if err != nil {
		s.orderError(w, r, err)
		return
	}

	if o.Invoice == nil {
		fail(w, r, http.StatusNotFound, "Invoice not available for this order")
		return
	}
	if _, err := os.Stat(o.Invoice.FilePath); err != nil {
		fail(w, r, http.StatusNotFound, "Invoice file not found")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+o.Invoice.FileName+`"`)
	http.ServeFile(w, r, o.Invoice.FilePath)
}

// handleServeInvoice serves invoice PDFs by file name, matching the URL
// stored on each order's invoice reference.
func (s *Server) handleServeInvoice(w http.ResponseWriter, r *http.Request) {
	fileName := r.PathValue("fileName")
	if fileName != filepath.Base(fileName) || filepath.Ext(fileName) != ".pdf" {
		fail(w, r, http.StatusBadRequest, "Invalid invoice file name")
		return
	}

	path := filepath.Join(s.invoiceDir, fileName)
	if _, err := os.Stat(path); err != nil {
		fail(w, r, http.StatusNotFound, "Invoice file not found")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, path)
}

// orderError maps order service errors onto the response taxonomy.
func (s *Server) orderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		fail(w, r, http.StatusNotFound, "Order not found")
	case errors.Is(err, order.ErrPaymentFailed):
		fail(w, r, http.StatusPaymentRequired, "Payment failed. Please check your payment details and try again.")
	case errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrCustomerInfoRequired),
		errors.Is(err, order.ErrShippingAddressRequired),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrCannotCancel):
		fail(w, r, http.StatusBadRequest, err.Error())
	default:
		s.internalError(w, r, err)
	}
}
