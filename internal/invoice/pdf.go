// Package invoice renders order invoices as PDF files.
package invoice

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"luxe-be/internal/order"
)

// PDFRenderer writes invoice PDFs into a local directory and implements
// order.InvoiceRenderer.
type PDFRenderer struct {
	dir string
}

func NewPDFRenderer(dir string) (*PDFRenderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create invoice dir: %w", err)
	}
	return &PDFRenderer{dir: dir}, nil
}

func (r *PDFRenderer) Render(o *order.Order) (*order.Invoice, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Header
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(255, 107, 53)
	pdf.CellFormat(95, 10, "LUXE", "", 0, "L", false, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(85, 10, "INVOICE", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(95, 5, "Premium E-commerce", "", 0, "L", false, 0, "")
	pdf.CellFormat(85, 5, fmt.Sprintf("Invoice #: %s", o.OrderID), "", 1, "R", false, 0, "")
	pdf.CellFormat(95, 5, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(85, 5, fmt.Sprintf("Date: %s", o.CreatedAt.Format("Jan 2, 2006")), "", 1, "R", false, 0, "")
	pdf.CellFormat(95, 5, "", "", 0, "L", false, 0, "")
	pdf.CellFormat(85, 5, fmt.Sprintf("Status: %s", o.Status), "", 1, "R", false, 0, "")
	pdf.Ln(6)

	// Bill to / ship to
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(90, 6, "Bill To:", "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 6, "Ship To:", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(90, 5, o.CustomerInfo.Name, "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 5, o.ShippingAddress.Street, "", 1, "L", false, 0, "")
	pdf.CellFormat(90, 5, o.CustomerInfo.Email, "", 0, "L", false, 0, "")
	cityLine := fmt.Sprintf("%s, %s %s", o.ShippingAddress.City, o.ShippingAddress.State, o.ShippingAddress.Zip)
	pdf.CellFormat(90, 5, cityLine, "", 1, "L", false, 0, "")
	pdf.CellFormat(90, 5, o.CustomerInfo.Phone, "", 0, "L", false, 0, "")
	pdf.CellFormat(90, 5, o.ShippingAddress.Country, "", 1, "L", false, 0, "")
	pdf.Ln(8)

	// Items table
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(255, 107, 53)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(90, 8, "Item", "", 0, "L", true, 0, "")
	pdf.CellFormat(25, 8, "Qty", "", 0, "C", true, 0, "")
	pdf.CellFormat(30, 8, "Price", "", 0, "R", true, 0, "")
	pdf.CellFormat(35, 8, "Total", "", 1, "R", true, 0, "")

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for i, item := range o.Items {
		fill := i%2 == 0
		pdf.SetFillColor(249, 249, 249)
		pdf.CellFormat(90, 7, item.Name, "", 0, "L", fill, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", item.Quantity), "", 0, "C", fill, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("$%.2f", item.Price), "", 0, "R", fill, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("$%.2f", item.Price*float64(item.Quantity)), "", 1, "R", fill, 0, "")
	}
	pdf.Ln(5)

	// Totals
	shipping := fmt.Sprintf("$%.2f", o.Pricing.Shipping)
	if o.Pricing.Shipping == 0 {
		shipping = "FREE"
	}
	writeTotal := func(label, value string) {
		pdf.SetTextColor(102, 102, 102)
		pdf.CellFormat(145, 6, label, "", 0, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(35, 6, value, "", 1, "R", false, 0, "")
	}
	writeTotal("Subtotal:", fmt.Sprintf("$%.2f", o.Pricing.Subtotal))
	writeTotal("Shipping:", shipping)
	writeTotal("Tax:", fmt.Sprintf("$%.2f", o.Pricing.Tax))
	if o.Pricing.Discount > 0 {
		pdf.SetTextColor(76, 175, 80)
		pdf.CellFormat(145, 6, "Discount:", "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 6, fmt.Sprintf("-$%.2f", o.Pricing.Discount), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.SetTextColor(255, 107, 53)
	pdf.CellFormat(145, 10, "Total:", "", 0, "R", false, 0, "")
	pdf.CellFormat(35, 10, fmt.Sprintf("$%.2f", o.Pricing.Total), "", 1, "R", false, 0, "")
	pdf.Ln(6)

	// Payment info
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(180, 6, "Payment Information", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(180, 5, fmt.Sprintf("Payment Method: %s", o.PaymentMethod), "", 1, "L", false, 0, "")
	pdf.CellFormat(180, 5, fmt.Sprintf("Transaction ID: %s", o.PaymentDetails.TransactionID), "", 1, "L", false, 0, "")
	pdf.CellFormat(180, 5, fmt.Sprintf("Payment Status: %s", o.PaymentStatus), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Tracking info
	if o.TrackingNumber != "" {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetTextColor(0, 0, 0)
		pdf.CellFormat(180, 6, "Shipping Information", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(102, 102, 102)
		pdf.CellFormat(180, 5, fmt.Sprintf("Tracking Number: %s", o.TrackingNumber), "", 1, "L", false, 0, "")
		pdf.CellFormat(180, 5, fmt.Sprintf("Estimated Delivery: %s", o.EstimatedDelivery.Format("Jan 2, 2006")), "", 1, "L", false, 0, "")
	}

	// Footer
	pdf.SetY(-30)
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetTextColor(153, 153, 153)
	pdf.CellFormat(180, 4, "Thank you for shopping with LUXE!", "", 1, "C", false, 0, "")
	pdf.CellFormat(180, 4, "© 2025 LUXE Premium E-commerce. All rights reserved.", "", 1, "C", false, 0, "")

	fileName := fmt.Sprintf("invoice-%s.pdf", o.OrderID)
	filePath := filepath.Join(r.dir, fileName)

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return nil, fmt.Errorf("write invoice pdf: %w", err)
	}

	return &order.Invoice{
		FileName: fileName,
		FilePath: filePath,
		URL:      "/api/invoices/" + fileName,
	}, nil
}
