// Package invoice renders a print-ready GST invoice for an order. It is a
// pure read: the order and settings go in, PDF bytes come out, nothing in
// the store changes.
package invoice

import (
	"bytes"
	"fmt"

	"go-tea-store/internal/models"
	"go-tea-store/internal/pricing"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

func Render(order models.Order, settings models.InvoiceSettings, pay models.PaymentSettings) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	// Company header
	pdf.SetFont("Arial", "B", 18)
	pdf.CellFormat(0, 10, settings.CompanyName, "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, settings.AddressLine1, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, settings.AddressLine2, "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 5, fmt.Sprintf("GSTIN: %s   Phone: %s", settings.GSTIN, settings.Phone), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 8, "TAX INVOICE", "TB", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 6, "Invoice No: "+order.InvoiceNumber, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, "Date: "+order.Date, "", 1, "R", false, 0, "")
	pdf.CellFormat(95, 6, "Order No: "+order.ID, "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Payment: %s (%s)", order.PaymentMethod, order.PaymentStatus), "", 1, "R", false, 0, "")
	pdf.Ln(2)

	// Bill-to block
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(0, 6, "Bill To:", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 5, order.UserName, "", 1, "L", false, 0, "")
	if order.UserAddress != "" {
		pdf.MultiCell(0, 5, order.UserAddress, "", "L", false)
	}
	if order.UserGST != "" {
		pdf.CellFormat(0, 5, "GSTIN: "+order.UserGST, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Line items
	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(235, 235, 235)
	pdf.CellFormat(10, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(70, 7, "Item", "1", 0, "L", true, 0, "")
	pdf.CellFormat(20, 7, "HSN", "1", 0, "C", true, 0, "")
	pdf.CellFormat(15, 7, "Qty", "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, "Rate", "1", 0, "R", true, 0, "")
	pdf.CellFormat(35, 7, "Amount", "1", 1, "R", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	var subtotal float64
	for i, item := range order.Items {
		rate := pricing.LinePriceForType(item, order.Type)
		amount := rate * float64(item.Quantity)
		subtotal += amount

		name := item.Name
		if item.Weight != "" {
			name = fmt.Sprintf("%s (%s)", item.Name, item.Weight)
		}
		pdf.CellFormat(10, 7, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(70, 7, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(20, 7, item.HSNCode, "1", 0, "C", false, 0, "")
		pdf.CellFormat(15, 7, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.2f", rate), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", amount), "1", 1, "R", false, 0, "")
	}

	// Totals
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(145, 7, "Subtotal", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", subtotal), "1", 1, "R", false, 0, "")
	pdf.CellFormat(145, 7, "GST (5%)", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", order.TaxAmount), "1", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(145, 8, "Grand Total", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 8, fmt.Sprintf("%.2f", order.TotalAmount), "1", 1, "R", false, 0, "")
	pdf.Ln(6)

	// UPI QR for orders still awaiting an online payment
	if order.PaymentStatus == models.PaymentPending && order.PaymentMethod != models.PaymentCOD && pay.UPIID != "" {
		upi := fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%.2f&cu=INR&tn=%s",
			pay.UPIID, settings.CompanyName, order.TotalAmount, order.InvoiceNumber)
		png, err := qrcode.Encode(upi, qrcode.Medium, 256)
		if err != nil {
			return nil, fmt.Errorf("encode UPI QR: %w", err)
		}
		opts := gofpdf.ImageOptions{ImageType: "png"}
		pdf.RegisterImageOptionsReader("upi-qr", opts, bytes.NewReader(png))
		pdf.ImageOptions("upi-qr", 15, pdf.GetY(), 35, 35, false, opts, 0, "")
		pdf.SetXY(55, pdf.GetY()+14)
		pdf.SetFont("Arial", "", 9)
		pdf.CellFormat(0, 5, "Scan to pay via UPI: "+pay.UPIID, "", 1, "L", false, 0, "")
		pdf.Ln(18)
	}

	// Footer
	pdf.SetY(-30)
	pdf.SetFont("Arial", "I", 9)
	pdf.MultiCell(0, 5, settings.FooterNote, "T", "C", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice PDF: %w", err)
	}
	return buf.Bytes(), nil
}
