package invoice_test

import (
	"bytes"
	"testing"

	"go-tea-store/internal/invoice"
	"go-tea-store/internal/models"
)

func sampleOrder() models.Order {
	return models.Order{
		ID:            "ORD-000001",
		InvoiceNumber: "INV-000001",
		UserName:      "Amit Sharma",
		UserAddress:   "Shanti Nagar, Mumbai",
		Date:          "2024-07-15",
		Type:          models.OrderRetail,
		PaymentMethod: models.PaymentCOD,
		PaymentStatus: models.PaymentPending,
		Items: []models.CartItem{
			{ProductID: "p1", Name: "Family Pack", Weight: "500g", HSNCode: "0902", MRP: 120, DistributorPrice: 90, Quantity: 2},
		},
		TotalAmount: 252,
		TaxAmount:   12,
	}
}

func sampleSettings() models.InvoiceSettings {
	return models.InvoiceSettings{
		CompanyName:  "Amrit Assam Gold Tea",
		AddressLine1: "Tea Estate Road",
		AddressLine2: "Navi Mumbai, Maharashtra",
		GSTIN:        "27AAAAA0000A1Z5",
		Phone:        "8898750419",
		FooterNote:   "Thank you for your business!",
	}
}

func TestRenderProducesPDF(t *testing.T) {
	out, err := invoice.Render(sampleOrder(), sampleSettings(), models.PaymentSettings{})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Errorf("output does not start with %%PDF, got %q", out[:4])
	}
}

// A pending non-COD order with a configured UPI id gets the payment QR; the
// render must still succeed.
func TestRenderWithUPIQR(t *testing.T) {
	order := sampleOrder()
	order.PaymentMethod = models.PaymentUPI

	out, err := invoice.Render(order, sampleSettings(), models.PaymentSettings{UPIID: "amritassamgold@upi"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF")) {
		t.Error("output does not start with %PDF")
	}
	// The QR image makes the document noticeably larger than the bare invoice.
	bare, err := invoice.Render(sampleOrder(), sampleSettings(), models.PaymentSettings{})
	if err != nil {
		t.Fatalf("Render without QR: %v", err)
	}
	if len(out) <= len(bare) {
		t.Errorf("QR invoice (%d bytes) not larger than bare invoice (%d bytes)", len(out), len(bare))
	}
}
