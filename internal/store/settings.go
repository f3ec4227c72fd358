package store

import "go-tea-store/internal/models"

var defaultInvoiceSettings = models.InvoiceSettings{
	CompanyName:  "Amrit Assam Gold Tea",
	AddressLine1: "Office No. 45, Grain Market, APMC Vashi",
	AddressLine2: "Navi Mumbai - 400705",
	GSTIN:        "27AAAAA0000A1Z5",
	Phone:        "+91 93242 70409",
	FooterNote:   "Thank you for choosing Amrit Assam Gold Tea. Goods once sold will not be taken back.",
}

var defaultPaymentSettings = models.PaymentSettings{
	RazorpayKeyID: "rzp_test_1DP5mmOlF5G5ag",
	UPIID:         "amritassamgold@upi",
}

func (s *Store) InvoiceSettings() models.InvoiceSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.invoiceSettings
}

func (s *Store) PaymentSettings() models.PaymentSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.paymentSettings
}

func (s *Store) BrandAssets() models.BrandAssets {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.brandAssets
}

// Settings saves replace the whole singleton; there is no field merging.

func (s *Store) UpdateInvoiceSettings(v models.InvoiceSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.SaveInvoiceSettings(v); err != nil {
		return err
	}
	s.invoiceSettings = v
	return nil
}

func (s *Store) UpdatePaymentSettings(v models.PaymentSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.SavePaymentSettings(v); err != nil {
		return err
	}
	s.paymentSettings = v
	return nil
}

func (s *Store) UpdateBrandAssets(v models.BrandAssets) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.backend.SaveBrandAssets(v); err != nil {
		return err
	}
	s.brandAssets = v
	return nil
}
