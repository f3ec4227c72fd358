package store

import (
	"fmt"

	"go-tea-store/internal/models"

	"golang.org/x/crypto/bcrypt"
)

// seed loads the demo catalog and accounts the shop ships with, so a fresh
// snapshot directory is immediately usable. Caller must only invoke this on
// an empty backend; it assumes nothing exists yet.
func (s *Store) seed() error {
	products := []models.Product{
		{
			ID: "p1", Name: "Amrit Assam Gold - Sachet",
			Description: "Perfect for single use. Kadak taste instantly.",
			Image:       "https://picsum.photos/seed/tea1/400/400",
			Weight:      "20g", MRP: 10, DistributorPrice: 7.5, CostPrice: 5,
			Stock: 5000, LowStockThreshold: 500, Category: "Sachet", HSNCode: "0902",
		},
		{
			ID: "p2", Name: "Amrit Assam Gold - Family Pack",
			Description: "The standard choice for every Indian household. Rich color and aroma.",
			Image:       "https://picsum.photos/seed/tea2/400/400",
			Weight:      "250g", MRP: 120, DistributorPrice: 90, CostPrice: 65,
			Stock: 1000, LowStockThreshold: 100, Category: "Pouch", HSNCode: "0902",
		},
		{
			ID: "p3", Name: "Amrit Assam Gold - Jumbo Pack",
			Description: "Best value for large families and tea stalls.",
			Image:       "https://picsum.photos/seed/tea3/400/400",
			Weight:      "500g", MRP: 230, DistributorPrice: 175, CostPrice: 130,
			Stock: 800, LowStockThreshold: 100, Category: "Pouch", HSNCode: "0902",
		},
		{
			ID: "p4", Name: "Hotel Special Dust",
			Description: "Extra strong dust tea specifically for tapris and hotels.",
			Image:       "https://picsum.photos/seed/tea4/400/400",
			Weight:      "1kg", MRP: 400, DistributorPrice: 320, CostPrice: 250,
			Stock: 200, LowStockThreshold: 50, Category: "Bulk", HSNCode: "0902",
		},
	}

	users := []models.User{
		{ID: "admin1", Name: "Super Admin", Mobile: "8898750419", Password: "admin", Role: models.RoleAdmin, Approved: true},
		{
			ID: "dist1", Name: "Rajesh Traders", Mobile: "6913228416", Password: "123",
			Role: models.RoleDistributor, Approved: true,
			Territory: "Navi Mumbai - Vashi", Address: "Shop 4, APMC Market, Vashi",
		},
		{
			ID: "cust1", Name: "Amit Sharma", Mobile: "9324270409", Password: "123",
			Role: models.RoleCustomer, Approved: true, Address: "Flat 102, Shanti Nagar, Mumbai",
		},
	}

	orders := []models.Order{
		{
			ID: "ORD-001", UserID: "cust1", UserName: "Amit Sharma",
			Items: []models.CartItem{
				{ProductID: "p2", Name: products[1].Name, Weight: "250g", MRP: 120, DistributorPrice: 90, HSNCode: "0902", Quantity: 2},
			},
			TotalAmount: 252, TaxAmount: 12,
			Status: models.OrderDelivered, PaymentMethod: models.PaymentUPI, PaymentStatus: models.PaymentPaid,
			TransactionID: "pay_M3k29sl29dJ", Date: "2023-10-15", Type: models.OrderRetail, InvoiceNumber: "INV-000001",
		},
		{
			ID: "ORD-002", UserID: "dist1", UserName: "Rajesh Traders",
			Items: []models.CartItem{
				{ProductID: "p3", Name: products[2].Name, Weight: "500g", MRP: 230, DistributorPrice: 175, HSNCode: "0902", Quantity: 50},
				{ProductID: "p4", Name: products[3].Name, Weight: "1kg", MRP: 400, DistributorPrice: 320, HSNCode: "0902", Quantity: 10},
			},
			TotalAmount: 12548, TaxAmount: 598,
			Status: models.OrderProcessing, PaymentMethod: models.PaymentUPI, PaymentStatus: models.PaymentPending,
			Date: "2023-10-20", Type: models.OrderWholesale, InvoiceNumber: "INV-000002",
		},
	}

	purchaseOrders := []models.PurchaseOrder{
		{
			ID: "po1", PONumber: "PO-2023-001", SupplierName: "Assam Gardens Pvt Ltd",
			Date: "2023-10-01", Status: models.POReceived, TotalAmount: 38000,
			Items: []models.PurchaseItem{
				{ProductID: "p4", ProductName: "Hotel Special Dust", Quantity: 100, UnitCost: 250, TotalCost: 25000},
				{ProductID: "p3", ProductName: "Amrit Assam Gold - Jumbo Pack", Quantity: 100, UnitCost: 130, TotalCost: 13000},
			},
		},
	}

	reviews := []models.Review{
		{ID: "r1", ProductID: "p1", UserID: "cust1", UserName: "Amit Sharma", Rating: 5, Comment: "Absolutely love the strong taste! Perfect for my morning routine.", Date: "2023-10-12"},
		{ID: "r2", ProductID: "p2", UserID: "u2", UserName: "Priya Patel", Rating: 4, Comment: "Great value for money. The color is very rich.", Date: "2023-10-15"},
		{ID: "r3", ProductID: "p4", UserID: "dist1", UserName: "Rajesh Traders", Rating: 5, Comment: "My hotel clients are very happy with the dust tea quality. Highly recommended for business.", Date: "2023-10-18"},
	}

	for _, p := range products {
		if err := s.backend.InsertProduct(p); err != nil {
			return err
		}
		s.products = append(s.products, p)
	}
	for _, u := range users {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash seed password: %w", err)
		}
		u.Password = string(hash)
		if err := s.backend.InsertUser(u); err != nil {
			return err
		}
		s.users = append(s.users, u)
	}
	for _, o := range orders {
		if err := s.backend.InsertOrder(o); err != nil {
			return err
		}
		s.orders = append([]models.Order{o}, s.orders...)
	}
	for _, po := range purchaseOrders {
		if err := s.backend.InsertPurchaseOrder(po); err != nil {
			return err
		}
		s.purchaseOrders = append([]models.PurchaseOrder{po}, s.purchaseOrders...)
	}
	for _, r := range reviews {
		if err := s.backend.InsertReview(r); err != nil {
			return err
		}
		s.reviews = append([]models.Review{r}, s.reviews...)
	}

	if err := s.backend.SaveInvoiceSettings(s.invoiceSettings); err != nil {
		return err
	}
	if err := s.backend.SavePaymentSettings(s.paymentSettings); err != nil {
		return err
	}
	return nil
}
