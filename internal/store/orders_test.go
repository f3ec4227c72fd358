package store_test

import (
	"errors"
	"strconv"
	"testing"
	"time"

	"go-tea-store/internal/models"
	"go-tea-store/internal/store"
)

// Retail checkout: 2 x 120 MRP + 5% tax = 252, stock 10 -> 8.
func TestPlaceOrderRetail(t *testing.T) {
	st := newStore(t, store.Options{})
	p := addProduct(t, st, "Family Pack", 120, 90, 65, 10)
	cust := registerUser(t, st, "Amit", models.RoleCustomer)

	fillCart(t, st, cust.ID, p.ID, 2)
	order, err := st.PlaceOrder(cust.ID, models.PaymentCOD, "Shanti Nagar, Mumbai", "", "")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if order.TotalAmount != 252 {
		t.Errorf("totalAmount = %v, want 252", order.TotalAmount)
	}
	if order.TaxAmount != 12 {
		t.Errorf("taxAmount = %v, want 12", order.TaxAmount)
	}
	if order.Status != models.OrderProcessing {
		t.Errorf("status = %s, want Processing", order.Status)
	}
	if order.PaymentStatus != models.PaymentPending {
		t.Errorf("paymentStatus = %s, want Pending", order.PaymentStatus)
	}
	if order.Type != models.OrderRetail {
		t.Errorf("type = %s, want RETAIL", order.Type)
	}
	if order.ID == "" || order.InvoiceNumber == "" {
		t.Error("order id and invoice number must be assigned")
	}

	got, _ := st.ProductByID(p.ID)
	if got.Stock != 8 {
		t.Errorf("stock after order = %d, want 8", got.Stock)
	}
	if len(st.Cart(cust.ID)) != 0 {
		t.Error("cart must be cleared after a successful order")
	}
}

// Wholesale checkout: 5 x 90 distributor price + 5% tax = 472.5 -> 473.
func TestPlaceOrderWholesale(t *testing.T) {
	st := newStore(t, store.Options{})
	p := addProduct(t, st, "Family Pack", 120, 90, 65, 10)

	dist := registerUser(t, st, "Rajesh Traders", models.RoleDistributor)
	if dist.Approved {
		t.Fatal("self-registered distributor must start unapproved")
	}

	fillCart(t, st, dist.ID, p.ID, 5)
	order, err := st.PlaceOrder(dist.ID, models.PaymentUPI, "APMC Market", models.PaymentPaid, "pay_test1")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if order.TotalAmount != 473 {
		t.Errorf("totalAmount = %v, want 473", order.TotalAmount)
	}
	if order.Type != models.OrderWholesale {
		t.Errorf("type = %s, want WHOLESALE", order.Type)
	}
	if order.PaymentStatus != models.PaymentPaid || order.TransactionID != "pay_test1" {
		t.Errorf("payment fields not carried: %s / %s", order.PaymentStatus, order.TransactionID)
	}
}

// A single short line aborts the whole order: no stock moves, nothing stored.
func TestPlaceOrderInsufficientStockIsAtomic(t *testing.T) {
	st := newStore(t, store.Options{})
	ok := addProduct(t, st, "Sachet", 10, 7.5, 5, 100)
	short := addProduct(t, st, "Jumbo Pack", 230, 175, 130, 3)
	cust := registerUser(t, st, "Amit", models.RoleCustomer)

	fillCart(t, st, cust.ID, ok.ID, 10)
	fillCart(t, st, cust.ID, short.ID, 5)

	_, err := st.PlaceOrder(cust.ID, models.PaymentCOD, "", "", "")
	if !errors.Is(err, store.ErrInsufficientStock) {
		t.Fatalf("err = %v, want insufficient stock", err)
	}

	var stockErr *store.InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatal("error must name the offending product")
	}
	if stockErr.ProductName != "Jumbo Pack" || stockErr.Available != 3 {
		t.Errorf("error details = %q/%d, want Jumbo Pack/3", stockErr.ProductName, stockErr.Available)
	}

	if p, _ := st.ProductByID(ok.ID); p.Stock != 100 {
		t.Errorf("stock of fine product changed to %d", p.Stock)
	}
	if p, _ := st.ProductByID(short.ID); p.Stock != 3 {
		t.Errorf("stock of short product changed to %d", p.Stock)
	}
	if len(st.Orders()) != 0 {
		t.Error("no order may be created on a failed placement")
	}
	if len(st.Cart(cust.ID)) != 2 {
		t.Error("cart must be preserved on a failed placement")
	}
}

func TestPlaceOrderEmptyCart(t *testing.T) {
	st := newStore(t, store.Options{})
	cust := registerUser(t, st, "Amit", models.RoleCustomer)

	if _, err := st.PlaceOrder(cust.ID, models.PaymentCOD, "", "", ""); !errors.Is(err, store.ErrEmptyCart) {
		t.Errorf("err = %v, want empty cart", err)
	}
}

// Manual counter-sale entry defaults to Delivered and Paid, and still moves stock.
func TestAddOrderDefaults(t *testing.T) {
	st := newStore(t, store.Options{})
	p := addProduct(t, st, "Dust", 400, 320, 250, 50)

	order, err := st.AddOrder(models.Order{
		UserName:      "Walk-in",
		PaymentMethod: models.PaymentCash,
		Items: []models.CartItem{
			{ProductID: p.ID, Name: p.Name, MRP: 400, DistributorPrice: 320, Quantity: 4},
		},
		TotalAmount: 1680,
		TaxAmount:   80,
	})
	if err != nil {
		t.Fatalf("AddOrder: %v", err)
	}

	if order.Status != models.OrderDelivered {
		t.Errorf("status = %s, want Delivered", order.Status)
	}
	if order.PaymentStatus != models.PaymentPaid {
		t.Errorf("paymentStatus = %s, want Paid", order.PaymentStatus)
	}
	if got, _ := st.ProductByID(p.ID); got.Stock != 46 {
		t.Errorf("stock = %d, want 46", got.Stock)
	}
}

func TestUpdateOrderStatusDoesNotRestockByDefault(t *testing.T) {
	st := newStore(t, store.Options{})
	p := addProduct(t, st, "Family Pack", 120, 90, 65, 10)
	cust := registerUser(t, st, "Amit", models.RoleCustomer)

	fillCart(t, st, cust.ID, p.ID, 2)
	order, err := st.PlaceOrder(cust.ID, models.PaymentCOD, "", "", "")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if err := st.UpdateOrderStatus(order.ID, models.OrderCancelled); err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}
	if got, _ := st.ProductByID(p.ID); got.Stock != 8 {
		t.Errorf("stock = %d, cancellation must not restock by default", got.Stock)
	}
}

func TestUpdateOrderStatusRestocksWhenConfigured(t *testing.T) {
	st := newStore(t, store.Options{RestockOnCancel: true})
	p := addProduct(t, st, "Family Pack", 120, 90, 65, 10)
	cust := registerUser(t, st, "Amit", models.RoleCustomer)

	fillCart(t, st, cust.ID, p.ID, 2)
	order, err := st.PlaceOrder(cust.ID, models.PaymentCOD, "", "", "")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if err := st.UpdateOrderStatus(order.ID, models.OrderCancelled); err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}
	if got, _ := st.ProductByID(p.ID); got.Stock != 10 {
		t.Errorf("stock = %d, want 10 after configured restock", got.Stock)
	}

	// Cancelling again must not restock twice.
	if err := st.UpdateOrderStatus(order.ID, models.OrderCancelled); err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}
	if got, _ := st.ProductByID(p.ID); got.Stock != 10 {
		t.Errorf("stock = %d after repeated cancel, want 10", got.Stock)
	}
}

func TestDeleteOrderKeepsStock(t *testing.T) {
	st := newStore(t, store.Options{})
	p := addProduct(t, st, "Family Pack", 120, 90, 65, 10)
	cust := registerUser(t, st, "Amit", models.RoleCustomer)

	fillCart(t, st, cust.ID, p.ID, 2)
	order, err := st.PlaceOrder(cust.ID, models.PaymentCOD, "", "", "")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if err := st.DeleteOrder(order.ID); err != nil {
		t.Fatalf("DeleteOrder: %v", err)
	}
	if len(st.Orders()) != 0 {
		t.Error("order not removed")
	}
	if got, _ := st.ProductByID(p.ID); got.Stock != 8 {
		t.Errorf("stock = %d, deletion must not restore stock", got.Stock)
	}
}

// Document numbers embed the full millisecond timestamp, so they cannot wrap
// around and collide with numbers issued before a restart.
func TestOrderNumbersCarryFullTimestamp(t *testing.T) {
	st := newStore(t, store.Options{})
	p := addProduct(t, st, "Family Pack", 120, 90, 65, 10)
	cust := registerUser(t, st, "Amit", models.RoleCustomer)

	fillCart(t, st, cust.ID, p.ID, 1)
	before := time.Now().UnixMilli()
	order, err := st.PlaceOrder(cust.ID, models.PaymentCOD, "", "", "")
	after := time.Now().UnixMilli()
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	// ORD-<13-digit millis><3-digit sequence>
	digits := order.ID[len("ORD-") : len(order.ID)-3]
	ms, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		t.Fatalf("order id %q does not embed a timestamp: %v", order.ID, err)
	}
	if ms < before || ms > after {
		t.Errorf("order id timestamp %d outside [%d, %d]", ms, before, after)
	}
}

// Clearing the online history removes paid non-COD orders and nothing else.
func TestClearOnlineOrders(t *testing.T) {
	st := newStore(t, store.Options{})
	p := addProduct(t, st, "Family Pack", 120, 90, 65, 100)
	line := []models.CartItem{{ProductID: p.ID, Name: p.Name, MRP: 120, DistributorPrice: 90, Quantity: 1}}

	online := mustAddOrder(t, st, models.Order{UserName: "A", PaymentMethod: models.PaymentUPI, TotalAmount: 126, TransactionID: "pay_abc", Items: line})
	cod := mustAddOrder(t, st, models.Order{UserName: "B", PaymentMethod: models.PaymentCOD, TotalAmount: 126, Items: line})

	// Pending card payment is not part of the captured history.
	cust := registerUser(t, st, "Amit", models.RoleCustomer)
	fillCart(t, st, cust.ID, p.ID, 1)
	pending, err := st.PlaceOrder(cust.ID, models.PaymentCard, "", "", "")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	removed, err := st.ClearOnlineOrders()
	if err != nil {
		t.Fatalf("ClearOnlineOrders: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	if _, ok := st.OrderByID(online.ID); ok {
		t.Error("paid online order must be gone")
	}
	if _, ok := st.OrderByID(cod.ID); !ok {
		t.Error("COD order must survive")
	}
	if _, ok := st.OrderByID(pending.ID); !ok {
		t.Error("pending online order must survive")
	}
}

func TestUpdatePaymentStatus(t *testing.T) {
	st := newStore(t, store.Options{})
	p := addProduct(t, st, "Family Pack", 120, 90, 65, 10)
	cust := registerUser(t, st, "Amit", models.RoleCustomer)

	fillCart(t, st, cust.ID, p.ID, 1)
	order, err := st.PlaceOrder(cust.ID, models.PaymentCOD, "", "", "")
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	if err := st.UpdatePaymentStatus(order.ID, models.PaymentPaid); err != nil {
		t.Fatalf("UpdatePaymentStatus: %v", err)
	}
	got, _ := st.OrderByID(order.ID)
	if got.PaymentStatus != models.PaymentPaid {
		t.Errorf("paymentStatus = %s, want Paid", got.PaymentStatus)
	}
}
