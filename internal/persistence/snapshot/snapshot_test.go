package snapshot_test

import (
	"os"
	"path/filepath"
	"testing"

	"go-tea-store/internal/models"
	"go-tea-store/internal/persistence/snapshot"
)

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()

	st, err := snapshot.New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	p := models.Product{ID: "p1", Name: "Family Pack", MRP: 120, DistributorPrice: 90, CostPrice: 65, Stock: 10, Category: "Pouch"}
	if err := st.InsertProduct(p); err != nil {
		t.Fatalf("InsertProduct: %v", err)
	}
	u := models.User{ID: "u1", Name: "Amit", Mobile: "9324270409", Password: "hash", Role: models.RoleCustomer, Approved: true}
	if err := st.InsertUser(u); err != nil {
		t.Fatalf("InsertUser: %v", err)
	}
	o := models.Order{
		ID:     "ORD-000001",
		UserID: "u1",
		Items: []models.CartItem{
			{ProductID: "p1", Name: "Family Pack", MRP: 120, DistributorPrice: 90, Quantity: 2},
		},
		TotalAmount: 252,
		Status:      models.OrderProcessing,
	}
	if err := st.InsertOrder(o); err != nil {
		t.Fatalf("InsertOrder: %v", err)
	}

	// A fresh handle on the same directory sees everything.
	reopened, err := snapshot.New(dir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	state, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if len(state.Products) != 1 || state.Products[0].Name != "Family Pack" {
		t.Errorf("products = %+v", state.Products)
	}
	if len(state.Users) != 1 || state.Users[0].Password != "hash" {
		t.Errorf("users = %+v", state.Users)
	}
	if len(state.Orders) != 1 || len(state.Orders[0].Items) != 1 {
		t.Fatalf("orders = %+v", state.Orders)
	}
	if state.Orders[0].Items[0].Quantity != 2 {
		t.Errorf("order line = %+v", state.Orders[0].Items[0])
	}
}

func TestUpdateAndDeleteRewriteFiles(t *testing.T) {
	dir := t.TempDir()
	st, err := snapshot.New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	p := models.Product{ID: "p1", Name: "Sachet", MRP: 10, Stock: 100}
	if err := st.InsertProduct(p); err != nil {
		t.Fatalf("InsertProduct: %v", err)
	}
	p.Stock = 95
	if err := st.UpdateProduct(p); err != nil {
		t.Fatalf("UpdateProduct: %v", err)
	}

	reopened, _ := snapshot.New(dir)
	state, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if state.Products[0].Stock != 95 {
		t.Errorf("stock = %d, want 95 after update", state.Products[0].Stock)
	}

	if err := st.DeleteProduct("p1"); err != nil {
		t.Fatalf("DeleteProduct: %v", err)
	}
	reopened, _ = snapshot.New(dir)
	state, _ = reopened.Load()
	if len(state.Products) != 0 {
		t.Errorf("products after delete = %+v", state.Products)
	}
}

// Missing snapshot files mean empty collections, not errors.
func TestLoadEmptyDirectory(t *testing.T) {
	st, err := snapshot.New(t.TempDir())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	state, err := st.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(state.Products) != 0 || len(state.Orders) != 0 || len(state.Users) != 0 {
		t.Errorf("state = %+v, want empty", state)
	}
}

func TestSettingsPersist(t *testing.T) {
	dir := t.TempDir()
	st, err := snapshot.New(dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := st.SavePaymentSettings(models.PaymentSettings{UPIID: "shop@upi"}); err != nil {
		t.Fatalf("SavePaymentSettings: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "payment_settings.json")); err != nil {
		t.Fatalf("settings file not written: %v", err)
	}

	reopened, _ := snapshot.New(dir)
	state, err := reopened.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if state.PaymentSettings == nil || state.PaymentSettings.UPIID != "shop@upi" {
		t.Errorf("payment settings = %+v", state.PaymentSettings)
	}
}
