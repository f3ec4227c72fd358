package store_test

import (
	"fmt"
	"testing"

	"go-tea-store/internal/models"
	"go-tea-store/internal/persistence/snapshot"
	"go-tea-store/internal/store"
)

var mobileCounter int

func nextMobile() string {
	mobileCounter++
	return fmt.Sprintf("9%09d", mobileCounter)
}

func newStore(t *testing.T, opts store.Options) *store.Store {
	t.Helper()
	backend, err := snapshot.New(t.TempDir())
	if err != nil {
		t.Fatalf("snapshot.New: %v", err)
	}
	st, err := store.New(backend, opts)
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	return st
}

func addProduct(t *testing.T, st *store.Store, name string, mrp, dp, cost float64, stock int) models.Product {
	t.Helper()
	p, err := st.AddProduct(models.Product{
		Name:              name,
		MRP:               mrp,
		DistributorPrice:  dp,
		CostPrice:         cost,
		Stock:             stock,
		LowStockThreshold: 5,
		Category:          "Pouch",
	})
	if err != nil {
		t.Fatalf("AddProduct(%s): %v", name, err)
	}
	return p
}

func registerUser(t *testing.T, st *store.Store, name string, role models.Role) models.User {
	t.Helper()
	u, err := st.Register(name, nextMobile(), "secret", role, "")
	if err != nil {
		t.Fatalf("Register(%s): %v", name, err)
	}
	return u
}

func fillCart(t *testing.T, st *store.Store, userID, productID string, qty int) {
	t.Helper()
	if err := st.AddToCart(userID, productID, qty); err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
}

func TestSeedLoadsDemoData(t *testing.T) {
	st := newStore(t, store.Options{Seed: true})

	if len(st.Products()) != 4 {
		t.Errorf("seeded products = %d, want 4", len(st.Products()))
	}
	if len(st.Users()) != 3 {
		t.Errorf("seeded users = %d, want 3", len(st.Users()))
	}
	if _, err := st.Login("8898750419", "admin"); err != nil {
		t.Errorf("seeded admin login: %v", err)
	}
}
