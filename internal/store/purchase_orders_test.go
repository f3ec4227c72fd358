package store_test

import (
	"errors"
	"testing"

	"go-tea-store/internal/models"
	"go-tea-store/internal/store"
)

func TestPurchaseOrderLifecycle(t *testing.T) {
	st := newStore(t, store.Options{})
	p := addProduct(t, st, "Family Pack", 120, 90, 65, 10)

	po, err := st.AddPurchaseOrder("Assam Gardens Pvt Ltd", "PO-2024-001", []models.PurchaseItem{
		{ProductID: p.ID, ProductName: p.Name, Quantity: 100, UnitCost: 65},
	})
	if err != nil {
		t.Fatalf("AddPurchaseOrder: %v", err)
	}

	if po.Status != models.POPending {
		t.Errorf("status = %s, want Pending", po.Status)
	}
	if po.TotalAmount != 6500 {
		t.Errorf("totalAmount = %v, want 6500", po.TotalAmount)
	}
	if po.Items[0].TotalCost != 6500 {
		t.Errorf("line totalCost = %v, want 6500", po.Items[0].TotalCost)
	}

	if err := st.ReceivePurchaseOrder(po.ID); err != nil {
		t.Fatalf("ReceivePurchaseOrder: %v", err)
	}
	if got, _ := st.ProductByID(p.ID); got.Stock != 110 {
		t.Errorf("stock = %d, want 110 after receipt", got.Stock)
	}
	if got, _ := st.PurchaseOrderByID(po.ID); got.Status != models.POReceived {
		t.Errorf("status = %s, want Received", got.Status)
	}

	// Receiving twice is a no-op: stock moves only once.
	if err := st.ReceivePurchaseOrder(po.ID); err != nil {
		t.Fatalf("second ReceivePurchaseOrder: %v", err)
	}
	if got, _ := st.ProductByID(p.ID); got.Stock != 110 {
		t.Errorf("stock = %d after second receive, want 110", got.Stock)
	}
}

func TestDeletePurchaseOrderKeepsAppliedStock(t *testing.T) {
	st := newStore(t, store.Options{})
	p := addProduct(t, st, "Dust", 400, 320, 250, 10)

	po, err := st.AddPurchaseOrder("Assam Gardens", "", []models.PurchaseItem{
		{ProductID: p.ID, ProductName: p.Name, Quantity: 20, UnitCost: 250},
	})
	if err != nil {
		t.Fatalf("AddPurchaseOrder: %v", err)
	}
	if po.PONumber == "" {
		t.Error("PO number must be generated when omitted")
	}

	if err := st.ReceivePurchaseOrder(po.ID); err != nil {
		t.Fatalf("ReceivePurchaseOrder: %v", err)
	}
	if err := st.DeletePurchaseOrder(po.ID); err != nil {
		t.Fatalf("DeletePurchaseOrder: %v", err)
	}

	if len(st.PurchaseOrders()) != 0 {
		t.Error("purchase order not removed")
	}
	if got, _ := st.ProductByID(p.ID); got.Stock != 30 {
		t.Errorf("stock = %d, deletion must not reverse a prior receipt", got.Stock)
	}
}

func TestAddPurchaseOrderValidation(t *testing.T) {
	st := newStore(t, store.Options{})
	p := addProduct(t, st, "Dust", 400, 320, 250, 10)

	if _, err := st.AddPurchaseOrder("", "PO-1", []models.PurchaseItem{{ProductID: p.ID, Quantity: 1}}); !errors.Is(err, store.ErrValidation) {
		t.Errorf("missing supplier: err = %v, want validation failure", err)
	}
	if _, err := st.AddPurchaseOrder("Supplier", "PO-1", nil); !errors.Is(err, store.ErrValidation) {
		t.Errorf("no items: err = %v, want validation failure", err)
	}
	if _, err := st.AddPurchaseOrder("Supplier", "PO-1", []models.PurchaseItem{{ProductID: p.ID, Quantity: 0}}); !errors.Is(err, store.ErrValidation) {
		t.Errorf("zero quantity: err = %v, want validation failure", err)
	}

	if err := st.ReceivePurchaseOrder("missing"); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("receive missing PO: err = %v, want not found", err)
	}
}
