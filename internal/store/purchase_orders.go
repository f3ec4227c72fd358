package store

import (
	"fmt"

	"go-tea-store/internal/models"

	"github.com/google/uuid"
)

// AddPurchaseOrder creates a Pending restocking document. Line and document
// totals are recomputed here; the caller's figures are not trusted.
func (s *Store) AddPurchaseOrder(supplierName, poNumber string, items []models.PurchaseItem) (models.PurchaseOrder, error) {
	if supplierName == "" {
		return models.PurchaseOrder{}, fmt.Errorf("%w: supplier name is required", ErrValidation)
	}
	if len(items) == 0 {
		return models.PurchaseOrder{}, fmt.Errorf("%w: purchase order has no items", ErrValidation)
	}

	var total float64
	for i := range items {
		if items[i].Quantity < 1 {
			return models.PurchaseOrder{}, fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
		}
		if items[i].UnitCost < 0 {
			return models.PurchaseOrder{}, fmt.Errorf("%w: unit cost must not be negative", ErrValidation)
		}
		items[i].TotalCost = float64(items[i].Quantity) * items[i].UnitCost
		total += items[i].TotalCost
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if poNumber == "" {
		poNumber = s.nextRef("PO")
	}
	po := models.PurchaseOrder{
		ID:           uuid.NewString(),
		PONumber:     poNumber,
		SupplierName: supplierName,
		Date:         today(),
		Status:       models.POPending,
		Items:        items,
		TotalAmount:  total,
	}

	if err := s.backend.InsertPurchaseOrder(po); err != nil {
		return models.PurchaseOrder{}, err
	}
	s.purchaseOrders = append([]models.PurchaseOrder{po}, s.purchaseOrders...)
	return po, nil
}

// ReceivePurchaseOrder marks the PO Received and adds every item quantity to
// the matching product's stock. Receiving twice is a no-op: stock moves only
// on the first call.
func (s *Store) ReceivePurchaseOrder(poID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.purchaseOrders {
		if s.purchaseOrders[i].ID != poID {
			continue
		}
		if s.purchaseOrders[i].Status == models.POReceived {
			return nil
		}

		po := s.purchaseOrders[i]
		po.Status = models.POReceived
		if err := s.backend.UpdatePurchaseOrder(po); err != nil {
			return err
		}
		s.purchaseOrders[i] = po

		for _, item := range po.Items {
			for j := range s.products {
				if s.products[j].ID == item.ProductID {
					p := s.products[j]
					p.Stock += item.Quantity
					if err := s.backend.UpdateProduct(p); err != nil {
						return err
					}
					s.products[j] = p
				}
			}
		}
		return nil
	}
	return fmt.Errorf("purchase order %s: %w", poID, ErrNotFound)
}

// DeletePurchaseOrder removes the document permanently. A stock increase from
// a prior receipt is not reversed.
func (s *Store) DeletePurchaseOrder(poID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.purchaseOrders {
		if s.purchaseOrders[i].ID == poID {
			if err := s.backend.DeletePurchaseOrder(poID); err != nil {
				return err
			}
			s.purchaseOrders = append(s.purchaseOrders[:i], s.purchaseOrders[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("purchase order %s: %w", poID, ErrNotFound)
}

func (s *Store) PurchaseOrders() []models.PurchaseOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PurchaseOrder, len(s.purchaseOrders))
	copy(out, s.purchaseOrders)
	return out
}

func (s *Store) PurchaseOrderByID(poID string) (models.PurchaseOrder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, po := range s.purchaseOrders {
		if po.ID == poID {
			return po, true
		}
	}
	return models.PurchaseOrder{}, false
}
