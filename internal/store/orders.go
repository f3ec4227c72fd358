package store

import (
	"fmt"
	"math"

	"go-tea-store/internal/models"
	"go-tea-store/internal/pricing"
)

// PlaceOrder turns the user's cart into a persisted order:
//
//  1. Verify stock for every line; any shortage aborts the whole order.
//  2. Price the cart at the purchaser's role, add 5% tax, round the final
//     total and the tax (never per line).
//  3. Assign time-derived order and invoice numbers; WHOLESALE iff the buyer
//     is a distributor; status starts at Processing.
//  4. Decrement stock for every line.
//  5. Clear the cart.
func (s *Store) PlaceOrder(userID string, method models.PaymentMethod, address string, payStatus models.PaymentStatus, transactionID string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.findUser(userID)
	if !ok {
		return models.Order{}, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	cart := s.carts[userID]
	if len(cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	// 1. All-or-nothing stock check before anything changes.
	if err := s.checkStock(cart); err != nil {
		return models.Order{}, err
	}

	// 2. Price at the purchaser's role.
	var subtotal float64
	for _, item := range cart {
		subtotal += pricing.LinePrice(item, u.Role) * float64(item.Quantity)
	}
	tax := subtotal * TaxRate

	if payStatus == "" {
		payStatus = models.PaymentPending
	}
	orderType := models.OrderRetail
	if u.Role == models.RoleDistributor {
		orderType = models.OrderWholesale
	}

	items := make([]models.CartItem, len(cart))
	copy(items, cart)

	order := models.Order{
		ID:            s.nextRef("ORD"),
		UserID:        u.ID,
		UserName:      u.Name,
		UserAddress:   address,
		UserGST:       u.GSTNumber,
		Items:         items,
		TotalAmount:   math.Round(subtotal + tax),
		TaxAmount:     math.Round(tax),
		Status:        models.OrderProcessing,
		PaymentMethod: method,
		PaymentStatus: payStatus,
		TransactionID: transactionID,
		Date:          today(),
		Type:          orderType,
		InvoiceNumber: s.nextRef("INV"),
	}

	if err := s.commitOrder(order); err != nil {
		return models.Order{}, err
	}

	// 5. Cart is gone once the order exists.
	delete(s.carts, userID)
	return order, nil
}

// AddOrder is the manual back-office entry: the admin hands over a formed
// order (counter sale), so missing fields default to Delivered and Paid. The
// same stock rule applies; the buyer's cart is not involved.
func (s *Store) AddOrder(order models.Order) (models.Order, error) {
	if len(order.Items) == 0 {
		return models.Order{}, fmt.Errorf("%w: order has no items", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkStock(order.Items); err != nil {
		return models.Order{}, err
	}

	if order.ID == "" {
		order.ID = s.nextRef("ORD")
	}
	if order.InvoiceNumber == "" {
		order.InvoiceNumber = s.nextRef("INV")
	}
	if order.Status == "" {
		order.Status = models.OrderDelivered
	}
	if order.PaymentStatus == "" {
		order.PaymentStatus = models.PaymentPaid
	}
	if order.Date == "" {
		order.Date = today()
	}
	if order.Type == "" {
		order.Type = models.OrderRetail
	}

	if err := s.commitOrder(order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// commitOrder persists the order and applies the stock decrement. Caller
// holds the lock and has already verified stock.
func (s *Store) commitOrder(order models.Order) error {
	if err := s.backend.InsertOrder(order); err != nil {
		return err
	}
	for _, item := range order.Items {
		for i := range s.products {
			if s.products[i].ID == item.ProductID {
				p := s.products[i]
				p.Stock -= item.Quantity
				if err := s.backend.UpdateProduct(p); err != nil {
					return err
				}
				s.products[i] = p
			}
		}
	}
	s.orders = append([]models.Order{order}, s.orders...)
	return nil
}

// checkStock verifies every line fits the current stock. Lines whose product
// no longer exists pass; there is nothing left to decrement for them. Caller
// holds the lock.
func (s *Store) checkStock(items []models.CartItem) error {
	for _, item := range items {
		if p, ok := s.findProduct(item.ProductID); ok && p.Stock < item.Quantity {
			return &InsufficientStockError{ProductName: p.Name, Available: p.Stock}
		}
	}
	return nil
}

// UpdateOrderStatus overwrites the status. Any transition is allowed from the
// back office. Stock only moves here when restock-on-cancel is enabled and
// the order newly becomes Cancelled.
func (s *Store) UpdateOrderStatus(orderID string, status models.OrderStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			prev := s.orders[i].Status
			o := s.orders[i]
			o.Status = status
			if err := s.backend.UpdateOrder(o); err != nil {
				return err
			}
			s.orders[i] = o

			if s.opts.RestockOnCancel && status == models.OrderCancelled && prev != models.OrderCancelled {
				s.restock(o.Items)
			}
			return nil
		}
	}
	return fmt.Errorf("order %s: %w", orderID, ErrNotFound)
}

func (s *Store) restock(items []models.CartItem) {
	for _, item := range items {
		for i := range s.products {
			if s.products[i].ID == item.ProductID {
				p := s.products[i]
				p.Stock += item.Quantity
				if err := s.backend.UpdateProduct(p); err != nil {
					continue // mirror not advanced for this row
				}
				s.products[i] = p
			}
		}
	}
}

func (s *Store) UpdatePaymentStatus(orderID string, status models.PaymentStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			o := s.orders[i]
			o.PaymentStatus = status
			if err := s.backend.UpdateOrder(o); err != nil {
				return err
			}
			s.orders[i] = o
			return nil
		}
	}
	return fmt.Errorf("order %s: %w", orderID, ErrNotFound)
}

// DeleteOrder removes the order permanently. Stock is not restored.
func (s *Store) DeleteOrder(orderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			if err := s.backend.DeleteOrder(orderID); err != nil {
				return err
			}
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("order %s: %w", orderID, ErrNotFound)
}

// ClearOnlineOrders wipes the online transaction history: every paid non-COD
// order is deleted. Stock is not restored, same as DeleteOrder. Returns how
// many orders were removed.
func (s *Store) ClearOnlineOrders() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.Order, 0, len(s.orders))
	removed := 0
	for i, o := range s.orders {
		if o.PaymentMethod == models.PaymentCOD || o.PaymentStatus != models.PaymentPaid {
			kept = append(kept, o)
			continue
		}
		if err := s.backend.DeleteOrder(o.ID); err != nil {
			s.orders = append(kept, s.orders[i:]...)
			return removed, err
		}
		removed++
	}
	s.orders = kept
	return removed, nil
}

func (s *Store) Orders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	return out
}

func (s *Store) OrdersForUser(userID string) []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

func (s *Store) OrderByID(orderID string) (models.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == orderID {
			return o, true
		}
	}
	return models.Order{}, false
}
