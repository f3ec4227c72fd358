package store

import (
	"fmt"

	"go-tea-store/internal/models"
	"go-tea-store/internal/pricing"
)

// Cart returns a copy of the user's current cart.
func (s *Store) Cart(userID string) []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CartItem, len(s.carts[userID]))
	copy(out, s.carts[userID])
	return out
}

// AddToCart snapshots the product into the user's cart. A line for the same
// product merges quantities instead of duplicating. No stock check happens
// here; that is deferred to order placement.
func (s *Store) AddToCart(userID, productID string, quantity int) error {
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be at least 1", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.findProduct(productID)
	if !ok {
		return fmt.Errorf("product %s: %w", productID, ErrNotFound)
	}

	cart := s.carts[userID]
	for i := range cart {
		if cart[i].ProductID == productID {
			cart[i].Quantity += quantity
			s.carts[userID] = cart
			return nil
		}
	}

	s.carts[userID] = append(cart, models.CartItem{
		ProductID:        p.ID,
		Name:             p.Name,
		Weight:           p.Weight,
		MRP:              p.MRP,
		DistributorPrice: p.DistributorPrice,
		HSNCode:          p.HSNCode,
		Quantity:         quantity,
	})
	return nil
}

// RemoveFromCart drops the whole line, not a partial quantity.
func (s *Store) RemoveFromCart(userID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	out := cart[:0]
	for _, item := range cart {
		if item.ProductID != productID {
			out = append(out, item)
		}
	}
	s.carts[userID] = out
}

// ClearCart empties the cart. Called on logout and after a successful order.
func (s *Store) ClearCart(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// CartQuote prices the cart for the user's role without touching any state,
// so checkout can charge the right amount before the order exists.
func (s *Store) CartQuote(userID string) (subtotal, tax, total float64, err error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.findUser(userID)
	if !ok {
		return 0, 0, 0, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}
	cart := s.carts[userID]
	if len(cart) == 0 {
		return 0, 0, 0, ErrEmptyCart
	}

	for _, item := range cart {
		subtotal += pricing.LinePrice(item, u.Role) * float64(item.Quantity)
	}
	tax = subtotal * TaxRate
	return subtotal, tax, subtotal + tax, nil
}

// VerifyCartStock runs the same all-or-nothing availability check as order
// placement, so the payment gateway is never invoked for a doomed cart.
func (s *Store) VerifyCartStock(userID string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checkStock(s.carts[userID])
}

// findUser assumes the caller holds the lock.
func (s *Store) findUser(id string) (models.User, bool) {
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}
