package store

import (
	"fmt"

	"go-tea-store/internal/models"

	"github.com/google/uuid"
)

func (s *Store) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) ProductByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findProduct(id)
}

func (s *Store) AddProduct(p models.Product) (models.Product, error) {
	if err := validateProduct(p); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if err := s.backend.InsertProduct(p); err != nil {
		return models.Product{}, err
	}
	s.products = append(s.products, p)
	return p, nil
}

func (s *Store) UpdateProduct(p models.Product) error {
	if err := validateProduct(p); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == p.ID {
			if err := s.backend.UpdateProduct(p); err != nil {
				return err
			}
			s.products[i] = p
			return nil
		}
	}
	return fmt.Errorf("product %s: %w", p.ID, ErrNotFound)
}

func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == id {
			if err := s.backend.DeleteProduct(id); err != nil {
				return err
			}
			s.products = append(s.products[:i], s.products[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("product %s: %w", id, ErrNotFound)
}

// UpdateStock is the direct admin stock correction.
func (s *Store) UpdateStock(productID string, newStock int) error {
	if newStock < 0 {
		return fmt.Errorf("%w: stock must not be negative", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.products {
		if s.products[i].ID == productID {
			p := s.products[i]
			p.Stock = newStock
			if err := s.backend.UpdateProduct(p); err != nil {
				return err
			}
			s.products[i] = p
			return nil
		}
	}
	return fmt.Errorf("product %s: %w", productID, ErrNotFound)
}

func validateProduct(p models.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if p.MRP < 0 || p.DistributorPrice < 0 || p.CostPrice < 0 {
		return fmt.Errorf("%w: prices must not be negative", ErrValidation)
	}
	if p.Stock < 0 || p.LowStockThreshold < 0 {
		return fmt.Errorf("%w: stock values must not be negative", ErrValidation)
	}
	return nil
}

// findProduct assumes the caller holds the lock.
func (s *Store) findProduct(id string) (models.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}
