package store

import (
	"fmt"
	"math"

	"go-tea-store/internal/models"

	"github.com/google/uuid"
)

// AddReview stores a rating/comment for a product. UserID may be empty for
// admin-authored reviews.
func (s *Store) AddReview(r models.Review) (models.Review, error) {
	if r.Rating < 1 || r.Rating > 5 {
		return models.Review{}, fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if r.Comment == "" {
		return models.Review{}, fmt.Errorf("%w: comment must not be empty", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.findProduct(r.ProductID); !ok {
		return models.Review{}, fmt.Errorf("product %s: %w", r.ProductID, ErrNotFound)
	}

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.Date == "" {
		r.Date = today()
	}

	if err := s.backend.InsertReview(r); err != nil {
		return models.Review{}, err
	}
	s.reviews = append([]models.Review{r}, s.reviews...)
	return r, nil
}

// UpdateReview is admin-only at the HTTP layer.
func (s *Store) UpdateReview(r models.Review) error {
	if r.Rating < 1 || r.Rating > 5 {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}
	if r.Comment == "" {
		return fmt.Errorf("%w: comment must not be empty", ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reviews {
		if s.reviews[i].ID == r.ID {
			if err := s.backend.UpdateReview(r); err != nil {
				return err
			}
			s.reviews[i] = r
			return nil
		}
	}
	return fmt.Errorf("review %s: %w", r.ID, ErrNotFound)
}

func (s *Store) DeleteReview(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.reviews {
		if s.reviews[i].ID == id {
			if err := s.backend.DeleteReview(id); err != nil {
				return err
			}
			s.reviews = append(s.reviews[:i], s.reviews[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("review %s: %w", id, ErrNotFound)
}

func (s *Store) Reviews() []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Review, len(s.reviews))
	copy(out, s.reviews)
	return out
}

func (s *Store) ReviewsForProduct(productID string) []models.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Review
	for _, r := range s.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}

// AverageRating is the mean of all ratings for the product, rounded to one
// decimal; 0 when the product has no reviews.
func (s *Store) AverageRating(productID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum, count int
	for _, r := range s.reviews {
		if r.ProductID == productID {
			sum += r.Rating
			count++
		}
	}
	if count == 0 {
		return 0
	}
	return math.Round(float64(sum)/float64(count)*10) / 10
}
