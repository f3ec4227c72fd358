package store_test

import (
	"errors"
	"testing"

	"go-tea-store/internal/models"
	"go-tea-store/internal/store"
)

func TestAverageRating(t *testing.T) {
	st := newStore(t, store.Options{})
	p := addProduct(t, st, "Family Pack", 120, 90, 65, 10)

	if got := st.AverageRating(p.ID); got != 0 {
		t.Errorf("average with no reviews = %v, want 0", got)
	}

	for _, rating := range []int{5, 4, 4} {
		if _, err := st.AddReview(models.Review{ProductID: p.ID, UserName: "Amit", Rating: rating, Comment: "Good strong tea"}); err != nil {
			t.Fatalf("AddReview: %v", err)
		}
	}

	// (5+4+4)/3 = 4.333... rounds to one decimal.
	if got := st.AverageRating(p.ID); got != 4.3 {
		t.Errorf("average = %v, want 4.3", got)
	}
}

func TestAddReviewValidation(t *testing.T) {
	st := newStore(t, store.Options{})
	p := addProduct(t, st, "Family Pack", 120, 90, 65, 10)

	if _, err := st.AddReview(models.Review{ProductID: p.ID, Rating: 6, Comment: "x"}); !errors.Is(err, store.ErrValidation) {
		t.Errorf("rating 6: err = %v, want validation failure", err)
	}
	if _, err := st.AddReview(models.Review{ProductID: p.ID, Rating: 0, Comment: "x"}); !errors.Is(err, store.ErrValidation) {
		t.Errorf("rating 0: err = %v, want validation failure", err)
	}
	if _, err := st.AddReview(models.Review{ProductID: p.ID, Rating: 4, Comment: ""}); !errors.Is(err, store.ErrValidation) {
		t.Errorf("empty comment: err = %v, want validation failure", err)
	}
	if _, err := st.AddReview(models.Review{ProductID: "missing", Rating: 4, Comment: "x"}); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("unknown product: err = %v, want not found", err)
	}
}

func TestReviewLifecycle(t *testing.T) {
	st := newStore(t, store.Options{})
	p := addProduct(t, st, "Family Pack", 120, 90, 65, 10)

	r, err := st.AddReview(models.Review{ProductID: p.ID, UserName: "Amit", Rating: 3, Comment: "Decent"})
	if err != nil {
		t.Fatalf("AddReview: %v", err)
	}
	if r.ID == "" || r.Date == "" {
		t.Error("review id and date must be assigned")
	}

	r.Rating = 5
	r.Comment = "Actually great"
	if err := st.UpdateReview(r); err != nil {
		t.Fatalf("UpdateReview: %v", err)
	}
	if got := st.ReviewsForProduct(p.ID); len(got) != 1 || got[0].Rating != 5 {
		t.Errorf("reviews after update = %+v", got)
	}

	if err := st.DeleteReview(r.ID); err != nil {
		t.Fatalf("DeleteReview: %v", err)
	}
	if got := st.ReviewsForProduct(p.ID); len(got) != 0 {
		t.Errorf("reviews after delete = %+v, want none", got)
	}
	if err := st.DeleteReview(r.ID); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("double delete: err = %v, want not found", err)
	}
}
