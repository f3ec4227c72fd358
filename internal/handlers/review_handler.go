package handlers

import (
	"net/http"

	"go-tea-store/internal/models"

	"github.com/gin-gonic/gin"
)

// --- GET: Reviews for one product, with the average rating ---
func (h *Handler) GetProductReviews(c *gin.Context) {
	productID := c.Param("id")
	c.JSON(http.StatusOK, gin.H{
		"reviews":       h.Store.ReviewsForProduct(productID),
		"averageRating": h.Store.AverageRating(productID),
	})
}

type ReviewRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
}

// --- POST: Buyer-authored review, identity taken from the session ---
func (h *Handler) AddReview(c *gin.Context) {
	var input ReviewRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product, rating and comment are required"})
		return
	}

	review, err := h.Store.AddReview(models.Review{
		ProductID: input.ProductID,
		UserID:    currentUserID(c),
		UserName:  c.MustGet("userName").(string),
		Rating:    input.Rating,
		Comment:   input.Comment,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *Handler) ListReviews(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Reviews())
}

// --- POST: Admin-authored review; may carry an empty userId ---
func (h *Handler) AddReviewManual(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created, err := h.Store.AddReview(review)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	review.ID = c.Param("id")

	if err := h.Store.UpdateReview(review); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review updated"})
}

func (h *Handler) DeleteReview(c *gin.Context) {
	if err := h.Store.DeleteReview(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted"})
}
