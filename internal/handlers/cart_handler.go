package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) GetCart(c *gin.Context) {
	userID := currentUserID(c)
	subtotal, tax, total, err := h.Store.CartQuote(userID)
	if err != nil {
		// An empty cart is a normal state, not an error, for this view.
		subtotal, tax, total = 0, 0, 0
	}
	c.JSON(http.StatusOK, gin.H{
		"items":    h.Store.Cart(userID),
		"subtotal": subtotal,
		"tax":      tax,
		"total":    total,
	})
}

type AddToCartRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

// Adding the same product again merges into the existing line.
func (h *Handler) AddToCart(c *gin.Context) {
	var input AddToCartRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Product id and quantity are required"})
		return
	}

	if err := h.Store.AddToCart(currentUserID(c), input.ProductID, input.Quantity); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": h.Store.Cart(currentUserID(c))})
}

// Removes the whole line for the product, never a partial quantity.
func (h *Handler) RemoveFromCart(c *gin.Context) {
	userID := currentUserID(c)
	h.Store.RemoveFromCart(userID, c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"items": h.Store.Cart(userID)})
}
