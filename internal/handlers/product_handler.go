package handlers

import (
	"net/http"

	"go-tea-store/internal/models"

	"github.com/gin-gonic/gin"
)

// --- GET: List the catalog ---
func (h *Handler) GetProducts(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Products())
}

// --- POST: Add a new product ---
func (h *Handler) AddProduct(c *gin.Context) {
	var newProduct models.Product
	if err := c.ShouldBindJSON(&newProduct); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created, err := h.Store.AddProduct(newProduct)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// --- PUT: Update a product ---
func (h *Handler) UpdateProduct(c *gin.Context) {
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	product.ID = c.Param("id")

	if err := h.Store.UpdateProduct(product); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}

// --- DELETE: Remove a product ---
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.Store.DeleteProduct(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

type StockRequest struct {
	Stock *int `json:"stock" binding:"required"`
}

// --- PUT: Direct stock correction ---
func (h *Handler) UpdateStock(c *gin.Context) {
	var input StockRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Stock value is required"})
		return
	}

	if err := h.Store.UpdateStock(c.Param("id"), *input.Stock); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock updated"})
}
