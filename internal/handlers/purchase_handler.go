package handlers

import (
	"net/http"

	"go-tea-store/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListPurchaseOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.PurchaseOrders())
}

type PurchaseOrderRequest struct {
	SupplierName string                `json:"supplierName" binding:"required"`
	PONumber     string                `json:"poNumber"`
	Items        []models.PurchaseItem `json:"items" binding:"required"`
}

func (h *Handler) AddPurchaseOrder(c *gin.Context) {
	var input PurchaseOrderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Supplier name and items are required"})
		return
	}

	po, err := h.Store.AddPurchaseOrder(input.SupplierName, input.PONumber, input.Items)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, po)
}

// ReceivePurchaseOrder books the goods in. Receiving an already-received PO
// is accepted and changes nothing.
func (h *Handler) ReceivePurchaseOrder(c *gin.Context) {
	if err := h.Store.ReceivePurchaseOrder(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase order received"})
}

func (h *Handler) DeletePurchaseOrder(c *gin.Context) {
	if err := h.Store.DeletePurchaseOrder(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Purchase order deleted"})
}
