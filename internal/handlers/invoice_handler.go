package handlers

import (
	"net/http"

	"go-tea-store/internal/invoice"
	"go-tea-store/internal/models"

	"github.com/gin-gonic/gin"
)

// --- GET: /api/orders/:id/invoice.pdf ---
// Renders the invoice straight from the order and the current settings; only
// the purchaser or an admin may fetch it.
func (h *Handler) OrderInvoicePDF(c *gin.Context) {
	order, ok := h.Store.OrderByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	role := c.MustGet("role").(models.Role)
	if role != models.RoleAdmin && order.UserID != currentUserID(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "You do not have permission to access this resource"})
		return
	}

	doc, err := invoice.Render(order, h.Store.InvoiceSettings(), h.Store.PaymentSettings())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render invoice"})
		return
	}

	c.Header("Content-Disposition", `inline; filename="`+order.InvoiceNumber+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", doc)
}
