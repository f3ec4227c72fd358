package handlers

import (
	"net/http"

	"go-tea-store/internal/models"

	"github.com/gin-gonic/gin"
)

// Settings are singletons: GET returns the whole document, PUT replaces it.

func (h *Handler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"invoice": h.Store.InvoiceSettings(),
		"payment": h.Store.PaymentSettings(),
		"brand":   h.Store.BrandAssets(),
	})
}

func (h *Handler) UpdateInvoiceSettings(c *gin.Context) {
	var settings models.InvoiceSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := h.Store.UpdateInvoiceSettings(settings); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice settings saved"})
}

func (h *Handler) UpdatePaymentSettings(c *gin.Context) {
	var settings models.PaymentSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := h.Store.UpdatePaymentSettings(settings); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment settings saved"})
}

func (h *Handler) UpdateBrandAssets(c *gin.Context) {
	var assets models.BrandAssets
	if err := c.ShouldBindJSON(&assets); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := h.Store.UpdateBrandAssets(assets); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Brand assets saved"})
}
