package handlers

import (
	"net/http"

	"go-tea-store/internal/models"
	"go-tea-store/internal/payment"

	"github.com/gin-gonic/gin"
)

type CheckoutRequest struct {
	PaymentMethod models.PaymentMethod `json:"paymentMethod" binding:"required"`
	Address       string               `json:"address"`
}

// Checkout turns the session cart into an order. For online methods the
// gateway is asked to collect first; exactly one of its three outcomes
// decides what happens:
//
//	paid      -> order committed with status Paid and the transaction id
//	failed    -> no order, error surfaced, cart preserved for retry
//	cancelled -> no order, no error, cart preserved
//
// COD and Cash skip the gateway and commit with payment Pending.
func (h *Handler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment method is required"})
		return
	}
	userID := currentUserID(c)

	// Catch a doomed cart before anyone is charged.
	if err := h.Store.VerifyCartStock(userID); err != nil {
		h.fail(c, err)
		return
	}

	payStatus := models.PaymentPending
	transactionID := ""

	if req.PaymentMethod == models.PaymentUPI || req.PaymentMethod == models.PaymentCard {
		_, _, total, err := h.Store.CartQuote(userID)
		if err != nil {
			h.fail(c, err)
			return
		}

		result, err := h.Gateway.Collect(c.Request.Context(), payment.Request{
			Amount:   total,
			Currency: "INR",
			OrderRef: userID,
			KeyID:    h.Store.PaymentSettings().RazorpayKeyID,
		})
		if err != nil {
			// Gateway trouble: no order, cart stays for a retry.
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		switch result.Status {
		case payment.StatusFailed:
			c.JSON(http.StatusPaymentRequired, gin.H{"error": "Payment failed: " + result.Reason})
			return
		case payment.StatusCancelled:
			c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
			return
		case payment.StatusPaid:
			payStatus = models.PaymentPaid
			transactionID = result.TransactionID
		}
	}

	order, err := h.Store.PlaceOrder(userID, req.PaymentMethod, req.Address, payStatus, transactionID)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

// --- Buyer: own order history ---
func (h *Handler) MyOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.OrdersForUser(currentUserID(c)))
}

// --- Admin: all orders ---
func (h *Handler) ListOrders(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Orders())
}

// --- Admin: manual counter-sale entry ---
func (h *Handler) AddOrder(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	created, err := h.Store.AddOrder(order)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

type OrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

func (h *Handler) UpdateOrderStatus(c *gin.Context) {
	var input OrderStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}
	if err := h.Store.UpdateOrderStatus(c.Param("id"), input.Status); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}

type PaymentStatusRequest struct {
	Status models.PaymentStatus `json:"status" binding:"required"`
}

func (h *Handler) UpdatePaymentStatus(c *gin.Context) {
	var input PaymentStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}
	if err := h.Store.UpdatePaymentStatus(c.Param("id"), input.Status); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment status updated"})
}

// --- Admin: reset the online transaction history ---
func (h *Handler) ClearOnlineOrders(c *gin.Context) {
	removed, err := h.Store.ClearOnlineOrders()
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Online transaction history cleared", "removed": removed})
}

func (h *Handler) DeleteOrder(c *gin.Context) {
	if err := h.Store.DeleteOrder(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order deleted"})
}
