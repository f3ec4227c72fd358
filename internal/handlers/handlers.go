package handlers

import (
	"errors"
	"net/http"

	"go-tea-store/internal/payment"
	"go-tea-store/internal/store"

	"github.com/gin-gonic/gin"
)

// Handler wires every route to the store instance and the payment gateway.
// No package-level state: everything reachable from a request hangs off this.
type Handler struct {
	Store   *store.Store
	Gateway payment.Gateway
}

func New(st *store.Store, gw payment.Gateway) *Handler {
	return &Handler{Store: st, Gateway: gw}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrMobileExists):
		return http.StatusConflict
	case errors.Is(err, store.ErrValidation),
		errors.Is(err, store.ErrInsufficientStock),
		errors.Is(err, store.ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrAccountNotFound),
		errors.Is(err, store.ErrWrongPassword):
		return http.StatusUnauthorized
	case errors.Is(err, store.ErrNotApproved):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) fail(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func currentUserID(c *gin.Context) string {
	return c.MustGet("userID").(string)
}
