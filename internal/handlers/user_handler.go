package handlers

import (
	"net/http"

	"go-tea-store/internal/models"

	"github.com/gin-gonic/gin"
)

// --- Admin: list all accounts (password hashes never serialize) ---
func (h *Handler) ListUsers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Users())
}

// --- Admin: create an account directly; auto-approved ---
func (h *Handler) AddUser(c *gin.Context) {
	var input struct {
		models.User
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	u := input.User
	u.Password = input.Password // hashed inside the store
	created, err := h.Store.AddUser(u)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// --- Admin: unlock a distributor account for login ---
func (h *Handler) ApproveDistributor(c *gin.Context) {
	if err := h.Store.ApproveDistributor(c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Distributor approved"})
}

// --- Admin: reset any account's password ---
func (h *Handler) UpdateUserPassword(c *gin.Context) {
	var input PasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}
	if err := h.Store.UpdateUserPassword(c.Param("id"), input.Password); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
