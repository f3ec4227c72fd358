package handlers

import (
	"net/http"

	"go-tea-store/internal/auth"
	"go-tea-store/internal/models"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Mobile   string `json:"mobile" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login finds the account by mobile and checks the password. The three
// failure modes stay distinguishable for the storefront: unknown account,
// wrong password, and a distributor still waiting for approval.
func (h *Handler) Login(c *gin.Context) {
	var input LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Mobile and password are required"})
		return
	}

	user, err := h.Store.Login(input.Mobile, input.Password)
	if err != nil {
		h.fail(c, err)
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"role":  user.Role,
		"name":  user.Name,
		"id":    user.ID,
	})
}

type RegisterRequest struct {
	Name      string      `json:"name" binding:"required"`
	Mobile    string      `json:"mobile" binding:"required"`
	Password  string      `json:"password" binding:"required"`
	Role      models.Role `json:"role"`
	Territory string      `json:"territory"`
}

// Register creates a storefront account. Distributors start unapproved and
// get a pending message instead of a token.
func (h *Handler) Register(c *gin.Context) {
	var input RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if input.Role == "" {
		input.Role = models.RoleCustomer
	}
	if input.Role == models.RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "Admin accounts cannot be self-registered"})
		return
	}

	user, err := h.Store.Register(input.Name, input.Mobile, input.Password, input.Role, input.Territory)
	if err != nil {
		h.fail(c, err)
		return
	}

	if !user.Approved {
		c.JSON(http.StatusCreated, gin.H{
			"message": "Registration successful! Please wait for Admin approval.",
		})
		return
	}

	token, err := auth.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "role": user.Role, "name": user.Name, "id": user.ID})
}

// Logout drops the server-side cart; the token simply expires client-side.
func (h *Handler) Logout(c *gin.Context) {
	h.Store.ClearCart(currentUserID(c))
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

type PasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

// ChangePassword lets the logged-in user overwrite their own credential.
func (h *Handler) ChangePassword(c *gin.Context) {
	var input PasswordRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}
	if err := h.Store.UpdateUserPassword(currentUserID(c), input.Password); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}
