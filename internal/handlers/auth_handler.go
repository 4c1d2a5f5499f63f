package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/jamar2101/Back-End-Artalis/internal/models"
)

// UserStore is the slice of the user repository the auth handler uses.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

type AuthHandler struct {
	users     UserStore
	jwtSecret string
}

func NewAuthHandler(users UserStore, jwtSecret string) *AuthHandler {
	return &AuthHandler{users: users, jwtSecret: jwtSecret}
}

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges email+password for a bearer token carrying the admin flag.
func (h *AuthHandler) Login(c *gin.Context) {
	var input loginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, MessageEnvelope{
			Success: false,
			Message: "Email dan kata sandi wajib diisi",
		})
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), input.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, MessageEnvelope{
			Success: false,
			Message: "Email atau kata sandi salah",
		})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)) != nil {
		c.JSON(http.StatusUnauthorized, MessageEnvelope{
			Success: false,
			Message: "Email atau kata sandi salah",
		})
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId":  user.ID.Hex(),
		"isAdmin": user.IsAdmin,
		"exp":     time.Now().Add(30 * 24 * time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		c.JSON(http.StatusInternalServerError, MessageEnvelope{
			Success: false,
			Message: "Gagal membuat token",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token":   signed,
			"name":    user.Name,
			"email":   user.Email,
			"isAdmin": user.IsAdmin,
		},
		"message": "Login berhasil",
	})
}
