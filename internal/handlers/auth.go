package handlers

import (
	"net/http"

	"leasehub-admin/internal/auth"
	"leasehub-admin/pkg/config"
	"leasehub-admin/pkg/logger"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login checks the submitted credentials against the configured admin
// account and issues a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	if req.Email != h.cfg.Admin.Email {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.cfg.Admin.PasswordHash), []byte(req.Password)); err != nil {
		logger.GlobalLogger.Printf("Failed admin login attempt: email=%s, client_ip=%s", req.Email, c.ClientIP())
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := auth.GenerateJWT(req.Email, h.cfg.JWT.Secret)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, token)
}
