package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jengzang/trip-planner-go/internal/service"
	"github.com/jengzang/trip-planner-go/pkg/response"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type loginRequest struct {
	Name  string `json:"name" binding:"required"`
	Token string `json:"token" binding:"required"`
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "name and token required")
		return
	}

	sessionToken, days, err := h.service.Login(req.Name, req.Token)
	if err == service.ErrInvalidCredentials {
		response.Unauthorized(c, "Invalid name or token")
		return
	}
	if err != nil {
		response.InternalError(c, "Login failed")
		return
	}

	response.Success(c, gin.H{
		"token": sessionToken,
		"plans": days,
	})
}
