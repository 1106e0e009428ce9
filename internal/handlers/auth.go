package handlers

import (
	"errors"

	"github.com/m1z23r/drift/pkg/drift"
	"github.com/muntadher/nizam-api/internal/middleware"
	"github.com/muntadher/nizam-api/internal/services"
	"github.com/muntadher/nizam-api/pkg/dto"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Login(c *drift.Context) {
	var req dto.LoginRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		c.BadRequest("username and password are required")
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuthNotConfigured) {
			c.InternalServerError("authentication is not configured")
			return
		}
		c.Unauthorized("invalid credentials")
		return
	}

	_ = c.JSON(200, dto.LoginResponse{Token: token})
}

func (h *AuthHandler) Me(c *drift.Context) {
	username := middleware.GetUsername(c)
	if username == "" {
		c.Unauthorized("not authenticated")
		return
	}
	_ = c.JSON(200, dto.MeResponse{Username: username})
}

// Logout is a no-op: sessions are stateless tokens that simply expire.
func (h *AuthHandler) Logout(c *drift.Context) {
	_ = c.JSON(200, map[string]bool{"ok": true})
}
