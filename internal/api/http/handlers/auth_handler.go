package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/abhay8696/rajmudra-backend/internal/api/dto"
	"github.com/abhay8696/rajmudra-backend/internal/service"
)

// AuthHandler exposes the login endpoint.
type AuthHandler struct {
	auth *service.AuthService
}

// NewAuthHandler constructs handler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Login handles POST /v1/auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}
	if req.Contact == "" || req.Password == "" {
		return fiber.NewError(http.StatusBadRequest, "contact and password required")
	}

	result, err := h.auth.Login(c.UserContext(), req.Contact, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"admin": dto.NewAdminResponse(result.Admin),
		"tokens": fiber.Map{
			"access": dto.AuthResponse{Token: result.Token, ExpiresAt: result.ExpiresAt},
		},
	})
}
