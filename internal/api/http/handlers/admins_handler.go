package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/abhay8696/rajmudra-backend/internal/api/dto"
	"github.com/abhay8696/rajmudra-backend/internal/domain"
	"github.com/abhay8696/rajmudra-backend/internal/service"
)

// AdminsHandler exposes admin management endpoints.
type AdminsHandler struct {
	admins *service.AdminService
}

// NewAdminsHandler constructs handler.
func NewAdminsHandler(adminService *service.AdminService) *AdminsHandler {
	return &AdminsHandler{admins: adminService}
}

// Create handles POST /v1/admins/new.
func (h *AdminsHandler) Create(c *fiber.Ctx) error {
	var req dto.AdminCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	admin, err := h.admins.Create(c.UserContext(), service.AdminCreateInput{
		Name:         req.Name,
		Contact:      req.Contact,
		Email:        req.Email,
		Password:     req.Password,
		IsSuperAdmin: req.IsSuperAdmin,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewAdminResponse(admin))
}

// GetAll handles GET /v1/admins/all.
func (h *AdminsHandler) GetAll(c *fiber.Ctx) error {
	admins, err := h.admins.GetAll(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAdminResponses(admins))
}

// GetByContact handles GET /v1/admins/contact?contact=...
func (h *AdminsHandler) GetByContact(c *fiber.Ctx) error {
	contact := c.Query("contact")
	if contact == "" {
		return fiber.NewError(http.StatusBadRequest, "contact required")
	}
	admin, err := h.admins.GetByContact(c.UserContext(), contact)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAdminResponse(admin))
}

// GetByID handles GET /v1/admins/:id.
func (h *AdminsHandler) GetByID(c *fiber.Ctx) error {
	admin, err := h.admins.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewAdminResponse(admin))
}

// Update handles PUT /v1/admins/:id.
func (h *AdminsHandler) Update(c *fiber.Ctx) error {
	var req dto.AdminUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	admin, err := h.admins.Update(c.UserContext(), c.Params("id"), domain.AdminPatch{
		Name:         req.Name,
		Contact:      req.Contact,
		Email:        req.Email,
		Password:     req.Password,
		IsSuperAdmin: req.IsSuperAdmin,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusAccepted).JSON(dto.NewAdminResponse(admin))
}

// Delete handles DELETE /v1/admins/:id.
func (h *AdminsHandler) Delete(c *fiber.Ctx) error {
	if err := h.admins.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "admin deleted successfully"})
}
