package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/abhay8696/rajmudra-backend/internal/api/dto"
	"github.com/abhay8696/rajmudra-backend/internal/auth"
	"github.com/abhay8696/rajmudra-backend/internal/domain"
	"github.com/abhay8696/rajmudra-backend/internal/repository"
	"github.com/abhay8696/rajmudra-backend/internal/service"
)

// ShopsHandler exposes shop management endpoints.
type ShopsHandler struct {
	shops *service.ShopService
}

// NewShopsHandler constructs handler.
func NewShopsHandler(shopService *service.ShopService) *ShopsHandler {
	return &ShopsHandler{shops: shopService}
}

func actorID(c *fiber.Ctx) string {
	if admin, ok := auth.AdminFromContext(c); ok {
		return admin.ID
	}
	return ""
}

// Create handles POST /v1/shops/new.
func (h *ShopsHandler) Create(c *fiber.Ctx) error {
	var req dto.ShopCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	shop, err := h.shops.Create(c.UserContext(), actorID(c), service.ShopCreateInput{
		OwnerName:        req.OwnerName,
		ShopNo:           req.ShopNo,
		RegistrationNo:   req.RegistrationNo,
		OwnerContact:     req.OwnerContact,
		OwnerAddress:     req.OwnerAddress,
		OwnerAdhaar:      req.OwnerAdhaar,
		RentStart:        req.RentAgreement.StartDate,
		RentEnd:          req.RentAgreement.EndDate,
		TenureMonths:     req.Tenure,
		MonthlyRent:      req.MonthlyRent,
		OwnerPhoto:       req.OwnerPhoto,
		OwnerAdhaarPhoto: req.OwnerAdhaarPhoto,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewShopResponse(shop))
}

// GetAll handles GET /v1/shops/all.
func (h *ShopsHandler) GetAll(c *fiber.Ctx) error {
	filter := repository.ShopFilter{}
	if owner := c.Query("ownerName"); owner != "" {
		filter.OwnerName = &owner
	}
	if shopNo := c.Query("shopNo"); shopNo != "" {
		filter.ShopNo = &shopNo
	}
	shops, err := h.shops.List(c.UserContext(), filter)
	if err != nil {
		return err
	}
	return c.JSON(dto.NewShopResponses(shops))
}

// GetByID handles GET /v1/shops/:id.
func (h *ShopsHandler) GetByID(c *fiber.Ctx) error {
	shop, err := h.shops.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewShopResponse(shop))
}

// Update handles PUT /v1/shops/:id.
func (h *ShopsHandler) Update(c *fiber.Ctx) error {
	var req dto.ShopUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	patch := domain.ShopPatch{
		OwnerName:        req.OwnerName,
		ShopNo:           req.ShopNo,
		RegistrationNo:   req.RegistrationNo,
		OwnerContact:     req.OwnerContact,
		OwnerAddress:     req.OwnerAddress,
		OwnerAdhaar:      req.OwnerAdhaar,
		TenureMonths:     req.Tenure,
		MonthlyRent:      req.MonthlyRent,
		OwnerPhoto:       req.OwnerPhoto,
		OwnerAdhaarPhoto: req.OwnerAdhaarPhoto,
	}
	if req.RentAgreement != nil {
		patch.RentStart = &req.RentAgreement.StartDate
		patch.RentEnd = &req.RentAgreement.EndDate
	}

	shop, err := h.shops.Update(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return err
	}
	return c.Status(http.StatusAccepted).JSON(dto.NewShopResponse(shop))
}

// Delete handles DELETE /v1/shops/:id.
func (h *ShopsHandler) Delete(c *fiber.Ctx) error {
	if err := h.shops.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "shop deleted successfully"})
}
