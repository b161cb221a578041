package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/abhay8696/rajmudra-backend/internal/api/dto"
	"github.com/abhay8696/rajmudra-backend/internal/domain"
	"github.com/abhay8696/rajmudra-backend/internal/service"
)

// PaymentsHandler exposes rent payment endpoints.
type PaymentsHandler struct {
	payments *service.PaymentService
}

// NewPaymentsHandler constructs handler.
func NewPaymentsHandler(paymentService *service.PaymentService) *PaymentsHandler {
	return &PaymentsHandler{payments: paymentService}
}

// Create handles POST /v1/payments/new.
func (h *PaymentsHandler) Create(c *fiber.Ctx) error {
	var req dto.PaymentCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	payment, err := h.payments.Create(c.UserContext(), actorID(c), service.PaymentCreateInput{
		ShopID: req.ShopID,
		Amount: req.Amount,
		Method: req.Method,
		PaidAt: req.Date,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewPaymentResponse(payment))
}

// GetByCondition handles GET /v1/payments/condition/:key/:val.
func (h *PaymentsHandler) GetByCondition(c *fiber.Ctx) error {
	payments, err := h.payments.GetByCondition(c.UserContext(), c.Params("key"), c.Params("val"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPaymentResponses(payments))
}

// GetByID handles GET /v1/payments/:id.
func (h *PaymentsHandler) GetByID(c *fiber.Ctx) error {
	payment, err := h.payments.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewPaymentResponse(payment))
}

// Update handles PUT /v1/payments/:id.
func (h *PaymentsHandler) Update(c *fiber.Ctx) error {
	var req dto.PaymentUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	payment, err := h.payments.Update(c.UserContext(), c.Params("id"), domain.PaymentPatch{
		Amount: req.Amount,
		Method: req.Method,
		PaidAt: req.Date,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusAccepted).JSON(dto.NewPaymentResponse(payment))
}

// Delete handles DELETE /v1/payments/:id.
func (h *PaymentsHandler) Delete(c *fiber.Ctx) error {
	if err := h.payments.Delete(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "payment deleted successfully"})
}
