package dto

import (
	"time"

	"github.com/abhay8696/rajmudra-backend/internal/domain"
)

// PaymentCreateRequest payload for recording a payment.
type PaymentCreateRequest struct {
	ShopID string     `json:"shopId"`
	Amount int64      `json:"amount"`
	Method string     `json:"paymentMethod"`
	Date   *time.Time `json:"date,omitempty"`
}

// PaymentUpdateRequest payload for partial payment updates.
type PaymentUpdateRequest struct {
	Amount *int64     `json:"amount,omitempty"`
	Method *string    `json:"paymentMethod,omitempty"`
	Date   *time.Time `json:"date,omitempty"`
}

// PaymentResponse is the wire form of a payment record.
type PaymentResponse struct {
	ID        string    `json:"id"`
	ShopID    string    `json:"shopId"`
	Amount    int64     `json:"amount"`
	Method    string    `json:"paymentMethod"`
	Date      time.Time `json:"date"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewPaymentResponse maps a domain payment onto its wire form.
func NewPaymentResponse(payment *domain.Payment) PaymentResponse {
	return PaymentResponse{
		ID:        payment.ID,
		ShopID:    payment.ShopID,
		Amount:    payment.Amount,
		Method:    payment.Method,
		Date:      payment.PaidAt,
		CreatedAt: payment.CreatedAt,
	}
}

// NewPaymentResponses maps a slice of domain payments.
func NewPaymentResponses(payments []domain.Payment) []PaymentResponse {
	result := make([]PaymentResponse, 0, len(payments))
	for i := range payments {
		result = append(result, NewPaymentResponse(&payments[i]))
	}
	return result
}
