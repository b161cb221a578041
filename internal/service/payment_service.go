package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abhay8696/rajmudra-backend/internal/domain"
	"github.com/abhay8696/rajmudra-backend/internal/events"
	"github.com/abhay8696/rajmudra-backend/internal/repository"
	util "github.com/abhay8696/rajmudra-backend/pkg/util"
)

// PaymentService records rent payments against shops.
type PaymentService struct {
	payments   repository.PaymentRepository
	shops      repository.ShopRepository
	dispatcher events.Dispatcher
}

// NewPaymentService constructs the service.
func NewPaymentService(payments repository.PaymentRepository, shops repository.ShopRepository, dispatcher events.Dispatcher) *PaymentService {
	return &PaymentService{payments: payments, shops: shops, dispatcher: dispatcher}
}

// PaymentCreateInput carries the fields of a payment request.
type PaymentCreateInput struct {
	ShopID string
	Amount int64
	Method string
	PaidAt *time.Time
}

// Create records a payment after verifying the shop exists.
func (s *PaymentService) Create(ctx context.Context, actorID string, input PaymentCreateInput) (*domain.Payment, error) {
	if input.Amount <= 0 {
		return nil, util.NewValidationError("amount must be positive", nil)
	}
	if input.Method == "" {
		return nil, util.NewValidationError("method required", nil)
	}

	if _, err := s.shops.GetByID(ctx, input.ShopID); err != nil {
		return nil, err
	}

	paidAt := time.Now()
	if input.PaidAt != nil {
		paidAt = *input.PaidAt
	}
	payment := &domain.Payment{
		ShopID: input.ShopID,
		Amount: input.Amount,
		Method: input.Method,
		PaidAt: paidAt,
	}
	if err := s.payments.Create(ctx, payment); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventPaymentRecorded,
			ActorID:   actorID,
			Timestamp: time.Now(),
			Payload: events.PaymentRecordedPayload{
				PaymentID: payment.ID,
				ShopID:    payment.ShopID,
				Amount:    payment.Amount,
				Method:    payment.Method,
			},
		})
	}
	return payment, nil
}

// GetByID fetches one payment.
func (s *PaymentService) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	return s.payments.GetByID(ctx, id)
}

// GetByCondition lists payments matching a single permitted field. The field
// set is a closed enum; anything else is a validation failure.
func (s *PaymentService) GetByCondition(ctx context.Context, key, value string) ([]domain.Payment, error) {
	filter := repository.PaymentFilter{}
	switch key {
	case "shop", "shopId":
		filter.ShopID = &value
	case "method":
		filter.Method = &value
	default:
		return nil, util.NewValidationError("unsupported condition field",
			map[string]any{"field": key})
	}
	return s.payments.List(ctx, filter)
}

// Update applies a partial update to a payment.
func (s *PaymentService) Update(ctx context.Context, id string, patch domain.PaymentPatch) (*domain.Payment, error) {
	current, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if patch.Amount != nil {
		if *patch.Amount <= 0 {
			return nil, util.NewValidationError("amount must be positive", nil)
		}
		updated.Amount = *patch.Amount
	}
	if patch.Method != nil {
		updated.Method = *patch.Method
	}
	if patch.PaidAt != nil {
		updated.PaidAt = *patch.PaidAt
	}

	if err := s.payments.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a payment permanently.
func (s *PaymentService) Delete(ctx context.Context, id string) error {
	return s.payments.Delete(ctx, id)
}
