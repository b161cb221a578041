package service

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"

	"github.com/abhay8696/rajmudra-backend/internal/domain"
	"github.com/abhay8696/rajmudra-backend/internal/events"
	"github.com/abhay8696/rajmudra-backend/internal/registry"
	"github.com/abhay8696/rajmudra-backend/internal/repository"
	util "github.com/abhay8696/rajmudra-backend/pkg/util"
)

// ShopService manages shop units, preserving shopNo/registrationNo
// uniqueness.
type ShopService struct {
	shops      repository.ShopRepository
	uniq       *registry.Engine[domain.Shop]
	dispatcher events.Dispatcher
}

// NewShopService constructs the service. Candidate keys are checked in
// declared order: shopNo first, then registrationNo.
func NewShopService(shops repository.ShopRepository, dispatcher events.Dispatcher) *ShopService {
	uniq := registry.New(
		registry.CandidateKey[domain.Shop]{
			Field:  "shopNo",
			Value:  func(s *domain.Shop) string { return s.ShopNo },
			Lookup: shops.FindIDByShopNo,
		},
		registry.CandidateKey[domain.Shop]{
			Field:  "registrationNo",
			Value:  func(s *domain.Shop) string { return s.RegistrationNo },
			Lookup: shops.FindIDByRegistrationNo,
		},
	)
	return &ShopService{shops: shops, uniq: uniq, dispatcher: dispatcher}
}

// ShopCreateInput carries the fields of a shop registration request.
type ShopCreateInput struct {
	OwnerName        string
	ShopNo           string
	RegistrationNo   string
	OwnerContact     string
	OwnerAddress     string
	OwnerAdhaar      string
	RentStart        time.Time
	RentEnd          time.Time
	TenureMonths     int
	MonthlyRent      string
	OwnerPhoto       string
	OwnerAdhaarPhoto string
}

func (in ShopCreateInput) validate() error {
	err := validation.Errors{
		"ownerName":      validation.Validate(in.OwnerName, validation.Required),
		"shopNo":         validation.Validate(in.ShopNo, validation.Required),
		"registrationNo": validation.Validate(in.RegistrationNo, validation.Required),
		"ownerContact":   validation.Validate(in.OwnerContact, validation.Required),
		"ownerAddress":   validation.Validate(in.OwnerAddress, validation.Required),
		"ownerAdhaar":    validation.Validate(in.OwnerAdhaar, validation.Required),
		"monthlyRent":    validation.Validate(in.MonthlyRent, validation.Required),
	}.Filter()
	if err != nil {
		return util.NewValidationError(err.Error(), nil)
	}
	if in.RentEnd.Before(in.RentStart) {
		return util.NewValidationError("rent agreement end precedes start", nil)
	}
	if in.TenureMonths <= 0 {
		return util.NewValidationError("tenure must be positive", nil)
	}
	return nil
}

// Create registers a new shop. Conflicting shopNo or registrationNo is a
// conflict-class error whichever layer detects it.
func (s *ShopService) Create(ctx context.Context, actorID string, input ShopCreateInput) (*domain.Shop, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	shop := &domain.Shop{
		OwnerName:        input.OwnerName,
		ShopNo:           input.ShopNo,
		RegistrationNo:   input.RegistrationNo,
		OwnerContact:     input.OwnerContact,
		OwnerAddress:     input.OwnerAddress,
		OwnerAdhaar:      input.OwnerAdhaar,
		RentStart:        input.RentStart,
		RentEnd:          input.RentEnd,
		TenureMonths:     input.TenureMonths,
		MonthlyRent:      input.MonthlyRent,
		OwnerPhoto:       input.OwnerPhoto,
		OwnerAdhaarPhoto: input.OwnerAdhaarPhoto,
	}
	if err := s.uniq.Check(ctx, shop, ""); err != nil {
		return nil, err
	}
	if err := s.shops.Create(ctx, shop); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventShopRegistered,
		ActorID:   actorID,
		Timestamp: time.Now(),
		Payload: events.ShopRegisteredPayload{
			ShopID:    shop.ID,
			ShopNo:    shop.ShopNo,
			OwnerName: shop.OwnerName,
		},
	})
	return shop, nil
}

// GetByID fetches one shop.
func (s *ShopService) GetByID(ctx context.Context, id string) (*domain.Shop, error) {
	return s.shops.GetByID(ctx, id)
}

// List returns shops matching the filter.
func (s *ShopService) List(ctx context.Context, filter repository.ShopFilter) ([]domain.Shop, error) {
	return s.shops.List(ctx, filter)
}

// Update applies a partial update. Candidate keys touched by the patch are
// re-checked excluding the shop's own id; on conflict no field is mutated.
func (s *ShopService) Update(ctx context.Context, id string, patch domain.ShopPatch) (*domain.Shop, error) {
	current, err := s.shops.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	applyShopPatch(&updated, patch)
	if updated.RentEnd.Before(updated.RentStart) {
		return nil, util.NewValidationError("rent agreement end precedes start", nil)
	}

	if err := s.uniq.Check(ctx, &updated, id); err != nil {
		return nil, err
	}
	if err := s.shops.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a shop permanently. Dependent payment records are not
// cascaded here; referential cleanup is the caller's responsibility.
func (s *ShopService) Delete(ctx context.Context, id string) error {
	return s.shops.Delete(ctx, id)
}

func (s *ShopService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func applyShopPatch(shop *domain.Shop, patch domain.ShopPatch) {
	if patch.OwnerName != nil {
		shop.OwnerName = *patch.OwnerName
	}
	if patch.ShopNo != nil {
		shop.ShopNo = *patch.ShopNo
	}
	if patch.RegistrationNo != nil {
		shop.RegistrationNo = *patch.RegistrationNo
	}
	if patch.OwnerContact != nil {
		shop.OwnerContact = *patch.OwnerContact
	}
	if patch.OwnerAddress != nil {
		shop.OwnerAddress = *patch.OwnerAddress
	}
	if patch.OwnerAdhaar != nil {
		shop.OwnerAdhaar = *patch.OwnerAdhaar
	}
	if patch.RentStart != nil {
		shop.RentStart = *patch.RentStart
	}
	if patch.RentEnd != nil {
		shop.RentEnd = *patch.RentEnd
	}
	if patch.TenureMonths != nil {
		shop.TenureMonths = *patch.TenureMonths
	}
	if patch.MonthlyRent != nil {
		shop.MonthlyRent = *patch.MonthlyRent
	}
	if patch.OwnerPhoto != nil {
		shop.OwnerPhoto = *patch.OwnerPhoto
	}
	if patch.OwnerAdhaarPhoto != nil {
		shop.OwnerAdhaarPhoto = *patch.OwnerAdhaarPhoto
	}
}
