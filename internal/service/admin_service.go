package service

import (
	"context"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/abhay8696/rajmudra-backend/internal/auth"
	"github.com/abhay8696/rajmudra-backend/internal/config"
	"github.com/abhay8696/rajmudra-backend/internal/domain"
	"github.com/abhay8696/rajmudra-backend/internal/registry"
	"github.com/abhay8696/rajmudra-backend/internal/repository"
	util "github.com/abhay8696/rajmudra-backend/pkg/util"
)

var contactPattern = regexp.MustCompile(`^\d{10}$`)

// AdminService manages admin credentials: creation, lookup, patch updates
// and deletion, preserving contact/email uniqueness.
type AdminService struct {
	admins     repository.AdminRepository
	uniq       *registry.Engine[domain.Admin]
	bcryptCost int
}

// NewAdminService constructs the service. Candidate keys are checked in
// declared order: contact first, then email.
func NewAdminService(cfg config.Config, admins repository.AdminRepository) *AdminService {
	uniq := registry.New(
		registry.CandidateKey[domain.Admin]{
			Field:  "contact",
			Value:  func(a *domain.Admin) string { return a.Contact },
			Lookup: admins.FindIDByContact,
		},
		registry.CandidateKey[domain.Admin]{
			Field: "email",
			Value: func(a *domain.Admin) string {
				if a.Email == nil {
					return ""
				}
				return *a.Email
			},
			Lookup: admins.FindIDByEmail,
		},
	)
	return &AdminService{admins: admins, uniq: uniq, bcryptCost: cfg.Auth.BcryptCost}
}

// AdminCreateInput carries the fields of a registration request.
type AdminCreateInput struct {
	Name         string
	Contact      string
	Email        *string
	Password     string
	IsSuperAdmin bool
}

func normalizeEmail(email *string) *string {
	if email == nil {
		return nil
	}
	normalized := strings.ToLower(strings.TrimSpace(*email))
	if normalized == "" {
		return nil
	}
	return &normalized
}

func validateAdminFields(name, contact string, email *string) error {
	if err := validation.Validate(name, validation.Required); err != nil {
		return util.NewValidationError("name required", nil)
	}
	if err := validation.Validate(contact, validation.Required, validation.Match(contactPattern)); err != nil {
		return util.NewValidationError("contact must be exactly 10 digits",
			map[string]any{"contact": contact})
	}
	if email != nil {
		if err := validation.Validate(*email, is.Email); err != nil {
			return util.NewValidationError("invalid email",
				map[string]any{"email": *email})
		}
	}
	return nil
}

// Create registers a new admin. The uniqueness pre-check runs contact first,
// then email; the storage-level unique constraints back it up under
// concurrent writers.
func (s *AdminService) Create(ctx context.Context, input AdminCreateInput) (*domain.Admin, error) {
	email := normalizeEmail(input.Email)
	if err := validateAdminFields(input.Name, input.Contact, email); err != nil {
		return nil, err
	}

	admin := &domain.Admin{
		Name:         strings.TrimSpace(input.Name),
		Contact:      input.Contact,
		Email:        email,
		IsSuperAdmin: input.IsSuperAdmin,
	}
	if err := s.uniq.Check(ctx, admin, ""); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}
	admin.PasswordHash = hash

	if err := s.admins.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

// GetAll returns every admin record.
func (s *AdminService) GetAll(ctx context.Context) ([]domain.Admin, error) {
	return s.admins.List(ctx)
}

// GetByID fetches one admin.
func (s *AdminService) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	return s.admins.GetByID(ctx, id)
}

// GetByContact fetches one admin by its contact number.
func (s *AdminService) GetByContact(ctx context.Context, contact string) (*domain.Admin, error) {
	return s.admins.GetByContact(ctx, contact)
}

// Update applies a partial update. Candidate keys touched by the patch are
// re-checked excluding the record's own id; the write is a single UPDATE, so
// a conflict leaves the record untouched.
func (s *AdminService) Update(ctx context.Context, id string, patch domain.AdminPatch) (*domain.Admin, error) {
	current, err := s.admins.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := *current
	if patch.Name != nil {
		updated.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Contact != nil {
		updated.Contact = *patch.Contact
	}
	if patch.Email != nil {
		updated.Email = normalizeEmail(patch.Email)
	}
	if patch.IsSuperAdmin != nil {
		updated.IsSuperAdmin = *patch.IsSuperAdmin
	}
	if err := validateAdminFields(updated.Name, updated.Contact, updated.Email); err != nil {
		return nil, err
	}

	if err := s.uniq.Check(ctx, &updated, id); err != nil {
		return nil, err
	}

	if patch.Password != nil {
		hash, err := auth.HashPassword(*patch.Password, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		updated.PasswordHash = hash
	}

	if err := s.admins.Update(ctx, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes an admin permanently.
func (s *AdminService) Delete(ctx context.Context, id string) error {
	return s.admins.Delete(ctx, id)
}
