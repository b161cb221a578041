package dto

import (
	"time"

	"github.com/abhay8696/rajmudra-backend/internal/domain"
)

// AdminCreateRequest payload for registering a new admin.
type AdminCreateRequest struct {
	Name         string  `json:"name"`
	Contact      string  `json:"contact"`
	Email        *string `json:"email,omitempty"`
	Password     string  `json:"password"`
	IsSuperAdmin bool    `json:"isSuperAdmin"`
}

// AdminUpdateRequest payload for partial admin updates.
type AdminUpdateRequest struct {
	Name         *string `json:"name,omitempty"`
	Contact      *string `json:"contact,omitempty"`
	Email        *string `json:"email,omitempty"`
	Password     *string `json:"password,omitempty"`
	IsSuperAdmin *bool   `json:"isSuperAdmin,omitempty"`
}

// AdminResponse is the wire form of an admin record. The password hash never
// leaves the service.
type AdminResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Contact      string    `json:"contact"`
	Email        *string   `json:"email,omitempty"`
	IsSuperAdmin bool      `json:"isSuperAdmin"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewAdminResponse maps a domain admin onto its wire form.
func NewAdminResponse(admin *domain.Admin) AdminResponse {
	return AdminResponse{
		ID:           admin.ID,
		Name:         admin.Name,
		Contact:      admin.Contact,
		Email:        admin.Email,
		IsSuperAdmin: admin.IsSuperAdmin,
		CreatedAt:    admin.CreatedAt,
		UpdatedAt:    admin.UpdatedAt,
	}
}

// NewAdminResponses maps a slice of domain admins.
func NewAdminResponses(admins []domain.Admin) []AdminResponse {
	result := make([]AdminResponse, 0, len(admins))
	for i := range admins {
		result = append(result, NewAdminResponse(&admins[i]))
	}
	return result
}
