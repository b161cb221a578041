package dto

import (
	"time"

	"github.com/abhay8696/rajmudra-backend/internal/domain"
)

// RentAgreement is the nested agreement window on shop payloads.
type RentAgreement struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// ShopCreateRequest payload for registering a new shop.
type ShopCreateRequest struct {
	OwnerName        string        `json:"ownerName"`
	ShopNo           string        `json:"shopNo"`
	RegistrationNo   string        `json:"registrationNo"`
	OwnerContact     string        `json:"ownerContact"`
	OwnerAddress     string        `json:"ownerAddress"`
	OwnerAdhaar      string        `json:"ownerAdhaar"`
	RentAgreement    RentAgreement `json:"rentAgreement"`
	Tenure           int           `json:"tenure"`
	MonthlyRent      string        `json:"monthlyRent"`
	OwnerPhoto       string        `json:"ownerPhoto"`
	OwnerAdhaarPhoto string        `json:"ownerAdhaarPhoto"`
}

// ShopUpdateRequest payload for partial shop updates.
type ShopUpdateRequest struct {
	OwnerName        *string        `json:"ownerName,omitempty"`
	ShopNo           *string        `json:"shopNo,omitempty"`
	RegistrationNo   *string        `json:"registrationNo,omitempty"`
	OwnerContact     *string        `json:"ownerContact,omitempty"`
	OwnerAddress     *string        `json:"ownerAddress,omitempty"`
	OwnerAdhaar      *string        `json:"ownerAdhaar,omitempty"`
	RentAgreement    *RentAgreement `json:"rentAgreement,omitempty"`
	Tenure           *int           `json:"tenure,omitempty"`
	MonthlyRent      *string        `json:"monthlyRent,omitempty"`
	OwnerPhoto       *string        `json:"ownerPhoto,omitempty"`
	OwnerAdhaarPhoto *string        `json:"ownerAdhaarPhoto,omitempty"`
}

// ShopResponse is the wire form of a shop record.
type ShopResponse struct {
	ID               string        `json:"id"`
	OwnerName        string        `json:"ownerName"`
	ShopNo           string        `json:"shopNo"`
	RegistrationNo   string        `json:"registrationNo"`
	OwnerContact     string        `json:"ownerContact"`
	OwnerAddress     string        `json:"ownerAddress"`
	OwnerAdhaar      string        `json:"ownerAdhaar"`
	RentAgreement    RentAgreement `json:"rentAgreement"`
	Tenure           int           `json:"tenure"`
	MonthlyRent      string        `json:"monthlyRent"`
	OwnerPhoto       string        `json:"ownerPhoto"`
	OwnerAdhaarPhoto string        `json:"ownerAdhaarPhoto"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// NewShopResponse maps a domain shop onto its wire form.
func NewShopResponse(shop *domain.Shop) ShopResponse {
	return ShopResponse{
		ID:               shop.ID,
		OwnerName:        shop.OwnerName,
		ShopNo:           shop.ShopNo,
		RegistrationNo:   shop.RegistrationNo,
		OwnerContact:     shop.OwnerContact,
		OwnerAddress:     shop.OwnerAddress,
		OwnerAdhaar:      shop.OwnerAdhaar,
		RentAgreement:    RentAgreement{StartDate: shop.RentStart, EndDate: shop.RentEnd},
		Tenure:           shop.TenureMonths,
		MonthlyRent:      shop.MonthlyRent,
		OwnerPhoto:       shop.OwnerPhoto,
		OwnerAdhaarPhoto: shop.OwnerAdhaarPhoto,
		CreatedAt:        shop.CreatedAt,
		UpdatedAt:        shop.UpdatedAt,
	}
}

// NewShopResponses maps a slice of domain shops.
func NewShopResponses(shops []domain.Shop) []ShopResponse {
	result := make([]ShopResponse, 0, len(shops))
	for i := range shops {
		result = append(result, NewShopResponse(&shops[i]))
	}
	return result
}
