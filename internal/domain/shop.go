package domain

import "time"

// Shop models a rented shop unit. ShopNo and RegistrationNo are candidate
// keys, each independently unique across live shops.
type Shop struct {
	ID               string
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
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ShopPatch carries partial updates. Nil fields are left untouched.
type ShopPatch struct {
	OwnerName        *string
	ShopNo           *string
	RegistrationNo   *string
	OwnerContact     *string
	OwnerAddress     *string
	OwnerAdhaar      *string
	RentStart        *time.Time
	RentEnd          *time.Time
	TenureMonths     *int
	MonthlyRent      *string
	OwnerPhoto       *string
	OwnerAdhaarPhoto *string
}
