package domain

import "time"

// Admin is the credential-bearing back-office identity. Contact is the login
// handle; contact and email are candidate keys, unique across live records.
type Admin struct {
	ID           string
	Name         string
	Contact      string
	Email        *string
	PasswordHash string
	IsSuperAdmin bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AdminPatch carries partial updates. Nil fields are left untouched.
type AdminPatch struct {
	Name         *string
	Contact      *string
	Email        *string
	Password     *string
	IsSuperAdmin *bool
}
