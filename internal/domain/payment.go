package domain

import "time"

// Payment records a rent payment made against a shop.
type Payment struct {
	ID        string
	ShopID    string
	Amount    int64
	Method    string
	PaidAt    time.Time
	CreatedAt time.Time
}

// PaymentPatch carries partial updates. Nil fields are left untouched.
type PaymentPatch struct {
	Amount *int64
	Method *string
	PaidAt *time.Time
}
