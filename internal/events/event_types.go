package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventShopRegistered  EventType = "shop_registered"
	EventPaymentRecorded EventType = "payment_recorded"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ShopRegisteredPayload payload.
type ShopRegisteredPayload struct {
	ShopID    string `json:"shop_id"`
	ShopNo    string `json:"shop_no"`
	OwnerName string `json:"owner_name"`
}

// PaymentRecordedPayload payload.
type PaymentRecordedPayload struct {
	PaymentID string `json:"payment_id"`
	ShopID    string `json:"shop_id"`
	Amount    int64  `json:"amount"`
	Method    string `json:"method"`
}
